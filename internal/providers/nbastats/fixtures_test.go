package nbastats

const gameLogsFixture = `{
  "resource": "playergamelogs",
  "resultSets": [{
    "name": "PlayerGameLogs",
    "headers": ["SEASON_YEAR","PLAYER_ID","PLAYER_NAME","TEAM_NAME","GAME_ID","GAME_DATE","MATCHUP","WL","MIN","FGM","FGA","FTM","FTA","FG3M","PTS","REB","AST","STL","BLK","TOV"],
    "rowSet": [
      ["2020-21",201939,"Stephen Curry","Warriors","0022000842","2021-03-22T00:00:00","GSW @ PHI","L",36.0,10,21,6,6,5,31,6,6,1,0,3],
      ["2020-21",1629023,"PJ Washington","Hornets","0022000841","2021-03-22T00:00:00","CHA vs. SAS","W",29.5,7,12,2,2,1,17,8,3,1,2,1]
    ]
  }]
}`

const scheduleFixture = `{
  "lscd": [
    {"mscd": {"mon": "December", "g": [
      {"gid": "0022000001", "gdte": "2020-12-22", "stt": "Final",
       "h": {"ta": "BKN", "tc": "Brooklyn", "tn": "Nets"},
       "v": {"ta": "GSW", "tc": "Golden State", "tn": "Warriors"}},
      {"gid": "0022000002", "gdte": "2020-12-22", "stt": "Final",
       "h": {"ta": "LAL", "tc": "Los Angeles", "tn": "Lakers"},
       "v": {"ta": "LAC", "tc": "LA", "tn": "Clippers"}}
    ]}},
    {"mscd": {"mon": "January", "g": [
      {"gid": "0022000101", "gdte": "2021-01-01", "stt": "7:00 pm ET",
       "h": {"ta": "BOS", "tc": "Boston", "tn": "Celtics"},
       "v": {"ta": "DET", "tc": "Detroit", "tn": "Pistons"}}
    ]}}
  ]
}`
