package yahoo

// Trimmed captures of the fantasy API's JSON shapes: index-keyed
// collections, attribute lists, and stat values rendered as strings.

const gameFixture = `{"fantasy_content":{"game":[{"game_key":"402","game_id":"402","name":"Basketball","code":"nba","season":"2020"}]}}`

const leagueFixture = `{"fantasy_content":{"league":[{"league_key":"402.l.1157","league_id":"1157","name":"Hardwood Heroes","season":"2020","current_week":5,"start_week":"1","end_week":"19","num_teams":2}]}}`

const scoreboardFixture = `{"fantasy_content":{"league":[
{"league_key":"402.l.1157","season":"2020","current_week":5,"start_week":"1","end_week":"19","num_teams":2},
{"scoreboard":{"week":"5","0":{"matchups":{"count":1,"0":{"matchup":{
  "week":"5","week_start":"2021-03-22","week_end":"2021-03-28","status":"postevent",
  "is_playoffs":"0","is_consolation":"0",
  "0":{"teams":{"count":2,
    "0":{"team":[[{"team_key":"402.l.1157.t.1"},{"team_id":"1"},{"name":"Ball Hogs"},[]],
      {"team_stats":{"coverage_type":"week","week":"5","stats":[
        {"stat":{"stat_id":"9004003","value":"100/210"}},
        {"stat":{"stat_id":"5","value":".476"}},
        {"stat":{"stat_id":"9007006","value":"54/70"}},
        {"stat":{"stat_id":"8","value":".771"}},
        {"stat":{"stat_id":"10","value":"35"}},
        {"stat":{"stat_id":"12","value":"289"}},
        {"stat":{"stat_id":"15","value":"120"}},
        {"stat":{"stat_id":"16","value":"67"}},
        {"stat":{"stat_id":"17","value":"21"}},
        {"stat":{"stat_id":"18","value":"11"}},
        {"stat":{"stat_id":"19","value":"38"}}]}}]},
    "1":{"team":[[{"team_key":"402.l.1157.t.2"},{"team_id":"2"},{"name":"Splash Bros"}],
      {"team_stats":{"coverage_type":"week","week":"5","stats":[
        {"stat":{"stat_id":"9004003","value":""}},
        {"stat":{"stat_id":"5","value":""}},
        {"stat":{"stat_id":"9007006","value":""}},
        {"stat":{"stat_id":"8","value":""}},
        {"stat":{"stat_id":"10","value":""}},
        {"stat":{"stat_id":"12","value":""}},
        {"stat":{"stat_id":"15","value":""}},
        {"stat":{"stat_id":"16","value":""}},
        {"stat":{"stat_id":"17","value":""}},
        {"stat":{"stat_id":"18","value":""}},
        {"stat":{"stat_id":"19","value":""}}]}}]}}}}}}}}}
]}}`

const rosterFixtureTeam1 = `{"fantasy_content":{"team":[
[{"team_key":"402.l.1157.t.1"},{"team_id":"1"},{"name":"Ball Hogs"},[]],
{"roster":{"coverage_type":"date","0":{"players":{"count":2,
  "0":{"player":[[{"player_key":"402.p.5583"},
    {"name":{"full":"Stephen Curry","first":"Stephen","last":"Curry"}},
    {"editorial_team_full_name":"Golden State Warriors"},
    {"eligible_positions":[{"position":"PG"},{"position":"G"},{"position":"Util"}]}]]},
  "1":{"player":[[{"player_key":"402.p.6030"},
    {"name":{"full":"PJ Washington"}},
    {"editorial_team_full_name":"Charlotte Hornets"},
    {"status":"INJ"},
    {"eligible_positions":[{"position":"PF"},{"position":"F"},{"position":"IL+"}]}]]}}}}}
]}}`

const rosterFixtureTeam2 = `{"fantasy_content":{"team":[
[{"team_key":"402.l.1157.t.2"},{"team_id":"2"},{"name":"Splash Bros"}],
{"roster":{"coverage_type":"date","0":{"players":{"count":1,
  "0":{"player":[[{"player_key":"402.p.4612"},
    {"name":{"full":"Klay Thompson"}},
    {"editorial_team_full_name":"Golden State Warriors"},
    {"eligible_positions":[{"position":"SG"},{"position":"G"}]}]]}}}}}
]}}`
