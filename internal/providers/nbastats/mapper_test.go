package nbastats

import (
	"encoding/json"
	"testing"
)

func TestMapGameLogs(t *testing.T) {
	var resp statsResponse
	if err := json.Unmarshal([]byte(gameLogsFixture), &resp); err != nil {
		t.Fatalf("unmarshal fixture: %v", err)
	}

	set, err := findResultSet(resp, "PlayerGameLogs")
	if err != nil {
		t.Fatalf("findResultSet() error = %v", err)
	}

	logs, err := mapGameLogs(set)
	if err != nil {
		t.Fatalf("mapGameLogs() error = %v", err)
	}
	if len(logs) != 2 {
		t.Fatalf("mapGameLogs() returned %d rows, want 2", len(logs))
	}

	curry := logs[0]
	if curry.SeasonYear != "2020-21" {
		t.Errorf("SeasonYear = %q, want 2020-21", curry.SeasonYear)
	}
	if curry.PlayerID != 201939 {
		t.Errorf("PlayerID = %d, want 201939", curry.PlayerID)
	}
	if curry.PlayerName != "Stephen Curry" || curry.TeamName != "Warriors" {
		t.Errorf("player = %q/%q, want Stephen Curry/Warriors", curry.PlayerName, curry.TeamName)
	}
	if got := curry.GameDate.Format("2006-01-02"); got != "2021-03-22" {
		t.Errorf("GameDate = %s, want 2021-03-22", got)
	}
	if curry.Matchup != "GSW @ PHI" || curry.WinLoss != "L" {
		t.Errorf("matchup = %q/%q, want GSW @ PHI/L", curry.Matchup, curry.WinLoss)
	}
	if curry.Minutes != 36.0 {
		t.Errorf("Minutes = %v, want 36", curry.Minutes)
	}
	if curry.FGM != 10 || curry.FGA != 21 || curry.FG3M != 5 || curry.PTS != 31 {
		t.Errorf("shooting = %d/%d/%d/%d, want 10/21/5/31", curry.FGM, curry.FGA, curry.FG3M, curry.PTS)
	}
	if curry.REB != 6 || curry.AST != 6 || curry.STL != 1 || curry.BLK != 0 || curry.TOV != 3 {
		t.Errorf("counting stats = %d/%d/%d/%d/%d, want 6/6/1/0/3",
			curry.REB, curry.AST, curry.STL, curry.BLK, curry.TOV)
	}

	if logs[1].Minutes != 29.5 {
		t.Errorf("Minutes = %v, want 29.5", logs[1].Minutes)
	}
}

func TestMapGameLogsHeaderOrderIndependent(t *testing.T) {
	set := resultSet{
		Name:    "PlayerGameLogs",
		Headers: []string{"PTS", "GAME_DATE", "PLAYER_NAME", "GAME_ID", "PLAYER_ID"},
		RowSet:  [][]any{{float64(31), "2021-03-22", "Stephen Curry", "0022000842", float64(201939)}},
	}

	logs, err := mapGameLogs(set)
	if err != nil {
		t.Fatalf("mapGameLogs() error = %v", err)
	}
	if logs[0].PTS != 31 || logs[0].PlayerID != 201939 {
		t.Errorf("row = %+v, columns resolved by header name", logs[0])
	}
}

func TestMapGameLogsMissingColumn(t *testing.T) {
	set := resultSet{
		Name:    "PlayerGameLogs",
		Headers: []string{"PLAYER_NAME"},
		RowSet:  [][]any{{"Stephen Curry"}},
	}
	if _, err := mapGameLogs(set); err == nil {
		t.Error("mapGameLogs() error = nil, want non-nil for missing columns")
	}
}

func TestMapSchedule(t *testing.T) {
	var resp scheduleResponse
	if err := json.Unmarshal([]byte(scheduleFixture), &resp); err != nil {
		t.Fatalf("unmarshal fixture: %v", err)
	}

	games, err := mapSchedule(resp)
	if err != nil {
		t.Fatalf("mapSchedule() error = %v", err)
	}
	if len(games) != 3 {
		t.Fatalf("mapSchedule() returned %d games, want 3 across months", len(games))
	}

	opener := games[0]
	if opener.GameID != "0022000001" {
		t.Errorf("GameID = %q, want 0022000001", opener.GameID)
	}
	if got := opener.GameDate.Format("2006-01-02"); got != "2020-12-22" {
		t.Errorf("GameDate = %s, want 2020-12-22", got)
	}
	if opener.Status != "Final" {
		t.Errorf("Status = %q, want Final", opener.Status)
	}
	if opener.HomeTricode != "BKN" || opener.HomeTeamName != "Brooklyn Nets" {
		t.Errorf("home = %q/%q, want BKN/Brooklyn Nets", opener.HomeTricode, opener.HomeTeamName)
	}
	if opener.AwayTricode != "GSW" || opener.AwayTeamName != "Golden State Warriors" {
		t.Errorf("away = %q/%q, want GSW/Golden State Warriors", opener.AwayTricode, opener.AwayTeamName)
	}

	// The league feed spells the Clippers "LA Clippers"; rosters spell it out.
	if games[1].AwayTeamName != "Los Angeles Clippers" {
		t.Errorf("AwayTeamName = %q, want Los Angeles Clippers", games[1].AwayTeamName)
	}
}

func TestMapScheduleEmpty(t *testing.T) {
	if _, err := mapSchedule(scheduleResponse{}); err == nil {
		t.Error("mapSchedule() error = nil, want non-nil for empty payloads")
	}
}

func TestSeasonString(t *testing.T) {
	tests := []struct {
		startYear string
		want      string
		wantErr   bool
	}{
		{startYear: "2020", want: "2020-21"},
		{startYear: "1999", want: "1999-00"},
		{startYear: "2009", want: "2009-10"},
		{startYear: "twenty", wantErr: true},
		{startYear: "", wantErr: true},
		{startYear: "1890", wantErr: true},
	}

	for _, tt := range tests {
		got, err := SeasonString(tt.startYear)
		if (err != nil) != tt.wantErr {
			t.Errorf("SeasonString(%q) error = %v, wantErr %v", tt.startYear, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("SeasonString(%q) = %q, want %q", tt.startYear, got, tt.want)
		}
	}
}
