package yahoo

import (
	"encoding/json"
	"testing"
)

func TestMapScoreboard(t *testing.T) {
	var resp apiResponse
	if err := json.Unmarshal([]byte(scoreboardFixture), &resp); err != nil {
		t.Fatalf("unmarshal fixture: %v", err)
	}

	matchups, err := mapScoreboard(resp.FantasyContent.League, "2020")
	if err != nil {
		t.Fatalf("mapScoreboard() error = %v", err)
	}
	if len(matchups) != 2 {
		t.Fatalf("mapScoreboard() returned %d lines, want 2", len(matchups))
	}

	first := matchups[0]
	if first.TeamName != "Ball Hogs" {
		t.Errorf("TeamName = %q, want %q", first.TeamName, "Ball Hogs")
	}
	if first.TeamKey != "402.l.1157.t.1" {
		t.Errorf("TeamKey = %q, want %q", first.TeamKey, "402.l.1157.t.1")
	}
	if first.Season != "2020" {
		t.Errorf("Season = %q, want %q", first.Season, "2020")
	}
	if first.Week != 5 {
		t.Errorf("Week = %d, want 5", first.Week)
	}
	if first.MatchupNumber != 1 {
		t.Errorf("MatchupNumber = %d, want 1", first.MatchupNumber)
	}
	if first.StatType != "Actual" {
		t.Errorf("StatType = %q, want Actual", first.StatType)
	}
	if first.IsPlayoffs || first.IsConsolation {
		t.Errorf("playoff flags = %v/%v, want false/false", first.IsPlayoffs, first.IsConsolation)
	}
	if got := first.WeekStart.Format("2006-01-02"); got != "2021-03-22" {
		t.Errorf("WeekStart = %s, want 2021-03-22", got)
	}

	if first.FGM != 100 || first.FGA != 210 {
		t.Errorf("FG = %d/%d, want 100/210", first.FGM, first.FGA)
	}
	if first.FGPct == nil || *first.FGPct != 0.476 {
		t.Errorf("FGPct = %v, want 0.476", first.FGPct)
	}
	if first.FTM != 54 || first.FTA != 70 {
		t.Errorf("FT = %d/%d, want 54/70", first.FTM, first.FTA)
	}
	if first.FTPct == nil || *first.FTPct != 0.771 {
		t.Errorf("FTPct = %v, want 0.771", first.FTPct)
	}
	if first.FG3M != 35 || first.PTS != 289 || first.REB != 120 || first.AST != 67 {
		t.Errorf("counting stats = %d/%d/%d/%d, want 35/289/120/67",
			first.FG3M, first.PTS, first.REB, first.AST)
	}
	if first.STL != 21 || first.BLK != 11 || first.TOV != 38 {
		t.Errorf("STL/BLK/TOV = %d/%d/%d, want 21/11/38", first.STL, first.BLK, first.TOV)
	}

	// The second team's week has no stats yet: counts are zero, percents NULL.
	second := matchups[1]
	if second.TeamName != "Splash Bros" {
		t.Errorf("TeamName = %q, want %q", second.TeamName, "Splash Bros")
	}
	if second.MatchupNumber != first.MatchupNumber {
		t.Errorf("MatchupNumber = %d, want %d (same pairing)", second.MatchupNumber, first.MatchupNumber)
	}
	if second.FGM != 0 || second.FGA != 0 || second.PTS != 0 {
		t.Errorf("empty stats = FG %d/%d PTS %d, want zeros", second.FGM, second.FGA, second.PTS)
	}
	if second.FGPct != nil || second.FTPct != nil {
		t.Errorf("empty percents = %v/%v, want nil/nil", second.FGPct, second.FTPct)
	}
}

func TestMapRoster(t *testing.T) {
	var resp apiResponse
	if err := json.Unmarshal([]byte(rosterFixtureTeam1), &resp); err != nil {
		t.Fatalf("unmarshal fixture: %v", err)
	}

	slots, err := mapRoster(resp.FantasyContent.Team)
	if err != nil {
		t.Fatalf("mapRoster() error = %v", err)
	}
	if len(slots) != 2 {
		t.Fatalf("mapRoster() returned %d slots, want 2", len(slots))
	}

	curry := slots[0]
	if curry.OwningTeam != "Ball Hogs" {
		t.Errorf("OwningTeam = %q, want %q", curry.OwningTeam, "Ball Hogs")
	}
	if curry.PlayerName != "Stephen Curry" {
		t.Errorf("PlayerName = %q, want %q", curry.PlayerName, "Stephen Curry")
	}
	if curry.TeamName != "Golden State Warriors" {
		t.Errorf("TeamName = %q, want %q", curry.TeamName, "Golden State Warriors")
	}
	if curry.InjuryStatus != "NONE" {
		t.Errorf("InjuryStatus = %q, want NONE for healthy players", curry.InjuryStatus)
	}
	if !curry.Positions.PG || !curry.Positions.G || !curry.Positions.UTIL {
		t.Errorf("positions = %+v, want PG/G/Util set", curry.Positions)
	}
	if curry.Positions.C || curry.Positions.ILPlus {
		t.Errorf("positions = %+v, unexpected C or IL+", curry.Positions)
	}

	washington := slots[1]
	if washington.InjuryStatus != "INJ" {
		t.Errorf("InjuryStatus = %q, want INJ", washington.InjuryStatus)
	}
	if !washington.Positions.ILPlus {
		t.Errorf("positions = %+v, want IL+ set", washington.Positions)
	}
}

func TestSplitMadeAttempted(t *testing.T) {
	tests := []struct {
		value     string
		made, att int
		wantErr   bool
	}{
		{value: "100/210", made: 100, att: 210},
		{value: "0/0"},
		{value: ""},
		{value: "-"},
		{value: "17", wantErr: true},
	}

	for _, tt := range tests {
		made, att, err := splitMadeAttempted(tt.value)
		if (err != nil) != tt.wantErr {
			t.Errorf("splitMadeAttempted(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			continue
		}
		if made != tt.made || att != tt.att {
			t.Errorf("splitMadeAttempted(%q) = %d/%d, want %d/%d", tt.value, made, att, tt.made, tt.att)
		}
	}
}

func TestParseNullablePct(t *testing.T) {
	if got := parseNullablePct(".476"); got == nil || *got != 0.476 {
		t.Errorf("parseNullablePct(.476) = %v, want 0.476", got)
	}
	if got := parseNullablePct("0.000"); got == nil || *got != 0 {
		t.Errorf("parseNullablePct(0.000) = %v, want 0", got)
	}
	for _, value := range []string{"", "-", " "} {
		if got := parseNullablePct(value); got != nil {
			t.Errorf("parseNullablePct(%q) = %v, want nil", value, got)
		}
	}
}

func TestIndexedItemsOrder(t *testing.T) {
	raw := json.RawMessage(`{"count":3,"2":{"v":"c"},"0":{"v":"a"},"1":{"v":"b"}}`)
	items, err := indexedItems(raw)
	if err != nil {
		t.Fatalf("indexedItems() error = %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("indexedItems() returned %d items, want 3", len(items))
	}
	for i, want := range []string{"a", "b", "c"} {
		var item struct {
			V string `json:"v"`
		}
		if err := json.Unmarshal(items[i], &item); err != nil {
			t.Fatalf("item %d: %v", i, err)
		}
		if item.V != want {
			t.Errorf("item %d = %q, want %q (numeric key order)", i, item.V, want)
		}
	}
}

func TestAttributeListSkipsNonObjects(t *testing.T) {
	raw := json.RawMessage(`[{"team_key":"402.l.1157.t.1"},{"name":"Ball Hogs"},[],{"team_id":"1"}]`)
	attrs, err := attributeList(raw)
	if err != nil {
		t.Fatalf("attributeList() error = %v", err)
	}

	var name string
	if err := json.Unmarshal(attrs["name"], &name); err != nil || name != "Ball Hogs" {
		t.Errorf("attrs[name] = %q (err %v), want Ball Hogs", name, err)
	}
	if _, ok := attrs["team_key"]; !ok {
		t.Error("attrs missing team_key")
	}
}
