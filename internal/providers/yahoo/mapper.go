package yahoo

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"nba-fantasy-etl/internal/domain"
	"nba-fantasy-etl/internal/timeutil"
)

// mapScoreboard maps a scoreboard league payload (league meta followed by a
// scoreboard element) to matchup lines, one per team per pairing.
func mapScoreboard(leagueRaw json.RawMessage, season string) ([]domain.Matchup, error) {
	var entries []json.RawMessage
	if err := json.Unmarshal(leagueRaw, &entries); err != nil {
		return nil, fmt.Errorf("decode scoreboard payload: %w", err)
	}

	var scoreboard *scoreboardPayload
	for _, entry := range entries {
		var wrapper scoreboardWrapper
		if err := json.Unmarshal(entry, &wrapper); err != nil {
			continue
		}
		if wrapper.Scoreboard != nil {
			scoreboard = wrapper.Scoreboard
			break
		}
	}
	if scoreboard == nil {
		return nil, fmt.Errorf("payload has no scoreboard element")
	}

	pairings, err := indexedItems(scoreboard.Zero.Matchups)
	if err != nil {
		return nil, fmt.Errorf("matchups: %w", err)
	}

	var matchups []domain.Matchup
	for i, pairingRaw := range pairings {
		var wrapper matchupWrapper
		if err := json.Unmarshal(pairingRaw, &wrapper); err != nil {
			return nil, fmt.Errorf("matchup %d: %w", i, err)
		}
		payload := wrapper.Matchup

		weekStart, _ := timeutil.ParseDate(payload.WeekStart)
		weekEnd, _ := timeutil.ParseDate(payload.WeekEnd)

		base := domain.Matchup{
			Season:        season,
			Week:          int(payload.Week),
			WeekStart:     weekStart,
			WeekEnd:       weekEnd,
			MatchupNumber: i + 1,
			Status:        payload.Status,
			IsPlayoffs:    bool(payload.IsPlayoffs),
			IsConsolation: bool(payload.IsConsolation),
			StatType:      domain.StatActual,
		}

		teams, err := indexedItems(payload.Zero.Teams)
		if err != nil {
			return nil, fmt.Errorf("matchup %d teams: %w", i, err)
		}

		for j, teamRaw := range teams {
			line, err := mapTeamLine(teamRaw, base)
			if err != nil {
				return nil, fmt.Errorf("matchup %d team %d: %w", i, j, err)
			}
			matchups = append(matchups, line)
		}
	}
	return matchups, nil
}

func mapTeamLine(teamRaw json.RawMessage, base domain.Matchup) (domain.Matchup, error) {
	var wrapper teamWrapper
	if err := json.Unmarshal(teamRaw, &wrapper); err != nil {
		return domain.Matchup{}, err
	}
	if len(wrapper.Team) < 2 {
		return domain.Matchup{}, fmt.Errorf("team payload has %d elements, want 2", len(wrapper.Team))
	}

	attrs, err := attributeList(wrapper.Team[0])
	if err != nil {
		return domain.Matchup{}, err
	}

	line := base
	if raw, ok := attrs["name"]; ok {
		_ = json.Unmarshal(raw, &line.TeamName)
	}
	if raw, ok := attrs["team_key"]; ok {
		_ = json.Unmarshal(raw, &line.TeamKey)
	}

	var stats teamStatsWrapper
	if err := json.Unmarshal(wrapper.Team[1], &stats); err != nil {
		return domain.Matchup{}, fmt.Errorf("team stats: %w", err)
	}
	values := stats.TeamStats.Stats
	if len(values) < statCount {
		return domain.Matchup{}, fmt.Errorf("team stats has %d entries, want %d", len(values), statCount)
	}

	line.FGM, line.FGA, err = splitMadeAttempted(values[statIdxFG].Stat.Value)
	if err != nil {
		return domain.Matchup{}, fmt.Errorf("field goals: %w", err)
	}
	line.FGPct = parseNullablePct(values[statIdxFGPct].Stat.Value)

	line.FTM, line.FTA, err = splitMadeAttempted(values[statIdxFT].Stat.Value)
	if err != nil {
		return domain.Matchup{}, fmt.Errorf("free throws: %w", err)
	}
	line.FTPct = parseNullablePct(values[statIdxFTPct].Stat.Value)

	line.FG3M = parseCount(values[statIdxFG3M].Stat.Value)
	line.PTS = parseCount(values[statIdxPTS].Stat.Value)
	line.REB = parseCount(values[statIdxREB].Stat.Value)
	line.AST = parseCount(values[statIdxAST].Stat.Value)
	line.STL = parseCount(values[statIdxSTL].Stat.Value)
	line.BLK = parseCount(values[statIdxBLK].Stat.Value)
	line.TOV = parseCount(values[statIdxTOV].Stat.Value)

	return line, nil
}

// mapRoster maps a team roster payload to roster slots, one per player.
func mapRoster(teamRaw json.RawMessage) ([]domain.RosterSlot, error) {
	var wrapper teamWrapper
	if err := json.Unmarshal(teamRaw, &wrapper); err != nil {
		return nil, fmt.Errorf("decode team payload: %w", err)
	}
	if len(wrapper.Team) < 2 {
		return nil, fmt.Errorf("team payload has %d elements, want 2", len(wrapper.Team))
	}

	attrs, err := attributeList(wrapper.Team[0])
	if err != nil {
		return nil, err
	}
	var owningTeam string
	if raw, ok := attrs["name"]; ok {
		_ = json.Unmarshal(raw, &owningTeam)
	}
	if owningTeam == "" {
		return nil, fmt.Errorf("team payload has no name")
	}

	var roster rosterWrapper
	if err := json.Unmarshal(wrapper.Team[1], &roster); err != nil {
		return nil, fmt.Errorf("decode roster: %w", err)
	}

	players, err := indexedItems(roster.Roster.Zero.Players)
	if err != nil {
		return nil, fmt.Errorf("players: %w", err)
	}

	slots := make([]domain.RosterSlot, 0, len(players))
	for i, playerRaw := range players {
		slot, err := mapPlayerSlot(playerRaw, owningTeam)
		if err != nil {
			return nil, fmt.Errorf("player %d: %w", i, err)
		}
		slots = append(slots, slot)
	}
	return slots, nil
}

func mapPlayerSlot(playerRaw json.RawMessage, owningTeam string) (domain.RosterSlot, error) {
	var wrapper playerWrapper
	if err := json.Unmarshal(playerRaw, &wrapper); err != nil {
		return domain.RosterSlot{}, err
	}
	if len(wrapper.Player) == 0 {
		return domain.RosterSlot{}, fmt.Errorf("player payload is empty")
	}

	attrs, err := attributeList(wrapper.Player[0])
	if err != nil {
		return domain.RosterSlot{}, err
	}

	slot := domain.RosterSlot{
		OwningTeam:   owningTeam,
		InjuryStatus: "NONE",
	}

	if raw, ok := attrs["name"]; ok {
		var name playerName
		if err := json.Unmarshal(raw, &name); err != nil {
			return domain.RosterSlot{}, fmt.Errorf("player name: %w", err)
		}
		slot.PlayerName = name.Full
	}
	if raw, ok := attrs["editorial_team_full_name"]; ok {
		_ = json.Unmarshal(raw, &slot.TeamName)
	}
	if raw, ok := attrs["status"]; ok {
		var status string
		if json.Unmarshal(raw, &status) == nil && status != "" {
			slot.InjuryStatus = status
		}
	}
	if raw, ok := attrs["eligible_positions"]; ok {
		var positions []eligiblePosition
		if err := json.Unmarshal(raw, &positions); err != nil {
			return domain.RosterSlot{}, fmt.Errorf("eligible positions: %w", err)
		}
		for _, pos := range positions {
			slot.Positions.Mark(pos.Position)
		}
	}

	if slot.PlayerName == "" {
		return domain.RosterSlot{}, fmt.Errorf("player payload has no name")
	}
	return slot, nil
}

// splitMadeAttempted parses Yahoo's "made/attempted" strings. Empty values
// (weeks that have not started) count as zero.
func splitMadeAttempted(value string) (made, attempted int, err error) {
	if value == "" || value == "-" {
		return 0, 0, nil
	}
	left, right, found := strings.Cut(value, "/")
	if !found {
		return 0, 0, fmt.Errorf("expected made/attempted, got %q", value)
	}
	made = parseCount(left)
	attempted = parseCount(right)
	return made, attempted, nil
}

// parseCount parses a counting stat, treating empty strings as zero the way
// pre-week scoreboards render them.
func parseCount(value string) int {
	value = strings.TrimSpace(value)
	if value == "" || value == "-" {
		return 0
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return n
}

// parseNullablePct parses a percentage stat; empty and non-numeric values
// map to NULL rather than zero so 0% stays distinguishable from no games.
func parseNullablePct(value string) *float64 {
	value = strings.TrimSpace(value)
	if value == "" || value == "-" {
		return nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil
	}
	return &f
}
