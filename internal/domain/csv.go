package domain

import (
	"strconv"
	"time"
)

// NullLiteral is the sentinel written to CSV cells holding no value. It is
// what the bulk loader translates back to SQL NULL.
const NullLiteral = "NULL"

const csvDateLayout = "2006-01-02"

// CSVRow renders the matchup in MatchupsSchema column order.
func (m Matchup) CSVRow() []string {
	return []string{
		m.Season,
		strconv.Itoa(m.Week),
		formatDate(m.WeekStart),
		formatDate(m.WeekEnd),
		strconv.Itoa(m.MatchupNumber),
		m.Status,
		formatBool(m.IsPlayoffs),
		formatBool(m.IsConsolation),
		m.TeamName,
		m.TeamKey,
		strconv.Itoa(m.FGM),
		strconv.Itoa(m.FGA),
		formatNullableFloat(m.FGPct),
		strconv.Itoa(m.FTM),
		strconv.Itoa(m.FTA),
		formatNullableFloat(m.FTPct),
		strconv.Itoa(m.FG3M),
		strconv.Itoa(m.PTS),
		strconv.Itoa(m.REB),
		strconv.Itoa(m.AST),
		strconv.Itoa(m.STL),
		strconv.Itoa(m.BLK),
		strconv.Itoa(m.TOV),
		string(m.StatType),
	}
}

// CSVRow renders the roster slot in RostersSchema column order.
func (r RosterSlot) CSVRow() []string {
	status := r.InjuryStatus
	if status == "" {
		status = "NONE"
	}
	return []string{
		r.OwningTeam,
		r.PlayerName,
		r.TeamName,
		status,
		formatBool(r.Positions.PG),
		formatBool(r.Positions.SG),
		formatBool(r.Positions.G),
		formatBool(r.Positions.SF),
		formatBool(r.Positions.PF),
		formatBool(r.Positions.F),
		formatBool(r.Positions.C),
		formatBool(r.Positions.UTIL),
		formatBool(r.Positions.BN),
		formatBool(r.Positions.IL),
		formatBool(r.Positions.ILPlus),
	}
}

// CSVRow renders the schedule entry in ScheduleSchema column order.
func (g ScheduleGame) CSVRow() []string {
	return []string{
		g.GameID,
		formatDate(g.GameDate),
		g.Status,
		g.HomeTricode,
		g.HomeTeamName,
		g.AwayTricode,
		g.AwayTeamName,
	}
}

// CSVRow renders the game log in PlayerLogsSchema column order.
func (l PlayerGameLog) CSVRow() []string {
	return []string{
		l.SeasonYear,
		strconv.Itoa(l.PlayerID),
		l.PlayerName,
		l.TeamName,
		l.GameID,
		formatDate(l.GameDate),
		l.Matchup,
		l.WinLoss,
		strconv.FormatFloat(l.Minutes, 'f', -1, 64),
		strconv.Itoa(l.FGM),
		strconv.Itoa(l.FGA),
		strconv.Itoa(l.FTM),
		strconv.Itoa(l.FTA),
		strconv.Itoa(l.FG3M),
		strconv.Itoa(l.PTS),
		strconv.Itoa(l.REB),
		strconv.Itoa(l.AST),
		strconv.Itoa(l.STL),
		strconv.Itoa(l.BLK),
		strconv.Itoa(l.TOV),
	}
}

// MatchupRows renders a slice of matchups as CSV rows.
func MatchupRows(matchups []Matchup) [][]string {
	rows := make([][]string, len(matchups))
	for i, m := range matchups {
		rows[i] = m.CSVRow()
	}
	return rows
}

// RosterRows renders a slice of roster slots as CSV rows.
func RosterRows(slots []RosterSlot) [][]string {
	rows := make([][]string, len(slots))
	for i, s := range slots {
		rows[i] = s.CSVRow()
	}
	return rows
}

// ScheduleRows renders a slice of schedule entries as CSV rows.
func ScheduleRows(games []ScheduleGame) [][]string {
	rows := make([][]string, len(games))
	for i, g := range games {
		rows[i] = g.CSVRow()
	}
	return rows
}

// GameLogRows renders a slice of game logs as CSV rows.
func GameLogRows(logs []PlayerGameLog) [][]string {
	rows := make([][]string, len(logs))
	for i, l := range logs {
		rows[i] = l.CSVRow()
	}
	return rows
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return NullLiteral
	}
	return t.Format(csvDateLayout)
}

func formatBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func formatNullableFloat(f *float64) string {
	if f == nil {
		return NullLiteral
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}
