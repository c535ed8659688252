package domain

import "time"

// StatType distinguishes scraped box-score totals from projected ones.
type StatType string

const (
	StatActual    StatType = "Actual"
	StatProjected StatType = "Projected"
)

// League holds the fantasy league metadata the pipeline needs to drive a run.
type League struct {
	LeagueKey   string
	Season      string
	CurrentWeek int
	StartWeek   int
	EndWeek     int
	NumTeams    int
}

// Matchup is one team's line in a weekly head-to-head pairing. Two Matchup
// rows with the same MatchupNumber form the pairing.
type Matchup struct {
	Season        string
	Week          int
	WeekStart     time.Time
	WeekEnd       time.Time
	MatchupNumber int
	Status        string
	IsPlayoffs    bool
	IsConsolation bool
	TeamName      string
	TeamKey       string
	FGM           int
	FGA           int
	FGPct         *float64
	FTM           int
	FTA           int
	FTPct         *float64
	FG3M          int
	PTS           int
	REB           int
	AST           int
	STL           int
	BLK           int
	TOV           int
	StatType      StatType
}

// PositionSet records which roster positions a player is eligible for.
type PositionSet struct {
	PG     bool
	SG     bool
	G      bool
	SF     bool
	PF     bool
	F      bool
	C      bool
	UTIL   bool
	BN     bool
	IL     bool
	ILPlus bool
}

// Mark flags the position matching Yahoo's literal position string.
// Yahoo spells the extended injured list "IL+". Unknown positions are
// ignored; the return value reports whether the string was recognized.
func (p *PositionSet) Mark(position string) bool {
	switch position {
	case "PG":
		p.PG = true
	case "SG":
		p.SG = true
	case "G":
		p.G = true
	case "SF":
		p.SF = true
	case "PF":
		p.PF = true
	case "F":
		p.F = true
	case "C":
		p.C = true
	case "Util", "UTIL":
		p.UTIL = true
	case "BN":
		p.BN = true
	case "IL":
		p.IL = true
	case "IL+":
		p.ILPlus = true
	default:
		return false
	}
	return true
}

// RosterSlot maps a player to the fantasy team that has them under contract.
type RosterSlot struct {
	OwningTeam   string
	PlayerName   string
	TeamName     string
	InjuryStatus string
	Positions    PositionSet
}

// ScheduleGame is one entry of the league-wide season schedule.
type ScheduleGame struct {
	GameID       string
	GameDate     time.Time
	Status       string
	HomeTricode  string
	HomeTeamName string
	AwayTricode  string
	AwayTeamName string
}

// PlayerGameLog is a per-player per-game box-score record.
type PlayerGameLog struct {
	SeasonYear string
	PlayerID   int
	PlayerName string
	TeamName   string
	GameID     string
	GameDate   time.Time
	Matchup    string
	WinLoss    string
	Minutes    float64
	FGM        int
	FGA        int
	FTM        int
	FTA        int
	FG3M       int
	PTS        int
	REB        int
	AST        int
	STL        int
	BLK        int
	TOV        int
}
