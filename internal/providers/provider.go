package providers

import (
	"context"
	"time"

	"nba-fantasy-etl/internal/domain"
)

// LeagueProvider exposes fantasy league metadata. A week argument of 0 means
// "the league's current week" wherever a week is accepted.
type LeagueProvider interface {
	League(ctx context.Context) (domain.League, error)
}

// MatchupProvider fetches one scoreboard week of fantasy matchups.
type MatchupProvider interface {
	FetchMatchups(ctx context.Context, week int) ([]domain.Matchup, error)
}

// RosterProvider fetches every team's roster in the league.
type RosterProvider interface {
	FetchRosters(ctx context.Context) ([]domain.RosterSlot, error)
}

// ScheduleProvider fetches the league-wide schedule for a season start year
// ("2020" means the 2020-21 season).
type ScheduleProvider interface {
	FetchSchedule(ctx context.Context, seasonStartYear string) ([]domain.ScheduleGame, error)
}

// GameLogProvider fetches per-player box-score logs.
type GameLogProvider interface {
	FetchPlayerGameLogs(ctx context.Context, seasonStartYear string) ([]domain.PlayerGameLog, error)
	FetchPlayerGameLogsForDate(ctx context.Context, seasonStartYear string, date time.Time) ([]domain.PlayerGameLog, error)
}

// FantasyProvider combines the capabilities the Yahoo side offers.
type FantasyProvider interface {
	LeagueProvider
	MatchupProvider
	RosterProvider
}

// StatsProvider combines the capabilities the NBA side offers.
type StatsProvider interface {
	ScheduleProvider
	GameLogProvider
}
