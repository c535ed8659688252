package providers

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"nba-fantasy-etl/internal/domain"
	"nba-fantasy-etl/internal/metrics"
)

const (
	defaultRetryAttempts = 3
	defaultInitialDelay  = time.Second
)

// RetryConfig tunes the retrying provider decorators.
type RetryConfig struct {
	MaxAttempts  int
	InitialDelay time.Duration
	Logger       *slog.Logger
	Metrics      *metrics.Recorder
}

func (c RetryConfig) attempts() uint64 {
	if c.MaxAttempts <= 0 {
		return defaultRetryAttempts
	}
	return uint64(c.MaxAttempts)
}

func (c RetryConfig) delay() time.Duration {
	if c.InitialDelay <= 0 {
		return defaultInitialDelay
	}
	return c.InitialDelay
}

// retryFetch runs fn with exponential backoff until it succeeds, the attempt
// budget is spent, or ctx is canceled. Every attempt is recorded against the
// provider's metrics.
func retryFetch[T any](ctx context.Context, cfg RetryConfig, provider, op string, fn func() (T, error)) (T, error) {
	var out T

	expo := backoff.NewExponentialBackOff()
	expo.InitialInterval = cfg.delay()
	policy := backoff.WithContext(backoff.WithMaxRetries(expo, cfg.attempts()-1), ctx)

	attempt := 0
	operation := func() error {
		attempt++
		start := time.Now()
		v, err := fn()
		cfg.Metrics.RecordProviderAttempt(provider, time.Since(start), err)
		if err != nil {
			if rlErr, ok := AsRateLimitError(err); ok {
				cfg.Metrics.RecordRateLimit(provider, rlErr.RetryAfter)
			}
			// Week validation failures won't heal with a retry.
			if errors.Is(err, ErrWeekOutOfRange) {
				return backoff.Permanent(err)
			}
			logWithProvider(ctx, cfg.Logger, slog.LevelWarn, provider, "fetch failed",
				slog.String("op", op), slog.Int("attempt", attempt), "error", err)
			return err
		}
		out = v
		return nil
	}

	if err := backoff.Retry(operation, policy); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

type retryingFantasyProvider struct {
	inner FantasyProvider
	name  string
	cfg   RetryConfig
}

// NewRetryingFantasyProvider wraps a fantasy provider with retry/backoff
// behavior. Zero-valued config fields fall back to defaults.
func NewRetryingFantasyProvider(inner FantasyProvider, name string, cfg RetryConfig) FantasyProvider {
	return &retryingFantasyProvider{inner: inner, name: name, cfg: cfg}
}

func (r *retryingFantasyProvider) League(ctx context.Context) (domain.League, error) {
	if r.inner == nil {
		return domain.League{}, ErrProviderUnavailable
	}
	return retryFetch(ctx, r.cfg, r.name, "league", func() (domain.League, error) {
		return r.inner.League(ctx)
	})
}

func (r *retryingFantasyProvider) FetchMatchups(ctx context.Context, week int) ([]domain.Matchup, error) {
	if r.inner == nil {
		return nil, ErrProviderUnavailable
	}
	return retryFetch(ctx, r.cfg, r.name, "matchups", func() ([]domain.Matchup, error) {
		return r.inner.FetchMatchups(ctx, week)
	})
}

func (r *retryingFantasyProvider) FetchRosters(ctx context.Context) ([]domain.RosterSlot, error) {
	if r.inner == nil {
		return nil, ErrProviderUnavailable
	}
	return retryFetch(ctx, r.cfg, r.name, "rosters", func() ([]domain.RosterSlot, error) {
		return r.inner.FetchRosters(ctx)
	})
}

type retryingStatsProvider struct {
	inner StatsProvider
	name  string
	cfg   RetryConfig
}

// NewRetryingStatsProvider wraps a stats provider with retry/backoff
// behavior. Zero-valued config fields fall back to defaults.
func NewRetryingStatsProvider(inner StatsProvider, name string, cfg RetryConfig) StatsProvider {
	return &retryingStatsProvider{inner: inner, name: name, cfg: cfg}
}

func (r *retryingStatsProvider) FetchSchedule(ctx context.Context, seasonStartYear string) ([]domain.ScheduleGame, error) {
	if r.inner == nil {
		return nil, ErrProviderUnavailable
	}
	return retryFetch(ctx, r.cfg, r.name, "schedule", func() ([]domain.ScheduleGame, error) {
		return r.inner.FetchSchedule(ctx, seasonStartYear)
	})
}

func (r *retryingStatsProvider) FetchPlayerGameLogs(ctx context.Context, seasonStartYear string) ([]domain.PlayerGameLog, error) {
	if r.inner == nil {
		return nil, ErrProviderUnavailable
	}
	return retryFetch(ctx, r.cfg, r.name, "player_game_logs", func() ([]domain.PlayerGameLog, error) {
		return r.inner.FetchPlayerGameLogs(ctx, seasonStartYear)
	})
}

func (r *retryingStatsProvider) FetchPlayerGameLogsForDate(ctx context.Context, seasonStartYear string, date time.Time) ([]domain.PlayerGameLog, error) {
	if r.inner == nil {
		return nil, ErrProviderUnavailable
	}
	return retryFetch(ctx, r.cfg, r.name, "player_game_logs_for_date", func() ([]domain.PlayerGameLog, error) {
		return r.inner.FetchPlayerGameLogsForDate(ctx, seasonStartYear, date)
	})
}
