package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"nba-fantasy-etl/internal/csvfile"
	"nba-fantasy-etl/internal/domain"
	"nba-fantasy-etl/internal/logging"
	"nba-fantasy-etl/internal/metrics"
	"nba-fantasy-etl/internal/providers"
)

// ErrConflictingPlayerModes rejects a run that asks for both the full player
// download and the single-date update; the two write the same season table.
var ErrConflictingPlayerModes = errors.New("init-players and update-players are mutually exclusive")

// ErrNothingSelected rejects a run with no datasets to refresh.
var ErrNothingSelected = errors.New("no datasets selected")

// TableStore is what the pipeline needs from the database layer.
type TableStore interface {
	RecreateTable(ctx context.Context, schema domain.TableSchema) error
	LoadCSV(ctx context.Context, schema domain.TableSchema, path string) (int64, error)
	HarmonizeNames(ctx context.Context) error
	RebuildProjections(ctx context.Context) error
	MergeDailyLogs(ctx context.Context) (int64, error)
}

// Options selects which datasets one run refreshes.
type Options struct {
	Matchups      bool
	Rosters       bool
	Schedule      bool
	InitPlayers   bool
	UpdatePlayers bool

	// Week selects the scoreboard week; 0 means the league's current week.
	Week int
	// Season overrides the league's season start year for the NBA datasets.
	Season string
	// UpdateDate is the game date for the single-date player refresh; the
	// zero value means today.
	UpdateDate time.Time
}

func (o Options) selected() bool {
	return o.Matchups || o.Rosters || o.Schedule || o.InitPlayers || o.UpdatePlayers
}

// Config wires the pipeline's collaborators.
type Config struct {
	Fantasy providers.FantasyProvider
	Stats   providers.StatsProvider
	Writer  *csvfile.Writer
	Store   TableStore
	Logger  *slog.Logger
	Metrics *metrics.Recorder
}

// Pipeline drives one refresh: fetch the selected datasets, write their CSV
// extracts, replace the database tables, then run fixups and projections.
type Pipeline struct {
	fantasy providers.FantasyProvider
	stats   providers.StatsProvider
	writer  *csvfile.Writer
	store   TableStore
	logger  *slog.Logger
	metrics *metrics.Recorder
}

// New constructs a pipeline.
func New(cfg Config) *Pipeline {
	return &Pipeline{
		fantasy: cfg.Fantasy,
		stats:   cfg.Stats,
		writer:  cfg.Writer,
		store:   cfg.Store,
		logger:  cfg.Logger,
		metrics: cfg.Metrics,
	}
}

// Run refreshes the selected datasets sequentially. A dataset that fails to
// fetch is logged and skipped so one flaky vendor does not waste the rest of
// the run; the error still surfaces at the end.
func (p *Pipeline) Run(ctx context.Context, opts Options) (err error) {
	start := time.Now()
	defer func() {
		p.metrics.RecordRun(time.Since(start), err)
	}()

	if opts.InitPlayers && opts.UpdatePlayers {
		return ErrConflictingPlayerModes
	}
	if !opts.selected() {
		return ErrNothingSelected
	}

	season, week, err := p.resolveRun(ctx, opts)
	if err != nil {
		return err
	}

	var failures []error
	loaded := false
	for _, dataset := range p.datasets(opts, season, week) {
		if !dataset.enabled {
			continue
		}
		if err := p.refreshDataset(ctx, dataset); err != nil {
			logging.Error(p.logger, "dataset refresh failed", err,
				logging.FieldTable, dataset.schema.Name)
			failures = append(failures, fmt.Errorf("%s: %w", dataset.schema.Name, err))
			continue
		}
		loaded = true
	}

	if loaded {
		if err := p.store.HarmonizeNames(ctx); err != nil {
			return errors.Join(append(failures, err)...)
		}
		if opts.UpdatePlayers && !containsFailure(failures, domain.PlayerLogUpdatesSchema.Name) {
			merged, err := p.store.MergeDailyLogs(ctx)
			if err != nil {
				return errors.Join(append(failures, err)...)
			}
			logging.Info(p.logger, "applied daily player update",
				logging.FieldRows, merged)
		}
		if err := p.store.RebuildProjections(ctx); err != nil {
			return errors.Join(append(failures, err)...)
		}
	}

	return errors.Join(failures...)
}

// resolveRun determines the season start year and scoreboard week, asking
// the fantasy league for whatever the options leave unset.
func (p *Pipeline) resolveRun(ctx context.Context, opts Options) (string, int, error) {
	season := opts.Season
	week := opts.Week

	needsSeason := season == "" && (opts.Schedule || opts.InitPlayers || opts.UpdatePlayers)
	if !needsSeason {
		return season, week, nil
	}

	league, err := p.fantasy.League(ctx)
	if err != nil {
		return "", 0, fmt.Errorf("resolve season from league: %w", err)
	}
	logging.Info(p.logger, "resolved league",
		logging.FieldSeason, league.Season, logging.FieldWeek, league.CurrentWeek)
	return league.Season, week, nil
}

// dataset binds a table schema to the fetch producing its rows.
type dataset struct {
	enabled bool
	schema  domain.TableSchema
	fetch   func(ctx context.Context) ([][]string, error)
}

func (p *Pipeline) datasets(opts Options, season string, week int) []dataset {
	return []dataset{
		{
			enabled: opts.Matchups,
			schema:  domain.MatchupsSchema,
			fetch: func(ctx context.Context) ([][]string, error) {
				matchups, err := p.fantasy.FetchMatchups(ctx, week)
				if err != nil {
					return nil, err
				}
				return domain.MatchupRows(matchups), nil
			},
		},
		{
			enabled: opts.Rosters,
			schema:  domain.RostersSchema,
			fetch: func(ctx context.Context) ([][]string, error) {
				slots, err := p.fantasy.FetchRosters(ctx)
				if err != nil {
					return nil, err
				}
				return domain.RosterRows(slots), nil
			},
		},
		{
			enabled: opts.Schedule,
			schema:  domain.ScheduleSchema,
			fetch: func(ctx context.Context) ([][]string, error) {
				games, err := p.stats.FetchSchedule(ctx, season)
				if err != nil {
					return nil, err
				}
				return domain.ScheduleRows(games), nil
			},
		},
		{
			enabled: opts.InitPlayers,
			schema:  domain.PlayerLogsSchema,
			fetch: func(ctx context.Context) ([][]string, error) {
				logs, err := p.stats.FetchPlayerGameLogs(ctx, season)
				if err != nil {
					return nil, err
				}
				return domain.GameLogRows(logs), nil
			},
		},
		{
			enabled: opts.UpdatePlayers,
			schema:  domain.PlayerLogUpdatesSchema,
			fetch: func(ctx context.Context) ([][]string, error) {
				logs, err := p.stats.FetchPlayerGameLogsForDate(ctx, season, opts.UpdateDate)
				if err != nil {
					return nil, err
				}
				return domain.GameLogRows(logs), nil
			},
		},
	}
}

// refreshDataset runs one dataset end to end: fetch, extract to CSV,
// recreate the table, bulk load. The loaded row count must match the file.
func (p *Pipeline) refreshDataset(ctx context.Context, ds dataset) error {
	rows, err := ds.fetch(ctx)
	if err != nil {
		return fmt.Errorf("fetch: %w", err)
	}

	result, err := p.writer.WriteTable(ds.schema, rows)
	if err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	p.metrics.RecordRowsWritten(ds.schema.Name, int64(result.Rows))
	logging.Info(p.logger, "wrote table extract",
		logging.FieldTable, ds.schema.Name,
		logging.FieldPath, result.Path,
		logging.FieldRows, result.Rows)

	if err := p.store.RecreateTable(ctx, ds.schema); err != nil {
		return err
	}

	loadStart := time.Now()
	loadedRows, err := p.store.LoadCSV(ctx, ds.schema, result.Path)
	if err != nil {
		return err
	}
	p.metrics.RecordTableLoad(ds.schema.Name, loadedRows, time.Since(loadStart))
	return nil
}

func containsFailure(failures []error, table string) bool {
	for _, err := range failures {
		if strings.HasPrefix(err.Error(), table+":") {
			return true
		}
	}
	return false
}
