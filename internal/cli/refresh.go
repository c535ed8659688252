package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"nba-fantasy-etl/internal/config"
	"nba-fantasy-etl/internal/csvfile"
	"nba-fantasy-etl/internal/logging"
	"nba-fantasy-etl/internal/metrics"
	"nba-fantasy-etl/internal/pipeline"
	"nba-fantasy-etl/internal/providers"
	"nba-fantasy-etl/internal/providers/nbastats"
	"nba-fantasy-etl/internal/providers/yahoo"
	"nba-fantasy-etl/internal/store/postgres"
	"nba-fantasy-etl/internal/timeutil"
)

var refreshFlags struct {
	all           bool
	matchups      bool
	rosters       bool
	schedule      bool
	initPlayers   bool
	updatePlayers bool
	week          int
	date          string
}

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Fetch the selected datasets and reload their database tables",
	Long: `Fetch the selected datasets, write each one to a CSV extract under the
data directory, and replace the matching PostgreSQL table with the extract's
contents. After the loads, name spellings are harmonized across vendors and
the rest-of-week projections are rebuilt.

--init-players downloads the full season of player game logs;
--update-players fetches a single game date (default today) and merges it
into the season table. The two are mutually exclusive.`,
	RunE: runRefresh,
}

func init() {
	rootCmd.AddCommand(refreshCmd)

	refreshCmd.Flags().BoolVar(&refreshFlags.all, "all", false, "Refresh matchups, rosters, schedule and the full player download")
	refreshCmd.Flags().BoolVar(&refreshFlags.matchups, "matchups", false, "Refresh the weekly matchup scoreboard")
	refreshCmd.Flags().BoolVar(&refreshFlags.rosters, "rosters", false, "Refresh every team's roster")
	refreshCmd.Flags().BoolVar(&refreshFlags.schedule, "schedule", false, "Refresh the NBA season schedule")
	refreshCmd.Flags().BoolVar(&refreshFlags.initPlayers, "init-players", false, "Download the full season of player game logs")
	refreshCmd.Flags().BoolVar(&refreshFlags.updatePlayers, "update-players", false, "Fetch one game date of player logs and merge it in")
	refreshCmd.Flags().IntVar(&refreshFlags.week, "week", 0, "Scoreboard week to fetch (0 = the league's current week)")
	refreshCmd.Flags().StringVar(&refreshFlags.date, "date", "", "Game date for --update-players as YYYY-MM-DD (default today)")
}

func runRefresh(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	cfg := config.Load()
	opts, err := buildOptions(cfg.Season)
	if err != nil {
		return err
	}

	logger := logging.NewLogger(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: "fantasy-etl",
		Version: buildVersion,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	recorder, promHandler, shutdownMetrics, err := metrics.Setup(ctx, metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	})
	if err != nil {
		return fmt.Errorf("set up metrics: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownMetrics(shutdownCtx); err != nil {
			logging.Warn(logger, "metrics shutdown failed", "error", err)
		}
	}()
	if promHandler != nil {
		stopListener, err := serveMetrics(cfg.Metrics.Port, promHandler, logger)
		if err != nil {
			return err
		}
		defer stopListener()
	}

	retryCfg := providers.RetryConfig{
		MaxAttempts:  cfg.Retry.MaxAttempts,
		InitialDelay: cfg.Retry.InitialDelay,
		Logger:       logger,
		Metrics:      recorder,
	}

	fantasy, err := buildFantasyProvider(ctx, cfg, opts, logger, retryCfg)
	if err != nil {
		return err
	}

	statsClient := nbastats.NewClient(nbastats.Config{
		StatsBaseURL:    cfg.NBA.StatsBaseURL,
		ScheduleBaseURL: cfg.NBA.ScheduleBaseURL,
		Timeout:         cfg.NBA.Timeout,
		MinInterval:     cfg.NBA.MinInterval,
		Logger:          logger,
	})
	stats := providers.NewRetryingStatsProvider(statsClient, nbastats.ProviderName, retryCfg)

	login, err := config.LoadSQLLogin(cfg.SQL.LoginFile)
	if err != nil {
		return err
	}
	store, err := postgres.Connect(ctx, login.DSN(), logger)
	if err != nil {
		return err
	}
	defer store.Close()

	p := pipeline.New(pipeline.Config{
		Fantasy: fantasy,
		Stats:   stats,
		Writer:  csvfile.NewWriter(cfg.DataDir),
		Store:   store,
		Logger:  logger,
		Metrics: recorder,
	})

	if err := p.Run(ctx, opts); err != nil {
		logging.Error(logger, "refresh failed", err)
		return err
	}
	logging.Info(logger, "refresh complete")
	return nil
}

func buildOptions(season string) (pipeline.Options, error) {
	f := refreshFlags
	opts := pipeline.Options{
		Matchups:      f.matchups || f.all,
		Rosters:       f.rosters || f.all,
		Schedule:      f.schedule || f.all,
		InitPlayers:   f.initPlayers || f.all,
		UpdatePlayers: f.updatePlayers,
		Week:          f.week,
		Season:        season,
	}

	if f.all && f.updatePlayers {
		return pipeline.Options{}, errors.New("--all already includes the full player download; drop --update-players")
	}
	if f.date != "" {
		if !opts.UpdatePlayers {
			return pipeline.Options{}, errors.New("--date only applies with --update-players")
		}
		date, err := timeutil.ParseDate(f.date)
		if err != nil {
			return pipeline.Options{}, fmt.Errorf("parse --date: %w", err)
		}
		opts.UpdateDate = date
	}
	return opts, nil
}

// buildFantasyProvider wires the Yahoo side. Runs that never touch Yahoo
// (a schedule-only refresh with a pinned season) skip the credentials file.
func buildFantasyProvider(ctx context.Context, cfg config.Config, opts pipeline.Options, logger *slog.Logger, retryCfg providers.RetryConfig) (providers.FantasyProvider, error) {
	needsYahoo := opts.Matchups || opts.Rosters ||
		(opts.Season == "" && (opts.Schedule || opts.InitPlayers || opts.UpdatePlayers))
	if !needsYahoo {
		return providers.NewRetryingFantasyProvider(nil, yahoo.ProviderName, retryCfg), nil
	}

	creds, err := yahoo.LoadCredentials(cfg.Yahoo.CredentialsFile)
	if err != nil {
		return nil, err
	}
	source, err := yahoo.NewTokenSource(ctx, creds, cfg.Yahoo.TokenCacheFile)
	if err != nil {
		return nil, err
	}

	client := yahoo.NewClient(yahoo.Config{
		BaseURL:     cfg.Yahoo.BaseURL,
		LeagueID:    cfg.Yahoo.LeagueID,
		TokenSource: source,
		Timeout:     cfg.Yahoo.Timeout,
		Logger:      logger,
	})
	return providers.NewRetryingFantasyProvider(client, yahoo.ProviderName, retryCfg), nil
}

// serveMetrics exposes the Prometheus handler for the duration of the run.
func serveMetrics(port string, handler http.Handler, logger *slog.Logger) (func(), error) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", handler)

	listener, err := net.Listen("tcp", net.JoinHostPort("", port))
	if err != nil {
		return nil, fmt.Errorf("metrics listener: %w", err)
	}

	server := &http.Server{Handler: mux}
	go func() {
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Warn(logger, "metrics server stopped", "error", err)
		}
	}()
	logging.Info(logger, "metrics listening", "addr", listener.Addr().String())

	return func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}, nil
}
