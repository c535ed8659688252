package config

import "time"

// Config holds runtime configuration for a pipeline run.
type Config struct {
	// DataDir is where CSV artifacts land.
	DataDir string
	// Season optionally pins the season start year ("2020" means 2020-21).
	// When empty the season comes from the Yahoo league metadata.
	Season string

	Yahoo   YahooConfig
	NBA     NBAConfig
	Retry   RetryConfig
	SQL     SQLConfig
	Metrics MetricsConfig
	Log     LogConfig
}

// LogConfig controls log verbosity and rendering.
type LogConfig struct {
	Level  string
	Format string
}

// YahooConfig controls how we talk to the Yahoo Fantasy Sports API.
type YahooConfig struct {
	BaseURL         string
	LeagueID        string
	CredentialsFile string
	TokenCacheFile  string
	Timeout         time.Duration
}

// NBAConfig controls how we talk to the NBA stats and schedule endpoints.
type NBAConfig struct {
	StatsBaseURL    string
	ScheduleBaseURL string
	Timeout         time.Duration
	// MinInterval spaces successive stats.nba.com calls to stay under the
	// site's informal quota.
	MinInterval time.Duration
}

// RetryConfig tunes the retrying provider decorators.
type RetryConfig struct {
	MaxAttempts  int
	InitialDelay time.Duration
}

// SQLConfig locates the database login file.
type SQLConfig struct {
	LoginFile string
}

// MetricsConfig controls telemetry export settings.
type MetricsConfig struct {
	Enabled      bool
	Port         string
	OtlpEndpoint string
	ServiceName  string
	OtlpInsecure bool
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		DataDir: envOrDefault(envDataDir, defaultDataDir),
		Season:  envOrDefault(envSeason, ""),
		Yahoo: YahooConfig{
			BaseURL:         envOrDefault(envYahooBaseURL, defaultYahooBaseURL),
			LeagueID:        envOrDefault(envYahooLeagueID, ""),
			CredentialsFile: envOrDefault(envYahooCredentials, defaultYahooCredentials),
			TokenCacheFile:  envOrDefault(envYahooTokenCache, defaultYahooTokenCache),
			Timeout:         durationEnvOrDefault(envRequestTimeout, defaultRequestTimeout),
		},
		NBA: NBAConfig{
			StatsBaseURL:    envOrDefault(envStatsBaseURL, defaultStatsBaseURL),
			ScheduleBaseURL: envOrDefault(envScheduleBaseURL, defaultScheduleBaseURL),
			Timeout:         durationEnvOrDefault(envRequestTimeout, defaultRequestTimeout),
			MinInterval:     durationEnvOrDefault(envStatsInterval, defaultStatsInterval),
		},
		Retry: RetryConfig{
			MaxAttempts:  intEnvOrDefault(envRetryAttempts, defaultRetryAttempts),
			InitialDelay: durationEnvOrDefault(envRetryInitialDelay, defaultRetryInitialDelay),
		},
		SQL: SQLConfig{
			LoginFile: envOrDefault(envSQLLoginFile, defaultSQLLoginFile),
		},
		Metrics: loadMetrics(),
		Log: LogConfig{
			Level:  envOrDefault(envLogLevel, defaultLogLevel),
			Format: envOrDefault(envLogFormat, defaultLogFormat),
		},
	}
}

func loadMetrics() MetricsConfig {
	return MetricsConfig{
		Enabled:      boolEnvOrDefault(envMetricsOn, false),
		Port:         envOrDefault(envMetricsPort, defaultMetricsPort),
		OtlpEndpoint: envOrDefault(envOtelEndpoint, ""),
		ServiceName:  envOrDefault(envOtelService, "nba-fantasy-etl"),
		OtlpInsecure: boolEnvOrDefault(envOtelInsecure, true),
	}
}
