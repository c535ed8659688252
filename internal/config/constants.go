package config

import "time"

const (
	envDataDir           = "DATA_DIR"
	envSeason            = "SEASON"
	envYahooBaseURL      = "YAHOO_BASE_URL"
	envYahooLeagueID     = "YAHOO_LEAGUE_ID"
	envYahooCredentials  = "YAHOO_CREDENTIALS_FILE"
	envYahooTokenCache   = "YAHOO_TOKEN_CACHE_FILE"
	envStatsBaseURL      = "NBA_STATS_BASE_URL"
	envScheduleBaseURL   = "NBA_SCHEDULE_BASE_URL"
	envRequestTimeout    = "REQUEST_TIMEOUT"
	envStatsInterval     = "NBA_STATS_MIN_INTERVAL"
	envRetryAttempts     = "RETRY_MAX_ATTEMPTS"
	envRetryInitialDelay = "RETRY_INITIAL_DELAY"
	envSQLLoginFile      = "SQL_LOGIN_FILE"
	envLogLevel          = "LOG_LEVEL"
	envLogFormat         = "LOG_FORMAT"
	envMetricsPort       = "METRICS_PORT"
	envMetricsOn         = "METRICS_ENABLED"
	envOtelEndpoint      = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService       = "OTEL_SERVICE_NAME"
	envOtelInsecure      = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultDataDir          = "./data"
	defaultYahooBaseURL     = "https://fantasysports.yahooapis.com/fantasy/v2"
	defaultYahooCredentials = "./private.json"
	defaultYahooTokenCache  = "./token_cache.json"
	defaultStatsBaseURL     = "https://stats.nba.com/stats"
	defaultScheduleBaseURL  = "https://data.nba.com/data/10s/v2015/json/mobile_teams/nba"
	defaultRequestTimeout   = 30 * time.Second
	// stats.nba.com throttles aggressively; keep successive calls spaced out.
	defaultStatsInterval     = 2 * time.Second
	defaultRetryAttempts     = 3
	defaultRetryInitialDelay = time.Second
	defaultSQLLoginFile      = "./sql_login.json"
	defaultMetricsPort       = "9090"
	defaultLogLevel          = "info"
	defaultLogFormat         = "text"
)
