package nbastats

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"nba-fantasy-etl/internal/domain"
	"nba-fantasy-etl/internal/providers"
	"nba-fantasy-etl/internal/timeutil"
)

// Config controls how the stats client reaches the NBA endpoints.
type Config struct {
	StatsBaseURL    string
	ScheduleBaseURL string
	HTTPClient      *http.Client
	Timeout         time.Duration
	// MinInterval spaces successive stats.nba.com calls; the site throttles
	// clients that hit it back to back.
	MinInterval time.Duration
	Logger      *slog.Logger
}

// Client fetches the season schedule and per-player game logs from the NBA's
// public endpoints and maps them to domain models.
type Client struct {
	statsBaseURL    string
	scheduleBaseURL string
	http            *http.Client
	minInterval     time.Duration
	logger          *slog.Logger

	mu       sync.Mutex
	nextCall time.Time
}

// NewClient constructs an NBA stats client with the provided configuration.
func NewClient(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{
		statsBaseURL:    normalizeBaseURL(cfg.StatsBaseURL, defaultStatsBaseURL),
		scheduleBaseURL: normalizeBaseURL(cfg.ScheduleBaseURL, defaultScheduleBaseURL),
		http:            httpClient,
		minInterval:     cfg.MinInterval,
		logger:          cfg.Logger,
	}
}

// FetchPlayerGameLogs returns every player's game log for the full season.
func (c *Client) FetchPlayerGameLogs(ctx context.Context, seasonStartYear string) ([]domain.PlayerGameLog, error) {
	return c.fetchGameLogs(ctx, seasonStartYear, time.Time{})
}

// FetchPlayerGameLogsForDate returns the game logs for a single game date,
// used to top up the season table without re-downloading it.
func (c *Client) FetchPlayerGameLogsForDate(ctx context.Context, seasonStartYear string, date time.Time) ([]domain.PlayerGameLog, error) {
	if date.IsZero() {
		date = time.Now()
	}
	return c.fetchGameLogs(ctx, seasonStartYear, date)
}

func (c *Client) fetchGameLogs(ctx context.Context, seasonStartYear string, date time.Time) ([]domain.PlayerGameLog, error) {
	season, err := SeasonString(seasonStartYear)
	if err != nil {
		return nil, err
	}

	query := gameLogsQuery(season, date)
	endpoint := c.statsBaseURL + gameLogsEndpoint + "?" + query.Encode()

	var resp statsResponse
	if err := c.get(ctx, endpoint, true, &resp); err != nil {
		return nil, fmt.Errorf("fetch player game logs: %w", err)
	}

	set, err := findResultSet(resp, "PlayerGameLogs")
	if err != nil {
		return nil, err
	}
	return mapGameLogs(set)
}

// FetchSchedule returns the full season schedule for a season start year.
func (c *Client) FetchSchedule(ctx context.Context, seasonStartYear string) ([]domain.ScheduleGame, error) {
	if _, err := SeasonString(seasonStartYear); err != nil {
		return nil, err
	}

	endpoint := c.scheduleBaseURL + "/" + seasonStartYear + schedulePath

	var resp scheduleResponse
	if err := c.get(ctx, endpoint, false, &resp); err != nil {
		return nil, fmt.Errorf("fetch schedule: %w", err)
	}
	return mapSchedule(resp)
}

// gameLogsQuery builds the playergamelogs query string. The endpoint expects
// every parameter to be present, empty or not.
func gameLogsQuery(season string, date time.Time) url.Values {
	dateValue := ""
	if !date.IsZero() {
		dateValue = timeutil.FormatUSDate(date)
	}

	query := url.Values{}
	for _, key := range []string{
		"GameSegment", "LastNGames", "LeagueID", "Location", "MeasureType",
		"Month", "OppTeamID", "Outcome", "PORound", "PerMode", "Period",
		"PlayerID", "SeasonSegment", "SeasonType", "ShotClockRange", "TeamID",
		"VsConference", "VsDivision",
	} {
		query.Set(key, "")
	}
	query.Set("Season", season)
	query.Set("DateFrom", dateValue)
	query.Set("DateTo", dateValue)
	return query
}

// get performs a throttled GET. Throttling applies only to stats.nba.com;
// the schedule host does not mind.
func (c *Client) get(ctx context.Context, endpoint string, throttled bool, out any) error {
	if throttled {
		if err := c.waitTurn(ctx); err != nil {
			return err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", headerAccept)
	req.Header.Set("Referer", headerReferer)
	req.Header.Set("User-Agent", headerUserAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusTooManyRequests:
		return &providers.RateLimitError{
			Provider:   ProviderName,
			StatusCode: resp.StatusCode,
			RetryAfter: retryAfter(resp.Header.Get("Retry-After")),
		}
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("nba: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode nba response: %w", err)
	}
	return nil
}

// waitTurn blocks until the minimum interval since the previous stats call
// has elapsed, or the context is done.
func (c *Client) waitTurn(ctx context.Context) error {
	if c.minInterval <= 0 {
		return nil
	}

	c.mu.Lock()
	now := time.Now()
	wait := c.nextCall.Sub(now)
	if wait < 0 {
		wait = 0
	}
	c.nextCall = now.Add(wait + c.minInterval)
	c.mu.Unlock()

	if wait == 0 {
		return nil
	}

	timer := time.NewTimer(wait)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func findResultSet(resp statsResponse, name string) (resultSet, error) {
	for _, set := range resp.ResultSets {
		if set.Name == name {
			return set, nil
		}
	}
	return resultSet{}, fmt.Errorf("response has no %s result set", name)
}

func retryAfter(raw string) time.Duration {
	var secs int
	if _, err := fmt.Sscanf(raw, "%d", &secs); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return 0
}

func normalizeBaseURL(raw, fallback string) string {
	if raw == "" {
		raw = fallback
	}
	return strings.TrimRight(raw, "/")
}
