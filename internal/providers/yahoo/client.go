package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/oauth2"

	"nba-fantasy-etl/internal/domain"
	"nba-fantasy-etl/internal/providers"
)

// Config controls how the Yahoo client reaches the fantasy API.
type Config struct {
	BaseURL     string
	LeagueID    string
	TokenSource oauth2.TokenSource
	HTTPClient  *http.Client
	Timeout     time.Duration
	Logger      *slog.Logger
}

// Client fetches league, scoreboard and roster data from the Yahoo Fantasy
// Sports API and maps it to domain models. League metadata is fetched once
// and cached for the lifetime of the client.
type Client struct {
	baseURL  string
	leagueID string
	http     httpDoer
	logger   *slog.Logger

	mu      sync.Mutex
	gameKey string
	league  *domain.League
}

// NewClient constructs a Yahoo client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:  normalizeBaseURL(cfg.BaseURL),
		leagueID: cfg.LeagueID,
		http:     resolveHTTPClient(cfg.HTTPClient, cfg.TokenSource, cfg.Timeout),
		logger:   cfg.Logger,
	}
}

// GameKey returns the Yahoo game key for the current NBA fantasy game.
func (c *Client) GameKey(ctx context.Context) (string, error) {
	c.mu.Lock()
	cached := c.gameKey
	c.mu.Unlock()
	if cached != "" {
		return cached, nil
	}

	var resp apiResponse
	if err := c.get(ctx, "/game/"+gameCode, &resp); err != nil {
		return "", fmt.Errorf("fetch game key: %w", err)
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(resp.FantasyContent.Game, &entries); err != nil {
		return "", fmt.Errorf("decode game payload: %w", err)
	}
	if len(entries) == 0 {
		return "", fmt.Errorf("game payload is empty")
	}
	var meta gameMeta
	if err := json.Unmarshal(entries[0], &meta); err != nil {
		return "", fmt.Errorf("decode game meta: %w", err)
	}
	if meta.GameKey == "" {
		return "", fmt.Errorf("game payload has no game_key")
	}

	c.mu.Lock()
	c.gameKey = meta.GameKey
	c.mu.Unlock()
	return meta.GameKey, nil
}

// League returns the league metadata, fetching it on first use.
func (c *Client) League(ctx context.Context) (domain.League, error) {
	c.mu.Lock()
	if c.league != nil {
		league := *c.league
		c.mu.Unlock()
		return league, nil
	}
	c.mu.Unlock()

	gameKey, err := c.GameKey(ctx)
	if err != nil {
		return domain.League{}, err
	}
	if c.leagueID == "" {
		return domain.League{}, fmt.Errorf("league id not configured")
	}

	var resp apiResponse
	path := fmt.Sprintf("/league/%s.l.%s", gameKey, c.leagueID)
	if err := c.get(ctx, path, &resp); err != nil {
		return domain.League{}, fmt.Errorf("fetch league: %w", err)
	}

	meta, err := decodeLeagueMeta(resp.FantasyContent.League)
	if err != nil {
		return domain.League{}, err
	}

	league := domain.League{
		LeagueKey:   meta.LeagueKey,
		Season:      string(meta.Season),
		CurrentWeek: int(meta.CurrentWeek),
		StartWeek:   int(meta.StartWeek),
		EndWeek:     int(meta.EndWeek),
		NumTeams:    int(meta.NumTeams),
	}

	c.mu.Lock()
	c.league = &league
	c.mu.Unlock()
	return league, nil
}

// FetchMatchups returns the matchup lines for the given scoreboard week.
// Week 0 means the league's current week; any other value must fall inside
// the league's start/end week window.
func (c *Client) FetchMatchups(ctx context.Context, week int) ([]domain.Matchup, error) {
	league, err := c.League(ctx)
	if err != nil {
		return nil, err
	}

	if week == 0 {
		week = league.CurrentWeek
	} else if week < league.StartWeek || week > league.EndWeek {
		return nil, fmt.Errorf("%w: week %d outside %d..%d",
			providers.ErrWeekOutOfRange, week, league.StartWeek, league.EndWeek)
	}

	var resp apiResponse
	path := fmt.Sprintf("/league/%s/scoreboard;week=%d", league.LeagueKey, week)
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, fmt.Errorf("fetch scoreboard: %w", err)
	}

	matchups, err := mapScoreboard(resp.FantasyContent.League, league.Season)
	if err != nil {
		return nil, fmt.Errorf("map scoreboard week %d: %w", week, err)
	}
	return matchups, nil
}

// FetchRosters returns every team's roster in the league. Yahoo team ids are
// dense, so rosters are read per team key from .t.1 through .t.numTeams.
func (c *Client) FetchRosters(ctx context.Context) ([]domain.RosterSlot, error) {
	league, err := c.League(ctx)
	if err != nil {
		return nil, err
	}

	var slots []domain.RosterSlot
	for teamID := 1; teamID <= league.NumTeams; teamID++ {
		teamKey := fmt.Sprintf("%s.t.%d", league.LeagueKey, teamID)

		var resp apiResponse
		if err := c.get(ctx, "/team/"+teamKey+"/roster/players", &resp); err != nil {
			return nil, fmt.Errorf("fetch roster %s: %w", teamKey, err)
		}

		teamSlots, err := mapRoster(resp.FantasyContent.Team)
		if err != nil {
			return nil, fmt.Errorf("map roster %s: %w", teamKey, err)
		}
		slots = append(slots, teamSlots...)
	}
	return slots, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	url := c.baseURL + path + "?format=json"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return &providers.AuthError{
			Provider: ProviderName,
			Err:      fmt.Errorf("status %d from %s", resp.StatusCode, path),
		}
	case resp.StatusCode == http.StatusTooManyRequests:
		return &providers.RateLimitError{
			Provider:   ProviderName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
		}
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("yahoo: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode yahoo response: %w", err)
	}
	return nil
}

func decodeLeagueMeta(raw json.RawMessage) (leagueMeta, error) {
	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return leagueMeta{}, fmt.Errorf("decode league payload: %w", err)
	}
	if len(entries) == 0 {
		return leagueMeta{}, fmt.Errorf("league payload is empty")
	}
	var meta leagueMeta
	if err := json.Unmarshal(entries[0], &meta); err != nil {
		return leagueMeta{}, fmt.Errorf("decode league meta: %w", err)
	}
	return meta, nil
}

func parseRetryAfter(raw string) time.Duration {
	if raw == "" {
		return 0
	}
	if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return 0
}
