package nbastats

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"nba-fantasy-etl/internal/providers"
	"nba-fantasy-etl/internal/testutil"
)

func newTestClient(routes map[string]string, seen *[]*http.Request) *Client {
	return NewClient(Config{
		StatsBaseURL:    "https://stats.test/stats",
		ScheduleBaseURL: "https://data.test/nba",
		HTTPClient:      testutil.RouteClient(routes, seen),
	})
}

func TestFetchPlayerGameLogs(t *testing.T) {
	var seen []*http.Request
	client := newTestClient(map[string]string{
		"/stats/playergamelogs": gameLogsFixture,
	}, &seen)

	logs, err := client.FetchPlayerGameLogs(context.Background(), "2020")
	if err != nil {
		t.Fatalf("FetchPlayerGameLogs() error = %v", err)
	}
	if len(logs) != 2 {
		t.Fatalf("FetchPlayerGameLogs() returned %d rows, want 2", len(logs))
	}

	req := seen[0]
	query := req.URL.Query()
	if got := query.Get("Season"); got != "2020-21" {
		t.Errorf("Season = %q, want 2020-21", got)
	}
	if query.Get("DateFrom") != "" || query.Get("DateTo") != "" {
		t.Errorf("date bounds = %q/%q, want empty for a full season",
			query.Get("DateFrom"), query.Get("DateTo"))
	}
	// The endpoint rejects requests missing any of its parameters.
	for _, key := range []string{"LeagueID", "PerMode", "SeasonType", "TeamID"} {
		if _, ok := query[key]; !ok {
			t.Errorf("query missing %s parameter", key)
		}
	}
	if got := req.Header.Get("Referer"); got != "https://www.nba.com/" {
		t.Errorf("Referer = %q, want https://www.nba.com/", got)
	}
	if req.Header.Get("User-Agent") == "" || req.Header.Get("Accept") != "application/json" {
		t.Error("request missing browser headers")
	}
}

func TestFetchPlayerGameLogsForDate(t *testing.T) {
	var seen []*http.Request
	client := newTestClient(map[string]string{
		"/stats/playergamelogs": gameLogsFixture,
	}, &seen)

	day := time.Date(2021, time.March, 22, 0, 0, 0, 0, time.UTC)
	if _, err := client.FetchPlayerGameLogsForDate(context.Background(), "2020", day); err != nil {
		t.Fatalf("FetchPlayerGameLogsForDate() error = %v", err)
	}

	query := seen[0].URL.Query()
	if got := query.Get("DateFrom"); got != "03/22/2021" {
		t.Errorf("DateFrom = %q, want 03/22/2021", got)
	}
	if got := query.Get("DateTo"); got != "03/22/2021" {
		t.Errorf("DateTo = %q, want 03/22/2021", got)
	}
}

func TestFetchGameLogsBadSeason(t *testing.T) {
	client := newTestClient(nil, nil)
	if _, err := client.FetchPlayerGameLogs(context.Background(), "not-a-year"); err == nil {
		t.Error("FetchPlayerGameLogs() error = nil, want non-nil for a bad season year")
	}
}

func TestFetchSchedule(t *testing.T) {
	var seen []*http.Request
	client := newTestClient(map[string]string{
		"/nba/2020/league/00_full_schedule.json": scheduleFixture,
	}, &seen)

	games, err := client.FetchSchedule(context.Background(), "2020")
	if err != nil {
		t.Fatalf("FetchSchedule() error = %v", err)
	}
	if len(games) != 3 {
		t.Fatalf("FetchSchedule() returned %d games, want 3", len(games))
	}
	if want := "/nba/2020/league/00_full_schedule.json"; seen[0].URL.Path != want {
		t.Errorf("schedule path = %s, want %s", seen[0].URL.Path, want)
	}
}

func TestGetMapsRateLimit(t *testing.T) {
	client := NewClient(Config{
		StatsBaseURL: "https://stats.test/stats",
		HTTPClient: &http.Client{
			Transport: testutil.RoundTripFunc(func(req *http.Request) (*http.Response, error) {
				resp := testutil.JSONResponse(http.StatusTooManyRequests, `{"error":"slow down"}`)
				resp.Header.Set("Retry-After", "60")
				return resp, nil
			}),
		},
	})

	_, err := client.FetchPlayerGameLogs(context.Background(), "2020")
	rateErr, ok := providers.AsRateLimitError(err)
	if !ok {
		t.Fatalf("error = %v, want RateLimitError", err)
	}
	if rateErr.Provider != ProviderName {
		t.Errorf("Provider = %q, want %q", rateErr.Provider, ProviderName)
	}
	if rateErr.RetryAfter != 60*time.Second {
		t.Errorf("RetryAfter = %s, want 60s", rateErr.RetryAfter)
	}
}

func TestWaitTurnSpacesCalls(t *testing.T) {
	client := NewClient(Config{MinInterval: 30 * time.Millisecond})

	start := time.Now()
	for i := 0; i < 3; i++ {
		if err := client.waitTurn(context.Background()); err != nil {
			t.Fatalf("waitTurn() error = %v", err)
		}
	}
	if elapsed := time.Since(start); elapsed < 60*time.Millisecond {
		t.Errorf("three calls took %s, want at least 60ms of spacing", elapsed)
	}
}

func TestWaitTurnHonorsContext(t *testing.T) {
	client := NewClient(Config{MinInterval: time.Minute})

	if err := client.waitTurn(context.Background()); err != nil {
		t.Fatalf("first waitTurn() error = %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := client.waitTurn(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("waitTurn() error = %v, want DeadlineExceeded", err)
	}
}
