package yahoo

import (
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

func resolveHTTPClient(client *http.Client, source oauth2.TokenSource, timeout time.Duration) httpDoer {
	if client != nil {
		return client
	}
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}

	resolved := &http.Client{Timeout: timeout}
	if source != nil {
		resolved.Transport = &oauth2.Transport{Source: source}
	}
	return resolved
}

func normalizeBaseURL(raw string) string {
	if raw == "" {
		raw = defaultBaseURL
	}
	return strings.TrimSuffix(raw, "/")
}
