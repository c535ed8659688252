package testutil

import (
	"io"
	"net/http"
	"strings"
)

// RoundTripFunc adapts a function into an http.RoundTripper.
type RoundTripFunc func(req *http.Request) (*http.Response, error)

func (f RoundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// JSONResponse builds a canned *http.Response with a JSON body.
func JSONResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

// RouteClient returns an *http.Client that serves canned JSON bodies keyed
// by URL path prefix and records the requests it saw. The longest matching
// prefix wins, so overlapping routes behave like a mux.
func RouteClient(routes map[string]string, seen *[]*http.Request) *http.Client {
	return &http.Client{
		Transport: RoundTripFunc(func(req *http.Request) (*http.Response, error) {
			if seen != nil {
				*seen = append(*seen, req)
			}
			var best string
			found := false
			for prefix := range routes {
				if strings.HasPrefix(req.URL.Path, prefix) && len(prefix) >= len(best) {
					best = prefix
					found = true
				}
			}
			if found {
				return JSONResponse(http.StatusOK, routes[best]), nil
			}
			return JSONResponse(http.StatusNotFound, `{"error":"no route"}`), nil
		}),
	}
}
