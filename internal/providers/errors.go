package providers

import (
	"errors"
	"fmt"
	"time"
)

// ErrProviderUnavailable indicates a decorator was constructed without an
// inner provider.
var ErrProviderUnavailable = errors.New("provider unavailable")

// ErrWeekOutOfRange indicates a scoreboard week outside the league's
// start/end week window was requested.
var ErrWeekOutOfRange = errors.New("week out of range")

// RateLimitError captures rate limit responses from upstream providers.
type RateLimitError struct {
	Provider   string
	StatusCode int
	RetryAfter time.Duration
	Message    string
}

func (e *RateLimitError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "provider rate limited"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	return msg
}

// AsRateLimitError attempts to unwrap an error into a RateLimitError.
func AsRateLimitError(err error) (*RateLimitError, bool) {
	var rlErr *RateLimitError
	if errors.As(err, &rlErr) {
		return rlErr, true
	}
	return nil, false
}

// AuthError captures authentication failures against an upstream provider.
// The Yahoo token exchange is the usual source.
type AuthError struct {
	Provider string
	Err      error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("%s authentication failed: %v", e.Provider, e.Err)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}
