package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"golang.org/x/oauth2"

	"nba-fantasy-etl/internal/providers"
)

// Endpoint is Yahoo's OAuth2 endpoint pair.
var Endpoint = oauth2.Endpoint{
	AuthURL:  "https://api.login.yahoo.com/oauth2/request_auth",
	TokenURL: "https://api.login.yahoo.com/oauth2/get_token",
}

// Credentials mirrors the private.json file the operator maintains. The
// consent flow that mints the initial refresh token happens outside this
// program; RefreshToken here seeds a fresh token cache.
type Credentials struct {
	ConsumerKey    string `json:"consumer_key"`
	ConsumerSecret string `json:"consumer_secret"`
	RefreshToken   string `json:"refresh_token,omitempty"`
}

// LoadCredentials reads and validates the Yahoo credentials file.
func LoadCredentials(path string) (Credentials, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Credentials{}, fmt.Errorf("read yahoo credentials: %w", err)
	}

	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return Credentials{}, fmt.Errorf("parse yahoo credentials %s: %w", path, err)
	}
	if creds.ConsumerKey == "" || creds.ConsumerSecret == "" {
		return Credentials{}, fmt.Errorf("yahoo credentials %s: consumer_key and consumer_secret are required", path)
	}
	return creds, nil
}

type cachedToken struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	TokenType    string    `json:"token_type"`
	Expiry       time.Time `json:"expiry"`
}

// NewTokenSource builds a self-refreshing token source from the credentials
// and the token cache at cachePath. Refreshed tokens are written back so the
// next run picks them up without another round trip.
func NewTokenSource(ctx context.Context, creds Credentials, cachePath string) (oauth2.TokenSource, error) {
	seed, err := readTokenCache(cachePath)
	if err != nil {
		if creds.RefreshToken == "" {
			return nil, fmt.Errorf("no usable yahoo token: %w", err)
		}
		seed = &oauth2.Token{RefreshToken: creds.RefreshToken}
	}

	conf := &oauth2.Config{
		ClientID:     creds.ConsumerKey,
		ClientSecret: creds.ConsumerSecret,
		Endpoint:     Endpoint,
		RedirectURL:  "oob",
	}

	return &persistingTokenSource{
		inner: conf.TokenSource(ctx, seed),
		path:  cachePath,
		last:  seed,
	}, nil
}

// persistingTokenSource wraps a refreshing token source and writes every new
// token to disk.
type persistingTokenSource struct {
	mu    sync.Mutex
	inner oauth2.TokenSource
	path  string
	last  *oauth2.Token
}

func (s *persistingTokenSource) Token() (*oauth2.Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tok, err := s.inner.Token()
	if err != nil {
		return nil, &providers.AuthError{Provider: ProviderName, Err: err}
	}

	if s.last == nil || tok.AccessToken != s.last.AccessToken {
		if err := writeTokenCache(s.path, tok); err != nil {
			// A stale cache only costs an extra refresh next run.
			return tok, nil
		}
		s.last = tok
	}
	return tok, nil
}

func readTokenCache(path string) (*oauth2.Token, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read token cache: %w", err)
	}

	var cached cachedToken
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, fmt.Errorf("parse token cache %s: %w", path, err)
	}
	if cached.RefreshToken == "" {
		return nil, fmt.Errorf("token cache %s has no refresh token", path)
	}

	return &oauth2.Token{
		AccessToken:  cached.AccessToken,
		RefreshToken: cached.RefreshToken,
		TokenType:    cached.TokenType,
		Expiry:       cached.Expiry,
	}, nil
}

func writeTokenCache(path string, tok *oauth2.Token) error {
	cached := cachedToken{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		TokenType:    tok.TokenType,
		Expiry:       tok.Expiry,
	}
	data, err := json.MarshalIndent(cached, "", "  ")
	if err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
