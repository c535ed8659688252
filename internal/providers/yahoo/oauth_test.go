package yahoo

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/oauth2"
)

func TestLoadCredentials(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "private.json")
	contents := `{"consumer_key":"dj0key","consumer_secret":"s3cret","refresh_token":"refresh-1"}`
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatal(err)
	}

	creds, err := LoadCredentials(path)
	if err != nil {
		t.Fatalf("LoadCredentials() error = %v", err)
	}
	if creds.ConsumerKey != "dj0key" || creds.ConsumerSecret != "s3cret" {
		t.Errorf("creds = %+v, want dj0key/s3cret", creds)
	}
	if creds.RefreshToken != "refresh-1" {
		t.Errorf("RefreshToken = %q, want refresh-1", creds.RefreshToken)
	}
}

func TestLoadCredentialsRejectsIncomplete(t *testing.T) {
	tests := []struct {
		name     string
		contents string
	}{
		{name: "missing secret", contents: `{"consumer_key":"dj0key"}`},
		{name: "missing key", contents: `{"consumer_secret":"s3cret"}`},
		{name: "not json", contents: `consumer_key=dj0key`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "private.json")
			if err := os.WriteFile(path, []byte(tt.contents), 0o600); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadCredentials(path); err == nil {
				t.Error("LoadCredentials() error = nil, want non-nil")
			}
		})
	}
}

func TestLoadCredentialsMissingFile(t *testing.T) {
	if _, err := LoadCredentials(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("LoadCredentials() error = nil, want non-nil")
	}
}

func TestTokenCacheRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token_cache.json")
	expiry := time.Date(2021, time.March, 28, 12, 0, 0, 0, time.UTC)

	tok := &oauth2.Token{
		AccessToken:  "access-1",
		RefreshToken: "refresh-1",
		TokenType:    "bearer",
		Expiry:       expiry,
	}
	if err := writeTokenCache(path, tok); err != nil {
		t.Fatalf("writeTokenCache() error = %v", err)
	}

	got, err := readTokenCache(path)
	if err != nil {
		t.Fatalf("readTokenCache() error = %v", err)
	}
	if got.AccessToken != "access-1" || got.RefreshToken != "refresh-1" {
		t.Errorf("tokens = %q/%q, want access-1/refresh-1", got.AccessToken, got.RefreshToken)
	}
	if got.TokenType != "bearer" {
		t.Errorf("TokenType = %q, want bearer", got.TokenType)
	}
	if !got.Expiry.Equal(expiry) {
		t.Errorf("Expiry = %s, want %s", got.Expiry, expiry)
	}
}

func TestReadTokenCacheRequiresRefreshToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token_cache.json")
	if err := os.WriteFile(path, []byte(`{"access_token":"access-1"}`), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := readTokenCache(path); err == nil {
		t.Error("readTokenCache() error = nil, want non-nil for cache without refresh token")
	}
}

func TestNewTokenSourceSeedsFromCredentials(t *testing.T) {
	// No cache on disk: the credentials' refresh token seeds the source.
	path := filepath.Join(t.TempDir(), "token_cache.json")
	creds := Credentials{ConsumerKey: "dj0key", ConsumerSecret: "s3cret", RefreshToken: "refresh-1"}

	if _, err := NewTokenSource(context.Background(), creds, path); err != nil {
		t.Fatalf("NewTokenSource() error = %v", err)
	}
}

func TestNewTokenSourceWithoutAnyToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token_cache.json")
	creds := Credentials{ConsumerKey: "dj0key", ConsumerSecret: "s3cret"}

	if _, err := NewTokenSource(context.Background(), creds, path); err == nil {
		t.Error("NewTokenSource() error = nil, want non-nil without cache or refresh token")
	}
}

func TestPersistingTokenSourceWritesNewTokens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token_cache.json")
	fresh := &oauth2.Token{
		AccessToken:  "access-2",
		RefreshToken: "refresh-2",
		TokenType:    "bearer",
		Expiry:       time.Now().Add(time.Hour),
	}

	source := &persistingTokenSource{
		inner: oauth2.StaticTokenSource(fresh),
		path:  path,
		last:  &oauth2.Token{AccessToken: "access-1", RefreshToken: "refresh-1"},
	}

	got, err := source.Token()
	if err != nil {
		t.Fatalf("Token() error = %v", err)
	}
	if got.AccessToken != "access-2" {
		t.Errorf("AccessToken = %q, want access-2", got.AccessToken)
	}

	cached, err := readTokenCache(path)
	if err != nil {
		t.Fatalf("readTokenCache() error = %v", err)
	}
	if cached.RefreshToken != "refresh-2" {
		t.Errorf("cached RefreshToken = %q, want refresh-2", cached.RefreshToken)
	}
}
