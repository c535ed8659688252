package config

import (
	"testing"
	"time"
)

func TestEnvOrDefault(t *testing.T) {
	t.Setenv("CONFIG_TEST_KEY", "")
	if got := envOrDefault("CONFIG_TEST_KEY", "fallback"); got != "fallback" {
		t.Fatalf("expected fallback, got %s", got)
	}
	t.Setenv("CONFIG_TEST_KEY", "set")
	if got := envOrDefault("CONFIG_TEST_KEY", "fallback"); got != "set" {
		t.Fatalf("expected set, got %s", got)
	}
}

func TestDurationEnvOrDefault(t *testing.T) {
	t.Setenv("CONFIG_TEST_DURATION", "90s")
	if got := durationEnvOrDefault("CONFIG_TEST_DURATION", time.Second); got != 90*time.Second {
		t.Fatalf("expected 90s, got %s", got)
	}
	t.Setenv("CONFIG_TEST_DURATION", "not-a-duration")
	if got := durationEnvOrDefault("CONFIG_TEST_DURATION", time.Second); got != time.Second {
		t.Fatalf("expected fallback, got %s", got)
	}
}

func TestBoolEnvOrDefault(t *testing.T) {
	cases := map[string]bool{
		"1": true, "true": true, "YES": true,
		"0": false, "false": false, "no": false,
	}
	for raw, want := range cases {
		t.Setenv("CONFIG_TEST_BOOL", raw)
		if got := boolEnvOrDefault("CONFIG_TEST_BOOL", !want); got != want {
			t.Fatalf("%q: expected %v, got %v", raw, want, got)
		}
	}
	t.Setenv("CONFIG_TEST_BOOL", "maybe")
	if got := boolEnvOrDefault("CONFIG_TEST_BOOL", true); !got {
		t.Fatal("unparseable bool should keep default")
	}
}
