package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.DBName != "viral_daily" {
		t.Errorf("DBName = %q, want viral_daily", cfg.DBName)
	}
	if cfg.MockOnly {
		t.Error("MockOnly should default to false")
	}
	if cfg.FetchInterval != 20*time.Minute {
		t.Errorf("FetchInterval = %v, want 20m", cfg.FetchInterval)
	}
	if cfg.HTTPTimeout != 10*time.Second {
		t.Errorf("HTTPTimeout = %v, want 10s", cfg.HTTPTimeout)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("MOCK_ONLY", "true")
	t.Setenv("FETCH_INTERVAL", "5m")

	cfg := Load()

	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want 9090", cfg.Port)
	}
	if !cfg.MockOnly {
		t.Error("MockOnly should be true")
	}
	if cfg.FetchInterval != 5*time.Minute {
		t.Errorf("FetchInterval = %v, want 5m", cfg.FetchInterval)
	}
}

func TestBadValuesFallBackToDefaults(t *testing.T) {
	t.Setenv("MOCK_ONLY", "definitely")
	t.Setenv("HTTP_TIMEOUT", "forever")

	cfg := Load()

	if cfg.MockOnly {
		t.Error("unparseable MOCK_ONLY should fall back to false")
	}
	if cfg.HTTPTimeout != 10*time.Second {
		t.Errorf("HTTPTimeout = %v, want 10s default", cfg.HTTPTimeout)
	}
}
