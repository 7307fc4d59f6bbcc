package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8080" {
		t.Fatalf("unexpected port %s", cfg.Port)
	}
	if cfg.DatabaseDir != "db" {
		t.Fatalf("unexpected database dir %s", cfg.DatabaseDir)
	}
	if len(cfg.Competitions) != 2 {
		t.Fatalf("unexpected default competitions %v", cfg.Competitions)
	}
	if cfg.LoadInterval != 24*time.Hour {
		t.Fatalf("unexpected load interval %v", cfg.LoadInterval)
	}
	if cfg.FootballData.BaseURL == "" || cfg.ESPN.BaseURL == "" {
		t.Fatalf("expected provider base URLs to default")
	}
	if cfg.Calendar.CalendarID != "primary" || cfg.Calendar.TokenPath != "token.json" {
		t.Fatalf("unexpected calendar defaults %+v", cfg.Calendar)
	}
	if cfg.Metrics.Enabled {
		t.Fatalf("metrics should default off")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(envPort, "9999")
	t.Setenv(envCompetitions, "Premier League, FIFA World Cup ,")
	t.Setenv(envLoadInterval, "1h30m")
	t.Setenv(envLoadOnBoot, "true")
	t.Setenv(envFootballDataAPIKey, "secret")
	t.Setenv(envMetricsEnabled, "1")

	cfg := Load()

	if cfg.Port != "9999" {
		t.Fatalf("unexpected port %s", cfg.Port)
	}
	if len(cfg.Competitions) != 2 || cfg.Competitions[0] != "Premier League" || cfg.Competitions[1] != "FIFA World Cup" {
		t.Fatalf("unexpected competitions %v", cfg.Competitions)
	}
	if cfg.LoadInterval != 90*time.Minute {
		t.Fatalf("unexpected interval %v", cfg.LoadInterval)
	}
	if !cfg.LoadOnBoot {
		t.Fatalf("expected load on boot")
	}
	if cfg.FootballData.APIKey != "secret" {
		t.Fatalf("unexpected api key %q", cfg.FootballData.APIKey)
	}
	if !cfg.Metrics.Enabled {
		t.Fatalf("expected metrics enabled")
	}
}

func TestEnvHelpersRejectBadValues(t *testing.T) {
	t.Setenv(envLoadInterval, "not-a-duration")
	t.Setenv(envLoadOnBoot, "maybe")

	cfg := Load()
	if cfg.LoadInterval != 24*time.Hour {
		t.Fatalf("bad duration should fall back, got %v", cfg.LoadInterval)
	}
	if cfg.LoadOnBoot {
		t.Fatalf("bad bool should fall back to default")
	}
}
