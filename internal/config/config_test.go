package config

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

func TestLoadRequiresAPIKey(t *testing.T) {
	t.Setenv("APISPORTS_KEY", "")

	_, err := Load()
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected *ConfigError, got %v", err)
	}
	if cfgErr.Key != "APISPORTS_KEY" {
		t.Fatalf("expected key APISPORTS_KEY, got %q", cfgErr.Key)
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APISPORTS_KEY", "secret")
	for _, k := range []string{
		"APISPORTS_BASE_URL", "APISPORTS_TIMEOUT_SECONDS", "APISPORTS_MAX_PAGES",
		"API_PORT", "PORT", "PLAYER_SEASONS", "CENSUS_SEASON",
		"RESOLVE_CACHE_FIRST", "PARTIAL_RESULTS_ON_ERROR", "RANDOM_SEED",
	} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.APISportsBaseURL != DefaultAPISportsBaseURL {
		t.Errorf("base url = %q", cfg.APISportsBaseURL)
	}
	if cfg.APISportsTimeout != 30*time.Second {
		t.Errorf("timeout = %v", cfg.APISportsTimeout)
	}
	if cfg.APIPort != 8000 {
		t.Errorf("port = %d", cfg.APIPort)
	}
	if !reflect.DeepEqual(cfg.PlayerSeasons, []int{2024, 2023}) {
		t.Errorf("seasons = %v", cfg.PlayerSeasons)
	}
	if cfg.CensusSeason != 2024 {
		t.Errorf("census season = %d", cfg.CensusSeason)
	}
	if !cfg.CacheFirst || !cfg.PartialResults {
		t.Errorf("expected cache-first and partial results by default")
	}
	if cfg.RandomSeed != 0 {
		t.Errorf("seed = %d", cfg.RandomSeed)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APISPORTS_KEY", "secret")
	t.Setenv("APISPORTS_BASE_URL", "http://localhost:9999/")
	t.Setenv("PLAYER_SEASONS", "2023, 2022 ,2021")
	t.Setenv("RESOLVE_CACHE_FIRST", "false")
	t.Setenv("RANDOM_SEED", "42")
	t.Setenv("PORT", "9090")
	t.Setenv("API_PORT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.APISportsBaseURL != "http://localhost:9999" {
		t.Errorf("base url = %q", cfg.APISportsBaseURL)
	}
	if !reflect.DeepEqual(cfg.PlayerSeasons, []int{2023, 2022, 2021}) {
		t.Errorf("seasons = %v", cfg.PlayerSeasons)
	}
	if cfg.CacheFirst {
		t.Errorf("expected cache-first disabled")
	}
	if cfg.RandomSeed != 42 {
		t.Errorf("seed = %d", cfg.RandomSeed)
	}
	if cfg.APIPort != 9090 {
		t.Errorf("port = %d", cfg.APIPort)
	}
}

func TestLoadRejectsMalformedSeasons(t *testing.T) {
	t.Setenv("APISPORTS_KEY", "secret")
	t.Setenv("PLAYER_SEASONS", "2024,last")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for malformed season list")
	}
}

func TestLoadRejectsBadSeed(t *testing.T) {
	for _, v := range []string{"-1", "seven"} {
		t.Run(v, func(t *testing.T) {
			t.Setenv("APISPORTS_KEY", "secret")
			t.Setenv("PLAYER_SEASONS", "")
			t.Setenv("RANDOM_SEED", v)

			if _, err := Load(); err == nil {
				t.Fatalf("expected error for RANDOM_SEED=%q", v)
			}
		})
	}
}
