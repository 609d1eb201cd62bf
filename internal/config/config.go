// Package config provides centralized configuration loaded from environment
// variables. Shared by both cmd/api and cmd/impostor.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultAPISportsBaseURL is the API-Football v3 endpoint.
const DefaultAPISportsBaseURL = "https://v3.football.api-sports.io"

// ConfigError reports a required variable that is not set.
type ConfigError struct {
	Key string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s is not configured (set it in the environment or .env)", e.Key)
}

// --------------------------------------------------------------------------
// Config struct: populated from environment variables
// --------------------------------------------------------------------------

type Config struct {
	// Upstream API-Football
	APISportsKey     string
	APISportsBaseURL string
	APISportsTimeout time.Duration
	APISportsMaxPage int

	// API server
	APIHost     string
	APIPort     int
	Environment string // development, staging, production
	Debug       bool
	MCPEnabled  bool // serve the game as MCP tools at /mcp

	// CORS
	CORSAllowOrigins []string

	// Rate limiting (inbound)
	RateLimitEnabled  bool
	RateLimitRequests int
	RateLimitWindow   time.Duration

	// Game pipeline
	CensusSeason   int
	PlayerSeasons  []int // priority order
	CacheFirst     bool
	PartialResults bool
	RandomSeed     uint64 // 0 = seeded from the clock
}

// Load reads configuration from environment variables with sensible defaults.
// A missing APISPORTS_KEY is returned as *ConfigError before anything touches
// the network.
func Load() (*Config, error) {
	key := strings.TrimSpace(os.Getenv("APISPORTS_KEY"))
	if key == "" {
		return nil, &ConfigError{Key: "APISPORTS_KEY"}
	}

	seasons, err := envIntList("PLAYER_SEASONS", []int{2024, 2023})
	if err != nil {
		return nil, err
	}
	seed, err := envUint64("RANDOM_SEED", 0)
	if err != nil {
		return nil, err
	}

	return &Config{
		APISportsKey:     key,
		APISportsBaseURL: strings.TrimSuffix(envOr("APISPORTS_BASE_URL", DefaultAPISportsBaseURL), "/"),
		APISportsTimeout: time.Duration(envInt("APISPORTS_TIMEOUT_SECONDS", 30)) * time.Second,
		APISportsMaxPage: envInt("APISPORTS_MAX_PAGES", 50),

		APIHost:     envOr("API_HOST", "0.0.0.0"),
		APIPort:     envInt("API_PORT", envInt("PORT", 8000)),
		Environment: envOr("ENVIRONMENT", "development"),
		Debug:       envBool("DEBUG", false),
		MCPEnabled:  envBool("MCP_ENABLED", true),

		CORSAllowOrigins: envList("CORS_ALLOW_ORIGINS", []string{
			"http://localhost:3000",
			"http://localhost:5000",
			"http://localhost:5173",
		}),

		RateLimitEnabled:  envBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequests: envInt("RATE_LIMIT_REQUESTS", 60),
		RateLimitWindow:   time.Duration(envInt("RATE_LIMIT_WINDOW", 60)) * time.Second,

		CensusSeason:   envInt("CENSUS_SEASON", 2024),
		PlayerSeasons:  seasons,
		CacheFirst:     envBool("RESOLVE_CACHE_FIRST", true),
		PartialResults: envBool("PARTIAL_RESULTS_ON_ERROR", true),
		RandomSeed:     seed,
	}, nil
}

// IsProduction returns true if running in production environment.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// --------------------------------------------------------------------------
// Env helpers
// --------------------------------------------------------------------------

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

// envUint64 rejects negative and malformed values.
func envUint64(key string, fallback uint64) (uint64, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid value %q: %w", key, v, err)
	}
	return n, nil
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return fallback
}

// envIntList parses a comma-separated list of integers, keeping order.
// Unlike the scalar helpers, a malformed entry is an error.
func envIntList(key string, fallback []int) ([]int, error) {
	raw := envList(key, nil)
	if len(raw) == 0 {
		return fallback, nil
	}
	result := make([]int, 0, len(raw))
	for _, s := range raw {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("%s: invalid entry %q: %w", key, s, err)
		}
		result = append(result, n)
	}
	return result, nil
}
