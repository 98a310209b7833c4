// Package config centralizes the advisor's runtime configuration, loaded
// from environment variables with defaults and validation.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all tunables for the prediction and retrieval pipeline. The
// similarity threshold and minimum-history count are empirical defaults, not
// invariants, so they stay configurable.
type Config struct {
	// Data layer
	CacheDir       string
	CacheTTL       time.Duration
	BaseURL        string
	UserAgent      string
	RequestTimeout time.Duration
	FetchWorkers   int

	// Model settings
	HistoryWindow int
	PlayerLimit   int
	MinHistories  int

	// Retrieval settings
	IntentThreshold float64
	TopK            int
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		CacheDir:        getEnv("FPL_CACHE_DIR", "fpl_cache"),
		CacheTTL:        getEnvDuration("FPL_CACHE_TTL", 6*time.Hour),
		BaseURL:         getEnv("FPL_BASE_URL", "https://fantasy.premierleague.com/api"),
		UserAgent:       getEnv("FPL_USER_AGENT", "fpl-advisor/1.0"),
		RequestTimeout:  getEnvDuration("FPL_REQUEST_TIMEOUT", 20*time.Second),
		FetchWorkers:    getEnvInt("FPL_FETCH_WORKERS", 4),
		HistoryWindow:   getEnvInt("FPL_HISTORY_WINDOW", 5),
		PlayerLimit:     getEnvInt("FPL_PLAYER_LIMIT", 200),
		MinHistories:    getEnvInt("FPL_MIN_HISTORIES", 15),
		IntentThreshold: getEnvFloat("FPL_INTENT_THRESHOLD", 0.3),
		TopK:            getEnvInt("FPL_RETRIEVAL_TOP_K", 5),
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.IntentThreshold < 0 || c.IntentThreshold > 1 {
		return fmt.Errorf("FPL_INTENT_THRESHOLD must be 0-1, got %f", c.IntentThreshold)
	}
	if c.HistoryWindow < 1 {
		return fmt.Errorf("FPL_HISTORY_WINDOW must be >= 1, got %d", c.HistoryWindow)
	}
	if c.TopK < 1 {
		return fmt.Errorf("FPL_RETRIEVAL_TOP_K must be >= 1, got %d", c.TopK)
	}
	if c.FetchWorkers < 1 {
		return fmt.Errorf("FPL_FETCH_WORKERS must be >= 1, got %d", c.FetchWorkers)
	}
	return nil
}

// Helper functions
func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
