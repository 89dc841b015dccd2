// Package config provides configuration management functionality.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	DataDir  string // Base directory for the document database (always absolute)
	LogLevel string
	Port     int
	DevMode  bool

	CacheTTL       time.Duration // How long a cached ticker document is served
	RecentWindow   time.Duration // AHI_timestamp age that counts as recently updated
	TrendingWindow time.Duration // Age of trending documents read by the trending endpoints
	RequestTimeout time.Duration

	CacheSweepSchedule    string // Cron spec with seconds; empty disables the sweep
	TrendingPruneSchedule string // Cron spec with seconds; empty disables pruning
	TrendingRetention     time.Duration
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	dataDir := getEnv("TICKERPULSE_DATA_DIR", "./data")

	absDataDir, err := filepath.Abs(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve data directory path: %w", err)
	}

	if err := os.MkdirAll(absDataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	cfg := &Config{
		DataDir:  absDataDir,
		Port:     getEnvAsInt("GO_PORT", 8080),
		DevMode:  getEnvAsBool("DEV_MODE", false),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		CacheTTL:       getEnvAsDuration("CACHE_TTL", 10*time.Minute),
		RecentWindow:   getEnvAsDuration("RECENT_WINDOW", time.Hour),
		TrendingWindow: getEnvAsDuration("TRENDING_WINDOW", time.Hour),
		RequestTimeout: getEnvAsDuration("REQUEST_TIMEOUT", 60*time.Second),

		CacheSweepSchedule:    getEnv("CACHE_SWEEP_SCHEDULE", ""),
		TrendingPruneSchedule: getEnv("TRENDING_PRUNE_SCHEDULE", ""),
		TrendingRetention:     getEnvAsDuration("TRENDING_RETENTION", 24*time.Hour),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// DatabasePath returns the path of the document database inside DataDir
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, "documents.db")
}

// Validate checks if the configuration is usable
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("GO_PORT must be between 1 and 65535, got %d", c.Port)
	}

	positive := []struct {
		name  string
		value time.Duration
	}{
		{"CACHE_TTL", c.CacheTTL},
		{"RECENT_WINDOW", c.RecentWindow},
		{"TRENDING_WINDOW", c.TrendingWindow},
		{"REQUEST_TIMEOUT", c.RequestTimeout},
		{"TRENDING_RETENTION", c.TrendingRetention},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%s must be positive, got %s", p.name, p.value)
		}
	}

	// Pruning inside the read window would hide live trending documents
	if c.TrendingRetention < c.TrendingWindow {
		return fmt.Errorf("TRENDING_RETENTION (%s) must not be shorter than TRENDING_WINDOW (%s)",
			c.TrendingRetention, c.TrendingWindow)
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

// getEnvAsDuration accepts Go durations ("90s", "10m") or a bare number of seconds
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}
