// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:3000"] (Next.js dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// AIAPIKey authenticates against the external text-generation API. Required.
	AIAPIKey string

	// AIBaseURL overrides the text-generation API endpoint, mainly for tests
	// and local stubs. Empty means the vendor default.
	AIBaseURL string

	// AIModel selects the generation model. Empty means the client default.
	AIModel string

	// RepriceInterval is how often the price randomizer runs. Defaults to 10m.
	RepriceInterval time.Duration
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing any required variables that are not set.
func Load() (Config, error) {
	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		CORSOrigins: splitCSV(getEnv("CORS_ORIGINS", "http://localhost:3000")),
		AIBaseURL:   os.Getenv("AI_BASE_URL"),
		AIModel:     os.Getenv("AI_MODEL"),
	}

	var missing []string

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}

	cfg.AIAPIKey = os.Getenv("AI_API_KEY")
	if cfg.AIAPIKey == "" {
		missing = append(missing, "AI_API_KEY")
	}

	interval := getEnv("REPRICE_INTERVAL", "10m")
	d, err := time.ParseDuration(interval)
	if err != nil || d <= 0 {
		return Config{}, fmt.Errorf("invalid REPRICE_INTERVAL %q: must be a positive duration", interval)
	}
	cfg.RepriceInterval = d

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
