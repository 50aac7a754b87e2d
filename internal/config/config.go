// Package config loads and validates application configuration from
// environment variables. A .env file in the working directory is loaded
// first when present, so local development does not need exported vars.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DatabaseURL is the Postgres connection string for the template
	// store. Required.
	DatabaseURL string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// AnthropicAPIKey enables the travel-time / packing-list assistant.
	// Optional: when empty the assistant degrades to its sentinels.
	AnthropicAPIKey string

	// AssistTimeout bounds each assistant call. Set ASSIST_TIMEOUT_MS to
	// override; defaults to 15s.
	AssistTimeout time.Duration

	// MaxBodyBytes caps incoming request bodies. Imports are the largest
	// payload; 1 MiB covers any plausible backup. Set MAX_BODY_BYTES to
	// override.
	MaxBodyBytes int64
}

// Load reads configuration from the environment and returns a Config.
// Returns an error listing any required variables that are not set.
func Load() (Config, error) {
	// Load .env into the environment; ignore if missing.
	_ = godotenv.Load()

	cfg := Config{
		Port:            getEnv("PORT", "8080"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		CORSOrigins:     splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
		AssistTimeout:   15 * time.Second,
		MaxBodyBytes:    1 << 20,
	}

	if v := os.Getenv("ASSIST_TIMEOUT_MS"); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil || ms <= 0 {
			return Config{}, fmt.Errorf("invalid ASSIST_TIMEOUT_MS: %q", v)
		}
		cfg.AssistTimeout = time.Duration(ms) * time.Millisecond
	}

	if v := os.Getenv("MAX_BODY_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("invalid MAX_BODY_BYTES: %q", v)
		}
		cfg.MaxBodyBytes = n
	}

	var missing []string

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}

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

// splitCSV splits a comma-separated string into a trimmed slice, ignoring
// empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
