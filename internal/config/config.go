// Package config centralises configuration parsing for the tracker binary.
package config

import (
	"os"
	"strconv"
	"strings"
)

// Config captures runtime configuration values for the tracker.
type Config struct {
	OutputFormat string // Summary line format: text or json.
	LogPrefix    string
	LogMetrics   bool // Log a metrics snapshot once the run finishes.
}

// Load reads environment variables into Config. The defaults print the plain
// summary lines.
func Load() Config {
	return Config{
		OutputFormat: strings.ToLower(getEnv("TRACKER_OUTPUT_FORMAT", "text")),
		LogPrefix:    getEnv("TRACKER_LOG_PREFIX", "[tracker] "),
		LogMetrics:   getBoolEnv("TRACKER_LOG_METRICS", false),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getBoolEnv(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}
