// Package config provides runtime settings for the Orbit CLI.
// Settings are read once at startup from the environment, with
// sensible defaults for anything left unset.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

const (
	// DefaultAPIURL is the default Orbit Platform API endpoint
	DefaultAPIURL = "https://api.orbit-platform.com"

	// DefaultDashboardURL is the default Orbit Platform web dashboard
	DefaultDashboardURL = "https://app.orbit-platform.com"

	// DefaultTimeoutMS is the default request timeout in milliseconds
	DefaultTimeoutMS = 10000

	// EnvAPIURL overrides the API endpoint
	EnvAPIURL = "ORBIT_API_URL"

	// EnvDashboardURL overrides the web dashboard URL
	EnvDashboardURL = "ORBIT_DASHBOARD_URL"

	// EnvTimeoutMS overrides the request timeout, in milliseconds
	EnvTimeoutMS = "ORBIT_TIMEOUT_MS"

	// EnvLogLevel sets the log level (debug, info, warn, error)
	EnvLogLevel = "ORBIT_LOG_LEVEL"
)

// Settings holds the CLI runtime configuration
type Settings struct {
	// APIBaseURL is the base URL of the Orbit Platform API
	APIBaseURL string

	// DashboardURL is the URL of the Orbit Platform web dashboard
	DashboardURL string

	// RequestTimeout bounds every outbound API request
	RequestTimeout time.Duration

	// LogLevel is the minimum level emitted by the logger
	LogLevel slog.Level
}

// Load reads settings from the environment, applying defaults
// for unset or unparseable values
func Load() *Settings {
	s := &Settings{
		APIBaseURL:     DefaultAPIURL,
		DashboardURL:   DefaultDashboardURL,
		RequestTimeout: DefaultTimeoutMS * time.Millisecond,
		LogLevel:       slog.LevelWarn,
	}

	if v := os.Getenv(EnvAPIURL); v != "" {
		s.APIBaseURL = v
	}

	if v := os.Getenv(EnvDashboardURL); v != "" {
		s.DashboardURL = v
	}

	// A non-numeric timeout falls back to the default rather than failing
	if v := os.Getenv(EnvTimeoutMS); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			s.RequestTimeout = time.Duration(ms) * time.Millisecond
		}
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		s.LogLevel = parseLevel(v)
	}

	return s
}

// parseLevel maps a level name to a slog level, defaulting to warn
func parseLevel(name string) slog.Level {
	switch name {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
