package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(EnvAPIURL, "")
	t.Setenv(EnvDashboardURL, "")
	t.Setenv(EnvTimeoutMS, "")
	t.Setenv(EnvLogLevel, "")

	s := Load()

	assert.Equal(t, DefaultAPIURL, s.APIBaseURL)
	assert.Equal(t, DefaultDashboardURL, s.DashboardURL)
	assert.Equal(t, 10*time.Second, s.RequestTimeout)
	assert.Equal(t, slog.LevelWarn, s.LogLevel)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv(EnvAPIURL, "http://localhost:4000")
	t.Setenv(EnvDashboardURL, "http://localhost:3000")
	t.Setenv(EnvTimeoutMS, "2500")
	t.Setenv(EnvLogLevel, "debug")

	s := Load()

	assert.Equal(t, "http://localhost:4000", s.APIBaseURL)
	assert.Equal(t, "http://localhost:3000", s.DashboardURL)
	assert.Equal(t, 2500*time.Millisecond, s.RequestTimeout)
	assert.Equal(t, slog.LevelDebug, s.LogLevel)
}

func TestLoad_NonNumericTimeoutFallsBack(t *testing.T) {
	t.Setenv(EnvTimeoutMS, "not-a-number")

	s := Load()
	assert.Equal(t, 10*time.Second, s.RequestTimeout)
}

func TestLoad_NegativeTimeoutFallsBack(t *testing.T) {
	t.Setenv(EnvTimeoutMS, "-5")

	s := Load()
	assert.Equal(t, 10*time.Second, s.RequestTimeout)
}

func TestLoad_UnknownLogLevelFallsBack(t *testing.T) {
	t.Setenv(EnvLogLevel, "loud")

	s := Load()
	assert.Equal(t, slog.LevelWarn, s.LogLevel)
}
