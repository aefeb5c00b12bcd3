package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("CACHE_TTL_MS", "")
	t.Setenv("TARGET_PERCENTAGE", "")

	cfg := Load()

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 80.0, cfg.TargetPercentage)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("CACHE_TTL_MS", "60000")
	t.Setenv("TARGET_PERCENTAGE", "70")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()

	assert.Equal(t, time.Minute, cfg.CacheTTL)
	assert.Equal(t, 70.0, cfg.TargetPercentage)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("CACHE_TTL_MS", "soon")
	t.Setenv("TARGET_PERCENTAGE", "high")

	cfg := Load()

	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 80.0, cfg.TargetPercentage)
}
