// Package config loads engine configuration from the environment.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/smartgrades/gradecore/predict"
)

// Config holds all tunables for an embedding application.
type Config struct {
	LogLevel  string
	LogFormat string
	// CacheTTL is how long cached rosters stay fresh.
	CacheTTL time.Duration
	// TargetPercentage is the default target final grade used for
	// required-average scenarios.
	TargetPercentage float64
	// RedisURL is only consulted when the Redis-backed cache store is used;
	// the in-process store ignores it.
	RedisURL string
}

// Load reads configuration from environment variables with sensible
// defaults. It loads a .env file if present but does not fail if missing.
func Load() *Config {
	_ = godotenv.Load() // Ignore error — .env is optional

	return &Config{
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		LogFormat:        getEnv("LOG_FORMAT", "pretty"),
		CacheTTL:         time.Duration(getEnvInt("CACHE_TTL_MS", 300000)) * time.Millisecond,
		TargetPercentage: getEnvFloat("TARGET_PERCENTAGE", predict.DefaultTarget),
		RedisURL:         getEnv("REDIS_URL", "redis://localhost:6379/0"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}
