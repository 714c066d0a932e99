package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Store selects the persistence backend.
const (
	StoreSpanner = "spanner"
	StoreMemory  = "memory"
)

type Config struct {
	HTTPPort        string
	Store           string
	SpannerDatabase string
	LogLevel        string
}

// Load reads configuration from the environment, with an optional .env
// file for local development.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		Store:           getEnv("STORE", StoreSpanner),
		SpannerDatabase: os.Getenv("SPANNER_DATABASE"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
	}

	if cfg.Store != StoreSpanner && cfg.Store != StoreMemory {
		return nil, fmt.Errorf("unknown STORE %q", cfg.Store)
	}
	if cfg.Store == StoreSpanner && cfg.SpannerDatabase == "" {
		return nil, fmt.Errorf("SPANNER_DATABASE is required when STORE=%s", StoreSpanner)
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
