// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds the settings shared by the command line tools.
type Config struct {
	// Seed initializes the random generator.
	Seed int64 `env:"FUNDAMENTALS_SEED" envDefault:"42"`
	// Device is a device name or "auto" for the best available one.
	Device string `env:"FUNDAMENTALS_DEVICE" envDefault:"auto"`
	// LogLevel is one of debug, info, warn or error.
	LogLevel string `env:"FUNDAMENTALS_LOG_LEVEL" envDefault:"info"`
	// Workers bounds CPU kernel goroutines; 0 means one per CPU.
	Workers int `env:"FUNDAMENTALS_WORKERS" envDefault:"0"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load returns a Config populated from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.Seed < 0 {
		return Config{}, fmt.Errorf("FUNDAMENTALS_SEED must not be negative, got %d", cfg.Seed)
	}
	if _, err := ParseLevel(cfg.LogLevel); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseLevel maps a log level name to a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(name))); err != nil {
		return 0, fmt.Errorf("log level %q: %w", name, err)
	}
	return level, nil
}
