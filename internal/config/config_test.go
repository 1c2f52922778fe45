package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envTestConfig struct {
	Workers int `env:"FUNDAMENTALS_TEST_WORKERS" envDefault:"3"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig
	require.NoError(t, ParseEnv(&cfg))
	assert.Equal(t, 3, cfg.Workers)
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("FUNDAMENTALS_TEST_WORKERS", "not-an-int")

	err := ParseEnv(&cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Config{Seed: 42, Device: "auto", LogLevel: "info"}, cfg)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("FUNDAMENTALS_SEED", "7")
	t.Setenv("FUNDAMENTALS_DEVICE", "cpu")
	t.Setenv("FUNDAMENTALS_LOG_LEVEL", "debug")
	t.Setenv("FUNDAMENTALS_WORKERS", "2")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Config{Seed: 7, Device: "cpu", LogLevel: "debug", Workers: 2}, cfg)
}

func TestLoadRejectsNegativeSeed(t *testing.T) {
	t.Setenv("FUNDAMENTALS_SEED", "-1")
	_, err := Load()
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("warn")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}
