// Package config resolves the journey and app settings from defaults, a
// .env file and MEDHA_* environment variables. Command-line flags are
// applied on top by the cmd package.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/mathmedha/medha/internal/problemgen"
	"github.com/mathmedha/medha/internal/settings"
)

// Config holds everything needed to start the app.
type Config struct {
	// Duration is the journey length. Default: 30s.
	Duration time.Duration

	// Gen controls the factors of generated questions.
	Gen problemgen.GenConfig

	// Settings are the initial player settings when none are saved.
	Settings settings.State

	// DBPath overrides the local database location when non-empty.
	DBPath string

	// LogLevel is one of debug, info, warn, error. Default: info.
	LogLevel string
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Duration: 30 * time.Second,
		Gen:      problemgen.DefaultGenConfig(),
		Settings: settings.Default(),
		LogLevel: "info",
	}
}

// Load reads a .env file from the working directory, if present, and then
// builds a Config from the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from environment variables, falling back to
// defaults for unset values.
func FromEnv() (Config, error) {
	cfg := DefaultConfig()

	if v := os.Getenv("MEDHA_DURATION"); v != "" {
		d, err := parseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("MEDHA_DURATION=%q: %w", v, err)
		}
		cfg.Duration = d
	}

	ints := []struct {
		key string
		dst *int
	}{
		{"MEDHA_MIN_FACTOR", &cfg.Gen.MinFactor},
		{"MEDHA_MAX_FACTOR", &cfg.Gen.MaxFactor},
		{"MEDHA_TABLE", &cfg.Gen.Table},
	}
	for _, e := range ints {
		if v := os.Getenv(e.key); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return cfg, fmt.Errorf("%s=%q: %w", e.key, v, err)
			}
			*e.dst = n
		}
	}

	bools := []struct {
		key string
		dst *bool
	}{
		{"MEDHA_MUTED", &cfg.Settings.Muted},
		{"MEDHA_KEYPAD", &cfg.Settings.KeypadVisible},
	}
	for _, e := range bools {
		if v := os.Getenv(e.key); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return cfg, fmt.Errorf("%s=%q: %w", e.key, v, err)
			}
			*e.dst = b
		}
	}

	if p := os.Getenv("MEDHA_DB"); p != "" {
		cfg.DBPath = p
	}
	if l := os.Getenv("MEDHA_LOG_LEVEL"); l != "" {
		cfg.LogLevel = strings.ToLower(l)
	}

	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Duration < time.Second {
		return fmt.Errorf("duration %s: must be at least 1s", c.Duration)
	}
	if err := c.Gen.Validate(); err != nil {
		return fmt.Errorf("question range: %w", err)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level returns the slog level named by LogLevel.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	return l, nil
}

// parseDuration accepts Go durations ("45s", "2m") and bare seconds ("45").
func parseDuration(v string) (time.Duration, error) {
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Second, nil
	}
	return time.ParseDuration(v)
}
