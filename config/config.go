// Package config loads bellrunner settings from the environment, optionally
// seeded from a .env file in the working directory.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/hupe1980/bellrunner/experiment"
	"github.com/hupe1980/bellrunner/logging"
)

// Environment keys.
const (
	EnvTrials    = "BELL_TRIALS"
	EnvSeed      = "BELL_SEED"
	EnvNoise     = "BELL_NOISE"
	EnvEstimate  = "BELL_ESTIMATE"
	EnvPause     = "BELL_PAUSE"
	EnvLogLevel  = "LOG_LEVEL"
	EnvLogFormat = "LOG_FORMAT"
)

// Config holds the runtime settings of the belltest command.
type Config struct {
	TrialCount int
	Seed       int64
	Noise      float64
	Estimate   bool
	Pause      bool
	LogLevel   logging.LogLevel
	LogFormat  string
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		TrialCount: experiment.DefaultTrialCount,
		LogLevel:   logging.LogLevelInfo,
		LogFormat:  "text",
	}
}

// Load reads a .env file when present, then the environment, and validates
// the result. Variables already set in the environment take precedence over
// the file.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function.
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := Default()

	var err error

	if cfg.TrialCount, err = intOrDefault(getenv, EnvTrials, cfg.TrialCount); err != nil {
		return nil, err
	}
	if cfg.TrialCount <= 0 {
		return nil, fmt.Errorf("%s must be positive, got %d", EnvTrials, cfg.TrialCount)
	}

	if cfg.Seed, err = int64OrDefault(getenv, EnvSeed, cfg.Seed); err != nil {
		return nil, err
	}

	if cfg.Noise, err = floatOrDefault(getenv, EnvNoise, cfg.Noise); err != nil {
		return nil, err
	}
	if cfg.Noise < 0 || cfg.Noise > 1 {
		return nil, fmt.Errorf("%s must be within [0, 1], got %v", EnvNoise, cfg.Noise)
	}

	if cfg.Estimate, err = boolOrDefault(getenv, EnvEstimate, cfg.Estimate); err != nil {
		return nil, err
	}

	if cfg.Pause, err = boolOrDefault(getenv, EnvPause, cfg.Pause); err != nil {
		return nil, err
	}

	if v := getenv(EnvLogLevel); v != "" {
		if cfg.LogLevel, err = logging.ParseLevel(v); err != nil {
			return nil, err
		}
	}

	if v := strings.ToLower(strings.TrimSpace(getenv(EnvLogFormat))); v != "" {
		if v != "text" && v != "json" {
			return nil, fmt.Errorf("invalid %s %q: must be 'text' or 'json'", EnvLogFormat, v)
		}
		cfg.LogFormat = v
	}

	return &cfg, nil
}

func intOrDefault(getenv func(string) string, key string, def int) (int, error) {
	v := strings.TrimSpace(getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}

func int64OrDefault(getenv func(string) string, key string, def int64) (int64, error) {
	v := strings.TrimSpace(getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}

func floatOrDefault(getenv func(string) string, key string, def float64) (float64, error) {
	v := strings.TrimSpace(getenv(key))
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return f, nil
}

func boolOrDefault(getenv func(string) string, key string, def bool) (bool, error) {
	v := strings.TrimSpace(getenv(key))
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return b, nil
}
