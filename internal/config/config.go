// Package config loads process configuration from the environment, the
// way the rest of the module expects to be deployed.
package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
)

// allowUnknownInfoKeyVar toggles tolerant parsing of unrecognized info
// keywords: when true the parser skips the key's value and continues,
// otherwise the line fails with an invalid-key error.
const allowUnknownInfoKeyVar = "ALLOW_UNKNOWN_INFO_KEY"

type AppConfig struct {
	EnginePath string

	RedisURL    string
	DatabaseURL string
	HTTPAddr    string

	PresetsPath    string
	DefaultPreset  string
	SnapshotTTLSec int
}

func Load() (*AppConfig, error) {
	cfg := &AppConfig{
		DefaultPreset:  "default",
		SnapshotTTLSec: 3600,
	}

	cfg.EnginePath = strings.TrimSpace(os.Getenv("ENGINE_PATH"))
	cfg.RedisURL = strings.TrimSpace(os.Getenv("REDIS_URL"))
	cfg.DatabaseURL = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	cfg.HTTPAddr = strings.TrimSpace(os.Getenv("HTTP_ADDR"))
	cfg.PresetsPath = strings.TrimSpace(os.Getenv("ENGINE_PRESETS_FILE"))

	if v := strings.TrimSpace(os.Getenv("ENGINE_DEFAULT_PRESET")); v != "" {
		cfg.DefaultPreset = v
	}
	if v := strings.TrimSpace(os.Getenv("SNAPSHOT_TTL")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.SnapshotTTLSec = n
		}
	}

	if cfg.EnginePath == "" {
		return nil, errors.New("ENGINE_PATH is required")
	}
	return cfg, nil
}

// AllowUnknownInfoKey reads the tolerant-mode toggle. It is consulted on
// every parse so the mode can change at runtime.
func AllowUnknownInfoKey() bool {
	v := strings.TrimSpace(os.Getenv(allowUnknownInfoKeyVar))
	if v == "" {
		return false
	}
	b, err := strconv.ParseBool(v)
	return err == nil && b
}
