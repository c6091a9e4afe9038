package config

import "testing"

func TestLoadRequiresEnginePath(t *testing.T) {
	t.Setenv("ENGINE_PATH", "")
	if _, err := Load(); err == nil {
		t.Fatal("expected error without ENGINE_PATH")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ENGINE_PATH", "/usr/bin/stockfish")
	t.Setenv("SNAPSHOT_TTL", "")
	t.Setenv("ENGINE_DEFAULT_PRESET", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.EnginePath != "/usr/bin/stockfish" {
		t.Fatalf("EnginePath = %q", cfg.EnginePath)
	}
	if cfg.DefaultPreset != "default" || cfg.SnapshotTTLSec != 3600 {
		t.Fatalf("defaults = %+v", cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ENGINE_PATH", "./stockfish")
	t.Setenv("ENGINE_DEFAULT_PRESET", "strong")
	t.Setenv("SNAPSHOT_TTL", "120")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DefaultPreset != "strong" || cfg.SnapshotTTLSec != 120 {
		t.Fatalf("overrides = %+v", cfg)
	}
}

func TestAllowUnknownInfoKey(t *testing.T) {
	cases := []struct {
		value string
		want  bool
	}{
		{"", false},
		{"true", true},
		{"1", true},
		{"false", false},
		{"banana", false},
	}
	for _, c := range cases {
		t.Setenv("ALLOW_UNKNOWN_INFO_KEY", c.value)
		if got := AllowUnknownInfoKey(); got != c.want {
			t.Fatalf("AllowUnknownInfoKey(%q) = %v", c.value, got)
		}
	}
}
