package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := ParseToppa(defaultToppaYAML)
	if err != nil {
		t.Fatalf("embedded defaults rejected: %v", err)
	}
	if cfg != DefaultToppaConfig() {
		t.Errorf("embedded defaults = %+v, want %+v", cfg, DefaultToppaConfig())
	}
}

func TestParseToppaPartial(t *testing.T) {
	cfg, err := ParseToppa([]byte("timing:\n  time_limit: 60s\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Timing.TimeLimit != 60*time.Second {
		t.Errorf("TimeLimit = %v, want 60s", cfg.Timing.TimeLimit)
	}
	if cfg.Timing.FinishDelay != 3*time.Second {
		t.Errorf("FinishDelay = %v, want default 3s", cfg.Timing.FinishDelay)
	}
	if cfg.Spawn != DefaultToppaConfig().Spawn {
		t.Errorf("Spawn = %+v, want defaults", cfg.Spawn)
	}
}

func TestParseToppaEmpty(t *testing.T) {
	cfg, err := ParseToppa(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != DefaultToppaConfig() {
		t.Errorf("empty document should yield defaults, got %+v", cfg)
	}
}

func TestParseToppaRejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unknown section", "gravity: 3\n"},
		{"unknown key", "timing:\n  speed: 2\n"},
		{"bad duration", "timing:\n  time_limit: soon\n"},
		{"numeric duration", "timing:\n  time_limit: 90\n"},
		{"negative weight", "spawn:\n  dark: -1\n"},
		{"too many beats", "timing:\n  countdown_beats: 12\n"},
		{"zero limit", "timing:\n  time_limit: 0s\n"},
		{"all weights zero", "spawn:\n  one: 0\n  two: 0\n  dark: 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseToppa([]byte(tt.doc)); err == nil {
				t.Errorf("expected %q to be rejected", tt.doc)
			}
		})
	}
}

func TestLoadToppaCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	if err := os.WriteFile(path, []byte("spawn:\n  dark: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadToppa(path)
	if err != nil {
		t.Fatalf("LoadToppa: %v", err)
	}
	if cfg.Spawn.Dark != 0 {
		t.Errorf("Spawn.Dark = %v, want 0", cfg.Spawn.Dark)
	}
	if cfg.Spawn.One != 0.85 {
		t.Errorf("Spawn.One = %v, want default 0.85", cfg.Spawn.One)
	}
}

func TestLoadToppaMissingCustomPath(t *testing.T) {
	if _, err := LoadToppa(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}
}
