package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultForestConfig().Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
}

func TestEmbeddedYAMLMatchesDefaults(t *testing.T) {
	var cfg ForestConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != DefaultForestConfig() {
		t.Errorf("embedded YAML = %+v, hardcoded defaults = %+v", cfg, DefaultForestConfig())
	}
}

func TestLoadCustomPathOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "forest.yaml")
	data := "timing:\n  turn_delay_ms: 120\nglyphs:\n  player: \"F\"\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadForest(path)
	if err != nil {
		t.Fatalf("LoadForest() failed: %v", err)
	}

	if cfg.Timing.TurnDelay() != 120*time.Millisecond {
		t.Errorf("TurnDelay() = %v, expected 120ms", cfg.Timing.TurnDelay())
	}
	if cfg.Glyphs.Player != "F" {
		t.Errorf("Player glyph = %q, expected F", cfg.Glyphs.Player)
	}
	// Untouched fields keep their defaults
	if cfg.Glyphs.Obstacle != "🌲" {
		t.Errorf("Obstacle glyph = %q, expected default", cfg.Glyphs.Obstacle)
	}
	if cfg.Input.QueueSize != 16 {
		t.Errorf("QueueSize = %d, expected default 16", cfg.Input.QueueSize)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadForest(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("glyphs: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadForest(bad); err == nil {
		t.Error("unparsable custom config should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("input:\n  queue_size: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadForest(invalid)
	if err == nil || !strings.Contains(err.Error(), "queue_size") {
		t.Errorf("invalid custom config error = %v, expected queue_size complaint", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ForestConfig)
		want   string
	}{
		{"multi-rune glyph", func(c *ForestConfig) { c.Glyphs.Obstacle = "##" }, "single character"},
		{"empty glyph", func(c *ForestConfig) { c.Glyphs.Player = "" }, "single character"},
		{"identical lane glyphs", func(c *ForestConfig) { c.Glyphs.Empty = "🌲" }, "both"},
		{"bad ascii glyph", func(c *ForestConfig) { c.ASCII.Empty = "" }, "ascii"},
		{"unknown color", func(c *ForestConfig) { c.Colors.Player = "mauve" }, "mauve"},
		{"negative delay", func(c *ForestConfig) { c.Timing.TurnDelayMS = -1 }, "turn_delay_ms"},
		{"zero escape timeout", func(c *ForestConfig) { c.Input.EscapeTimeoutMS = 0 }, "escape_timeout_ms"},
		{"negative restarts", func(c *ForestConfig) { c.Input.MaxRestarts = -2 }, "max_restarts"},
		{"negative backoff", func(c *ForestConfig) { c.Input.RestartBackoffMS = -5 }, "restart_backoff_ms"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultForestConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("Validate() = %v, expected mention of %q", err, tc.want)
			}
		})
	}
}

func TestGlyphRunes(t *testing.T) {
	obstacle, empty, player, err := DefaultForestConfig().Glyphs.Runes()
	if err != nil {
		t.Fatalf("Runes() failed: %v", err)
	}
	if obstacle != '🌲' || empty != '🟩' || player != '🐸' {
		t.Errorf("Runes() = %q %q %q", obstacle, empty, player)
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	got, err := ExpandHome("~/.froggyforest/scores.db")
	if err != nil {
		t.Fatalf("ExpandHome() failed: %v", err)
	}
	if got != filepath.Join(home, ".froggyforest", "scores.db") {
		t.Errorf("ExpandHome() = %q", got)
	}

	if got, _ := ExpandHome("/tmp/x.db"); got != "/tmp/x.db" {
		t.Errorf("absolute path should be unchanged, got %q", got)
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv(EnvDBPath, "/tmp/froggy.db")
	if got := GetEnv(EnvDBPath, "fallback"); got != "/tmp/froggy.db" {
		t.Errorf("GetEnv() = %q, expected env value", got)
	}
	if got := GetEnv("FROGGY_DEFINITELY_UNSET", "fallback"); got != "fallback" {
		t.Errorf("GetEnv() = %q, expected fallback", got)
	}
}
