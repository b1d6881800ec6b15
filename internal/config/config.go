// Package config provides YAML-based configuration loading for Froggy Forest.
// Board geometry and obstacle density are fixed by the game and are not
// configurable; only presentation, pacing and input handling are.
package config

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/xxnonanonxx/froggyforest/internal/core"
)

// ForestConfig contains all configuration for Froggy Forest.
type ForestConfig struct {
	Glyphs GlyphConfig  `yaml:"glyphs"`
	ASCII  GlyphConfig  `yaml:"ascii"`
	Colors ColorConfig  `yaml:"colors"`
	Timing TimingConfig `yaml:"timing"`
	Input  InputConfig  `yaml:"input"`
}

// GlyphConfig names the single-rune glyphs used to draw the board.
type GlyphConfig struct {
	Obstacle string `yaml:"obstacle"`
	Empty    string `yaml:"empty"`
	Player   string `yaml:"player"`
}

// ColorConfig names the foreground colors of each glyph kind.
type ColorConfig struct {
	Obstacle string `yaml:"obstacle"`
	Empty    string `yaml:"empty"`
	Player   string `yaml:"player"`
}

// TimingConfig defines turn pacing.
type TimingConfig struct {
	TurnDelayMS int `yaml:"turn_delay_ms"` // Pause after each applied key
}

// InputConfig defines key capture behaviour.
type InputConfig struct {
	QueueSize        int `yaml:"queue_size"`         // Keys buffered ahead of the game
	EscapeTimeoutMS  int `yaml:"escape_timeout_ms"`  // Wait after ESC before treating it as a bare Escape
	MaxRestarts      int `yaml:"max_restarts"`       // Consecutive source failures tolerated
	RestartBackoffMS int `yaml:"restart_backoff_ms"` // Pause before reopening a failed source
}

// TurnDelay returns the turn delay as a duration.
func (c TimingConfig) TurnDelay() time.Duration {
	return time.Duration(c.TurnDelayMS) * time.Millisecond
}

// EscapeTimeout returns the escape timeout as a duration.
func (c InputConfig) EscapeTimeout() time.Duration {
	return time.Duration(c.EscapeTimeoutMS) * time.Millisecond
}

// RestartBackoff returns the restart backoff as a duration.
func (c InputConfig) RestartBackoff() time.Duration {
	return time.Duration(c.RestartBackoffMS) * time.Millisecond
}

// Runes decodes the three glyphs. Each must be exactly one rune.
func (g GlyphConfig) Runes() (obstacle, empty, player rune, err error) {
	if obstacle, err = singleRune("obstacle", g.Obstacle); err != nil {
		return
	}
	if empty, err = singleRune("empty", g.Empty); err != nil {
		return
	}
	if player, err = singleRune("player", g.Player); err != nil {
		return
	}
	if obstacle == empty {
		err = fmt.Errorf("config: obstacle and empty glyphs are both %q", obstacle)
	}
	return
}

func singleRune(name, s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("config: %s glyph %q must be a single character", name, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

// Resolve maps the color names to core colors.
func (c ColorConfig) Resolve() (obstacle, empty, player core.Color, err error) {
	var ok bool
	if obstacle, ok = core.ParseColor(c.Obstacle); !ok {
		return 0, 0, 0, fmt.Errorf("config: unknown obstacle color %q", c.Obstacle)
	}
	if empty, ok = core.ParseColor(c.Empty); !ok {
		return 0, 0, 0, fmt.Errorf("config: unknown empty color %q", c.Empty)
	}
	if player, ok = core.ParseColor(c.Player); !ok {
		return 0, 0, 0, fmt.Errorf("config: unknown player color %q", c.Player)
	}
	return obstacle, empty, player, nil
}

// Validate reports every unusable value in the config.
func (c ForestConfig) Validate() error {
	var errs []error
	if _, _, _, err := c.Glyphs.Runes(); err != nil {
		errs = append(errs, err)
	}
	if _, _, _, err := c.ASCII.Runes(); err != nil {
		errs = append(errs, fmt.Errorf("ascii: %w", err))
	}
	if _, _, _, err := c.Colors.Resolve(); err != nil {
		errs = append(errs, err)
	}
	if c.Timing.TurnDelayMS < 0 {
		errs = append(errs, fmt.Errorf("config: turn_delay_ms must not be negative, got %d", c.Timing.TurnDelayMS))
	}
	if c.Input.QueueSize < 1 {
		errs = append(errs, fmt.Errorf("config: queue_size must be at least 1, got %d", c.Input.QueueSize))
	}
	if c.Input.EscapeTimeoutMS < 1 {
		errs = append(errs, fmt.Errorf("config: escape_timeout_ms must be positive, got %d", c.Input.EscapeTimeoutMS))
	}
	if c.Input.MaxRestarts < 0 {
		errs = append(errs, fmt.Errorf("config: max_restarts must not be negative, got %d", c.Input.MaxRestarts))
	}
	if c.Input.RestartBackoffMS < 0 {
		errs = append(errs, fmt.Errorf("config: restart_backoff_ms must not be negative, got %d", c.Input.RestartBackoffMS))
	}
	return errors.Join(errs...)
}
