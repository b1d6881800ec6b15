package config

import (
	_ "embed"
)

//go:embed defaults/forest.yaml
var defaultForestYAML []byte

// DefaultForestConfig returns the default Froggy Forest configuration.
func DefaultForestConfig() ForestConfig {
	return ForestConfig{
		Glyphs: GlyphConfig{
			Obstacle: "🌲",
			Empty:    "🟩",
			Player:   "🐸",
		},
		ASCII: GlyphConfig{
			Obstacle: "#",
			Empty:    ".",
			Player:   "@",
		},
		Colors: ColorConfig{
			Obstacle: "green",
			Empty:    "gray",
			Player:   "bright-yellow",
		},
		Timing: TimingConfig{
			TurnDelayMS: 50,
		},
		Input: InputConfig{
			QueueSize:        16,
			EscapeTimeoutMS:  25,
			MaxRestarts:      5,
			RestartBackoffMS: 100,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultForestYAML
}
