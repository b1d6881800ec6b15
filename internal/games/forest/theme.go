package forest

import (
	"github.com/xxnonanonxx/froggyforest/internal/config"
	"github.com/xxnonanonxx/froggyforest/internal/core"
)

// Theme holds the glyphs and colors used to draw a run.
type Theme struct {
	Obstacle      rune
	Empty         rune
	Player        rune
	ObstacleColor core.Color
	EmptyColor    core.Color
	PlayerColor   core.Color
}

// DefaultTheme is the emoji forest.
func DefaultTheme() Theme {
	return Theme{
		Obstacle:      '🌲',
		Empty:         '🟩',
		Player:        '🐸',
		ObstacleColor: core.ColorGreen,
		EmptyColor:    core.ColorGray,
		PlayerColor:   core.ColorBrightYellow,
	}
}

// ThemeFromConfig builds a theme from the config's emoji or ASCII glyph set.
func ThemeFromConfig(cfg config.ForestConfig, ascii bool) (Theme, error) {
	glyphs := cfg.Glyphs
	if ascii {
		glyphs = cfg.ASCII
	}

	var th Theme
	var err error
	if th.Obstacle, th.Empty, th.Player, err = glyphs.Runes(); err != nil {
		return Theme{}, err
	}
	if th.ObstacleColor, th.EmptyColor, th.PlayerColor, err = cfg.Colors.Resolve(); err != nil {
		return Theme{}, err
	}
	return th, nil
}
