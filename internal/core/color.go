package core

import "strings"

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBrightGreen
	ColorBrightYellow
	ColorGray
)

// ParseColor maps a color name from config files to a Color.
// Unknown names map to ColorDefault and ok=false.
func ParseColor(name string) (c Color, ok bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "default":
		return ColorDefault, true
	case "red":
		return ColorRed, true
	case "green":
		return ColorGreen, true
	case "yellow":
		return ColorYellow, true
	case "bright-green":
		return ColorBrightGreen, true
	case "bright-yellow":
		return ColorBrightYellow, true
	case "gray", "grey":
		return ColorGray, true
	default:
		return ColorDefault, false
	}
}
