package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/xxnonanonxx/froggyforest/internal/core"
)

// palette maps core.Color to styles bound to one output's renderer,
// so SSH sessions get colors matching their own terminal.
type palette map[core.Color]lipgloss.Style

func newPalette(r *lipgloss.Renderer) palette {
	return palette{
		core.ColorDefault:      r.NewStyle(),
		core.ColorRed:          r.NewStyle().Foreground(lipgloss.Color("1")),
		core.ColorGreen:        r.NewStyle().Foreground(lipgloss.Color("2")),
		core.ColorYellow:       r.NewStyle().Foreground(lipgloss.Color("3")),
		core.ColorBrightGreen:  r.NewStyle().Foreground(lipgloss.Color("10")),
		core.ColorBrightYellow: r.NewStyle().Foreground(lipgloss.Color("11")),
		core.ColorGray:         r.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (p palette) render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := p[startColor]
			if !ok {
				style = p[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
