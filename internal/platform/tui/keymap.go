package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/xxnonanonxx/froggyforest/internal/core"
	"github.com/xxnonanonxx/froggyforest/internal/input"
)

// KeyMap translates captured keys to game actions.
// This centralizes key bindings and makes them testable.
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Quit  key.Binding
}

// DefaultKeyMap returns the arrow and WASD bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "forward"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "back"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Quit},
	}
}

// Action maps a captured key to a game action.
// Unbound keys map to ActionNone.
func (k KeyMap) Action(in input.Key) core.Action {
	switch {
	case key.Matches(in, k.Quit):
		return core.ActionQuit
	case key.Matches(in, k.Up):
		return core.ActionUp
	case key.Matches(in, k.Down):
		return core.ActionDown
	case key.Matches(in, k.Left):
		return core.ActionLeft
	case key.Matches(in, k.Right):
		return core.ActionRight
	}
	return core.ActionNone
}
