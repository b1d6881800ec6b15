// Package tui provides the Bubble Tea integration for Froggy Forest.
// It runs the turn loop, renders frames and serves sessions over SSH.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/xxnonanonxx/froggyforest/internal/input"
)

// TurnMsg is sent once the inter-turn delay has elapsed.
type TurnMsg time.Time

// keyMsg carries a captured key into the update loop.
type keyMsg struct {
	key input.Key
}

// inputLostMsg reports that no further keys will arrive.
type inputLostMsg struct {
	err error
}

// turnDelayCmd returns a Bubble Tea command that ends the current turn after d.
func turnDelayCmd(d time.Duration) tea.Cmd {
	if d <= 0 {
		return func() tea.Msg {
			return TurnMsg(time.Now())
		}
	}
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TurnMsg(t)
	})
}

// awaitKeyCmd blocks on the key source in a command goroutine, so a pending
// read never stalls rendering.
func awaitKeyCmd(ctx context.Context, keys KeySource) tea.Cmd {
	return func() tea.Msg {
		k, err := keys.NextKey(ctx)
		if err != nil {
			return inputLostMsg{err: err}
		}
		return keyMsg{key: k}
	}
}
