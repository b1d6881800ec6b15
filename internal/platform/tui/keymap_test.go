package tui

import (
	"testing"

	"github.com/xxnonanonxx/froggyforest/internal/core"
	"github.com/xxnonanonxx/froggyforest/internal/input"
)

func TestKeyMapAction(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name     string
		key      input.Key
		expected core.Action
	}{
		{"arrow up", input.Key{Type: input.KeyUp}, core.ActionUp},
		{"w", input.RuneKey('w'), core.ActionUp},
		{"arrow down", input.Key{Type: input.KeyDown}, core.ActionDown},
		{"s", input.RuneKey('s'), core.ActionDown},
		{"arrow left", input.Key{Type: input.KeyLeft}, core.ActionLeft},
		{"a", input.RuneKey('a'), core.ActionLeft},
		{"arrow right", input.Key{Type: input.KeyRight}, core.ActionRight},
		{"d", input.RuneKey('d'), core.ActionRight},
		{"escape", input.Key{Type: input.KeyEscape}, core.ActionQuit},
		{"q is an ordinary key", input.RuneKey('q'), core.ActionNone},
		{"ctrl+c", input.Key{Type: input.KeyCtrlC}, core.ActionQuit},
		{"uppercase W is not bound", input.RuneKey('W'), core.ActionNone},
		{"space", input.RuneKey(' '), core.ActionNone},
		{"enter", input.Key{Type: input.KeyEnter}, core.ActionNone},
		{"unknown", input.Key{Type: input.KeyUnknown}, core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.Action(tc.key); got != tc.expected {
				t.Errorf("Action(%q) = %s, expected %s", tc.key.String(), got, tc.expected)
			}
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	km := DefaultKeyMap()
	if n := len(km.ShortHelp()); n != 5 {
		t.Errorf("ShortHelp has %d bindings, expected 5", n)
	}
	total := 0
	for _, group := range km.FullHelp() {
		total += len(group)
	}
	if total != 5 {
		t.Errorf("FullHelp has %d bindings, expected 5", total)
	}
}
