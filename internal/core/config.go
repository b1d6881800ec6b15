package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW   int           // Screen width in characters
	ScreenH   int           // Screen height in characters
	TurnDelay time.Duration // Pause after each applied key
	Seed      int64         // RNG seed for deterministic boards
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		TurnDelay: 50 * time.Millisecond,
		Seed:      0, // 0 means use current time in platform layer
	}
}

// GameState is a snapshot of the run's progress.
type GameState struct {
	Score int // Forward steps taken
	Turns int // Actions applied, including rejected and ignored ones
}

// Event describes what a single step did to the board.
type Event int

const (
	EventIgnored  Event = iota // Key had no meaning for the game
	EventMoved                 // Player changed cell
	EventScrolled              // Board advanced under a stationary player
	EventBlocked               // Move rejected by an obstacle or the lane edge
	EventQuit                  // Run ended by the player
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventIgnored:
		return "ignored"
	case EventMoved:
		return "moved"
	case EventScrolled:
		return "scrolled"
	case EventBlocked:
		return "blocked"
	case EventQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Outcome tells the owning loop whether to keep running.
type Outcome int

const (
	OutcomeContinue Outcome = iota
	OutcomeQuit
)

// StepResult is returned by Game.Step() after each applied action.
type StepResult struct {
	State   GameState
	Event   Event
	Outcome Outcome
}
