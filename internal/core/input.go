package core

// Action represents a semantic game action, abstracted from physical key presses.
// Games work with high-level intents; the platform decides which keys produce them.
type Action int

const (
	ActionNone  Action = iota
	ActionUp           // W, Up arrow - step forward
	ActionDown         // S, Down arrow - step back
	ActionLeft         // A, Left arrow
	ActionRight        // D, Right arrow
	ActionQuit         // Esc (Ctrl+C in raw mode) - end the run
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Delta returns the column and row offset a movement action applies.
// Rows grow upward, away from the bottom of the board.
func (a Action) Delta() (dCol, dRow int) {
	switch a {
	case ActionUp:
		return 0, 1
	case ActionDown:
		return 0, -1
	case ActionLeft:
		return -1, 0
	case ActionRight:
		return 1, 0
	default:
		return 0, 0
	}
}
