// Package input captures keys from a blocking terminal source on a
// background goroutine and hands them to the game one at a time.
package input

// KeyType identifies the kind of key that was pressed.
type KeyType int

const (
	KeyRunes KeyType = iota // Printable character, see Key.Rune
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEscape
	KeyCtrlC
	KeyEnter
	KeyUnknown // Control byte or escape sequence with no meaning here
)

// Key is a single decoded key press.
type Key struct {
	Type KeyType
	Rune rune
}

// String returns the key name using the same spelling as Bubble Tea
// ("up", "esc", "ctrl+c", "w"), so key bindings can match captured keys.
func (k Key) String() string {
	switch k.Type {
	case KeyRunes:
		return string(k.Rune)
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyEscape:
		return "esc"
	case KeyCtrlC:
		return "ctrl+c"
	case KeyEnter:
		return "enter"
	default:
		return ""
	}
}

// RuneKey returns the key for a printable character.
func RuneKey(r rune) Key {
	return Key{Type: KeyRunes, Rune: r}
}

const (
	esc   = '\x1b'
	ctrlC = '\x03'
)

type decodeState int

const (
	stateGround decodeState = iota
	stateEsc                // saw ESC
	stateCSI                // saw ESC [
	stateSS3                // saw ESC O
)

// decoder turns a rune stream into keys. Arrow keys arrive as
// ESC [ A..D (or ESC O A..D in application cursor mode); a lone ESC is only
// known to be the Escape key once nothing follows it, see flush.
type decoder struct {
	state decodeState
}

// feed consumes one rune and returns the keys it completes.
func (d *decoder) feed(r rune) []Key {
	switch d.state {
	case stateEsc:
		switch r {
		case '[':
			d.state = stateCSI
			return nil
		case 'O':
			d.state = stateSS3
			return nil
		case esc:
			return []Key{{Type: KeyEscape}}
		}
		d.state = stateGround
		// ESC plus a printable rune is Alt+key, never a bare Escape.
		if r >= 0x20 && r != 0x7f {
			return []Key{{Type: KeyUnknown}}
		}
		return append([]Key{{Type: KeyEscape}}, d.feed(r)...)

	case stateCSI:
		// Parameter and intermediate bytes, e.g. ESC [ 1 ; 5 A
		if r >= 0x20 && r <= 0x3f {
			return nil
		}
		d.state = stateGround
		return []Key{arrow(r)}

	case stateSS3:
		d.state = stateGround
		return []Key{arrow(r)}
	}

	switch {
	case r == esc:
		d.state = stateEsc
		return nil
	case r == ctrlC:
		return []Key{{Type: KeyCtrlC}}
	case r == '\r' || r == '\n':
		return []Key{{Type: KeyEnter}}
	case r < 0x20 || r == 0x7f:
		return []Key{{Type: KeyUnknown}}
	default:
		return []Key{RuneKey(r)}
	}
}

// pending reports whether an escape sequence is still incomplete.
func (d *decoder) pending() bool {
	return d.state != stateGround
}

// flush resolves an incomplete sequence once no more input arrived in time.
func (d *decoder) flush() []Key {
	st := d.state
	d.state = stateGround
	switch st {
	case stateEsc:
		return []Key{{Type: KeyEscape}}
	case stateCSI, stateSS3:
		return []Key{{Type: KeyUnknown}}
	default:
		return nil
	}
}

func arrow(r rune) Key {
	switch r {
	case 'A':
		return Key{Type: KeyUp}
	case 'B':
		return Key{Type: KeyDown}
	case 'C':
		return Key{Type: KeyRight}
	case 'D':
		return Key{Type: KeyLeft}
	default:
		return Key{Type: KeyUnknown}
	}
}
