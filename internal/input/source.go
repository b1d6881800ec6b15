package input

import (
	"bufio"
	"fmt"
	"io"

	"github.com/mattn/go-tty"
)

// Source is a blocking key source. NextRune blocks until a rune is
// available; Close unblocks a pending NextRune.
//
// The method is not called ReadRune: io.RuneReader's ReadRune also returns
// the rune size, and go-tty's one-value form would clash with it.
type Source interface {
	NextRune() (rune, error)
	Close() error
}

// Opener opens a fresh Source. Capture calls it again after a read failure.
type Opener func() (Source, error)

// OpenTTY opens the controlling terminal in raw mode.
func OpenTTY() (Source, error) {
	t, err := tty.Open()
	if err != nil {
		return nil, fmt.Errorf("input: cannot open terminal: %w", err)
	}
	return ttySource{t}, nil
}

// ttySource reads from a raw-mode terminal.
type ttySource struct {
	t *tty.TTY
}

func (s ttySource) NextRune() (rune, error) {
	return s.t.ReadRune()
}

// Close restores the terminal mode and releases the device.
func (s ttySource) Close() error {
	return s.t.Close()
}

// readerSource adapts an io.Reader, such as an SSH session, to a Source.
type readerSource struct {
	r *bufio.Reader
}

// NewReaderSource wraps r. Closing the source does not close r; its owner does.
func NewReaderSource(r io.Reader) Source {
	return &readerSource{r: bufio.NewReader(r)}
}

func (s *readerSource) NextRune() (rune, error) {
	r, _, err := s.r.ReadRune()
	return r, err
}

func (s *readerSource) Close() error {
	return nil
}

// ReaderOpener returns an Opener that always yields a source over r.
func ReaderOpener(r io.Reader) Opener {
	src := NewReaderSource(r)
	return func() (Source, error) {
		return src, nil
	}
}
