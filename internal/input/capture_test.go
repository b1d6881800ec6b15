package input

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

var errBroken = errors.New("broken pipe")

type readResult struct {
	r   rune
	err error
}

// fakeSource yields whatever the test pushes into reads.
type fakeSource struct {
	reads     chan readResult
	closed    chan struct{}
	closeOnce sync.Once
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		reads:  make(chan readResult, 64),
		closed: make(chan struct{}),
	}
}

func (s *fakeSource) NextRune() (rune, error) {
	select {
	case res := <-s.reads:
		return res.r, res.err
	case <-s.closed:
		return 0, errors.New("fake source closed")
	}
}

func (s *fakeSource) Close() error {
	s.closeOnce.Do(func() { close(s.closed) })
	return nil
}

func (s *fakeSource) send(text string) {
	for _, r := range text {
		s.reads <- readResult{r: r}
	}
}

func (s *fakeSource) isClosed() bool {
	select {
	case <-s.closed:
		return true
	default:
		return false
	}
}

// sequence opens the given sources in order, then fails.
func sequence(opens *int32, srcs ...*fakeSource) Opener {
	return func() (Source, error) {
		n := atomic.AddInt32(opens, 1)
		if int(n) > len(srcs) {
			return nil, errors.New("no more sources")
		}
		return srcs[n-1], nil
	}
}

func testOptions() Options {
	return Options{
		QueueSize:      4,
		EscapeTimeout:  10 * time.Millisecond,
		MaxRestarts:    2,
		RestartBackoff: time.Millisecond,
	}
}

func nextKey(t *testing.T, c *Capture) Key {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	k, err := c.NextKey(ctx)
	if err != nil {
		t.Fatalf("NextKey() failed: %v", err)
	}
	return k
}

func TestCaptureDeliversInOrder(t *testing.T) {
	src := newFakeSource()
	var opens int32
	c := Start(sequence(&opens, src), testOptions())
	defer c.Close()

	src.send("w\x1b[Ad\x1b[Ds")

	want := []string{"w", "up", "d", "left", "s"}
	for i, w := range want {
		if got := nextKey(t, c).String(); got != w {
			t.Errorf("key %d = %q, expected %q", i, got, w)
		}
	}
}

func TestCaptureDoesNotDropBursts(t *testing.T) {
	src := newFakeSource()
	var opens int32
	opts := testOptions()
	opts.QueueSize = 1
	c := Start(sequence(&opens, src), opts)
	defer c.Close()

	burst := "wasdwasdwasd"
	src.send(burst)

	var got strings.Builder
	for range burst {
		got.WriteString(nextKey(t, c).String())
	}
	if got.String() != burst {
		t.Errorf("received %q, expected %q", got.String(), burst)
	}
}

func TestCaptureBareEscape(t *testing.T) {
	src := newFakeSource()
	var opens int32
	c := Start(sequence(&opens, src), testOptions())
	defer c.Close()

	src.send("\x1b")

	if k := nextKey(t, c); k.Type != KeyEscape {
		t.Errorf("key = %+v, expected Escape after timeout", k)
	}
}

func TestCaptureRespawnsAfterFailure(t *testing.T) {
	first, second := newFakeSource(), newFakeSource()
	var opens int32
	c := Start(sequence(&opens, first, second), testOptions())
	defer c.Close()

	first.send("a")
	first.reads <- readResult{err: errBroken}
	second.send("d")

	if got := nextKey(t, c).String(); got != "a" {
		t.Errorf("first key = %q, expected a", got)
	}
	if got := nextKey(t, c).String(); got != "d" {
		t.Errorf("key after respawn = %q, expected d", got)
	}
	if n := atomic.LoadInt32(&opens); n != 2 {
		t.Errorf("opened %d sources, expected 2", n)
	}
	if !first.isClosed() {
		t.Error("failed source should be closed before reopening")
	}
	if err := c.Err(); err != nil {
		t.Errorf("Err() = %v while capture is healthy", err)
	}
}

func TestCaptureGivesUpAfterRestartBudget(t *testing.T) {
	var opens int32
	open := func() (Source, error) {
		atomic.AddInt32(&opens, 1)
		src := newFakeSource()
		src.reads <- readResult{err: errBroken}
		return src, nil
	}
	c := Start(open, testOptions())
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := c.NextKey(ctx)
	if !errors.Is(err, ErrInputLost) {
		t.Fatalf("NextKey() error = %v, expected ErrInputLost", err)
	}
	if !errors.Is(err, errBroken) {
		t.Errorf("error should wrap the last source failure, got %v", err)
	}
	if n := atomic.LoadInt32(&opens); n != 3 {
		t.Errorf("opened %d sources, expected 1 + 2 restarts", n)
	}

	// The failure is sticky
	if _, err := c.NextKey(ctx); !errors.Is(err, ErrInputLost) {
		t.Errorf("second NextKey() error = %v, expected ErrInputLost", err)
	}
}

func TestCaptureOpenFailures(t *testing.T) {
	var opens int32
	c := Start(sequence(&opens), testOptions())
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if _, err := c.NextKey(ctx); !errors.Is(err, ErrInputLost) {
		t.Errorf("NextKey() error = %v, expected ErrInputLost", err)
	}
}

func TestCaptureEOFIsFinal(t *testing.T) {
	c := Start(ReaderOpener(strings.NewReader("ws")), testOptions())
	defer c.Close()

	if got := nextKey(t, c).String(); got != "w" {
		t.Errorf("key = %q, expected w", got)
	}
	if got := nextKey(t, c).String(); got != "s" {
		t.Errorf("key = %q, expected s", got)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := c.NextKey(ctx)
	if !errors.Is(err, ErrInputLost) || !errors.Is(err, io.EOF) {
		t.Errorf("NextKey() error = %v, expected ErrInputLost wrapping EOF", err)
	}
}

func TestCaptureClose(t *testing.T) {
	src := newFakeSource()
	var opens int32
	c := Start(sequence(&opens, src), testOptions())

	src.send("w")
	nextKey(t, c)

	if err := c.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}
	if !src.isClosed() {
		t.Error("Close should close the current source")
	}
	if _, err := c.NextKey(context.Background()); !errors.Is(err, ErrClosed) {
		t.Errorf("NextKey() after Close = %v, expected ErrClosed", err)
	}
	if err := c.Close(); err != nil {
		t.Errorf("second Close() = %v, expected nil", err)
	}
}

func TestCaptureContextCancel(t *testing.T) {
	src := newFakeSource()
	var opens int32
	c := Start(sequence(&opens, src), testOptions())
	defer c.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := c.NextKey(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("NextKey() = %v, expected context.Canceled", err)
	}
}
