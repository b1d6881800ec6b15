package input

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/xxnonanonxx/froggyforest/internal/config"
)

var (
	// ErrInputLost is returned once the key source failed more often than the
	// restart budget allows. No further keys will arrive.
	ErrInputLost = errors.New("input: key capture lost")

	// ErrClosed is returned after Close.
	ErrClosed = errors.New("input: capture closed")
)

// Options tune a Capture.
type Options struct {
	QueueSize      int           // Keys buffered ahead of the consumer
	EscapeTimeout  time.Duration // Wait after ESC before reporting a bare Escape
	MaxRestarts    int           // Consecutive source failures tolerated
	RestartBackoff time.Duration // Pause before reopening a failed source
	Logger         *log.Logger
}

// DefaultOptions mirrors the default config.
func DefaultOptions() Options {
	return OptionsFromConfig(config.DefaultForestConfig().Input, nil)
}

// OptionsFromConfig converts the input section of the game config.
func OptionsFromConfig(cfg config.InputConfig, logger *log.Logger) Options {
	return Options{
		QueueSize:      cfg.QueueSize,
		EscapeTimeout:  cfg.EscapeTimeout(),
		MaxRestarts:    cfg.MaxRestarts,
		RestartBackoff: cfg.RestartBackoff(),
		Logger:         logger,
	}
}

// Capture reads keys on a background goroutine and queues them in capture
// order. Reading starts as soon as the capture is created, so the next key is
// already being read while the consumer handles the previous one.
//
// When the queue is full the reader stops reading; keys wait in the terminal
// buffer instead of being dropped.
type Capture struct {
	open   Opener
	opts   Options
	logger *log.Logger

	keys      chan Key
	done      chan struct{}
	closeOnce sync.Once

	mu  sync.Mutex
	src Source
	err error
}

// Start opens the first source and begins capturing.
func Start(open Opener, opts Options) *Capture {
	if opts.QueueSize < 1 {
		opts.QueueSize = 1
	}
	if opts.EscapeTimeout <= 0 {
		opts.EscapeTimeout = 25 * time.Millisecond
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	c := &Capture{
		open:   open,
		opts:   opts,
		logger: logger,
		keys:   make(chan Key, opts.QueueSize),
		done:   make(chan struct{}),
	}
	go c.run()
	return c
}

// NextKey blocks until the next key is captured or ctx is done.
// After the capture gave up it returns an error wrapping ErrInputLost.
func (c *Capture) NextKey(ctx context.Context) (Key, error) {
	select {
	case <-c.done:
		return Key{}, ErrClosed
	default:
	}

	select {
	case k, ok := <-c.keys:
		if !ok {
			return Key{}, c.Err()
		}
		return k, nil
	case <-c.done:
		return Key{}, ErrClosed
	case <-ctx.Done():
		return Key{}, ctx.Err()
	}
}

// Err returns the terminal error, or nil while capture is running.
func (c *Capture) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	if c.closed() {
		return ErrClosed
	}
	return nil
}

// Close stops capturing and closes the current source.
func (c *Capture) Close() error {
	var err error
	c.closeOnce.Do(func() {
		close(c.done)
		if src := c.swapSource(nil); src != nil {
			err = src.Close()
		}
	})
	return err
}

// run is the capture task. It owns the decoder and respawns the source on failure.
func (c *Capture) run() {
	defer close(c.keys)

	var dec decoder
	failures := 0
	for {
		src, err := c.open()
		if err == nil {
			c.swapSource(src)
			err = c.pump(src, &dec, &failures)
			if old := c.swapSource(nil); old != nil {
				old.Close()
			}
		}
		if err == nil || c.closed() {
			return
		}

		if errors.Is(err, io.EOF) {
			c.fail(fmt.Errorf("%w: source closed: %w", ErrInputLost, err))
			return
		}
		if !c.backoff(&failures, err) {
			return
		}
	}
}

// pump reads from src until it fails or the capture is closed.
// Returns nil when closed, otherwise the read error.
func (c *Capture) pump(src Source, dec *decoder, failures *int) error {
	runes := make(chan rune)
	errc := make(chan error, 1)
	go func() {
		for {
			r, err := src.NextRune()
			if err != nil {
				errc <- err
				return
			}
			select {
			case runes <- r:
			case <-c.done:
				return
			}
		}
	}()

	var timeout <-chan time.Time
	for {
		select {
		case r := <-runes:
			*failures = 0
			if !c.emit(dec.feed(r)) {
				return nil
			}
			timeout = nil
			if dec.pending() {
				timeout = time.After(c.opts.EscapeTimeout)
			}

		case <-timeout:
			timeout = nil
			if !c.emit(dec.flush()) {
				return nil
			}

		case err := <-errc:
			if !c.emit(dec.flush()) {
				return nil
			}
			return err

		case <-c.done:
			return nil
		}
	}
}

// emit queues keys in order, blocking while the queue is full.
// Returns false if the capture was closed meanwhile.
func (c *Capture) emit(keys []Key) bool {
	for _, k := range keys {
		select {
		case c.keys <- k:
		case <-c.done:
			return false
		}
	}
	return true
}

// backoff records a failure and waits before the next attempt.
// Returns false when the restart budget is spent or the capture was closed.
func (c *Capture) backoff(failures *int, err error) bool {
	*failures++
	if *failures > c.opts.MaxRestarts {
		c.fail(fmt.Errorf("%w after %d restarts: %w", ErrInputLost, *failures-1, err))
		return false
	}

	c.logger.Warn("key source failed, reopening",
		"error", err,
		"attempt", *failures,
		"max", c.opts.MaxRestarts,
	)

	select {
	case <-time.After(c.opts.RestartBackoff):
		return true
	case <-c.done:
		return false
	}
}

func (c *Capture) closed() bool {
	select {
	case <-c.done:
		return true
	default:
		return false
	}
}

func (c *Capture) fail(err error) {
	c.logger.Error("key capture stopped", "error", err)
	c.mu.Lock()
	c.err = err
	c.mu.Unlock()
}

func (c *Capture) swapSource(src Source) Source {
	c.mu.Lock()
	defer c.mu.Unlock()
	old := c.src
	c.src = src
	return old
}
