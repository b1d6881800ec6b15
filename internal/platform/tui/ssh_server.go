package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/google/uuid"

	"github.com/xxnonanonxx/froggyforest/internal/config"
	"github.com/xxnonanonxx/froggyforest/internal/core"
	"github.com/xxnonanonxx/froggyforest/internal/input"
	"github.com/xxnonanonxx/froggyforest/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.froggyforest/host_key.
	HostKeyPath string

	// DBPath is the path to the scores database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// NewGame creates the game for each session.
	NewGame func() Game

	// Input tunes each session's key capture. Its Logger is replaced.
	Input input.Options

	// TurnDelay is the pause after each applied key.
	TurnDelay time.Duration

	// Logger receives server and session logs. Defaults to stderr.
	Logger *log.Logger
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/" + config.DirName + "/scores.db",
		IdleTimeout: 30 * time.Minute,
		Input:       input.DefaultOptions(),
		TurnDelay:   core.DefaultConfig().TurnDelay,
	}
}

// SSHServer serves one independent single-player run per SSH session.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	if cfg.NewGame == nil {
		return nil, errors.New("tui: SSH server needs a game constructor")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "froggy-ssh",
		})
	}

	// Open storage
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage
		store = nil
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, config.DirName, "host_key")
	}

	// Ensure host key directory exists
	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			srv.gameMiddleware,
			activeterm.Middleware(),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// gameMiddleware runs one game for the session. Keys are captured from the
// session stream by an input.Capture, not by Bubble Tea, so a disconnect or
// a broken stream reaches the model the same way it does locally.
func (s *SSHServer) gameMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		pty, winCh, _ := sess.Pty()
		logger := s.logger.With("session", sessionID(sess.Context()), "user", sess.User())

		inOpts := s.config.Input
		inOpts.Logger = logger
		capture := input.Start(input.ReaderOpener(sess), inOpts)
		defer capture.Close()

		model := NewModel(sess.Context(), s.config.NewGame(), capture, Options{
			Store:    s.store,
			Logger:   logger,
			Renderer: bubbletea.MakeRenderer(sess),
			Player:   sess.User(),
			Runtime: core.RuntimeConfig{
				ScreenW:   pty.Window.Width,
				ScreenH:   pty.Window.Height,
				TurnDelay: s.config.TurnDelay,
				Seed:      time.Now().UnixNano(),
			},
		})

		opts := append(bubbletea.MakeOptions(sess), tea.WithAltScreen(), tea.WithInput(nil))
		p := tea.NewProgram(model, opts...)

		go func() {
			for win := range winCh {
				p.Send(tea.WindowSizeMsg{Width: win.Width, Height: win.Height})
			}
		}()

		final, err := p.Run()
		if err != nil {
			logger.Error("program error", "error", err)
		} else if fm, ok := final.(Model); ok && fm.Err() != nil {
			fmt.Fprintf(sess.Stderr(), "Input lost: %v\n", fm.Err())
		}

		next(sess)
	}
}

type sessionIDKey struct{}

func sessionID(ctx ssh.Context) string {
	if id, ok := ctx.Value(sessionIDKey{}).(string); ok {
		return id
	}
	return ""
}

// loggingMiddleware tags the session with an ID and logs its lifetime.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		id := uuid.NewString()
		sshSession.Context().SetValue(sessionIDKey{}, id)
		start := time.Now()

		s.logger.Info("session started",
			"session", id,
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"session", id,
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
			"duration", time.Since(start).Round(time.Second),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	errc := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
			errc <- err
		}
	}()

	select {
	case <-done:
	case err := <-errc:
		s.Shutdown()
		return err
	}
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := s.server.Shutdown(ctx)
	if s.store != nil {
		s.store.Close()
		s.store = nil
	}
	return err
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
