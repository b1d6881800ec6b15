package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/xxnonanonxx/froggyforest/internal/core"
	"github.com/xxnonanonxx/froggyforest/internal/input"
	"github.com/xxnonanonxx/froggyforest/internal/storage"
)

// Game is the turn-based game driven by the model.
type Game interface {
	ID() string
	Title() string
	Size() (w, h int)
	Reset(runtime core.RuntimeConfig)
	Step(a core.Action) core.StepResult
	Render(dst *core.Screen)
	Status() string
	State() core.GameState
}

// KeySource supplies captured keys one at a time. *input.Capture implements it.
type KeySource interface {
	NextKey(ctx context.Context) (input.Key, error)
}

// Options configures a Model. Store, Logger and Renderer may be nil.
type Options struct {
	Store    *storage.Store
	Logger   *log.Logger
	Renderer *lipgloss.Renderer
	Player   string // Name recorded with the finished run
	Runtime  core.RuntimeConfig
}

// Model is the Bubble Tea model running one Froggy Forest run.
// A turn is: render, await a key, apply it, wait the turn delay.
type Model struct {
	ctx     context.Context
	game    Game
	keys    KeySource
	keymap  KeyMap
	help    help.Model
	screen  *core.Screen
	palette palette
	store   *storage.Store
	logger  *log.Logger
	config  core.RuntimeConfig

	player  string
	runID   uuid.UUID
	started time.Time

	gameState core.GameState
	lastEvent core.Event
	best      int // Best recorded score when the run started
	width     int
	height    int
	quitting  bool
	saved     bool
	err       error
}

// NewModel creates a model and starts a fresh run of game.
// ctx bounds every key wait; cancelling it ends the run as a disconnect.
func NewModel(ctx context.Context, game Game, keys KeySource, opts Options) Model {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	renderer := opts.Renderer
	if renderer == nil {
		renderer = lipgloss.DefaultRenderer()
	}

	game.Reset(cfg)
	w, h := game.Size()

	m := Model{
		ctx:       ctx,
		game:      game,
		keys:      keys,
		keymap:    DefaultKeyMap(),
		help:      help.New(),
		screen:    core.NewScreen(w, h),
		palette:   newPalette(renderer),
		store:     opts.Store,
		logger:    logger,
		config:    cfg,
		player:    opts.Player,
		runID:     uuid.New(),
		started:   time.Now(),
		gameState: game.State(),
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
	}
	if m.store != nil {
		best, err := m.store.HighScore(game.ID())
		if err != nil {
			m.logger.Warn("could not load high score", "error", err)
		}
		m.best = best
	}
	m.logger.Info("run started", "run", m.runID, "player", m.player, "seed", cfg.Seed, "best", m.best)
	return m
}

// Init starts waiting for the first key.
func (m Model) Init() tea.Cmd {
	return awaitKeyCmd(m.ctx, m.keys)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case keyMsg:
		return m.handleKey(msg.key)

	case TurnMsg:
		return m, awaitKeyCmd(m.ctx, m.keys)

	case inputLostMsg:
		return m.handleInputLost(msg.err)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey applies one captured key as a full turn.
func (m Model) handleKey(k input.Key) (tea.Model, tea.Cmd) {
	action := m.keymap.Action(k)
	result := m.game.Step(action)
	m.gameState = result.State
	m.lastEvent = result.Event

	m.logger.Debug("turn",
		"key", k.String(),
		"action", action,
		"event", result.Event,
		"score", result.State.Score,
	)

	if result.Outcome == core.OutcomeQuit {
		m.finish(storage.EndQuit)
		m.quitting = true
		return m, tea.Quit
	}
	return m, turnDelayCmd(m.config.TurnDelay)
}

// handleInputLost ends the run once no more keys can arrive.
// A cancelled context or a closed stream means the player went away.
func (m Model) handleInputLost(err error) (tea.Model, tea.Cmd) {
	if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
		m.finish(storage.EndDisconnect)
	} else {
		m.logger.Error("input lost", "run", m.runID, "error", err)
		m.err = err
		m.finish(storage.EndInputLost)
	}
	m.quitting = true
	return m, tea.Quit
}

// finish records the run once.
func (m *Model) finish(reason storage.EndReason) {
	if m.saved {
		return
	}
	m.saved = true

	m.logger.Info("run finished",
		"run", m.runID,
		"score", m.gameState.Score,
		"turns", m.gameState.Turns,
		"reason", reason,
	)
	if m.store == nil {
		return
	}
	_, err := m.store.SaveRun(storage.RunRecord{
		RunID:     m.runID,
		GameID:    m.game.ID(),
		Player:    m.player,
		Score:     m.gameState.Score,
		Turns:     m.gameState.Turns,
		EndReason: reason,
		Duration:  time.Since(m.started),
	})
	if err != nil {
		// Best-effort save, the run is over regardless
		m.logger.Warn("could not save run", "run", m.runID, "error", err)
	}
}

// View renders the board, the score line and the key help.
// With a score store the best score so far is shown under the score.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	lines := []string{m.palette.render(m.screen), m.game.Status()}
	if m.store != nil {
		lines = append(lines, fmt.Sprintf("Best: %d", m.Best()))
	}
	lines = append(lines, m.help.View(m.keymap))
	frame := lipgloss.JoinVertical(lipgloss.Left, lines...)

	if m.width <= 0 || m.height <= 0 {
		return frame
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, frame)
}

// State returns the latest game state snapshot.
func (m Model) State() core.GameState {
	return m.gameState
}

// Best returns the best score including the current run.
func (m Model) Best() int {
	return core.Max(m.best, m.gameState.Score)
}

// RunID identifies the run in the score log.
func (m Model) RunID() uuid.UUID {
	return m.runID
}

// Frame returns the board as plain text without colors, for printing after
// the program has left the alternate screen.
func (m Model) Frame() string {
	m.game.Render(m.screen)
	return m.screen.String()
}

// LastEvent returns what the most recent turn did.
func (m Model) LastEvent() core.Event {
	return m.lastEvent
}

// Err returns the input fault that ended the run, if any.
func (m Model) Err() error {
	return m.err
}

// Run plays one run on the local terminal until the player quits and
// returns the final model. Bubble Tea's own input is disabled; keys come
// from keys only.
func Run(ctx context.Context, game Game, keys KeySource, opts Options) (Model, error) {
	model := NewModel(ctx, game, keys, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
		tea.WithInput(nil),
	)

	final, err := p.Run()
	if err != nil {
		return model, err
	}
	if fm, ok := final.(Model); ok {
		return fm, fm.Err()
	}
	return model, nil
}
