// Package forest implements Froggy Forest, a turn-based lane crosser.
// The frog climbs a scrolling stack of tree-dotted rows; every step forward
// scores a point and trees block movement.
package forest

import (
	"fmt"
	"math/rand"

	"github.com/xxnonanonxx/froggyforest/internal/core"
)

// Game implements the Froggy Forest turn logic.
type Game struct {
	board  Board
	player core.Pos
	score  int
	turns  int
	gen    *Generator
	theme  Theme
}

// New creates a game drawn with the given theme. Call Reset before Step.
func New(theme Theme) *Game {
	return &Game{theme: theme}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "forest"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Froggy Forest"
}

// Size returns the frame size in cells: one column per lane cell and one
// line per board row.
func (g *Game) Size() (w, h int) {
	return LaneWidth, BoardDepth
}

// Reset starts a new run seeded from the runtime config.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.ResetWithSource(rand.NewSource(runtime.Seed))
}

// ResetWithSource starts a new run whose rows are drawn from src.
func (g *Game) ResetWithSource(src rand.Source) {
	g.gen = NewGenerator(src)
	g.board = NewBoard(g.gen, g.theme.Obstacle, g.theme.Empty)
	g.player = core.Pos{Col: LaneWidth / 2, Row: 0}
	g.score = 0
	g.turns = 0
}

// Step applies one action and returns the resulting state.
func (g *Game) Step(a core.Action) core.StepResult {
	g.turns++

	var ev core.Event
	switch a {
	case core.ActionUp:
		ev = g.stepUp()
	case core.ActionDown, core.ActionLeft, core.ActionRight:
		ev = g.move(a)
	case core.ActionQuit:
		return core.StepResult{State: g.State(), Event: core.EventQuit, Outcome: core.OutcomeQuit}
	default:
		ev = core.EventIgnored
	}

	g.mustBeValid()
	return core.StepResult{State: g.State(), Event: ev, Outcome: core.OutcomeContinue}
}

// stepUp advances the frog, or scrolls the board once the frog stands at the
// top of the visible window. Only successful steps score.
func (g *Game) stepUp() core.Event {
	if g.player.Row < VisibleDepth-1 {
		target := g.player.Add(0, 1)
		if g.board.Occupied(target.Col, target.Row) {
			return core.EventBlocked
		}
		g.player = target
		g.score++
		return core.EventMoved
	}

	if g.board.Occupied(g.player.Col, LookaheadRow) {
		return core.EventBlocked
	}
	g.board.Scroll(g.gen.Generate(g.theme.Obstacle, g.theme.Empty))
	g.score++
	return core.EventScrolled
}

// move handles the non-scoring directions.
func (g *Game) move(a core.Action) core.Event {
	target := g.player.Add(a.Delta())
	if !target.Within(LaneWidth, VisibleDepth) {
		return core.EventBlocked
	}
	if g.board.Occupied(target.Col, target.Row) {
		return core.EventBlocked
	}
	g.player = target
	return core.EventMoved
}

// mustBeValid panics if the player left the reachable window.
func (g *Game) mustBeValid() {
	if !g.player.Within(LaneWidth, VisibleDepth) {
		panic(fmt.Sprintf("forest: player at %v outside %dx%d window", g.player, LaneWidth, VisibleDepth))
	}
	if g.score < 0 {
		panic(fmt.Sprintf("forest: negative score %d", g.score))
	}
}

// Render draws the board, farthest row at the top, into dst.
// All rows are drawn so upcoming terrain is visible.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	for y := 0; y < BoardDepth; y++ {
		idx := BoardDepth - 1 - y
		row := g.board[idx]
		for x := 0; x < LaneWidth; x++ {
			cell := core.Cell{Rune: row.Glyph(x), Color: g.theme.EmptyColor}
			if row.Occupied(x) {
				cell.Color = g.theme.ObstacleColor
			}
			if idx == g.player.Row && x == g.player.Col {
				cell = core.Cell{Rune: g.theme.Player, Color: g.theme.PlayerColor}
			}
			dst.SetCell(x, y, cell)
		}
	}
}

// Status returns the trailing score line shown under the board.
func (g *Game) Status() string {
	return fmt.Sprintf("Score: %d", g.score)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score: g.score,
		Turns: g.turns,
	}
}

// Board returns a copy of the current board.
func (g *Game) Board() Board {
	return g.board
}

// Player returns the frog's position.
func (g *Game) Player() core.Pos {
	return g.player
}
