// Package core provides fundamental types and utilities for the game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "fmt"

// Pos is a cell coordinate on the board. Row 0 is the bottom of the board.
type Pos struct {
	Col, Row int
}

// Add returns the position offset by the given deltas.
func (p Pos) Add(dCol, dRow int) Pos {
	return Pos{Col: p.Col + dCol, Row: p.Row + dRow}
}

// Within reports whether the position lies in [0,cols) x [0,rows).
func (p Pos) Within(cols, rows int) bool {
	return p.Col >= 0 && p.Col < cols && p.Row >= 0 && p.Row < rows
}

// String formats the position as (col,row).
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Col, p.Row)
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
