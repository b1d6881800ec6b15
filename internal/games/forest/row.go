package forest

import "math/rand"

// ObstacleChance is the probability that a freshly generated cell holds an obstacle.
const ObstacleChance = 0.2

// Row is one horizontal lane of the board.
type Row struct {
	Cells    [LaneWidth]bool // true = obstacle
	Obstacle rune            // Glyph drawn for occupied cells
	Empty    rune            // Glyph drawn for free cells
}

// Occupied reports whether the cell at col holds an obstacle.
func (r Row) Occupied(col int) bool {
	return r.Cells[col]
}

// Glyph returns the glyph drawn for the cell at col.
func (r Row) Glyph(col int) rune {
	if r.Cells[col] {
		return r.Obstacle
	}
	return r.Empty
}

// Obstacles returns the number of occupied cells.
func (r Row) Obstacles() int {
	n := 0
	for _, c := range r.Cells {
		if c {
			n++
		}
	}
	return n
}

// Generator produces random rows from an injected source.
type Generator struct {
	rng    *rand.Rand
	chance float64
}

// NewGenerator creates a row generator drawing from src.
// The same source seed always yields the same sequence of rows.
func NewGenerator(src rand.Source) *Generator {
	return &Generator{
		rng:    rand.New(src),
		chance: ObstacleChance,
	}
}

// Generate returns a row of LaneWidth independent obstacle draws.
func (g *Generator) Generate(obstacle, empty rune) Row {
	row := Row{Obstacle: obstacle, Empty: empty}
	for i := range row.Cells {
		row.Cells[i] = g.rng.Float64() < g.chance
	}
	return row
}
