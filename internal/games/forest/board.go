package forest

// Board geometry. The player only ever stands in rows [0, VisibleDepth);
// rows from LookaheadRow up are upcoming terrain used as the scroll source.
const (
	LaneWidth    = 14
	BoardDepth   = 7
	VisibleDepth = 4
	LookaheadRow = VisibleDepth
)

// Board is the stack of rows, index 0 nearest (bottom) to BoardDepth-1 farthest (top).
type Board [BoardDepth]Row

// NewBoard fills every row from the generator.
func NewBoard(gen *Generator, obstacle, empty rune) Board {
	var b Board
	for i := range b {
		b[i] = gen.Generate(obstacle, empty)
	}
	return b
}

// Occupied reports whether the cell at (col, row) holds an obstacle.
func (b *Board) Occupied(col, row int) bool {
	return b[row].Occupied(col)
}

// Scroll discards the nearest row and appends next at the far end.
func (b *Board) Scroll(next Row) {
	copy(b[:], b[1:])
	b[BoardDepth-1] = next
}
