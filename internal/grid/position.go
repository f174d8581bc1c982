package grid

import (
	"fmt"

	"github.com/vovakirdan/windmaze/internal/core"
)

// Position is a (row, column) cell address.
// Rows grow downward, columns grow to the right.
type Position struct {
	Row int
	Col int
}

// P is a convenience constructor for Position.
func P(row, col int) Position {
	return Position{Row: row, Col: col}
}

// String returns a string representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Step returns the position one cell away in direction d.
func (p Position) Step(d Direction) Position {
	dr, dc := d.Delta()
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// Manhattan returns the Manhattan distance to another position.
func (p Position) Manhattan(other Position) int {
	return core.Abs(p.Row-other.Row) + core.Abs(p.Col-other.Col)
}

// Adjacent reports whether two positions share a grid edge.
func (p Position) Adjacent(other Position) bool {
	return p.Manhattan(other) == 1
}

// DirectionTo returns the direction of a single step from p to an adjacent
// position. ok is false if the positions are not 4-adjacent.
func (p Position) DirectionTo(other Position) (d Direction, ok bool) {
	for _, d := range Directions {
		if p.Step(d) == other {
			return d, true
		}
	}
	return West, false
}
