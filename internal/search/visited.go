package search

import "github.com/vovakirdan/windmaze/internal/grid"

// Visited is the set of cells already enqueued or expanded.
// Positions must be inside the grid it was created for.
type Visited struct {
	cols int
	seen []bool
	n    int
}

// NewVisited creates an empty registry sized for g.
func NewVisited(g *grid.Grid) *Visited {
	return &Visited{
		cols: g.Cols(),
		seen: make([]bool, g.Size()),
	}
}

// Contains reports whether pos has been marked.
func (v *Visited) Contains(pos grid.Position) bool {
	return v.seen[pos.Row*v.cols+pos.Col]
}

// Mark records pos and reports whether it was newly added.
func (v *Visited) Mark(pos grid.Position) bool {
	i := pos.Row*v.cols + pos.Col
	if v.seen[i] {
		return false
	}
	v.seen[i] = true
	v.n++
	return true
}

// Len returns the number of marked cells.
func (v *Visited) Len() int {
	return v.n
}
