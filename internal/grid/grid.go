package grid

import (
	"fmt"
)

// Grid is a fixed-size maze with a wind direction.
// Cells are stored in row-major order: index = row*cols + col.
type Grid struct {
	rows   int
	cols   int
	cells  []CellKind
	wind   Direction
	start  Position
	finish Position

	// Display-only annotations; they never influence search decisions.
	discovery []int
	path      []bool
}

// New builds a grid from a rectangular layout. The layout is deep-copied.
// Returns a *MazeError (wrapping ErrInvalidMaze) if the layout is empty or
// ragged, the wind is not a cardinal direction, or the layout does not hold
// exactly one Start and exactly one Finish cell.
func New(layout [][]CellKind, wind Direction) (*Grid, error) {
	if len(layout) == 0 || len(layout[0]) == 0 {
		return nil, invalid(CodeEmptyLayout, "layout has no cells")
	}
	if !wind.Valid() {
		return nil, invalid(CodeInvalidWind, "wind direction %d is not in 0..3", wind)
	}

	rows, cols := len(layout), len(layout[0])
	g := &Grid{
		rows:      rows,
		cols:      cols,
		cells:     make([]CellKind, rows*cols),
		wind:      wind,
		discovery: make([]int, rows*cols),
		path:      make([]bool, rows*cols),
	}

	var starts, finishes []Position
	for r, line := range layout {
		if len(line) != cols {
			return nil, invalid(CodeRaggedLayout, "row %d has %d cells, expected %d", r, len(line), cols)
		}
		for c, kind := range line {
			switch kind {
			case Start:
				starts = append(starts, P(r, c))
			case Finish:
				finishes = append(finishes, P(r, c))
			case Empty, Blocked:
			default:
				return nil, invalid(CodeUnknownCell, "cell %v has unknown kind %d", P(r, c), kind)
			}
			g.cells[r*cols+c] = kind
		}
	}

	if len(starts) != 1 {
		return nil, invalid(CodeStartCount, "expected exactly one start cell, found %d %v", len(starts), starts)
	}
	if len(finishes) != 1 {
		return nil, invalid(CodeFinishCount, "expected exactly one finish cell, found %d %v", len(finishes), finishes)
	}
	g.start = starts[0]
	g.finish = finishes[0]
	g.ResetAnnotations()

	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Size returns the total number of cells.
func (g *Grid) Size() int { return g.rows * g.cols }

// Wind returns the wind direction.
func (g *Grid) Wind() Direction { return g.wind }

// Start returns the start cell.
func (g *Grid) Start() Position { return g.start }

// Finish returns the finish cell.
func (g *Grid) Finish() Position { return g.finish }

// InBounds reports whether the coordinate lies inside the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Index converts an in-bounds position to its row-major index.
func (g *Grid) Index(p Position) int {
	return p.Row*g.cols + p.Col
}

// CellKind returns the kind of the cell at (row, col).
// Returns ErrOutOfBounds for coordinates outside the grid.
func (g *Grid) CellKind(row, col int) (CellKind, error) {
	if !g.InBounds(row, col) {
		return Empty, fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrOutOfBounds, row, col, g.rows, g.cols)
	}
	return g.cells[row*g.cols+col], nil
}

// IsTraversable reports whether a search may step onto (row, col): the cell is
// in bounds and Empty or Finish. The Start cell is only ever the origin.
func (g *Grid) IsTraversable(row, col int) bool {
	kind, err := g.CellKind(row, col)
	if err != nil {
		return false
	}
	return kind == Empty || kind == Finish
}

// MovementCost returns the cost of one step in direction d under this grid's wind.
func (g *Grid) MovementCost(d Direction) int {
	return Cost(g.wind, d)
}

// ManhattanDistance returns |row-finishRow| + |col-finishCol|.
func (g *Grid) ManhattanDistance(row, col int) int {
	return P(row, col).Manhattan(g.finish)
}

// RecordDiscovery annotates a cell with the discovery order of the search
// node that reached it. Out-of-bounds positions are ignored.
func (g *Grid) RecordDiscovery(p Position, order int) {
	if g.InBounds(p.Row, p.Col) {
		g.discovery[g.Index(p)] = order
	}
}

// Discovery returns the recorded discovery order for a cell, or -1.
func (g *Grid) Discovery(p Position) int {
	if !g.InBounds(p.Row, p.Col) {
		return -1
	}
	return g.discovery[g.Index(p)]
}

// MarkPath flags the given cells as part of the displayed solution.
// Cell kinds are left untouched.
func (g *Grid) MarkPath(positions []Position) {
	for _, p := range positions {
		if g.InBounds(p.Row, p.Col) {
			g.path[g.Index(p)] = true
		}
	}
}

// OnPath reports whether the cell has been marked by MarkPath.
func (g *Grid) OnPath(p Position) bool {
	if !g.InBounds(p.Row, p.Col) {
		return false
	}
	return g.path[g.Index(p)]
}

// ResetAnnotations clears discovery orders and path marks.
func (g *Grid) ResetAnnotations() {
	for i := range g.discovery {
		g.discovery[i] = -1
		g.path[i] = false
	}
}

// Count returns the number of cells of the given kind.
func (g *Grid) Count(kind CellKind) int {
	n := 0
	for _, k := range g.cells {
		if k == kind {
			n++
		}
	}
	return n
}
