package grid

import (
	"strings"
)

// Parse builds a grid from text rows. Each rune is one cell:
// '.' empty, 'S' start, 'F' finish, '#' blocked. Spaces between cells are
// not cells; use ParseFields for space-separated rows.
func Parse(rows []string, wind Direction) (*Grid, error) {
	layout := make([][]CellKind, 0, len(rows))
	for r, row := range rows {
		line := make([]CellKind, 0, len(row))
		for c, ch := range []rune(row) {
			kind, ok := ParseCellKind(ch)
			if !ok {
				return nil, invalid(CodeUnknownCell, "row %d col %d: unknown cell %q", r, c, ch)
			}
			line = append(line, kind)
		}
		layout = append(layout, line)
	}
	return New(layout, wind)
}

// ParseFields builds a grid from whitespace-separated rows such as "S . # F".
func ParseFields(rows []string, wind Direction) (*Grid, error) {
	compact := make([]string, len(rows))
	for i, row := range rows {
		compact[i] = strings.Join(strings.Fields(row), "")
	}
	return Parse(compact, wind)
}

// FromCodes builds a grid from the integer layout codes
// 0 (empty), 1 (start), 2 (finish) and 8 (blocked).
func FromCodes(codes [][]int, wind Direction) (*Grid, error) {
	layout := make([][]CellKind, len(codes))
	for r, row := range codes {
		layout[r] = make([]CellKind, len(row))
		for c, code := range row {
			kind, ok := KindFromCode(code)
			if !ok {
				return nil, invalid(CodeUnknownCell, "row %d col %d: unknown code %d", r, c, code)
			}
			layout[r][c] = kind
		}
	}
	return New(layout, wind)
}

// Text returns the layout as text rows, the inverse of Parse.
func (g *Grid) Text() []string {
	out := make([]string, g.rows)
	for r := 0; r < g.rows; r++ {
		var sb strings.Builder
		for c := 0; c < g.cols; c++ {
			sb.WriteRune(g.cells[r*g.cols+c].Rune())
		}
		out[r] = sb.String()
	}
	return out
}
