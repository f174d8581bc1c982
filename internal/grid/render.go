package grid

import (
	"strconv"

	"github.com/vovakirdan/windmaze/internal/core"
)

// Glyphs used by the textual dump.
const (
	GlyphEmpty   = '.'
	GlyphStart   = 'S'
	GlyphFinish  = 'F'
	GlyphBlocked = '#'
	GlyphPath    = '*'
)

// RenderOptions controls the textual dump.
type RenderOptions struct {
	// Discovery prints the discovery order of every reached Empty cell.
	Discovery bool
}

// cellWidth returns the column width needed to print every token.
func (g *Grid) cellWidth(opts RenderOptions) int {
	width := 1
	if !opts.Discovery {
		return width
	}
	for _, order := range g.discovery {
		if order >= 0 {
			width = core.Max(width, core.Digits(order))
		}
	}
	return width
}

// Dimensions returns the screen size needed to render the grid.
func (g *Grid) Dimensions(opts RenderOptions) (width, height int) {
	cw := g.cellWidth(opts)
	return g.cols*(cw+1) - 1, g.rows
}

// token returns the text and color for a single cell.
func (g *Grid) token(p Position, opts RenderOptions) (string, core.Color) {
	switch g.cells[g.Index(p)] {
	case Start:
		return string(GlyphStart), core.ColorGreen
	case Finish:
		return string(GlyphFinish), core.ColorRed
	case Blocked:
		return string(GlyphBlocked), core.ColorGray
	}
	if g.OnPath(p) {
		return string(GlyphPath), core.ColorYellow
	}
	if order := g.Discovery(p); opts.Discovery && order >= 0 {
		return strconv.Itoa(order), core.ColorBlue
	}
	return string(GlyphEmpty), core.ColorDefault
}

// Render draws the grid into dst starting at its top-left corner.
// Columns are right-aligned so multi-digit discovery numbers line up.
// The screen should be at least Dimensions(opts) in size; extra cells are clipped.
func (g *Grid) Render(dst *core.Screen, opts RenderOptions) {
	cw := g.cellWidth(opts)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			text, color := g.token(P(r, c), opts)
			dst.DrawTextRight(c*(cw+1), r, cw, text, color)
		}
	}
}

// Screen renders the grid into a freshly sized screen buffer.
func (g *Grid) Screen(opts RenderOptions) *core.Screen {
	w, h := g.Dimensions(opts)
	s := core.NewScreen(w, h)
	g.Render(s, opts)
	return s
}

// Dump returns the plain-text rendering of the grid.
func (g *Grid) Dump(opts RenderOptions) string {
	return g.Screen(opts).String()
}

// String returns the grid dump including discovery numbers and path marks.
func (g *Grid) String() string {
	return g.Dump(RenderOptions{Discovery: true})
}
