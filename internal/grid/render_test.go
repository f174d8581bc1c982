package grid_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/windmaze/internal/core"
	"github.com/vovakirdan/windmaze/internal/grid"
)

func TestDumpLayout(t *testing.T) {
	g := newReference(t, grid.West)

	want := strings.Join([]string{
		". S . # . .",
		". # # # # .",
		". # . F # .",
		". # . . . .",
		". . . . . .",
	}, "\n")
	assert.Equal(t, want, g.Dump(grid.RenderOptions{}))
}

func TestDumpDiscoveryAndPath(t *testing.T) {
	g := newReference(t, grid.West)
	g.RecordDiscovery(grid.P(0, 0), 1)
	g.RecordDiscovery(grid.P(0, 2), 12)
	g.RecordDiscovery(grid.P(1, 0), 3)
	g.MarkPath([]grid.Position{grid.P(0, 1), grid.P(0, 0)})

	want := strings.Join([]string{
		" *  S 12  #  .  .",
		" 3  #  #  #  #  .",
		" .  #  .  F  #  .",
		" .  #  .  .  .  .",
		" .  .  .  .  .  .",
	}, "\n")
	assert.Equal(t, want, g.String())

	// Without discovery the columns shrink back to one character.
	assert.Equal(t, "* S . # . .", strings.Split(g.Dump(grid.RenderOptions{}), "\n")[0])
}

func TestRenderColors(t *testing.T) {
	g := newReference(t, grid.West)
	g.MarkPath([]grid.Position{grid.P(0, 0)})
	s := g.Screen(grid.RenderOptions{})

	assert.Equal(t, core.ColorYellow, s.GetCell(0, 0).Color)
	assert.Equal(t, core.ColorGreen, s.GetCell(2, 0).Color)
	assert.Equal(t, core.ColorGray, s.GetCell(6, 0).Color)
	assert.Equal(t, core.ColorRed, s.GetCell(6, 2).Color)
}

func TestDimensions(t *testing.T) {
	g := newReference(t, grid.West)
	w, h := g.Dimensions(grid.RenderOptions{Discovery: true})
	assert.Equal(t, 11, w)
	assert.Equal(t, 5, h)

	g.RecordDiscovery(grid.P(4, 5), 100)
	w, _ = g.Dimensions(grid.RenderOptions{Discovery: true})
	assert.Equal(t, 6*4-1, w)
}
