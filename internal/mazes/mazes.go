// Package mazes registers the built-in mazes.
package mazes

import (
	"github.com/vovakirdan/windmaze/internal/grid"
	"github.com/vovakirdan/windmaze/internal/registry"
)

// literal is a maze described by text rows.
type literal struct {
	id    string
	title string
	wind  grid.Direction
	rows  []string
}

func (m literal) ID() string           { return m.id }
func (m literal) Title() string        { return m.title }
func (m literal) Wind() grid.Direction { return m.wind }

func (m literal) Build(wind grid.Direction) (*grid.Grid, error) {
	return grid.Parse(m.rows, wind)
}

// coded is a maze described by integer cell codes (0, 1, 2, 8).
type coded struct {
	id    string
	title string
	wind  grid.Direction
	codes [][]int
}

func (m coded) ID() string           { return m.id }
func (m coded) Title() string        { return m.title }
func (m coded) Wind() grid.Direction { return m.wind }

func (m coded) Build(wind grid.Direction) (*grid.Grid, error) {
	return grid.FromCodes(m.codes, wind)
}

func register(m registry.Maze) {
	registry.Register(m.ID(), func() registry.Maze { return m })
}

func init() {
	register(coded{
		id:    "reference",
		title: "Reference 5x6",
		wind:  grid.West,
		codes: [][]int{
			{0, 1, 0, 8, 0, 0},
			{0, 8, 8, 8, 8, 0},
			{0, 8, 0, 2, 8, 0},
			{0, 8, 0, 0, 0, 0},
			{0, 0, 0, 0, 0, 0},
		},
	})

	register(literal{
		id:    "sealed",
		title: "Sealed Finish",
		wind:  grid.West,
		rows: []string{
			".S.#..",
			".####.",
			".##F#.",
			".#.#..",
			"......",
		},
	})

	register(literal{
		id:    "corridor",
		title: "Single Corridor",
		wind:  grid.East,
		rows: []string{
			"#S..##",
			"###.##",
			"###F##",
		},
	})

	register(literal{
		id:    "open",
		title: "Open Field",
		wind:  grid.North,
		rows: []string{
			"......",
			"..S...",
			"......",
			"....F.",
		},
	})

	register(literal{
		id:    "switchback",
		title: "Switchback",
		wind:  grid.South,
		rows: []string{
			"S.......#",
			"#######.#",
			"#.......#",
			"#.#######",
			"#.......F",
		},
	})
}
