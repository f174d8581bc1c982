package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/windmaze/internal/grid"
)

type stubMaze struct {
	id   string
	rows []string
}

func (m stubMaze) ID() string           { return m.id }
func (m stubMaze) Title() string        { return "Stub " + m.id }
func (m stubMaze) Wind() grid.Direction { return grid.South }
func (m stubMaze) Build(wind grid.Direction) (*grid.Grid, error) {
	return grid.Parse(m.rows, wind)
}

func TestRegisterAndCreate(t *testing.T) {
	Register("test-stub", func() Maze { return stubMaze{id: "test-stub", rows: []string{"S.F"}} })

	assert.True(t, Exists("test-stub"))
	assert.False(t, Exists("test-missing"))

	m, err := Create("test-stub")
	require.NoError(t, err)
	assert.Equal(t, "Stub test-stub", m.Title())

	var found bool
	for _, info := range List() {
		if info.ID == "test-stub" {
			found = true
			assert.Equal(t, grid.South, info.Wind)
		}
	}
	assert.True(t, found)
}

func TestRegisterDuplicatePanics(t *testing.T) {
	f := func() Maze { return stubMaze{id: "test-dup", rows: []string{"SF"}} }
	Register("test-dup", f)
	assert.Panics(t, func() { Register("test-dup", f) })
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("test-nope")
	assert.ErrorContains(t, err, "unknown maze")
}

func TestBuildWind(t *testing.T) {
	Register("test-build", func() Maze { return stubMaze{id: "test-build", rows: []string{"S.", ".F"}} })

	g, err := Build("test-build", nil)
	require.NoError(t, err)
	assert.Equal(t, grid.South, g.Wind())

	east := grid.East
	g, err = Build("test-build", &east)
	require.NoError(t, err)
	assert.Equal(t, grid.East, g.Wind())
}

func TestBuildWrapsMazeError(t *testing.T) {
	Register("test-broken", func() Maze { return stubMaze{id: "test-broken", rows: []string{"SS"}} })

	_, err := Build("test-broken", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, grid.ErrInvalidMaze)
}

func TestListSorted(t *testing.T) {
	Register("test-zz", func() Maze { return stubMaze{id: "test-zz", rows: []string{"SF"}} })
	Register("test-aa", func() Maze { return stubMaze{id: "test-aa", rows: []string{"SF"}} })

	list := List()
	for i := 1; i < len(list); i++ {
		assert.Less(t, list[i-1].ID, list[i].ID)
	}
}
