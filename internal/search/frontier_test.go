package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/windmaze/internal/grid"
)

func TestFrontierPopOrder(t *testing.T) {
	f := NewFrontier()
	nodes := []Node{
		{Order: 0, G: 0, H: 6}, // f=6
		{Order: 1, G: 3, H: 4}, // f=7
		{Order: 2, G: 1, H: 5}, // f=6, later than 0
		{Order: 3, G: 9, H: 0}, // f=9
		{Order: 4, G: 2, H: 4}, // f=6, latest
		{Order: 5, G: 5, H: 0}, // f=5
		{Order: 6, G: 7, H: 0}, // f=7, later than 1
	}
	for _, n := range nodes {
		f.Push(n)
	}
	require.Equal(t, len(nodes), f.Len())

	var orders []int
	for !f.Empty() {
		n, err := f.PopMin()
		require.NoError(t, err)
		orders = append(orders, n.Order)
	}
	assert.Equal(t, []int{5, 0, 2, 4, 1, 6, 3}, orders)
}

func TestFrontierPopEmpty(t *testing.T) {
	f := NewFrontier()
	_, err := f.PopMin()
	assert.ErrorIs(t, err, ErrEmptyFrontier)
}

func TestLessTieBreak(t *testing.T) {
	a := Node{Order: 3, G: 2, H: 2}
	b := Node{Order: 4, G: 1, H: 3}
	c := Node{Order: 1, G: 5, H: 0}

	assert.True(t, Less(a, b), "equal f: earlier discovery first")
	assert.False(t, Less(b, a))
	assert.True(t, Less(a, c), "lower f first")
	assert.False(t, Less(a, a))
}

func TestCounter(t *testing.T) {
	var c Counter
	assert.Equal(t, 0, c.Next())
	assert.Equal(t, 1, c.Next())
	assert.Equal(t, 2, c.Count())
}

func TestVisited(t *testing.T) {
	g, err := grid.Parse([]string{"S..", "..F"}, grid.West)
	require.NoError(t, err)

	v := NewVisited(g)
	p := grid.P(1, 2)
	assert.False(t, v.Contains(p))
	assert.True(t, v.Mark(p))
	assert.False(t, v.Mark(p), "second mark reports existing entry")
	assert.True(t, v.Contains(p))
	assert.False(t, v.Contains(grid.P(0, 2)))
	assert.Equal(t, 1, v.Len())
}

func TestNodeConstruction(t *testing.T) {
	g, err := grid.Parse([]string{"S..", "..F"}, grid.West)
	require.NoError(t, err)

	var c Counter
	start := startNode(g, &c)
	assert.Equal(t, 0, start.Order)
	assert.Equal(t, NoParent, start.Parent)
	assert.Equal(t, 0, start.G)
	assert.Equal(t, 3, start.H)

	n := newNode(g, &c, start, 3, grid.P(0, 1))
	assert.Equal(t, 1, n.Order)
	assert.Equal(t, 0, n.Parent)
	assert.Equal(t, 3, n.G)
	assert.Equal(t, 2, n.H)
	assert.Equal(t, 5, n.F())
}
