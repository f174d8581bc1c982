package search

import (
	"fmt"

	"github.com/vovakirdan/windmaze/internal/grid"
)

// NoParent is the Parent value of the start node.
const NoParent = -1

// Node is a discovered cell. Nodes are immutable values; Parent refers to the
// predecessor by discovery order, which is also its index in the node arena.
type Node struct {
	Order  int           // discovery order, 0 for the start node
	Pos    grid.Position // cell this node denotes
	Parent int           // discovery order of the predecessor, NoParent for start
	G      int           // accumulated movement cost from the start
	H      int           // Manhattan distance to the finish
}

// F returns the estimated total cost G + H.
func (n Node) F() int {
	return n.G + n.H
}

// String returns a compact description of the node for logs and test output.
func (n Node) String() string {
	return fmt.Sprintf("#%d%v g=%d h=%d f=%d", n.Order, n.Pos, n.G, n.H, n.F())
}

// Less orders nodes by total cost, breaking ties by discovery order so that
// among equal-cost nodes the earlier one is expanded first.
func Less(a, b Node) bool {
	if a.F() != b.F() {
		return a.F() < b.F()
	}
	return a.Order < b.Order
}

// Counter hands out discovery orders. It is owned by a single search
// execution; the start node always takes 0.
type Counter struct {
	next int
}

// Next returns the next discovery order and advances the counter.
func (c *Counter) Next() int {
	n := c.next
	c.next++
	return n
}

// Count returns how many orders have been handed out.
func (c *Counter) Count() int {
	return c.next
}

// startNode builds the order-0 node for the grid's start cell.
func startNode(g *grid.Grid, c *Counter) Node {
	start := g.Start()
	return Node{
		Order:  c.Next(),
		Pos:    start,
		Parent: NoParent,
		G:      0,
		H:      g.ManhattanDistance(start.Row, start.Col),
	}
}

// newNode builds a node for pos reached from parent at accumulated cost cost.
func newNode(g *grid.Grid, c *Counter, parent Node, cost int, pos grid.Position) Node {
	return Node{
		Order:  c.Next(),
		Pos:    pos,
		Parent: parent.Order,
		G:      cost,
		H:      g.ManhattanDistance(pos.Row, pos.Col),
	}
}
