package search

import (
	"fmt"

	"github.com/vovakirdan/windmaze/internal/grid"
)

// ReconstructFromParents follows Parent indices from goal back to the start
// node. nodes must be the arena indexed by discovery order.
func ReconstructFromParents(nodes []Node, goal Node) []grid.Position {
	path := []grid.Position{goal.Pos}
	current := goal
	for current.Parent != NoParent {
		if current.Parent < 0 || current.Parent >= len(nodes) {
			break
		}
		current = nodes[current.Parent]
		path = append(path, current.Pos)
	}
	reverse(path)
	return path
}

// ReconstructByAdjacency rebuilds a path without parent links: starting from
// goal it scans history from newest to oldest and prepends every node that is
// 4-adjacent to the current head. The result is a connected chain ending at
// goal but not necessarily the cheapest one. O(len(history)).
func ReconstructByAdjacency(history []Node, goal Node) []grid.Position {
	path := []grid.Position{goal.Pos}
	head := goal.Pos
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Pos.Adjacent(head) {
			head = history[i].Pos
			path = append(path, head)
		}
	}
	reverse(path)
	return path
}

func reverse(path []grid.Position) {
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
}

// PathCost sums the directional movement costs along path.
// Returns an error if two consecutive cells are not 4-adjacent.
func PathCost(g *grid.Grid, path []grid.Position) (int, error) {
	total := 0
	for i := 1; i < len(path); i++ {
		d, ok := path[i-1].DirectionTo(path[i])
		if !ok {
			return 0, fmt.Errorf("path step %d: %v is not adjacent to %v", i, path[i-1], path[i])
		}
		total += g.MovementCost(d)
	}
	return total, nil
}

// ValidatePath checks that path runs from the grid's start to its finish
// through traversable, pairwise 4-adjacent cells.
func ValidatePath(g *grid.Grid, path []grid.Position) error {
	if len(path) == 0 {
		return fmt.Errorf("path is empty")
	}
	if path[0] != g.Start() {
		return fmt.Errorf("path starts at %v, expected %v", path[0], g.Start())
	}
	if last := path[len(path)-1]; last != g.Finish() {
		return fmt.Errorf("path ends at %v, expected %v", last, g.Finish())
	}
	for i := 1; i < len(path); i++ {
		if !path[i-1].Adjacent(path[i]) {
			return fmt.Errorf("path step %d: %v is not adjacent to %v", i, path[i-1], path[i])
		}
		if !g.IsTraversable(path[i].Row, path[i].Col) {
			return fmt.Errorf("path step %d: %v is not traversable", i, path[i])
		}
	}
	return nil
}
