// Package search implements a directional-cost A* search over a grid.Grid.
//
// The search is a single sequential loop owned by a Searcher:
//
//   - the Frontier is a binary heap of Nodes ordered by (F, Order);
//   - the Visited registry stops a cell from being enqueued twice;
//   - every popped node is appended to the explored history;
//   - the path is rebuilt from the goal node once the loop stops.
//
// Two de-duplication strategies are available. MarkOnPush is the
// default: a cell is marked when first discovered and the goal is
// detected at discovery time, so the path found is not always the
// cheapest. MarkOnPop is textbook A*: cells are closed when popped,
// stale heap entries are discarded and the first popped goal is
// cost-optimal.
package search
