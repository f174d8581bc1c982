package search

import (
	"context"
	"fmt"

	"github.com/vovakirdan/windmaze/internal/grid"
)

// State is the state of the expansion loop.
type State uint8

const (
	Running State = iota
	Found
	Exhausted
)

// String returns the string representation of a state.
func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Found:
		return "found"
	case Exhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further steps will happen.
func (s State) Terminal() bool {
	return s == Found || s == Exhausted
}

// Searcher owns one search execution over a grid: the frontier, the visited
// registry, the discovery counter, the node arena and the explored history.
// It is not safe for concurrent use.
type Searcher struct {
	grid *grid.Grid
	opts Options

	counter  Counter
	frontier *Frontier
	visited  *Visited
	nodes    []Node // arena indexed by discovery order
	history  []Node // popped nodes in pop order
	best     []int  // cheapest G seen per cell, MarkOnPop only

	state State
	goal  Node
	stale int
}

// New creates a searcher and seeds the frontier with the start node.
func New(g *grid.Grid, options ...Option) *Searcher {
	opts := defaultOptions()
	for _, o := range options {
		o(&opts)
	}

	s := &Searcher{
		grid:     g,
		opts:     opts,
		frontier: NewFrontier(),
		visited:  NewVisited(g),
		state:    Running,
	}
	if opts.Strategy == MarkOnPop {
		s.best = make([]int, g.Size())
		for i := range s.best {
			s.best[i] = -1
		}
	}

	start := startNode(g, &s.counter)
	s.record(start)
	if opts.Strategy == MarkOnPush {
		s.visited.Mark(start.Pos)
	} else {
		s.best[g.Index(start.Pos)] = 0
	}
	s.frontier.Push(start)

	s.debug("search seeded", "start", start.Pos, "finish", g.Finish(),
		"wind", g.Wind(), "strategy", opts.Strategy)
	return s
}

// record appends a freshly created node to the arena and annotates the grid.
func (s *Searcher) record(n Node) {
	s.nodes = append(s.nodes, n)
	if s.opts.Annotate {
		s.grid.RecordDiscovery(n.Pos, n.Order)
	}
}

func (s *Searcher) debug(msg string, keyvals ...any) {
	if s.opts.Logger != nil {
		s.opts.Logger.Debug(msg, keyvals...)
	}
}

func (s *Searcher) finished() {
	s.debug("search finished", "state", s.state, "expanded", len(s.history),
		"created", s.counter.Count(), "pending", s.Pending(), "stale", s.stale)
}

// Grid returns the grid being searched.
func (s *Searcher) Grid() *grid.Grid { return s.grid }

// State returns the current state of the expansion loop.
func (s *Searcher) State() State { return s.state }

// History returns the explored history in pop order.
func (s *Searcher) History() []Node {
	return append([]Node(nil), s.history...)
}

// Nodes returns every node created so far, indexed by discovery order.
func (s *Searcher) Nodes() []Node {
	return append([]Node(nil), s.nodes...)
}

// Goal returns the node that completed the search. ok is false until Found.
func (s *Searcher) Goal() (Node, bool) {
	return s.goal, s.state == Found
}

// Pending returns the number of nodes waiting in the frontier.
func (s *Searcher) Pending() int {
	return s.frontier.Len()
}

// Step performs one pop-and-expand transition and returns the new state.
// Calling Step in a terminal state is a no-op.
func (s *Searcher) Step() (State, error) {
	if s.state.Terminal() {
		return s.state, nil
	}
	switch s.opts.Strategy {
	case MarkOnPop:
		return s.stepMarkOnPop()
	default:
		return s.stepMarkOnPush()
	}
}

// stepMarkOnPush expands the cheapest node. Neighbors are marked visited as
// they are enqueued; discovering the finish ends the search after the current
// node's four directions have all been processed.
func (s *Searcher) stepMarkOnPush() (State, error) {
	current, err := s.frontier.PopMin()
	if err != nil {
		return s.state, fmt.Errorf("step %d: %w", len(s.history), err)
	}
	s.debug("pop", "node", current)

	found := false
	for _, d := range grid.Directions {
		next := current.Pos.Step(d)
		if !s.grid.IsTraversable(next.Row, next.Col) || s.visited.Contains(next) {
			continue
		}

		n := newNode(s.grid, &s.counter, current, current.G+s.grid.MovementCost(d), next)
		s.visited.Mark(next)
		s.record(n)
		s.frontier.Push(n)
		s.debug("push", "dir", d, "node", n)

		if next == s.grid.Finish() && !found {
			found = true
			s.goal = n
		}
	}
	s.history = append(s.history, current)

	switch {
	case found:
		s.state = Found
	case s.frontier.Empty():
		s.state = Exhausted
	}
	if s.state.Terminal() {
		s.finished()
	}
	return s.state, nil
}

// stepMarkOnPop expands the cheapest node that has not been closed yet.
// Stale entries left behind by cheaper rediscoveries are discarded.
func (s *Searcher) stepMarkOnPop() (State, error) {
	var current Node
	for {
		if s.frontier.Empty() {
			s.state = Exhausted
			s.finished()
			return s.state, nil
		}
		n, err := s.frontier.PopMin()
		if err != nil {
			return s.state, fmt.Errorf("step %d: %w", len(s.history), err)
		}
		if s.visited.Mark(n.Pos) {
			current = n
			break
		}
		s.stale++
		s.debug("discard stale", "node", n)
	}
	s.debug("pop", "node", current)
	s.history = append(s.history, current)

	if current.Pos == s.grid.Finish() {
		s.goal = current
		s.state = Found
		s.finished()
		return s.state, nil
	}

	for _, d := range grid.Directions {
		next := current.Pos.Step(d)
		if !s.grid.IsTraversable(next.Row, next.Col) || s.visited.Contains(next) {
			continue
		}
		cost := current.G + s.grid.MovementCost(d)
		idx := s.grid.Index(next)
		if s.best[idx] >= 0 && cost >= s.best[idx] {
			continue
		}
		s.best[idx] = cost

		n := newNode(s.grid, &s.counter, current, cost, next)
		s.record(n)
		s.frontier.Push(n)
		s.debug("push", "dir", d, "node", n)
	}

	if s.frontier.Empty() {
		s.state = Exhausted
		s.finished()
	}
	return s.state, nil
}

// Run steps until the search reaches a terminal state or ctx is done, then
// reconstructs the path. An exhausted search is a normal outcome: the
// returned error is nil and Result.Outcome is Exhausted.
func (s *Searcher) Run(ctx context.Context) (Result, error) {
	for !s.state.Terminal() {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		if _, err := s.Step(); err != nil {
			return Result{}, err
		}
	}
	return s.Result(), nil
}

// Result summarizes the search. The path is reconstructed on every call, so
// call it once the state is terminal.
func (s *Searcher) Result() Result {
	r := Result{
		Outcome:  s.state,
		Strategy: s.opts.Strategy,
		Expanded: len(s.history),
		Created:  s.counter.Count(),
		Stale:    s.stale,
	}
	if s.state != Found {
		return r
	}

	r.Goal = s.goal
	r.GoalCost = s.goal.G
	switch s.opts.Reconstruction {
	case AdjacencyScan:
		r.Path = ReconstructByAdjacency(s.history, s.goal)
		// The scanned chain need not be the goal's parent chain.
		r.Cost, _ = PathCost(s.grid, r.Path)
	default:
		r.Path = ReconstructFromParents(s.nodes, s.goal)
		r.Cost = r.GoalCost
	}
	return r
}

// Solve runs a complete search over g with the given options.
func Solve(ctx context.Context, g *grid.Grid, options ...Option) (Result, error) {
	return New(g, options...).Run(ctx)
}

// Result is the outcome of a search.
type Result struct {
	Outcome  State
	Strategy Strategy
	Path     []grid.Position // start..finish, empty unless Found
	Cost     int             // movement cost of Path
	GoalCost int             // accumulated cost of the goal node
	Goal     Node
	Expanded int // nodes popped and expanded
	Created  int // nodes created, including the start node
	Stale    int // stale frontier entries discarded (MarkOnPop)
}

// Found reports whether a path was found.
func (r Result) Found() bool {
	return r.Outcome == Found
}

// Err returns ErrNoPathFound for an exhausted search and nil otherwise.
func (r Result) Err() error {
	if r.Outcome == Exhausted {
		return ErrNoPathFound
	}
	return nil
}
