package search

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
)

// Strategy selects when a cell is marked visited.
type Strategy uint8

const (
	// MarkOnPush marks a cell the moment a node for it is enqueued and stops
	// as soon as the finish is discovered.
	MarkOnPush Strategy = iota
	// MarkOnPop marks a cell when its node is expanded, tolerates several
	// pending entries per cell and discards stale pops. Finds optimal paths.
	MarkOnPop
)

// String returns the configuration name of the strategy.
func (s Strategy) String() string {
	switch s {
	case MarkOnPush:
		return "mark-on-push"
	case MarkOnPop:
		return "mark-on-pop"
	default:
		return "unknown"
	}
}

// ParseStrategy converts a configuration name into a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mark-on-push", "push", "reference":
		return MarkOnPush, nil
	case "mark-on-pop", "pop", "optimal":
		return MarkOnPop, nil
	default:
		return MarkOnPush, fmt.Errorf("unknown search strategy %q", s)
	}
}

// Reconstruction selects how the path is rebuilt from the goal node.
type Reconstruction uint8

const (
	// ParentChain follows each node's Parent index back to the start.
	ParentChain Reconstruction = iota
	// AdjacencyScan walks the explored history backwards, prepending every
	// node 4-adjacent to the current head.
	AdjacencyScan
)

// String returns the configuration name of the reconstruction method.
func (r Reconstruction) String() string {
	switch r {
	case ParentChain:
		return "parent"
	case AdjacencyScan:
		return "adjacency"
	default:
		return "unknown"
	}
}

// ParseReconstruction converts a configuration name into a Reconstruction.
func ParseReconstruction(s string) (Reconstruction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "parent", "parents", "parent-chain":
		return ParentChain, nil
	case "adjacency", "adjacency-scan", "scan":
		return AdjacencyScan, nil
	default:
		return ParentChain, fmt.Errorf("unknown path reconstruction %q", s)
	}
}

// Options defines parameters for a search.
type Options struct {
	Strategy       Strategy
	Reconstruction Reconstruction
	Logger         *log.Logger
	Annotate       bool
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithStrategy selects the de-duplication strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) { o.Strategy = s }
}

// WithReconstruction selects the path reconstruction method.
func WithReconstruction(r Reconstruction) Option {
	return func(o *Options) { o.Reconstruction = r }
}

// WithLogger routes per-step debug records to logger.
func WithLogger(logger *log.Logger) Option {
	return func(o *Options) { o.Logger = logger }
}

// WithoutAnnotations leaves the grid's discovery annotations untouched, so
// several searches may share one grid.
func WithoutAnnotations() Option {
	return func(o *Options) { o.Annotate = false }
}

func defaultOptions() Options {
	return Options{
		Strategy:       MarkOnPush,
		Reconstruction: ParentChain,
		Annotate:       true,
	}
}
