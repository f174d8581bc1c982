package search

import "errors"

var (
	// ErrEmptyFrontier is returned when popping an empty frontier. Reaching it
	// through Searcher means the state machine was driven past a terminal state.
	ErrEmptyFrontier = errors.New("search: empty frontier")

	// ErrNoPathFound reports that the search exhausted the reachable cells
	// without reaching the finish.
	ErrNoPathFound = errors.New("search: no path found")
)
