// Package registry provides a global registry for built-in mazes.
// Mazes register themselves in init() functions, allowing the CLI
// to discover and build them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/windmaze/internal/grid"
)

// Maze is a named layout that can build a fresh grid on demand.
type Maze interface {
	// ID returns a unique identifier (e.g., "reference", "corridor").
	// Used for CLI commands and journal entries.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Wind returns the wind the maze is solved under by default.
	Wind() grid.Direction

	// Build constructs a new grid under the given wind.
	// Every call returns an independent grid with no annotations.
	Build(wind grid.Direction) (*grid.Grid, error)
}

// MazeInfo contains metadata about a registered maze.
type MazeInfo struct {
	ID    string
	Title string
	Wind  grid.Direction
}

// Factory is a function that creates a new instance of a maze.
type Factory func() Maze

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]MazeInfo)
	mu        sync.RWMutex
)

// Register adds a maze factory to the registry.
// Panics if a maze with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: maze %q already registered", id))
	}

	factories[id] = f

	m := f()
	infos[id] = MazeInfo{ID: id, Title: m.Title(), Wind: m.Wind()}
}

// List returns information about all registered mazes, sorted by ID.
func List() []MazeInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]MazeInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a maze by its ID.
func Create(id string) (Maze, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown maze %q", id)
	}

	return f(), nil
}

// Build creates the maze and builds its grid. A nil wind uses the maze default.
func Build(id string, wind *grid.Direction) (*grid.Grid, error) {
	m, err := Create(id)
	if err != nil {
		return nil, err
	}
	w := m.Wind()
	if wind != nil {
		w = *wind
	}
	g, err := m.Build(w)
	if err != nil {
		return nil, fmt.Errorf("registry: maze %q: %w", id, err)
	}
	return g, nil
}

// Exists checks if a maze with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
