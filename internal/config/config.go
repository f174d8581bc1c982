// Package config provides YAML-based configuration loading for windmaze:
// which maze to solve, the wind, the search strategy, output and journal
// settings. Values are validated here, before any grid is built.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/windmaze/internal/grid"
	"github.com/vovakirdan/windmaze/internal/search"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config contains all settings for a solve run.
type Config struct {
	// Maze is the ID of a built-in maze. Ignored when Layout is set.
	Maze string `yaml:"maze"`

	// Wind is a direction name or 0..3. Empty keeps the maze's own wind.
	Wind string `yaml:"wind"`

	// Layout optionally replaces the built-in maze with literal rows
	// ('.' empty, 'S' start, 'F' finish, '#' blocked).
	Layout []string `yaml:"layout,omitempty"`

	Search  SearchConfig  `yaml:"search"`
	Output  OutputConfig  `yaml:"output"`
	Journal JournalConfig `yaml:"journal"`
	Log     LogConfig     `yaml:"log"`

	// Source records where the configuration was loaded from.
	Source string `yaml:"-"`
}

// SearchConfig selects the search behavior.
type SearchConfig struct {
	Strategy       string `yaml:"strategy"`       // "mark-on-push" or "mark-on-pop"
	Reconstruction string `yaml:"reconstruction"` // "parent" or "adjacency"
}

// OutputConfig controls the grid dump.
type OutputConfig struct {
	Color     string `yaml:"color"`     // "auto", "always" or "never"
	Discovery bool   `yaml:"discovery"` // print discovery order numbers
}

// JournalConfig controls the sqlite run journal.
type JournalConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// LogConfig controls the logger.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// ColorMode decides when the dump is styled.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Validate checks every enumerated value and the literal layout, if any, and
// returns the first problem found wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	if c.Maze == "" && len(c.Layout) == 0 {
		return fmt.Errorf("%w: either maze or layout must be set", ErrInvalidConfig)
	}
	wind, _, err := c.WindDirection()
	if err != nil {
		return err
	}
	if len(c.Layout) > 0 {
		if _, err := grid.Parse(c.Layout, wind); err != nil {
			return fmt.Errorf("%w: layout: %w", ErrInvalidConfig, err)
		}
	}
	if _, err := c.Strategy(); err != nil {
		return err
	}
	if _, err := c.Reconstruction(); err != nil {
		return err
	}
	if _, err := c.ColorMode(); err != nil {
		return err
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	if c.Journal.Enabled && strings.TrimSpace(c.Journal.Path) == "" {
		return fmt.Errorf("%w: journal.path is required when the journal is enabled", ErrInvalidConfig)
	}
	return nil
}

// WindDirection parses Wind. ok is false when Wind is empty.
func (c Config) WindDirection() (d grid.Direction, ok bool, err error) {
	if strings.TrimSpace(c.Wind) == "" {
		return grid.West, false, nil
	}
	d, err = grid.ParseDirection(c.Wind)
	if err != nil {
		return grid.West, false, fmt.Errorf("%w: wind: %v", ErrInvalidConfig, err)
	}
	return d, true, nil
}

// Strategy parses Search.Strategy. Empty selects mark-on-push.
func (c Config) Strategy() (search.Strategy, error) {
	if c.Search.Strategy == "" {
		return search.MarkOnPush, nil
	}
	s, err := search.ParseStrategy(c.Search.Strategy)
	if err != nil {
		return s, fmt.Errorf("%w: search.strategy: %v", ErrInvalidConfig, err)
	}
	return s, nil
}

// Reconstruction parses Search.Reconstruction. Empty selects parent.
func (c Config) Reconstruction() (search.Reconstruction, error) {
	if c.Search.Reconstruction == "" {
		return search.ParentChain, nil
	}
	r, err := search.ParseReconstruction(c.Search.Reconstruction)
	if err != nil {
		return r, fmt.Errorf("%w: search.reconstruction: %v", ErrInvalidConfig, err)
	}
	return r, nil
}

// ColorMode parses Output.Color. Empty selects auto.
func (c Config) ColorMode() (ColorMode, error) {
	switch m := ColorMode(strings.ToLower(strings.TrimSpace(c.Output.Color))); m {
	case "":
		return ColorAuto, nil
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	default:
		return ColorAuto, fmt.Errorf("%w: output.color: unknown mode %q", ErrInvalidConfig, c.Output.Color)
	}
}

// LogLevel parses Log.Level. Empty selects info.
func (c Config) LogLevel() (log.Level, error) {
	if c.Log.Level == "" {
		return log.InfoLevel, nil
	}
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("%w: log.level: %v", ErrInvalidConfig, err)
	}
	return lvl, nil
}

// SearchOptions converts the search settings into search options.
func (c Config) SearchOptions() ([]search.Option, error) {
	strategy, err := c.Strategy()
	if err != nil {
		return nil, err
	}
	recon, err := c.Reconstruction()
	if err != nil {
		return nil, err
	}
	return []search.Option{
		search.WithStrategy(strategy),
		search.WithReconstruction(recon),
	}, nil
}
