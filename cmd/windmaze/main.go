// windmaze finds paths through grid mazes with A* under a wind model:
// moving with the wind is cheap, against it expensive.
//
// Usage:
//
//	windmaze list              - List built-in mazes
//	windmaze show <maze>       - Print a maze layout
//	windmaze solve [maze]      - Solve a maze and print the annotated grid
//	windmaze history [maze]    - Show journaled runs
//	windmaze config            - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.windmaze, ./configs, embedded)
//	--db <path>         - Run journal database (default: ~/.windmaze/runs.db)
//	--log-level <lvl>   - debug, info, warn, error
package main

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/windmaze/internal/config"
	"github.com/vovakirdan/windmaze/internal/grid"
	_ "github.com/vovakirdan/windmaze/internal/mazes" // register built-in mazes
	"github.com/vovakirdan/windmaze/internal/platform/console"
	"github.com/vovakirdan/windmaze/internal/registry"
)

// Exit codes.
const (
	codeFailure = 1
	codeNoPath  = 2
)

// exitCode carries a process exit status through cobra.
// A nil err means the message has already been printed.
type exitCode struct {
	code int
	err  error
}

func (e *exitCode) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit status %d", e.code)
	}
	return e.err.Error()
}

func (e *exitCode) Unwrap() error { return e.err }

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := root.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	var ec *exitCode
	if errors.As(err, &ec) {
		if ec.err != nil {
			fmt.Fprintln(stderr, "Error:", ec.err)
		}
		return ec.code
	}
	fmt.Fprintln(stderr, "Error:", err)
	return codeFailure
}

// app holds the global flags shared by every subcommand.
type app struct {
	configPath string
	dbPath     string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "windmaze",
		Short: "Windmaze - A* pathfinding under the wind",
		Long: `Windmaze finds paths through grid mazes where every step is priced
by the wind: 1 with the wind, 2 across it, 3 against it.

Available commands:
  list     - Show all built-in mazes
  show     - Print a maze layout
  solve    - Solve a maze
  history  - View journaled runs
  config   - Print the effective configuration

Examples:
  windmaze list
  windmaze solve reference
  windmaze solve corridor --wind east --strategy mark-on-pop
  windmaze history reference`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to config YAML")
	root.PersistentFlags().StringVar(&a.dbPath, "db", "", "Path to run journal database")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error")

	root.AddCommand(newListCmd())
	root.AddCommand(newShowCmd(a))
	root.AddCommand(newSolveCmd(a))
	root.AddCommand(newHistoryCmd(a))
	root.AddCommand(newConfigCmd(a))

	return root
}

// loadConfig loads the configuration and applies the global flags.
func (a *app) loadConfig() (config.Config, error) {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return cfg, err
	}
	if a.dbPath != "" {
		cfg.Journal.Path = a.dbPath
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	return cfg, cfg.Validate()
}

// logger builds the CLI logger for cfg.
func (a *app) logger(cmd *cobra.Command, cfg config.Config) *log.Logger {
	level, err := cfg.LogLevel()
	if err != nil {
		level = log.InfoLevel
	}
	return console.NewLogger(cmd.ErrOrStderr(), level)
}

// resolveGrid builds the grid to work on. An explicit maze argument wins over
// the configured layout, which wins over the configured maze ID.
func resolveGrid(cfg config.Config, args []string) (string, *grid.Grid, error) {
	wind, windSet, err := cfg.WindDirection()
	if err != nil {
		return "", nil, err
	}

	if len(args) == 0 && len(cfg.Layout) > 0 {
		g, err := grid.Parse(cfg.Layout, wind)
		if err != nil {
			return "layout", nil, err
		}
		return layoutID(g), g, nil
	}

	id := cfg.Maze
	if len(args) > 0 {
		id = args[0]
	}
	if !registry.Exists(id) {
		return id, nil, fmt.Errorf("unknown maze %q, run 'windmaze list' to see available mazes", id)
	}

	var override *grid.Direction
	if windSet {
		override = &wind
	}
	g, err := registry.Build(id, override)
	return id, g, err
}

// layoutID names a config-supplied layout by its cells, so runs of
// different layouts are journaled apart while the wind stays a separate column.
func layoutID(g *grid.Grid) string {
	sum := sha256.Sum256([]byte(strings.Join(g.Text(), "\n")))
	return "layout-" + hex.EncodeToString(sum[:4])
}

// styler returns a console styler for w under the given color mode.
func styler(w io.Writer, mode config.ColorMode) *console.Styler {
	color := false
	switch mode {
	case config.ColorAlways:
		color = true
	case config.ColorAuto:
		if f, ok := w.(*os.File); ok {
			color = console.UseColor(string(mode), f.Fd())
		}
	}
	return console.NewStyler(w, color)
}
