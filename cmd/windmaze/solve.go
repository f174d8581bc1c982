package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/windmaze/internal/config"
	"github.com/vovakirdan/windmaze/internal/core"
	"github.com/vovakirdan/windmaze/internal/grid"
	"github.com/vovakirdan/windmaze/internal/platform/console"
	"github.com/vovakirdan/windmaze/internal/search"
	"github.com/vovakirdan/windmaze/internal/storage"
)

type solveFlags struct {
	wind           string
	strategy       string
	reconstruction string
	color          string
	noDiscovery    bool
	noJournal      bool
	trace          bool
}

func newSolveCmd(a *app) *cobra.Command {
	f := &solveFlags{}

	cmd := &cobra.Command{
		Use:   "solve [maze]",
		Short: "Solve a maze",
		Long: `Run A* from the start to the finish and print the grid annotated with
the discovery order of every reached cell and the path found.

Exit status is 2 when the finish cannot be reached.

Strategies:
  mark-on-push  - Mark cells when first discovered, stop at the first
                  discovery of the finish (default)
  mark-on-pop   - Mark cells when expanded, stop when the finish is
                  expanded; always returns a cheapest path

Examples:
  windmaze solve
  windmaze solve reference --wind south
  windmaze solve open --strategy mark-on-pop --trace
  windmaze solve sealed --no-journal`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, a, f, args)
		},
	}

	cmd.Flags().StringVar(&f.wind, "wind", "", "Wind direction: west, north, east, south or 0..3")
	cmd.Flags().StringVar(&f.strategy, "strategy", "", "Search strategy: mark-on-push, mark-on-pop")
	cmd.Flags().StringVar(&f.reconstruction, "reconstruction", "", "Path reconstruction: parent, adjacency")
	cmd.Flags().StringVar(&f.color, "color", "", "Color output: auto, always, never")
	cmd.Flags().BoolVar(&f.noDiscovery, "no-discovery", false, "Hide discovery order numbers")
	cmd.Flags().BoolVar(&f.noJournal, "no-journal", false, "Do not record the run in the journal")
	cmd.Flags().BoolVar(&f.trace, "trace", false, "Log every search transition")

	return cmd
}

// apply overrides cfg with the flags that were set on the command line.
func (f *solveFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("wind") {
		cfg.Wind = f.wind
	}
	if flags.Changed("strategy") {
		cfg.Search.Strategy = f.strategy
	}
	if flags.Changed("reconstruction") {
		cfg.Search.Reconstruction = f.reconstruction
	}
	if flags.Changed("color") {
		cfg.Output.Color = f.color
	}
	if f.noDiscovery {
		cfg.Output.Discovery = false
	}
	if f.noJournal {
		cfg.Journal.Enabled = false
	}
	if f.trace {
		cfg.Log.Level = "debug"
	}
}

func runSolve(cmd *cobra.Command, a *app, f *solveFlags, args []string) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	f.apply(cmd, &cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := a.logger(cmd, cfg)
	logger.Debug("config loaded", "source", cfg.Source)

	id, g, err := resolveGrid(cfg, args)
	if err != nil {
		return err
	}

	opts, err := cfg.SearchOptions()
	if err != nil {
		return err
	}
	if f.trace {
		opts = append(opts, search.WithLogger(logger))
	}

	res, err := search.Solve(cmd.Context(), g, opts...)
	if err != nil {
		return err
	}
	if res.Found() {
		g.MarkPath(res.Path)
	}

	mode, err := cfg.ColorMode()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	renderOpts := grid.RenderOptions{Discovery: cfg.Output.Discovery}
	if w, ok := terminalWidth(out); ok {
		if dw, _ := g.Dimensions(renderOpts); dw > w {
			logger.Warn("grid is wider than the terminal", "width", dw, "columns", w)
		}
	}
	printResult(out, styler(out, mode), id, g, res, renderOpts)

	if cfg.Journal.Enabled {
		journal(logger, cfg.Journal.Path, id, g, res)
	}

	if !res.Found() {
		return &exitCode{code: codeNoPath}
	}
	return nil
}

// printResult writes the annotated grid followed by the summary lines.
func printResult(out io.Writer, st *console.Styler, id string, g *grid.Grid, res search.Result, opts grid.RenderOptions) {
	header := fmt.Sprintf("%s (wind %s, %s)", id, g.Wind(), res.Strategy)
	fmt.Fprintln(out, st.Label(header, core.ColorCyan))
	fmt.Fprintln(out)
	fmt.Fprintln(out, st.Render(g.Screen(opts)))
	fmt.Fprintln(out)

	if res.Found() {
		steps := make([]string, len(res.Path))
		for i, p := range res.Path {
			steps[i] = p.String()
		}
		fmt.Fprintf(out, "%-9s %d\n", "cost", res.Cost)
		fmt.Fprintf(out, "%-9s %s\n", "path", strings.Join(steps, " "))
	} else {
		fmt.Fprintln(out, st.Label("no path found", core.ColorRed))
	}
	fmt.Fprintf(out, "%-9s %d\n", "expanded", res.Expanded)
	if res.Strategy == search.MarkOnPop {
		fmt.Fprintf(out, "%-9s %d\n", "stale", res.Stale)
	}
}

// journal records the run. Failures are logged, never fatal.
func journal(logger *log.Logger, path, id string, g *grid.Grid, res search.Result) {
	store, err := storage.Open(path)
	if err != nil {
		logger.Warn("could not open run journal", "error", err)
		return
	}
	defer store.Close()

	run := storage.Run{
		MazeID:   id,
		Wind:     g.Wind().String(),
		Strategy: res.Strategy.String(),
		Outcome:  storage.OutcomeExhausted,
		Expanded: res.Expanded,
		Created:  res.Created,
	}
	if res.Found() {
		run.Outcome = storage.OutcomeFound
		run.Cost = res.Cost
		run.PathLen = len(res.Path)
	}

	if _, err := store.SaveRun(run); err != nil {
		logger.Warn("could not save run", "error", err)
		return
	}
	logger.Debug("run journaled", "maze", id, "db", path)
}

func terminalWidth(w io.Writer) (int, bool) {
	f, ok := w.(*os.File)
	if !ok {
		return 0, false
	}
	return console.TerminalWidth(f.Fd())
}
