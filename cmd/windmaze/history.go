package main

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/windmaze/internal/grid"
	"github.com/vovakirdan/windmaze/internal/registry"
	"github.com/vovakirdan/windmaze/internal/storage"
)

func newHistoryCmd(a *app) *cobra.Command {
	var (
		limit     int
		best      bool
		wind      string
		clearRuns bool
	)

	cmd := &cobra.Command{
		Use:   "history [maze]",
		Short: "Show journaled runs",
		Long: `Display recent solve runs for a maze, or a summary of every maze
when no maze is given.

Examples:
  windmaze history
  windmaze history reference
  windmaze history reference --best
  windmaze history reference --best --wind east
  windmaze history reference --clear`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}

			store, err := storage.Open(cfg.Journal.Path)
			if err != nil {
				return err
			}
			defer store.Close()

			out := cmd.OutOrStdout()
			if len(args) == 0 {
				if clearRuns {
					return errors.New("--clear needs a maze")
				}
				return printSummary(out, store)
			}

			id := args[0]
			if clearRuns {
				if err := store.ClearRuns(id); err != nil {
					return err
				}
				fmt.Fprintf(out, "Cleared runs for %s.\n", id)
				return nil
			}
			if wind != "" {
				d, err := grid.ParseDirection(wind)
				if err != nil {
					return err
				}
				wind = d.String()
			}
			return printRuns(out, store, id, wind, limit, best)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Number of runs to show")
	cmd.Flags().BoolVar(&best, "best", false, "Show the cheapest successful runs instead of the latest")
	cmd.Flags().StringVar(&wind, "wind", "", "Only list runs under this wind (with --best)")
	cmd.Flags().BoolVar(&clearRuns, "clear", false, "Delete all runs for the maze")
	return cmd
}

func printRuns(out io.Writer, store *storage.Store, id, wind string, limit int, best bool) error {
	title := id
	if m, err := registry.Create(id); err == nil {
		title = m.Title()
	}

	var (
		runs []storage.Run
		err  error
	)
	if best {
		runs, err = store.BestRuns(id, wind, limit)
	} else {
		runs, err = store.RecentRuns(id, limit)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Runs - %s\n", title)
	fmt.Fprintln(out)

	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Run 'windmaze solve %s' to record the first one.\n", id)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-9s  %-5s  %-5s  %-8s  %-5s  %-12s  %s\n",
		"#", "Outcome", "Cost", "Steps", "Expanded", "Wind", "Strategy", "Date")
	fmt.Fprintf(out, "  %-4s  %-9s  %-5s  %-5s  %-8s  %-5s  %-12s  %s\n",
		"-", "-------", "----", "-----", "--------", "----", "--------", "----")

	for i, r := range runs {
		cost := "-"
		if r.Found() {
			cost = fmt.Sprint(r.Cost)
		}
		fmt.Fprintf(out, "  %-4d  %-9s  %-5s  %-5d  %-8d  %-5s  %-12s  %s\n",
			i+1, r.Outcome, cost, r.PathLen, r.Expanded, r.Wind, r.Strategy,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Fprintln(out)
	if stats, err := store.GetMazeStats(id); err == nil {
		fmt.Fprintf(out, "Runs: %d, solved: %d\n", stats.Runs, stats.Solved)
	}
	costs, err := store.BestCosts(id)
	if err != nil {
		return err
	}
	for _, d := range grid.Directions {
		if cost, ok := costs[d.String()]; ok {
			fmt.Fprintf(out, "Best (%s): %d\n", d, cost)
		}
	}
	return nil
}

func printSummary(out io.Writer, store *storage.Store) error {
	stats, err := store.GetAllMazeStats()
	if err != nil {
		return err
	}

	if len(stats) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		return nil
	}

	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	maxIDLen := 4 // "Maze" header
	for _, id := range ids {
		maxIDLen = max(maxIDLen, len(id))
	}

	fmt.Fprintf(out, "  %-*s  %-5s  %-6s  %-8s  %s\n", maxIDLen, "Maze", "Runs", "Solved", "Avg exp.", "Last run")
	fmt.Fprintf(out, "  %-*s  %-5s  %-6s  %-8s  %s\n", maxIDLen, "----", "----", "------", "--------", "--------")
	for _, id := range ids {
		s := stats[id]
		fmt.Fprintf(out, "  %-*s  %-5d  %-6d  %-8.1f  %s\n",
			maxIDLen, id, s.Runs, s.Solved, s.AvgExpanded, s.LastRun.Format("2006-01-02 15:04"))
	}
	return nil
}
