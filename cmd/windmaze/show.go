package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/windmaze/internal/core"
	"github.com/vovakirdan/windmaze/internal/grid"
)

func newShowCmd(a *app) *cobra.Command {
	var (
		wind string
		raw  bool
	)

	cmd := &cobra.Command{
		Use:   "show [maze]",
		Short: "Print a maze layout",
		Long: `Print the unsolved layout of a maze together with its wind.
Without an argument the configured maze (or layout) is shown.
With --raw the rows are printed as a layout block for the config file.

Examples:
  windmaze show reference
  windmaze show corridor --wind north
  windmaze show switchback --raw`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("wind") {
				cfg.Wind = wind
				if err := cfg.Validate(); err != nil {
					return err
				}
			}
			mode, err := cfg.ColorMode()
			if err != nil {
				return err
			}

			id, g, err := resolveGrid(cfg, args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if raw {
				fmt.Fprintf(out, "wind: %s\nlayout:\n", g.Wind())
				for _, row := range g.Text() {
					fmt.Fprintf(out, "  - %q\n", row)
				}
				return nil
			}

			st := styler(out, mode)
			header := fmt.Sprintf("%s %dx%d, wind %s, %d blocked", id, g.Rows(), g.Cols(), g.Wind(), g.Count(grid.Blocked))
			fmt.Fprintln(out, st.Label(header, core.ColorCyan))
			fmt.Fprintln(out)
			fmt.Fprintln(out, st.Render(g.Screen(grid.RenderOptions{})))
			return nil
		},
	}

	cmd.Flags().StringVar(&wind, "wind", "", "Wind direction: west, north, east, south or 0..3")
	cmd.Flags().BoolVar(&raw, "raw", false, "Print the rows as a config layout block")
	return cmd
}
