package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/windmaze/internal/registry"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all built-in mazes",
		Long:  `Shows a list of all mazes registered in windmaze.`,
		Args:  cobra.NoArgs,
		Run:   runList,
	}
}

func runList(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()
	mazes := registry.List()

	if len(mazes) == 0 {
		fmt.Fprintln(out, "No mazes available.")
		return
	}

	fmt.Fprintln(out, "Available mazes:")
	fmt.Fprintln(out)

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	maxTitleLen := 5
	for _, m := range mazes {
		maxIDLen = max(maxIDLen, len(m.ID))
		maxTitleLen = max(maxTitleLen, len(m.Title))
	}

	fmt.Fprintf(out, "  %-*s  %-*s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Wind")
	fmt.Fprintf(out, "  %-*s  %-*s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "----")

	for _, m := range mazes {
		fmt.Fprintf(out, "  %-*s  %-*s  %s\n", maxIDLen, m.ID, maxTitleLen, m.Title, m.Wind)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'windmaze solve <id>' to solve a maze.")
}
