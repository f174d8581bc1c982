// Package console holds the terminal-facing pieces of the CLI: the
// structured logger, color detection and the styled grid dump.
package console

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/term"
)

// NewLogger returns a timestamped logger with the windmaze prefix.
func NewLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "windmaze",
		Level:           level,
	})
}

// UseColor decides whether output to fd should be styled.
// mode is "always", "never" or "auto"; auto styles terminals unless NO_COLOR is set.
func UseColor(mode string, fd uintptr) bool {
	switch strings.ToLower(mode) {
	case "always":
		return true
	case "never":
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(fd))
}

// TerminalWidth returns the column count of the terminal behind fd.
func TerminalWidth(fd uintptr) (int, bool) {
	w, _, err := term.GetSize(int(fd))
	if err != nil || w <= 0 {
		return 0, false
	}
	return w, true
}
