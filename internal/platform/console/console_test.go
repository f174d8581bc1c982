package console

import (
	"bytes"
	"os"
	"regexp"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/windmaze/internal/core"
)

var ansi = regexp.MustCompile("\x1b\\[[0-9;]*m")

func sampleScreen() *core.Screen {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "S", core.ColorGreen)
	s.DrawText(2, 0, "12", core.ColorBlue)
	s.DrawText(5, 0, "F", core.ColorRed)
	s.DrawText(0, 1, "# *", core.ColorGray)
	return s
}

func TestRenderPlain(t *testing.T) {
	var buf bytes.Buffer
	st := NewStyler(&buf, false)
	s := sampleScreen()

	assert.False(t, st.Color())
	assert.Equal(t, s.String(), st.Render(s))
	assert.Equal(t, "cost", st.Label("cost", core.ColorCyan))
}

func TestRenderColor(t *testing.T) {
	var buf bytes.Buffer
	st := NewStyler(&buf, true)
	s := sampleScreen()

	out := st.Render(s)
	assert.True(t, st.Color())
	assert.Contains(t, out, "\x1b[")
	assert.Equal(t, s.String(), ansi.ReplaceAllString(out, ""))
}

func TestStyleFallback(t *testing.T) {
	st := NewStyler(&bytes.Buffer{}, true)
	assert.Equal(t, "x", st.Style(core.Color(200)).Render("x"))
}

func TestUseColor(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()

	assert.True(t, UseColor("always", f.Fd()))
	assert.False(t, UseColor("never", f.Fd()))
	// A regular file is not a terminal.
	assert.False(t, UseColor("auto", f.Fd()))

	_, ok := TerminalWidth(f.Fd())
	assert.False(t, ok)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, log.WarnLevel)

	logger.Info("hidden")
	logger.Warn("shown", "maze", "reference")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "windmaze")
	assert.Contains(t, out, "maze=reference")
}
