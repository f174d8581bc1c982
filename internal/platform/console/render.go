package console

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/windmaze/internal/core"
)

// Styler renders Screen buffers, optionally with ANSI colors.
type Styler struct {
	styles map[core.Color]lipgloss.Style
	color  bool
}

// NewStyler returns a Styler writing for w. When color is true the
// styles are forced to the ANSI profile so piped output stays colored.
func NewStyler(w io.Writer, color bool) *Styler {
	r := lipgloss.NewRenderer(w)
	if color {
		r.SetColorProfile(termenv.ANSI)
	}
	return &Styler{styles: colorStyles(r), color: color}
}

// colorStyles maps core.Color to lipgloss styles.
func colorStyles(r *lipgloss.Renderer) map[core.Color]lipgloss.Style {
	return map[core.Color]lipgloss.Style{
		core.ColorDefault: r.NewStyle(),
		core.ColorGreen:   r.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		core.ColorRed:     r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		core.ColorGray:    r.NewStyle().Foreground(lipgloss.Color("8")),
		core.ColorBlue:    r.NewStyle().Foreground(lipgloss.Color("4")),
		core.ColorYellow:  r.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
		core.ColorCyan:    r.NewStyle().Foreground(lipgloss.Color("6")),
	}
}

// Color reports whether the Styler emits ANSI sequences.
func (st *Styler) Color() bool {
	return st.color
}

// Style returns the style for c, falling back to the default style.
func (st *Styler) Style(c core.Color) lipgloss.Style {
	style, ok := st.styles[c]
	if !ok {
		return st.styles[core.ColorDefault]
	}
	return style
}

// Render converts a Screen buffer to a string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
// Trailing blank cells on each row are dropped.
func (st *Styler) Render(s *core.Screen) string {
	if !st.color {
		return s.String()
	}

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		end := s.Width()
		for end > 0 && s.GetCell(end-1, y).Rune == ' ' {
			end--
		}

		x := 0
		for x < end {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < end {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(st.Style(startColor).Render(run.String()))
		}
	}
	return sb.String()
}

// Label renders text in the given color.
func (st *Styler) Label(text string, c core.Color) string {
	if !st.color {
		return text
	}
	return st.Style(c).Render(text)
}
