package core

// Color represents a foreground color for a screen cell.
// The console layer maps these to ANSI colors; plain output ignores them.
type Color uint8

// Predefined colors for maze elements.
const (
	ColorDefault Color = iota
	ColorGreen         // start
	ColorRed           // finish
	ColorGray          // blocked
	ColorBlue          // discovered cell
	ColorYellow        // solution path
	ColorCyan          // headers
)

// String returns a human-readable name for the color.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorGreen:
		return "green"
	case ColorRed:
		return "red"
	case ColorGray:
		return "gray"
	case ColorBlue:
		return "blue"
	case ColorYellow:
		return "yellow"
	case ColorCyan:
		return "cyan"
	default:
		return "unknown"
	}
}
