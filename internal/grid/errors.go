package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidMaze is returned when a layout cannot form a valid maze.
	ErrInvalidMaze = errors.New("grid: invalid maze")

	// ErrOutOfBounds is returned by coordinate queries outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
)

// Validation codes carried by MazeError.
const (
	CodeEmptyLayout  = "EMPTY_LAYOUT"
	CodeRaggedLayout = "RAGGED_LAYOUT"
	CodeUnknownCell  = "UNKNOWN_CELL"
	CodeStartCount   = "START_COUNT"
	CodeFinishCount  = "FINISH_COUNT"
	CodeInvalidWind  = "INVALID_WIND"
)

// MazeError contains details about a rejected layout.
// It unwraps to ErrInvalidMaze.
type MazeError struct {
	Code    string
	Message string
}

func (e *MazeError) Error() string {
	return fmt.Sprintf("%v: [%s] %s", ErrInvalidMaze, e.Code, e.Message)
}

func (e *MazeError) Unwrap() error {
	return ErrInvalidMaze
}

func invalid(code, format string, args ...any) error {
	return &MazeError{Code: code, Message: fmt.Sprintf(format, args...)}
}
