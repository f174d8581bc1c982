// Package grid implements the static maze model used by the search: cell
// layout, the wind cost model, coordinate validity checks and the Manhattan
// heuristic. A Grid is immutable after construction apart from display-only
// annotations (discovery order and path marks).
package grid

import (
	"fmt"
	"strconv"
	"strings"
)

// CellKind is the content of a single maze cell.
type CellKind uint8

const (
	Empty CellKind = iota
	Start
	Finish
	Blocked
)

// String returns the string representation of a cell kind.
func (k CellKind) String() string {
	switch k {
	case Empty:
		return "Empty"
	case Start:
		return "Start"
	case Finish:
		return "Finish"
	case Blocked:
		return "Blocked"
	default:
		return "Unknown"
	}
}

// Rune returns the layout character for the cell kind.
func (k CellKind) Rune() rune {
	switch k {
	case Start:
		return 'S'
	case Finish:
		return 'F'
	case Blocked:
		return '#'
	default:
		return '.'
	}
}

// ParseCellKind converts a layout character into a cell kind.
func ParseCellKind(r rune) (CellKind, bool) {
	switch r {
	case '.', '0':
		return Empty, true
	case 'S', 's':
		return Start, true
	case 'F', 'f':
		return Finish, true
	case '#', 'X', 'x':
		return Blocked, true
	default:
		return Empty, false
	}
}

// Integer layout codes accepted by FromCodes.
const (
	CodeEmpty   = 0
	CodeStart   = 1
	CodeFinish  = 2
	CodeBlocked = 8
)

// KindFromCode converts an integer layout code into a cell kind.
func KindFromCode(code int) (CellKind, bool) {
	switch code {
	case CodeEmpty:
		return Empty, true
	case CodeStart:
		return Start, true
	case CodeFinish:
		return Finish, true
	case CodeBlocked:
		return Blocked, true
	default:
		return Empty, false
	}
}

// Direction is a cardinal direction. Values are cyclic: West, North, East,
// South, so the opposite of d is (d+2) mod 4.
type Direction uint8

const (
	West Direction = iota
	North
	East
	South
)

// Directions lists the cardinal directions in neighbor expansion order.
// The order is part of the search contract: it decides discovery order and
// therefore tie-breaks between equal-cost nodes.
var Directions = [4]Direction{West, North, East, South}

// Valid reports whether d is one of the four cardinal directions.
func (d Direction) Valid() bool {
	return d <= South
}

// String returns the string representation of a direction.
func (d Direction) String() string {
	switch d {
	case West:
		return "West"
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	default:
		return "Unknown"
	}
}

// Delta returns the (dRow, dCol) offset for moving one step in this direction.
// North decreases the row, South increases it.
func (d Direction) Delta() (dRow, dCol int) {
	switch d {
	case West:
		return 0, -1
	case North:
		return -1, 0
	case East:
		return 0, 1
	case South:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the opposite direction.
func (d Direction) Opposite() Direction {
	return d.Rotate(2)
}

// Rotate returns the direction n quarter turns clockwise from d.
// Negative n rotates counter-clockwise.
func (d Direction) Rotate(n int) Direction {
	return Direction(((int(d)+n)%4 + 4) % 4)
}

// ParseDirection accepts a direction name (case-insensitive, full or first
// letter) or its numeric code 0..3.
func ParseDirection(s string) (Direction, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	switch v {
	case "west", "w":
		return West, nil
	case "north", "n":
		return North, nil
	case "east", "e":
		return East, nil
	case "south", "s":
		return South, nil
	}
	if n, err := strconv.Atoi(v); err == nil && n >= 0 && n <= 3 {
		return Direction(n), nil
	}
	return West, fmt.Errorf("unknown direction %q", s)
}

// Movement costs relative to the wind.
const (
	CostWithWind      = 1
	CostPerpendicular = 2
	CostAgainstWind   = 3
)

// Cost returns the price of one step in direction d under the given wind:
// cheap with the wind, expensive against it, moderate across it.
func Cost(wind, d Direction) int {
	switch {
	case d == wind:
		return CostWithWind
	case d == wind.Opposite():
		return CostAgainstWind
	default:
		return CostPerpendicular
	}
}
