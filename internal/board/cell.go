// Package board provides a fixed-size square grid with 1-based cell
// coordinates and an optional typed value layer on top of it.
// It has no external dependencies and does no I/O.
package board

import (
	"fmt"
	"strings"
)

// Cell is a single grid coordinate.
// I is the row and increases downward, J is the column and increases to the right.
// Both are 1-based.
type Cell struct {
	I int
	J int
}

// C is a convenience constructor for Cell.
func C(i, j int) Cell {
	return Cell{I: i, J: j}
}

// String returns a string representation of the cell.
func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d)", c.I, c.J)
}

// Step returns the coordinate one step away in the given direction.
// The result is not bounds-checked.
func (c Cell) Step(d Direction) Cell {
	di, dj := d.Delta()
	return Cell{I: c.I + di, J: c.J + dj}
}

// Direction is one of the four compass directions.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every direction in declaration order.
var Directions = [...]Direction{Up, Down, Left, Right}

// String returns the string representation of a direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Delta returns the (di, dj) offset for one step in this direction.
// Up decreases I, Down increases I.
func (d Direction) Delta() (di, dj int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	default:
		return 0, 0
	}
}

// Reversed returns the opposite direction.
func (d Direction) Reversed() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return d
	}
}

// ParseDirection parses a direction name (case-insensitive).
// Accepts the full names and the single letters u, d, l, r.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return Up, nil
	case "down", "d":
		return Down, nil
	case "left", "l":
		return Left, nil
	case "right", "r":
		return Right, nil
	default:
		return 0, fmt.Errorf("unknown direction %q", s)
	}
}
