package board

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCoordinate is wrapped by every CoordinateError.
	ErrInvalidCoordinate = errors.New("board: invalid coordinate")

	// ErrInvalidWidth is returned when a board is created with width < 1.
	ErrInvalidWidth = errors.New("board: width must be positive")
)

// CoordinateError reports a strict lookup outside [1..Width] on either axis.
type CoordinateError struct {
	I, J  int
	Width int
}

func (e *CoordinateError) Error() string {
	return fmt.Sprintf("board: cell (%d, %d) is outside 1..%d", e.I, e.J, e.Width)
}

// Unwrap lets errors.Is match ErrInvalidCoordinate.
func (e *CoordinateError) Unwrap() error {
	return ErrInvalidCoordinate
}
