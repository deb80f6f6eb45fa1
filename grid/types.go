package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrBadSize indicates a requested side length smaller than 1.
	ErrBadSize = errors.New("grid: side length must be at least 1")
	// ErrOutOfBounds indicates a coordinate outside the grid boundaries.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
)

// Coord identifies a single cell by its (X, Y) position.
// Two Coords are equal iff both components are equal; the zero value
// is the bottom-left corner (0,0).
type Coord struct {
	X, Y int
}

// String renders the coordinate as "x,y".
func (c Coord) String() string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}
