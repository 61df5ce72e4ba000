package grid

import "errors"

// ErrEmptyGrid indicates a grid with a non-positive width or height.
var ErrEmptyGrid = errors.New("grid: width and height must be positive")

// Grid is an immutable Width×Height cell grid addressed in row-major order.
type Grid struct {
	Width, Height int
}
