package grid

import "fmt"

// New constructs a Grid after checking both dimensions are positive.
// Returns ErrEmptyGrid (wrapped with the offending sizes) otherwise.
func New(width, height int) (Grid, error) {
	g := Grid{Width: width, Height: height}
	if err := g.Validate(); err != nil {
		return Grid{}, err
	}

	return g, nil
}

// Validate reports ErrEmptyGrid when either dimension is not positive.
func (g Grid) Validate() error {
	if g.Width <= 0 || g.Height <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrEmptyGrid, g.Width, g.Height)
	}

	return nil
}

// Area returns Width*Height, the length of the flattened index space.
// Complexity: O(1).
func (g Grid) Area() int {
	return g.Width * g.Height
}

// IsEven reports whether the area is even. An even area admits only odd
// strides as coprime candidates.
func (g Grid) IsEven() bool {
	return g.Area()&1 == 0
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (g Grid) Index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Indices past Area() are not wrapped: y simply exceeds Height-1.
// Complexity: O(1).
func (g Grid) Coordinate(idx int) (x, y int) {
	return idx % g.Width, idx / g.Width
}

// String renders the grid as "WxH".
func (g Grid) String() string {
	return fmt.Sprintf("%dx%d", g.Width, g.Height)
}
