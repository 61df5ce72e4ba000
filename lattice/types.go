package lattice

import "errors"

var (
	// ErrInvalidStride indicates a non-positive stride or width.
	ErrInvalidStride = errors.New("lattice: stride and width must be positive")

	// ErrNoIndependentVector indicates that no stride multiple within the
	// search bound is independent of the first one (only width 1 does this).
	ErrNoIndependentVector = errors.New("lattice: no independent stride multiple")
)

// Vec2 is an integer 2D vector.
type Vec2 struct {
	X, Y int
}

// Basis is an ordered pair of lattice vectors. No ordering of the two norms
// is implied.
type Basis struct {
	V1, V2 Vec2
}
