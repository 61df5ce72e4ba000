package lattice

import (
	"fmt"

	"github.com/katalvlaran/latstride/grid"
)

// FromStride returns a basis of the lattice visited by stepping through a
// width-wide grid with the given stride.
//
// Algorithm:
//  1. If delta is a multiple of width, bump it by one; a pure vertical step
//     has no independent multiple.
//  2. V1 = Coordinate(delta).
//  3. For k = 2, 3, …: V2 = Coordinate(k·delta), stop at the first V2 not
//     parallel to V1.
//
// With r = delta mod width ≠ 0, the multiple k = ceil(width/r) ≤ width is the
// first one to wrap a row and is never parallel to V1, so the search is capped
// at k = width+1. Only width 1 (r is always 0) exhausts it.
//
// Errors:
//   - ErrInvalidStride       — delta ≤ 0 or width ≤ 0.
//   - ErrNoIndependentVector — the multiplier bound was exhausted.
func FromStride(delta, width int) (Basis, error) {
	if delta <= 0 || width <= 0 {
		return Basis{}, fmt.Errorf("%w: delta=%d width=%d", ErrInvalidStride, delta, width)
	}
	g := grid.Grid{Width: width}
	if delta%width == 0 {
		delta++
	}

	x1, y1 := g.Coordinate(delta)
	v1 := Vec2{x1, y1}
	for k := 2; k <= width+1; k++ {
		x2, y2 := g.Coordinate(k * delta)
		v2 := Vec2{x2, y2}
		if !v1.Parallel(v2) {
			return Basis{V1: v1, V2: v2}, nil
		}
	}

	return Basis{}, fmt.Errorf("%w: delta=%d width=%d", ErrNoIndependentVector, delta, width)
}
