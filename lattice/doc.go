// Package lattice implements the small number-theoretic kernel behind stride
// sampling: integer GCD, the 2D lattice spanned by a stride on a grid, and
// Lagrange (Gauss) reduction of a 2D integer basis.
//
// 🚀 What is a stride lattice?
//
//	Walking a width-wide grid with a fixed stride delta visits the cells
//	k·delta (k = 1, 2, …) of the flattened grid. Unflattened, the visited
//	cells (k·delta mod width, k·delta div width) are points of a 2D integer
//	lattice. Reducing a basis of that lattice exposes its two shortest
//	independent directions, which tell how evenly the samples are spread.
//
// ✨ Key pieces:
//   - Vec2: integer 2D vector with Dot, Cross, Norm2 and Len helpers
//   - GCD / Coprime: Euclidean remainder-and-swap
//   - FromStride: first non-parallel pair of stride multiples
//   - Reduce: Lagrange reduction with integer rounding
//   - Basis.Ratio, Basis.Error, Basis.CosAngle: isotropy metrics
//
// ⚙️ Usage:
//
//	b, err := lattice.FromStride(153, 200)
//	if err != nil {
//	  // width 1 has no second direction
//	}
//	r := lattice.Reduce(b)
//	fmt.Println(r.Ratio(), r.CosAngle())
//
// Complexity:
//
//   - GCD:        O(log min(a,b))
//   - FromStride: O(width) worst case, usually a handful of steps
//   - Reduce:     O(log max|v|) iterations
package lattice
