// Package grid describes the rectangular integer grids that a stride walks
// over.
//
// What:
//
//   - Grid is a plain Width×Height value with row-major addressing.
//   - Index maps a cell (x,y) to its flattened index y*Width + x.
//   - Coordinate maps a flattened index back to (x,y); for indices beyond the
//     last cell the y component keeps growing, which is exactly the lattice
//     coordinate of a stride multiple.
//
// Why:
//
//   - A stride delta visits the cells delta, 2·delta, 3·delta, … of the
//     flattened grid. Coordinate turns those indices into the 2D lattice
//     vectors the lattice package reduces.
//
// Complexity:
//
//   - Every operation is O(1) time and memory.
//
// Errors:
//
//   - ErrEmptyGrid: width or height is not positive.
package grid
