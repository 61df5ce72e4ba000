// Package latstride picks stride parameters for low-discrepancy sampling of
// 2D integer grids.
//
// 🚀 What is a sampling stride?
//
//	Flatten a width×height grid into indices 0 … area−1 and visit
//	0, delta, 2·delta, … modulo area. With delta coprime to the area every
//	cell is visited once per cycle, and the first n visits form a sample set
//	whose regularity depends entirely on delta. latstride chooses delta so
//	that the induced point lattice is as close to square as possible.
//
// ✨ Packages:
//
//	grid/    — grid dimensions, row-major index ↔ coordinate mapping
//	lattice/ — Vec2, GCD, stride lattice basis, Lagrange reduction
//	delta/   — the bounded stride search (MakeDelta, Search)
//	batch/   — yaml plans evaluated concurrently
//	cmd/latstride — command line front end
//	cmd/libstride — C shared library exporting MakeDelta
//
// Quick example:
//
//	d, _ := delta.MakeDelta(64, 64, 1000, 50) // 17
//	for i := 0; i < 1000; i++ {
//		t := (i * d) % (64 * 64)
//		plot(t%64, t/64)
//	}
//
//	go get github.com/katalvlaran/latstride
package latstride
