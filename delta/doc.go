// Package delta searches for a sampling stride ("delta") on a width×height
// grid whose induced point lattice is as close to square as a bounded probe
// budget allows.
//
// What:
//
//	Stepping through the flattened grid with a stride delta coprime to the
//	area visits every cell exactly once before repeating; the first n steps
//	form a low-discrepancy sample set. Search starts from ceil(area/samples),
//	probes up to TestCountMax coprime strides, reduces each one's lattice
//	basis and keeps the stride whose two shortest directions are closest in
//	length while staying near perpendicular (cos angle < 0.25).
//
// Why:
//
//   - Progressive or stratified sampling of images and textures.
//   - Dithering / scatter patterns with no random number generator.
//   - Any host that wants a cheap scalar to drive its own point loop.
//
// Usage:
//
//	d, err := delta.MakeDelta(640, 480, 1000, 20)
//	if err != nil {
//	  // ErrInvalidParams or lattice.ErrNoIndependentVector
//	}
//	for i := 0; i < 1000; i++ {
//	  t := (i * d) % (640 * 480)
//	  x, y := t%640, t/640
//	  ...
//	}
//
// Options:
//
//   - WithLogger: slog logger receiving per-probe debug records.
//   - WithObserver: callback invoked once per probe.
//   - WithOrthogonalityLimit: acceptance threshold on |cos angle|.
//
// Complexity: O(TestCountMax · (log area + width)) time, O(1) memory.
//
// Search is pure: the same Params always yield the same Result, and
// concurrent calls share no state.
package delta
