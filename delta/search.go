package delta

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/latstride/grid"
	"github.com/katalvlaran/latstride/lattice"
)

// Search probes up to p.TestCountMax coprime strides and returns the one
// whose reduced lattice basis is closest to isotropic.
//
// Algorithm:
//  1. area = Width·Height; step = 2 when area is even (only odd strides
//     can be coprime), else 1.
//  2. Seed delta = ceil(area/Samples), bumped to odd for an even area.
//     bestDelta = seed, bestError = Width+Height.
//  3. Repeat TestCountMax times:
//     a. advance delta by step until gcd(area, delta) = 1;
//     b. reduce FromStride(delta, Width);
//     c. err = |1 − |V1|/|V2||, cos = |V1·V2| / (|V1|·|V2|);
//     d. accept when err < bestError and cos < orthogonality limit;
//     e. delta += step.
//  4. Return bestDelta.
//
// Errors:
//   - ErrInvalidParams                — p failed validation.
//   - lattice.ErrNoIndependentVector  — Width is 1, so no stride has a
//     second lattice direction.
func Search(p Params, opts ...Option) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, err
	}
	o := gatherOptions(opts)

	g := grid.Grid{Width: p.Width, Height: p.Height}
	area := g.Area()
	step := 1
	if g.IsEven() {
		step = 2
	}

	delta := (area + p.Samples - 1) / p.Samples
	if g.IsEven() && delta&1 == 0 {
		delta++
	}

	res := Result{Delta: delta, Error: float64(p.Width + p.Height)}
	for i := 0; i < p.TestCountMax; i++ {
		for !lattice.Coprime(area, delta) {
			delta += step
		}

		b, err := lattice.FromStride(delta, p.Width)
		if err != nil {
			return Result{}, fmt.Errorf("delta: probe %d on %s grid: %w", i, g, err)
		}
		r := lattice.Reduce(b)
		e, c := r.Error(), r.CosAngle()

		accepted := e < res.Error && c < o.orthoLimit
		if accepted {
			res.Delta, res.Error, res.Cos, res.Basis = delta, e, c, r
			res.Found = true
		}
		res.Probes++

		o.logger.Debug("delta probe",
			slog.Int("index", i),
			slog.Int("delta", delta),
			slog.Float64("error", e),
			slog.Float64("cos", c),
			slog.Bool("accepted", accepted))
		o.observer(Probe{Index: i, Delta: delta, Basis: r, Error: e, Cos: c, Accepted: accepted})

		delta += step
	}

	o.logger.Info("delta search complete",
		slog.String("grid", g.String()),
		slog.Int("samples", p.Samples),
		slog.Int("probes", res.Probes),
		slog.Int("delta", res.Delta),
		slog.Float64("error", res.Error),
		slog.Bool("found", res.Found))

	return res, nil
}

// MakeDelta returns the stride chosen by Search for the given grid, sample
// count and probe budget.
func MakeDelta(width, height, samples, testCountMax int, opts ...Option) (int, error) {
	res, err := Search(Params{
		Width:        width,
		Height:       height,
		Samples:      samples,
		TestCountMax: testCountMax,
	}, opts...)
	if err != nil {
		return 0, err
	}

	return res.Delta, nil
}

// InvalidDelta is returned by MakeDelta32 when the search cannot run.
const InvalidDelta int32 = -1

// MakeDelta32 is the fixed-width form of MakeDelta used by the C export.
// Any error maps to InvalidDelta.
func MakeDelta32(width, height, samples, testCountMax int32) int32 {
	d, err := MakeDelta(int(width), int(height), int(samples), int(testCountMax))
	if err != nil || d > math.MaxInt32 {
		return InvalidDelta
	}

	return int32(d)
}
