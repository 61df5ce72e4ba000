package delta

import (
	"errors"

	"github.com/katalvlaran/latstride/lattice"
)

// ErrInvalidParams indicates Params failed validation. The wrapped message
// names the offending fields.
var ErrInvalidParams = errors.New("delta: invalid search parameters")

// Params describes one stride search.
//
// Fields:
//   - Width, Height — grid dimensions in cells.
//   - Samples       — intended number of sample points; sets the seed
//     stride ceil(Width·Height / Samples).
//   - TestCountMax  — number of coprime strides probed.
//
// All four must be positive and the area must fit a signed 32-bit integer,
// the contract of the exported C entry point.
type Params struct {
	Width        int `yaml:"width" validate:"gte=1,lte=2147483647"`
	Height       int `yaml:"height" validate:"gte=1,lte=2147483647"`
	Samples      int `yaml:"samples" validate:"gte=1,lte=2147483647"`
	TestCountMax int `yaml:"probes" validate:"gte=1,lte=2147483647"`
}

// Probe is a single evaluated candidate, handed to observers.
type Probe struct {
	// Index counts probes from 0.
	Index int
	// Delta is the coprime stride that was evaluated.
	Delta int
	// Basis is the reduced lattice basis of Delta.
	Basis lattice.Basis
	// Error is |1 − |V1|/|V2||.
	Error float64
	// Cos is |cos| of the angle between the basis vectors.
	Cos float64
	// Accepted is true when this probe became the new best.
	Accepted bool
}

// Result is the outcome of Search.
type Result struct {
	// Delta is the best stride found, or the seed stride when Found is false.
	Delta int
	// Error is the length-ratio error of Delta; Width+Height when Found is false.
	Error float64
	// Cos is |cos| of the basis angle of Delta (zero when Found is false).
	Cos float64
	// Basis is the reduced basis of Delta (zero when Found is false).
	Basis lattice.Basis
	// Probes is the number of candidates evaluated, at most TestCountMax.
	Probes int
	// Found reports whether any probe passed the orthogonality threshold.
	Found bool
}
