package delta

import (
	"log/slog"
	"math"
)

// DefaultOrthogonalityLimit is the largest |cos angle| between the reduced
// basis vectors that a candidate may have and still be accepted.
const DefaultOrthogonalityLimit = 0.25

const (
	panicOrthogonalityInvalid = "delta: WithOrthogonalityLimit: limit must be in (0, 1]"
	panicLoggerNil            = "delta: WithLogger: logger must not be nil"
)

// Option configures Search.
// Constructors panic only on nonsensical values (programmer error).
type Option func(*options)

type options struct {
	logger     *slog.Logger
	observer   func(Probe)
	orthoLimit float64
}

func defaultOptions() options {
	return options{
		logger:     slog.New(slog.DiscardHandler),
		observer:   func(Probe) {},
		orthoLimit: DefaultOrthogonalityLimit,
	}
}

func gatherOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithLogger routes per-probe debug records and the final summary to l.
// Panics if l is nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *options) { o.logger = l }
}

// WithObserver registers fn to be called synchronously after every probe.
// A nil fn is ignored.
func WithObserver(fn func(Probe)) Option {
	return func(o *options) {
		if fn != nil {
			o.observer = fn
		}
	}
}

// WithOrthogonalityLimit sets the acceptance threshold on |cos angle|.
// Panics unless 0 < limit ≤ 1.
func WithOrthogonalityLimit(limit float64) Option {
	if math.IsNaN(limit) || limit <= 0 || limit > 1 {
		panic(panicOrthogonalityInvalid)
	}

	return func(o *options) { o.orthoLimit = limit }
}
