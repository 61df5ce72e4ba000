package batch

import (
	"errors"

	"github.com/katalvlaran/latstride/delta"
)

var (
	// ErrInvalidPlan indicates a structurally invalid plan (no jobs, unnamed jobs).
	ErrInvalidPlan = errors.New("batch: invalid plan")

	// ErrBadWorkers indicates a non-positive worker count.
	ErrBadWorkers = errors.New("batch: workers must be positive")
)

// Job is one named stride search.
type Job struct {
	Name    string `yaml:"name" validate:"required"`
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	Samples int    `yaml:"samples"`
	Probes  int    `yaml:"probes"`
}

// Params converts the job into search parameters.
func (j Job) Params() delta.Params {
	return delta.Params{
		Width:        j.Width,
		Height:       j.Height,
		Samples:      j.Samples,
		TestCountMax: j.Probes,
	}
}

// Plan is an ordered list of jobs.
type Plan struct {
	Jobs []Job `yaml:"jobs" validate:"min=1,dive"`
}

// Outcome is the result of one job.
type Outcome struct {
	Name    string  `yaml:"name"`
	Grid    string  `yaml:"grid"`
	Samples int     `yaml:"samples"`
	Delta   int     `yaml:"delta,omitempty"`
	Quality float64 `yaml:"ratio_error"`
	Cos     float64 `yaml:"cos_angle"`
	Found   bool    `yaml:"found"`
	Probes  int     `yaml:"probes"`
	Failure string  `yaml:"failure,omitempty"`
}
