package batch

import (
	"context"
	"fmt"

	"github.com/katalvlaran/latstride/delta"
	"github.com/katalvlaran/latstride/grid"
	"golang.org/x/sync/errgroup"
)

// Run evaluates every job of p with at most workers concurrent searches and
// returns one Outcome per job, in plan order. opts are passed to each
// delta.Search call; an observer given here must be safe for concurrent use.
//
// Errors:
//   - ErrBadWorkers  — workers ≤ 0.
//   - ctx.Err()      — the context was cancelled before all jobs ran.
func Run(ctx context.Context, p Plan, workers int, opts ...delta.Option) ([]Outcome, error) {
	if workers <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadWorkers, workers)
	}

	out := make([]Outcome, len(p.Jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, job := range p.Jobs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i] = evaluate(job, opts)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

// evaluate runs one job and folds a search failure into the Outcome.
func evaluate(job Job, opts []delta.Option) Outcome {
	o := Outcome{
		Name:    job.Name,
		Grid:    grid.Grid{Width: job.Width, Height: job.Height}.String(),
		Samples: job.Samples,
	}
	res, err := delta.Search(job.Params(), opts...)
	if err != nil {
		o.Failure = err.Error()

		return o
	}
	o.Delta = res.Delta
	o.Quality = res.Error
	o.Cos = res.Cos
	o.Found = res.Found
	o.Probes = res.Probes

	return o
}
