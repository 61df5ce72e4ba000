// Package batch evaluates many stride searches described in a YAML plan.
//
// A plan lists named jobs (grid size, sample count, probe budget). Run
// fans the jobs out over a bounded errgroup; since delta.Search is pure the
// workers share nothing but the output slice, each writing its own index.
// Outcomes come back in plan order. A job with bad parameters records the
// failure in its Outcome; only context cancellation aborts the run.
//
// Plan format:
//
//	jobs:
//	  - name: hd
//	    width: 1920
//	    height: 1080
//	    samples: 20000
//	    probes: 200
package batch
