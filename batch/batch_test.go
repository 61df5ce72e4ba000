package batch_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/katalvlaran/latstride/batch"
	"github.com/katalvlaran/latstride/delta"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const samplePlan = `
jobs:
  - name: square
    width: 64
    height: 64
    samples: 1000
    probes: 50
  - name: odd
    width: 17
    height: 13
    samples: 50
    probes: 20
  - name: broken
    width: 0
    height: 13
    samples: 50
    probes: 20
  - name: frame
    width: 640
    height: 480
    samples: 1000
    probes: 20
`

//----------------------------------------------------------------------------//
// Parse / Load
//----------------------------------------------------------------------------//

// TestParse_Valid decodes the sample plan.
func TestParse_Valid(t *testing.T) {
	p, err := batch.Parse([]byte(samplePlan))
	require.NoError(t, err)
	require.Len(t, p.Jobs, 4)
	assert.Equal(t, batch.Job{Name: "odd", Width: 17, Height: 13, Samples: 50, Probes: 20}, p.Jobs[1])
	assert.Equal(t, delta.Params{Width: 17, Height: 13, Samples: 50, TestCountMax: 20}, p.Jobs[1].Params())
}

// TestParse_Errors covers malformed YAML and structural violations.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"Malformed", "jobs: [\n"},
		{"NoJobs", "jobs: []\n"},
		{"Unnamed", "jobs:\n  - width: 4\n    height: 4\n    samples: 1\n    probes: 1\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := batch.Parse([]byte(tc.doc))
			assert.ErrorIs(t, err, batch.ErrInvalidPlan)
		})
	}
}

// TestLoad reads a plan from disk and reports missing files.
func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(samplePlan), 0o600))

	p, err := batch.Load(path)
	require.NoError(t, err)
	assert.Len(t, p.Jobs, 4)

	_, err = batch.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

//----------------------------------------------------------------------------//
// Run
//----------------------------------------------------------------------------//

// TestRun_OrderAndIsolation checks that outcomes follow plan order and that
// a bad job does not abort its neighbours.
func TestRun_OrderAndIsolation(t *testing.T) {
	p, err := batch.Parse([]byte(samplePlan))
	require.NoError(t, err)

	var probes atomic.Int64
	out, err := batch.Run(context.Background(), p, 3, delta.WithObserver(func(delta.Probe) {
		probes.Add(1)
	}))
	require.NoError(t, err)
	require.Len(t, out, 4)

	assert.Equal(t, "square", out[0].Name)
	assert.Equal(t, "64x64", out[0].Grid)
	assert.Equal(t, 17, out[0].Delta)
	assert.True(t, out[0].Found)

	assert.Equal(t, 10, out[1].Delta)
	assert.Equal(t, 20, out[1].Probes)

	assert.Equal(t, "broken", out[2].Name)
	assert.Zero(t, out[2].Delta)
	assert.Contains(t, out[2].Failure, "invalid search parameters")

	assert.Equal(t, 311, out[3].Delta)
	assert.Equal(t, int64(50+20+20), probes.Load())
}

// TestRun_SequentialMatchesParallel compares one worker against many.
func TestRun_SequentialMatchesParallel(t *testing.T) {
	p, err := batch.Parse([]byte(samplePlan))
	require.NoError(t, err)

	seq, err := batch.Run(context.Background(), p, 1)
	require.NoError(t, err)
	par, err := batch.Run(context.Background(), p, 8)
	require.NoError(t, err)
	assert.Equal(t, seq, par)
}

// TestRun_Errors covers the worker bound and a cancelled context.
func TestRun_Errors(t *testing.T) {
	p, err := batch.Parse([]byte(samplePlan))
	require.NoError(t, err)

	_, err = batch.Run(context.Background(), p, 0)
	assert.ErrorIs(t, err, batch.ErrBadWorkers)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = batch.Run(ctx, p, 2)
	assert.ErrorIs(t, err, context.Canceled)
}

//----------------------------------------------------------------------------//
// Write
//----------------------------------------------------------------------------//

// TestWrite encodes outcomes and decodes them back through yaml.v3.
func TestWrite(t *testing.T) {
	p, err := batch.Parse([]byte(samplePlan))
	require.NoError(t, err)
	out, err := batch.Run(context.Background(), p, 2)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, batch.Write(&buf, out))
	assert.True(t, strings.HasPrefix(buf.String(), "results:\n"))

	var doc struct {
		Results []batch.Outcome `yaml:"results"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, out, doc.Results)
}
