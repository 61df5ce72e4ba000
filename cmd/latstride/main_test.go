package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

// TestDeltaCmd_Text prints the bare stride.
func TestDeltaCmd_Text(t *testing.T) {
	out, _, err := execute(t, "delta", "--width", "64", "--height", "64", "--samples", "1000", "--probes", "50")
	require.NoError(t, err)
	assert.Equal(t, "17\n", out)
}

// TestDeltaCmd_YAML decodes the yaml report.
func TestDeltaCmd_YAML(t *testing.T) {
	out, _, err := execute(t, "delta", "--width", "17", "--height", "13", "--samples", "50", "--probes", "20", "--format", "yaml")
	require.NoError(t, err)

	var rep deltaReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &rep))
	assert.Equal(t, 10, rep.Delta)
	assert.True(t, rep.Found)
	assert.Equal(t, 20, rep.Probes)
	assert.Equal(t, 17, rep.Params.Width)
}

// TestDeltaCmd_Verbose logs every probe to stderr.
func TestDeltaCmd_Verbose(t *testing.T) {
	_, errOut, err := execute(t, "delta", "-v", "--width", "2", "--height", "2", "--samples", "1", "--probes", "5")
	require.NoError(t, err)
	assert.Equal(t, 5, strings.Count(errOut, "delta probe"))
}

// TestDeltaCmd_Errors covers invalid parameters, formats and missing flags.
func TestDeltaCmd_Errors(t *testing.T) {
	_, _, err := execute(t, "delta", "--width", "0", "--height", "4", "--samples", "1")
	assert.ErrorContains(t, err, "invalid search parameters")

	_, _, err = execute(t, "delta", "--width", "4", "--height", "4", "--samples", "1", "--format", "json")
	assert.ErrorContains(t, err, "unknown format")

	_, _, err = execute(t, "delta", "--width", "4")
	assert.Error(t, err)
}

// TestBasisCmd prints the raw and reduced basis of stride 153 on width 200.
func TestBasisCmd(t *testing.T) {
	out, _, err := execute(t, "basis", "--width", "200", "--delta", "153")
	require.NoError(t, err)
	assert.Equal(t, "basis    (153,0) (106,1)\n"+
		"reduced  (12,3) (1,13)\n"+
		"ratio    0.949\n"+
		"cos      0.316\n", out)
}

// TestBatchCmd runs a two-job plan from disk.
func TestBatchCmd(t *testing.T) {
	plan := "jobs:\n" +
		"  - {name: a, width: 64, height: 64, samples: 1000, probes: 50}\n" +
		"  - {name: b, width: 2, height: 2, samples: 1, probes: 5}\n"
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(plan), 0o600))

	out, _, err := execute(t, "batch", path, "--workers", "2")
	require.NoError(t, err)

	var doc struct {
		Results []struct {
			Name  string `yaml:"name"`
			Delta int    `yaml:"delta"`
		} `yaml:"results"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Results, 2)
	assert.Equal(t, "a", doc.Results[0].Name)
	assert.Equal(t, 17, doc.Results[0].Delta)
	assert.Equal(t, 5, doc.Results[1].Delta)

	_, _, err = execute(t, "batch", filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
