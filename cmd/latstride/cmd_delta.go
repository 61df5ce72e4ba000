package main

import (
	"fmt"

	"github.com/katalvlaran/latstride/delta"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type deltaFlags struct {
	params delta.Params
	format string
}

// deltaReport is the yaml form of a search result.
type deltaReport struct {
	Params delta.Params `yaml:"params"`
	Delta  int          `yaml:"delta"`
	Error  float64      `yaml:"ratio_error"`
	Cos    float64      `yaml:"cos_angle"`
	Found  bool         `yaml:"found"`
	Probes int          `yaml:"probes"`
}

func newDeltaCmd(root *rootFlags) *cobra.Command {
	f := &deltaFlags{}
	cmd := &cobra.Command{
		Use:   "delta",
		Short: "Search the best stride for one grid",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelta(cmd, root, f)
		},
	}
	cmd.Flags().IntVar(&f.params.Width, "width", 0, "grid width in cells")
	cmd.Flags().IntVar(&f.params.Height, "height", 0, "grid height in cells")
	cmd.Flags().IntVar(&f.params.Samples, "samples", 0, "desired number of samples")
	cmd.Flags().IntVar(&f.params.TestCountMax, "probes", 10, "number of coprime strides to probe")
	cmd.Flags().StringVar(&f.format, "format", "text", "output format: text or yaml")
	_ = cmd.MarkFlagRequired("width")
	_ = cmd.MarkFlagRequired("height")
	_ = cmd.MarkFlagRequired("samples")

	return cmd
}

func runDelta(cmd *cobra.Command, root *rootFlags, f *deltaFlags) error {
	if f.format != "text" && f.format != "yaml" {
		return fmt.Errorf("unknown format %q", f.format)
	}
	logger := newLogger(cmd.ErrOrStderr(), root.verbose)
	res, err := delta.Search(f.params, delta.WithLogger(logger))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if f.format == "yaml" {
		return yaml.NewEncoder(out).Encode(deltaReport{
			Params: f.params,
			Delta:  res.Delta,
			Error:  res.Error,
			Cos:    res.Cos,
			Found:  res.Found,
			Probes: res.Probes,
		})
	}

	if !res.Found {
		logger.Warn("no probe met the orthogonality limit, returning seed stride",
			"delta", res.Delta)
	}
	_, err = fmt.Fprintln(out, res.Delta)

	return err
}
