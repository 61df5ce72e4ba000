package main

import (
	"runtime"

	"github.com/katalvlaran/latstride/batch"
	"github.com/katalvlaran/latstride/delta"
	"github.com/spf13/cobra"
)

func newBatchCmd(root *rootFlags) *cobra.Command {
	workers := runtime.GOMAXPROCS(0)
	cmd := &cobra.Command{
		Use:   "batch PLAN",
		Short: "Run every job of a yaml plan and print yaml results",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := batch.Load(args[0])
			if err != nil {
				return err
			}
			logger := newLogger(cmd.ErrOrStderr(), root.verbose)
			logger.Info("running plan", "path", args[0], "jobs", len(plan.Jobs), "workers", workers)

			out, err := batch.Run(cmd.Context(), plan, workers, delta.WithLogger(logger))
			if err != nil {
				return err
			}

			return batch.Write(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().IntVar(&workers, "workers", workers, "concurrent searches")

	return cmd
}
