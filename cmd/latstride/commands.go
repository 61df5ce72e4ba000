package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

// rootFlags holds the persistent flags shared by every subcommand.
type rootFlags struct {
	verbose bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	root := &cobra.Command{
		Use:   "latstride",
		Short: "Pick low-discrepancy sampling strides for 2D grids",
		Long: `latstride searches for a stride delta such that visiting cells
delta, 2·delta, 3·delta, … of a flattened width×height grid spreads the
samples as evenly as possible.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "log every probe at debug level")

	root.AddCommand(
		newDeltaCmd(flags),
		newBasisCmd(),
		newBatchCmd(flags),
	)

	return root
}

// newLogger builds the stderr text logger used by the subcommands.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
