package main

import (
	"fmt"

	"github.com/katalvlaran/latstride/lattice"
	"github.com/spf13/cobra"
)

func newBasisCmd() *cobra.Command {
	var width, stride int
	cmd := &cobra.Command{
		Use:   "basis",
		Short: "Show the raw and reduced lattice basis of a stride",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := lattice.FromStride(stride, width)
			if err != nil {
				return err
			}
			r := lattice.Reduce(b)
			v1, v2 := r.V1.Rightward(), r.V2.Rightward()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "basis    (%d,%d) (%d,%d)\n", b.V1.X, b.V1.Y, b.V2.X, b.V2.Y)
			fmt.Fprintf(out, "reduced  (%d,%d) (%d,%d)\n", v1.X, v1.Y, v2.X, v2.Y)
			_, err = fmt.Fprintf(out, "ratio    %.3f\ncos      %.3f\n", r.Ratio(), r.CosAngle())

			return err
		},
	}
	cmd.Flags().IntVar(&width, "width", 0, "grid width in cells")
	cmd.Flags().IntVar(&stride, "delta", 0, "stride to inspect")
	_ = cmd.MarkFlagRequired("width")
	_ = cmd.MarkFlagRequired("delta")

	return cmd
}
