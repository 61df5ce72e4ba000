// Command latstride computes sampling strides for 2D grids.
//
//	latstride delta --width 640 --height 480 --samples 1000 --probes 20
//	latstride basis --width 200 --delta 153
//	latstride batch plan.yaml --workers 4
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
