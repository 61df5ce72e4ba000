//go:build cgo

// Command libstride builds the C shared library exposing MakeDelta:
//
//	go build -buildmode=c-shared -o libstride.so ./cmd/libstride
//
// The generated header declares
//
//	int32_t MakeDelta(int32_t width, int32_t height, int32_t samples, int32_t testCountMax);
//
// which returns -1 when the inputs are invalid.
package main

/*
#include <stdint.h>
*/
import "C"

import "github.com/katalvlaran/latstride/delta"

//export MakeDelta
func MakeDelta(width, height, samples, testCountMax C.int32_t) C.int32_t {
	return C.int32_t(delta.MakeDelta32(int32(width), int32(height), int32(samples), int32(testCountMax)))
}

func main() {}
