// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package internal is a collection of helpers shared by the codebook builders.
//
// For simplicity, these packages lack strong error checking and require that
// the caller ensure that strict invariants are kept.
package internal

// Error is the wrapper type for errors specific to this library.
type Error string

func (e Error) Error() string { return "codebook: " + string(e) }

// ErrEmptyAlphabet reports that an operation needs at least one symbol.
var ErrEmptyAlphabet error = Error("empty alphabet")

// MinBitsLUT returns the 1-based position of the highest set bit of the key.
// A key of zero maps to 1.
var MinBitsLUT [256]uint8

func init() {
	for i := range MinBitsLUT {
		n := uint8(1)
		for v := i >> 1; v > 0; v >>= 1 {
			n++
		}
		MinBitsLUT[i] = n
	}
}

// MinBits reports the number of bits needed to write v in binary, with a
// minimum of 1. Values that do not fit in a byte are capped at 8.
func MinBits(v int) int {
	if v < 0 || v > 0xff {
		return 8
	}
	return int(MinBitsLUT[v])
}
