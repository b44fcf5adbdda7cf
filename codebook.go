// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package codebook builds static entropy codes over short byte sequences.
//
// Given a source sequence, the package derives the alphabet of observed
// symbols and their frequencies, and from it three codebooks: a fixed-length
// binary code, a Shannon-Fano code, and a Huffman code. Each codebook maps an
// alphabet position to a codeword, written as a string of '0' and '1'
// characters. The Encoder measures how many bits each codebook needs for the
// source sequence.
//
// Codewords are kept in symbolic form; nothing in this package packs bits.
package codebook

import (
	"runtime"

	"github.com/dsnet/codebook/internal"
)

// Error is the wrapper type for errors specific to this library.
type Error = internal.Error

var (
	// ErrEmptyAlphabet reports that an operation needs at least one symbol.
	ErrEmptyAlphabet = internal.ErrEmptyAlphabet

	// ErrEmptySequence reports that a source sequence has no samples.
	ErrEmptySequence error = Error("empty source sequence")

	// ErrUnknownSymbol reports that a source symbol is not in the alphabet
	// the codebook was built from. The encoding pass is abandoned.
	ErrUnknownSymbol error = Error("symbol not in alphabet")

	// ErrMismatch reports that a codebook and an alphabet differ in size.
	ErrMismatch error = Error("codebook does not match alphabet")
)

func errRecover(err *error) {
	switch ex := recover().(type) {
	case nil:
		// Do nothing.
	case runtime.Error:
		panic(ex)
	case error:
		*err = ex
	default:
		panic(ex)
	}
}
