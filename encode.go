// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package codebook

import "strings"

// Encoding is the result of coding a sequence with a codebook.
type Encoding struct {
	Bits string // Concatenated codewords
	Len  int    // Total length in bits
}

// Encode replaces every symbol of seq with its codeword in cb, where a is
// the alphabet cb was built for.
//
// A symbol missing from a fails the whole pass with ErrUnknownSymbol and no
// partial encoding is returned.
func Encode(seq []byte, cb Codebook, a Alphabet) (enc Encoding, err error) {
	if len(cb) != len(a) {
		return Encoding{}, ErrMismatch
	}
	defer errRecover(&err)

	var sb strings.Builder
	for _, c := range seq {
		sb.WriteString(cb[lookup(a, c)])
	}
	return Encoding{Bits: sb.String(), Len: sb.Len()}, nil
}

// lookup panics if sym is not in a.
func lookup(a Alphabet, sym uint8) int {
	idx := a.Index(sym)
	if idx < 0 {
		panic(ErrUnknownSymbol)
	}
	return idx
}
