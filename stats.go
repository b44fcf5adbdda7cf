// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package codebook

import (
	"math"

	"github.com/dsnet/codebook/internal"
)

// Entropy computes the Shannon entropy of the alphabet in bits per symbol.
//
// Probabilities are normalized by n, the length of the source sequence,
// rather than by the alphabet total. The result is exact only when the
// alphabet was built from a sequence of exactly n samples.
// It returns 0 if n is not positive.
func Entropy(a Alphabet, n int) float64 {
	if n <= 0 {
		return 0
	}
	var h float64
	for _, s := range a {
		p := float64(s.Cnt) / float64(n)
		h -= p * math.Log2(p)
	}
	return h
}

// MinBits reports the number of bits needed to write v in binary.
// Zero needs 1 bit and any v of 128 or more needs 8.
func MinBits(v int) int { return internal.MinBits(v) }

// AverageMinBits averages MinBits over the positions 0..len(a)-1.
// This approximates the cost of a variable-width positional code and is not
// an exact ceil(log2) measure. The alphabet must not be empty.
func AverageMinBits(a Alphabet) (float64, error) {
	if len(a) == 0 {
		return 0, ErrEmptyAlphabet
	}
	var sum int
	for i := range a {
		sum += internal.MinBits(i)
	}
	return float64(sum) / float64(len(a)), nil
}
