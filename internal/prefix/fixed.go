// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package prefix

import (
	"fmt"

	"github.com/dsnet/codebook/internal"
)

// FixedCodes assigns every position the binary representation of itself,
// zero-padded to internal.MinBits(numSyms) bits.
//
// Every code has the same width, and no attempt is made to make them optimal.
func FixedCodes(numSyms int) []string {
	width := internal.MinBits(numSyms)
	codes := make([]string, numSyms)
	for i := range codes {
		codes[i] = fmt.Sprintf("%0*b", width, i)
	}
	return codes
}
