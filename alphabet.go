// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package codebook

import (
	"fmt"
	"strings"
)

// Symbol is a single alphabet entry.
type Symbol struct {
	Sym uint8  // The byte value
	Cnt uint32 // Number of occurrences in the source; always positive
}

func (s Symbol) String() string { return fmt.Sprintf("(%d, %d)", s.Sym, s.Cnt) }

// Alphabet is the list of distinct symbols of a source sequence in ascending
// order of value. Each value appears at most once.
type Alphabet []Symbol

// MakeAlphabet tallies the occurrences of every byte value in seq.
// An empty sequence produces an empty alphabet.
func MakeAlphabet(seq []byte) Alphabet {
	var cnts [256]uint32
	for _, c := range seq {
		cnts[c]++
	}

	var a Alphabet
	for sym, cnt := range cnts {
		if cnt > 0 {
			a = append(a, Symbol{Sym: uint8(sym), Cnt: cnt})
		}
	}
	return a
}

// Index returns the position of sym in the alphabet, or -1 if absent.
// Alphabets hold at most 256 entries, so a linear search is used.
func (a Alphabet) Index(sym uint8) int {
	for i, s := range a {
		if s.Sym == sym {
			return i
		}
	}
	return -1
}

// Total returns the sum of all frequencies.
func (a Alphabet) Total() (n int) {
	for _, s := range a {
		n += int(s.Cnt)
	}
	return n
}

// Weights returns the frequencies in alphabet order.
func (a Alphabet) Weights() []uint32 {
	ws := make([]uint32, len(a))
	for i, s := range a {
		ws[i] = s.Cnt
	}
	return ws
}

func (a Alphabet) String() string {
	ss := make([]string, len(a))
	for i, s := range a {
		ss[i] = s.String()
	}
	return "[" + strings.Join(ss, " ") + "]"
}
