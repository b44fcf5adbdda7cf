// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package codebook

import (
	"fmt"
	"strings"

	"github.com/dsnet/codebook/internal/prefix"
)

// Codebook assigns a codeword to every alphabet position.
// Codewords are strings over the characters '0' and '1'.
type Codebook []string

// IsPrefixFree reports whether no codeword is a prefix of another.
func (cb Codebook) IsPrefixFree() bool {
	_, _, ok := prefix.IsPrefixFree(cb)
	return ok
}

// AverageLength is the mean codeword length in bits, weighted by the
// frequencies in a. It returns 0 if a is empty or does not match cb.
func (cb Codebook) AverageLength(a Alphabet) float64 {
	n := a.Total()
	if n == 0 || len(cb) != len(a) {
		return 0
	}
	var bits int
	for i, s := range a {
		bits += int(s.Cnt) * len(cb[i])
	}
	return float64(bits) / float64(n)
}

// Fixed returns the fixed-length positional codebook. Position i is coded as
// i in binary, zero-padded to MinBits(len(a)) bits.
func Fixed(a Alphabet) (Codebook, error) {
	if len(a) == 0 {
		return nil, ErrEmptyAlphabet
	}
	return prefix.FixedCodes(len(a)), nil
}

// Tree is a prefix-code tree over an alphabet.
// It is only kept around for diagnostics; the codebook holds all the
// information needed to encode.
type Tree struct {
	root  *prefix.Node
	alpha Alphabet
}

// ShannonTree splits the alphabet positions in halves recursively.
//
// The split point is the midpoint of the position range, not the weighted
// median, and positions are in symbol order rather than frequency order.
// This is a simplification of textbook Shannon-Fano coding.
func ShannonTree(a Alphabet) (t *Tree, err error) {
	defer errRecover(&err)
	return &Tree{prefix.BuildShannon(a.Weights()), a}, nil
}

// HuffmanTree merges the two lightest subtrees until one remains.
// Ties are resolved by the order in which the working set is scanned.
func HuffmanTree(a Alphabet) (t *Tree, err error) {
	defer errRecover(&err)
	return &Tree{prefix.BuildHuffman(a.Weights()), a}, nil
}

// Shannon returns the codebook of ShannonTree.
func Shannon(a Alphabet) (Codebook, error) {
	t, err := ShannonTree(a)
	if err != nil {
		return nil, err
	}
	return t.Codebook(), nil
}

// Huffman returns the codebook of HuffmanTree.
func Huffman(a Alphabet) (Codebook, error) {
	t, err := HuffmanTree(a)
	if err != nil {
		return nil, err
	}
	return t.Codebook(), nil
}

// Codebook reads the codewords off the tree. A tree over a single symbol
// gives that symbol the empty codeword.
func (t *Tree) Codebook() Codebook {
	return prefix.Codes(t.root, len(t.alpha))
}

// Weight is the total weight of the tree.
func (t *Tree) Weight() uint32 { return t.root.Weight }

// Leaves returns the alphabet positions of the leaves in depth-first order.
func (t *Tree) Leaves() []int {
	var idxs []int
	prefix.Walk(t.root, func(n *prefix.Node, _ string, _ int) {
		if n.IsLeaf() {
			idxs = append(idxs, n.Index)
		}
	})
	return idxs
}

// String renders the tree shape with leaves labeled by symbol value.
func (t *Tree) String() string {
	var sb strings.Builder
	prefix.Format(&sb, t.root, func(i int) string {
		return fmt.Sprint(t.alpha[i].Sym)
	})
	return sb.String()
}
