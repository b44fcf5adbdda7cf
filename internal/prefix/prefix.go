// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package prefix implements construction of binary prefix-code trees and the
// extraction of codeword tables from them.
//
// Trees are built from a list of symbol weights. A symbol is identified only
// by its position in that list; mapping positions back to real symbol values
// is left to the caller.
package prefix

import "github.com/dsnet/codebook/internal"

var errEmpty = internal.ErrEmptyAlphabet

// Node is a vertex in a prefix-code tree.
//
// A node with no children is a leaf and represents the symbol at position
// Index. Every other node has exactly two children and Index is -1.
// Nodes are never modified once they are part of a tree.
type Node struct {
	Weight uint32
	Index  int
	Left   *Node
	Right  *Node
}

func newLeaf(w uint32, idx int) *Node {
	return &Node{Weight: w, Index: idx}
}

func newInternal(left, right *Node) *Node {
	return &Node{Weight: left.Weight + right.Weight, Index: -1, Left: left, Right: right}
}

// IsLeaf reports whether the node represents a single symbol.
func (n *Node) IsLeaf() bool { return n.Left == nil && n.Right == nil }

// Walk visits every node of the tree in depth-first, left-to-right order.
// The prefix passed to fn is the path from the root, where descending left
// appends '0' and descending right appends '1'.
func Walk(root *Node, fn func(n *Node, prefix string, depth int)) {
	walk(root, "", 0, fn)
}

func walk(n *Node, prefix string, depth int, fn func(*Node, string, int)) {
	if n == nil {
		return
	}
	fn(n, prefix, depth)
	walk(n.Left, prefix+"0", depth+1, fn)
	walk(n.Right, prefix+"1", depth+1, fn)
}

// Codes extracts the codeword of each leaf in the tree. The result has
// numSyms entries, where codes[i] is the path to the leaf with Index i.
//
// A tree made of a single leaf assigns the empty codeword.
func Codes(root *Node, numSyms int) []string {
	codes := make([]string, numSyms)
	Walk(root, func(n *Node, prefix string, _ int) {
		if n.IsLeaf() {
			codes[n.Index] = prefix
		}
	})
	return codes
}

// IsPrefixFree reports whether no codeword is a prefix of another.
// If the property does not hold, it also returns the positions of the first
// offending pair, where codes[i] is a prefix of codes[j].
func IsPrefixFree(codes []string) (int, int, bool) {
	for i := range codes {
		for j := range codes {
			if i == j || len(codes[i]) > len(codes[j]) {
				continue
			}
			if codes[j][:len(codes[i])] == codes[i] {
				return i, j, false
			}
		}
	}
	return -1, -1, true
}
