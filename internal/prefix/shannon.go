// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package prefix

// BuildShannon builds a tree by recursively halving the position range of
// the weights. The range [l, r] is split at (l+r)/2 with the lower half on
// the left. Weights only label the nodes; they never move the split point.
//
// The weights are used in the order given. No sorting by weight occurs, so
// the result is only a good Shannon-Fano code if the caller ordered them.
func BuildShannon(weights []uint32) *Node {
	if len(weights) == 0 {
		panic(errEmpty)
	}
	return splitRange(weights, 0, len(weights)-1)
}

func splitRange(weights []uint32, l, r int) *Node {
	if l > r {
		return nil
	}
	if l == r {
		return newLeaf(weights[l], l)
	}
	m := (l + r) / 2
	left := splitRange(weights, l, m)
	right := splitRange(weights, m+1, r)
	return newInternal(left, right)
}
