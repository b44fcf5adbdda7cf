// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package prefix

// BuildHuffman builds a tree by repeatedly merging the two lightest roots of
// a working set until one remains. The working set starts with one leaf per
// weight, and merged nodes are appended to its end.
//
// Selection is done with a single scan and is sensitive to scan order when
// weights tie; see selectPair. A single weight yields a lone leaf.
func BuildHuffman(weights []uint32) *Node {
	if len(weights) == 0 {
		panic(errEmpty)
	}
	nodes := make([]*Node, len(weights))
	for i, w := range weights {
		nodes[i] = newLeaf(w, i)
	}
	for len(nodes) > 1 {
		i1, i2 := selectPair(nodes)
		left, right := nodes[i1], nodes[i2]
		nodes = removePair(nodes, i1, i2)
		nodes = append(nodes, newInternal(left, right))
	}
	return nodes[0]
}

// selectPair returns the positions of the two nodes to merge next.
// The first two nodes seed the pair as-is. A later node lighter than the
// second pushes the second into the first slot and takes its place; one
// lighter than only the first replaces the first.
// The node at i1 becomes the left child, the node at i2 the right child.
func selectPair(nodes []*Node) (i1, i2 int) {
	i1, i2 = 0, 1
	for i := 2; i < len(nodes); i++ {
		switch w := nodes[i].Weight; {
		case w < nodes[i2].Weight:
			i1, i2 = i2, i
		case w < nodes[i1].Weight:
			i1 = i
		}
	}
	return i1, i2
}

// removePair deletes the nodes at i and j while preserving the relative
// order of the rest. The backing array is reused.
func removePair(nodes []*Node, i, j int) []*Node {
	if i > j {
		i, j = j, i
	}
	copy(nodes[i:], nodes[i+1:])
	nodes = nodes[:len(nodes)-1]
	j-- // Account for the shift from the first removal
	copy(nodes[j:], nodes[j+1:])
	return nodes[:len(nodes)-1]
}
