// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package prefix

import (
	"fmt"
	"io"
	"strings"
)

// Format writes a human readable rendering of the tree to w, one node per
// line and indented by depth. Internal nodes print as "-N(weight) prefix"
// and leaves as "-V (label) -- prefix", where label is produced by name.
//
// The exact layout is meant for inspection only.
func Format(w io.Writer, root *Node, name func(idx int) string) error {
	var err error
	Walk(root, func(n *Node, prefix string, depth int) {
		if err != nil {
			return
		}
		indent := strings.Repeat("  ", depth)
		if n.IsLeaf() {
			_, err = fmt.Fprintf(w, "%s-V (%s) -- %s\n", indent, name(n.Index), prefix)
		} else {
			_, err = fmt.Fprintf(w, "%s-N(%d) %s\n", indent, n.Weight, prefix)
		}
	})
	return err
}

func (n *Node) String() string {
	var sb strings.Builder
	Format(&sb, n, func(idx int) string { return fmt.Sprint(idx) })
	return strings.TrimSuffix(sb.String(), "\n")
}
