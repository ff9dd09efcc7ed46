// Copyright 2023 The spatial (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package wireframe

import (
	"sort"

	"github.com/gogama/spatial/rtree"
)

// A NodeBox is the bounding box of one index node, together with the
// node's height in the tree.
type NodeBox struct {
	// Height is the node's height. Leaf nodes have height 1.
	Height int
	// Box is the node's bounding box.
	Box rtree.Box
}

// A Frame is a snapshot of the node structure of an index, suitable
// for drawing one wireframe box per node. It holds no items and
// cannot be used to rebuild an index.
type Frame struct {
	// Count is the number of items in the index at capture time.
	Count int
	// Nodes holds the captured node boxes with each parent ahead of
	// its children.
	Nodes []NodeBox
}

// Capture takes a Frame from idx. If height is negative every node is
// captured, otherwise only the nodes at that height are.
func Capture[T rtree.Bounded](idx *rtree.Index[T], height int) Frame {
	f := Frame{
		Count: idx.Len(),
		Nodes: make([]NodeBox, 0),
	}
	idx.Walk(func(n rtree.Node[T]) bool {
		h := n.Height()
		if height < 0 || h == height {
			f.Nodes = append(f.Nodes, NodeBox{Height: h, Box: n.Bounds()})
		}
		return height < 0 || h > height
	})
	return f
}

// Heights returns the distinct node heights present in the frame,
// highest first.
func (f *Frame) Heights() []int {
	seen := make(map[int]bool)
	heights := make([]int, 0)
	for i := range f.Nodes {
		h := f.Nodes[i].Height
		if !seen[h] {
			seen[h] = true
			heights = append(heights, h)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(heights)))
	return heights
}
