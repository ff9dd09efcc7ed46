// Copyright 2023 The spatial (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package rtree

import (
	"math"
	"sort"
)

// Insert adds an item to the index, splitting overflowing nodes on the
// way back up to the root and growing the tree by one level when the
// root itself splits.
//
// If the item's bounding box is not valid, a *InvalidBoundsError is
// returned and the index is unchanged.
func (t *Index[T]) Insert(item T) error {
	b := item.Bounds()
	if !b.Valid() {
		return &InvalidBoundsError{Box: b}
	}

	path := t.chooseLeaf(&b)
	t.add(path[len(path)-1], itemOf(item, b))

	for d := len(path) - 1; d >= 0 && len(t.nodes[path[d]].children) > t.maxEntries; d-- {
		sibling := t.split(path[d])
		if d == 0 {
			t.growRoot(sibling)
		} else {
			t.add(path[d-1], nodeOf[T](sibling))
		}
	}

	t.count++
	return nil
}

// growRoot replaces the root with a new root one level higher whose
// children are the old root and its freshly split sibling.
func (t *Index[T]) growRoot(sibling nodeID) {
	old := t.root
	height := t.nodes[old].height + 1
	t.root = t.construct([]entry[T]{nodeOf[T](old), nodeOf[T](sibling)}, height)
	tracer().Debugf("rtree: root split, height now %d", height)
}

// chooseLeaf descends from the root to a leaf node, at each level
// following the child needing the least area enlargement to include b.
// Ties go to the child with the smallest enlarged area, then to the
// first such child. The returned path runs from the root to the leaf.
func (t *Index[T]) chooseLeaf(b *Box) []nodeID {
	path := make([]nodeID, 0, t.nodes[t.root].height)
	id := t.root
	for {
		path = append(path, id)
		n := &t.nodes[id]
		if n.isLeaf() {
			return path
		}
		best := -1
		bestDelta, bestArea := math.Inf(1), math.Inf(1)
		for i := range n.children {
			c := t.entryBox(&n.children[i])
			enlarged := EnlargedArea(c, *b)
			delta := enlarged - c.Area()
			if best < 0 || delta < bestDelta || (delta == bestDelta && enlarged < bestArea) {
				best, bestDelta, bestArea = i, delta, enlarged
			}
		}
		id = n.children[best].node
	}
}

// split divides the children of an overflowing node in two. The node
// keeps the lower group and a new node, at the same height, receives
// the upper group. The return value is the handle of the new node.
func (t *Index[T]) split(id nodeID) nodeID {
	children := t.nodes[id].children
	t.sortForSplit(children)
	i := t.bestSplitIndex(children)

	left := make([]entry[T], i, t.maxEntries+1)
	copy(left, children[:i])
	right := make([]entry[T], len(children)-i, t.maxEntries+1)
	copy(right, children[i:])

	t.nodes[id].children = left
	t.recalculateBound(id)
	sibling := t.construct(right, t.nodes[id].height)

	tracer().Debugf("rtree: split node at height %d into %d+%d children", t.nodes[id].height, len(left), len(right))
	return sibling
}

// sortForSplit sorts children along the axis whose candidate splits
// have the lower total margin. The X axis wins ties.
func (t *Index[T]) sortForSplit(children []entry[T]) {
	byY := make([]entry[T], len(children))
	copy(byY, children)
	sort.SliceStable(byY, func(i, j int) bool {
		return t.entryBox(&byY[i]).YMin < t.entryBox(&byY[j]).YMin
	})
	sort.SliceStable(children, func(i, j int) bool {
		return t.entryBox(&children[i]).XMin < t.entryBox(&children[j]).XMin
	})
	if t.splitMargins(byY) < t.splitMargins(children) {
		copy(children, byY)
	}
}

// splitMargins returns the sum, over every valid split position, of
// the margins of the boxes enclosing the groups on either side.
func (t *Index[T]) splitMargins(children []entry[T]) float64 {
	lo, hi := t.minEntries, len(children)-t.minEntries
	boxes := t.boxesOf(children)

	var total float64
	left := Union(boxes[:lo]...)
	for i := lo; i <= hi; i++ {
		if i > lo {
			left.Expand(&boxes[i-1])
		}
		total += left.Margin()
	}
	right := Union(boxes[hi:]...)
	for i := hi; i >= lo; i-- {
		if i < hi {
			right.Expand(&boxes[i])
		}
		total += right.Margin()
	}
	return total
}

// bestSplitIndex picks the position at which to split sorted children.
// Candidates are ranked by the area of the box spanning both groups,
// then by the sum of the two groups' areas, then by position.
func (t *Index[T]) bestSplitIndex(children []entry[T]) int {
	boxes := t.boxesOf(children)
	best := -1
	bestOverlap, bestArea := math.Inf(1), math.Inf(1)
	for i := t.minEntries; i <= len(children)-t.minEntries; i++ {
		left, right := Union(boxes[:i]...), Union(boxes[i:]...)
		ov := overlapBox(left, right)
		overlap := ov.Area()
		area := left.Area() + right.Area()
		if best < 0 || overlap < bestOverlap || (overlap == bestOverlap && area < bestArea) {
			best, bestOverlap, bestArea = i, overlap, area
		}
	}
	if best < 0 {
		fmtPanic("logic error: no split position for %d children with min entries %d", len(children), t.minEntries)
	}
	return best
}

func (t *Index[T]) boxesOf(children []entry[T]) []Box {
	boxes := make([]Box, len(children))
	for i := range children {
		boxes[i] = t.entryBox(&children[i])
	}
	return boxes
}
