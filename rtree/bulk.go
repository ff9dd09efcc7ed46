// Copyright 2023 The spatial (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package rtree

import "sort"

// BulkLoad replaces the contents of the index with items, building the
// tree in one pass instead of inserting the items one at a time.
//
// The items are sorted once, according to the index's bulk sort order
// (see WithBulkOrder), and packed into leaf nodes of MaxEntries items
// each. The leaves are then packed into parents of MaxEntries nodes
// each, and so on until a single root remains. The last node on each
// level may hold fewer children than the others, and may hold fewer
// than MinEntries. The resulting root has height
// max(1, ceil(log_MaxEntries(len(items)))).
//
// The slice itself is not retained, but the items are. If any item has
// an invalid bounding box, a *InvalidBoundsError is returned and the
// index is unchanged.
func (t *Index[T]) BulkLoad(items []T) error {
	entries := make([]entry[T], len(items))
	extent := EmptyBox
	for i := range items {
		b := items[i].Bounds()
		if !b.Valid() {
			return &InvalidBoundsError{Box: b}
		}
		entries[i] = itemOf(items[i], b)
		extent.Expand(&b)
	}

	switch t.order {
	case SortHilbert:
		hilbertSort(entries, extent)
	default:
		sort.SliceStable(entries, func(i, j int) bool {
			a, b := &entries[i].box, &entries[j].box
			return a.XMin < b.XMin || (a.XMin == b.XMin && a.YMin < b.YMin)
		})
	}

	t.reset()
	if len(entries) > 0 {
		t.nodes = make([]node[T], 0, packedSize(len(entries), t.maxEntries))
		t.root = t.pack(entries)
		t.count = len(entries)
	}

	tracer().Debugf("rtree: bulk loaded %d items (%s order), height %d", t.count, t.order, t.Height())
	return nil
}

// pack builds the tree level by level from a non-empty list of sorted
// leaf entries and returns the root handle.
func (t *Index[T]) pack(entries []entry[T]) nodeID {
	height := 1
	for {
		level := make([]entry[T], 0, (len(entries)+t.maxEntries-1)/t.maxEntries)
		for start := 0; start < len(entries); start += t.maxEntries {
			end := start + t.maxEntries
			if end > len(entries) {
				end = len(entries)
			}
			children := make([]entry[T], end-start, t.maxEntries+1)
			copy(children, entries[start:end])
			level = append(level, nodeOf[T](t.construct(children, height)))
		}
		if len(level) == 1 {
			return level[0].node
		}
		entries = level
		height++
	}
}

// packedSize returns the number of nodes a packed tree over numItems
// items with the given node capacity contains.
func packedSize(numItems, nodeSize int) int {
	var numNodes int
	nodesThisLevel := numItems
	for {
		nodesThisLevel = (nodesThisLevel + nodeSize - 1) / nodeSize
		numNodes += nodesThisLevel
		if nodesThisLevel == 1 {
			break
		}
	}
	return numNodes
}
