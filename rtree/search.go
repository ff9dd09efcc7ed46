// Copyright 2023 The spatial (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package rtree

import "sort"

// Search returns every item whose bounding box intersects the query
// box. Items are returned in breadth-first tree order, which is not a
// spatial ordering. An empty index, or a query box which misses the
// index entirely, yields an empty result.
func (t *Index[T]) Search(b Box) []T {
	r := make([]T, 0)
	t.SearchFunc(b, func(item T) bool {
		r = append(r, item)
		return true
	})
	return r
}

// SearchFunc is the lazy form of Search. It calls fn for each item
// whose bounding box intersects the query box, in the same order as
// Search, until fn returns false.
func (t *Index[T]) SearchFunc(b Box, fn func(item T) bool) {
	if !t.nodes[t.root].bounds.Intersects(&b) {
		return
	}

	queue := []nodeID{t.root}
	for len(queue) > 0 {
		// Pop the next node from the front of the queue.
		n := &t.nodes[queue[0]]
		queue = queue[1:]
		for i := range n.children {
			e := &n.children[i]
			c := t.entryBox(e)
			if !c.Intersects(&b) {
				continue
			} else if e.kind == nodeEntry {
				queue = append(queue, e.node)
			} else if !fn(e.item) {
				return
			}
		}
	}
}

// SearchKNN returns up to k items nearest to p, nearest first, where
// the distance to an item is the distance from p to the nearest point
// of its bounding box. If the index holds k items or fewer, all of
// them are returned. If k is not positive, nothing is returned.
//
// The search keeps a single pending list of entries, seeded with the
// root's children and kept sorted by distance. The nearest pending
// entry is taken off the list repeatedly: a node has its children
// merged into the list, which is then sorted again; an item is
// accepted as the next result. Ties in distance are broken by list
// order, so results are deterministic for a given tree and point.
func (t *Index[T]) SearchKNN(p Point, k int) []T {
	r := make([]T, 0)
	if k <= 0 || t.count == 0 {
		return r
	}

	type pending struct {
		entry *entry[T]
		dist  float64
	}
	var list []pending
	merge := func(id nodeID) {
		n := &t.nodes[id]
		for i := range n.children {
			b := t.entryBox(&n.children[i])
			list = append(list, pending{entry: &n.children[i], dist: b.SqrDistance(p)})
		}
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].dist < list[j].dist
		})
	}

	merge(t.root)
	for len(list) > 0 {
		next := list[0]
		list = list[1:]
		if next.entry.kind == nodeEntry {
			merge(next.entry.node)
			continue
		}
		r = append(r, next.entry.item)
		if len(r) == k {
			break
		}
	}
	return r
}
