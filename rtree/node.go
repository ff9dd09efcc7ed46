// Copyright 2023 The spatial (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package rtree

// A nodeID is the handle of a node in an Index's node arena.
type nodeID int

// noParent is the parent handle of the root node.
const noParent nodeID = -1

type entryKind uint8

const (
	itemEntry entryKind = iota
	nodeEntry
)

// An entry is a single child slot of a node. It is either an item,
// in which case box is the item's bounding box as captured when the
// item was added, or a child node, in which case the box is read from
// the child's cached bounds and the entry's own box is unused.
type entry[T any] struct {
	kind entryKind
	box  Box
	node nodeID
	item T
}

func itemOf[T any](item T, b Box) entry[T] {
	return entry[T]{kind: itemEntry, box: b, item: item}
}

func nodeOf[T any](id nodeID) entry[T] {
	return entry[T]{kind: nodeEntry, node: id}
}

// A node is an arena-resident R-Tree node. Height 1 marks a leaf
// node, whose children are items; every other node's children are
// nodes exactly one level lower.
type node[T any] struct {
	height   int
	children []entry[T]
	// bounds is the union of the children's boxes. It is EmptyBox when
	// the node has no children.
	bounds Box
	// parent is a non-owning back-link used only to propagate bounds
	// growth toward the root. It is noParent for the root.
	parent nodeID
}

func (n *node[T]) isLeaf() bool {
	return n.height == 1
}

// entryBox returns the bounding box of a child slot.
func (t *Index[T]) entryBox(e *entry[T]) Box {
	if e.kind == nodeEntry {
		return t.nodes[e.node].bounds
	}
	return e.box
}

// construct appends a new node with the given children and height to
// the arena and returns its handle. The node's bounds are computed
// from its children and every child node's parent link is pointed at
// the new node. The height is stored as given, not derived.
func (t *Index[T]) construct(children []entry[T], height int) nodeID {
	id := nodeID(len(t.nodes))
	t.nodes = append(t.nodes, node[T]{
		height:   height,
		children: children,
		bounds:   EmptyBox,
		parent:   noParent,
	})
	n := &t.nodes[id]
	for i := range children {
		b := t.entryBox(&children[i])
		n.bounds.Expand(&b)
		if children[i].kind == nodeEntry {
			t.nodes[children[i].node].parent = id
		}
	}
	return id
}

// add appends e to the children of node id, enlarges the node's bounds
// to include e, and propagates the enlargement to every ancestor.
func (t *Index[T]) add(id nodeID, e entry[T]) {
	b := t.entryBox(&e)
	n := &t.nodes[id]
	n.children = append(n.children, e)
	if e.kind == nodeEntry {
		t.nodes[e.node].parent = id
	}
	n.bounds.Expand(&b)
	t.updateBound(id)
}

// updateBound merges the bounds of node id into each of its ancestors
// in turn, all the way to the root.
func (t *Index[T]) updateBound(id nodeID) {
	for p := t.nodes[id].parent; p != noParent; p = t.nodes[p].parent {
		t.nodes[p].bounds.Expand(&t.nodes[id].bounds)
		id = p
	}
}

// recalculateBound recomputes the bounds of node id from scratch.
func (t *Index[T]) recalculateBound(id nodeID) {
	bounds := EmptyBox
	for i := range t.nodes[id].children {
		b := t.entryBox(&t.nodes[id].children[i])
		bounds.Expand(&b)
	}
	t.nodes[id].bounds = bounds
}

// Node is a read-only view of one node of an Index, intended for
// callers which want to inspect or draw the tree's structure.
//
// A Node is only valid until the next mutation of the Index it came
// from.
type Node[T Bounded] struct {
	t  *Index[T]
	id nodeID
}

// Height returns the node's height. Leaf nodes, which hold items, have
// height 1 and the root has the greatest height in the tree.
func (n Node[T]) Height() int {
	return n.t.nodes[n.id].height
}

// Bounds returns the box enclosing everything below the node.
func (n Node[T]) Bounds() Box {
	return n.t.nodes[n.id].bounds
}

// IsLeaf reports whether the node's children are items.
func (n Node[T]) IsLeaf() bool {
	return n.t.nodes[n.id].isLeaf()
}

// Len returns the number of children of the node.
func (n Node[T]) Len() int {
	return len(n.t.nodes[n.id].children)
}

// Children returns the child nodes of a non-leaf node. It returns nil
// for a leaf node.
func (n Node[T]) Children() []Node[T] {
	nd := &n.t.nodes[n.id]
	if nd.isLeaf() {
		return nil
	}
	children := make([]Node[T], len(nd.children))
	for i := range nd.children {
		children[i] = Node[T]{t: n.t, id: nd.children[i].node}
	}
	return children
}

// Items returns the items held by a leaf node. It returns nil for a
// non-leaf node.
func (n Node[T]) Items() []T {
	nd := &n.t.nodes[n.id]
	if !nd.isLeaf() {
		return nil
	}
	items := make([]T, len(nd.children))
	for i := range nd.children {
		items[i] = nd.children[i].item
	}
	return items
}

// Parent returns the node's parent. The second return value is false
// for the root.
func (n Node[T]) Parent() (Node[T], bool) {
	p := n.t.nodes[n.id].parent
	if p == noParent {
		return Node[T]{}, false
	}
	return Node[T]{t: n.t, id: p}, true
}
