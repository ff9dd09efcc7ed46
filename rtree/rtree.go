// Copyright 2023 The spatial (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package rtree

import "fmt"

const (
	// DefaultMaxEntries is the node capacity used by most callers.
	DefaultMaxEntries = 4
	// DefaultMinEntries is the minimum fill of a non-root node used by
	// most callers.
	DefaultMinEntries = 2
)

// Bounded is implemented by anything which can be stored in an Index.
// An item's bounding box is read once, when the item is added, and
// must not change while the item is in the index.
type Bounded interface {
	Bounds() Box
}

// SortOrder selects how BulkLoad orders items before packing them into
// nodes.
type SortOrder int

const (
	// SortMinXY orders items by the minimum X-coordinate of their
	// bounding box, breaking ties by minimum Y-coordinate.
	SortMinXY SortOrder = iota
	// SortHilbert orders items by the position of their bounding box
	// center along a Hilbert curve of order HilbertOrder laid over the
	// extent of all items. It usually produces less overlap between
	// sibling nodes than SortMinXY.
	SortHilbert
)

func (o SortOrder) String() string {
	switch o {
	case SortMinXY:
		return "minxy"
	case SortHilbert:
		return "hilbert"
	default:
		return fmt.Sprintf("SortOrder(%d)", int(o))
	}
}

// ParseSortOrder returns the SortOrder whose String form is s.
func ParseSortOrder(s string) (SortOrder, error) {
	switch s {
	case "minxy":
		return SortMinXY, nil
	case "hilbert":
		return SortHilbert, nil
	default:
		return SortMinXY, fmtErr("unknown sort order %q", s)
	}
}

// An Option customizes an Index created by New.
type Option func(*options)

type options struct {
	order SortOrder
}

// WithBulkOrder sets the order in which BulkLoad packs items. The
// default is SortMinXY.
func WithBulkOrder(order SortOrder) Option {
	return func(o *options) {
		o.order = order
	}
}

// Index is a dynamic R-Tree of items of type T.
//
// An Index is not safe for concurrent use. Writes must be serialized by
// the caller, and concurrent queries are only safe while no write is
// in progress.
type Index[T Bounded] struct {
	// nodes is the node arena. Nodes are only ever appended, except by
	// BulkLoad, which replaces the whole arena.
	nodes []node[T]
	// root is the handle of the root node.
	root nodeID
	// maxEntries is the maximum number of children of any node.
	maxEntries int
	// minEntries is the minimum number of children of any non-root
	// node built by Insert.
	minEntries int
	// count is the number of items in the index.
	count int
	// order is the BulkLoad sort order.
	order SortOrder
}

// New creates an empty Index whose nodes hold at most maxEntries and,
// except for the root, at least minEntries children.
//
// Both values must be at least 1 and minEntries must be less than
// maxEntries. In addition, splitting a node of maxEntries+1 children
// must be able to leave minEntries children on each side, so
// 2*minEntries may not exceed maxEntries+1. A *ConfigurationError is
// returned if any constraint is violated.
func New[T Bounded](maxEntries, minEntries int, opts ...Option) (*Index[T], error) {
	var reason string
	switch {
	case minEntries < 1:
		reason = "min entries must be at least 1"
	case maxEntries < 1:
		reason = "max entries must be at least 1"
	case minEntries >= maxEntries:
		reason = "min entries must be less than max entries"
	case 2*minEntries > maxEntries+1:
		reason = "a split of max+1 entries cannot leave min entries on both sides"
	}
	if reason != "" {
		return nil, &ConfigurationError{MaxEntries: maxEntries, MinEntries: minEntries, Reason: reason}
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	t := &Index[T]{
		maxEntries: maxEntries,
		minEntries: minEntries,
		order:      o.order,
	}
	t.reset()
	return t, nil
}

// reset discards all nodes and installs a fresh, empty leaf root.
func (t *Index[T]) reset() {
	t.nodes = make([]node[T], 0, 1)
	t.root = t.construct(nil, 1)
	t.count = 0
}

// Len returns the number of items in the index.
func (t *Index[T]) Len() int {
	return t.count
}

// MaxEntries returns the maximum number of children per node.
func (t *Index[T]) MaxEntries() int {
	return t.maxEntries
}

// MinEntries returns the minimum number of children per non-root node.
func (t *Index[T]) MinEntries() int {
	return t.minEntries
}

// Height returns the height of the root node. An empty index, or one
// whose root holds items directly, has height 1.
func (t *Index[T]) Height() int {
	return t.nodes[t.root].height
}

// Bounds returns the box enclosing every item in the index, or
// EmptyBox if the index is empty.
func (t *Index[T]) Bounds() Box {
	return t.nodes[t.root].bounds
}

// Root returns a read-only view of the root node.
func (t *Index[T]) Root() Node[T] {
	return Node[T]{t: t, id: t.root}
}

// Walk calls fn for every node in the tree, visiting each node before
// its children. If fn returns false, the children of that node are
// skipped.
func (t *Index[T]) Walk(fn func(n Node[T]) bool) {
	stack := []nodeID{t.root}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(Node[T]{t: t, id: id}) {
			continue
		}
		n := &t.nodes[id]
		if n.isLeaf() {
			continue
		}
		for i := len(n.children) - 1; i >= 0; i-- {
			stack = append(stack, n.children[i].node)
		}
	}
}

// String returns a summary description of the index.
func (t *Index[T]) String() string {
	return fmt.Sprintf("Index{Bounds:%s,Len:%d,Height:%d,MaxEntries:%d,MinEntries:%d}",
		t.Bounds(), t.count, t.Height(), t.maxEntries, t.minEntries)
}
