// Copyright 2023 The spatial (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package rtree provides a dynamic, in-memory R-Tree over
// two-dimensional axis-aligned bounding boxes.
//
// An Index supports one-at-a-time insertion with automatic node
// splitting, one-shot bulk loading, range (window) search and
// k-nearest-neighbor search. The index stores references to
// caller-owned items; it never copies or inspects them beyond asking
// for their bounding box.
//
// Tree activity (splits, root growth, bulk loads) is traced at debug
// level to the schuko tracer selected by the key "spatial.rtree".
package rtree

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'spatial.rtree'
func tracer() tracing.Trace {
	return tracing.Select("spatial.rtree")
}
