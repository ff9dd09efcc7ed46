// Copyright 2023 The spatial (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package wireframe

import (
	"math"

	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/gogama/spatial/rtree"
)

// Encode serializes a frame as a size-prefixed FlatBuffers buffer. The
// first four bytes of the result are the little-endian length of the
// remainder.
func Encode(f *Frame) []byte {
	if f.Count < 0 {
		panicf("negative item count %d", f.Count)
	}

	b := flatbuffers.NewBuilder(64 + 48*len(f.Nodes))

	offsets := make([]flatbuffers.UOffsetT, len(f.Nodes))
	for i := range f.Nodes {
		n := &f.Nodes[i]
		if n.Height < 1 || uint64(n.Height) > math.MaxUint32 {
			panicf("node %d height %d out of range", i, n.Height)
		}
		nodeStart(b)
		nodeAddHeight(b, uint32(n.Height))
		nodeAddXmin(b, n.Box.XMin)
		nodeAddYmin(b, n.Box.YMin)
		nodeAddXmax(b, n.Box.XMax)
		nodeAddYmax(b, n.Box.YMax)
		offsets[i] = nodeEnd(b)
	}

	frameStartNodesVector(b, len(offsets))
	for i := len(offsets) - 1; i >= 0; i-- {
		b.PrependUOffsetT(offsets[i])
	}
	nodes := b.EndVector(len(offsets))

	frameStart(b)
	frameAddCount(b, uint64(f.Count))
	frameAddNodes(b, nodes)
	b.FinishSizePrefixed(frameEnd(b))

	return b.FinishedBytes()
}

// Decode parses a frame from a buffer produced by Encode. Malformed
// input results in an error, never a panic.
func Decode(p []byte) (Frame, error) {
	size, err := prefixSize(p)
	if err != nil {
		return Frame{}, err
	} else if uint64(size)+flatbuffers.SizeUint32 != uint64(len(p)) {
		return Frame{}, errorf("size prefix does not match buffer (Len=%d, size=%d)", len(p), size)
	}

	var f Frame
	err = safeFlatBuffersInteraction(func() error {
		t := getSizePrefixedRootAsFrame(p, 0)
		count := t.Count()
		if count > math.MaxInt {
			return errorf("item count %d overflows int", count)
		}
		f.Count = int(count)
		numNodes := t.NodesLength()
		if numNodes*flatbuffers.SizeUOffsetT > len(p) {
			return errorf("node count %d exceeds buffer (Len=%d)", numNodes, len(p))
		}
		f.Nodes = make([]NodeBox, numNodes)
		var n nodeTable
		for i := range f.Nodes {
			t.Nodes(&n, i)
			f.Nodes[i] = NodeBox{
				Height: int(n.Height()),
				Box: rtree.Box{
					XMin: n.Xmin(),
					YMin: n.Ymin(),
					XMax: n.Xmax(),
					YMax: n.Ymax(),
				},
			}
		}
		return nil
	})
	if err != nil {
		return Frame{}, wrapErr(err, "failed to decode frame")
	}
	return f, nil
}
