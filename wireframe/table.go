// Copyright 2023 The spatial (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package wireframe

import flatbuffers "github.com/google/flatbuffers/go"

// Table accessors and builders for the schema in wireframe.fbs, laid
// out the way flatc lays out generated Go code.

type frameTable struct {
	_tab flatbuffers.Table
}

func getSizePrefixedRootAsFrame(buf []byte, offset flatbuffers.UOffsetT) *frameTable {
	n := flatbuffers.GetUOffsetT(buf[offset+flatbuffers.SizeUint32:])
	x := &frameTable{}
	x.Init(buf, n+offset+flatbuffers.SizeUint32)
	return x
}

func (rcv *frameTable) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *frameTable) Count() uint64 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		return rcv._tab.GetUint64(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *frameTable) Nodes(obj *nodeTable, j int) bool {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(6))
	if o != 0 {
		x := rcv._tab.Vector(o)
		x += flatbuffers.UOffsetT(j) * 4
		x = rcv._tab.Indirect(x)
		obj.Init(rcv._tab.Bytes, x)
		return true
	}
	return false
}

func (rcv *frameTable) NodesLength() int {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(6))
	if o != 0 {
		return rcv._tab.VectorLen(o)
	}
	return 0
}

func frameStart(builder *flatbuffers.Builder) {
	builder.StartObject(2)
}

func frameAddCount(builder *flatbuffers.Builder, count uint64) {
	builder.PrependUint64Slot(0, count, 0)
}

func frameAddNodes(builder *flatbuffers.Builder, nodes flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(1, nodes, 0)
}

func frameStartNodesVector(builder *flatbuffers.Builder, numElems int) flatbuffers.UOffsetT {
	return builder.StartVector(4, numElems, 4)
}

func frameEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}

type nodeTable struct {
	_tab flatbuffers.Table
}

func (rcv *nodeTable) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *nodeTable) Height() uint32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		return rcv._tab.GetUint32(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *nodeTable) float64At(vtableOffset flatbuffers.VOffsetT) float64 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(vtableOffset))
	if o != 0 {
		return rcv._tab.GetFloat64(o + rcv._tab.Pos)
	}
	return 0.0
}

func (rcv *nodeTable) Xmin() float64 { return rcv.float64At(6) }
func (rcv *nodeTable) Ymin() float64 { return rcv.float64At(8) }
func (rcv *nodeTable) Xmax() float64 { return rcv.float64At(10) }
func (rcv *nodeTable) Ymax() float64 { return rcv.float64At(12) }

func nodeStart(builder *flatbuffers.Builder) {
	builder.StartObject(5)
}

func nodeAddHeight(builder *flatbuffers.Builder, height uint32) {
	builder.PrependUint32Slot(0, height, 0)
}

func nodeAddXmin(builder *flatbuffers.Builder, xmin float64) {
	builder.PrependFloat64Slot(1, xmin, 0.0)
}

func nodeAddYmin(builder *flatbuffers.Builder, ymin float64) {
	builder.PrependFloat64Slot(2, ymin, 0.0)
}

func nodeAddXmax(builder *flatbuffers.Builder, xmax float64) {
	builder.PrependFloat64Slot(3, xmax, 0.0)
}

func nodeAddYmax(builder *flatbuffers.Builder, ymax float64) {
	builder.PrependFloat64Slot(4, ymax, 0.0)
}

func nodeEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}
