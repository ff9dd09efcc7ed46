// Copyright 2023 The spatial (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package wireframe captures the node structure of an rtree.Index as
// a list of per-node bounding boxes and streams such captures to a
// renderer.
//
// A wireframe stream starts with an 8-byte magic number whose fourth
// byte is the format major version. Each frame follows as a
// size-prefixed FlatBuffers table, see wireframe.fbs.
package wireframe
