// Copyright 2023 The spatial (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package rtree

import (
	"math"
	"sort"
)

const (
	// HilbertOrder is the order of the Hilbert curve used by the
	// SortHilbert bulk load order.
	HilbertOrder = 16
	// hilbertMax is the maximum input X- or Y-coordinate hilbertOfXY.
	//
	// In a Hilbert curve of order N, X- and Y- coordinates range from
	// zero to 2^N-1, so in a Hilbert curve of order 1, the X- and Y-
	// coordinates range from 0 to 1, and so on.
	hilbertMax = (1 << HilbertOrder) - 1
)

// hilbertSortable is an implementation of sort.Interface which sorts
// entries by precomputed Hilbert curve indices.
type hilbertSortable[T any] struct {
	entries []entry[T]
	keys    []uint32
}

func (hs *hilbertSortable[T]) Len() int {
	return len(hs.entries)
}

func (hs *hilbertSortable[T]) Less(i, j int) bool {
	return hs.keys[i] < hs.keys[j]
}

func (hs *hilbertSortable[T]) Swap(i, j int) {
	hs.entries[i], hs.entries[j] = hs.entries[j], hs.entries[i]
	hs.keys[i], hs.keys[j] = hs.keys[j], hs.keys[i]
}

// hilbertSort sorts item entries, whose bounding box is given by
// extent, according to the order given by a Hilbert curve of order
// HilbertOrder. Entries with the same Hilbert index keep their
// relative order.
func hilbertSort[T any](entries []entry[T], extent Box) {
	hs := hilbertSortable[T]{
		entries: entries,
		keys:    make([]uint32, len(entries)),
	}
	x, y, w, h := extent.XMin, extent.YMin, extent.Width(), extent.Height()
	for i := range entries {
		hs.keys[i] = hilbertOfCenter(&entries[i].box, x, y, w, h)
	}
	sort.Stable(&hs)
}

// hilbertOfCenter calculates the Hilbert curve index of the center of
// box b in the context of a set of boxes bounded by the rectangle
// (ex, ey, ex+ew, ey+eh).
func hilbertOfCenter(b *Box, ex, ey, ew, eh float64) uint32 {
	var hx uint32 // Hilbert X-coordinate between 0 and hilbertMax
	if ew > 0 {
		hx = hilbertScale((b.midX() - ex) / ew)
	}
	var hy uint32 // Hilbert Y-coordinate between 0 and hilbertMax
	if eh > 0 {
		hy = hilbertScale((b.midY() - ey) / eh)
	}
	return hilbertOfXY(hx, hy)
}

// hilbertScale maps a relative coordinate in [0, 1] onto the Hilbert
// coordinate range [0, hilbertMax].
func hilbertScale(r float64) uint32 {
	if !(r > 0) {
		return 0
	} else if r >= 1 {
		return hilbertMax
	}
	return uint32(math.Floor(hilbertMax * r))
}

// hilbertOfXY calculates the Hilbert curve index of a given
// two-dimensional coordinate, each of whose components must be in the
// range [0, hilbertMax].
//
// NOTES:
//   - Based on https://github.com/rawrunprotected/hilbert_curves, which
//     is in the public domain.
func hilbertOfXY(x, y uint32) uint32 {
	a := x ^ y
	b := 0xFFFF ^ a
	c := 0xFFFF ^ (x | y)
	d := x & (y ^ 0xFFFF)

	A := a | (b >> 1)
	B := (a >> 1) ^ a
	C := ((c >> 1) ^ (b & (d >> 1))) ^ c
	D := ((a & (c >> 1)) ^ (d >> 1)) ^ d

	a = A
	b = B
	c = C
	d = D
	A = (a & (a >> 2)) ^ (b & (b >> 2))
	B = (a & (b >> 2)) ^ (b & ((a ^ b) >> 2))
	C ^= (a & (c >> 2)) ^ (b & (d >> 2))
	D ^= (b & (c >> 2)) ^ ((a ^ b) & (d >> 2))

	a = A
	b = B
	c = C
	d = D
	A = (a & (a >> 4)) ^ (b & (b >> 4))
	B = (a & (b >> 4)) ^ (b & ((a ^ b) >> 4))
	C ^= (a & (c >> 4)) ^ (b & (d >> 4))
	D ^= (b & (c >> 4)) ^ ((a ^ b) & (d >> 4))

	a = A
	b = B
	c = C
	d = D
	C ^= (a & (c >> 8)) ^ (b & (d >> 8))
	D ^= (b & (c >> 8)) ^ ((a ^ b) & (d >> 8))

	a = C ^ (C >> 1)
	b = D ^ (D >> 1)

	i0 := x ^ y
	i1 := b | (0xFFFF ^ (i0 | a))

	i0 = (i0 | (i0 << 8)) & 0x00FF00FF
	i0 = (i0 | (i0 << 4)) & 0x0F0F0F0F
	i0 = (i0 | (i0 << 2)) & 0x33333333
	i0 = (i0 | (i0 << 1)) & 0x55555555

	i1 = (i1 | (i1 << 8)) & 0x00FF00FF
	i1 = (i1 | (i1 << 4)) & 0x0F0F0F0F
	i1 = (i1 | (i1 << 2)) & 0x33333333
	i1 = (i1 | (i1 << 1)) & 0x55555555

	index := (i1 << 1) | i0

	return index
}
