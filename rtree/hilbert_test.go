// Copyright 2023 The spatial (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package rtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHilbertOfXY(t *testing.T) {
	testCases := []struct {
		name     string
		x, y     uint32
		expected uint32
	}{
		{name: "Zero"},
		{name: "OneX", x: 1, y: 0, expected: 1},
		{name: "OneXY", x: 1, y: 1, expected: 2},
		{name: "OneY", x: 0, y: 1, expected: 3},
		{name: "MaxX", x: hilbertMax, y: 0, expected: 0xffffffff},
		{name: "MaxY", x: 0, y: hilbertMax, expected: 0x55555555},
		{name: "MaxXY", x: hilbertMax, y: hilbertMax, expected: 0xaaaaaaaa},
		{name: "Middle", x: 0x8000, y: 0x8000, expected: 0x80000000},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			actual := hilbertOfXY(testCase.x, testCase.y)

			assert.Equal(t, testCase.expected, actual)
		})
	}
}

func TestHilbertScale(t *testing.T) {
	testCases := []struct {
		name     string
		r        float64
		expected uint32
	}{
		{"Zero", 0, 0},
		{"Negative", -0.5, 0},
		{"Half", 0.5, hilbertMax / 2},
		{"One", 1, hilbertMax},
		{"Beyond", 1.5, hilbertMax},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, hilbertScale(testCase.r))
		})
	}
}

func TestHilbertOfCenter(t *testing.T) {
	t.Run("ZeroExtent", func(t *testing.T) {
		actual := hilbertOfCenter(&Box{5, 5, 5, 5}, 5, 5, 0, 0)

		assert.Equal(t, uint32(0), actual)
	})

	t.Run("Corners", func(t *testing.T) {
		extent := Box{0, 0, 10, 10}
		x, y, w, h := extent.XMin, extent.YMin, extent.Width(), extent.Height()

		lowerLeft := hilbertOfCenter(&Box{0, 0, 0, 0}, x, y, w, h)
		upperLeft := hilbertOfCenter(&Box{0, 10, 0, 10}, x, y, w, h)
		upperRight := hilbertOfCenter(&Box{10, 10, 10, 10}, x, y, w, h)
		lowerRight := hilbertOfCenter(&Box{10, 0, 10, 0}, x, y, w, h)

		assert.Equal(t, uint32(0), lowerLeft)
		assert.Equal(t, uint32(0x55555555), upperLeft)
		assert.Equal(t, uint32(0xaaaaaaaa), upperRight)
		assert.Equal(t, uint32(0xffffffff), lowerRight)
	})
}

func TestHilbertSort(t *testing.T) {
	t.Run("Nil", func(t *testing.T) {
		var entries []entry[int]

		hilbertSort(entries, EmptyBox)

		assert.Empty(t, entries)
	})

	t.Run("Quadrants", func(t *testing.T) {
		// Curve order through the quadrants: lower left, upper left,
		// upper right, lower right.
		entries := []entry[int]{
			itemOf(3, Box{9, 0, 10, 1}),
			itemOf(2, Box{9, 9, 10, 10}),
			itemOf(1, Box{0, 9, 1, 10}),
			itemOf(0, Box{0, 0, 1, 1}),
		}

		hilbertSort(entries, Box{0, 0, 10, 10})

		for i := range entries {
			assert.Equal(t, i, entries[i].item)
		}
	})

	t.Run("Stable", func(t *testing.T) {
		entries := []entry[int]{
			itemOf(0, Box{1, 1, 1, 1}),
			itemOf(1, Box{1, 1, 1, 1}),
			itemOf(2, Box{1, 1, 1, 1}),
		}

		hilbertSort(entries, Box{0, 0, 2, 2})

		assert.Equal(t, 0, entries[0].item)
		assert.Equal(t, 1, entries[1].item)
		assert.Equal(t, 2, entries[2].item)
	})
}
