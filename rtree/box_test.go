// Copyright 2023 The spatial (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package rtree

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBox_String(t *testing.T) {
	testCases := []struct {
		name     string
		input    Box
		expected string
	}{
		{"Zero", Box{}, "[0,0,0,0]"},
		{"Integers", Box{-1, 2, -3, 4}, "[-1,2,-3,4]"},
		{"Exact", Box{-100.5, -200.25, 1234.125, 5678.0625}, "[-100.5,-200.25,1234.125,5678.0625]"},
		{"Rounded", Box{-100000.0625, 0.1, 99.0078125, -2.001953125}, "[-100000.06,0.1,99.00781,-2.0019531]"},
		{"Empty", EmptyBox, "[+Inf,+Inf,-Inf,-Inf]"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			actual := testCase.input.String()

			assert.Equal(t, testCase.expected, actual)
		})
	}
}

func TestBox_Width(t *testing.T) {
	testCases := []struct {
		name     string
		input    Box
		expected float64
	}{
		{"Zero", Box{}, 0},
		{"One", Box{0, 0, 1, 0}, 1},
		{"Two", Box{-1, 0, 1, 0}, 2},
		{"Empty", EmptyBox, math.Inf(-1)},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			actual := testCase.input.Width()

			assert.Equal(t, testCase.expected, actual)
		})
	}
}

func TestBox_Height(t *testing.T) {
	testCases := []struct {
		name     string
		input    Box
		expected float64
	}{
		{"Zero", Box{}, 0},
		{"One", Box{0, 0, 0, 1}, 1},
		{"Two", Box{0, -1, 0, 1}, 2},
		{"Empty", EmptyBox, math.Inf(-1)},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			actual := testCase.input.Height()

			assert.Equal(t, testCase.expected, actual)
		})
	}
}

func TestBox_AreaAndMargin(t *testing.T) {
	testCases := []struct {
		name         string
		input        Box
		area, margin float64
	}{
		{"Zero", Box{}, 0, 0},
		{"Unit", Box{0, 0, 1, 1}, 1, 2},
		{"Wide", Box{-2, 0, 2, 1}, 4, 5},
		{"Degenerate", Box{3, 3, 3, 10}, 0, 7},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.area, testCase.input.Area())
			assert.Equal(t, testCase.margin, testCase.input.Margin())
		})
	}
}

func TestBox_Valid(t *testing.T) {
	testCases := []struct {
		name     string
		input    Box
		expected bool
	}{
		{"Zero", Box{}, true},
		{"Unit", Box{0, 0, 1, 1}, true},
		{"Point", Box{5, 5, 5, 5}, true},
		{"InvertedX", Box{1, 0, 0, 1}, false},
		{"InvertedY", Box{0, 1, 1, 0}, false},
		{"NaN", Box{math.NaN(), 0, 1, 1}, false},
		{"Empty", EmptyBox, false},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			actual := testCase.input.Valid()

			assert.Equal(t, testCase.expected, actual)
		})
	}
}

func TestBox_midX(t *testing.T) {
	testCases := []struct {
		name     string
		input    Box
		expected float64
	}{
		{"Zero", Box{}, 0},
		{"Negative", Box{-1, -2, 0, 0}, -0.5},
		{"Positive", Box{0, 0, 1, 2}, 0.5},
		{"Straddling", Box{-2, -1, 2, 1}, 0},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			actual := testCase.input.midX()

			assert.Equal(t, testCase.expected, actual)
		})
	}
}

func TestBox_midY(t *testing.T) {
	testCases := []struct {
		name     string
		input    Box
		expected float64
	}{
		{"Zero", Box{}, 0},
		{"Negative", Box{-1, -2, 0, 0}, -1},
		{"Positive", Box{0, 0, 1, 2}, 1},
		{"Straddling", Box{-2, -1, 2, 1}, 0},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			actual := testCase.input.midY()

			assert.Equal(t, testCase.expected, actual)
		})
	}
}

func TestBox_Expand(t *testing.T) {
	testCases := []struct {
		name           string
		b, c, expected Box
	}{
		{"Zero", Box{}, Box{}, Box{}},
		{"Empty", EmptyBox, EmptyBox, EmptyBox},
		{"ZeroByEmpty", Box{}, EmptyBox, Box{}},
		{"EmptyByZero", EmptyBox, Box{}, Box{}},
		{"EmptyByUnit", EmptyBox, Box{-1, -1, 1, 1}, Box{-1, -1, 1, 1}},
		{"GrowXMin", Box{-1, -1, 1, 1}, Box{-2, -0.5, 0, 0.5}, Box{-2, -1, 1, 1}},
		{"GrowYMin", Box{-1, -1, 1, 1}, Box{-0.5, -2, 0, 0.5}, Box{-1, -2, 1, 1}},
		{"GrowXMax", Box{-1, -1, 1, 1}, Box{-0.5, -0.5, 2, 0.5}, Box{-1, -1, 2, 1}},
		{"GrowYMax", Box{-1, -1, 1, 1}, Box{-0.5, -0.5, 0.5, 2}, Box{-1, -1, 1, 2}},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			b, c := testCase.b, testCase.c

			b.Expand(&c)

			assert.Equal(t, testCase.c, c, "Parameter box must not change.")
			assert.Equal(t, testCase.expected, b)
		})
	}
}

func TestBox_ExpandXY(t *testing.T) {
	testCases := []struct {
		name     string
		b        Box
		x, y     float64
		expected Box
	}{
		{"Zero", Box{}, 0, 0, Box{}},
		{"Empty", EmptyBox, 0, 0, Box{}},
		{"Unchanged", Box{0, 0, 1, 1}, 0.5, 0.5, Box{0, 0, 1, 1}},
		{"Left", Box{-1, -1, 1, 1}, -2, 0, Box{-2, -1, 1, 1}},
		{"Down", Box{-1, -1, 1, 1}, 0, -2, Box{-1, -2, 1, 1}},
		{"Right", Box{-1, -1, 1, 1}, 2, 0, Box{-1, -1, 2, 1}},
		{"Up", Box{-1, -1, 1, 1}, 0, 2, Box{-1, -1, 1, 2}},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			b := testCase.b

			b.ExpandXY(testCase.x, testCase.y)

			assert.Equal(t, testCase.expected, b)
		})
	}
}

func TestBox_Intersects(t *testing.T) {
	testCases := []struct {
		name     string
		b, c     Box
		expected bool
	}{
		{"Zero", Box{}, Box{}, true},
		{"Empty", EmptyBox, EmptyBox, false},
		{"ZeroEmpty", Box{}, EmptyBox, false},
		{"EmptyZero", EmptyBox, Box{}, false},
		{"FullyContained", Box{-2, -2, 2, 2}, Box{-1, -1, 1, 1}, true},
		{"OverlapLeft", Box{-2, -2, 2, 2}, Box{-3, -1, -1, 1}, true},
		{"OverlapDown", Box{-2, -2, 2, 2}, Box{-1, -3, 1, -1}, true},
		{"TouchRight", Box{-2, -2, 2, 2}, Box{2, -1, 3, 1}, true},
		{"TouchCorner", Box{-2, -2, 2, 2}, Box{2, 2, 3, 3}, true},
		{"IsLeftOf", Box{-2, -2, 0, 0}, Box{-100, -2, -50, 0}, false},
		{"IsBelow", Box{-2, -2, 0, 0}, Box{-2, -100, 0, -50}, false},
		{"IsRightOf", Box{-2, -2, 0, 2}, Box{50, -2, 100, 1}, false},
		{"IsAbove", Box{-2, -2, 2, 2}, Box{1, 50, 2, 100}, false},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			b, c := testCase.b, testCase.c

			assert.Equal(t, testCase.expected, b.Intersects(&c))
			assert.Equal(t, testCase.expected, c.Intersects(&b), "Intersects must be symmetric.")
		})
	}
}

func TestBox_Contains(t *testing.T) {
	outer := Box{0, 0, 10, 10}

	assert.True(t, outer.Contains(&Box{1, 1, 2, 2}))
	assert.True(t, outer.Contains(&outer))
	assert.False(t, outer.Contains(&Box{9, 9, 11, 10}))
	assert.False(t, outer.Contains(&Box{-1, 0, 1, 1}))
}

func TestBox_SqrDistance(t *testing.T) {
	b := Box{0, 0, 2, 2}
	testCases := []struct {
		name     string
		p        Point
		expected float64
	}{
		{"Inside", Point{1, 1}, 0},
		{"OnEdge", Point{2, 1}, 0},
		{"Left", Point{-3, 1}, 9},
		{"Above", Point{1, 6}, 16},
		{"Diagonal", Point{5, 6}, 25},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, b.SqrDistance(testCase.p))
		})
	}
}

func TestCenteredBox(t *testing.T) {
	assert.Equal(t, Box{-0.5, 9.5, 0.5, 10.5}, CenteredBox(0, 10, 1, 1))
	assert.Equal(t, Box{3, 4, 3, 4}, CenteredBox(3, 4, 0, 0))
}

func TestUnion(t *testing.T) {
	t.Run("None", func(t *testing.T) {
		assert.Equal(t, EmptyBox, Union())
	})

	t.Run("One", func(t *testing.T) {
		assert.Equal(t, Box{1, 2, 3, 4}, Union(Box{1, 2, 3, 4}))
	})

	t.Run("Many", func(t *testing.T) {
		actual := Union(Box{0, 0, 1, 1}, Box{5, -3, 6, -2}, Box{-1, 2, 0, 4})

		assert.Equal(t, Box{-1, -3, 6, 4}, actual)
	})
}

func TestEnlargedArea(t *testing.T) {
	testCases := []struct {
		name     string
		b, o     Box
		expected float64
	}{
		{"Contained", Box{0, 0, 4, 4}, Box{1, 1, 2, 2}, 16},
		{"Disjoint", Box{0, 0, 1, 1}, Box{2, 2, 3, 3}, 9},
		{"Degenerate", Box{0, 0, 0, 0}, Box{0, 0, 0, 5}, 0},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, EnlargedArea(testCase.b, testCase.o))
			assert.Equal(t, testCase.expected, EnlargedArea(testCase.o, testCase.b))
		})
	}
}

func TestOverlapBox(t *testing.T) {
	t.Run("SpansBothBoxes", func(t *testing.T) {
		actual := overlapBox(Box{0, 0, 1, 1}, Box{3, -1, 4, 0.5})

		assert.Equal(t, Box{0, -1, 4, 1}, actual)
	})

	t.Run("SameForEveryPartition", func(t *testing.T) {
		boxes := []Box{{0, 0, 1, 1}, {2, 0, 3, 1}, {4, 0, 5, 1}, {6, 0, 7, 1}, {8, 0, 9, 1}}
		expected := Union(boxes...)
		for i := 1; i < len(boxes); i++ {
			actual := overlapBox(Union(boxes[:i]...), Union(boxes[i:]...))

			assert.Equal(t, expected, actual, "partition at %d", i)
		}
	})
}
