// Copyright 2023 The spatial (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package rtree_test

import (
	"fmt"
	"strings"

	"github.com/gogama/spatial/rtree"
)

// A place is a named point, inflated to a unit box for indexing.
type place struct {
	name string
	x, y float64
}

func (p *place) Bounds() rtree.Box {
	return rtree.CenteredBox(p.x, p.y, 1, 1)
}

func names(ps []*place) string {
	s := make([]string, len(ps))
	for i := range ps {
		s[i] = ps[i].name
	}
	return strings.Join(s, " ")
}

// Create five places along a diagonal for example purposes.
func diagonal() []*place {
	return []*place{
		{"a", 0, 0},
		{"b", 10, 10},
		{"c", 20, 20},
		{"d", 30, 30},
		{"e", 40, 40},
	}
}

func ExampleNew() {
	_, err := rtree.New[*place](4, 4)
	fmt.Println(err)

	index, _ := rtree.New[*place](rtree.DefaultMaxEntries, rtree.DefaultMinEntries)
	fmt.Println(index)
	// Output: rtree: invalid configuration (max entries 4, min entries 4): min entries must be less than max entries
	// Index{Bounds:[+Inf,+Inf,-Inf,-Inf],Len:0,Height:1,MaxEntries:4,MinEntries:2}
}

func ExampleIndex_Insert() {
	index, _ := rtree.New[*place](4, 2) // Ignore error ONLY to keep example simple.
	for _, p := range diagonal() {
		_ = index.Insert(p)
	}

	fmt.Println(index)
	// Output: Index{Bounds:[-0.5,-0.5,40.5,40.5],Len:5,Height:2,MaxEntries:4,MinEntries:2}
}

func ExampleIndex_Search() {
	index, _ := rtree.New[*place](4, 2) // Ignore error ONLY to keep example simple.
	for _, p := range diagonal() {
		_ = index.Insert(p)
	}

	rs1 := index.Search(rtree.Box{XMin: 5, YMin: 5, XMax: 25, YMax: 25}) // Search 1
	fmt.Println("Search 1:", names(rs1))

	rs2 := index.Search(rtree.Box{XMin: 100, YMin: 100, XMax: 200, YMax: 200}) // Search 2
	fmt.Println("Search 2:", len(rs2))

	rs3 := index.Search(index.Bounds()) // Search 3
	fmt.Println("Search 3:", names(rs3))
	// Output: Search 1: b c
	// Search 2: 0
	// Search 3: a b c d e
}

func ExampleIndex_SearchKNN() {
	index, _ := rtree.New[*place](4, 2) // Ignore error ONLY to keep example simple.
	for _, p := range diagonal() {
		_ = index.Insert(p)
	}

	fmt.Println(names(index.SearchKNN(rtree.Point{X: 12, Y: 12}, 2)))
	fmt.Println(names(index.SearchKNN(rtree.Point{X: 41, Y: 0}, 10)))
	// Output: b c
	// c d b e a
}

func ExampleIndex_BulkLoad() {
	var grid []*place
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			grid = append(grid, &place{fmt.Sprintf("%d%d", x, y), float64(2*x) + 0.5, float64(2*y) + 0.5})
		}
	}
	index, _ := rtree.New[*place](4, 2) // Ignore error ONLY to keep example simple.
	_ = index.BulkLoad(grid)

	fmt.Println(index)
	// Output: Index{Bounds:[0,0,7,7],Len:16,Height:2,MaxEntries:4,MinEntries:2}
}

func ExampleIndex_Walk() {
	index, _ := rtree.New[*place](4, 2) // Ignore error ONLY to keep example simple.
	for _, p := range diagonal() {
		_ = index.Insert(p)
	}

	index.Walk(func(n rtree.Node[*place]) bool {
		line := fmt.Sprintf("height %d: %s", n.Height(), n.Bounds())
		if n.IsLeaf() {
			line += " " + names(n.Items())
		}
		fmt.Println(line)
		return true
	})
	// Output: height 2: [-0.5,-0.5,40.5,40.5]
	// height 1: [-0.5,-0.5,10.5,10.5] a b
	// height 1: [19.5,19.5,40.5,40.5] c d e
}
