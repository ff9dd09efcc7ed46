// Copyright 2023 The spatial (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package rtree

import (
	"math"
	"strconv"
	"strings"
)

// A Box is a two-dimensional axis-aligned bounding box. A valid Box
// has XMin <= XMax and YMin <= YMax. Degenerate boxes, having zero
// width or height, are valid.
type Box struct {
	XMin float64
	YMin float64
	XMax float64
	YMax float64
}

// EmptyBox is the box which contains nothing. It is the identity
// element for Expand and Union: expanding EmptyBox by any box b gives
// b. EmptyBox is not Valid and intersects nothing.
var EmptyBox = Box{
	XMin: math.Inf(1),
	YMin: math.Inf(1),
	XMax: math.Inf(-1),
	YMax: math.Inf(-1),
}

// A Point is a location in the plane.
type Point struct {
	X float64
	Y float64
}

// CenteredBox returns the box of width w and height h centered on
// (x, y). It is the usual way to give a point payload a non-zero
// extent.
func CenteredBox(x, y, w, h float64) Box {
	return Box{
		XMin: x - w/2,
		YMin: y - h/2,
		XMax: x + w/2,
		YMax: y + h/2,
	}
}

// Valid reports whether b's minimum corner is not greater than its
// maximum corner on either axis. Boxes having a NaN coordinate are
// not valid.
func (b *Box) Valid() bool {
	return b.XMin <= b.XMax && b.YMin <= b.YMax
}

func (b *Box) Width() float64 {
	return b.XMax - b.XMin
}

func (b *Box) Height() float64 {
	return b.YMax - b.YMin
}

// Area returns the box's width times its height.
func (b *Box) Area() float64 {
	return b.Width() * b.Height()
}

// Margin returns half the perimeter of the box, i.e. the sum of its
// width and height.
func (b *Box) Margin() float64 {
	return b.Width() + b.Height()
}

func (b *Box) midX() float64 {
	return (b.XMin + b.XMax) / 2
}

func (b *Box) midY() float64 {
	return (b.YMin + b.YMax) / 2
}

// Expand grows b just enough to contain c.
func (b *Box) Expand(c *Box) {
	if c.XMin < b.XMin {
		b.XMin = c.XMin
	}
	if c.YMin < b.YMin {
		b.YMin = c.YMin
	}
	if c.XMax > b.XMax {
		b.XMax = c.XMax
	}
	if c.YMax > b.YMax {
		b.YMax = c.YMax
	}
}

// ExpandXY grows b just enough to contain the point (x, y).
func (b *Box) ExpandXY(x, y float64) {
	if x < b.XMin {
		b.XMin = x
	}
	if y < b.YMin {
		b.YMin = y
	}
	if x > b.XMax {
		b.XMax = x
	}
	if y > b.YMax {
		b.YMax = y
	}
}

// Intersects reports whether b and o share at least one point. Boxes
// which only touch along an edge or at a corner intersect.
func (b *Box) Intersects(o *Box) bool {
	return b.XMin <= o.XMax && o.XMin <= b.XMax &&
		b.YMin <= o.YMax && o.YMin <= b.YMax
}

// Contains reports whether o lies entirely within b.
func (b *Box) Contains(o *Box) bool {
	return b.XMin <= o.XMin && o.XMax <= b.XMax &&
		b.YMin <= o.YMin && o.YMax <= b.YMax
}

// SqrDistance returns the squared distance from p to the nearest point
// of b. It is zero when p lies inside b.
func (b *Box) SqrDistance(p Point) float64 {
	dx := axisDistance(p.X, b.XMin, b.XMax)
	dy := axisDistance(p.Y, b.YMin, b.YMax)
	return dx*dx + dy*dy
}

func axisDistance(v, min, max float64) float64 {
	if v < min {
		return min - v
	} else if v > max {
		return v - max
	}
	return 0
}

// String returns a compact representation of the box in the form
// [XMin,YMin,XMax,YMax]. Coordinates are rounded to single precision
// to keep the output readable.
func (b Box) String() string {
	var s strings.Builder
	s.WriteByte('[')
	s.WriteString(formatCoord(b.XMin))
	s.WriteByte(',')
	s.WriteString(formatCoord(b.YMin))
	s.WriteByte(',')
	s.WriteString(formatCoord(b.XMax))
	s.WriteByte(',')
	s.WriteString(formatCoord(b.YMax))
	s.WriteByte(']')
	return s.String()
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 32)
}

// Union returns the smallest box enclosing every box given. The union
// of no boxes is EmptyBox.
func Union(boxes ...Box) Box {
	u := EmptyBox
	for i := range boxes {
		u.Expand(&boxes[i])
	}
	return u
}

// EnlargedArea returns the area of the union of b and o, that is, the
// area b would have after being enlarged to also enclose o.
func EnlargedArea(b, o Box) float64 {
	b.Expand(&o)
	return b.Area()
}

// overlapBox is the box ranking split candidates. Despite its role as
// an overlap measure it returns the box spanning both a and b, not
// their geometric intersection, so split selection compares merged
// extents rather than true overlap.
func overlapBox(a, b Box) Box {
	return Box{
		XMin: math.Min(a.XMin, b.XMin),
		YMin: math.Min(a.YMin, b.YMin),
		XMax: math.Max(a.XMax, b.XMax),
		YMax: math.Max(a.YMax, b.YMax),
	}
}
