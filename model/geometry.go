package model

import "math"

// Point represents a 2D point
type Point struct {
	X, Y float64
}

// Distance calculates the Euclidean distance to another point
func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Rect represents a rectangle with a top-left origin.
// (X0, Y0) is the top-left corner, (X1, Y1) the bottom-right corner.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// NewRect creates a rectangle from corner coordinates
func NewRect(x0, y0, x1, y1 float64) Rect {
	return Rect{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// Width returns the rectangle width
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the rectangle height
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

// Area returns the rectangle area
func (r Rect) Area() float64 {
	return r.Width() * r.Height()
}

// Center returns the center point
func (r Rect) Center() Point {
	return Point{
		X: (r.X0 + r.X1) / 2,
		Y: (r.Y0 + r.Y1) / 2,
	}
}

// IsEmpty returns true if the rectangle has no positive extent
func (r Rect) IsEmpty() bool {
	return r.X1 <= r.X0 || r.Y1 <= r.Y0
}

// IsDegenerate returns true if the rectangle cannot hold content at all.
// Degenerate regions are skipped silently throughout the pipeline.
func (r Rect) IsDegenerate() bool {
	return r.Width() < 0 || r.Height() < 0 ||
		math.IsNaN(r.X0) || math.IsNaN(r.Y0) || math.IsNaN(r.X1) || math.IsNaN(r.Y1) ||
		math.IsInf(r.X0, 0) || math.IsInf(r.Y0, 0) || math.IsInf(r.X1, 0) || math.IsInf(r.Y1, 0)
}

// Contains checks if a point is inside the rectangle
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X0 && p.X <= r.X1 && p.Y >= r.Y0 && p.Y <= r.Y1
}

// ContainsRect checks if another rectangle lies fully inside this one
func (r Rect) ContainsRect(other Rect) bool {
	return other.X0 >= r.X0 && other.X1 <= r.X1 &&
		other.Y0 >= r.Y0 && other.Y1 <= r.Y1
}

// Intersects checks if two rectangles intersect
func (r Rect) Intersects(other Rect) bool {
	return !(r.X1 < other.X0 || r.X0 > other.X1 ||
		r.Y1 < other.Y0 || r.Y0 > other.Y1)
}

// Intersection returns the intersection of two rectangles
func (r Rect) Intersection(other Rect) Rect {
	if !r.Intersects(other) {
		return Rect{}
	}
	return Rect{
		X0: math.Max(r.X0, other.X0),
		Y0: math.Max(r.Y0, other.Y0),
		X1: math.Min(r.X1, other.X1),
		Y1: math.Min(r.Y1, other.Y1),
	}
}

// Union returns the union of two rectangles
func (r Rect) Union(other Rect) Rect {
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return r
	}
	return Rect{
		X0: math.Min(r.X0, other.X0),
		Y0: math.Min(r.Y0, other.Y0),
		X1: math.Max(r.X1, other.X1),
		Y1: math.Max(r.Y1, other.Y1),
	}
}

// Expand expands the rectangle by a margin on all sides
func (r Rect) Expand(margin float64) Rect {
	return Rect{
		X0: r.X0 - margin,
		Y0: r.Y0 - margin,
		X1: r.X1 + margin,
		Y1: r.Y1 + margin,
	}
}

// HorizontalOverlap returns the width of the X range shared with another
// rectangle, or 0 if the ranges are disjoint.
func (r Rect) HorizontalOverlap(other Rect) float64 {
	left := math.Max(r.X0, other.X0)
	right := math.Min(r.X1, other.X1)
	if right <= left {
		return 0
	}
	return right - left
}

// VerticalOverlap returns the height of the Y range shared with another
// rectangle, or 0 if the ranges are disjoint.
func (r Rect) VerticalOverlap(other Rect) float64 {
	top := math.Max(r.Y0, other.Y0)
	bottom := math.Min(r.Y1, other.Y1)
	if bottom <= top {
		return 0
	}
	return bottom - top
}

// ContainsMiddle reports whether the center point of other lies inside r.
// This is the containment test used when deciding whether content belongs
// to a table or image region.
func (r Rect) ContainsMiddle(other Rect) bool {
	return r.Contains(other.Center())
}

// Color represents an opaque RGB color
type Color struct {
	R, G, B uint8
}

// Equal reports whether two colors are identical
func (c Color) Equal(other Color) bool {
	return c.R == other.R && c.G == other.G && c.B == other.B
}

// White is the most common page background color
var White = Color{R: 255, G: 255, B: 255}
