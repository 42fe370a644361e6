package model

import (
	"math"
	"testing"
)

func TestRectBasics(t *testing.T) {
	r := NewRect(10, 20, 110, 70)

	if r.Width() != 100 {
		t.Errorf("Width() = %v, want 100", r.Width())
	}
	if r.Height() != 50 {
		t.Errorf("Height() = %v, want 50", r.Height())
	}
	if r.Area() != 5000 {
		t.Errorf("Area() = %v, want 5000", r.Area())
	}

	center := r.Center()
	if center.X != 60 || center.Y != 45 {
		t.Errorf("Center() = %v, want {60 45}", center)
	}
}

func TestRectIsDegenerate(t *testing.T) {
	tests := []struct {
		name string
		rect Rect
		want bool
	}{
		{"normal", NewRect(0, 0, 10, 10), false},
		{"zero area point", NewRect(5, 5, 5, 5), false},
		{"negative width", NewRect(10, 0, 0, 10), true},
		{"negative height", NewRect(0, 10, 10, 0), true},
		{"nan coordinate", Rect{X0: math.NaN(), Y0: 0, X1: 10, Y1: 10}, true},
		{"infinite coordinate", Rect{X0: 0, Y0: 0, X1: math.Inf(1), Y1: 10}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rect.IsDegenerate(); got != tt.want {
				t.Errorf("IsDegenerate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectIntersectionAndUnion(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(5, 5, 15, 15)

	inter := a.Intersection(b)
	want := NewRect(5, 5, 10, 10)
	if inter != want {
		t.Errorf("Intersection = %v, want %v", inter, want)
	}

	union := a.Union(b)
	want = NewRect(0, 0, 15, 15)
	if union != want {
		t.Errorf("Union = %v, want %v", union, want)
	}

	// Disjoint rectangles have an empty intersection
	c := NewRect(20, 20, 30, 30)
	if got := a.Intersection(c); got != (Rect{}) {
		t.Errorf("disjoint Intersection = %v, want zero rect", got)
	}
}

func TestRectContainsMiddle(t *testing.T) {
	table := NewRect(100, 100, 300, 200)

	tests := []struct {
		name string
		rect Rect
		want bool
	}{
		{"fully inside", NewRect(120, 120, 180, 150), true},
		{"center inside, edges outside", NewRect(90, 90, 310, 210), true},
		{"center outside", NewRect(280, 180, 500, 400), false},
		{"fully outside", NewRect(400, 400, 500, 500), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := table.ContainsMiddle(tt.rect); got != tt.want {
				t.Errorf("ContainsMiddle(%v) = %v, want %v", tt.rect, got, tt.want)
			}
		})
	}
}

func TestRectOverlaps(t *testing.T) {
	a := NewRect(0, 0, 100, 20)
	b := NewRect(50, 10, 150, 40)

	if got := a.HorizontalOverlap(b); got != 50 {
		t.Errorf("HorizontalOverlap = %v, want 50", got)
	}
	if got := a.VerticalOverlap(b); got != 10 {
		t.Errorf("VerticalOverlap = %v, want 10", got)
	}

	c := NewRect(200, 0, 300, 20)
	if got := a.HorizontalOverlap(c); got != 0 {
		t.Errorf("disjoint HorizontalOverlap = %v, want 0", got)
	}
}

func TestColorEqual(t *testing.T) {
	if !White.Equal(Color{R: 255, G: 255, B: 255}) {
		t.Error("White should equal itself")
	}
	if White.Equal(Color{R: 255, G: 255, B: 254}) {
		t.Error("nearly white should not equal white")
	}
}
