package geom

import (
	"math"
	"testing"
)

func TestPointDistanceTo(t *testing.T) {
	tests := []struct {
		name string
		a, b Point
		want float64
	}{
		{"Zero", Point{0, 0}, Point{0, 0}, 0},
		{"UnitX", Point{0, 0}, Point{1, 0}, 1},
		{"Pythagorean", Point{0, 0}, Point{3, 4}, 5},
		{"Negative", Point{-1, -1}, Point{2, 3}, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.DistanceTo(tt.b); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("DistanceTo = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPointAddSub(t *testing.T) {
	a := Point{1, 2}
	b := Point{3, -1}
	if got := a.Add(b); got != (Point{4, 1}) {
		t.Errorf("Add = %v, want {4 1}", got)
	}
	if got := a.Sub(b); got != (Point{-2, 3}) {
		t.Errorf("Sub = %v, want {-2 3}", got)
	}
}

func TestRectDerived(t *testing.T) {
	r := Rect{X: 2, Y: 3, Width: 4, Height: 6}
	if r.Left() != 2 || r.Right() != 6 || r.Top() != 3 || r.Bottom() != 9 {
		t.Errorf("edges = %v %v %v %v", r.Left(), r.Right(), r.Top(), r.Bottom())
	}
	if got := r.Center(); got != (Point{4, 6}) {
		t.Errorf("Center = %v, want {4 6}", got)
	}
	if got := r.Area(); got != 24 {
		t.Errorf("Area = %v, want 24", got)
	}
}

func TestRectIntersects(t *testing.T) {
	base := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"Overlapping", Rect{5, 5, 10, 10}, true},
		{"Contained", Rect{2, 2, 3, 3}, true},
		{"Disjoint", Rect{20, 20, 5, 5}, false},
		// Rectangles sharing only a boundary edge must not intersect:
		// two rooms separated by a shared wall do not overlap.
		{"TouchingRightEdge", Rect{10, 0, 5, 10}, false},
		{"TouchingBottomEdge", Rect{0, 10, 10, 5}, false},
		{"TouchingCorner", Rect{10, 10, 5, 5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Intersects(tt.other); got != tt.want {
				t.Errorf("Intersects(%v) = %v, want %v", tt.other, got, tt.want)
			}
			// Intersection is symmetric.
			if got := tt.other.Intersects(base); got != tt.want {
				t.Errorf("Intersects reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectContainsPoint(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"Interior", Point{5, 5}, true},
		{"LeftEdge", Point{0, 5}, true},
		{"RightEdge", Point{10, 5}, true},
		{"TopEdge", Point{5, 0}, true},
		{"BottomEdge", Point{5, 10}, true},
		{"Corner", Point{10, 10}, true},
		{"Outside", Point{10.001, 5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.ContainsPoint(tt.p); got != tt.want {
				t.Errorf("ContainsPoint(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestRectContainsRect(t *testing.T) {
	outer := Rect{X: 0, Y: 0, Width: 20, Height: 15}
	if !outer.ContainsRect(Rect{0, 0, 20, 15}) {
		t.Error("rect should contain itself")
	}
	if !outer.ContainsRect(Rect{1, 1, 5, 5}) {
		t.Error("rect should contain interior rect")
	}
	if outer.ContainsRect(Rect{15, 10, 10, 10}) {
		t.Error("rect should not contain overhanging rect")
	}
}

func TestRectCorners(t *testing.T) {
	r := Rect{X: 1, Y: 2, Width: 3, Height: 4}
	want := [4]Point{{1, 2}, {4, 2}, {4, 6}, {1, 6}}
	if got := r.Corners(); got != want {
		t.Errorf("Corners = %v, want %v", got, want)
	}
}
