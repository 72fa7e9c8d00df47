package geom

// Rect is an axis-aligned rectangle anchored at its top-left corner.
// Width and Height must be non-negative; a zero-size Rect is valid and
// behaves as a point for containment queries.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Left returns the X coordinate of the left edge.
func (r Rect) Left() float64 { return r.X }

// Right returns the X coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Top returns the Y coordinate of the top edge.
func (r Rect) Top() float64 { return r.Y }

// Bottom returns the Y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Area returns Width * Height.
func (r Rect) Area() float64 { return r.Width * r.Height }

// ContainsPoint reports whether p lies inside r, edges included.
func (r Rect) ContainsPoint(p Point) bool {
	return r.Left() <= p.X && p.X <= r.Right() &&
		r.Top() <= p.Y && p.Y <= r.Bottom()
}

// Intersects reports whether r and other share interior area.
// Rectangles that touch only along an edge or at a corner do not
// intersect; two adjacent rooms sharing a wall are not overlapping.
func (r Rect) Intersects(other Rect) bool {
	return !(r.Right() <= other.Left() ||
		r.Left() >= other.Right() ||
		r.Bottom() <= other.Top() ||
		r.Top() >= other.Bottom())
}

// ContainsRect reports whether other lies entirely inside r, edges included.
func (r Rect) ContainsRect(other Rect) bool {
	return r.Left() <= other.Left() && other.Right() <= r.Right() &&
		r.Top() <= other.Top() && other.Bottom() <= r.Bottom()
}

// Corners returns the four corner points in clockwise order starting
// from the top-left.
func (r Rect) Corners() [4]Point {
	return [4]Point{
		{X: r.Left(), Y: r.Top()},
		{X: r.Right(), Y: r.Top()},
		{X: r.Right(), Y: r.Bottom()},
		{X: r.Left(), Y: r.Bottom()},
	}
}
