// Package geom provides the 2D primitives used throughout planforge:
// points and axis-aligned rectangles in floor-plan coordinates.
//
// The coordinate system is screen-like: X grows rightward and Y grows
// downward, so a rectangle's Top edge is at Y and its Bottom edge at
// Y+Height. All values are in meters.
package geom

import "math"

// Point is an immutable 2D coordinate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// DistanceTo returns the Euclidean distance between p and other.
func (p Point) DistanceTo(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Add returns the vector sum p + other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns the vector difference p - other.
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}
