// Package geometry provides the 2-D primitives shared by the grid and
// quadtree back-ends: points, square bounds, polygons, and the square
// layout descriptor that maps between cell addresses and world
// coordinates.
package geometry

import "math"

// Point is a single location in the plane.
type Point struct {
	X float64
	Y float64
}

// Sub returns p - other.
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// Add returns p + other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Distance returns the Euclidean distance between p and other.
func (p Point) Distance(other Point) float64 {
	return math.Hypot(p.X-other.X, p.Y-other.Y)
}

// Equal reports whether p and other are within epsilon of each other on
// both axes.
func (p Point) Equal(other Point, epsilon float64) bool {
	return math.Abs(p.X-other.X) <= epsilon && math.Abs(p.Y-other.Y) <= epsilon
}
