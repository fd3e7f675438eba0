package geometry

import "math"

// Bounds is an axis-aligned square region: a center point plus a
// half-width. A zero-value Bounds (half-width 0) is a degenerate point;
// a NaN half-width means "cleared" per spec.
type Bounds struct {
	Center    Point
	HalfWidth float64
}

// NewBounds builds a square Bounds from a center and half-width.
func NewBounds(center Point, halfWidth float64) Bounds {
	return Bounds{Center: center, HalfWidth: halfWidth}
}

// BoundsFromPoints computes the square axis-aligned bounds enclosing the
// given points: the half-width is the larger of the x and y extents,
// halved, and the center is the midpoint of the enclosing box.
func BoundsFromPoints(points []Point) Bounds {
	if len(points) == 0 {
		return Bounds{HalfWidth: math.NaN()}
	}

	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points[1:] {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	halfWidth := math.Max(maxX-minX, maxY-minY) / 2
	center := Point{X: (minX + maxX) / 2, Y: (minY + maxY) / 2}
	return Bounds{Center: center, HalfWidth: halfWidth}
}

// Cleared reports whether this Bounds has been reset (half-width is NaN).
func (b Bounds) Cleared() bool {
	return math.IsNaN(b.HalfWidth)
}

// Contains reports whether p lies within b, borders inclusive.
func (b Bounds) Contains(p Point) bool {
	return math.Abs(p.X-b.Center.X) <= b.HalfWidth && math.Abs(p.Y-b.Center.Y) <= b.HalfWidth
}

// MinX, MaxX, MinY, MaxY are the axis extents of b.
func (b Bounds) MinX() float64 { return b.Center.X - b.HalfWidth }
func (b Bounds) MaxX() float64 { return b.Center.X + b.HalfWidth }
func (b Bounds) MinY() float64 { return b.Center.Y - b.HalfWidth }
func (b Bounds) MaxY() float64 { return b.Center.Y + b.HalfWidth }

// Width returns the full side length of b.
func (b Bounds) Width() float64 {
	return 2 * b.HalfWidth
}

// Constrain clamps p into b on each axis.
func (b Bounds) Constrain(p Point) Point {
	return Point{
		X: clamp(p.X, b.MinX(), b.MaxX()),
		Y: clamp(p.Y, b.MinY(), b.MaxY()),
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Quadrant returns the child bounds for the given quadrant of b, each
// with half the half-width of b.
func (b Bounds) Quadrant(q Quadrant) Bounds {
	childHalf := b.HalfWidth / 2
	switch q {
	case NE:
		return Bounds{Center: Point{X: b.Center.X + childHalf, Y: b.Center.Y + childHalf}, HalfWidth: childHalf}
	case NW:
		return Bounds{Center: Point{X: b.Center.X - childHalf, Y: b.Center.Y + childHalf}, HalfWidth: childHalf}
	case SW:
		return Bounds{Center: Point{X: b.Center.X - childHalf, Y: b.Center.Y - childHalf}, HalfWidth: childHalf}
	case SE:
		return Bounds{Center: Point{X: b.Center.X + childHalf, Y: b.Center.Y - childHalf}, HalfWidth: childHalf}
	default:
		panic("geometry: unknown quadrant")
	}
}

// QuadrantOf returns which quadrant of b contains p, resolving boundary
// ties toward positive-x then positive-y.
func (b Bounds) QuadrantOf(p Point) Quadrant {
	east := p.X >= b.Center.X
	north := p.Y >= b.Center.Y
	switch {
	case east && north:
		return NE
	case !east && north:
		return NW
	case !east && !north:
		return SW
	default:
		return SE
	}
}

// Quadrant names a sub-square of a Bounds or QuadNode: NE (+x,+y),
// NW (-x,+y), SW (-x,-y), SE (+x,-y).
type Quadrant int

const (
	NE Quadrant = iota
	NW
	SW
	SE
)

func (q Quadrant) String() string {
	switch q {
	case NE:
		return "NE"
	case NW:
		return "NW"
	case SW:
		return "SW"
	case SE:
		return "SE"
	default:
		return "?"
	}
}
