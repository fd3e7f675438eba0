package geometry

// Polygon is an ordered, closed, counter-clockwise vertex sequence with
// a cached bounds. Built once at load time via NewPolygon and immutable
// afterward.
type Polygon struct {
	vertices []Point
	bounds   Bounds
}

// NewPolygon normalizes the given vertex list into a Polygon: it closes
// the ring if needed, flips it to counter-clockwise if the shoelace sum
// is negative, and computes the square bounds enclosing the vertices
// (see BoundsFromPoints). It reports false
// (MalformedPolygon) if fewer than three distinct vertices remain after
// closing.
func NewPolygon(vertices []Point) (Polygon, bool) {
	verts := append([]Point(nil), vertices...)

	if len(verts) == 0 {
		return Polygon{}, false
	}
	if verts[0] != verts[len(verts)-1] {
		verts = append(verts, verts[0])
	}
	if distinctCount(verts) < 3 {
		return Polygon{}, false
	}

	if shoelace(verts) < 0 {
		reverse(verts)
	}

	return Polygon{
		vertices: verts,
		bounds:   BoundsFromPoints(verts),
	}, true
}

// Vertices returns the closed, counter-clockwise vertex ring.
func (p Polygon) Vertices() []Point {
	return p.vertices
}

// Bounds returns the cached square bounds enclosing p's vertices; along
// the shorter axis it is wider than the polygon's own extent.
func (p Polygon) Bounds() Bounds {
	return p.bounds
}

// Edges calls fn for each consecutive vertex pair in the closed ring.
func (p Polygon) Edges(fn func(a, b Point)) {
	for i := 0; i+1 < len(p.vertices); i++ {
		fn(p.vertices[i], p.vertices[i+1])
	}
}

func distinctCount(verts []Point) int {
	count := 0
	for i, v := range verts {
		unique := true
		for j := 0; j < i; j++ {
			if v == verts[j] {
				unique = false
				break
			}
		}
		if unique {
			count++
		}
	}
	return count
}

// shoelace returns twice the signed area of the closed ring; positive
// for counter-clockwise orientation.
func shoelace(verts []Point) float64 {
	sum := 0.0
	for i := 0; i+1 < len(verts); i++ {
		a, b := verts[i], verts[i+1]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum
}

func reverse(verts []Point) {
	for i, j := 0, len(verts)-1; i < j; i, j = i+1, j-1 {
		verts[i], verts[j] = verts[j], verts[i]
	}
}
