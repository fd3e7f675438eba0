// Package interp implements linear and bilinear sampling over a region
// quadtree, where neighboring leaves may sit at different tree depths
// and therefore have different sizes. The formulas are preserved
// verbatim from the original C++ implementation (see DESIGN.md); the
// "distance heuristic" branch in Linear is intentionally left as-is per
// spec.md's Open Questions section.
package interp

import (
	"math"

	"github.com/danielw-oss/terrain/geometry"
	"github.com/danielw-oss/terrain/quadtree"
)

// Linear interpolates between two leaves n1 and n2 at the query point
// at. If n1 and n2 are the same leaf, its value is returned directly.
func Linear(at geometry.Point, n1, n2 *quadtree.QuadNode) quadtree.CellValue {
	if n1 == n2 {
		return n1.Value()
	}
	return linearCore(at, n1.Bounds().Center, n1.Value(), n2.Bounds().Center, n2.Value())
}

// linearCore is the shared distance-weighted blend used both by Linear
// (between two real leaves) and by Bilinear (between its two synthetic
// intermediate samples).
func linearCore(at geometry.Point, c1 geometry.Point, v1 quadtree.CellValue, c2 geometry.Point, v2 quadtree.CellValue) quadtree.CellValue {
	dist1 := c1.Distance(at)
	dist2 := c2.Distance(at)
	dist12 := c1.Distance(c2)

	// Far-extrapolation heuristic, preserved as written in the
	// original source; see spec.md's Open Questions.
	if dist12 < dist1 {
		return v2
	}
	if dist12 < dist2 {
		return v1
	}

	combined := dist1 + dist2
	if combined == 0 {
		return v1
	}
	norm1 := 1 - dist1/combined
	norm2 := 1 - dist2/combined
	return roundCell(norm1*float64(v1) + norm2*float64(v2))
}

// Bilinear interpolates across the four leaves touching the query
// point at: this (the containing leaf), xn (x-axis neighbor), yn
// (y-axis neighbor), and dn (diagonal neighbor). Degenerates to Linear
// along one axis at a domain border, where two of the four neighbors
// coincide.
func Bilinear(at geometry.Point, this, xn, yn, dn *quadtree.QuadNode) quadtree.CellValue {
	if xn == dn {
		// top/bottom border: no distinct diagonal neighbor
		return Linear(geometry.Point{X: at.X, Y: xn.Bounds().Center.Y}, this, xn)
	}
	if yn == dn {
		// left/right border
		return Linear(geometry.Point{X: yn.Bounds().Center.X, Y: at.Y}, this, yn)
	}

	upperPoint := geometry.Point{X: at.X, Y: xn.Bounds().Center.Y}
	upperValue := Linear(upperPoint, this, xn)

	lowerPoint := geometry.Point{X: at.X, Y: yn.Bounds().Center.Y}
	lowerValue := Linear(lowerPoint, yn, dn)

	return linearCore(at, upperPoint, upperValue, lowerPoint, lowerValue)
}

// Query performs a full bilinear interpolation over tree at point p: it
// locates the containing leaf, looks up its three neighbors by
// stepping one leaf-half-width toward the nearer edge on each axis, and
// blends the four. Returns quadtree.Default if p is outside the tree's
// bounds.
func Query(tree *quadtree.QuadTree, p geometry.Point) quadtree.CellValue {
	this := tree.SearchNode(p)
	if this == nil {
		return quadtree.Default
	}

	layout := tree.Layout()
	halfWidth := this.Bounds().HalfWidth
	center := this.Bounds().Center

	signX := 1.0
	if p.X < center.X {
		signX = -1
	}
	signY := 1.0
	if p.Y < center.Y {
		signY = -1
	}

	xnPoint := layout.Constrain(geometry.Point{X: p.X + signX*halfWidth, Y: p.Y})
	ynPoint := layout.Constrain(geometry.Point{X: p.X, Y: p.Y + signY*halfWidth})
	dnPoint := layout.Constrain(geometry.Point{X: p.X + signX*halfWidth, Y: p.Y + signY*halfWidth})

	xn := tree.SearchNode(xnPoint)
	yn := tree.SearchNode(ynPoint)
	dn := tree.SearchNode(dnPoint)

	return Bilinear(p, this, xn, yn, dn)
}

// roundCell rounds v half-away-from-zero into a CellValue, clamping to
// the representable byte range.
func roundCell(v float64) quadtree.CellValue {
	r := math.Round(v)
	if r < 0 {
		r = 0
	}
	if r > 255 {
		r = 255
	}
	return quadtree.CellValue(r)
}
