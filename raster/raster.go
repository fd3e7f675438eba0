// Package raster implements polygon rasterization by horizontal
// scan-line crossings (the Darel Rex Finley public-domain algorithm),
// shared between the grid and quadtree back-ends via two small writer
// contracts.
package raster

import (
	"sort"

	"github.com/danielw-oss/terrain/geometry"
)

// CellValue is the opaque 8-bit tag written into cells.
type CellValue = uint8

// SpanWriter is the cell-write contract used by dense back-ends: it
// writes v into columns [xiFrom, xiTo) of row yi.
type SpanWriter interface {
	WriteSpan(yi, xiFrom, xiTo int, v CellValue)
}

// PointWriter is the cell-write contract used by sparse back-ends: it
// writes v at the cell containing p, descending/splitting as needed,
// and reports whether the write landed in bounds.
type PointWriter interface {
	Store(p geometry.Point, v CellValue) bool
}

// crossings returns the sorted x-crossings of polygon's edges with the
// horizontal line y, using the half-open interval
// min(p1.y,p2.y) <= y < max(p1.y,p2.y) so a shared vertex row is never
// counted twice across adjacent edges.
func crossings(poly geometry.Polygon, y float64) []float64 {
	var xs []float64
	poly.Edges(func(a, b geometry.Point) {
		lo, hi := a.Y, b.Y
		if lo > hi {
			lo, hi = hi, lo
		}
		if lo <= y && y < hi {
			x := a.X + (y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			xs = append(xs, x)
		}
	})
	sort.Float64s(xs)
	return xs
}

// FillSpans rasterizes poly into writer by writing whole row spans: for
// each scan-line it computes the x-crossings, pairs them up, and writes
// v into the columns between each pair.
func FillSpans(poly geometry.Polygon, v CellValue, layout geometry.Layout, writer SpanWriter) {
	dim := layout.Dimension
	minY := layout.CenterY - layout.HalfWidth
	minX := layout.CenterX - layout.HalfWidth

	for yi := 0; yi < dim; yi++ {
		y := minY + float64(yi)*layout.Precision
		xs := crossings(poly, y)
		if len(xs) == 0 {
			continue
		}

		for i := 0; i+1 < len(xs); i += 2 {
			xa, xb := xs[i], xs[i+1]
			xa = clamp(xa, layout.Bounds().MinX(), layout.Bounds().MaxX())
			xb = clamp(xb, layout.Bounds().MinX(), layout.Bounds().MaxX())

			xiA := int((xa - minX) / layout.Precision)
			xiB := int((xb - minX) / layout.Precision)
			if xiA < 0 {
				xiA = 0
			}
			if xiB > dim {
				xiB = dim
			}
			writer.WriteSpan(yi, xiA, xiB, v)
		}
	}
}

// FillPoints rasterizes poly into writer by the same scan-line
// crossings as FillSpans, but issues one PointWriter.Store call per
// covered cell (its center), producing the same classification function
// over the domain as FillSpans does for the grid back-end.
func FillPoints(poly geometry.Polygon, v CellValue, layout geometry.Layout, writer PointWriter) {
	dim := layout.Dimension
	minY := layout.CenterY - layout.HalfWidth
	minX := layout.CenterX - layout.HalfWidth

	for yi := 0; yi < dim; yi++ {
		y := minY + float64(yi)*layout.Precision
		xs := crossings(poly, y)
		if len(xs) == 0 {
			continue
		}

		cellCenterY := minY + (float64(yi)+0.5)*layout.Precision

		for i := 0; i+1 < len(xs); i += 2 {
			xa, xb := xs[i], xs[i+1]
			xa = clamp(xa, layout.Bounds().MinX(), layout.Bounds().MaxX())
			xb = clamp(xb, layout.Bounds().MinX(), layout.Bounds().MaxX())

			xiA := int((xa - minX) / layout.Precision)
			xiB := int((xb - minX) / layout.Precision)
			if xiA < 0 {
				xiA = 0
			}
			if xiB > dim {
				xiB = dim
			}
			for xi := xiA; xi < xiB; xi++ {
				cellCenterX := minX + (float64(xi)+0.5)*layout.Precision
				writer.Store(geometry.Point{X: cellCenterX, Y: cellCenterY}, v)
			}
		}
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
