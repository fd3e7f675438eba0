// Package grid implements the dense, row-major back-end of the terrain
// occupancy index: a fixed-shape array of cell values sized by a
// geometry.Layout.
package grid

import (
	"github.com/danielw-oss/terrain/geometry"
	"github.com/danielw-oss/terrain/raster"
)

// CellValue is the opaque 8-bit tag stored per cell.
type CellValue = uint8

const (
	// Default is the "unknown" sentinel, used as the fallback fill
	// value and by the quadtree back-end for out-of-bounds reads.
	Default CellValue = 0x99
	// Error is returned by a grid read that falls outside the
	// layout's bounds.
	Error CellValue = 0xAB
)

// Grid is a dense dim*dim array of cell values, row-major with y as the
// outer axis (index 0 = lowest y).
type Grid struct {
	layout  geometry.Layout
	storage []CellValue
}

// New allocates a Grid sized by layout, filled with Default.
func New(layout geometry.Layout) *Grid {
	g := &Grid{}
	g.Reset(layout)
	g.Fill(Default)
	return g
}

// Layout returns the grid's current layout.
func (g *Grid) Layout() geometry.Layout {
	return g.layout
}

// Reset replaces the layout (snapping precision as usual) and resizes
// storage. Contents are undefined until the next Fill.
func (g *Grid) Reset(layout geometry.Layout) {
	g.layout = layout
	g.storage = make([]CellValue, layout.Size)
}

// Get returns the cell at (xi, yi). No bounds checking is performed;
// callers are expected to compute in-range indices via Layout.
func (g *Grid) Get(xi, yi int) CellValue {
	return g.storage[yi*g.layout.Dimension+xi]
}

// Set writes v into the cell at (xi, yi). No bounds checking.
func (g *Grid) Set(xi, yi int, v CellValue) {
	g.storage[yi*g.layout.Dimension+xi] = v
}

// Classify returns the value of the cell containing p, or Error if p is
// outside the grid's bounds.
func (g *Grid) Classify(p geometry.Point) CellValue {
	if !g.layout.Contains(p) {
		return Error
	}
	xi, yi := g.layout.CellIndices(p)
	return g.Get(xi, yi)
}

// Fill writes v to every cell.
func (g *Grid) Fill(v CellValue) {
	for i := range g.storage {
		g.storage[i] = v
	}
}

// WriteSpan writes v into cells [xiFrom, xiTo) on row yi, clamped to the
// grid's column range. Implements the raster.SpanWriter contract.
func (g *Grid) WriteSpan(yi, xiFrom, xiTo int, v CellValue) {
	if yi < 0 || yi >= g.layout.Dimension {
		return
	}
	if xiFrom < 0 {
		xiFrom = 0
	}
	if xiTo > g.layout.Dimension {
		xiTo = g.layout.Dimension
	}
	for xi := xiFrom; xi < xiTo; xi++ {
		g.Set(xi, yi, v)
	}
}

// FillPolygon rasterizes poly into g with value v via the shared
// scan-line algorithm, writing whole row spans.
func FillPolygon(g *Grid, poly geometry.Polygon, v CellValue) {
	raster.FillSpans(poly, v, g.layout, g)
}

// Dimension returns the grid's side length in cells.
func (g *Grid) Dimension() int {
	return g.layout.Dimension
}

// Rows returns a read-only row-major view of the grid's storage, one
// slice per row, index 0 = lowest y (the in-memory convention; the
// document codec reverses this for the row-0-is-topmost wire format).
func (g *Grid) Rows() [][]CellValue {
	dim := g.layout.Dimension
	rows := make([][]CellValue, dim)
	for yi := 0; yi < dim; yi++ {
		row := make([]CellValue, dim)
		copy(row, g.storage[yi*dim:(yi+1)*dim])
		rows[yi] = row
	}
	return rows
}

// LoadRows adopts raw is row-major data verbatim (index 0 = lowest y);
// size must equal the grid's dimension.
func (g *Grid) LoadRows(rows [][]CellValue) bool {
	dim := g.layout.Dimension
	if len(rows) != dim {
		return false
	}
	for yi, row := range rows {
		if len(row) != dim {
			return false
		}
		copy(g.storage[yi*dim:(yi+1)*dim], row)
	}
	return true
}
