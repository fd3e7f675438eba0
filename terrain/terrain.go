// Package terrain provides the Terrain facade: a thin adapter that is
// polymorphic over the grid and quadtree back-ends, exposing fill,
// classify, interp, and point store against whichever backend a given
// Terrain was constructed with. Terrain has no document load or emit
// method of its own; building a Terrain from a document and emitting
// one are done by the document package (Document.IntoTerrain, FromGrid,
// FromTree). See spec.md §4.6 and §9.
package terrain

import (
	"github.com/danielw-oss/terrain/geometry"
	"github.com/danielw-oss/terrain/grid"
	"github.com/danielw-oss/terrain/interp"
	"github.com/danielw-oss/terrain/quadtree"
)

// Backend selects which back-end a Terrain is built on.
type Backend int

const (
	BackendGrid Backend = iota
	BackendQuadtree
)

// CellValue is the opaque 8-bit tag classify/interp operate over.
type CellValue = uint8

const (
	// Default is the shared "unknown" sentinel.
	Default CellValue = 0x99
	// ErrorValue is returned by Classify on a grid-backed Terrain for
	// an out-of-bounds point; quadtree-backed terrains return Default
	// instead (spec.md §7).
	ErrorValue CellValue = 0xAB
)

// Terrain unifies the grid and quadtree back-ends behind one API.
type Terrain struct {
	backend Backend
	g       *grid.Grid
	t       *quadtree.QuadTree
}

// New constructs an empty Terrain over layout using the given backend.
func New(layout geometry.Layout, backend Backend) Terrain {
	switch backend {
	case BackendGrid:
		return Terrain{backend: backend, g: grid.New(layout)}
	case BackendQuadtree:
		return Terrain{backend: backend, t: quadtree.New(layout)}
	default:
		panic("terrain: unknown backend")
	}
}

// FromGrid wraps an existing Grid as a Terrain.
func FromGrid(g *grid.Grid) Terrain {
	return Terrain{backend: BackendGrid, g: g}
}

// FromQuadTree wraps an existing QuadTree as a Terrain.
func FromQuadTree(t *quadtree.QuadTree) Terrain {
	return Terrain{backend: BackendQuadtree, t: t}
}

// Backend reports which back-end this Terrain is built on.
func (t Terrain) Backend() Backend {
	return t.backend
}

// Grid returns the underlying Grid and true, if this Terrain is
// grid-backed.
func (t Terrain) Grid() (*grid.Grid, bool) {
	return t.g, t.backend == BackendGrid
}

// QuadTree returns the underlying QuadTree and true, if this Terrain is
// quadtree-backed.
func (t Terrain) QuadTree() (*quadtree.QuadTree, bool) {
	return t.t, t.backend == BackendQuadtree
}

// Layout returns the Terrain's layout, regardless of backend.
func (t Terrain) Layout() geometry.Layout {
	if t.backend == BackendGrid {
		return t.g.Layout()
	}
	return t.t.Layout()
}

// Fill writes v to every cell of the domain.
func (t Terrain) Fill(v CellValue) {
	if t.backend == BackendGrid {
		t.g.Fill(v)
		return
	}
	t.t.Fill(v)
}

// FillPolygon rasterizes poly into the domain with value v.
func (t Terrain) FillPolygon(poly geometry.Polygon, v CellValue) {
	if t.backend == BackendGrid {
		grid.FillPolygon(t.g, poly, v)
		return
	}
	t.t.FillPolygon(poly, v)
}

// Classify returns the cell value at p: the grid back-end returns
// ErrorValue out of bounds, the quadtree back-end returns Default.
func (t Terrain) Classify(p geometry.Point) CellValue {
	if t.backend == BackendGrid {
		return t.g.Classify(p)
	}
	return t.t.Classify(p)
}

// Interp performs bilinear interpolation at p. Only meaningful for a
// quadtree-backed Terrain; a grid-backed Terrain reports false.
func (t Terrain) Interp(p geometry.Point) (CellValue, bool) {
	if t.backend != BackendQuadtree {
		return 0, false
	}
	return interp.Query(t.t, p), true
}

// Store writes v at the cell containing p. Only meaningful for a
// quadtree-backed Terrain (the grid back-end has no single-point write
// in its public contract; use Fill/FillPolygon); a grid-backed Terrain
// reports false.
func (t Terrain) Store(p geometry.Point, v CellValue) bool {
	if t.backend != BackendQuadtree {
		return false
	}
	return t.t.Store(p, v)
}
