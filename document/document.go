// Package document implements the JSON document schema that carries a
// Terrain's state across a process boundary: a bounds/precision header
// plus exactly one of a raw grid, a tree, or a set of allow/block
// polygons. See spec.md §6.
package document

import (
	"io"

	gojson "github.com/goccy/go-json"

	"github.com/danielw-oss/terrain/geometry"
	"github.com/danielw-oss/terrain/grid"
	"github.com/danielw-oss/terrain/quadtree"
	"github.com/danielw-oss/terrain/terrain"
)

// Load decodes a document from r and validates it. precisionHint fills
// in the "precision" field when the document omits it and no grid/tree
// dimension is present to derive one from; a zero or negative hint
// leaves that case as a SchemaError, as required for polygon input.
func Load(r io.Reader, precisionHint float64) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	doc := &Document{}
	if err := gojson.Unmarshal(data, doc); err != nil {
		return nil, SchemaError{Reason: err.Error()}
	}

	if doc.Precision == nil && doc.Grid == nil && doc.Tree == nil && precisionHint > 0 {
		hint := precisionHint
		doc.Precision = &hint
	}

	if err := doc.validateSchema(); err != nil {
		return nil, err
	}
	return doc, nil
}

// Store encodes doc to w.
func Store(w io.Writer, doc *Document) error {
	data, err := gojson.Marshal(doc)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// IntoTerrain builds a Terrain from doc, dispatching to the raster
// path (grid field present), the tree path (tree field present), or
// the polygon path (allow/block rasterized over a blockValue
// background), in that priority order, per spec.md §6.
func (d *Document) IntoTerrain() (terrain.Terrain, error) {
	switch {
	case d.Grid != nil:
		return d.intoGridTerrain()
	case d.Tree != nil:
		return d.intoTreeTerrain()
	default:
		return d.intoPolygonTerrain()
	}
}

func (d *Document) intoGridTerrain() (terrain.Terrain, error) {
	dim := len(d.Grid)
	precision := d.effectivePrecision(dim)
	if precision <= 0 {
		return terrain.Terrain{}, SchemaError{Field: "precision", Reason: "cannot derive from an empty grid"}
	}

	layout := d.layout(precision)
	if layout.Dimension != dim {
		return terrain.Terrain{}, SchemaError{Field: "grid", Reason: "size does not match the layout dimension derived from bounds/precision"}
	}
	for _, row := range d.Grid {
		if len(row) != dim {
			return terrain.Terrain{}, SchemaError{Field: "grid", Reason: "row length does not match array size (grid must be square)"}
		}
	}

	g := grid.New(layout)
	if !g.LoadRows(reverseRows(d.Grid)) {
		return terrain.Terrain{}, SchemaError{Field: "grid", Reason: "size does not match the layout dimension"}
	}
	return terrain.FromGrid(g), nil
}

func (d *Document) intoTreeTerrain() (terrain.Terrain, error) {
	depth := quadtree.TreeDocDepth(d.Tree)
	dim := 1 << depth
	precision := d.effectivePrecision(dim)
	if precision <= 0 {
		return terrain.Terrain{}, SchemaError{Field: "precision", Reason: "cannot derive from an empty tree"}
	}

	layout := d.layout(precision)
	t := quadtree.LoadFromDoc(layout, d.Tree)
	return terrain.FromQuadTree(t), nil
}

func (d *Document) intoPolygonTerrain() (terrain.Terrain, error) {
	if d.Precision == nil {
		return terrain.Terrain{}, SchemaError{Field: "precision", Reason: "required for polygon input"}
	}

	layout := d.layout(*d.Precision)
	g := grid.New(layout)
	g.Fill(blockValue)

	for _, raw := range d.Allow {
		if poly, ok := toPolygon(raw); ok {
			grid.FillPolygon(g, poly, allowValue)
		}
	}
	for _, raw := range d.Block {
		if poly, ok := toPolygon(raw); ok {
			grid.FillPolygon(g, poly, blockValue)
		}
	}
	return terrain.FromGrid(g), nil
}

// effectivePrecision returns the document's explicit precision if
// present, else width/dim derived from a grid or tree's implicit
// dimension (0 if dim is 0, signalling "cannot derive").
func (d *Document) effectivePrecision(dim int) float64 {
	if d.Precision != nil {
		return *d.Precision
	}
	if dim <= 0 || d.Bounds.Width == nil {
		return 0
	}
	return *d.Bounds.Width / float64(dim)
}

func (d *Document) layout(precision float64) geometry.Layout {
	return geometry.NewLayout(precision, *d.Bounds.X, *d.Bounds.Y, *d.Bounds.Width)
}

// FromGrid builds the emission-side Document for a grid-backed
// terrain: bounds + precision + grid, row order reversed to the
// row-0-is-topmost wire convention.
func FromGrid(g *grid.Grid) *Document {
	layout := g.Layout()
	return &Document{
		Bounds:    boundsDocFrom(layout),
		Precision: floatPtr(layout.Precision),
		Grid:      reverseRows(g.Rows()),
	}
}

// FromTree builds the emission-side Document for a quadtree-backed
// terrain: bounds + precision + tree. No row reversal applies; tree
// nodes are addressed by quadrant label, not row index.
func FromTree(t *quadtree.QuadTree) *Document {
	layout := t.Layout()
	return &Document{
		Bounds:    boundsDocFrom(layout),
		Precision: floatPtr(layout.Precision),
		Tree:      t.ToDoc(),
	}
}

func boundsDocFrom(layout geometry.Layout) BoundsDoc {
	return BoundsDoc{
		X:     floatPtr(layout.CenterX),
		Y:     floatPtr(layout.CenterY),
		Width: floatPtr(layout.Width),
	}
}

func floatPtr(v float64) *float64 {
	return &v
}

// reverseRows flips row order; used both ways between the wire
// convention (row 0 = topmost, highest y) and the in-memory convention
// (row 0 = lowest y), since the operation is its own inverse.
func reverseRows(rows [][]uint8) [][]uint8 {
	out := make([][]uint8, len(rows))
	for i, row := range rows {
		out[len(rows)-1-i] = row
	}
	return out
}

func toPolygon(raw [][2]float64) (geometry.Polygon, bool) {
	verts := make([]geometry.Point, len(raw))
	for i, v := range raw {
		verts[i] = geometry.Point{X: v[0], Y: v[1]}
	}
	return geometry.NewPolygon(verts)
}
