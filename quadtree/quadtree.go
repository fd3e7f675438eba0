package quadtree

import (
	"github.com/danielw-oss/terrain/geometry"
	"github.com/danielw-oss/terrain/raster"
)

// QuadTree is a region quadtree over a square domain described by a
// geometry.Layout. The root is replaced wholesale on Load/Reset.
type QuadTree struct {
	layout   geometry.Layout
	root     *QuadNode
	maxDepth int
}

// New allocates a QuadTree covering layout's bounds, as a single leaf
// of Default.
func New(layout geometry.Layout) *QuadTree {
	qt := &QuadTree{}
	qt.Reset(layout)
	return qt
}

// Reset replaces the layout and root with a fresh single leaf of
// Default, matching Grid.Reset's contract.
func (qt *QuadTree) Reset(layout geometry.Layout) {
	qt.layout = layout
	qt.root = newLeaf(layout.Bounds(), Default)
	qt.maxDepth = log2(layout.Dimension)
}

// Layout returns the tree's current layout.
func (qt *QuadTree) Layout() geometry.Layout {
	return qt.layout
}

// Root returns the tree's root node, for read-only traversal (e.g. by
// the document codec and interpolation package).
func (qt *QuadTree) Root() *QuadNode {
	return qt.root
}

// Depth returns the tree's realized maximum leaf depth (which may be
// less than the layout's theoretical maximum if the tree has not been
// split that deep, or if pruning collapsed deeper structure).
func (qt *QuadTree) Depth() int {
	return qt.root.depth()
}

// MaxDepth returns the layout-derived theoretical maximum depth,
// log2(dimension).
func (qt *QuadTree) MaxDepth() int {
	return qt.maxDepth
}

// Search descends to the leaf containing p and returns its value, or
// outOfBounds if p falls outside the tree's bounds. This is the bare
// tree API; Classify fixes outOfBounds to Default for the facade.
func (qt *QuadTree) Search(p geometry.Point, outOfBounds CellValue) CellValue {
	if !qt.layout.Contains(p) {
		return outOfBounds
	}
	return qt.root.search(p)
}

// Classify returns the value of the leaf containing p, or Default if p
// is outside the tree's bounds.
func (qt *QuadTree) Classify(p geometry.Point) CellValue {
	return qt.Search(p, Default)
}

// SearchNode returns the leaf node containing p, or nil if p falls
// outside the tree's bounds. Used by the interp package to compare
// neighbor identity and centers.
func (qt *QuadTree) SearchNode(p geometry.Point) *QuadNode {
	if !qt.layout.Contains(p) {
		return nil
	}
	return qt.root.searchNode(p)
}

// Store descends from the root, splitting down to the layout's target
// precision, and sets the leaf containing p to v. Reports whether the
// write landed (false if p is outside the tree's bounds, in which case
// the write is silently absorbed per spec.md §7).
func (qt *QuadTree) Store(p geometry.Point, v CellValue) bool {
	if !qt.layout.Contains(p) {
		return false
	}
	qt.root.store(p, v, 0, qt.maxDepth)
	return true
}

// Fill writes v to the entire domain by collapsing the root to a
// single leaf.
func (qt *QuadTree) Fill(v CellValue) {
	qt.root = newLeaf(qt.layout.Bounds(), v)
}

// FillPolygon rasterizes poly into the tree by the shared scan-line
// algorithm, issuing one Store per covered cell.
func (qt *QuadTree) FillPolygon(poly geometry.Polygon, v CellValue) {
	raster.FillPoints(poly, v, qt.layout, qt)
}

func log2(dimension int) int {
	depth := 0
	for d := dimension; d > 1; d >>= 1 {
		depth++
	}
	return depth
}
