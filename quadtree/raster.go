package quadtree

import "github.com/danielw-oss/terrain/geometry"

// LoadFromRaster builds a structurally-minimal QuadTree over layout from
// a dim*dim raster, row-major with index 0 = lowest y (the in-memory
// convention; the document codec handles the row-0-is-topmost wire
// format separately). Uniform sub-regions become leaves; non-uniform
// regions split and recurse.
func LoadFromRaster(layout geometry.Layout, rows [][]CellValue) *QuadTree {
	qt := &QuadTree{layout: layout, maxDepth: log2(layout.Dimension)}
	qt.root = buildFromRaster(rows, 0, 0, layout.Dimension, layout.Bounds())
	return qt
}

func buildFromRaster(rows [][]CellValue, x0, y0, size int, bounds geometry.Bounds) *QuadNode {
	if size == 1 || uniform(rows, x0, y0, size) {
		return newLeaf(bounds, rows[y0][x0])
	}

	half := size / 2
	n := &QuadNode{bounds: bounds}
	n.children[geometry.NE] = buildFromRaster(rows, x0+half, y0+half, half, bounds.Quadrant(geometry.NE))
	n.children[geometry.NW] = buildFromRaster(rows, x0, y0+half, half, bounds.Quadrant(geometry.NW))
	n.children[geometry.SW] = buildFromRaster(rows, x0, y0, half, bounds.Quadrant(geometry.SW))
	n.children[geometry.SE] = buildFromRaster(rows, x0+half, y0, half, bounds.Quadrant(geometry.SE))
	n.prune()
	return n
}

func uniform(rows [][]CellValue, x0, y0, size int) bool {
	v := rows[y0][x0]
	for y := y0; y < y0+size; y++ {
		for x := x0; x < x0+size; x++ {
			if rows[y][x] != v {
				return false
			}
		}
	}
	return true
}

// ToRaster expands the tree into a dim*dim raster, row-major with index
// 0 = lowest y, the inverse of LoadFromRaster.
func (qt *QuadTree) ToRaster() [][]CellValue {
	dim := qt.layout.Dimension
	rows := make([][]CellValue, dim)
	for y := range rows {
		rows[y] = make([]CellValue, dim)
	}
	writeRaster(qt.root, rows, 0, 0, dim)
	return rows
}

func writeRaster(n *QuadNode, rows [][]CellValue, x0, y0, size int) {
	if n.leaf {
		for y := y0; y < y0+size; y++ {
			for x := x0; x < x0+size; x++ {
				rows[y][x] = n.value
			}
		}
		return
	}
	half := size / 2
	writeRaster(n.children[geometry.NE], rows, x0+half, y0+half, half)
	writeRaster(n.children[geometry.NW], rows, x0, y0+half, half)
	writeRaster(n.children[geometry.SW], rows, x0, y0, half)
	writeRaster(n.children[geometry.SE], rows, x0+half, y0, half)
}
