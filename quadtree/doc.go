package quadtree

import (
	"fmt"

	gojson "github.com/goccy/go-json"

	"github.com/danielw-oss/terrain/geometry"
)

// TreeDoc is the JSON-facing shape of a tree node: a leaf marshals as a
// bare number, a branch marshals as {"NE":...,"NW":...,"SE":...,"SW":...}.
// It implements the goccy/go-json Marshaler/Unmarshaler interfaces
// directly (the same codec the document package uses at the top level)
// so a tree nested in a document marshals through one library end to end.
type TreeDoc struct {
	Leaf  bool
	Value CellValue

	NE, NW, SE, SW *TreeDoc
}

// MarshalJSON implements the goccy/go-json Marshaler interface.
func (d *TreeDoc) MarshalJSON() ([]byte, error) {
	if d.Leaf {
		return gojson.Marshal(d.Value)
	}
	return gojson.Marshal(struct {
		NE *TreeDoc `json:"NE"`
		NW *TreeDoc `json:"NW"`
		SE *TreeDoc `json:"SE"`
		SW *TreeDoc `json:"SW"`
	}{d.NE, d.NW, d.SE, d.SW})
}

// UnmarshalJSON implements the goccy/go-json Unmarshaler interface. A
// document node is either a number (leaf) or an object with NE/NW/SE/SW
// children.
func (d *TreeDoc) UnmarshalJSON(data []byte) error {
	var num float64
	if err := gojson.Unmarshal(data, &num); err == nil {
		d.Leaf = true
		d.Value = CellValue(num)
		return nil
	}

	var branch struct {
		NE *TreeDoc `json:"NE"`
		NW *TreeDoc `json:"NW"`
		SE *TreeDoc `json:"SE"`
		SW *TreeDoc `json:"SW"`
	}
	if err := gojson.Unmarshal(data, &branch); err != nil {
		return fmt.Errorf("quadtree: tree node is neither a number nor a {NE,NW,SE,SW} object: %w", err)
	}
	if branch.NE == nil || branch.NW == nil || branch.SE == nil || branch.SW == nil {
		return fmt.Errorf("quadtree: branch node missing one of NE/NW/SE/SW")
	}
	d.NE, d.NW, d.SE, d.SW = branch.NE, branch.NW, branch.SE, branch.SW
	return nil
}

// ToDoc converts the tree to its TreeDoc representation.
func (qt *QuadTree) ToDoc() *TreeDoc {
	return nodeToDoc(qt.root)
}

func nodeToDoc(n *QuadNode) *TreeDoc {
	if n.leaf {
		return &TreeDoc{Leaf: true, Value: n.value}
	}
	return &TreeDoc{
		NE: nodeToDoc(n.children[geometry.NE]),
		NW: nodeToDoc(n.children[geometry.NW]),
		SW: nodeToDoc(n.children[geometry.SW]),
		SE: nodeToDoc(n.children[geometry.SE]),
	}
}

// TreeDocDepth returns the maximum depth of doc (0 for a bare leaf),
// used by the document codec to derive a Layout's dimension when a
// document supplies a tree but no explicit precision.
func TreeDocDepth(doc *TreeDoc) int {
	if doc.Leaf {
		return 0
	}
	max := 0
	for _, child := range []*TreeDoc{doc.NE, doc.NW, doc.SW, doc.SE} {
		if child == nil {
			continue
		}
		if d := TreeDocDepth(child) + 1; d > max {
			max = d
		}
	}
	return max
}

// LoadFromDoc builds a QuadTree over layout from a TreeDoc (as produced
// by ToDoc or decoded from a document's "tree" field).
func LoadFromDoc(layout geometry.Layout, doc *TreeDoc) *QuadTree {
	qt := &QuadTree{layout: layout, maxDepth: log2(layout.Dimension)}
	qt.root = docToNode(doc, layout.Bounds())
	return qt
}

func docToNode(doc *TreeDoc, bounds geometry.Bounds) *QuadNode {
	if doc.Leaf {
		return newLeaf(bounds, doc.Value)
	}
	n := &QuadNode{bounds: bounds}
	n.children[geometry.NE] = docToNode(doc.NE, bounds.Quadrant(geometry.NE))
	n.children[geometry.NW] = docToNode(doc.NW, bounds.Quadrant(geometry.NW))
	n.children[geometry.SW] = docToNode(doc.SW, bounds.Quadrant(geometry.SW))
	n.children[geometry.SE] = docToNode(doc.SE, bounds.Quadrant(geometry.SE))
	return n
}
