package document

import (
	"github.com/go-playground/validator/v10"

	"github.com/danielw-oss/terrain/quadtree"
)

// allowValue and blockValue are the fill values used by the polygon load
// path (spec.md §6 "Load semantics"); blockValue doubles as the
// background fill before allow/block polygons are rasterized.
const (
	allowValue = 0
	blockValue = 0x99
)

// BoundsDoc is the wire shape of a document's "bounds" field. Fields are
// pointers so validator's "required" tag can distinguish an absent
// field from an explicit zero (a center at the origin is a perfectly
// legal bounds).
type BoundsDoc struct {
	X     *float64 `json:"x" validate:"required"`
	Y     *float64 `json:"y" validate:"required"`
	Width *float64 `json:"width" validate:"required,gt=0"`
}

// Document is the top-level JSON document schema from spec.md §6: a
// bounds header plus exactly one of a grid, a tree, or a set of
// allow/block polygons.
type Document struct {
	Bounds    BoundsDoc         `json:"bounds"`
	Precision *float64          `json:"precision,omitempty" validate:"omitempty,gt=0"`
	Grid      [][]uint8         `json:"grid,omitempty"`
	Tree      *quadtree.TreeDoc `json:"tree,omitempty"`
	Allow     [][][2]float64    `json:"allow,omitempty"`
	Block     [][][2]float64    `json:"block,omitempty"`
}

var validate = validator.New()

// validateSchema runs the struct-tag validation pass and then the one rule
// the tags can't express on their own: precision is required once
// neither grid nor tree supplies an implicit dimension.
func (d *Document) validateSchema() error {
	if err := validate.Struct(d); err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok || len(verrs) == 0 {
			return SchemaError{Reason: err.Error()}
		}
		fe := verrs[0]
		return SchemaError{Field: fe.Namespace(), Reason: fe.Tag()}
	}
	if d.Grid == nil && d.Tree == nil && d.Precision == nil {
		return SchemaError{Field: "precision", Reason: "required for polygon input"}
	}
	return nil
}
