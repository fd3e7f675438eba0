package interp

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/danielw-oss/terrain/geometry"
	"github.com/danielw-oss/terrain/quadtree"
)

func buildS4Tree(t *testing.T) *quadtree.QuadTree {
	t.Helper()
	layout := geometry.NewLayout(32, 1, 1, 64)
	qt := quadtree.New(layout)

	qt.Store(geometry.Point{X: 17, Y: 17}, 0)   // NE
	qt.Store(geometry.Point{X: -15, Y: 17}, 50) // NW
	qt.Store(geometry.Point{X: -15, Y: -15}, 100) // SW
	qt.Store(geometry.Point{X: 17, Y: -15}, 50) // SE

	return qt
}

func TestQueryMonotoneAlongAxisS4(t *testing.T) {
	qt := buildS4Tree(t)

	xs := []float64{-31, -20, -10, -5, 0, 1, 2, 10, 15, 16, 17, 20, 33}
	var prev *quadtree.CellValue
	for _, x := range xs {
		v := Query(qt, geometry.Point{X: x, Y: 4})
		if prev != nil && v > *prev {
			t.Errorf("expected a monotone non-increasing sequence crossing x=%v, got %d after %d", x, v, *prev)
		}
		got := v
		prev = &got
	}
}

func TestQueryOutOfBoundsReturnsDefault(t *testing.T) {
	qt := buildS4Tree(t)
	v := Query(qt, geometry.Point{X: 1000, Y: 1000})
	assert.Equal(t, quadtree.Default, v)
}

func TestLinearSameLeafReturnsItsValue(t *testing.T) {
	layout := geometry.NewLayout(1, 0, 0, 4)
	qt := quadtree.New(layout)
	qt.Fill(42)
	n := qt.Root()

	v := Linear(geometry.Point{X: 0, Y: 0}, n, n)
	assert.Equal(t, quadtree.CellValue(42), v)
}

func TestInterpolationContinuityAcrossEqualLeaves(t *testing.T) {
	layout := geometry.NewLayout(50, 0, 0, 100)
	qt := quadtree.New(layout)
	qt.Store(geometry.Point{X: 25, Y: 25}, 7)
	qt.Store(geometry.Point{X: -25, Y: 25}, 7)
	qt.Store(geometry.Point{X: -25, Y: -25}, 7)
	qt.Store(geometry.Point{X: 25, Y: -25}, 7)

	for _, x := range []float64{-40, -10, 0, 10, 40} {
		v := Query(qt, geometry.Point{X: x, Y: 0})
		assert.Equal(t, quadtree.CellValue(7), v, "x=%v", x)
	}
}

func TestBilinearDegenerateBorderCase(t *testing.T) {
	layout := geometry.NewLayout(50, 0, 0, 100)
	qt := quadtree.New(layout)
	qt.Store(geometry.Point{X: 25, Y: 25}, 10)
	qt.Store(geometry.Point{X: -25, Y: 25}, 20)
	qt.Store(geometry.Point{X: -25, Y: -25}, 10)
	qt.Store(geometry.Point{X: 25, Y: -25}, 20)

	this := qt.SearchNode(geometry.Point{X: 25, Y: 25})
	xn := qt.SearchNode(geometry.Point{X: -25, Y: 25})

	v := Bilinear(geometry.Point{X: 0, Y: 25}, this, xn, this, xn)
	assert.Equal(t, Linear(geometry.Point{X: 0, Y: xn.Bounds().Center.Y}, this, xn), v)
}
