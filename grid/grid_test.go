package grid

import (
	"testing"

	"github.com/danielw-oss/terrain/geometry"
)

func TestGridGetSetRoundTrip(t *testing.T) {
	g := New(geometry.NewLayout(1, 0, 0, 4))
	g.Fill(Default)

	g.Set(1, 2, 42)
	if got := g.Get(1, 2); got != 42 {
		t.Errorf("Get = %d, want 42", got)
	}
}

func TestGridClassifyOutOfBounds(t *testing.T) {
	g := New(geometry.NewLayout(1, 0, 0, 4))
	if got := g.Classify(geometry.Point{X: 100, Y: 100}); got != Error {
		t.Errorf("Classify out of bounds = %#x, want %#x", got, Error)
	}
}

func TestGridFill(t *testing.T) {
	g := New(geometry.NewLayout(1, 0, 0, 4))
	g.Fill(7)
	for _, row := range g.Rows() {
		for _, v := range row {
			if v != 7 {
				t.Fatalf("expected every cell to be 7, got %d", v)
			}
		}
	}
}

func TestGridRowsIndex0IsLowestY(t *testing.T) {
	g := New(geometry.NewLayout(1, 0, 0, 2))
	g.Fill(Default)
	g.Set(0, 0, 1) // lowest row, leftmost column

	rows := g.Rows()
	if rows[0][0] != 1 {
		t.Errorf("rows[0][0] = %d, want 1 (index 0 is lowest y)", rows[0][0])
	}
}

func TestGridLoadRowsSizeMismatch(t *testing.T) {
	g := New(geometry.NewLayout(1, 0, 0, 4))
	if g.LoadRows([][]CellValue{{1, 2}, {3, 4}}) {
		t.Error("expected LoadRows to reject a size mismatch")
	}
}

func TestGridLoadRowsRoundTrip(t *testing.T) {
	g := New(geometry.NewLayout(1, 0, 0, 2))
	rows := [][]CellValue{{1, 2}, {3, 4}}
	if !g.LoadRows(rows) {
		t.Fatal("expected LoadRows to succeed")
	}
	if got := g.Rows(); got[0][0] != 1 || got[1][1] != 4 {
		t.Errorf("Rows() = %v, want round trip of %v", got, rows)
	}
}

func TestFillPolygonDiamondS2(t *testing.T) {
	layout := geometry.NewLayout(1, 8, 8, 16)
	g := New(layout)
	g.Fill(Default)

	diamond := []geometry.Point{{X: 16, Y: 8}, {X: 8, Y: 16}, {X: 0, Y: 8}, {X: 8, Y: 0}}
	poly, ok := geometry.NewPolygon(diamond)
	if !ok {
		t.Fatal("expected valid diamond polygon")
	}
	FillPolygon(g, poly, 0)

	// Column 4's scan-line crossings are [8-yi, 8+yi) for yi<8 and
	// [yi-8, 24-yi) for yi>=8, per the lower-edge sampling y=yi in
	// raster.FillSpans (grounded on original_source's Grid::fill); that
	// puts the first and last covered rows at yi=4 and yi=12, not 5/11.
	for yi := 4; yi <= 12; yi++ {
		if v := g.Get(4, yi); v != 0 {
			t.Errorf("cell (4,%d) = %#x, want 0", yi, v)
		}
	}
	for _, yi := range []int{0, 1, 2, 3, 13, 14, 15} {
		if v := g.Get(4, yi); v != Default {
			t.Errorf("cell (4,%d) = %#x, want default", yi, v)
		}
	}
}
