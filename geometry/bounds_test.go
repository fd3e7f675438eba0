package geometry

import "testing"

func TestBoundsFromPoints(t *testing.T) {
	b := BoundsFromPoints([]Point{{X: -2, Y: 1}, {X: 4, Y: 5}, {X: 0, Y: -3}})
	// Bounds is square: the y extent (8) is the larger, so the x extent
	// is widened around its midpoint 1 to [-3, 5].
	if b.MinX() != -3 || b.MaxX() != 5 {
		t.Errorf("x extent = [%v, %v], want [-3, 5]", b.MinX(), b.MaxX())
	}
	if b.MinY() != -3 || b.MaxY() != 5 {
		t.Errorf("y extent = [%v, %v], want [-3, 5]", b.MinY(), b.MaxY())
	}
}

func TestBoundsContains(t *testing.T) {
	b := NewBounds(Point{X: 0, Y: 0}, 2)
	if !b.Contains(Point{X: 2, Y: -2}) {
		t.Error("expected border point to be contained")
	}
	if b.Contains(Point{X: 2.01, Y: 0}) {
		t.Error("expected point just outside to be excluded")
	}
}

func TestBoundsQuadrant(t *testing.T) {
	b := NewBounds(Point{X: 0, Y: 0}, 4)
	ne := b.Quadrant(NE)
	if ne.HalfWidth != 2 {
		t.Errorf("child half-width = %v, want 2", ne.HalfWidth)
	}
	if ne.Center.X != 2 || ne.Center.Y != 2 {
		t.Errorf("NE center = %+v, want (2,2)", ne.Center)
	}
	sw := b.Quadrant(SW)
	if sw.Center.X != -2 || sw.Center.Y != -2 {
		t.Errorf("SW center = %+v, want (-2,-2)", sw.Center)
	}
}

func TestBoundsQuadrantOf(t *testing.T) {
	b := NewBounds(Point{X: 0, Y: 0}, 4)
	cases := []struct {
		p    Point
		want Quadrant
	}{
		{Point{X: 1, Y: 1}, NE},
		{Point{X: -1, Y: 1}, NW},
		{Point{X: -1, Y: -1}, SW},
		{Point{X: 1, Y: -1}, SE},
		{Point{X: 0, Y: 0}, NE},
	}
	for _, c := range cases {
		if got := b.QuadrantOf(c.p); got != c.want {
			t.Errorf("QuadrantOf(%+v) = %v, want %v", c.p, got, c.want)
		}
	}
}

func TestBoundsClearedHalfWidthIsNaN(t *testing.T) {
	b := BoundsFromPoints(nil)
	if !b.Cleared() {
		t.Error("expected bounds of no points to be cleared")
	}
	if b.HalfWidth == b.HalfWidth {
		t.Error("expected Cleared half-width to be NaN")
	}
}
