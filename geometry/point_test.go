package geometry

import "testing"

func TestPointArithmetic(t *testing.T) {
	a := Point{X: 3, Y: 5}
	b := Point{X: 1, Y: 2}

	if got := a.Sub(b); got != (Point{X: 2, Y: 3}) {
		t.Errorf("Sub = %+v, want (2,3)", got)
	}
	if got := a.Add(b); got != (Point{X: 4, Y: 7}) {
		t.Errorf("Add = %+v, want (4,7)", got)
	}
}

func TestPointDistance(t *testing.T) {
	a := Point{X: 0, Y: 0}
	b := Point{X: 3, Y: 4}
	if got := a.Distance(b); got != 5 {
		t.Errorf("Distance = %v, want 5", got)
	}
}

func TestPointEqual(t *testing.T) {
	a := Point{X: 1, Y: 1}
	b := Point{X: 1.0000001, Y: 1}
	if !a.Equal(b, 1e-6) {
		t.Error("expected points within epsilon to be equal")
	}
	if a.Equal(Point{X: 1.1, Y: 1}, 1e-6) {
		t.Error("expected points beyond epsilon to differ")
	}
}
