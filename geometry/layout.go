package geometry

import "math"

// Epsilon is the tolerance used for Layout field comparisons and for
// detecting whether a requested precision already evenly divides width.
const Epsilon = 1e-6

// Layout is an immutable square-grid descriptor: a center, a width, and
// a precision (cell size). Construction snaps precision, never to a
// coarser value than requested, so that width = precision * 2^k for some
// non-negative integer k, i.e. Dimension is always a positive power of two.
type Layout struct {
	Precision float64
	CenterX   float64
	CenterY   float64
	Width     float64

	Dimension int
	HalfWidth float64
	Size      int
}

// DefaultLayout is center (0,0), width 1, precision 1.
var DefaultLayout = NewLayout(1, 0, 0, 1)

// NewLayout constructs a Layout from precision, center, and width,
// rounding the dimension up to the next power of two that covers width
// exactly; the resulting precision is equal to or finer than requested.
func NewLayout(precision, centerX, centerY, width float64) Layout {
	dimension, snappedPrecision := snap(precision, width)
	return Layout{
		Precision: snappedPrecision,
		CenterX:   centerX,
		CenterY:   centerY,
		Width:     width,
		Dimension: dimension,
		HalfWidth: width / 2,
		Size:      dimension * dimension,
	}
}

// snap computes the smallest power-of-two dimension whose precision
// (width/dimension) is no coarser than the requested precision, and
// returns that dimension along with the resulting (possibly finer)
// precision.
func snap(precision, width float64) (dimension int, snappedPrecision float64) {
	ratio := width / precision
	k := math.Ceil(math.Log2(ratio) - Epsilon)
	if k < 0 {
		k = 0
	}
	dimension = int(math.Round(math.Pow(2, k)))
	if dimension < 1 {
		dimension = 1
	}
	snappedPrecision = width / float64(dimension)
	return dimension, snappedPrecision
}

// Bounds returns the square Bounds of this layout.
func (l Layout) Bounds() Bounds {
	return Bounds{Center: Point{X: l.CenterX, Y: l.CenterY}, HalfWidth: l.HalfWidth}
}

// Contains reports whether p lies within l, borders inclusive.
func (l Layout) Contains(p Point) bool {
	return l.Bounds().Contains(p)
}

// Constrain clamps p into l's bounds on each axis.
func (l Layout) Constrain(p Point) Point {
	return l.Bounds().Constrain(p)
}

// CellIndices returns the (xi, yi) column/row indices of the cell
// containing p, after clamping p into the layout's bounds.
func (l Layout) CellIndices(p Point) (xi, yi int) {
	c := l.Constrain(p)
	minX := l.CenterX - l.HalfWidth
	minY := l.CenterY - l.HalfWidth

	xi = int((c.X - minX) / l.Precision)
	yi = int((c.Y - minY) / l.Precision)

	if xi >= l.Dimension {
		xi = l.Dimension - 1
	}
	if yi >= l.Dimension {
		yi = l.Dimension - 1
	}
	if xi < 0 {
		xi = 0
	}
	if yi < 0 {
		yi = 0
	}
	return xi, yi
}

// RowHash returns the row-major cell index (yi*dim + xi) of the cell
// containing p.
func (l Layout) RowHash(p Point) int {
	xi, yi := l.CellIndices(p)
	return yi*l.Dimension + xi
}

// bitsPerAxis is the number of bits needed to address Dimension cells
// along one axis.
func (l Layout) bitsPerAxis() uint {
	bits := uint(0)
	for d := l.Dimension; d > 1; d >>= 1 {
		bits++
	}
	return bits
}

// ZHash returns the Morton (Z-order) interleave of the cell indices of
// p: bit 2i comes from the x index's bit i, bit 2i+1 from the y index's
// bit i, with the most significant interleaved pair placed at the top
// of the 64-bit word and all lower bits left zero.
func (l Layout) ZHash(p Point) uint64 {
	xi, yi := l.CellIndices(p)
	bits := l.bitsPerAxis()

	var code uint64
	for i := uint(0); i < bits; i++ {
		xBit := uint64((xi >> i) & 1)
		yBit := uint64((yi >> i) & 1)
		code |= xBit << (2 * i)
		code |= yBit << (2*i + 1)
	}

	total := 2 * bits
	if total >= 64 {
		return code
	}
	return code << (64 - total)
}

// Equal reports whether l and other agree on all four primary fields
// within Epsilon.
func (l Layout) Equal(other Layout) bool {
	err := math.Abs(l.Precision-other.Precision) +
		math.Abs(l.CenterX-other.CenterX) +
		math.Abs(l.CenterY-other.CenterY) +
		math.Abs(l.Width-other.Width)
	return err < Epsilon
}
