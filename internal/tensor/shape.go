package tensor

import (
	"slices"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Shape lists the size of each dimension, outermost first.
// A Shape of length zero describes a scalar holding one element.
type Shape []int

// NumElements is the product of the dimensions, 1 for a scalar.
func (s Shape) NumElements() int {
	total := 1
	for _, d := range s {
		total *= d
	}
	return total
}

// Validate fails with ErrInvalidShape unless every dimension is positive.
func (s Shape) Validate() error {
	if i := slices.IndexFunc(s, func(d int) bool { return d <= 0 }); i >= 0 {
		return errors.Wrapf(ErrInvalidShape, "dimension %d of %v is %d (must be > 0)", i, s, s[i])
	}
	return nil
}

// Equal reports whether both shapes have the same rank and dimensions.
func (s Shape) Equal(other Shape) bool {
	return slices.Equal(s, other)
}

// Clone returns an independent copy; the clone of a scalar shape is non-nil.
func (s Shape) Clone() Shape {
	return append(Shape{}, s...)
}

// ComputeStrides returns the row-major element strides of s.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	step := 1
	for axis := len(s) - 1; axis >= 0; axis-- {
		strides[axis] = step
		step *= s[axis]
	}
	return strides
}

// String formats the shape as "(2, 3)"; scalars print as "()".
func (s Shape) String() string {
	dims := make([]string, len(s))
	for i, d := range s {
		dims[i] = strconv.Itoa(d)
	}
	return "(" + strings.Join(dims, ", ") + ")"
}

// padLeft prefixes s with 1s up to the given rank.
func (s Shape) padLeft(rank int) Shape {
	padded := make(Shape, rank-len(s), rank)
	for i := range padded {
		padded[i] = 1
	}
	return append(padded, s...)
}

// BroadcastShapes returns the shape two operands broadcast to.
//
// Shapes are aligned on their trailing dimension and the shorter one is
// padded with leading 1s. Aligned dimensions must match or one of them must
// be 1. The boolean reports whether either operand needs expanding:
//
//	(3, 1) and (3, 5) → (3, 5), true
//	(5) and (3, 5)    → (3, 5), true
//	(3, 5) and (3, 5) → (3, 5), false
//	(3, 4) and (3, 5) → ErrShapeMismatch
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	rank := max(len(a), len(b))
	pa, pb := a.padLeft(rank), b.padLeft(rank)
	out := make(Shape, rank)
	expanded := len(a) != len(b)
	for axis := range out {
		da, db := pa[axis], pb[axis]
		switch {
		case da == db:
			out[axis] = da
		case da == 1 || db == 1:
			out[axis] = max(da, db)
			expanded = true
		default:
			return nil, false, errors.Wrapf(ErrShapeMismatch,
				"%v and %v cannot be broadcast (axis %d: %d vs %d)", a, b, axis, da, db)
		}
	}
	return out, expanded, nil
}
