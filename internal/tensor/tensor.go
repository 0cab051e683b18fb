package tensor

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
)

// Tensor is a dense, row-major n-dimensional array of T.
//
// A Tensor owns its data: Clone performs a deep copy, and none of the
// elementwise operations write to their operands.
//
// Example:
//
//	t, err := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{2, 2})
//	y := t.Map(func(v float64) float64 { return v * v })
type Tensor[T Float] struct {
	data    []T
	shape   Shape
	strides []int
}

// New creates a zero-filled tensor with the given shape.
func New[T Float](shape Shape) (*Tensor[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return &Tensor[T]{
		data:    make([]T, shape.NumElements()),
		shape:   shape.Clone(),
		strides: shape.ComputeStrides(),
	}, nil
}

// FromSlice creates a tensor from a Go slice.
// The slice is copied into the tensor's memory.
func FromSlice[T Float](data []T, shape Shape) (*Tensor[T], error) {
	if shape.NumElements() != len(data) {
		return nil, errors.Wrapf(ErrInvalidShape, "shape %v requires %d elements, but got %d",
			shape, shape.NumElements(), len(data))
	}
	t, err := New[T](shape)
	if err != nil {
		return nil, err
	}
	copy(t.data, data)
	return t, nil
}

// MustFromSlice is FromSlice that panics on error.
func MustFromSlice[T Float](data []T, shape Shape) *Tensor[T] {
	t, err := FromSlice(data, shape)
	if err != nil {
		exceptions.Panicf("tensor.MustFromSlice: %v", err)
	}
	return t
}

// Shape returns a copy of the tensor's shape.
func (t *Tensor[T]) Shape() Shape {
	return t.shape.Clone()
}

// DType returns the tensor's data type.
func (t *Tensor[T]) DType() DataType {
	return DTypeOf[T]()
}

// Rank returns the number of dimensions.
func (t *Tensor[T]) Rank() int {
	return len(t.shape)
}

// NumElements returns the total number of elements.
func (t *Tensor[T]) NumElements() int {
	return len(t.data)
}

// ByteSize returns the memory used by the elements.
func (t *Tensor[T]) ByteSize() int {
	return len(t.data) * t.DType().Size()
}

// Data returns the underlying storage in row-major order.
//
// WARNING: Modifications to the returned slice will modify the tensor.
func (t *Tensor[T]) Data() []T {
	return t.data
}

// Item returns the value of a tensor holding exactly one element.
func (t *Tensor[T]) Item() T {
	if len(t.data) != 1 {
		exceptions.Panicf("Item() requires a single element tensor, got shape %v", t.shape)
	}
	return t.data[0]
}

// offset converts indices to a flat offset, panicking when out of bounds.
func (t *Tensor[T]) offset(indices []int) int {
	if len(indices) != len(t.shape) {
		exceptions.Panicf("expected %d indices, got %d", len(t.shape), len(indices))
	}
	off := 0
	for i, idx := range indices {
		if idx < 0 || idx >= t.shape[i] {
			exceptions.Panicf("index %d out of bounds for dimension %d (size %d)", idx, i, t.shape[i])
		}
		off += idx * t.strides[i]
	}
	return off
}

// At returns the element at the given indices.
// Panics if indices are out of bounds.
//
// Example:
//
//	value := t.At(1, 2) // Row 1, column 2
func (t *Tensor[T]) At(indices ...int) T {
	return t.data[t.offset(indices)]
}

// Set sets the element at the given indices.
// Panics if indices are out of bounds.
func (t *Tensor[T]) Set(value T, indices ...int) {
	t.data[t.offset(indices)] = value
}

// Clone creates a deep copy of the tensor.
func (t *Tensor[T]) Clone() *Tensor[T] {
	data := make([]T, len(t.data))
	copy(data, t.data)
	return &Tensor[T]{
		data:    data,
		shape:   t.shape.Clone(),
		strides: append([]int(nil), t.strides...),
	}
}

// Reshape returns a copy of the tensor with a new shape holding the same
// number of elements.
func (t *Tensor[T]) Reshape(shape Shape) (*Tensor[T], error) {
	if shape.NumElements() != len(t.data) {
		return nil, errors.Wrapf(ErrShapeMismatch, "cannot reshape %v into %v", t.shape, shape)
	}
	return FromSlice(t.data, shape)
}

// Equal reports whether both tensors have the same shape and elements.
func (t *Tensor[T]) Equal(other *Tensor[T]) bool {
	return t.AllClose(other, 0, 0)
}

// AllClose reports whether both tensors have the same shape and every pair
// of elements satisfies |a-b| <= atol + rtol*|b|.
func (t *Tensor[T]) AllClose(other *Tensor[T], rtol, atol float64) bool {
	if other == nil || !t.shape.Equal(other.shape) {
		return false
	}
	for i, a := range t.data {
		b := other.data[i]
		if a == b {
			continue
		}
		diff := math.Abs(float64(a) - float64(b))
		if math.IsNaN(diff) || diff > atol+rtol*math.Abs(float64(b)) {
			return false
		}
	}
	return true
}

// String returns a human-readable summary of the tensor.
func (t *Tensor[T]) String() string {
	return fmt.Sprintf("Tensor[%s]%v (%s)", t.DType(), t.shape, humanize.Bytes(uint64(t.ByteSize())))
}

// Format implements fmt.Formatter: %v prints the summary, %+v adds the values.
func (t *Tensor[T]) Format(f fmt.State, verb rune) {
	if verb == 'v' && f.Flag('+') {
		_, _ = fmt.Fprintf(f, "%s %v", t.String(), t.data)
		return
	}
	_, _ = fmt.Fprint(f, t.String())
}
