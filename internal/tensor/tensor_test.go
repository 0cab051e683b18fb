package tensor

import (
	"fmt"
	"testing"

	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromSlice(t *testing.T) {
	x := must.M1(FromSlice([]float64{1, 2, 3, 4, 5, 6}, Shape{2, 3}))

	assert.Equal(t, Shape{2, 3}, x.Shape())
	assert.Equal(t, 2, x.Rank())
	assert.Equal(t, 6, x.NumElements())
	assert.Equal(t, 48, x.ByteSize())
	assert.Equal(t, 6.0, x.At(1, 2))
	assert.Equal(t, 2.0, x.At(0, 1))
}

func TestShapeReturnsCopy(t *testing.T) {
	x := Zeros[float64](Shape{2, 3})
	x.Shape()[0] = 7

	assert.Equal(t, Shape{2, 3}, x.Shape())
	assert.Equal(t, 6, x.NumElements())
	x.Set(1, 1, 2)
	assert.Equal(t, 1.0, x.At(1, 2))
}

func TestFromSliceCopiesInput(t *testing.T) {
	src := []float32{1, 2}
	x := must.M1(FromSlice(src, Shape{2}))
	src[0] = 42
	assert.Equal(t, float32(1), x.At(0))
}

func TestFromSliceWrongLength(t *testing.T) {
	_, err := FromSlice([]float64{1, 2, 3}, Shape{2, 2})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidShape))
}

func TestNewInvalidShape(t *testing.T) {
	_, err := New[float64](Shape{2, -1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidShape))
}

func TestDType(t *testing.T) {
	type myFloat float64

	assert.Equal(t, Float32, Zeros[float32](Shape{1}).DType())
	assert.Equal(t, Float64, Zeros[float64](Shape{1}).DType())
	assert.Equal(t, Float64, Zeros[myFloat](Shape{1}).DType())
	assert.Equal(t, "float32", Float32.String())
}

func TestSetAndAt(t *testing.T) {
	x := Zeros[float64](Shape{2, 2})
	x.Set(3, 1, 0)
	assert.Equal(t, 3.0, x.At(1, 0))
	assert.Equal(t, []float64{0, 0, 3, 0}, x.Data())
}

func TestAtOutOfBoundsPanics(t *testing.T) {
	x := Zeros[float64](Shape{2, 2})
	assert.Panics(t, func() { x.At(2, 0) })
	assert.Panics(t, func() { x.At(0) })
}

func TestItem(t *testing.T) {
	assert.Equal(t, 2.5, Scalar(2.5).Item())
	assert.Panics(t, func() { Ones[float64](Shape{2}).Item() })
}

func TestCloneIsDeep(t *testing.T) {
	x := must.M1(FromSlice([]float64{1, 2, 3, 4}, Shape{2, 2}))
	c := x.Clone()
	c.Set(100, 0, 0)

	assert.Equal(t, 1.0, x.At(0, 0))
	assert.Equal(t, 100.0, c.At(0, 0))
	assert.True(t, x.Shape().Equal(c.Shape()))
}

func TestReshape(t *testing.T) {
	x := must.M1(FromSlice([]float64{1, 2, 3, 4}, Shape{4}))
	y, err := x.Reshape(Shape{2, 2})
	require.NoError(t, err)
	assert.Equal(t, 3.0, y.At(1, 0))

	_, err = x.Reshape(Shape{3})
	assert.True(t, errors.Is(err, ErrShapeMismatch))
}

func TestCreation(t *testing.T) {
	assert.Equal(t, []float64{0, 0, 0}, Zeros[float64](Shape{3}).Data())
	assert.Equal(t, []float64{1, 1, 1}, Ones[float64](Shape{3}).Data())
	assert.Equal(t, []float32{2.5, 2.5}, Full[float32](Shape{2}, 2.5).Data())

	x := Full[float64](Shape{2, 3}, 7)
	assert.Equal(t, Shape{2, 3}, OnesLike(x).Shape())
	assert.Equal(t, 0.0, ZerosLike(x).Sum())
	assert.Panics(t, func() { Zeros[float64](Shape{0}) })
}

func TestAllClose(t *testing.T) {
	a := must.M1(FromSlice([]float64{1, 2}, Shape{2}))
	b := must.M1(FromSlice([]float64{1, 2.0000001}, Shape{2}))

	assert.False(t, a.Equal(b))
	assert.True(t, a.AllClose(b, 1e-6, 0))
	assert.False(t, a.AllClose(must.M1(FromSlice([]float64{1, 2}, Shape{1, 2})), 1, 1), "shape differs")
}

func TestString(t *testing.T) {
	x := Zeros[float64](Shape{2, 2})
	assert.Equal(t, "Tensor[float64](2, 2) (32 B)", x.String())
	assert.Equal(t, "Tensor[float64](2, 2) (32 B) [0 0 0 0]", fmt.Sprintf("%+v", x))
}
