package tensor

import (
	"math"
	"testing"

	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"
)

func TestFloat16RoundTrip(t *testing.T) {
	x := must.M1(FromSlice([]float64{0.5, -2, 1024, 0.1}, Shape{2, 2}))

	half := x.Float16()
	require.Len(t, half, 4)

	back := must.M1(FromFloat16(half, Shape{2, 2}))
	assert.Equal(t, Shape{2, 2}, back.Shape())
	assert.Equal(t, float32(0.5), back.At(0, 0))
	assert.Equal(t, float32(-2), back.At(0, 1))
	assert.Equal(t, float32(1024), back.At(1, 0))
	assert.InDelta(t, 0.1, back.At(1, 1), 1e-3)
}

func TestFloat16Overflow(t *testing.T) {
	x := must.M1(FromSlice([]float32{1e6}, Shape{1}))
	assert.True(t, math.IsInf(float64(x.Float16()[0].Float32()), 1))
}

func TestFromFloat16WrongLength(t *testing.T) {
	_, err := FromFloat16([]float16.Float16{float16.Fromfloat32(1)}, Shape{2})
	assert.True(t, errors.Is(err, ErrInvalidShape))
}
