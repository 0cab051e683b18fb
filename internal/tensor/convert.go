package tensor

import (
	"github.com/pkg/errors"
	"github.com/x448/float16"
)

// FromFloat16 widens half-precision values into a float32 tensor.
func FromFloat16(data []float16.Float16, shape Shape) (*Tensor[float32], error) {
	if shape.NumElements() != len(data) {
		return nil, errors.Wrapf(ErrInvalidShape, "shape %v requires %d elements, but got %d",
			shape, shape.NumElements(), len(data))
	}
	t, err := New[float32](shape)
	if err != nil {
		return nil, err
	}
	for i, v := range data {
		t.data[i] = v.Float32()
	}
	return t, nil
}

// Float16 narrows the tensor's elements to half precision, rounding to
// nearest even. Values outside the float16 range become ±Inf.
func (t *Tensor[T]) Float16() []float16.Float16 {
	out := make([]float16.Float16, len(t.data))
	for i, v := range t.data {
		out[i] = float16.Fromfloat32(float32(v))
	}
	return out
}
