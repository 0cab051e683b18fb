package ops

import (
	"math"

	"github.com/born-ml/cell/internal/autodiff"
	"github.com/born-ml/cell/internal/tensor"
)

// SinOp represents the sine operation: y = sin(x).
//
// Backward pass:
//   - d(sin(x))/dx = cos(x)
//   - grad_input = grad_output * cos(input)
type SinOp[T tensor.Float] struct {
	autodiff.Unary[T]
}

// NewSin creates a new SinOp.
func NewSin[T tensor.Float]() *SinOp[T] {
	return &SinOp[T]{}
}

// Name returns "Sin".
func (op *SinOp[T]) Name() string {
	return "Sin"
}

// Forward computes sin(x) elementwise.
func (op *SinOp[T]) Forward(x *tensor.Tensor[T]) *tensor.Tensor[T] {
	return x.Map(lift[T](math.Sin))
}

// Backward computes gy * cos(x).
func (op *SinOp[T]) Backward(gy *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	x, err := rememberedInput(op.Name(), &op.Unary, gy)
	if err != nil {
		return nil, err
	}
	return gy.Mul(x.Map(lift[T](math.Cos)))
}
