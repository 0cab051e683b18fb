package ops

import (
	"github.com/born-ml/cell/internal/autodiff"
	"github.com/born-ml/cell/internal/tensor"
)

// SquareOp represents y = x * x.
//
// Backward pass:
//   - d(x²)/dx = 2x
//   - grad_input = grad_output * x * 2
type SquareOp[T tensor.Float] struct {
	autodiff.Unary[T]
}

// NewSquare creates a new SquareOp.
func NewSquare[T tensor.Float]() *SquareOp[T] {
	return &SquareOp[T]{}
}

// Name returns "Square".
func (op *SquareOp[T]) Name() string {
	return "Square"
}

// Forward computes x * x elementwise.
func (op *SquareOp[T]) Forward(x *tensor.Tensor[T]) *tensor.Tensor[T] {
	return x.Map(func(v T) T { return v * v })
}

// Backward computes gy * x * 2.
func (op *SquareOp[T]) Backward(gy *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	x, err := rememberedInput(op.Name(), &op.Unary, gy)
	if err != nil {
		return nil, err
	}
	gx, err := gy.Mul(x)
	if err != nil {
		return nil, err
	}
	return gx.MulScalar(2), nil
}
