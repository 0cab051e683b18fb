package ops

import (
	"github.com/born-ml/cell/internal/autodiff"
	"github.com/born-ml/cell/internal/tensor"
)

// ExpOp represents the exponential operation: y = exp(x).
//
// Backward pass:
//   - d(exp(x))/dx = exp(x)
//   - grad_input = grad_output * exp(x), with exp(x) recomputed from the
//     remembered input
type ExpOp[T tensor.Float] struct {
	autodiff.Unary[T]
}

// NewExp creates a new ExpOp.
func NewExp[T tensor.Float]() *ExpOp[T] {
	return &ExpOp[T]{}
}

// Name returns "Exp".
func (op *ExpOp[T]) Name() string {
	return "Exp"
}

// Forward computes exp(x) elementwise.
func (op *ExpOp[T]) Forward(x *tensor.Tensor[T]) *tensor.Tensor[T] {
	return x.Map(exp[T])
}

// Backward computes gy * exp(x).
func (op *ExpOp[T]) Backward(gy *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	x, err := rememberedInput(op.Name(), &op.Unary, gy)
	if err != nil {
		return nil, err
	}
	return gy.Mul(x.Map(exp[T]))
}
