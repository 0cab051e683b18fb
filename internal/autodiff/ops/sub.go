package ops

import (
	"github.com/born-ml/cell/internal/autodiff"
	"github.com/born-ml/cell/internal/tensor"
)

// SubOp represents element-wise subtraction: y = a - b.
//
// Backward pass:
//   - d(a-b)/da = 1, d(a-b)/db = -1
//   - grad_a = grad_output, grad_b = -grad_output
type SubOp[T tensor.Float] struct {
	autodiff.Binary[T]
}

// NewSub creates a new SubOp.
func NewSub[T tensor.Float]() *SubOp[T] {
	return &SubOp[T]{}
}

// Name returns "Sub".
func (op *SubOp[T]) Name() string {
	return "Sub"
}

// Forward computes a - b.
func (op *SubOp[T]) Forward(a, b *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	if err := sameShape(op.Name(), a, b); err != nil {
		return nil, err
	}
	return a.Sub(b)
}

// Backward returns (gy, -gy).
func (op *SubOp[T]) Backward(gy *tensor.Tensor[T]) (ga, gb *tensor.Tensor[T], err error) {
	if _, _, err := rememberedInputs(op.Name(), &op.Binary, gy); err != nil {
		return nil, nil, err
	}
	return gy.Clone(), gy.MulScalar(-1), nil
}
