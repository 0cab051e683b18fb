package ops

import (
	"github.com/born-ml/cell/internal/autodiff"
	"github.com/born-ml/cell/internal/tensor"
)

// AddOp represents element-wise addition: y = a + b.
// Both inputs must have the same shape.
//
// Backward pass:
//   - d(a+b)/da = 1, d(a+b)/db = 1
//   - grad_a = grad_output, grad_b = grad_output
type AddOp[T tensor.Float] struct {
	autodiff.Binary[T]
}

// NewAdd creates a new AddOp.
func NewAdd[T tensor.Float]() *AddOp[T] {
	return &AddOp[T]{}
}

// Name returns "Add".
func (op *AddOp[T]) Name() string {
	return "Add"
}

// Forward computes a + b.
func (op *AddOp[T]) Forward(a, b *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	if err := sameShape(op.Name(), a, b); err != nil {
		return nil, err
	}
	return a.Add(b)
}

// Backward passes gy through to both inputs.
func (op *AddOp[T]) Backward(gy *tensor.Tensor[T]) (ga, gb *tensor.Tensor[T], err error) {
	if _, _, err := rememberedInputs(op.Name(), &op.Binary, gy); err != nil {
		return nil, nil, err
	}
	return gy.Clone(), gy.Clone(), nil
}
