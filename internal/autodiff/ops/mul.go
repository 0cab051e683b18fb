package ops

import (
	"github.com/born-ml/cell/internal/autodiff"
	"github.com/born-ml/cell/internal/tensor"
)

// MulOp represents element-wise multiplication: y = a * b.
// Both inputs must have the same shape.
//
// Backward pass:
//   - d(a*b)/da = b, d(a*b)/db = a
//   - grad_a = grad_output * b, grad_b = grad_output * a
type MulOp[T tensor.Float] struct {
	autodiff.Binary[T]
}

// NewMul creates a new MulOp.
func NewMul[T tensor.Float]() *MulOp[T] {
	return &MulOp[T]{}
}

// Name returns "Mul".
func (op *MulOp[T]) Name() string {
	return "Mul"
}

// Forward computes a * b.
func (op *MulOp[T]) Forward(a, b *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	if err := sameShape(op.Name(), a, b); err != nil {
		return nil, err
	}
	return a.Mul(b)
}

// Backward computes (gy * b, gy * a).
func (op *MulOp[T]) Backward(gy *tensor.Tensor[T]) (ga, gb *tensor.Tensor[T], err error) {
	a, b, err := rememberedInputs(op.Name(), &op.Binary, gy)
	if err != nil {
		return nil, nil, err
	}
	if ga, err = gy.Mul(b); err != nil {
		return nil, nil, err
	}
	if gb, err = gy.Mul(a); err != nil {
		return nil, nil, err
	}
	return ga, gb, nil
}
