package ops

import (
	"github.com/born-ml/cell/internal/autodiff"
	"github.com/born-ml/cell/internal/tensor"
)

// DivOp represents an element-wise division operation: y = a / b.
//
// Backward pass:
//   - d(a/b)/da = 1/b, so grad_a = grad_output / b
//   - d(a/b)/db = -a/b², so grad_b = -grad_output * a / b²
type DivOp[T tensor.Float] struct {
	autodiff.Binary[T]
}

// NewDiv creates a new DivOp.
func NewDiv[T tensor.Float]() *DivOp[T] {
	return &DivOp[T]{}
}

// Name returns "Div".
func (op *DivOp[T]) Name() string {
	return "Div"
}

// Forward computes a / b. Division by zero follows IEEE 754.
func (op *DivOp[T]) Forward(a, b *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	if err := sameShape(op.Name(), a, b); err != nil {
		return nil, err
	}
	return a.Div(b)
}

// Backward computes (gy / b, -gy * a / b²).
func (op *DivOp[T]) Backward(gy *tensor.Tensor[T]) (ga, gb *tensor.Tensor[T], err error) {
	a, b, err := rememberedInputs(op.Name(), &op.Binary, gy)
	if err != nil {
		return nil, nil, err
	}
	if ga, err = gy.Div(b); err != nil {
		return nil, nil, err
	}
	if gb, err = gy.Mul(a); err != nil {
		return nil, nil, err
	}
	if gb, err = gb.Div(b); err != nil {
		return nil, nil, err
	}
	if gb, err = gb.Div(b); err != nil {
		return nil, nil, err
	}
	return ga, gb.MulScalar(-1), nil
}
