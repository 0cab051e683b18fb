package ops

import (
	"math"

	"github.com/born-ml/cell/internal/autodiff"
	"github.com/born-ml/cell/internal/tensor"
)

// TanhOp represents the hyperbolic tangent: y = tanh(x).
type TanhOp[T tensor.Float] struct {
	autodiff.Unary[T]
}

// NewTanh creates a new TanhOp.
func NewTanh[T tensor.Float]() *TanhOp[T] {
	return &TanhOp[T]{}
}

// Name returns "Tanh".
func (op *TanhOp[T]) Name() string {
	return "Tanh"
}

// UsesOutput reports that Backward reads the remembered output.
func (op *TanhOp[T]) UsesOutput() bool {
	return true
}

// Ready reports whether both the input and the output are remembered.
func (op *TanhOp[T]) Ready() bool {
	return op.Unary.Ready() && op.Output() != nil
}

// Forward computes tanh(x) elementwise.
func (op *TanhOp[T]) Forward(x *tensor.Tensor[T]) *tensor.Tensor[T] {
	return x.Map(lift[T](math.Tanh))
}

// Backward computes the gradient for tanh.
//
// d(tanh(x))/dx = 1 - tanh²(x), so with the remembered output:
// grad_input = grad_output * (1 - output²).
func (op *TanhOp[T]) Backward(gy *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	y, err := rememberedOutput(op.Name(), &op.Unary, gy)
	if err != nil {
		return nil, err
	}
	return gy.Mul(y.Map(func(v T) T { return 1 - v*v }))
}
