package ops

import (
	"math"

	"github.com/born-ml/cell/internal/autodiff"
	"github.com/born-ml/cell/internal/tensor"
)

// LogOp represents the element-wise natural logarithm: y = log(x).
//
// Backward:
//
//	∂L/∂input = ∂L/∂output * (1 / input)
//
// Inputs are expected to be positive; log(0) is -Inf and its gradient +Inf.
type LogOp[T tensor.Float] struct {
	autodiff.Unary[T]
}

// NewLog creates a new LogOp.
func NewLog[T tensor.Float]() *LogOp[T] {
	return &LogOp[T]{}
}

// Name returns "Log".
func (op *LogOp[T]) Name() string {
	return "Log"
}

// Forward computes log(x) elementwise.
func (op *LogOp[T]) Forward(x *tensor.Tensor[T]) *tensor.Tensor[T] {
	return x.Map(lift[T](math.Log))
}

// Backward computes gy / x.
func (op *LogOp[T]) Backward(gy *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	x, err := rememberedInput(op.Name(), &op.Unary, gy)
	if err != nil {
		return nil, err
	}
	return gy.Mul(x.Map(func(v T) T { return 1 / v }))
}
