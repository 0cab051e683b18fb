package ops

import (
	"math"

	"github.com/born-ml/cell/internal/autodiff"
	"github.com/born-ml/cell/internal/tensor"
)

// SqrtOp represents the square root operation: y = sqrt(x).
//
// Backward pass:
//   - d(sqrt(x))/dx = 1 / (2 * sqrt(x)) = 0.5 / y
//   - grad_input = grad_output * 0.5 / output
type SqrtOp[T tensor.Float] struct {
	autodiff.Unary[T]
}

// NewSqrt creates a new SqrtOp.
func NewSqrt[T tensor.Float]() *SqrtOp[T] {
	return &SqrtOp[T]{}
}

// Name returns "Sqrt".
func (op *SqrtOp[T]) Name() string {
	return "Sqrt"
}

// UsesOutput reports that Backward reads the remembered output.
func (op *SqrtOp[T]) UsesOutput() bool {
	return true
}

// Ready reports whether both the input and the output are remembered.
func (op *SqrtOp[T]) Ready() bool {
	return op.Unary.Ready() && op.Output() != nil
}

// Forward computes sqrt(x) elementwise.
func (op *SqrtOp[T]) Forward(x *tensor.Tensor[T]) *tensor.Tensor[T] {
	return x.Map(lift[T](math.Sqrt))
}

// Backward computes gy * 0.5 / y.
func (op *SqrtOp[T]) Backward(gy *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	y, err := rememberedOutput(op.Name(), &op.Unary, gy)
	if err != nil {
		return nil, err
	}
	return gy.Mul(y.Map(func(v T) T { return 0.5 / v }))
}
