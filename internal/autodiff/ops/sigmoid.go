package ops

import (
	"math"

	"github.com/born-ml/cell/internal/autodiff"
	"github.com/born-ml/cell/internal/tensor"
)

// SigmoidOp represents the logistic function: σ(x) = 1 / (1 + exp(-x)).
type SigmoidOp[T tensor.Float] struct {
	autodiff.Unary[T]
}

// NewSigmoid creates a new SigmoidOp.
func NewSigmoid[T tensor.Float]() *SigmoidOp[T] {
	return &SigmoidOp[T]{}
}

// Name returns "Sigmoid".
func (op *SigmoidOp[T]) Name() string {
	return "Sigmoid"
}

// UsesOutput reports that Backward reads the remembered output.
func (op *SigmoidOp[T]) UsesOutput() bool {
	return true
}

// Ready reports whether both the input and the output are remembered.
func (op *SigmoidOp[T]) Ready() bool {
	return op.Unary.Ready() && op.Output() != nil
}

// Forward computes σ(x) elementwise.
func (op *SigmoidOp[T]) Forward(x *tensor.Tensor[T]) *tensor.Tensor[T] {
	return x.Map(func(v T) T {
		return T(1 / (1 + math.Exp(-float64(v))))
	})
}

// Backward computes the gradient for sigmoid.
//
// dσ/dx = σ(x) * (1 - σ(x)), so with the remembered output:
// grad_input = grad_output * output * (1 - output).
func (op *SigmoidOp[T]) Backward(gy *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	y, err := rememberedOutput(op.Name(), &op.Unary, gy)
	if err != nil {
		return nil, err
	}
	return gy.Mul(y.Map(func(v T) T { return v * (1 - v) }))
}
