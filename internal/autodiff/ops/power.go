package ops

import (
	"fmt"
	"math"

	"github.com/gomlx/exceptions"

	"github.com/born-ml/cell/internal/autodiff"
	"github.com/born-ml/cell/internal/tensor"
)

// PowerOp raises every element to a fixed non-negative integer power: y = x^n.
//
// Backward pass:
//   - d(x^n)/dx = n * x^(n-1)
//   - grad_input = grad_output * n * x^(n-1)
//
// For n = 0 the gradient is zero wherever x is non-zero; at x = 0 the term
// 0 * 0^-1 is NaN.
type PowerOp[T tensor.Float] struct {
	autodiff.Unary[T]
	n int
}

// NewPower creates a PowerOp with exponent n. Panics if n is negative.
func NewPower[T tensor.Float](n int) *PowerOp[T] {
	if n < 0 {
		exceptions.Panicf("ops.NewPower: exponent must be non-negative, got %d", n)
	}
	return &PowerOp[T]{n: n}
}

// N returns the exponent.
func (op *PowerOp[T]) N() int {
	return op.n
}

// Name returns "Pow(n)".
func (op *PowerOp[T]) Name() string {
	return fmt.Sprintf("Pow(%d)", op.n)
}

// Forward computes x^n elementwise.
func (op *PowerOp[T]) Forward(x *tensor.Tensor[T]) *tensor.Tensor[T] {
	n := float64(op.n)
	return x.Map(func(v T) T {
		return T(math.Pow(float64(v), n))
	})
}

// Backward computes gy * n * x^(n-1).
func (op *PowerOp[T]) Backward(gy *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	x, err := rememberedInput(op.Name(), &op.Unary, gy)
	if err != nil {
		return nil, err
	}
	nMinus1 := float64(op.n - 1)
	local := x.Map(func(v T) T {
		return T(math.Pow(float64(v), nMinus1))
	})
	return gy.Mul(local.MulScalar(T(op.n)))
}
