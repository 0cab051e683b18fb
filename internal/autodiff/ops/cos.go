package ops

import (
	"math"

	"github.com/born-ml/cell/internal/autodiff"
	"github.com/born-ml/cell/internal/tensor"
)

// CosOp represents the cosine operation: y = cos(x).
//
// Backward pass:
//   - d(cos(x))/dx = -sin(x)
//   - grad_input = -grad_output * sin(input)
type CosOp[T tensor.Float] struct {
	autodiff.Unary[T]
}

// NewCos creates a new CosOp.
func NewCos[T tensor.Float]() *CosOp[T] {
	return &CosOp[T]{}
}

// Name returns "Cos".
func (op *CosOp[T]) Name() string {
	return "Cos"
}

// Forward computes cos(x) elementwise.
func (op *CosOp[T]) Forward(x *tensor.Tensor[T]) *tensor.Tensor[T] {
	return x.Map(lift[T](math.Cos))
}

// Backward computes -gy * sin(x).
func (op *CosOp[T]) Backward(gy *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	x, err := rememberedInput(op.Name(), &op.Unary, gy)
	if err != nil {
		return nil, err
	}
	return gy.Mul(x.Map(func(v T) T { return -T(math.Sin(float64(v))) }))
}
