// Package ops defines the elementwise functions of the autodiff graph.
//
// Each function embeds autodiff.Unary or autodiff.Binary for its remembered
// state and supplies Forward and the local derivative rule:
//   - ExpOp: y = exp(x), dy/dx = exp(x)
//   - PowerOp: y = x^n, dy/dx = n·x^(n-1)
//   - SquareOp: y = x², dy/dx = 2x
//   - AddOp: y = a + b, dy/da = dy/db = 1
//   - MulOp: y = a ⊙ b, dy/da = b, dy/db = a
//   - SubOp, DivOp, SinOp, CosOp, LogOp: input-based rules
//   - SqrtOp, TanhOp, SigmoidOp: rules written in terms of the output, which
//     Call remembers because they implement autodiff.OutputUser
package ops

import (
	"math"

	"github.com/pkg/errors"

	"github.com/born-ml/cell/internal/autodiff"
	"github.com/born-ml/cell/internal/tensor"
)

// Compile-time interface checks.
var (
	_ autodiff.Function[float64]       = (*ExpOp[float64])(nil)
	_ autodiff.Function[float64]       = (*PowerOp[float64])(nil)
	_ autodiff.Function[float64]       = (*SquareOp[float64])(nil)
	_ autodiff.BinaryFunction[float64] = (*AddOp[float64])(nil)
	_ autodiff.BinaryFunction[float64] = (*MulOp[float64])(nil)
	_ autodiff.BinaryFunction[float64] = (*SubOp[float64])(nil)
	_ autodiff.BinaryFunction[float64] = (*DivOp[float64])(nil)
	_ autodiff.Function[float64]       = (*SinOp[float64])(nil)
	_ autodiff.Function[float64]       = (*CosOp[float64])(nil)
	_ autodiff.Function[float64]       = (*LogOp[float64])(nil)
	_ autodiff.Function[float64]       = (*SqrtOp[float64])(nil)
	_ autodiff.Function[float64]       = (*TanhOp[float64])(nil)
	_ autodiff.Function[float64]       = (*SigmoidOp[float64])(nil)
	_ autodiff.OutputUser              = (*SqrtOp[float64])(nil)
	_ autodiff.OutputUser              = (*TanhOp[float64])(nil)
	_ autodiff.OutputUser              = (*SigmoidOp[float64])(nil)
)

func exp[T tensor.Float](v T) T {
	return T(math.Exp(float64(v)))
}

// lift turns a float64 function into an elementwise function over T.
func lift[T tensor.Float](f func(float64) float64) func(T) T {
	return func(v T) T {
		return T(f(float64(v)))
	}
}

// rememberedInput returns the input a unary Backward differentiates at,
// after checking that gy matches it.
func rememberedInput[T tensor.Float](name string, u *autodiff.Unary[T], gy *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	x, err := u.Input()
	if err != nil {
		return nil, errors.WithMessagef(err, "%s.Backward", name)
	}
	if err := autodiff.CheckGradShape(gy, x); err != nil {
		return nil, errors.WithMessagef(err, "%s.Backward", name)
	}
	return x, nil
}

// rememberedInputs is rememberedInput for binary functions.
func rememberedInputs[T tensor.Float](name string, b *autodiff.Binary[T], gy *tensor.Tensor[T]) (x0, x1 *tensor.Tensor[T], err error) {
	x0, x1, err = b.Remembered()
	if err != nil {
		return nil, nil, errors.WithMessagef(err, "%s.Backward", name)
	}
	if err := autodiff.CheckGradShape(gy, x0); err != nil {
		return nil, nil, errors.WithMessagef(err, "%s.Backward", name)
	}
	return x0, x1, nil
}

// sameShape rejects binary inputs that would need broadcasting.
func sameShape[T tensor.Float](name string, x0, x1 *tensor.Tensor[T]) error {
	if !x0.Shape().Equal(x1.Shape()) {
		return errors.Wrapf(tensor.ErrShapeMismatch, "%s: inputs %v and %v", name, x0.Shape(), x1.Shape())
	}
	return nil
}

// rememberedOutput returns the forward result an output-based Backward
// differentiates at, after checking that gy matches it.
func rememberedOutput[T tensor.Float](name string, u *autodiff.Unary[T], gy *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	y := u.Output()
	if y == nil {
		return nil, errors.WithMessagef(errors.WithStack(autodiff.ErrNotForwarded), "%s.Backward", name)
	}
	if err := autodiff.CheckGradShape(gy, y); err != nil {
		return nil, errors.WithMessagef(err, "%s.Backward", name)
	}
	return y, nil
}
