// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation.
//
// Variables record the function that created them; Backward walks those links
// from an output back to the leaves and leaves the gradient on every variable.
//
// Example:
//
//	import (
//	    "github.com/born-ml/cell/autodiff"
//	    "github.com/born-ml/cell/tensor"
//	)
//
//	func main() {
//	    x := autodiff.NewVariable(tensor.Scalar(0.5))
//	    y := autodiff.Call(autodiff.Square[float64](), autodiff.Call(autodiff.Exp[float64](), x))
//	    if err := y.Backward(); err != nil {
//	        panic(err)
//	    }
//	    fmt.Println(x.Grad().Item()) // 2·e^(2x) = 2e
//	}
package autodiff

import (
	"github.com/born-ml/cell/internal/autodiff"
	"github.com/born-ml/cell/internal/autodiff/ops"
	"github.com/born-ml/cell/internal/tensor"
)

// Variable is a node of the computation graph.
type Variable[T tensor.Float] = autodiff.Variable[T]

// Creator is the graph-facing part of a function application.
type Creator[T tensor.Float] = autodiff.Creator[T]

// Function is a single-input differentiable operation.
type Function[T tensor.Float] = autodiff.Function[T]

// BinaryFunction is a two-input differentiable operation.
type BinaryFunction[T tensor.Float] = autodiff.BinaryFunction[T]

// Unary is the remembered state to embed when implementing a Function.
type Unary[T tensor.Float] = autodiff.Unary[T]

// Binary is the remembered state to embed when implementing a BinaryFunction.
type Binary[T tensor.Float] = autodiff.Binary[T]

// OutputUser marks functions whose derivative reads their forward result.
type OutputUser = autodiff.OutputUser

// BackwardOption configures Variable.Backward.
type BackwardOption = autodiff.BackwardOption

// Errors reported by functions and the backward pass.
var (
	ErrNotForwarded = autodiff.ErrNotForwarded
	ErrCycle        = autodiff.ErrCycle
	ErrStaleCreator = autodiff.ErrStaleCreator
)

// NewVariable creates a leaf variable.
func NewVariable[T tensor.Float](data *tensor.Tensor[T]) *Variable[T] {
	return autodiff.NewVariable(data)
}

// Call applies f to x and links the result to f.
func Call[T tensor.Float](f Function[T], x *Variable[T]) *Variable[T] {
	return autodiff.Call(f, x)
}

// CallBinary applies f to x0 and x1 and links the result to f.
func CallBinary[T tensor.Float](f BinaryFunction[T], x0, x1 *Variable[T]) (*Variable[T], error) {
	return autodiff.CallBinary(f, x0, x1)
}

// WithSeed sets the gradient fed to the output of a backward pass.
func WithSeed[T tensor.Float](seed *tensor.Tensor[T]) BackwardOption {
	return autodiff.WithSeed(seed)
}

// WithRetainGrad controls whether non-leaf variables keep their gradient.
func WithRetainGrad(retain bool) BackwardOption {
	return autodiff.WithRetainGrad(retain)
}

// CheckGradShape reports tensor.ErrShapeMismatch if gy and x differ in shape.
// Custom Function implementations use it at the top of Backward.
func CheckGradShape[T tensor.Float](gy, x *tensor.Tensor[T]) error {
	return autodiff.CheckGradShape(gy, x)
}

// Exp returns a new exponential function.
func Exp[T tensor.Float]() *ops.ExpOp[T] {
	return ops.NewExp[T]()
}

// Power returns a new function raising elements to the n-th power, n >= 0.
func Power[T tensor.Float](n int) *ops.PowerOp[T] {
	return ops.NewPower[T](n)
}

// Square returns a new squaring function.
func Square[T tensor.Float]() *ops.SquareOp[T] {
	return ops.NewSquare[T]()
}

// Add returns a new elementwise addition function.
func Add[T tensor.Float]() *ops.AddOp[T] {
	return ops.NewAdd[T]()
}

// Mul returns a new elementwise multiplication function.
func Mul[T tensor.Float]() *ops.MulOp[T] {
	return ops.NewMul[T]()
}

// Sub returns a new elementwise subtraction function.
func Sub[T tensor.Float]() *ops.SubOp[T] {
	return ops.NewSub[T]()
}

// Div returns a new elementwise division function.
func Div[T tensor.Float]() *ops.DivOp[T] {
	return ops.NewDiv[T]()
}

// Sin returns a new sine function.
func Sin[T tensor.Float]() *ops.SinOp[T] {
	return ops.NewSin[T]()
}

// Cos returns a new cosine function.
func Cos[T tensor.Float]() *ops.CosOp[T] {
	return ops.NewCos[T]()
}

// Log returns a new natural logarithm function.
func Log[T tensor.Float]() *ops.LogOp[T] {
	return ops.NewLog[T]()
}

// Sqrt returns a new square root function.
func Sqrt[T tensor.Float]() *ops.SqrtOp[T] {
	return ops.NewSqrt[T]()
}

// Tanh returns a new hyperbolic tangent function.
func Tanh[T tensor.Float]() *ops.TanhOp[T] {
	return ops.NewTanh[T]()
}

// Sigmoid returns a new logistic function.
func Sigmoid[T tensor.Float]() *ops.SigmoidOp[T] {
	return ops.NewSigmoid[T]()
}
