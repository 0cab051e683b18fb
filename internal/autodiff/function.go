// Package autodiff implements reverse-mode automatic differentiation over
// Variable nodes linked to the functions that created them.
//
// A Function is one application of an elementwise operation: it computes a
// forward value, remembers a private copy of its input, and later turns an
// upstream gradient into the gradient with respect to that input.
//
//	x := autodiff.NewVariable(t)
//	y := autodiff.Call(ops.NewSquare[float64](), x)
//	err := y.Backward()
//	dx := x.Grad()
package autodiff

import (
	"github.com/pkg/errors"

	"github.com/born-ml/cell/internal/tensor"
)

// Creator is the part of a function application visible to the graph:
// the variables it consumed and its position in the graph.
//
// Implementations embed Unary or Binary, which provide everything except Name.
type Creator[T tensor.Float] interface {
	// Name identifies the operation in logs and errors.
	Name() string

	// Inputs returns the variables consumed by the last call, nil before any call.
	Inputs() []*Variable[T]

	// Generation is the largest generation among Inputs.
	Generation() int

	// Ready reports whether the state Backward reads is remembered.
	Ready() bool

	link(inputs ...*Variable[T])
	epoch() uint64
}

// Function is a single-input elementwise operation.
//
// An instance is single-use: each call overwrites the remembered input, so a
// Backward pending against an earlier call computes the wrong derivative.
type Function[T tensor.Float] interface {
	Creator[T]

	// Forward computes the output. It must not touch remembered state.
	Forward(x *tensor.Tensor[T]) *tensor.Tensor[T]

	// Backward multiplies gy by the local derivative at the remembered input.
	// Fails with ErrNotForwarded before any input was remembered, and with
	// tensor.ErrShapeMismatch if gy's shape differs from the input's.
	Backward(gy *tensor.Tensor[T]) (*tensor.Tensor[T], error)

	// RememberInput stores a private copy of x for Backward.
	RememberInput(x *tensor.Tensor[T])

	// RememberOutput stores a private copy of the forward result.
	RememberOutput(y *tensor.Tensor[T])
}

// BinaryFunction is a two-input elementwise operation.
type BinaryFunction[T tensor.Float] interface {
	Creator[T]

	// Forward computes the output, failing if the inputs' shapes differ.
	Forward(x0, x1 *tensor.Tensor[T]) (*tensor.Tensor[T], error)

	// Backward returns the gradients with respect to both inputs.
	Backward(gy *tensor.Tensor[T]) (gx0, gx1 *tensor.Tensor[T], err error)

	// RememberInputs stores private copies of both inputs for Backward.
	RememberInputs(x0, x1 *tensor.Tensor[T])

	// RememberOutput stores a private copy of the forward result.
	RememberOutput(y *tensor.Tensor[T])
}

// OutputUser is implemented by functions whose derivative is expressed in
// terms of their forward result. Call remembers the output for them.
type OutputUser interface {
	UsesOutput() bool
}

// node holds the graph links shared by Unary and Binary.
type node[T tensor.Float] struct {
	inputs     []*Variable[T]
	generation int
	calls      uint64
}

// Inputs returns the variables consumed by the last call.
func (n *node[T]) Inputs() []*Variable[T] {
	return n.inputs
}

// Generation returns the largest generation among the inputs.
func (n *node[T]) Generation() int {
	return n.generation
}

func (n *node[T]) link(inputs ...*Variable[T]) {
	n.inputs = inputs
	n.generation = 0
	for _, in := range inputs {
		n.generation = max(n.generation, in.Generation())
	}
	n.calls++
}

func (n *node[T]) epoch() uint64 {
	return n.calls
}

// Unary is the remembered state of a single-input function.
// Embed it to implement Function.
type Unary[T tensor.Float] struct {
	node[T]
	input  *tensor.Tensor[T]
	output *tensor.Tensor[T]
}

// RememberInput stores a deep copy of x.
func (u *Unary[T]) RememberInput(x *tensor.Tensor[T]) {
	u.input = x.Clone()
}

// RememberOutput stores a deep copy of y.
func (u *Unary[T]) RememberOutput(y *tensor.Tensor[T]) {
	u.output = y.Clone()
}

// Ready reports whether an input has been remembered. Functions whose
// Backward reads the output override it to require that as well.
func (u *Unary[T]) Ready() bool {
	return u.input != nil
}

// Input returns the remembered input, or ErrNotForwarded.
func (u *Unary[T]) Input() (*tensor.Tensor[T], error) {
	if u.input == nil {
		return nil, errors.WithStack(ErrNotForwarded)
	}
	return u.input, nil
}

// Output returns the remembered output, nil if none was remembered.
func (u *Unary[T]) Output() *tensor.Tensor[T] {
	return u.output
}

// Binary is the remembered state of a two-input function.
// Embed it to implement BinaryFunction.
type Binary[T tensor.Float] struct {
	node[T]
	x0, x1 *tensor.Tensor[T]
	output *tensor.Tensor[T]
}

// RememberInputs stores deep copies of both inputs.
func (b *Binary[T]) RememberInputs(x0, x1 *tensor.Tensor[T]) {
	b.x0 = x0.Clone()
	b.x1 = x1.Clone()
}

// RememberOutput stores a deep copy of y.
func (b *Binary[T]) RememberOutput(y *tensor.Tensor[T]) {
	b.output = y.Clone()
}

// Ready reports whether inputs have been remembered.
func (b *Binary[T]) Ready() bool {
	return b.x0 != nil
}

// Remembered returns both remembered inputs, or ErrNotForwarded.
func (b *Binary[T]) Remembered() (x0, x1 *tensor.Tensor[T], err error) {
	if b.x0 == nil {
		return nil, nil, errors.WithStack(ErrNotForwarded)
	}
	return b.x0, b.x1, nil
}

// Output returns the remembered output, nil if none was remembered.
func (b *Binary[T]) Output() *tensor.Tensor[T] {
	return b.output
}

// CheckGradShape verifies that an upstream gradient matches the shape of the
// value it is differentiated against.
func CheckGradShape[T tensor.Float](gy, x *tensor.Tensor[T]) error {
	if !gy.Shape().Equal(x.Shape()) {
		return errors.Wrapf(tensor.ErrShapeMismatch, "upstream gradient %v does not match input %v",
			gy.Shape(), x.Shape())
	}
	return nil
}
