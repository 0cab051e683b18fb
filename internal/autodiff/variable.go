package autodiff

import (
	"fmt"

	"github.com/born-ml/cell/internal/tensor"
)

// Variable is a node of the computation graph: a value, the gradient of the
// output with respect to it once Backward has run, and the function that
// produced it. A variable without a creator is a leaf.
//
// The graph never modifies data; only Backward and ClearGrad touch the
// gradient.
type Variable[T tensor.Float] struct {
	data         *tensor.Tensor[T]
	grad         *tensor.Tensor[T]
	creator      Creator[T]
	creatorEpoch uint64
	generation   int
	name         string
}

// NewVariable creates a leaf variable holding data.
func NewVariable[T tensor.Float](data *tensor.Tensor[T]) *Variable[T] {
	return &Variable[T]{data: data}
}

// Data returns the value held by the variable.
//
// The tensor is shared, not copied: changing it through Set or Data changes
// the variable. Functions already called on it keep their own copy.
func (v *Variable[T]) Data() *tensor.Tensor[T] {
	return v.data
}

// Grad returns the accumulated gradient, nil before any backward pass.
func (v *Variable[T]) Grad() *tensor.Tensor[T] {
	return v.grad
}

// ClearGrad drops the accumulated gradient.
func (v *Variable[T]) ClearGrad() {
	v.grad = nil
}

// Creator returns the function that produced the variable, nil for leaves.
func (v *Variable[T]) Creator() Creator[T] {
	return v.creator
}

// SetCreator records c as the producer of this variable.
// Call does this automatically; a nil c turns the variable back into a leaf.
func (v *Variable[T]) SetCreator(c Creator[T]) {
	v.creator = c
	if c == nil {
		v.generation = 0
		v.creatorEpoch = 0
		return
	}
	v.generation = c.Generation() + 1
	v.creatorEpoch = c.epoch()
}

// IsLeaf reports whether the variable has no creator.
func (v *Variable[T]) IsLeaf() bool {
	return v.creator == nil
}

// Generation is 0 for leaves and one more than the creator's generation otherwise.
func (v *Variable[T]) Generation() int {
	return v.generation
}

// Shape returns the shape of the held value.
func (v *Variable[T]) Shape() tensor.Shape {
	return v.data.Shape()
}

// Name returns the optional debugging name.
func (v *Variable[T]) Name() string {
	return v.name
}

// SetName sets the debugging name and returns v for chaining.
func (v *Variable[T]) SetName(name string) *Variable[T] {
	v.name = name
	return v
}

// String returns a human-readable summary of the variable.
func (v *Variable[T]) String() string {
	name := v.name
	if name == "" {
		name = "variable"
	}
	if v.creator == nil {
		return fmt.Sprintf("%s(%s)", name, v.data)
	}
	return fmt.Sprintf("%s(%s, creator=%s)", name, v.data, v.creator.Name())
}
