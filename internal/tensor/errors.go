package tensor

import "github.com/pkg/errors"

var (
	// ErrShapeMismatch reports operands whose shapes are incompatible.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrInvalidShape reports a shape with a non-positive dimension, or a
	// shape that disagrees with the number of supplied elements.
	ErrInvalidShape = errors.New("invalid shape")
)
