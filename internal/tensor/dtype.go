// Package tensor provides the dense n-dimensional array used as the value
// type of the autodiff graph.
package tensor

import (
	"unsafe"

	"github.com/gomlx/exceptions"
	"golang.org/x/exp/constraints"
)

// Float is the element constraint for tensors.
//
// Autodiff needs exponentiation, powers and scaling by numeric literals, so
// only floating point types are accepted.
type Float interface {
	constraints.Float
}

// DataType names the element type of a tensor at runtime.
type DataType int

const (
	Float32 DataType = iota
	Float64
)

// Size is the width of one element in bytes.
func (dt DataType) Size() int {
	if dt != Float32 && dt != Float64 {
		exceptions.Panicf("tensor.DataType(%d).Size: unknown data type", int(dt))
	}
	return 4 << int(dt)
}

var dataTypeNames = [...]string{Float32: "float32", Float64: "float64"}

func (dt DataType) String() string {
	if dt < 0 || int(dt) >= len(dataTypeNames) {
		return "unknown"
	}
	return dataTypeNames[dt]
}

// DTypeOf infers the DataType of T.
// Named float types report the DataType of their underlying type.
func DTypeOf[T Float]() DataType {
	var dummy T
	if unsafe.Sizeof(dummy) == 4 {
		return Float32
	}
	return Float64
}
