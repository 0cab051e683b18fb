package tensor

import "github.com/gomlx/exceptions"

// Zeros creates a tensor filled with zeros.
// Panics on an invalid shape.
//
// Example:
//
//	t := tensor.Zeros[float32](Shape{3, 4})
func Zeros[T Float](shape Shape) *Tensor[T] {
	t, err := New[T](shape)
	if err != nil {
		exceptions.Panicf("tensor.Zeros: %v", err)
	}
	return t
}

// Ones creates a tensor filled with ones.
//
// Example:
//
//	t := tensor.Ones[float64](Shape{2, 3})
func Ones[T Float](shape Shape) *Tensor[T] {
	return Full[T](shape, 1)
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	t := tensor.Full[float32](Shape{3, 3}, 3.14)
func Full[T Float](shape Shape, value T) *Tensor[T] {
	t := Zeros[T](shape)
	for i := range t.data {
		t.data[i] = value
	}
	return t
}

// Scalar creates a rank-0 tensor holding value.
func Scalar[T Float](value T) *Tensor[T] {
	return Full[T](Shape{}, value)
}

// ZerosLike creates a zero tensor with the same shape as t.
func ZerosLike[T Float](t *Tensor[T]) *Tensor[T] {
	return Zeros[T](t.shape)
}

// OnesLike creates a tensor of ones with the same shape as t.
func OnesLike[T Float](t *Tensor[T]) *Tensor[T] {
	return Ones[T](t.shape)
}
