package tensor

import "github.com/born-ml/cell/internal/parallel"

// Map returns a new tensor with f applied to every element.
//
// Example:
//
//	y := x.Map(func(v float64) float64 { return math.Exp(v) })
func (t *Tensor[T]) Map(f func(T) T) *Tensor[T] {
	out := &Tensor[T]{
		data:    make([]T, len(t.data)),
		shape:   t.shape.Clone(),
		strides: append([]int(nil), t.strides...),
	}
	src, dst := t.data, out.data
	parallel.ForRange(len(src), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = f(src[i])
		}
	}, ParallelConfig())
	return out
}

// MulScalar multiplies every element by s.
func (t *Tensor[T]) MulScalar(s T) *Tensor[T] {
	return t.Map(func(v T) T { return v * s })
}

// Mul performs element-wise multiplication with broadcasting.
// Returns ErrShapeMismatch if the shapes are not broadcast compatible.
func (t *Tensor[T]) Mul(other *Tensor[T]) (*Tensor[T], error) {
	return zip(t, other, func(a, b T) T { return a * b })
}

// Add performs element-wise addition with broadcasting.
func (t *Tensor[T]) Add(other *Tensor[T]) (*Tensor[T], error) {
	return zip(t, other, func(a, b T) T { return a + b })
}

// Sub performs element-wise subtraction with broadcasting.
func (t *Tensor[T]) Sub(other *Tensor[T]) (*Tensor[T], error) {
	return zip(t, other, func(a, b T) T { return a - b })
}

// Div performs element-wise division with broadcasting.
// Division by zero follows IEEE 754.
func (t *Tensor[T]) Div(other *Tensor[T]) (*Tensor[T], error) {
	return zip(t, other, func(a, b T) T { return a / b })
}

// Sum returns the sum of all elements.
func (t *Tensor[T]) Sum() T {
	var sum T
	for _, v := range t.data {
		sum += v
	}
	return sum
}

// zip combines two tensors elementwise, broadcasting when shapes differ.
func zip[T Float](a, b *Tensor[T], f func(a, b T) T) (*Tensor[T], error) {
	outShape, needsBroadcast, err := BroadcastShapes(a.shape, b.shape)
	if err != nil {
		return nil, err
	}
	out, err := New[T](outShape)
	if err != nil {
		return nil, err
	}

	cfg := ParallelConfig()
	dst, aData, bData := out.data, a.data, b.data
	if !needsBroadcast {
		parallel.ForRange(len(dst), func(start, end int) {
			for i := start; i < end; i++ {
				dst[i] = f(aData[i], bData[i])
			}
		}, cfg)
		return out, nil
	}

	outStrides := out.strides
	aStrides := broadcastStrides(a.shape, outShape)
	bStrides := broadcastStrides(b.shape, outShape)
	parallel.ForRange(len(dst), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = f(aData[flatIndex(i, outStrides, aStrides)], bData[flatIndex(i, outStrides, bStrides)])
		}
	}, cfg)
	return out, nil
}
