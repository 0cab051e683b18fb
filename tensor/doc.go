// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the dense n-dimensional arrays used by cell.
//
// # Overview
//
// Tensors hold float32 or float64 elements (or named types over them) in
// row-major order. This package provides:
//   - Generic tensors (Tensor[T])
//   - NumPy-style broadcasting for Add, Sub and Mul
//   - Elementwise Map and MulScalar
//   - Half-precision import and export
//
// # Basic Usage
//
//	x, err := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{2, 2})
//	y := x.Map(math.Exp)
//	z, err := x.Mul(y)
//
// Large tensors are processed by several goroutines; see SetParallelConfig.
package tensor
