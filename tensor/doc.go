// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the type-safe tensors that activations operate on.
//
// # Overview
//
// A Tensor[T, B] pairs a row-major buffer with the Backend that computes on it.
// Every operation allocates a new tensor; inputs are never modified.
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/activations/backend/cpu"
//	    "github.com/born-ml/activations/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    x, _ := tensor.FromSlice([]float32{1, -2, 3, -4}, tensor.Shape{2, 2}, backend)
//	    y := x.Exp().AddScalar(1).Log()
//	}
//
// # Supported Data Types
//
//   - float32, float64 (all arithmetic)
//   - bool (comparison results and Where masks)
//
// # Broadcasting
//
// Binary operations follow NumPy broadcasting rules, including rank-0
// scalars:
//
//	a := tensor.Zeros[float32](tensor.Shape{3, 1}, backend) // (3, 1)
//	b := tensor.Ones[float32](tensor.Shape{3, 4}, backend)  // (3, 4)
//	c := a.Add(b)                                            // (3, 4)
//
// Reductions with keepDim produce shapes that broadcast back against their input:
//
//	m := x.MaxDim(-1, true) // (2, 1)
//	d := x.Sub(m)           // (2, 2)
package tensor
