// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides a pure Go CPU backend for tensor operations.
//
// # Overview
//
// This package implements a CPU backend with:
//   - Pure Go implementation (no CGO)
//   - Float32 and Float64 support
//   - NumPy-compatible broadcasting
//   - Reductions along any dimension with optional keepDim
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/activations/activation"
//	    "github.com/born-ml/activations/backend/cpu"
//	    "github.com/born-ml/activations/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    x := tensor.Randn[float32](tensor.Shape{4, 10}, backend)
//	    relu := activation.NewReLU[float32, *cpu.Backend]()
//	    y, _ := relu.Forward(x)
//	}
//
// # Thread Safety
//
// The CPU backend is safe for concurrent use. Each tensor operation
// is isolated and does not share mutable state.
package cpu
