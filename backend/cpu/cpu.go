// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/born-ml/activations/internal/backend/cpu"
	"github.com/born-ml/activations/internal/parallel"
	"github.com/born-ml/activations/tensor"
)

// Backend represents the CPU backend implementation.
//
// All operations are pure Go. Element-wise loops and reductions are split
// across goroutines when the tensor is large enough.
type Backend = internalcpu.CPUBackend

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// ParallelConfig controls how the backend splits work across goroutines.
type ParallelConfig = parallel.Config

// DefaultParallelConfig uses all CPUs with a minimum chunk of 64 elements.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}

// New creates a new CPU backend.
//
// Example:
//
//	import (
//	    "github.com/born-ml/activations/backend/cpu"
//	    "github.com/born-ml/activations/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
//	}
func New() *Backend {
	return internalcpu.New()
}

// NewWithConfig creates a CPU backend with explicit parallelism settings.
// Pass ParallelConfig{} to run every operation on the calling goroutine.
func NewWithConfig(cfg ParallelConfig) *Backend {
	return internalcpu.NewWithConfig(cfg)
}
