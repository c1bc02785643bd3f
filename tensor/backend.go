// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/born-ml/activations/internal/tensor"

// Backend defines the operations a compute backend provides to tensors.
//
// Implementations:
//   - backend/cpu: Pure Go, optionally parallel across goroutines
//
// Backends panic on misuse such as incompatible shapes or unsupported dtypes.
// Results are always freshly allocated.
type Backend interface {
	// Element-wise binary operations with broadcasting.
	Add(a, b *RawTensor) *RawTensor // Element-wise addition.
	Sub(a, b *RawTensor) *RawTensor // Element-wise subtraction.
	Mul(a, b *RawTensor) *RawTensor // Element-wise multiplication.
	Div(a, b *RawTensor) *RawTensor // Element-wise division.

	// Scalar operations (element-wise with scalar).
	AddScalar(x *RawTensor, scalar any) *RawTensor // Add scalar.
	SubScalar(x *RawTensor, scalar any) *RawTensor // Subtract scalar.
	MulScalar(x *RawTensor, scalar any) *RawTensor // Multiply by scalar.
	DivScalar(x *RawTensor, scalar any) *RawTensor // Divide by scalar.

	// Math operations (element-wise).
	Exp(x *RawTensor) *RawTensor // Exponential.
	Log(x *RawTensor) *RawTensor // Natural logarithm.

	// Reduction operations.
	MaxDim(x *RawTensor, dim int, keepDim bool) *RawTensor // Maximum along dimension.
	SumDim(x *RawTensor, dim int, keepDim bool) *RawTensor // Sum along dimension.

	// Comparison and selection.
	GreaterEqual(a, b *RawTensor) *RawTensor     // a >= b, bool result.
	Where(condition, x, y *RawTensor) *RawTensor // Conditional element selection.

	// Metadata.
	Name() string   // Backend name (e.g., "CPU").
	Device() Device // Device type.
}

// Compile-time check that internal Backend implements public Backend.
var _ Backend = tensor.Backend(nil)
