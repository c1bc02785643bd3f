// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/born-ml/activations/internal/tensor"

// DType is the constraint for tensor element types (float32, float64, bool).
type DType = tensor.DType

// Float is the constraint for floating-point element types.
type Float = tensor.Float

// DataType identifies the runtime element type of a RawTensor.
type DataType = tensor.DataType

// Supported data types.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Bool    DataType = tensor.Bool
)

// Device identifies where tensor memory lives.
type Device = tensor.Device

// CPU is the host device.
const CPU Device = tensor.CPU

// Shape represents the dimensions of a tensor.
type Shape = tensor.Shape

// Tensor is a generic N-dimensional array bound to a backend.
//
// Type parameters:
//   - T: element type (float32, float64, bool)
//   - B: backend implementation
type Tensor[T DType, B Backend] = tensor.Tensor[T, B]

// New wraps an existing RawTensor.
func New[T DType, B Backend](raw *RawTensor, b B) *Tensor[T, B] {
	return tensor.New[T, B](raw, b)
}

// FromSlice creates a tensor from a Go slice. The data is copied.
func FromSlice[T DType, B Backend](data []T, shape Shape, b B) (*Tensor[T, B], error) {
	return tensor.FromSlice[T, B](data, shape, b)
}

// Zeros creates a tensor filled with zeros.
func Zeros[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return tensor.Zeros[T, B](shape, b)
}

// Ones creates a tensor filled with ones.
func Ones[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return tensor.Ones[T, B](shape, b)
}

// Full creates a tensor filled with value.
func Full[T DType, B Backend](shape Shape, value T, b B) *Tensor[T, B] {
	return tensor.Full[T, B](shape, value, b)
}

// ZerosLike creates a zero tensor with the shape and backend of t.
func ZerosLike[T DType, B Backend](t *Tensor[T, B]) *Tensor[T, B] {
	return tensor.ZerosLike(t)
}

// OnesLike creates a tensor of ones with the shape and backend of t.
func OnesLike[T DType, B Backend](t *Tensor[T, B]) *Tensor[T, B] {
	return tensor.OnesLike(t)
}

// FullLike creates a tensor filled with value with the shape and backend of t.
func FullLike[T DType, B Backend](t *Tensor[T, B], value T) *Tensor[T, B] {
	return tensor.FullLike(t, value)
}

// Randn creates a tensor with values drawn from the standard normal distribution.
func Randn[T Float, B Backend](shape Shape, b B) *Tensor[T, B] {
	return tensor.Randn[T, B](shape, b)
}

// Where selects elements from x where cond is true and from y elsewhere.
// All three operands broadcast against each other.
func Where[T DType, B Backend](cond *Tensor[bool, B], x, y *Tensor[T, B]) *Tensor[T, B] {
	return tensor.Where(cond, x, y)
}
