// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package activation

import (
	"github.com/born-ml/activations/internal/activation"
	"github.com/born-ml/activations/tensor"
)

// Activation is the contract shared by all activation functions.
type Activation[T tensor.Float, B tensor.Backend] = activation.Activation[T, B]

// Errors returned by activations and the registry.
var (
	// ErrInvalidInput indicates a tensor the activation cannot process.
	ErrInvalidInput = activation.ErrInvalidInput

	// ErrUnknownActivation indicates a name not known to New.
	ErrUnknownActivation = activation.ErrUnknownActivation
)

// Fixed SELU constants.
const (
	SELUScale = activation.SELUScale
	SELUAlpha = activation.SELUAlpha
)

// Registry names.
const (
	NameSigmoid   = activation.NameSigmoid
	NameSoftmax   = activation.NameSoftmax
	NameTanH      = activation.NameTanH
	NameReLU      = activation.NameReLU
	NameLeakyReLU = activation.NameLeakyReLU
	NameELU       = activation.NameELU
	NameSELU      = activation.NameSELU
	NameSoftPlus  = activation.NameSoftPlus
)

// Sigmoid represents the logistic activation function.
type Sigmoid[T tensor.Float, B tensor.Backend] = activation.Sigmoid[T, B]

// NewSigmoid creates a new Sigmoid activation.
//
// Example:
//
//	sigmoid := activation.NewSigmoid[float32, *cpu.Backend]()
func NewSigmoid[T tensor.Float, B tensor.Backend]() *Sigmoid[T, B] {
	return activation.NewSigmoid[T, B]()
}

// SoftmaxConfig configures a Softmax activation.
type SoftmaxConfig = activation.SoftmaxConfig

// DefaultSoftmaxConfig normalizes along the last axis.
func DefaultSoftmaxConfig() SoftmaxConfig {
	return activation.DefaultSoftmaxConfig()
}

// Softmax represents the softmax activation function.
type Softmax[T tensor.Float, B tensor.Backend] = activation.Softmax[T, B]

// NewSoftmax creates a new Softmax activation.
//
// Example:
//
//	softmax := activation.NewSoftmax[float32, *cpu.Backend](activation.SoftmaxConfig{Axis: 1})
func NewSoftmax[T tensor.Float, B tensor.Backend](cfg SoftmaxConfig) *Softmax[T, B] {
	return activation.NewSoftmax[T, B](cfg)
}

// TanH represents the hyperbolic tangent activation function.
type TanH[T tensor.Float, B tensor.Backend] = activation.TanH[T, B]

// NewTanH creates a new TanH activation.
func NewTanH[T tensor.Float, B tensor.Backend]() *TanH[T, B] {
	return activation.NewTanH[T, B]()
}

// ReLU represents the Rectified Linear Unit activation function.
type ReLU[T tensor.Float, B tensor.Backend] = activation.ReLU[T, B]

// NewReLU creates a new ReLU activation.
func NewReLU[T tensor.Float, B tensor.Backend]() *ReLU[T, B] {
	return activation.NewReLU[T, B]()
}

// LeakyReLUConfig configures a LeakyReLU activation.
type LeakyReLUConfig = activation.LeakyReLUConfig

// DefaultLeakyReLUConfig returns Alpha = 0.1.
func DefaultLeakyReLUConfig() LeakyReLUConfig {
	return activation.DefaultLeakyReLUConfig()
}

// LeakyReLU represents the leaky rectifier.
type LeakyReLU[T tensor.Float, B tensor.Backend] = activation.LeakyReLU[T, B]

// NewLeakyReLU creates a new LeakyReLU activation.
func NewLeakyReLU[T tensor.Float, B tensor.Backend](cfg LeakyReLUConfig) *LeakyReLU[T, B] {
	return activation.NewLeakyReLU[T, B](cfg)
}

// ELUConfig configures an ELU activation.
type ELUConfig = activation.ELUConfig

// DefaultELUConfig returns Alpha = 0.1.
func DefaultELUConfig() ELUConfig {
	return activation.DefaultELUConfig()
}

// ELU represents the Exponential Linear Unit.
type ELU[T tensor.Float, B tensor.Backend] = activation.ELU[T, B]

// NewELU creates a new ELU activation.
func NewELU[T tensor.Float, B tensor.Backend](cfg ELUConfig) *ELU[T, B] {
	return activation.NewELU[T, B](cfg)
}

// SELU represents the Scaled Exponential Linear Unit.
type SELU[T tensor.Float, B tensor.Backend] = activation.SELU[T, B]

// NewSELU creates a new SELU activation.
func NewSELU[T tensor.Float, B tensor.Backend]() *SELU[T, B] {
	return activation.NewSELU[T, B]()
}

// SoftPlusConfig configures a SoftPlus activation.
type SoftPlusConfig = activation.SoftPlusConfig

// DefaultSoftPlusConfig returns the direct formulation.
func DefaultSoftPlusConfig() SoftPlusConfig {
	return activation.DefaultSoftPlusConfig()
}

// SoftPlus represents the softplus activation function.
type SoftPlus[T tensor.Float, B tensor.Backend] = activation.SoftPlus[T, B]

// NewSoftPlus creates a new SoftPlus activation.
//
// Example:
//
//	softplus := activation.NewSoftPlus[float64, *cpu.Backend](activation.SoftPlusConfig{Stable: true})
func NewSoftPlus[T tensor.Float, B tensor.Backend](cfg SoftPlusConfig) *SoftPlus[T, B] {
	return activation.NewSoftPlus[T, B](cfg)
}

// Config selects parameters for activations built by New.
// A nil field means the activation's default configuration.
type Config = activation.Config

// New builds the activation registered under name (case-insensitive).
func New[T tensor.Float, B tensor.Backend](name string, cfg Config) (Activation[T, B], error) {
	return activation.New[T, B](name, cfg)
}

// Names returns the registry names of all built-in activations, sorted.
func Names() []string {
	return activation.Names()
}
