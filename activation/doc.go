// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package activation provides element-wise activation functions and their
// derivatives for neural networks.
//
// # Overview
//
// Eight activations are available:
//   - Sigmoid: 1 / (1 + exp(-x))
//   - Softmax: exp(x) / sum(exp(x)) along an axis (rank >= 2 input)
//   - TanH: hyperbolic tangent
//   - ReLU: max(x, 0)
//   - LeakyReLU: x for x >= 0, alpha*x otherwise (alpha = 0.1)
//   - ELU: x for x >= 0, alpha*(exp(x)-1) otherwise (alpha = 0.1)
//   - SELU: scaled ELU with fixed self-normalizing constants
//   - SoftPlus: log(1 + exp(x))
//
// Each one implements Activation: Forward computes f(x) and Gradient computes
// f'(x) at the same input. Both return tensors shaped like the input.
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
//	    logits, _ := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{1, 3}, backend)
//
//	    softmax := activation.NewSoftmax[float32, *cpu.Backend](activation.DefaultSoftmaxConfig())
//	    probs, err := softmax.Forward(logits)
//	}
//
// Activations can also be selected by name:
//
//	act, err := activation.New[float32, *cpu.Backend]("leaky_relu", activation.Config{})
//
// # Errors
//
// Contract violations return errors wrapping ErrInvalidInput: a nil tensor,
// or Softmax applied to a tensor of rank < 2 or along a missing axis.
// Unknown registry names return ErrUnknownActivation. Numeric overflow is not
// an error; it surfaces as IEEE infinities.
package activation
