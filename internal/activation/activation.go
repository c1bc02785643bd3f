// Package activation implements element-wise activation functions and their
// derivatives on top of the tensor abstraction.
//
// Every activation satisfies the same two-operation contract:
//
//	y, err := act.Forward(x)   // f(x), same shape as x
//	g, err := act.Gradient(x)  // f'(x), same shape as x
//
// Activations are immutable after construction and safe for concurrent use.
// Inputs are never modified; each call returns freshly allocated tensors.
package activation

import (
	"fmt"

	"github.com/born-ml/activations/internal/tensor"
)

// Activation is the contract shared by all activation functions.
type Activation[T tensor.Float, B tensor.Backend] interface {
	// Name returns the registry name of the activation (e.g. "relu").
	Name() string

	// Forward applies the activation element-wise.
	Forward(x *tensor.Tensor[T, B]) (*tensor.Tensor[T, B], error)

	// Gradient returns the derivative of the activation evaluated at x.
	Gradient(x *tensor.Tensor[T, B]) (*tensor.Tensor[T, B], error)
}

func checkInput[T tensor.Float, B tensor.Backend](name string, x *tensor.Tensor[T, B]) error {
	if x == nil {
		return fmt.Errorf("%s: nil tensor: %w", name, ErrInvalidInput)
	}
	return nil
}

// scalarLike returns a rank-0 tensor holding v on x's backend.
// It broadcasts against any shape, which avoids materializing constant tensors.
func scalarLike[T tensor.Float, B tensor.Backend](x *tensor.Tensor[T, B], v T) *tensor.Tensor[T, B] {
	return tensor.Full[T, B](tensor.Shape{}, v, x.Backend())
}

// nonNegative returns the mask x >= 0. Zero counts as non-negative; NaN does not.
func nonNegative[T tensor.Float, B tensor.Backend](x *tensor.Tensor[T, B]) *tensor.Tensor[bool, B] {
	return x.GreaterEqual(scalarLike(x, 0))
}

// logistic computes 1 / (1 + exp(-x)).
func logistic[T tensor.Float, B tensor.Backend](x *tensor.Tensor[T, B]) *tensor.Tensor[T, B] {
	den := x.MulScalar(-1).Exp().AddScalar(1)
	return scalarLike(x, 1).Div(den)
}
