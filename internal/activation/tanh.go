package activation

import "github.com/born-ml/activations/internal/tensor"

// TanH is the hyperbolic tangent activation.
//
// Applies the element-wise function: tanh(x) = 2 / (1 + exp(-2x)) - 1
//
// TanH squashes values to the range (-1, 1) and is zero-centered.
type TanH[T tensor.Float, B tensor.Backend] struct{}

// NewTanH creates a new TanH activation.
func NewTanH[T tensor.Float, B tensor.Backend]() *TanH[T, B] {
	return &TanH[T, B]{}
}

// Name returns "tanh".
func (a *TanH[T, B]) Name() string { return NameTanH }

// Forward applies tanh(x) element-wise.
func (a *TanH[T, B]) Forward(x *tensor.Tensor[T, B]) (*tensor.Tensor[T, B], error) {
	if err := checkInput(NameTanH, x); err != nil {
		return nil, err
	}
	return tanh(x), nil
}

// Gradient returns 1 - tanh(x)^2.
func (a *TanH[T, B]) Gradient(x *tensor.Tensor[T, B]) (*tensor.Tensor[T, B], error) {
	if err := checkInput(NameTanH, x); err != nil {
		return nil, err
	}
	y := tanh(x)
	return y.Mul(y).MulScalar(-1).AddScalar(1), nil
}

func tanh[T tensor.Float, B tensor.Backend](x *tensor.Tensor[T, B]) *tensor.Tensor[T, B] {
	den := x.MulScalar(-2).Exp().AddScalar(1)
	return scalarLike(x, 2).Div(den).SubScalar(1)
}
