package activation

import "github.com/born-ml/activations/internal/tensor"

// Fixed SELU constants from Klambauer et al., "Self-Normalizing Neural Networks".
const (
	SELUScale = 1.0507009873554804934193349852946
	SELUAlpha = 1.6732632423543772848170429916717
)

// SELU is the Scaled Exponential Linear Unit. Its constants are fixed.
//
//	f(x)  = scale * (x if x >= 0 else alpha * (exp(x) - 1))
//	f'(x) = scale * (1 if x >= 0 else alpha * exp(x))
type SELU[T tensor.Float, B tensor.Backend] struct{}

// NewSELU creates a SELU activation.
func NewSELU[T tensor.Float, B tensor.Backend]() *SELU[T, B] {
	return &SELU[T, B]{}
}

// Name returns "selu".
func (s *SELU[T, B]) Name() string { return NameSELU }

// Forward applies SELU element-wise.
func (s *SELU[T, B]) Forward(x *tensor.Tensor[T, B]) (*tensor.Tensor[T, B], error) {
	if err := checkInput(NameSELU, x); err != nil {
		return nil, err
	}
	neg := x.Exp().SubScalar(1).MulScalar(SELUAlpha)
	return tensor.Where(nonNegative(x), x, neg).MulScalar(SELUScale), nil
}

// Gradient returns the SELU derivative.
func (s *SELU[T, B]) Gradient(x *tensor.Tensor[T, B]) (*tensor.Tensor[T, B], error) {
	if err := checkInput(NameSELU, x); err != nil {
		return nil, err
	}
	neg := x.Exp().MulScalar(SELUAlpha)
	return tensor.Where(nonNegative(x), scalarLike(x, 1), neg).MulScalar(SELUScale), nil
}
