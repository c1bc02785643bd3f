package activation

import "github.com/born-ml/activations/internal/tensor"

// ReLU is a Rectified Linear Unit activation.
//
// Applies the element-wise function: f(x) = x if x >= 0 else 0
//
// There is no threshold or upper bound; the rectifier is unbounded above.
// The gradient at exactly 0 is 1.
type ReLU[T tensor.Float, B tensor.Backend] struct{}

// NewReLU creates a new ReLU activation.
func NewReLU[T tensor.Float, B tensor.Backend]() *ReLU[T, B] {
	return &ReLU[T, B]{}
}

// Name returns "relu".
func (r *ReLU[T, B]) Name() string { return NameReLU }

// Forward applies max(x, 0) element-wise.
func (r *ReLU[T, B]) Forward(x *tensor.Tensor[T, B]) (*tensor.Tensor[T, B], error) {
	if err := checkInput(NameReLU, x); err != nil {
		return nil, err
	}
	return tensor.Where(nonNegative(x), x, scalarLike(x, 0)), nil
}

// Gradient returns 1 where x >= 0 and 0 elsewhere.
func (r *ReLU[T, B]) Gradient(x *tensor.Tensor[T, B]) (*tensor.Tensor[T, B], error) {
	if err := checkInput(NameReLU, x); err != nil {
		return nil, err
	}
	return tensor.Where(nonNegative(x), scalarLike(x, 1), scalarLike(x, 0)), nil
}
