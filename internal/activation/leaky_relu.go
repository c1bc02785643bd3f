package activation

import "github.com/born-ml/activations/internal/tensor"

// LeakyReLUConfig configures a LeakyReLU activation.
type LeakyReLUConfig struct {
	Alpha float64 // Slope for negative inputs.
}

// DefaultLeakyReLUConfig returns Alpha = 0.1.
func DefaultLeakyReLUConfig() LeakyReLUConfig {
	return LeakyReLUConfig{Alpha: 0.1}
}

// LeakyReLU passes non-negative values through and scales negative ones by Alpha.
//
//	f(x)  = x if x >= 0 else alpha * x
//	f'(x) = 1 if x >= 0 else alpha
type LeakyReLU[T tensor.Float, B tensor.Backend] struct {
	alpha T
}

// NewLeakyReLU creates a LeakyReLU activation.
func NewLeakyReLU[T tensor.Float, B tensor.Backend](cfg LeakyReLUConfig) *LeakyReLU[T, B] {
	return &LeakyReLU[T, B]{alpha: T(cfg.Alpha)}
}

// Name returns "leaky_relu".
func (l *LeakyReLU[T, B]) Name() string { return NameLeakyReLU }

// Alpha returns the negative slope.
func (l *LeakyReLU[T, B]) Alpha() T { return l.alpha }

// Forward applies the leaky rectifier element-wise.
func (l *LeakyReLU[T, B]) Forward(x *tensor.Tensor[T, B]) (*tensor.Tensor[T, B], error) {
	if err := checkInput(NameLeakyReLU, x); err != nil {
		return nil, err
	}
	return tensor.Where(nonNegative(x), x, x.MulScalar(l.alpha)), nil
}

// Gradient returns 1 where x >= 0 and alpha elsewhere.
func (l *LeakyReLU[T, B]) Gradient(x *tensor.Tensor[T, B]) (*tensor.Tensor[T, B], error) {
	if err := checkInput(NameLeakyReLU, x); err != nil {
		return nil, err
	}
	return tensor.Where(nonNegative(x), scalarLike(x, 1), scalarLike(x, l.alpha)), nil
}
