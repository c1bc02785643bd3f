package activation

import "github.com/born-ml/activations/internal/tensor"

// ELUConfig configures an ELU activation.
type ELUConfig struct {
	Alpha float64 // Saturation value for large negative inputs is -Alpha.
}

// DefaultELUConfig returns Alpha = 0.1.
func DefaultELUConfig() ELUConfig {
	return ELUConfig{Alpha: 0.1}
}

// ELU is the Exponential Linear Unit.
//
//	f(x)  = x if x >= 0 else alpha * (exp(x) - 1)
//	f'(x) = 1 if x >= 0 else f(x) + alpha
type ELU[T tensor.Float, B tensor.Backend] struct {
	alpha T
}

// NewELU creates an ELU activation.
func NewELU[T tensor.Float, B tensor.Backend](cfg ELUConfig) *ELU[T, B] {
	return &ELU[T, B]{alpha: T(cfg.Alpha)}
}

// Name returns "elu".
func (e *ELU[T, B]) Name() string { return NameELU }

// Alpha returns the configured alpha.
func (e *ELU[T, B]) Alpha() T { return e.alpha }

// Forward applies ELU element-wise.
func (e *ELU[T, B]) Forward(x *tensor.Tensor[T, B]) (*tensor.Tensor[T, B], error) {
	if err := checkInput(NameELU, x); err != nil {
		return nil, err
	}
	return e.forward(x), nil
}

// Gradient returns 1 where x >= 0 and ELU(x) + alpha elsewhere.
func (e *ELU[T, B]) Gradient(x *tensor.Tensor[T, B]) (*tensor.Tensor[T, B], error) {
	if err := checkInput(NameELU, x); err != nil {
		return nil, err
	}
	return tensor.Where(nonNegative(x), scalarLike(x, 1), e.forward(x).AddScalar(e.alpha)), nil
}

func (e *ELU[T, B]) forward(x *tensor.Tensor[T, B]) *tensor.Tensor[T, B] {
	neg := x.Exp().SubScalar(1).MulScalar(e.alpha)
	return tensor.Where(nonNegative(x), x, neg)
}
