package activation

import "github.com/born-ml/activations/internal/tensor"

// SoftPlusConfig configures a SoftPlus activation.
type SoftPlusConfig struct {
	// Stable evaluates x + log(1 + exp(-x)) for x >= 0 instead of
	// log(1 + exp(x)). Without it, exp(x) overflows for large x and the
	// result becomes +Inf instead of growing linearly.
	Stable bool
}

// DefaultSoftPlusConfig returns the direct formulation (Stable = false).
func DefaultSoftPlusConfig() SoftPlusConfig {
	return SoftPlusConfig{}
}

// SoftPlus is a smooth approximation of ReLU.
//
//	f(x)  = log(1 + exp(x))
//	f'(x) = 1 / (1 + exp(-x))
type SoftPlus[T tensor.Float, B tensor.Backend] struct {
	stable bool
}

// NewSoftPlus creates a SoftPlus activation.
func NewSoftPlus[T tensor.Float, B tensor.Backend](cfg SoftPlusConfig) *SoftPlus[T, B] {
	return &SoftPlus[T, B]{stable: cfg.Stable}
}

// Name returns "softplus".
func (s *SoftPlus[T, B]) Name() string { return NameSoftPlus }

// Forward applies log(1 + exp(x)) element-wise.
func (s *SoftPlus[T, B]) Forward(x *tensor.Tensor[T, B]) (*tensor.Tensor[T, B], error) {
	if err := checkInput(NameSoftPlus, x); err != nil {
		return nil, err
	}

	direct := x.Exp().AddScalar(1).Log()
	if !s.stable {
		return direct, nil
	}

	// Both branches are evaluated; Where keeps only the finite one.
	shifted := x.MulScalar(-1).Exp().AddScalar(1).Log().Add(x)
	return tensor.Where(nonNegative(x), shifted, direct), nil
}

// Gradient returns the logistic sigmoid of x.
func (s *SoftPlus[T, B]) Gradient(x *tensor.Tensor[T, B]) (*tensor.Tensor[T, B], error) {
	if err := checkInput(NameSoftPlus, x); err != nil {
		return nil, err
	}
	return logistic(x), nil
}
