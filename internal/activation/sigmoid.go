package activation

import "github.com/born-ml/activations/internal/tensor"

// Sigmoid is the logistic activation.
//
// Applies the element-wise function: σ(x) = 1 / (1 + exp(-x))
//
// Sigmoid squashes values to the range (0, 1). At extreme magnitudes the
// result saturates to exactly 0 or 1 through floating-point underflow and
// overflow; this is not reported as an error.
//
// Example:
//
//	sigmoid := activation.NewSigmoid[float32, *cpu.CPUBackend]()
//	y, _ := sigmoid.Forward(x) // Values in range (0, 1)
type Sigmoid[T tensor.Float, B tensor.Backend] struct{}

// NewSigmoid creates a new Sigmoid activation.
func NewSigmoid[T tensor.Float, B tensor.Backend]() *Sigmoid[T, B] {
	return &Sigmoid[T, B]{}
}

// Name returns "sigmoid".
func (s *Sigmoid[T, B]) Name() string { return NameSigmoid }

// Forward applies σ(x) element-wise.
func (s *Sigmoid[T, B]) Forward(x *tensor.Tensor[T, B]) (*tensor.Tensor[T, B], error) {
	if err := checkInput(NameSigmoid, x); err != nil {
		return nil, err
	}
	return logistic(x), nil
}

// Gradient returns σ(x) * (1 - σ(x)).
func (s *Sigmoid[T, B]) Gradient(x *tensor.Tensor[T, B]) (*tensor.Tensor[T, B], error) {
	if err := checkInput(NameSigmoid, x); err != nil {
		return nil, err
	}
	y := logistic(x)
	return y.Mul(y.MulScalar(-1).AddScalar(1)), nil
}
