package activation

import (
	"fmt"

	"github.com/born-ml/activations/internal/tensor"
)

// SoftmaxConfig configures a Softmax activation.
type SoftmaxConfig struct {
	// Axis along which values are normalized. Negative values count from
	// the last dimension, so -1 is the feature axis of a [batch, features] input.
	Axis int
}

// DefaultSoftmaxConfig normalizes along the last axis.
func DefaultSoftmaxConfig() SoftmaxConfig {
	return SoftmaxConfig{Axis: -1}
}

// Softmax normalizes exponentials along one axis so they sum to 1.
//
// The input must have rank >= 2: one or more batch dimensions plus the axis
// being normalized. Lower ranks fail with ErrInvalidInput.
//
// The max along the axis is subtracted before exponentiating, so large
// logits do not overflow.
type Softmax[T tensor.Float, B tensor.Backend] struct {
	axis int
}

// NewSoftmax creates a Softmax activation.
func NewSoftmax[T tensor.Float, B tensor.Backend](cfg SoftmaxConfig) *Softmax[T, B] {
	return &Softmax[T, B]{axis: cfg.Axis}
}

// Name returns "softmax".
func (s *Softmax[T, B]) Name() string { return NameSoftmax }

// Axis returns the configured normalization axis.
func (s *Softmax[T, B]) Axis() int { return s.axis }

// Forward normalizes x along the configured axis.
func (s *Softmax[T, B]) Forward(x *tensor.Tensor[T, B]) (*tensor.Tensor[T, B], error) {
	return s.ForwardAxis(x, s.axis)
}

// ForwardAxis normalizes x along axis, overriding the configured one.
//
// Example:
//
//	x, _ := tensor.FromSlice([]float64{1, 2, 3}, tensor.Shape{1, 3}, backend)
//	y, _ := softmax.ForwardAxis(x, -1) // [[0.0900, 0.2447, 0.6652]]
func (s *Softmax[T, B]) ForwardAxis(x *tensor.Tensor[T, B], axis int) (*tensor.Tensor[T, B], error) {
	if err := checkInput(NameSoftmax, x); err != nil {
		return nil, err
	}
	if x.Rank() < 2 {
		return nil, fmt.Errorf("%s: cannot apply to a %dD tensor of shape %v: %w",
			NameSoftmax, x.Rank(), x.Shape(), ErrInvalidInput)
	}
	if _, err := x.Shape().NormalizeDim(axis); err != nil {
		return nil, fmt.Errorf("%s: axis %d: %v: %w", NameSoftmax, axis, err, ErrInvalidInput)
	}

	e := x.Sub(x.MaxDim(axis, true)).Exp()
	return e.Div(e.SumDim(axis, true)), nil
}

// Gradient returns p * (1 - p) with p = Forward(x).
//
// This is the diagonal of the softmax Jacobian only; the off-diagonal terms
// -p_i * p_j are not included.
func (s *Softmax[T, B]) Gradient(x *tensor.Tensor[T, B]) (*tensor.Tensor[T, B], error) {
	p, err := s.Forward(x)
	if err != nil {
		return nil, err
	}
	return p.Mul(p.MulScalar(-1).AddScalar(1)), nil
}
