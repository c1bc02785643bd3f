package activation

import "errors"

// Errors returned by activations and the registry.
var (
	// ErrInvalidInput reports a tensor that violates an activation's input
	// contract, such as a softmax over a rank-1 tensor.
	ErrInvalidInput = errors.New("invalid input")

	ErrUnknownActivation = errors.New("unknown activation")
)
