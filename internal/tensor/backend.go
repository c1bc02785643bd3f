package tensor

// Backend defines the interface that compute backends must implement.
// It is the numeric array abstraction the activations are written against:
// element-wise arithmetic, exp/log, axis reductions with keep-dim,
// comparison and conditional selection.
//
// Implementations must not modify their inputs and must return freshly
// allocated results. Misuse (incompatible shapes, bad dimensions) panics.
type Backend interface {
	// Element-wise binary operations with NumPy-style broadcasting.
	Add(a, b *RawTensor) *RawTensor
	Sub(a, b *RawTensor) *RawTensor
	Mul(a, b *RawTensor) *RawTensor
	Div(a, b *RawTensor) *RawTensor

	// Scalar operations (element-wise with scalar).
	// The scalar must have the same Go type as the tensor elements.
	AddScalar(x *RawTensor, scalar any) *RawTensor
	SubScalar(x *RawTensor, scalar any) *RawTensor
	MulScalar(x *RawTensor, scalar any) *RawTensor
	DivScalar(x *RawTensor, scalar any) *RawTensor

	// Math operations (element-wise)
	Exp(x *RawTensor) *RawTensor // exponential
	Log(x *RawTensor) *RawTensor // natural logarithm

	// Reduction operations along a dimension (negative dims count from the end).
	MaxDim(x *RawTensor, dim int, keepDim bool) *RawTensor
	SumDim(x *RawTensor, dim int, keepDim bool) *RawTensor

	// Comparison (element-wise, returns bool tensor).
	GreaterEqual(a, b *RawTensor) *RawTensor // a >= b

	// Where selects x where condition is true and y otherwise.
	Where(condition, x, y *RawTensor) *RawTensor

	// Metadata
	Name() string
	Device() Device
}
