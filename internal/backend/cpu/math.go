package cpu

import (
	"fmt"
	"math"

	"github.com/born-ml/activations/internal/tensor"
	"github.com/chewxy/math32"
)

// Exp computes element-wise exponential: exp(x).
// Overflow yields +Inf and underflow yields 0.
func (cpu *CPUBackend) Exp(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unary("exp", x, math32.Exp, math.Exp)
}

// Log computes element-wise natural logarithm: ln(x).
// Zero yields -Inf and negative input yields NaN.
func (cpu *CPUBackend) Log(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unary("log", x, math32.Log, math.Log)
}

func (cpu *CPUBackend) unary(
	op string,
	x *tensor.RawTensor,
	f32 func(float32) float32,
	f64 func(float64) float64,
) *tensor.RawTensor {
	result, err := tensor.NewRaw(x.Shape(), x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: %v", op, err))
	}

	switch x.DType() {
	case tensor.Float32:
		unaryInto(result.AsFloat32(), x.AsFloat32(), f32, cpu.par)
	case tensor.Float64:
		unaryInto(result.AsFloat64(), x.AsFloat64(), f64, cpu.par)
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s (only float32/float64 supported)", op, x.DType()))
	}

	return result
}
