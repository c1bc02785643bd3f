package cpu

import (
	"fmt"

	"github.com/born-ml/activations/internal/parallel"
	"github.com/born-ml/activations/internal/tensor"
)

// GreaterEqual returns a >= b element-wise as a bool tensor.
// Both operands broadcast against each other. Comparisons involving NaN are false.
func (cpu *CPUBackend) GreaterEqual(a, b *tensor.RawTensor) *tensor.RawTensor {
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("greaterEqual: dtype mismatch: %s vs %s", a.DType(), b.DType()))
	}

	outShape, needsBroadcast, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("greaterEqual: %v", err))
	}

	result, err := tensor.NewRaw(outShape, tensor.Bool, cpu.device)
	if err != nil {
		panic(fmt.Sprintf("greaterEqual: %v", err))
	}

	switch a.DType() {
	case tensor.Float32:
		compareInto(result.AsBool(), a.AsFloat32(), b.AsFloat32(),
			a.Shape(), b.Shape(), outShape, needsBroadcast, cpu.par)
	case tensor.Float64:
		compareInto(result.AsBool(), a.AsFloat64(), b.AsFloat64(),
			a.Shape(), b.Shape(), outShape, needsBroadcast, cpu.par)
	default:
		panic(fmt.Sprintf("greaterEqual: unsupported dtype %s", a.DType()))
	}

	return result
}

func compareInto[T float32 | float64](
	dst []bool,
	a, b []T,
	aShape, bShape, outShape tensor.Shape,
	needsBroadcast bool,
	cfg parallel.Config,
) {
	if !needsBroadcast {
		parallel.ForRange(len(dst), func(start, end int) {
			for i := start; i < end; i++ {
				dst[i] = a[i] >= b[i]
			}
		}, cfg)
		return
	}

	outStrides := outShape.ComputeStrides()
	aStrides := computeBroadcastStridesForShape(aShape, outShape)
	bStrides := computeBroadcastStridesForShape(bShape, outShape)

	parallel.ForRange(len(dst), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = a[computeFlatIndex(i, outStrides, aStrides)] >= b[computeFlatIndex(i, outStrides, bStrides)]
		}
	}, cfg)
}
