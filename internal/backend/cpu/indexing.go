package cpu

import (
	"fmt"

	"github.com/born-ml/activations/internal/parallel"
	"github.com/born-ml/activations/internal/tensor"
)

// Where performs conditional element selection.
// Returns x where condition is true, y otherwise.
// All three tensors broadcast to a common shape.
//
// Example:
//
//	condition: [3, 4] (bool tensor)
//	x: [3, 4] (float32)
//	y: [3, 4] (float32)
//	output: [3, 4] where output[i,j] = condition[i,j] ? x[i,j] : y[i,j]
func (cpu *CPUBackend) Where(condition, x, y *tensor.RawTensor) *tensor.RawTensor {
	if condition.DType() != tensor.Bool {
		panic(fmt.Sprintf("where: condition must be bool, got %s", condition.DType()))
	}

	if x.DType() != y.DType() {
		panic(fmt.Sprintf("where: x and y must have same dtype, got %s and %s",
			x.DType(), y.DType()))
	}

	outShape1, _, err := tensor.BroadcastShapes(condition.Shape(), x.Shape())
	if err != nil {
		panic(fmt.Sprintf("where: failed to broadcast condition and x: %v", err))
	}
	outShape, _, err := tensor.BroadcastShapes(outShape1, y.Shape())
	if err != nil {
		panic(fmt.Sprintf("where: failed to broadcast with y: %v", err))
	}

	result, err := tensor.NewRaw(outShape, x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("where: failed to create result tensor: %v", err))
	}

	sel := newSelector(outShape, condition.Shape(), x.Shape(), y.Shape())
	cond := condition.AsBool()

	switch x.DType() {
	case tensor.Float32:
		whereInto(result.AsFloat32(), cond, x.AsFloat32(), y.AsFloat32(), sel, cpu.par)
	case tensor.Float64:
		whereInto(result.AsFloat64(), cond, x.AsFloat64(), y.AsFloat64(), sel, cpu.par)
	case tensor.Bool:
		whereInto(result.AsBool(), cond, x.AsBool(), y.AsBool(), sel, cpu.par)
	default:
		panic(fmt.Sprintf("where: unsupported dtype %s", x.DType()))
	}

	return result
}

// selector maps an output index to the flat indices of the three Where operands.
type selector struct {
	outStrides                      []int
	condStrides, xStrides, yStrides []int
	contiguous                      bool
}

func newSelector(outShape, condShape, xShape, yShape tensor.Shape) selector {
	return selector{
		outStrides:  outShape.ComputeStrides(),
		condStrides: computeBroadcastStridesForShape(condShape, outShape),
		xStrides:    computeBroadcastStridesForShape(xShape, outShape),
		yStrides:    computeBroadcastStridesForShape(yShape, outShape),
		contiguous:  condShape.Equal(outShape) && xShape.Equal(outShape) && yShape.Equal(outShape),
	}
}

func (s selector) indices(i int) (c, x, y int) {
	if s.contiguous {
		return i, i, i
	}
	return computeFlatIndex(i, s.outStrides, s.condStrides),
		computeFlatIndex(i, s.outStrides, s.xStrides),
		computeFlatIndex(i, s.outStrides, s.yStrides)
}

func whereInto[T float32 | float64 | bool](dst []T, cond []bool, xData, yData []T, sel selector, cfg parallel.Config) {
	parallel.ForRange(len(dst), func(start, end int) {
		for i := start; i < end; i++ {
			c, xi, yi := sel.indices(i)
			if cond[c] {
				dst[i] = xData[xi]
			} else {
				dst[i] = yData[yi]
			}
		}
	}, cfg)
}
