package cpu

import (
	"fmt"
	"math"

	"github.com/born-ml/activations/internal/parallel"
	"github.com/born-ml/activations/internal/tensor"
	"github.com/chewxy/math32"
	"gonum.org/v1/gonum/floats"
)

// MaxDim returns the maximum of tensor elements along the specified dimension.
//
// Parameters:
//   - dim: dimension to reduce (supports negative indexing: -1 = last dim)
//   - keepDim: if true, keep the reduced dimension with size 1; if false, remove it
//
// NaN inputs propagate to the result.
//
// Example:
//
//	x := tensor.Randn[float32]([]int{2, 3, 4}, backend)
//	y := backend.MaxDim(x, -1, true)   // shape: [2, 3, 1]
//	z := backend.MaxDim(x, -1, false)  // shape: [2, 3]
func (cpu *CPUBackend) MaxDim(x *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	return cpu.reduce("maxdim", x, dim, keepDim, maxFloat32, maxFloat64)
}

// SumDim sums tensor elements along the specified dimension.
//
// Parameters:
//   - dim: dimension to reduce (supports negative indexing: -1 = last dim)
//   - keepDim: if true, keep the reduced dimension with size 1; if false, remove it
//
// Example:
//
//	x := tensor.Randn[float32]([]int{2, 3, 4}, backend)
//	y := backend.SumDim(x, -1, true)   // shape: [2, 3, 1]
//	z := backend.SumDim(x, -1, false)  // shape: [2, 3]
func (cpu *CPUBackend) SumDim(x *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	return cpu.reduce("sumdim", x, dim, keepDim, sumFloat32, floats.Sum)
}

func (cpu *CPUBackend) reduce(
	op string,
	x *tensor.RawTensor,
	dim int,
	keepDim bool,
	f32 func([]float32) float32,
	f64 func([]float64) float64,
) *tensor.RawTensor {
	shape := x.Shape()

	d, err := shape.NormalizeDim(dim)
	if err != nil {
		panic(fmt.Sprintf("%s: dimension %d: %v", op, dim, err))
	}

	result, err := tensor.NewRaw(shape.Reduce(d, keepDim), x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: %v", op, err))
	}

	switch x.DType() {
	case tensor.Float32:
		reduceLanes(result.AsFloat32(), x.AsFloat32(), shape, d, f32, cpu.par)
	case tensor.Float64:
		reduceLanes(result.AsFloat64(), x.AsFloat64(), shape, d, f64, cpu.par)
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s (only float32/float64 supported)", op, x.DType()))
	}

	return result
}

// reduceLanes applies f to every lane of src along dim and stores one value
// per lane in dst. Lanes are enumerated in row-major order of the remaining
// dimensions, which matches the layout of the reduced shape with or without
// keepDim.
func reduceLanes[T float32 | float64](
	dst, src []T,
	shape tensor.Shape,
	dim int,
	f func([]T) T,
	cfg parallel.Config,
) {
	strides := shape.ComputeStrides()
	laneLen := shape[dim]
	laneStride := strides[dim]
	// inner is the number of elements after dim; lanes with the same outer
	// index are laid out inner apart.
	inner := laneStride

	parallel.ForRange(len(dst), func(start, end int) {
		var scratch []T
		if laneStride != 1 {
			scratch = make([]T, laneLen)
		}
		for lane := start; lane < end; lane++ {
			outer, in := lane/inner, lane%inner
			base := outer*laneLen*laneStride + in

			if laneStride == 1 {
				dst[lane] = f(src[base : base+laneLen])
				continue
			}
			for k := range scratch {
				scratch[k] = src[base+k*laneStride]
			}
			dst[lane] = f(scratch)
		}
	}, cfg)
}

func maxFloat32(s []float32) float32 {
	m := math32.Inf(-1)
	for _, v := range s {
		if math32.IsNaN(v) {
			return v
		}
		m = math32.Max(m, v)
	}
	return m
}

func maxFloat64(s []float64) float64 {
	if floats.HasNaN(s) {
		return math.NaN()
	}
	return floats.Max(s)
}

func sumFloat32(s []float32) float32 {
	var sum float32
	for _, v := range s {
		sum += v
	}
	return sum
}
