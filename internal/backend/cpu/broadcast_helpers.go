package cpu

import (
	"github.com/born-ml/activations/internal/tensor"
)

// computeBroadcastStridesForShape returns the strides that map an index in
// outShape back into a tensor of inShape. Dimensions that are missing from
// inShape or have size 1 get stride 0, so they repeat.
func computeBroadcastStridesForShape(inShape, outShape tensor.Shape) []int {
	strides := make([]int, len(outShape))
	inStrides := inShape.ComputeStrides()
	offset := len(outShape) - len(inShape)

	for i := range strides {
		j := i - offset
		if j < 0 || inShape[j] == 1 {
			continue
		}
		strides[i] = inStrides[j]
	}

	return strides
}

// computeFlatIndex converts a flat output index into the flat index of a
// broadcast input with the given (broadcast-adjusted) strides.
func computeFlatIndex(outIdx int, outStrides, inStrides []int) int {
	flatIdx := 0
	for i, s := range outStrides {
		flatIdx += (outIdx / s) * inStrides[i]
		outIdx %= s
	}
	return flatIdx
}
