// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"testing"

	"github.com/born-ml/activations/backend/cpu"
	"github.com/born-ml/activations/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBackendInterface verifies that the CPU backend implements tensor.Backend.
func TestBackendInterface(_ *testing.T) {
	var _ tensor.Backend = (*cpu.Backend)(nil)
}

// TestRawTensorAPI verifies RawTensor type alias exposes expected API.
func TestRawTensorAPI(t *testing.T) {
	raw, err := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float32, tensor.CPU)
	require.NoError(t, err)

	assert.True(t, raw.Shape().Equal(tensor.Shape{2, 3}))
	assert.Equal(t, tensor.Float32, raw.DType())
	assert.Equal(t, tensor.CPU, raw.Device())
	assert.Equal(t, 6, raw.NumElements())
	assert.Equal(t, 6*4, raw.ByteSize())
	assert.Len(t, raw.AsFloat32(), 6)

	clone := raw.Clone()
	clone.AsFloat32()[0] = 1
	assert.Equal(t, float32(0), raw.AsFloat32()[0], "Clone must not share memory")
}

func TestCreation(t *testing.T) {
	backend := cpu.New()

	z := tensor.Zeros[float64](tensor.Shape{2, 2}, backend)
	assert.Equal(t, []float64{0, 0, 0, 0}, z.Data())

	o := tensor.OnesLike(z)
	assert.Equal(t, []float64{1, 1, 1, 1}, o.Data())

	f := tensor.FullLike(z, 2.5)
	assert.Equal(t, []float64{2.5, 2.5, 2.5, 2.5}, f.Data())

	r := tensor.Randn[float32](tensor.Shape{3, 4}, backend)
	assert.Equal(t, tensor.Shape{3, 4}, r.Shape())

	_, err := tensor.FromSlice([]float64{1, 2, 3}, tensor.Shape{2, 2}, backend)
	assert.Error(t, err)
}

func TestOps(t *testing.T) {
	backend := cpu.New()

	x, err := tensor.FromSlice([]float64{1, -2, 3, -4}, tensor.Shape{2, 2}, backend)
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 3}, x.MaxDim(-1, false).Data())
	assert.Equal(t, []float64{-1, -1}, x.SumDim(-1, false).Data())
	assert.Equal(t, []float64{0, -3, 0, -7}, x.Sub(x.MaxDim(-1, true)).Data())

	mask := x.GreaterEqual(tensor.ZerosLike(x))
	assert.Equal(t, []bool{true, false, true, false}, mask.Data())
	assert.Equal(t, []float64{1, 0, 3, 0}, tensor.Where(mask, x, tensor.ZerosLike(x)).Data())
}
