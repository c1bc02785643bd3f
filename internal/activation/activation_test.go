package activation

import (
	"math"
	"sync"
	"testing"

	"github.com/born-ml/activations/internal/backend/cpu"
	"github.com/born-ml/activations/internal/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Backend = *cpu.CPUBackend

var (
	_ Activation[float64, Backend] = (*Sigmoid[float64, Backend])(nil)
	_ Activation[float64, Backend] = (*Softmax[float64, Backend])(nil)
	_ Activation[float64, Backend] = (*TanH[float64, Backend])(nil)
	_ Activation[float64, Backend] = (*ReLU[float64, Backend])(nil)
	_ Activation[float64, Backend] = (*LeakyReLU[float64, Backend])(nil)
	_ Activation[float64, Backend] = (*ELU[float64, Backend])(nil)
	_ Activation[float64, Backend] = (*SELU[float64, Backend])(nil)
	_ Activation[float32, Backend] = (*SoftPlus[float32, Backend])(nil)
)

// sample covers negatives, zero, positives and a couple of larger magnitudes.
var sample = []float64{-6, -2.5, -1, -0.5, -1e-3, 0, 1e-3, 0.5, 1, 2.5, 6}

func fromSlice(t *testing.T, data []float64, shape tensor.Shape) *tensor.Tensor[float64, Backend] {
	t.Helper()
	x, err := tensor.FromSlice(data, shape, cpu.New())
	require.NoError(t, err)
	return x
}

func all(t *testing.T) []Activation[float64, Backend] {
	t.Helper()
	acts := make([]Activation[float64, Backend], 0, len(Names()))
	for _, name := range Names() {
		act, err := New[float64, Backend](name, Config{})
		require.NoError(t, err)
		acts = append(acts, act)
	}
	return acts
}

// TestShapePreserved checks Forward and Gradient keep the input shape for ranks 2 and 3.
func TestShapePreserved(t *testing.T) {
	shapes := []tensor.Shape{{3, 4}, {2, 3, 4}, {1, 1}}

	for _, act := range all(t) {
		for _, shape := range shapes {
			x := tensor.Randn[float64](shape, cpu.New())

			y, err := act.Forward(x)
			require.NoError(t, err, act.Name())
			assert.True(t, shape.Equal(y.Shape()), "%s Forward: %v -> %v", act.Name(), shape, y.Shape())

			g, err := act.Gradient(x)
			require.NoError(t, err, act.Name())
			assert.True(t, shape.Equal(g.Shape()), "%s Gradient: %v -> %v", act.Name(), shape, g.Shape())
		}
	}
}

// TestElementwiseRank1 checks every activation except Softmax accepts rank-1 input.
func TestElementwiseRank1(t *testing.T) {
	x := fromSlice(t, sample, tensor.Shape{len(sample)})

	for _, act := range all(t) {
		if act.Name() == NameSoftmax {
			continue
		}
		y, err := act.Forward(x)
		require.NoError(t, err, act.Name())
		assert.Equal(t, len(sample), y.NumElements(), act.Name())
	}
}

func TestDeterministic(t *testing.T) {
	x := tensor.Randn[float64](tensor.Shape{8, 16}, cpu.New())

	for _, act := range all(t) {
		a, err := act.Forward(x)
		require.NoError(t, err)
		b, err := act.Forward(x)
		require.NoError(t, err)
		assert.Equal(t, a.Data(), b.Data(), "%s Forward is not deterministic", act.Name())

		ga, err := act.Gradient(x)
		require.NoError(t, err)
		gb, err := act.Gradient(x)
		require.NoError(t, err)
		assert.Equal(t, ga.Data(), gb.Data(), "%s Gradient is not deterministic", act.Name())
	}
}

func TestInputNotModified(t *testing.T) {
	x := fromSlice(t, sample, tensor.Shape{1, len(sample)})
	before := append([]float64(nil), x.Data()...)

	for _, act := range all(t) {
		_, err := act.Forward(x)
		require.NoError(t, err)
		_, err = act.Gradient(x)
		require.NoError(t, err)
		require.Equal(t, before, x.Data(), "%s modified its input", act.Name())
	}
}

func TestNilInput(t *testing.T) {
	for _, act := range all(t) {
		_, err := act.Forward(nil)
		assert.ErrorIs(t, err, ErrInvalidInput, act.Name())
		_, err = act.Gradient(nil)
		assert.ErrorIs(t, err, ErrInvalidInput, act.Name())
	}
}

func TestConcurrentUse(t *testing.T) {
	x := tensor.Randn[float64](tensor.Shape{32, 64}, cpu.New())

	for _, act := range all(t) {
		want, err := act.Forward(x)
		require.NoError(t, err)

		var wg sync.WaitGroup
		results := make([][]float64, 8)
		for i := range results {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				y, err := act.Forward(x)
				if err == nil {
					results[i] = y.Data()
				}
			}(i)
		}
		wg.Wait()

		for i, got := range results {
			assert.Equal(t, want.Data(), got, "%s goroutine %d", act.Name(), i)
		}
	}
}

// TestFloat32 runs the element-wise activations on float32 tensors against float64 references.
func TestFloat32(t *testing.T) {
	data := make([]float32, len(sample))
	for i, v := range sample {
		data[i] = float32(v)
	}
	x32, err := tensor.FromSlice(data, tensor.Shape{1, len(data)}, cpu.New())
	require.NoError(t, err)
	x64 := fromSlice(t, sample, tensor.Shape{1, len(sample)})

	for _, name := range Names() {
		a32, err := New[float32, Backend](name, Config{})
		require.NoError(t, err)
		a64, err := New[float64, Backend](name, Config{})
		require.NoError(t, err)

		y32, err := a32.Forward(x32)
		require.NoError(t, err)
		y64, err := a64.Forward(x64)
		require.NoError(t, err)

		for i := range sample {
			assert.InDelta(t, y64.Data()[i], float64(y32.Data()[i]), 1e-5, "%s(%v)", name, sample[i])
		}
	}
}

// numericGradient approximates f'(x) with a central difference.
func numericGradient(f func(float64) float64, x float64) float64 {
	const h = 1e-6
	return (f(x+h) - f(x-h)) / (2 * h)
}

// TestGradientMatchesFiniteDifference checks analytic gradients away from the kink at 0.
func TestGradientMatchesFiniteDifference(t *testing.T) {
	cases := map[string]func(float64) float64{
		NameSigmoid:   refSigmoid,
		NameTanH:      math.Tanh,
		NameReLU:      func(x float64) float64 { return math.Max(x, 0) },
		NameLeakyReLU: func(x float64) float64 { return refLeakyReLU(x, 0.1) },
		NameELU:       func(x float64) float64 { return refELU(x, 0.1) },
		NameSELU:      refSELU,
		NameSoftPlus:  func(x float64) float64 { return math.Log1p(math.Exp(x)) },
	}

	points := []float64{-3, -1, -0.25, 0.25, 1, 3}
	x := fromSlice(t, points, tensor.Shape{len(points)})

	for name, ref := range cases {
		act, err := New[float64, Backend](name, Config{})
		require.NoError(t, err)

		g, err := act.Gradient(x)
		require.NoError(t, err)

		for i, p := range points {
			assert.InDelta(t, numericGradient(ref, p), g.Data()[i], 1e-6, "%s'(%v)", name, p)
		}
	}
}

func refSigmoid(x float64) float64 { return 1 / (1 + math.Exp(-x)) }

func refLeakyReLU(x, alpha float64) float64 {
	if x >= 0 {
		return x
	}
	return alpha * x
}

func refELU(x, alpha float64) float64 {
	if x >= 0 {
		return x
	}
	return alpha * (math.Exp(x) - 1)
}

func refSELU(x float64) float64 {
	if x >= 0 {
		return SELUScale * x
	}
	return SELUScale * SELUAlpha * (math.Exp(x) - 1)
}
