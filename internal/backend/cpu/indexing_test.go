package cpu

import (
	"math"
	"testing"

	"github.com/born-ml/activations/internal/tensor"
)

func TestGreaterEqual(t *testing.T) {
	backend := newTestBackend()

	x := rawFloat64(t, tensor.Shape{5}, -1, 0, 1, math.NaN(), -0.0)
	zero := rawFloat64(t, tensor.Shape{}, 0)

	got := backend.GreaterEqual(x, zero)
	if got.DType() != tensor.Bool {
		t.Fatalf("dtype = %s, want bool", got.DType())
	}
	want := []bool{false, true, true, false, true}
	for i, w := range want {
		if got.AsBool()[i] != w {
			t.Errorf("[%d] = %v, want %v", i, got.AsBool()[i], w)
		}
	}
}

func TestWhere(t *testing.T) {
	backend := newTestBackend()

	t.Run("SameShape", func(t *testing.T) {
		x := rawFloat32(t, tensor.Shape{2, 2}, 1, 2, 3, 4)
		y := rawFloat32(t, tensor.Shape{2, 2}, -1, -2, -3, -4)
		cond, _ := tensor.NewRaw(tensor.Shape{2, 2}, tensor.Bool, tensor.CPU)
		copy(cond.AsBool(), []bool{true, false, false, true})

		got := backend.Where(cond, x, y).AsFloat32()
		want := []float32{1, -2, -3, 4}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("[%d] = %v, want %v", i, got[i], want[i])
			}
		}
	})

	t.Run("BroadcastScalarBranch", func(t *testing.T) {
		x := rawFloat64(t, tensor.Shape{2, 3}, -3, -2, -1, 0, 1, 2)
		zero := rawFloat64(t, tensor.Shape{}, 0)
		cond := backend.GreaterEqual(x, zero)

		out := backend.Where(cond, x, zero)
		if !out.Shape().Equal(tensor.Shape{2, 3}) {
			t.Fatalf("shape %v", out.Shape())
		}
		assertFloat64s(t, out.AsFloat64(), []float64{0, 0, 0, 0, 1, 2}, 0)
	})

	t.Run("NonBoolConditionPanics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic")
			}
		}()
		x := rawFloat64(t, tensor.Shape{2})
		backend.Where(x, x, x)
	})
}
