package tensor

import (
	"math"
	"testing"
)

func assertEqualShape(t *testing.T, expected, actual Shape, msg string) {
	t.Helper()
	if !expected.Equal(actual) {
		t.Errorf("%s: expected shape %v, got %v", msg, expected, actual)
	}
}

func TestDataTypeSize(t *testing.T) {
	tests := []struct {
		dtype DataType
		size  int
		name  string
	}{
		{Float32, 4, "float32"},
		{Float64, 8, "float64"},
		{Bool, 1, "bool"},
	}

	for _, tt := range tests {
		if got := tt.dtype.Size(); got != tt.size {
			t.Errorf("%s.Size() = %d, want %d", tt.name, got, tt.size)
		}
		if got := tt.dtype.String(); got != tt.name {
			t.Errorf("String() = %q, want %q", got, tt.name)
		}
	}

	if !Float32.IsFloat() || !Float64.IsFloat() || Bool.IsFloat() {
		t.Error("IsFloat mismatch")
	}
}

func TestNewRawZeroInitialized(t *testing.T) {
	raw, err := NewRaw(Shape{2, 3}, Float64, CPU)
	if err != nil {
		t.Fatalf("NewRaw: %v", err)
	}
	if raw.ByteSize() != 48 {
		t.Errorf("ByteSize() = %d, want 48", raw.ByteSize())
	}
	for i, v := range raw.AsFloat64() {
		if v != 0 {
			t.Fatalf("element %d = %v, want 0", i, v)
		}
	}

	if _, err := NewRaw(Shape{0, 3}, Float32, CPU); err == nil {
		t.Error("expected error for invalid shape")
	}
}

func TestRawTensorWrongDTypePanics(t *testing.T) {
	raw, _ := NewRaw(Shape{2}, Float32, CPU)
	defer func() {
		if recover() == nil {
			t.Error("AsFloat64 on float32 tensor should panic")
		}
	}()
	_ = raw.AsFloat64()
}

func TestFromSlice(t *testing.T) {
	b := mockBackend{}
	src := []float32{1, 2, 3, 4, 5, 6}

	x, err := FromSlice(src, Shape{2, 3}, b)
	if err != nil {
		t.Fatalf("FromSlice: %v", err)
	}
	assertEqualShape(t, Shape{2, 3}, x.Shape(), "FromSlice")
	if x.Rank() != 2 {
		t.Errorf("Rank() = %d, want 2", x.Rank())
	}
	if x.At(1, 2) != 6 {
		t.Errorf("At(1, 2) = %v, want 6", x.At(1, 2))
	}

	// The tensor owns a copy.
	src[0] = 100
	if x.At(0, 0) != 1 {
		t.Error("FromSlice must copy its input")
	}

	if _, err := FromSlice([]float32{1, 2}, Shape{3}, b); err == nil {
		t.Error("expected error for element count mismatch")
	}
}

func TestTensorClone(t *testing.T) {
	b := mockBackend{}
	x, _ := FromSlice([]float64{1, 2, 3}, Shape{3}, b)
	y := x.Clone()
	y.Data()[0] = 42

	if x.Data()[0] != 1 {
		t.Error("Clone must not share memory")
	}
}

func TestTensorItemAndString(t *testing.T) {
	b := mockBackend{}
	s := Full[float64](Shape{}, 2.5, b)
	if s.Item() != 2.5 {
		t.Errorf("Item() = %v", s.Item())
	}
	if got := s.String(); got != "Tensor[float64][] on CPU" {
		t.Errorf("String() = %q", got)
	}
}

func TestCreation(t *testing.T) {
	b := mockBackend{}

	ones := Ones[float32](Shape{2, 2}, b)
	for _, v := range ones.Data() {
		if v != 1 {
			t.Fatalf("Ones produced %v", v)
		}
	}

	mask := Ones[bool](Shape{3}, b)
	for _, v := range mask.Data() {
		if !v {
			t.Fatal("Ones[bool] should be all true")
		}
	}

	x := Full[float64](Shape{2, 3}, 0.1, b)
	assertEqualShape(t, Shape{2, 3}, ZerosLike(x).Shape(), "ZerosLike")
	for _, v := range FullLike(x, -3).Data() {
		if v != -3 {
			t.Fatalf("FullLike produced %v", v)
		}
	}
	for _, v := range OnesLike(x).Data() {
		if v != 1 {
			t.Fatalf("OnesLike produced %v", v)
		}
	}
}

func TestRandnFinite(t *testing.T) {
	b := mockBackend{}
	x := Randn[float64](Shape{101}, b)
	for i, v := range x.Data() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("element %d is not finite: %v", i, v)
		}
	}
}
