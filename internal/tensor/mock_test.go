package tensor

// mockBackend satisfies Backend for tests that only create and inspect
// tensors. Compute operations are exercised in the cpu backend tests.
type mockBackend struct{}

var _ Backend = mockBackend{}

func (mockBackend) Name() string { return "mock" }
func (mockBackend) Device() Device { return CPU }

func (mockBackend) Add(_, _ *RawTensor) *RawTensor { panic("mock: Add") }
func (mockBackend) Sub(_, _ *RawTensor) *RawTensor { panic("mock: Sub") }
func (mockBackend) Mul(_, _ *RawTensor) *RawTensor { panic("mock: Mul") }
func (mockBackend) Div(_, _ *RawTensor) *RawTensor { panic("mock: Div") }
func (mockBackend) AddScalar(_ *RawTensor, _ any) *RawTensor { panic("mock: AddScalar") }
func (mockBackend) SubScalar(_ *RawTensor, _ any) *RawTensor { panic("mock: SubScalar") }
func (mockBackend) MulScalar(_ *RawTensor, _ any) *RawTensor { panic("mock: MulScalar") }
func (mockBackend) DivScalar(_ *RawTensor, _ any) *RawTensor { panic("mock: DivScalar") }
func (mockBackend) Exp(_ *RawTensor) *RawTensor { panic("mock: Exp") }
func (mockBackend) Log(_ *RawTensor) *RawTensor { panic("mock: Log") }
func (mockBackend) MaxDim(_ *RawTensor, _ int, _ bool) *RawTensor { panic("mock: MaxDim") }
func (mockBackend) SumDim(_ *RawTensor, _ int, _ bool) *RawTensor { panic("mock: SumDim") }
func (mockBackend) GreaterEqual(_, _ *RawTensor) *RawTensor { panic("mock: GreaterEqual") }
func (mockBackend) Where(_, _, _ *RawTensor) *RawTensor { panic("mock: Where") }
