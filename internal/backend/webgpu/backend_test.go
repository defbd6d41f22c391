//go:build windows

package webgpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/tensorbook/internal/backend/cpu"
	"github.com/born-ml/tensorbook/internal/tensor"
)

var _ tensor.Backend = (*Backend)(nil)

func newBackend(t *testing.T) *Backend {
	t.Helper()
	backend, err := New()
	if err != nil {
		t.Logf("WebGPU not available: %v", err)
		t.Skip("WebGPU not available on this system")
	}
	t.Cleanup(backend.Release)
	return backend
}

func TestIsAvailable(t *testing.T) {
	t.Logf("WebGPU available: %v", IsAvailable())
}

func TestNew(t *testing.T) {
	backend := newBackend(t)
	assert.Equal(t, "WebGPU", backend.Name())
	assert.Equal(t, tensor.WebGPU, backend.Device())
}

func TestElementwiseMatchesCPU(t *testing.T) {
	backend := newBackend(t)
	ref := cpu.New()

	a, _ := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, ref)
	b, _ := tensor.FromSlice([]float32{6, 5, 4, 3, 2, 1}, tensor.Shape{2, 3}, ref)

	for name, pair := range map[string][2]func(x, y *tensor.RawTensor) *tensor.RawTensor{
		"Add": {backend.Add, ref.Add},
		"Sub": {backend.Sub, ref.Sub},
		"Mul": {backend.Mul, ref.Mul},
		"Div": {backend.Div, ref.Div},
	} {
		t.Run(name, func(t *testing.T) {
			got := pair[0](a.Raw(), b.Raw())
			want := pair[1](a.Raw(), b.Raw())
			assert.Equal(t, tensor.WebGPU, got.Device())
			assert.InDeltaSlice(t, want.AsFloat32(), got.AsFloat32(), 1e-6)
		})
	}
}

func TestMatMulMatchesCPU(t *testing.T) {
	backend := newBackend(t)
	ref := cpu.New()

	a := tensor.Arange[float32](0, 6, ref).Reshape(2, 3)
	b := tensor.Arange[float32](0, 12, ref).Reshape(3, 4)

	got := backend.MatMul(a.Raw(), b.Raw())
	require.Equal(t, tensor.Shape{2, 4}, got.Shape())
	assert.InDeltaSlice(t, ref.MatMul(a.Raw(), b.Raw()).AsFloat32(), got.AsFloat32(), 1e-4)
}

func TestDelegatedOps(t *testing.T) {
	backend := newBackend(t)
	ref := cpu.New()

	m, _ := tensor.FromSlice([]float32{3, 1, 2, 0}, tensor.Shape{2, 2}, ref)
	row, _ := tensor.FromSlice([]float32{10, 20}, tensor.Shape{2}, ref)

	sum := backend.Add(m.Raw(), row.Raw())
	assert.Equal(t, tensor.WebGPU, sum.Device())
	assert.Equal(t, []float32{13, 21, 12, 20}, sum.AsFloat32())

	order := backend.Argsort(m.Raw(), 1, false)
	assert.Equal(t, tensor.WebGPU, order.Device())
	assert.Equal(t, []int64{1, 0, 1, 0}, order.AsInt64())
}
