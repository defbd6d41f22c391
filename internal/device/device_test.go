package device

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/tensorbook/internal/backend/cpu"
	"github.com/born-ml/tensorbook/internal/backend/webgpu"
	"github.com/born-ml/tensorbook/internal/tensor"
)

func TestSelect_CPU(t *testing.T) {
	for _, name := range []string{"cpu", "CPU", " cpu "} {
		b, err := Select(name)
		require.NoError(t, err, name)
		assert.IsType(t, &cpu.CPUBackend{}, b)
		assert.Equal(t, tensor.CPU, b.Device())
	}
}

func TestSelect_Auto(t *testing.T) {
	for _, name := range []string{"auto", ""} {
		b, err := Select(name)
		require.NoError(t, err)
		if webgpu.IsAvailable() {
			assert.Equal(t, tensor.WebGPU, b.Device())
		} else {
			assert.Equal(t, tensor.CPU, b.Device())
		}
		Release(b)
	}
}

func TestSelect_WebGPU(t *testing.T) {
	b, err := Select("webgpu")
	if !webgpu.IsAvailable() {
		require.Error(t, err)
		return
	}
	require.NoError(t, err)
	assert.Equal(t, tensor.WebGPU, b.Device())
	Release(b)
}

func TestSelect_Unknown(t *testing.T) {
	_, err := Select("tpu")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tpu")
	assert.Contains(t, err.Error(), "webgpu")
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "CPU backend on CPU", Describe(cpu.New()))
}
