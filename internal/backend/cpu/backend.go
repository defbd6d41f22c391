// Package cpu implements the pure-Go CPU backend.
package cpu

import (
	"github.com/born-ml/tensorbook/internal/parallel"
	"github.com/born-ml/tensorbook/internal/tensor"
)

// CPUBackend implements every tensor.Backend operation on the CPU.
//
//nolint:revive // name kept for symmetry with the other backends
type CPUBackend struct {
	device   tensor.Device
	parallel parallel.Config
}

// New creates a CPU backend with the default parallel configuration.
func New() *CPUBackend {
	return NewWithConfig(parallel.DefaultConfig())
}

// NewWithConfig creates a CPU backend with an explicit parallel configuration.
func NewWithConfig(cfg parallel.Config) *CPUBackend {
	return &CPUBackend{
		device:   tensor.CPU,
		parallel: cfg,
	}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Device returns the compute device.
func (cpu *CPUBackend) Device() tensor.Device {
	return cpu.device
}

func (cpu *CPUBackend) newResult(op string, shape tensor.Shape, dtype tensor.DataType) *tensor.RawTensor {
	result, err := tensor.NewRaw(shape, dtype, cpu.device)
	if err != nil {
		panicf(op, "failed to create result tensor: %v", err)
	}
	return result
}

// number is the subset of element types that support arithmetic.
type number interface {
	~float32 | ~float64 | ~int32 | ~int64 | ~uint8
}

// broadcastIndex walks outShape in row-major order and calls fn with the
// output position and the matching flat offset into every operand.
func broadcastIndex(outShape tensor.Shape, operandStrides [][]int, fn func(out int, offsets []int)) {
	n := outShape.NumElements()
	rank := len(outShape)
	counter := make([]int, rank)
	offsets := make([]int, len(operandStrides))
	for out := 0; out < n; out++ {
		fn(out, offsets)
		for d := rank - 1; d >= 0; d-- {
			counter[d]++
			for k, s := range operandStrides {
				offsets[k] += s[d]
			}
			if counter[d] < outShape[d] {
				break
			}
			for k, s := range operandStrides {
				offsets[k] -= s[d] * outShape[d]
			}
			counter[d] = 0
		}
	}
}
