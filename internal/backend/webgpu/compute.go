//go:build windows

package webgpu

import (
	"encoding/binary"
	"unsafe"

	"github.com/go-webgpu/webgpu/wgpu"
	"github.com/pkg/errors"

	"github.com/born-ml/tensorbook/internal/tensor"
)

// pipeline compiles the shader on first use and caches both the module and
// its compute pipeline under name.
func (b *Backend) pipeline(name, code string) *wgpu.ComputePipeline {
	b.mu.RLock()
	if p, exists := b.pipelines[name]; exists {
		b.mu.RUnlock()
		return p
	}
	b.mu.RUnlock()

	b.mu.Lock()
	defer b.mu.Unlock()
	if p, exists := b.pipelines[name]; exists {
		return p
	}
	shader := b.device.CreateShaderModuleWGSL(code)
	p := b.device.CreateComputePipelineSimple(nil, shader, "main")
	b.shaders[name] = shader
	b.pipelines[name] = p
	return p
}

// createBuffer creates a GPU buffer and uploads data into it.
func (b *Backend) createBuffer(data []byte, usage wgpu.BufferUsage) *wgpu.Buffer {
	size := uint64(len(data))
	buffer := b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage:            usage,
		Size:             size,
		MappedAtCreation: wgpu.True,
	})
	//nolint:gosec // unsafe.Slice for zero-copy conversion from unsafe.Pointer
	copy(unsafe.Slice((*byte)(buffer.GetMappedRange(0, size)), size), data)
	buffer.Unmap()
	return buffer
}

// uniformParams packs u32 values into a 16-byte aligned uniform buffer.
func (b *Backend) uniformParams(values ...uint32) *wgpu.Buffer {
	size := (4*len(values) + 15) &^ 15
	data := make([]byte, size)
	for i, v := range values {
		binary.LittleEndian.PutUint32(data[4*i:], v)
	}
	return b.createBuffer(data, wgpu.BufferUsageUniform|wgpu.BufferUsageCopyDst)
}

// readBuffer reads data back from a GPU buffer to CPU memory.
// Storage buffers can't be mapped directly, so it goes through a staging buffer.
func (b *Backend) readBuffer(src *wgpu.Buffer, size uint64) ([]byte, error) {
	staging := b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage: wgpu.BufferUsageMapRead | wgpu.BufferUsageCopyDst,
		Size:  size,
	})
	defer staging.Release()

	encoder := b.device.CreateCommandEncoder(nil)
	encoder.CopyBufferToBuffer(src, 0, staging, 0, size)
	b.queue.Submit(encoder.Finish(nil))

	if err := staging.MapAsync(b.device, wgpu.MapModeRead, 0, size); err != nil {
		return nil, errors.Wrap(err, "webgpu: failed to map staging buffer")
	}
	result := make([]byte, size)
	//nolint:gosec // unsafe.Slice for zero-copy conversion from unsafe.Pointer
	copy(result, unsafe.Slice((*byte)(staging.GetMappedRange(0, size)), size))
	staging.Unmap()
	return result, nil
}

// dispatch binds lhs, rhs, an output of outShape and params to the named
// shader, runs it over the given workgroup grid and reads the output back.
func (b *Backend) dispatch(name, code string, lhs, rhs *tensor.RawTensor, outShape tensor.Shape, params *wgpu.Buffer, groupsX, groupsY uint32) (*tensor.RawTensor, error) {
	p := b.pipeline(name, code)

	bufferA := b.createBuffer(lhs.Data(), wgpu.BufferUsageStorage|wgpu.BufferUsageCopySrc)
	defer bufferA.Release()
	bufferB := b.createBuffer(rhs.Data(), wgpu.BufferUsageStorage|wgpu.BufferUsageCopySrc)
	defer bufferB.Release()
	defer params.Release()

	//nolint:gosec // G115: element counts are non-negative
	resultSize := uint64(outShape.NumElements() * tensor.Float32.Size())
	bufferResult := b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage: wgpu.BufferUsageStorage | wgpu.BufferUsageCopySrc | wgpu.BufferUsageCopyDst,
		Size:  resultSize,
	})
	defer bufferResult.Release()

	//nolint:gosec // G115: ByteSize() is non-negative
	bindGroup := b.device.CreateBindGroupSimple(p.GetBindGroupLayout(0), []wgpu.BindGroupEntry{
		wgpu.BufferBindingEntry(0, bufferA, 0, uint64(lhs.ByteSize())),
		wgpu.BufferBindingEntry(1, bufferB, 0, uint64(rhs.ByteSize())),
		wgpu.BufferBindingEntry(2, bufferResult, 0, resultSize),
		wgpu.BufferBindingEntry(3, params, 0, 16),
	})
	defer bindGroup.Release()

	encoder := b.device.CreateCommandEncoder(nil)
	pass := encoder.BeginComputePass(nil)
	pass.SetPipeline(p)
	pass.SetBindGroup(0, bindGroup, nil)
	pass.DispatchWorkgroups(groupsX, groupsY, 1)
	pass.End()
	b.queue.Submit(encoder.Finish(nil))

	data, err := b.readBuffer(bufferResult, resultSize)
	if err != nil {
		return nil, err
	}
	result, err := tensor.NewRaw(outShape, tensor.Float32, tensor.WebGPU)
	if err != nil {
		return nil, err
	}
	copy(result.Data(), data)
	return result, nil
}

// runBinaryOp executes an element-wise shader on two same-shape float32 tensors.
func (b *Backend) runBinaryOp(lhs, rhs *tensor.RawTensor, name, code string) (*tensor.RawTensor, error) {
	n := lhs.NumElements()
	//nolint:gosec // G115: element counts are non-negative
	params := b.uniformParams(uint32(n))
	//nolint:gosec // G115: workgroup count is non-negative
	groups := uint32((n + workgroupSize - 1) / workgroupSize)
	return b.dispatch(name, code, lhs, rhs, lhs.Shape(), params, groups, 1)
}

// runMatMul executes C = A @ B for A [M, K] and B [K, N].
func (b *Backend) runMatMul(lhs, rhs *tensor.RawTensor) (*tensor.RawTensor, error) {
	m, k, n := lhs.Shape()[0], lhs.Shape()[1], rhs.Shape()[1]
	//nolint:gosec // G115: shape dimensions are non-negative
	params := b.uniformParams(uint32(m), uint32(k), uint32(n))
	//nolint:gosec // G115: workgroup counts are non-negative
	return b.dispatch("matmul", matmulShader, lhs, rhs, tensor.Shape{m, n}, params,
		uint32((n+15)/16), uint32((m+15)/16))
}
