//go:build windows

package webgpu

import (
	"github.com/gomlx/exceptions"
	"k8s.io/klog/v2"

	"github.com/born-ml/tensorbook/internal/tensor"
)

// onGPU reports whether an element-wise op on a and other can run as a shader.
func onGPU(a, other *tensor.RawTensor) bool {
	return a.DType() == tensor.Float32 && other.DType() == tensor.Float32 && a.Shape().Equal(other.Shape())
}

func (b *Backend) elementwise(op string, a, other *tensor.RawTensor, code string, fallback func(a, other *tensor.RawTensor) *tensor.RawTensor) *tensor.RawTensor {
	if !onGPU(a, other) {
		klog.V(2).Infof("webgpu: %s on %s%v and %s%v runs on CPU", op, a.DType(), a.Shape(), other.DType(), other.Shape())
		return fallback(a, other).OnDevice(tensor.WebGPU)
	}
	result, err := b.runBinaryOp(a, other, op, code)
	if err != nil {
		exceptions.Panicf("webgpu: %s: %v", op, err)
	}
	return result
}

// Add performs element-wise addition.
func (b *Backend) Add(a, other *tensor.RawTensor) *tensor.RawTensor {
	return b.elementwise("add", a, other, addShader, b.cpu.Add)
}

// Sub performs element-wise subtraction.
func (b *Backend) Sub(a, other *tensor.RawTensor) *tensor.RawTensor {
	return b.elementwise("sub", a, other, subShader, b.cpu.Sub)
}

// Mul performs element-wise multiplication.
func (b *Backend) Mul(a, other *tensor.RawTensor) *tensor.RawTensor {
	return b.elementwise("mul", a, other, mulShader, b.cpu.Mul)
}

// Div performs element-wise division.
func (b *Backend) Div(a, other *tensor.RawTensor) *tensor.RawTensor {
	return b.elementwise("div", a, other, divShader, b.cpu.Div)
}

// MatMul multiplies 2-D float32 matrices on GPU; other dtypes run on CPU.
func (b *Backend) MatMul(a, other *tensor.RawTensor) *tensor.RawTensor {
	if a.DType() != tensor.Float32 || other.DType() != tensor.Float32 {
		return b.cpu.MatMul(a, other).OnDevice(tensor.WebGPU)
	}
	if len(a.Shape()) != 2 || len(other.Shape()) != 2 || a.Shape()[1] != other.Shape()[0] {
		exceptions.Panicf("webgpu: matmul: incompatible shapes %v @ %v", a.Shape(), other.Shape())
	}
	result, err := b.runMatMul(a, other)
	if err != nil {
		exceptions.Panicf("webgpu: matmul: %v", err)
	}
	return result
}

// The remaining ops have no shader and run on the CPU backend.

func (b *Backend) AddScalar(x *tensor.RawTensor, scalar float64) *tensor.RawTensor {
	return b.cpu.AddScalar(x, scalar).OnDevice(tensor.WebGPU)
}

func (b *Backend) MulScalar(x *tensor.RawTensor, scalar float64) *tensor.RawTensor {
	return b.cpu.MulScalar(x, scalar).OnDevice(tensor.WebGPU)
}

func (b *Backend) Pow(x *tensor.RawTensor, exponent float64) *tensor.RawTensor {
	return b.cpu.Pow(x, exponent).OnDevice(tensor.WebGPU)
}

func (b *Backend) Reshape(x *tensor.RawTensor, newShape tensor.Shape) *tensor.RawTensor {
	return b.cpu.Reshape(x, newShape).OnDevice(tensor.WebGPU)
}

func (b *Backend) Transpose(x *tensor.RawTensor, axes ...int) *tensor.RawTensor {
	return b.cpu.Transpose(x, axes...).OnDevice(tensor.WebGPU)
}

func (b *Backend) Narrow(x *tensor.RawTensor, dim, start, length int) *tensor.RawTensor {
	return b.cpu.Narrow(x, dim, start, length).OnDevice(tensor.WebGPU)
}

func (b *Backend) Greater(a, other *tensor.RawTensor) *tensor.RawTensor {
	return b.cpu.Greater(a, other).OnDevice(tensor.WebGPU)
}

func (b *Backend) Lower(a, other *tensor.RawTensor) *tensor.RawTensor {
	return b.cpu.Lower(a, other).OnDevice(tensor.WebGPU)
}

func (b *Backend) Equal(a, other *tensor.RawTensor) *tensor.RawTensor {
	return b.cpu.Equal(a, other).OnDevice(tensor.WebGPU)
}

func (b *Backend) Where(condition, x, y *tensor.RawTensor) *tensor.RawTensor {
	return b.cpu.Where(condition, x, y).OnDevice(tensor.WebGPU)
}

func (b *Backend) Sum(x *tensor.RawTensor) *tensor.RawTensor {
	return b.cpu.Sum(x).OnDevice(tensor.WebGPU)
}

func (b *Backend) SumDim(x *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	return b.cpu.SumDim(x, dim, keepDim).OnDevice(tensor.WebGPU)
}

func (b *Backend) MeanDim(x *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	return b.cpu.MeanDim(x, dim, keepDim).OnDevice(tensor.WebGPU)
}

func (b *Backend) MaxDim(x *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	return b.cpu.MaxDim(x, dim, keepDim).OnDevice(tensor.WebGPU)
}

func (b *Backend) Argmax(x *tensor.RawTensor, dim int) *tensor.RawTensor {
	return b.cpu.Argmax(x, dim).OnDevice(tensor.WebGPU)
}

func (b *Backend) Argsort(x *tensor.RawTensor, dim int, descending bool) *tensor.RawTensor {
	return b.cpu.Argsort(x, dim, descending).OnDevice(tensor.WebGPU)
}

func (b *Backend) Diagonal(x *tensor.RawTensor, offset int) *tensor.RawTensor {
	return b.cpu.Diagonal(x, offset).OnDevice(tensor.WebGPU)
}

func (b *Backend) DiagEmbed(x *tensor.RawTensor, offset int) *tensor.RawTensor {
	return b.cpu.DiagEmbed(x, offset).OnDevice(tensor.WebGPU)
}

func (b *Backend) Cast(x *tensor.RawTensor, dtype tensor.DataType) *tensor.RawTensor {
	return b.cpu.Cast(x, dtype).OnDevice(tensor.WebGPU)
}
