// Package autodiff implements reverse-mode automatic differentiation as a
// Backend decorator.
//
// AutodiffBackend wraps any Backend (CPU, WebGPU) and records differentiable
// operations on a GradientTape while recording is on. Operations with no
// useful gradient, such as comparisons, argmax and argsort, are
// forwarded to the wrapped backend without being recorded.
//
// Usage:
//
//	backend := autodiff.New(cpu.New())
//	backend.Tape().StartRecording()
//
//	x, _ := tensor.FromSlice([]float32{2.0}, tensor.Shape{1}, backend)
//	y := x.Mul(x).Sum() // y = x²
//
//	_ = autodiff.BackwardInto(y, backend, x)
//	fmt.Println(x.Grad().Format()) // dy/dx = 2x = [4.0000]
package autodiff

import (
	"github.com/born-ml/tensorbook/internal/autodiff/ops"
	"github.com/born-ml/tensorbook/internal/tensor"
)

// AutodiffBackend wraps a Backend and adds automatic differentiation.
type AutodiffBackend[B tensor.Backend] struct {
	inner B
	tape  *GradientTape
}

// New creates a new AutodiffBackend wrapping the given backend.
func New[B tensor.Backend](backend B) *AutodiffBackend[B] {
	return &AutodiffBackend[B]{
		inner: backend,
		tape:  NewGradientTape(),
	}
}

// Tape returns the gradient tape for manual control: starting and stopping
// recording, and clearing it between iterations.
func (b *AutodiffBackend[B]) Tape() *GradientTape {
	return b.tape
}

// Inner returns the wrapped backend.
func (b *AutodiffBackend[B]) Inner() B {
	return b.inner
}

// Name returns the backend name.
func (b *AutodiffBackend[B]) Name() string {
	return "Autodiff(" + b.inner.Name() + ")"
}

// Device returns the compute device of the wrapped backend.
func (b *AutodiffBackend[B]) Device() tensor.Device {
	return b.inner.Device()
}

func (b *AutodiffBackend[B]) record(op ops.Operation) {
	if b.tape.IsRecording() {
		b.tape.Record(op)
	}
}

// Add performs element-wise addition and records the operation.
func (b *AutodiffBackend[B]) Add(x, y *tensor.RawTensor) *tensor.RawTensor {
	result := b.inner.Add(x, y)
	b.record(ops.NewAddOp(x, y, result))
	return result
}

// Sub performs element-wise subtraction and records the operation.
func (b *AutodiffBackend[B]) Sub(x, y *tensor.RawTensor) *tensor.RawTensor {
	result := b.inner.Sub(x, y)
	b.record(ops.NewSubOp(x, y, result))
	return result
}

// Mul performs element-wise multiplication and records the operation.
func (b *AutodiffBackend[B]) Mul(x, y *tensor.RawTensor) *tensor.RawTensor {
	result := b.inner.Mul(x, y)
	b.record(ops.NewMulOp(x, y, result))
	return result
}

// Div performs element-wise division and records the operation.
func (b *AutodiffBackend[B]) Div(x, y *tensor.RawTensor) *tensor.RawTensor {
	result := b.inner.Div(x, y)
	b.record(ops.NewDivOp(x, y, result))
	return result
}

// AddScalar adds a constant and records the operation.
func (b *AutodiffBackend[B]) AddScalar(x *tensor.RawTensor, scalar float64) *tensor.RawTensor {
	result := b.inner.AddScalar(x, scalar)
	b.record(ops.NewAddScalarOp(x, result))
	return result
}

// MulScalar scales by a constant and records the operation.
func (b *AutodiffBackend[B]) MulScalar(x *tensor.RawTensor, scalar float64) *tensor.RawTensor {
	result := b.inner.MulScalar(x, scalar)
	b.record(ops.NewMulScalarOp(x, result, scalar))
	return result
}

// Pow raises to a constant power and records the operation.
func (b *AutodiffBackend[B]) Pow(x *tensor.RawTensor, exponent float64) *tensor.RawTensor {
	result := b.inner.Pow(x, exponent)
	b.record(ops.NewPowOp(x, result, exponent))
	return result
}

// MatMul performs matrix multiplication and records the operation.
func (b *AutodiffBackend[B]) MatMul(x, y *tensor.RawTensor) *tensor.RawTensor {
	result := b.inner.MatMul(x, y)
	b.record(ops.NewMatMulOp(x, y, result))
	return result
}

// Reshape reshapes a tensor and records the operation.
//
// The wrapped backend returns a new tensor, so without the record the
// gradient would stop at the reshaped copy and never reach the original.
func (b *AutodiffBackend[B]) Reshape(x *tensor.RawTensor, newShape tensor.Shape) *tensor.RawTensor {
	result := b.inner.Reshape(x, newShape)
	b.record(ops.NewReshapeOp(x, result))
	return result
}

// Transpose permutes dimensions and records the operation.
func (b *AutodiffBackend[B]) Transpose(x *tensor.RawTensor, axes ...int) *tensor.RawTensor {
	rank := len(x.Shape())
	perm := make([]int, rank)
	if len(axes) == 0 {
		for i := range perm {
			perm[i] = rank - 1 - i
		}
	} else {
		if len(axes) != rank {
			// Let the wrapped backend report the error.
			return b.inner.Transpose(x, axes...)
		}
		for i, ax := range axes {
			perm[i] = tensor.NormalizeDim(ax, rank)
		}
	}
	result := b.inner.Transpose(x, perm...)
	b.record(ops.NewTransposeOp(x, result, perm))
	return result
}

// Sum reduces to a scalar and records the operation.
func (b *AutodiffBackend[B]) Sum(x *tensor.RawTensor) *tensor.RawTensor {
	result := b.inner.Sum(x)
	b.record(ops.NewSumOp(x, result))
	return result
}

// SumDim sums along dim and records the operation.
func (b *AutodiffBackend[B]) SumDim(x *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	result := b.inner.SumDim(x, dim, keepDim)
	b.record(ops.NewSumDimOp(x, result, dim, keepDim))
	return result
}

// MeanDim averages along dim and records the operation.
func (b *AutodiffBackend[B]) MeanDim(x *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	result := b.inner.MeanDim(x, dim, keepDim)
	b.record(ops.NewMeanDimOp(x, result, dim, keepDim))
	return result
}

// MaxDim is forwarded without recording.
func (b *AutodiffBackend[B]) MaxDim(x *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	return b.inner.MaxDim(x, dim, keepDim)
}

// Narrow slices along dim and records the operation.
func (b *AutodiffBackend[B]) Narrow(x *tensor.RawTensor, dim, start, length int) *tensor.RawTensor {
	result := b.inner.Narrow(x, dim, start, length)
	b.record(ops.NewNarrowOp(x, result, tensor.NormalizeDim(dim, len(x.Shape())), start, length))
	return result
}

// Greater is forwarded without recording.
func (b *AutodiffBackend[B]) Greater(x, y *tensor.RawTensor) *tensor.RawTensor {
	return b.inner.Greater(x, y)
}

// Lower is forwarded without recording.
func (b *AutodiffBackend[B]) Lower(x, y *tensor.RawTensor) *tensor.RawTensor {
	return b.inner.Lower(x, y)
}

// Equal is forwarded without recording.
func (b *AutodiffBackend[B]) Equal(x, y *tensor.RawTensor) *tensor.RawTensor {
	return b.inner.Equal(x, y)
}

// Where selects between x and y and records the operation.
func (b *AutodiffBackend[B]) Where(condition, x, y *tensor.RawTensor) *tensor.RawTensor {
	result := b.inner.Where(condition, x, y)
	b.record(ops.NewWhereOp(condition, x, y, result))
	return result
}

// Argmax is forwarded without recording.
func (b *AutodiffBackend[B]) Argmax(x *tensor.RawTensor, dim int) *tensor.RawTensor {
	return b.inner.Argmax(x, dim)
}

// Argsort is forwarded without recording.
func (b *AutodiffBackend[B]) Argsort(x *tensor.RawTensor, dim int, descending bool) *tensor.RawTensor {
	return b.inner.Argsort(x, dim, descending)
}

// Diagonal is forwarded without recording.
func (b *AutodiffBackend[B]) Diagonal(x *tensor.RawTensor, offset int) *tensor.RawTensor {
	return b.inner.Diagonal(x, offset)
}

// DiagEmbed is forwarded without recording.
func (b *AutodiffBackend[B]) DiagEmbed(x *tensor.RawTensor, offset int) *tensor.RawTensor {
	return b.inner.DiagEmbed(x, offset)
}

// Cast is forwarded without recording.
func (b *AutodiffBackend[B]) Cast(x *tensor.RawTensor, dtype tensor.DataType) *tensor.RawTensor {
	return b.inner.Cast(x, dtype)
}
