package cpu

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"
	"gonum.org/v1/gonum/blas/blas64"

	"github.com/born-ml/tensorbook/internal/parallel"
	"github.com/born-ml/tensorbook/internal/tensor"
)

// MatMul performs matrix multiplication (M, K) @ (K, N) -> (M, N).
// Float types go through gonum's BLAS GEMM; integer types use a row-parallel
// triple loop.
func (cpu *CPUBackend) MatMul(a, b *tensor.RawTensor) *tensor.RawTensor {
	aShape, bShape := a.Shape(), b.Shape()
	if len(aShape) != 2 || len(bShape) != 2 {
		panicf("matmul", "only 2D tensors supported, got %dD and %dD", len(aShape), len(bShape))
	}
	if a.DType() != b.DType() {
		panicf("matmul", "dtype mismatch: %s vs %s", a.DType(), b.DType())
	}
	m, k := aShape[0], aShape[1]
	kAlt, n := bShape[0], bShape[1]
	if k != kAlt {
		panicf("matmul", "shape mismatch [%d,%d] @ [%d,%d]", m, k, kAlt, n)
	}

	result := cpu.newResult("matmul", tensor.Shape{m, n}, a.DType())
	switch a.DType() {
	case tensor.Float32:
		blas32.Gemm(blas.NoTrans, blas.NoTrans, 1,
			blas32.General{Rows: m, Cols: k, Stride: k, Data: a.AsFloat32()},
			blas32.General{Rows: k, Cols: n, Stride: n, Data: b.AsFloat32()},
			0,
			blas32.General{Rows: m, Cols: n, Stride: n, Data: result.AsFloat32()})
	case tensor.Float64:
		blas64.Gemm(blas.NoTrans, blas.NoTrans, 1,
			blas64.General{Rows: m, Cols: k, Stride: k, Data: a.AsFloat64()},
			blas64.General{Rows: k, Cols: n, Stride: n, Data: b.AsFloat64()},
			0,
			blas64.General{Rows: m, Cols: n, Stride: n, Data: result.AsFloat64()})
	case tensor.Int32:
		matmulTyped(result.AsInt32(), a.AsInt32(), b.AsInt32(), m, k, n, cpu.parallel)
	case tensor.Int64:
		matmulTyped(result.AsInt64(), a.AsInt64(), b.AsInt64(), m, k, n, cpu.parallel)
	default:
		panicf("matmul", "unsupported dtype %s", a.DType())
	}
	return result
}

// matmulTyped computes C[i,j] = sum_k A[i,k] * B[k,j], one row of C per task.
func matmulTyped[T number](c, a, b []T, m, k, n int, cfg parallel.Config) {
	parallel.For(m, func(i int) {
		row := c[i*n : (i+1)*n]
		for kk := 0; kk < k; kk++ {
			av := a[i*k+kk]
			if av == 0 {
				continue
			}
			bRow := b[kk*n : (kk+1)*n]
			for j := range row {
				row[j] += av * bRow[j]
			}
		}
	}, cfg)
}
