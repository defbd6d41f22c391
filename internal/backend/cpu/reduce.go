package cpu

import (
	"cmp"
	"slices"

	"github.com/born-ml/tensorbook/internal/tensor"
)

// Sum reduces all elements to a scalar of the same dtype.
func (cpu *CPUBackend) Sum(x *tensor.RawTensor) *tensor.RawTensor {
	result := cpu.newResult("sum", tensor.Shape{}, x.DType())
	var total float64
	for i := 0; i < x.NumElements(); i++ {
		total += x.Float64At(i)
	}
	result.SetFloat64At(0, total)
	return result
}

// SumDim sums along dim.
func (cpu *CPUBackend) SumDim(x *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	return cpu.reduceDim("sum_dim", x, dim, keepDim, x.DType(), func(values []float64) float64 {
		var s float64
		for _, v := range values {
			s += v
		}
		return s
	})
}

// MeanDim averages along dim.
func (cpu *CPUBackend) MeanDim(x *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	return cpu.reduceDim("mean_dim", x, dim, keepDim, x.DType(), func(values []float64) float64 {
		var s float64
		for _, v := range values {
			s += v
		}
		return s / float64(len(values))
	})
}

// MaxDim returns the maximum along dim.
func (cpu *CPUBackend) MaxDim(x *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	return cpu.reduceDim("max_dim", x, dim, keepDim, x.DType(), func(values []float64) float64 {
		return slices.Max(values)
	})
}

// Argmax returns, as Int64, the position of the maximum along dim.
// The first occurrence wins on ties.
func (cpu *CPUBackend) Argmax(x *tensor.RawTensor, dim int) *tensor.RawTensor {
	return cpu.reduceDim("argmax", x, dim, false, tensor.Int64, func(values []float64) float64 {
		best := 0
		for i, v := range values {
			if v > values[best] {
				best = i
			}
		}
		return float64(best)
	})
}

// reduceDim applies f to every 1-D slice along dim and stores the results as dtype.
func (cpu *CPUBackend) reduceDim(name string, x *tensor.RawTensor, dim int, keepDim bool, dtype tensor.DataType, f func([]float64) float64) *tensor.RawTensor {
	shape := x.Shape()
	dim = tensor.NormalizeDim(dim, len(shape))
	outer, inner := splitAt(shape, dim)
	size := shape[dim]

	result := cpu.newResult(name, reducedShape(shape, dim, keepDim), dtype)
	values := make([]float64, size)
	for o := 0; o < outer; o++ {
		for i := 0; i < inner; i++ {
			for k := 0; k < size; k++ {
				values[k] = x.Float64At((o*size+k)*inner + i)
			}
			result.SetFloat64At(o*inner+i, f(values))
		}
	}
	return result
}

// Argsort returns Int64 indices that order x along dim. The sort is stable.
func (cpu *CPUBackend) Argsort(x *tensor.RawTensor, dim int, descending bool) *tensor.RawTensor {
	shape := x.Shape()
	dim = tensor.NormalizeDim(dim, len(shape))
	outer, inner := splitAt(shape, dim)
	size := shape[dim]

	result := cpu.newResult("argsort", shape, tensor.Int64)
	out := result.AsInt64()
	order := make([]int, size)
	for o := 0; o < outer; o++ {
		for i := 0; i < inner; i++ {
			at := func(k int) float64 { return x.Float64At((o*size+k)*inner + i) }
			for k := range order {
				order[k] = k
			}
			slices.SortStableFunc(order, func(p, q int) int {
				if descending {
					return cmp.Compare(at(q), at(p))
				}
				return cmp.Compare(at(p), at(q))
			})
			for k, idx := range order {
				out[(o*size+k)*inner+i] = int64(idx)
			}
		}
	}
	return result
}

func reducedShape(shape tensor.Shape, dim int, keepDim bool) tensor.Shape {
	if keepDim {
		out := shape.Clone()
		out[dim] = 1
		return out
	}
	out := make(tensor.Shape, 0, len(shape)-1)
	out = append(out, shape[:dim]...)
	return append(out, shape[dim+1:]...)
}
