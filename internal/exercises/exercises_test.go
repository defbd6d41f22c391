package exercises_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/tensorbook/internal/backend/cpu"
	"github.com/born-ml/tensorbook/internal/exercises"
	"github.com/born-ml/tensorbook/internal/tensor"
)

var seeds = []int64{0, 1, 42, 2024}

func grid(m *tensor.Tensor[float32, *cpu.CPUBackend]) [][]float32 {
	rows := make([][]float32, exercises.Size)
	for i := range rows {
		rows[i] = make([]float32, exercises.Size)
		for j := range rows[i] {
			rows[i][j] = m.At(i, j)
		}
	}
	return rows
}

func TestMatrix(t *testing.T) {
	backend := cpu.New()
	m := exercises.Matrix(7, backend)
	assert.Equal(t, tensor.Shape{10, 10}, m.Shape())
	assert.Equal(t, m.Data(), exercises.Matrix(7, backend).Data(), "same seed, same matrix")
	assert.NotEqual(t, m.Data(), exercises.Matrix(8, backend).Data())
}

func TestExercises_AgainstLoops(t *testing.T) {
	backend := cpu.New()
	for _, seed := range seeds {
		m := exercises.Matrix(seed, backend)
		g := grid(m)

		best := 0
		for i := range g {
			if g[i][9] > g[best][9] {
				best = i
			}
		}
		assert.Equal(t, best, exercises.LastColumnArgmax(m), "seed %d", seed)

		var above, super, trace float64
		for i := range g {
			for j := range g[i] {
				if g[i][j] > exercises.Threshold {
					above += float64(g[i][j])
				}
				trace += float64(g[i][j]) * float64(g[j][i])
			}
			if i+1 < exercises.Size {
				super += float64(g[i][i+1])
			}
		}
		assert.InDelta(t, above, float64(exercises.ThresholdSum(m)), 1e-4)
		assert.InDelta(t, super, float64(exercises.SuperdiagonalSum(m)), 1e-5)
		assert.InDelta(t, trace, float64(exercises.ElementwiseProductSum(m)), 1e-4)

		rowBest, rowBestSum := 0, float32(-1)
		for i := range g {
			var s float32
			for _, v := range g[i] {
				s += v
			}
			if s > rowBestSum {
				rowBest, rowBestSum = i, s
			}
		}
		assert.Equal(t, rowBest, exercises.RowSumArgmax(m))
	}
}

func TestFirstRowArgsort(t *testing.T) {
	backend := cpu.New()
	for _, seed := range seeds {
		m := exercises.Matrix(seed, backend)
		order := exercises.FirstRowArgsort(m)
		require.Len(t, order, exercises.Size)

		sorted := slices.Clone(order)
		slices.Sort(sorted)
		for i, idx := range sorted {
			assert.Equal(t, int64(i), idx, "argsort output is a permutation")
		}
		for k := 1; k < len(order); k++ {
			assert.LessOrEqual(t, m.At(0, int(order[k-1])), m.At(0, int(order[k])))
		}
	}
}

func TestThresholdAndMaskedSumsPartitionTotal(t *testing.T) {
	backend := cpu.New()
	for _, seed := range seeds {
		m := exercises.Matrix(seed, backend)
		before := m.ToSlice()
		total := m.Sum().Item()

		masked := exercises.MaskedZeroSum(m)
		assert.InDelta(t, float64(total), float64(exercises.ThresholdSum(m)+masked), 1e-4)
		assert.Equal(t, before, m.Data(), "the input matrix is not modified")
	}
}

func TestElementwiseProductSumIsTraceOfSquare(t *testing.T) {
	backend := cpu.New()
	m := exercises.Matrix(3, backend)
	trace := m.MatMul(m).Diagonal(0).Sum().Item()
	assert.InDelta(t, float64(trace), float64(exercises.ElementwiseProductSum(m)), 1e-4)
}

func TestDiagonals(t *testing.T) {
	backend := cpu.New()
	m := exercises.Matrix(5, backend)

	diag := exercises.MainDiagonal(m)
	require.Equal(t, tensor.Shape{10}, diag.Shape())

	d := exercises.DiagonalMatrix(m)
	require.Equal(t, tensor.Shape{10, 10}, d.Shape())
	for i := 0; i < exercises.Size; i++ {
		for j := 0; j < exercises.Size; j++ {
			if i == j {
				assert.Equal(t, m.At(i, i), d.At(i, j))
				assert.Equal(t, diag.At(i), d.At(i, j))
			} else {
				assert.Zero(t, d.At(i, j))
			}
		}
	}
}

func TestColumnsAboveMean(t *testing.T) {
	backend := cpu.New()
	for _, seed := range seeds {
		m := exercises.Matrix(seed, backend)
		g := grid(m)

		var total float64
		colMeans := make([]float64, exercises.Size)
		for i := range g {
			for j, v := range g[i] {
				total += float64(v)
				colMeans[j] += float64(v) / exercises.Size
			}
		}
		mean := total / (exercises.Size * exercises.Size)

		var want []int
		for j, cm := range colMeans {
			if cm > mean {
				want = append(want, j)
			}
		}
		assert.Equal(t, want, exercises.ColumnsAboveMean(m), "seed %d", seed)
	}
}

func TestColumnsAboveMean_Known(t *testing.T) {
	backend := cpu.New()
	// Column means are 0, 1, 2; the global mean is 1.
	m, _ := tensor.FromSlice([]float32{0, 1, 2, 0, 1, 2}, tensor.Shape{2, 3}, backend)
	assert.Equal(t, []int{2}, exercises.ColumnsAboveMean(m))
}

func TestRunAll(t *testing.T) {
	results := exercises.RunAll(exercises.Matrix(0, cpu.New()))
	require.Len(t, results, 10)
	for i, r := range results {
		assert.Equal(t, i+1, r.Number)
		assert.NotEmpty(t, r.Name)
		assert.NotEmpty(t, r.Value)
	}
}
