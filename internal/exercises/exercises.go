// Package exercises holds ten small matrix exercises over a fixed 10×10
// matrix. Each one is a short composition of tensor operations.
package exercises

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/tensorbook/internal/tensor"
)

// Size is the side length of the exercise matrix.
const Size = 10

// Threshold separates the "large" entries used by exercises 3 and 7.
const Threshold = 0.5

// Matrix builds the Size×Size float32 input, uniform in [0, 1), from seed.
func Matrix[B tensor.Backend](seed int64, backend B) *tensor.Tensor[float32, B] {
	rng := rand.New(rand.NewSource(seed)) //nolint:gosec // G404: reproducible exercise data
	return tensor.RandSeeded[float32](tensor.Shape{Size, Size}, rng, backend)
}

// LastColumnArgmax returns the row holding the largest value of the last column.
func LastColumnArgmax[B tensor.Backend](m *tensor.Tensor[float32, B]) int {
	return int(m.Select(1, -1).Argmax(0).Item())
}

// FirstRowArgsort returns the column order that sorts the first row ascending.
func FirstRowArgsort[B tensor.Backend](m *tensor.Tensor[float32, B]) []int64 {
	return m.Select(0, 0).Argsort(0, false).ToSlice()
}

// ThresholdSum returns the sum of the entries strictly greater than Threshold.
func ThresholdSum[B tensor.Backend](m *tensor.Tensor[float32, B]) float32 {
	zero := tensor.Scalar[float32](0, m.Backend())
	return tensor.Where(m.GreaterScalar(Threshold), m, zero).Sum().Item()
}

// MainDiagonal returns the main diagonal as a vector.
func MainDiagonal[B tensor.Backend](m *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	return m.Diagonal(0)
}

// SuperdiagonalSum returns the sum of the diagonal just above the main one.
func SuperdiagonalSum[B tensor.Backend](m *tensor.Tensor[float32, B]) float32 {
	return m.Diagonal(1).Sum().Item()
}

// ElementwiseProductSum returns sum(M ⊙ Mᵀ), which equals trace(M @ M).
func ElementwiseProductSum[B tensor.Backend](m *tensor.Tensor[float32, B]) float32 {
	return m.Mul(m.T()).Sum().Item()
}

// MaskedZeroSum zeroes the entries greater than Threshold in a copy of m and
// returns the sum of what is left. m itself is not modified.
func MaskedZeroSum[B tensor.Backend](m *tensor.Tensor[float32, B]) float32 {
	return m.MaskedFill(m.GreaterScalar(Threshold), 0).Sum().Item()
}

// ColumnsAboveMean returns, in increasing order, the columns whose mean is
// greater than the mean of the whole matrix.
func ColumnsAboveMean[B tensor.Backend](m *tensor.Tensor[float32, B]) []int {
	mask := m.MeanDim(0, false).Greater(m.Mean())
	var cols []int
	for i, above := range mask.Data() {
		if above {
			cols = append(cols, i)
		}
	}
	return cols
}

// DiagonalMatrix returns diag(diag(M)): M's main diagonal with zeros elsewhere.
func DiagonalMatrix[B tensor.Backend](m *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	return m.Diagonal(0).DiagEmbed(0)
}

// RowSumArgmax returns the row with the largest sum.
func RowSumArgmax[B tensor.Backend](m *tensor.Tensor[float32, B]) int {
	return int(m.SumDim(1, false).Argmax(0).Item())
}

// Result is one rendered exercise answer.
type Result struct {
	Number int
	Name   string
	Value  string
}

// RunAll runs the ten exercises on m in order.
func RunAll[B tensor.Backend](m *tensor.Tensor[float32, B]) []Result {
	return []Result{
		{1, "argmax of last column", fmt.Sprint(LastColumnArgmax(m))},
		{2, "argsort of first row", fmt.Sprint(FirstRowArgsort(m))},
		{3, fmt.Sprintf("sum of entries > %.1f", Threshold), fmt.Sprintf("%.4f", ThresholdSum(m))},
		{4, "main diagonal", MainDiagonal(m).Format()},
		{5, "sum of superdiagonal", fmt.Sprintf("%.4f", SuperdiagonalSum(m))},
		{6, "sum(M * M^T)", fmt.Sprintf("%.4f", ElementwiseProductSum(m))},
		{7, fmt.Sprintf("sum after zeroing entries > %.1f", Threshold), fmt.Sprintf("%.4f", MaskedZeroSum(m))},
		{8, "columns with mean above global mean", fmt.Sprint(ColumnsAboveMean(m))},
		{9, "trace of diag(diag(M))", fmt.Sprintf("%.4f", DiagonalMatrix(m).Sum().Item())},
		{10, "argmax of row sums", fmt.Sprint(RowSumArgmax(m))},
	}
}
