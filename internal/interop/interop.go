// Package interop converts tensors to and from the numeric array types of the
// wider Go ecosystem: gonum matrices and vectors, and IEEE 754 half-precision
// values from x448/float16.
//
// Every conversion copies. Mutating the returned value never changes the
// source, in either direction.
package interop

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/tensorbook/internal/tensor"
)

// Float is the set of tensor element types interop can convert.
type Float interface {
	~float32 | ~float64
}

// ToDense copies a 2-D tensor into a new gonum matrix.
//
// Example:
//
//	m := tensor.Eye[float32](3, backend)
//	d, err := interop.ToDense(m)
//	fmt.Println(mat.Formatted(d))
func ToDense[T Float, B tensor.Backend](t *tensor.Tensor[T, B]) (*mat.Dense, error) {
	shape := t.Shape()
	if len(shape) != 2 {
		return nil, errors.Errorf("ToDense: expected a 2D tensor, got shape %v", shape)
	}
	return mat.NewDense(shape[0], shape[1], toFloat64s(t.Data())), nil
}

// FromDense copies a gonum matrix into a new (rows, cols) tensor.
func FromDense[T Float, B tensor.Backend](m mat.Matrix, backend B) (*tensor.Tensor[T, B], error) {
	if m == nil {
		return nil, errors.New("FromDense: nil matrix")
	}
	rows, cols := m.Dims()
	values := make([]T, 0, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			values = append(values, T(m.At(i, j)))
		}
	}
	t, err := tensor.FromSlice(values, tensor.Shape{rows, cols}, backend)
	return t, errors.Wrap(err, "FromDense")
}

// ToVec copies a 1-D tensor into a new gonum vector.
func ToVec[T Float, B tensor.Backend](t *tensor.Tensor[T, B]) (*mat.VecDense, error) {
	shape := t.Shape()
	if len(shape) != 1 {
		return nil, errors.Errorf("ToVec: expected a 1D tensor, got shape %v", shape)
	}
	return mat.NewVecDense(shape[0], toFloat64s(t.Data())), nil
}

// FromVec copies a gonum vector into a new 1-D tensor.
func FromVec[T Float, B tensor.Backend](v mat.Vector, backend B) (*tensor.Tensor[T, B], error) {
	if v == nil {
		return nil, errors.New("FromVec: nil vector")
	}
	values := make([]T, v.Len())
	for i := range values {
		values[i] = T(v.AtVec(i))
	}
	t, err := tensor.FromSlice(values, tensor.Shape{len(values)}, backend)
	return t, errors.Wrap(err, "FromVec")
}

func toFloat64s[T Float](data []T) []float64 {
	out := make([]float64, len(data))
	for i, v := range data {
		out[i] = float64(v)
	}
	return out
}
