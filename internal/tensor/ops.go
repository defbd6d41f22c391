package tensor

import "github.com/gomlx/exceptions"

// Add performs element-wise addition with broadcasting.
//
// Example:
//
//	a := tensor.Ones[float32](Shape{3, 1}, backend)
//	b := tensor.Ones[float32](Shape{3, 5}, backend)
//	c := a.Add(b) // Shape: [3, 5]
func (t *Tensor[T, B]) Add(other *Tensor[T, B]) *Tensor[T, B] {
	return New[T, B](t.backend.Add(t.raw, other.raw), t.backend)
}

// Sub performs element-wise subtraction with broadcasting.
func (t *Tensor[T, B]) Sub(other *Tensor[T, B]) *Tensor[T, B] {
	return New[T, B](t.backend.Sub(t.raw, other.raw), t.backend)
}

// Mul performs element-wise multiplication with broadcasting.
func (t *Tensor[T, B]) Mul(other *Tensor[T, B]) *Tensor[T, B] {
	return New[T, B](t.backend.Mul(t.raw, other.raw), t.backend)
}

// Div performs element-wise division with broadcasting.
func (t *Tensor[T, B]) Div(other *Tensor[T, B]) *Tensor[T, B] {
	return New[T, B](t.backend.Div(t.raw, other.raw), t.backend)
}

// AddScalar adds a scalar to every element.
func (t *Tensor[T, B]) AddScalar(scalar T) *Tensor[T, B] {
	return New[T, B](t.backend.AddScalar(t.raw, ToFloat64(scalar)), t.backend)
}

// SubScalar subtracts a scalar from every element.
func (t *Tensor[T, B]) SubScalar(scalar T) *Tensor[T, B] {
	return New[T, B](t.backend.AddScalar(t.raw, -ToFloat64(scalar)), t.backend)
}

// MulScalar multiplies every element by a scalar.
func (t *Tensor[T, B]) MulScalar(scalar T) *Tensor[T, B] {
	return New[T, B](t.backend.MulScalar(t.raw, ToFloat64(scalar)), t.backend)
}

// DivScalar divides every element by a scalar. Intended for float tensors.
func (t *Tensor[T, B]) DivScalar(scalar T) *Tensor[T, B] {
	s := ToFloat64(scalar)
	if s == 0 {
		exceptions.Panicf("DivScalar: division by zero")
	}
	return New[T, B](t.backend.MulScalar(t.raw, 1/s), t.backend)
}

// Neg negates every element.
func (t *Tensor[T, B]) Neg() *Tensor[T, B] {
	return New[T, B](t.backend.MulScalar(t.raw, -1), t.backend)
}

// Pow raises every element to the given power.
//
// Example:
//
//	x := tensor.Arange[float32](0, 4, backend)
//	y := x.Pow(2) // [0, 1, 4, 9]
func (t *Tensor[T, B]) Pow(exponent float64) *Tensor[T, B] {
	return New[T, B](t.backend.Pow(t.raw, exponent), t.backend)
}

// MatMul performs 2-D matrix multiplication: (M, K) @ (K, N) → (M, N).
func (t *Tensor[T, B]) MatMul(other *Tensor[T, B]) *Tensor[T, B] {
	return New[T, B](t.backend.MatMul(t.raw, other.raw), t.backend)
}

// Reshape returns a tensor with the same data and a new shape.
// A single dimension may be -1, in which case it is inferred.
//
// Example:
//
//	t := tensor.Arange[float32](0, 12, backend)
//	m := t.Reshape(3, -1) // Shape: [3, 4]
func (t *Tensor[T, B]) Reshape(newShape ...int) *Tensor[T, B] {
	shape, err := InferShape(Shape(newShape), t.NumElements())
	if err != nil {
		exceptions.Panicf("Reshape: %v", err)
	}
	return New[T, B](t.backend.Reshape(t.raw, shape), t.backend)
}

// Flatten reshapes the tensor to one dimension.
func (t *Tensor[T, B]) Flatten() *Tensor[T, B] {
	return t.Reshape(-1)
}

// Transpose permutes the dimensions. With no axes, dimensions are reversed.
func (t *Tensor[T, B]) Transpose(axes ...int) *Tensor[T, B] {
	return New[T, B](t.backend.Transpose(t.raw, axes...), t.backend)
}

// T swaps rows and columns of a 2-D tensor.
func (t *Tensor[T, B]) T() *Tensor[T, B] {
	if len(t.Shape()) != 2 {
		exceptions.Panicf("T() only works for 2D tensors, got shape %v", t.Shape())
	}
	return t.Transpose(1, 0)
}

// Narrow returns length consecutive entries along dim starting at start.
//
// Example:
//
//	m := tensor.Arange[float32](0, 12, backend).Reshape(3, 4)
//	lastCol := m.Narrow(1, 3, 1) // Shape: [3, 1]
func (t *Tensor[T, B]) Narrow(dim, start, length int) *Tensor[T, B] {
	return New[T, B](t.backend.Narrow(t.raw, dim, start, length), t.backend)
}

// Select picks a single index along dim and drops that dimension.
// Negative indices count from the end.
//
// Example:
//
//	lastCol := m.Select(1, -1) // Shape: [3]
func (t *Tensor[T, B]) Select(dim, index int) *Tensor[T, B] {
	shape := t.Shape()
	dim = NormalizeDim(dim, len(shape))
	if index < 0 {
		index += shape[dim]
	}
	narrowed := t.Narrow(dim, index, 1)
	out := make(Shape, 0, len(shape)-1)
	out = append(out, shape[:dim]...)
	out = append(out, shape[dim+1:]...)
	return New[T, B](t.backend.Reshape(narrowed.raw, out), t.backend)
}

// Sum reduces all elements to a scalar.
func (t *Tensor[T, B]) Sum() *Tensor[T, B] {
	return New[T, B](t.backend.Sum(t.raw), t.backend)
}

// Mean returns the mean of all elements as a scalar.
func (t *Tensor[T, B]) Mean() *Tensor[T, B] {
	return New[T, B](t.backend.MulScalar(t.backend.Sum(t.raw), 1/float64(t.NumElements())), t.backend)
}

// SumDim sums along dim, keeping it as size 1 when keepDim is set.
func (t *Tensor[T, B]) SumDim(dim int, keepDim bool) *Tensor[T, B] {
	return New[T, B](t.backend.SumDim(t.raw, dim, keepDim), t.backend)
}

// MeanDim averages along dim.
func (t *Tensor[T, B]) MeanDim(dim int, keepDim bool) *Tensor[T, B] {
	return New[T, B](t.backend.MeanDim(t.raw, dim, keepDim), t.backend)
}

// MaxDim returns the maximum along dim.
func (t *Tensor[T, B]) MaxDim(dim int, keepDim bool) *Tensor[T, B] {
	return New[T, B](t.backend.MaxDim(t.raw, dim, keepDim), t.backend)
}

// Argmax returns the index of the maximum along dim; the dimension is removed.
// Ties resolve to the first occurrence.
//
// Example:
//
//	idx := m.Select(1, -1).Argmax(0).Item() // row of the largest last-column value
func (t *Tensor[T, B]) Argmax(dim int) *Tensor[int64, B] {
	return New[int64, B](t.backend.Argmax(t.raw, dim), t.backend)
}

// Argsort returns the indices that sort the tensor along dim.
// Equal values keep their original order.
func (t *Tensor[T, B]) Argsort(dim int, descending bool) *Tensor[int64, B] {
	return New[int64, B](t.backend.Argsort(t.raw, dim, descending), t.backend)
}

// Greater returns a mask that is true where t > other, with broadcasting.
func (t *Tensor[T, B]) Greater(other *Tensor[T, B]) *Tensor[bool, B] {
	return New[bool, B](t.backend.Greater(t.raw, other.raw), t.backend)
}

// Lower returns a mask that is true where t < other.
func (t *Tensor[T, B]) Lower(other *Tensor[T, B]) *Tensor[bool, B] {
	return New[bool, B](t.backend.Lower(t.raw, other.raw), t.backend)
}

// Equal returns a mask that is true where t == other.
func (t *Tensor[T, B]) Equal(other *Tensor[T, B]) *Tensor[bool, B] {
	return New[bool, B](t.backend.Equal(t.raw, other.raw), t.backend)
}

// GreaterScalar returns a mask that is true where t > value.
//
// Example:
//
//	mask := m.GreaterScalar(0.5)
func (t *Tensor[T, B]) GreaterScalar(value T) *Tensor[bool, B] {
	return t.Greater(Scalar[T, B](value, t.backend))
}

// LowerScalar returns a mask that is true where t < value.
func (t *Tensor[T, B]) LowerScalar(value T) *Tensor[bool, B] {
	return t.Lower(Scalar[T, B](value, t.backend))
}

// MaskedFill returns a copy of t with value written wherever mask is true.
// The receiver is left unchanged.
//
// Example:
//
//	zeroed := m.MaskedFill(m.GreaterScalar(0.5), 0)
func (t *Tensor[T, B]) MaskedFill(mask *Tensor[bool, B], value T) *Tensor[T, B] {
	return Where(mask, Scalar[T, B](value, t.backend), t)
}

// Where selects elements from x where cond is true and from y elsewhere.
func Where[T DType, B Backend](cond *Tensor[bool, B], x, y *Tensor[T, B]) *Tensor[T, B] {
	return New[T, B](x.backend.Where(cond.raw, x.raw, y.raw), x.backend)
}

// CountTrue returns the number of true entries in a mask.
func CountTrue[B Backend](mask *Tensor[bool, B]) int {
	n := 0
	for _, v := range mask.Data() {
		if v {
			n++
		}
	}
	return n
}

// Diagonal returns the diagonal of a 2-D tensor at the given offset.
// Positive offsets are above the main diagonal.
func (t *Tensor[T, B]) Diagonal(offset int) *Tensor[T, B] {
	return New[T, B](t.backend.Diagonal(t.raw, offset), t.backend)
}

// DiagEmbed builds a square matrix with the 1-D tensor on the diagonal at offset.
//
// Example:
//
//	d := m.Diagonal(0).DiagEmbed(0) // keep only the main diagonal of m
func (t *Tensor[T, B]) DiagEmbed(offset int) *Tensor[T, B] {
	return New[T, B](t.backend.DiagEmbed(t.raw, offset), t.backend)
}

// Float32 casts the tensor to float32.
func (t *Tensor[T, B]) Float32() *Tensor[float32, B] {
	return New[float32, B](t.backend.Cast(t.raw, Float32), t.backend)
}

// Float64 casts the tensor to float64.
func (t *Tensor[T, B]) Float64() *Tensor[float64, B] {
	return New[float64, B](t.backend.Cast(t.raw, Float64), t.backend)
}

// Int64 casts the tensor to int64.
func (t *Tensor[T, B]) Int64() *Tensor[int64, B] {
	return New[int64, B](t.backend.Cast(t.raw, Int64), t.backend)
}
