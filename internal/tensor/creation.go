package tensor

import (
	"math"
	"math/rand"

	"github.com/gomlx/exceptions"
)

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	t := tensor.Zeros[float32](Shape{3, 4}, backend)
func Zeros[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	raw, err := NewRaw(shape, DataTypeOf[T](), b.Device())
	if err != nil {
		exceptions.Panicf("tensor.Zeros: %v", err)
	}
	return New[T, B](raw, b)
}

// Ones creates a tensor filled with ones.
func Ones[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return Full[T, B](shape, FromFloat64[T](1), b)
}

// Full creates a tensor filled with value.
//
// Example:
//
//	t := tensor.Full[float32](Shape{3, 3}, 3.14, backend)
func Full[T DType, B Backend](shape Shape, value T, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	data := t.Data()
	for i := range data {
		data[i] = value
	}
	return t
}

// Scalar creates a 0-D tensor holding value.
func Scalar[T DType, B Backend](value T, b B) *Tensor[T, B] {
	return Full[T, B](Shape{}, value, b)
}

// Arange creates a 1-D tensor with values start, start+1, ... up to end
// (exclusive). A fractional span rounds up, so Arange(0, 2.5) is [0, 1, 2].
//
// Example:
//
//	x := tensor.Arange[float32](0, 10, backend) // [0, 1, ..., 9]
func Arange[T DType, B Backend](start, end T, b B) *Tensor[T, B] {
	lo, hi := ToFloat64(start), ToFloat64(end)
	n := int(math.Ceil(hi - lo))
	if n <= 0 {
		exceptions.Panicf("tensor.Arange: end (%v) must be greater than start (%v)", end, start)
	}
	t := Zeros[T, B](Shape{n}, b)
	data := t.Data()
	for i := range data {
		data[i] = FromFloat64[T](lo + float64(i))
	}
	return t
}

// Linspace creates a 1-D tensor of n evenly spaced values from start to end inclusive.
func Linspace[T DType, B Backend](start, end T, n int, b B) *Tensor[T, B] {
	if n < 2 {
		exceptions.Panicf("tensor.Linspace: need at least 2 points, got %d", n)
	}
	lo, hi := ToFloat64(start), ToFloat64(end)
	step := (hi - lo) / float64(n-1)
	t := Zeros[T, B](Shape{n}, b)
	data := t.Data()
	for i := range data {
		data[i] = FromFloat64[T](lo + step*float64(i))
	}
	return t
}

// Eye creates an n×n identity matrix.
func Eye[T DType, B Backend](n int, b B) *Tensor[T, B] {
	t := Zeros[T, B](Shape{n, n}, b)
	data := t.Data()
	one := FromFloat64[T](1)
	for i := 0; i < n; i++ {
		data[i*n+i] = one
	}
	return t
}

// Rand creates a float tensor with values uniformly distributed in [0, 1),
// drawn from the global math/rand source.
func Rand[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return RandSeeded[T, B](shape, rand.New(rand.NewSource(rand.Int63())), b) //nolint:gosec // G404: statistical use
}

// RandSeeded is Rand drawing from rng, for reproducible output.
//
// Example:
//
//	rng := rand.New(rand.NewSource(42))
//	m := tensor.RandSeeded[float32](Shape{10, 10}, rng, backend)
func RandSeeded[T DType, B Backend](shape Shape, rng *rand.Rand, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	if !t.DType().IsFloat() {
		exceptions.Panicf("tensor.Rand only supports float32 and float64, got %s", t.DType())
	}
	// Float32 draws its own value: narrowing a float64 draw can round up to 1.
	draw := rng.Float64
	if t.DType() == Float32 {
		draw = func() float64 { return float64(rng.Float32()) }
	}
	data := t.Data()
	for i := range data {
		data[i] = FromFloat64[T](draw())
	}
	return t
}

// Randn creates a float tensor with values drawn from N(0, 1).
func Randn[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return RandnSeeded[T, B](shape, rand.New(rand.NewSource(rand.Int63())), b) //nolint:gosec // G404: statistical use
}

// RandnSeeded is Randn drawing from rng.
func RandnSeeded[T DType, B Backend](shape Shape, rng *rand.Rand, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	if !t.DType().IsFloat() {
		exceptions.Panicf("tensor.Randn only supports float32 and float64, got %s", t.DType())
	}
	data := t.Data()
	for i := range data {
		data[i] = FromFloat64[T](rng.NormFloat64())
	}
	return t
}
