// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"math/rand"

	"github.com/born-ml/tensorbook/internal/tensor"
)

// DType is a constraint for tensor element types.
type DType = tensor.DType

// DataType represents the underlying data type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
	Uint8   DataType = tensor.Uint8
	Bool    DataType = tensor.Bool
)

// Device represents the device where tensor data resides.
type Device = tensor.Device

// Device constants.
const (
	CPU    Device = tensor.CPU
	WebGPU Device = tensor.WebGPU
)

// Shape represents the dimensions of a tensor.
type Shape = tensor.Shape

// RawTensor is the untyped storage behind a Tensor, used by backends.
type RawTensor = tensor.RawTensor

// Tensor is a generic type-safe tensor over element type T and backend B.
type Tensor[T DType, B Backend] = tensor.Tensor[T, B]

// Zeros creates a tensor filled with zeros.
func Zeros[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return tensor.Zeros[T](shape, b)
}

// Ones creates a tensor filled with ones.
func Ones[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return tensor.Ones[T](shape, b)
}

// Full creates a tensor filled with value.
func Full[T DType, B Backend](shape Shape, value T, b B) *Tensor[T, B] {
	return tensor.Full(shape, value, b)
}

// Scalar creates a 0-D tensor.
func Scalar[T DType, B Backend](value T, b B) *Tensor[T, B] {
	return tensor.Scalar(value, b)
}

// Arange creates a 1-D tensor with values from start to end (exclusive).
//
// Example:
//
//	x := tensor.Arange[float32](0, 10, backend) // [0, 1, ..., 9]
func Arange[T DType, B Backend](start, end T, b B) *Tensor[T, B] {
	return tensor.Arange(start, end, b)
}

// Linspace creates n evenly spaced values from start to end inclusive.
func Linspace[T DType, B Backend](start, end T, n int, b B) *Tensor[T, B] {
	return tensor.Linspace(start, end, n, b)
}

// Eye creates an n×n identity matrix.
func Eye[T DType, B Backend](n int, b B) *Tensor[T, B] {
	return tensor.Eye[T](n, b)
}

// Rand draws from U(0, 1) using the global source.
func Rand[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return tensor.Rand[T](shape, b)
}

// RandSeeded draws from U(0, 1) using rng.
func RandSeeded[T DType, B Backend](shape Shape, rng *rand.Rand, b B) *Tensor[T, B] {
	return tensor.RandSeeded[T](shape, rng, b)
}

// Randn draws from N(0, 1) using the global source.
func Randn[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return tensor.Randn[T](shape, b)
}

// RandnSeeded draws from N(0, 1) using rng.
func RandnSeeded[T DType, B Backend](shape Shape, rng *rand.Rand, b B) *Tensor[T, B] {
	return tensor.RandnSeeded[T](shape, rng, b)
}

// FromSlice creates a tensor from a Go slice. The data is copied.
//
// Example:
//
//	x, err := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, backend)
func FromSlice[T DType, B Backend](data []T, shape Shape, b B) (*Tensor[T, B], error) {
	return tensor.FromSlice(data, shape, b)
}

// New wraps a raw tensor.
func New[T DType, B Backend](raw *RawTensor, b B) *Tensor[T, B] {
	return tensor.New[T](raw, b)
}

// NewRaw allocates a zeroed raw tensor.
func NewRaw(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype, device)
}

// Where picks x where cond is true and y elsewhere.
func Where[T DType, B Backend](cond *Tensor[bool, B], x, y *Tensor[T, B]) *Tensor[T, B] {
	return tensor.Where(cond, x, y)
}

// CountTrue returns the number of true entries of mask.
func CountTrue[B Backend](mask *Tensor[bool, B]) int {
	return tensor.CountTrue(mask)
}

// To moves t onto the device of b. Moving to the current device is a no-op.
func To[T DType, B Backend, B2 Backend](t *Tensor[T, B], b B2) *Tensor[T, B2] {
	return tensor.To(t, b)
}
