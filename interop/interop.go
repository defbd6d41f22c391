// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package interop converts tensors to and from gonum matrices and
// half-precision floats. Every conversion copies.
//
// Example:
//
//	dense, err := interop.ToDense(x) // *mat.Dense
//	y, err := interop.FromDense[float32](dense.T(), backend)
package interop

import (
	"github.com/x448/float16"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/tensorbook/internal/interop"
	"github.com/born-ml/tensorbook/internal/tensor"
)

// Float is the set of element types that convert to gonum.
type Float = interop.Float

// ToDense copies a 2-D tensor into a gonum matrix.
func ToDense[T Float, B tensor.Backend](t *tensor.Tensor[T, B]) (*mat.Dense, error) {
	return interop.ToDense(t)
}

// FromDense copies a gonum matrix into a 2-D tensor.
func FromDense[T Float, B tensor.Backend](m mat.Matrix, backend B) (*tensor.Tensor[T, B], error) {
	return interop.FromDense[T](m, backend)
}

// ToVec copies a 1-D tensor into a gonum vector.
func ToVec[T Float, B tensor.Backend](t *tensor.Tensor[T, B]) (*mat.VecDense, error) {
	return interop.ToVec(t)
}

// FromVec copies a gonum vector into a 1-D tensor.
func FromVec[T Float, B tensor.Backend](v mat.Vector, backend B) (*tensor.Tensor[T, B], error) {
	return interop.FromVec[T](v, backend)
}

// ToFloat16 rounds every element to IEEE 754 half precision.
func ToFloat16[T Float, B tensor.Backend](t *tensor.Tensor[T, B]) []float16.Float16 {
	return interop.ToFloat16(t)
}

// FromFloat16 widens half-precision values into a tensor of the given shape.
func FromFloat16[T Float, B tensor.Backend](values []float16.Float16, shape tensor.Shape, backend B) (*tensor.Tensor[T, B], error) {
	return interop.FromFloat16[T](values, shape, backend)
}

// Half rounds t through float16 and back, like torch's half().
func Half[T Float, B tensor.Backend](t *tensor.Tensor[T, B]) *tensor.Tensor[T, B] {
	return interop.Half(t)
}
