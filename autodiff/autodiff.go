// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides automatic differentiation capabilities.
//
// This package implements reverse-mode automatic differentiation (backpropagation)
// using a gradient tape. It wraps any backend to add autodiff capabilities.
//
// Example:
//
//	backend := autodiff.New(cpu.New())
//	backend.Tape().StartRecording()
//
//	x, _ := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{3}, backend)
//	y := x.Mul(x).Add(x.MulScalar(3)).Sum()
//	if err := autodiff.BackwardInto(y, backend, x); err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(x.Grad().Format()) // [5.0000 7.0000 9.0000]
package autodiff

import (
	"github.com/born-ml/tensorbook/internal/autodiff"
	"github.com/born-ml/tensorbook/internal/tensor"
)

// Backend is the autodiff-enabled backend.
type Backend[B tensor.Backend] = autodiff.AutodiffBackend[B]

// New creates a new autodiff backend wrapping the given backend.
func New[B tensor.Backend](backend B) *Backend[B] {
	return autodiff.New(backend)
}

// GradientTape records operations for automatic differentiation.
type GradientTape = autodiff.GradientTape

// NewGradientTape creates a new gradient tape.
func NewGradientTape() *GradientTape {
	return autodiff.NewGradientTape()
}

// BackwardCapable interface for backends that support backpropagation.
type BackwardCapable = autodiff.BackwardCapable

// Backward computes the gradient of sum(t) with respect to every recorded tensor.
func Backward[T tensor.DType, B BackwardCapable](t *tensor.Tensor[T, B], backend B) (map[*tensor.RawTensor]*tensor.RawTensor, error) {
	return autodiff.Backward(t, backend)
}

// BackwardInto runs Backward and stores each gradient on the matching tensor.
func BackwardInto[T tensor.DType, B BackwardCapable](t *tensor.Tensor[T, B], backend B, tensors ...*tensor.Tensor[T, B]) error {
	return autodiff.BackwardInto(t, backend, tensors...)
}
