// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor is the public API of tensorbook's typed tensors.
//
// # Overview
//
// A Tensor[T, B] pairs a element type T (float32, float64, int32, int64,
// uint8 or bool) with the backend B that computes on it. Operations never
// mutate their receiver; each returns a new tensor.
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/tensorbook/backend/cpu"
//	    "github.com/born-ml/tensorbook/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    m := tensor.Arange[float32](0, 12, backend).Reshape(3, -1)
//	    fmt.Println(m.SumDim(1, false).Format()) // [6.0000 22.0000 38.0000]
//	}
//
// # Broadcasting
//
// Element-wise operations follow NumPy broadcasting: shapes are aligned from
// the right and a dimension of size 1 stretches to match the other operand.
//
//	a := tensor.Ones[float32](tensor.Shape{3, 1}, backend)
//	b := tensor.Ones[float32](tensor.Shape{1, 4}, backend)
//	c := a.Add(b) // shape [3, 4]
//
// # Errors
//
// Shape mismatches are programmer errors and panic. Constructors that take
// user data, such as FromSlice, return an error instead.
package tensor
