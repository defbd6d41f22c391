// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides a pure Go CPU backend for tensor operations.
//
// # Overview
//
// The CPU backend implements every operation for every element type:
//   - Pure Go implementation (no CGO)
//   - Float32 and Float64 matrix multiplication through gonum BLAS
//   - NumPy-compatible broadcasting
//   - Goroutine fan-out for large integer matmuls
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
//	    x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
//	    y := tensor.Ones[float32](tensor.Shape{2, 3}, backend)
//	    z := x.Add(y)
//	}
//
// # Thread Safety
//
// The CPU backend is safe for concurrent use. Each tensor operation
// is isolated and does not share mutable state.
package cpu
