// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package webgpu provides the WebGPU backend for GPU-accelerated tensor operations.
//
// Element-wise float32 arithmetic on equal shapes and 2-D float32 matmul run
// as WGSL compute shaders. Every other operation runs on the CPU and its
// result is labeled as living on the WebGPU device. The backend is only
// available on windows; elsewhere New returns an error.
//
// Example:
//
//	gpu, err := webgpu.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer gpu.Release()
//	x := tensor.Randn[float32](tensor.Shape{256, 256}, gpu)
//	y := x.MatMul(x)
package webgpu

import (
	internalwebgpu "github.com/born-ml/tensorbook/internal/backend/webgpu"
	"github.com/born-ml/tensorbook/tensor"
)

// Backend represents the WebGPU backend implementation.
type Backend = internalwebgpu.Backend

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// ErrUnavailable is returned by New when no WebGPU adapter can be used.
var ErrUnavailable = internalwebgpu.ErrUnavailable

// New creates a new WebGPU backend. Call Release when done.
func New() (*Backend, error) {
	return internalwebgpu.New()
}

// IsAvailable checks if WebGPU is available on the current system.
//
// Example:
//
//	var backend tensor.Backend = cpu.New()
//	if webgpu.IsAvailable() {
//	    if gpu, err := webgpu.New(); err == nil {
//	        backend = gpu
//	    }
//	}
func IsAvailable() bool {
	return internalwebgpu.IsAvailable()
}
