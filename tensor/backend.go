// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/born-ml/tensorbook/internal/tensor"

// Backend defines the interface that all compute backends must implement.
//
// Implementations:
//   - backend/cpu: pure Go, every op and dtype
//   - backend/webgpu: WGSL compute shaders for float32 arithmetic and matmul
//
// Decorator backends:
//   - autodiff: records differentiable ops on a gradient tape (wraps any backend)
type Backend = tensor.Backend
