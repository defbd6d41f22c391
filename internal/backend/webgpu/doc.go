// Package webgpu implements the WebGPU backend for GPU-accelerated tensor operations.
// Uses go-webgpu (github.com/go-webgpu/webgpu) for zero-CGO WebGPU bindings.
//
// The native loader only exists on windows. On other platforms IsAvailable
// reports false and New returns ErrUnavailable.
package webgpu

import "github.com/pkg/errors"

// ErrUnavailable is returned by New when no WebGPU adapter can be used.
var ErrUnavailable = errors.New("webgpu: not available")
