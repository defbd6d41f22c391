//go:build !windows

package webgpu

import (
	"runtime"

	"github.com/pkg/errors"

	"github.com/born-ml/tensorbook/internal/backend/cpu"
)

// Backend is never constructed on this platform. It embeds the CPU backend
// so the type still satisfies tensor.Backend.
type Backend struct {
	*cpu.CPUBackend
}

// New always fails on this platform.
func New() (*Backend, error) {
	return nil, errors.Wrapf(ErrUnavailable, "no native loader for %s", runtime.GOOS)
}

// IsAvailable reports false on this platform.
func IsAvailable() bool {
	return false
}

// Release is a no-op.
func (b *Backend) Release() {}
