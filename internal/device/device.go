// Package device chooses the compute backend a session runs on.
package device

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/born-ml/tensorbook/internal/backend/cpu"
	"github.com/born-ml/tensorbook/internal/backend/webgpu"
	"github.com/born-ml/tensorbook/internal/tensor"
)

// Names accepted by Select.
const (
	CPU    = "cpu"
	WebGPU = "webgpu"
	Auto   = "auto"
)

// Names lists the accepted device names in display order.
var Names = []string{Auto, CPU, WebGPU}

// Select returns the backend for name, matched case-insensitively.
// An empty name means Auto, which uses WebGPU when an adapter is present
// and the CPU otherwise.
func Select(name string) (tensor.Backend, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case CPU:
		return cpu.New(), nil
	case WebGPU:
		gpu, err := webgpu.New()
		if err != nil {
			return nil, errors.Wrap(err, "device: webgpu requested")
		}
		return gpu, nil
	case Auto, "":
		if webgpu.IsAvailable() {
			gpu, err := webgpu.New()
			if err == nil {
				klog.V(1).Infof("device: auto selected %s", gpu.Name())
				return gpu, nil
			}
			klog.Warningf("device: webgpu adapter found but unusable, falling back to CPU: %v", err)
		}
		klog.V(1).Info("device: auto selected CPU")
		return cpu.New(), nil
	default:
		return nil, errors.Errorf("device: unknown device %q, want one of %s", name, strings.Join(Names, ", "))
	}
}

// Describe returns a one-line description of the backend.
func Describe(b tensor.Backend) string {
	return fmt.Sprintf("%s backend on %s", b.Name(), b.Device())
}

// Release frees device resources held by b, if any.
func Release(b tensor.Backend) {
	if r, ok := b.(interface{ Release() }); ok {
		r.Release()
	}
}
