// Package optim implements optimization algorithms for tensorbook modules.
//
// This package provides:
//   - Optimizer interface: Base interface for all optimizers
//   - SGD: Stochastic Gradient Descent with optional momentum
//   - Adam: Adaptive Moment Estimation
//
// Updates are written straight into the parameter storage, so they are never
// recorded on an autodiff tape.
//
// Example usage:
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.01}, backend)
//
//	for epoch := range epochs {
//	    backend.Tape().Clear()
//	    loss := mse.Forward(model.Forward(x), y)
//	    grads, err := autodiff.Backward(loss, backend)
//	    if err != nil { ... }
//	    optimizer.Step(grads)
//	    optimizer.ZeroGrad()
//	}
package optim

import (
	"github.com/gomlx/exceptions"

	"github.com/born-ml/tensorbook/internal/nn"
	"github.com/born-ml/tensorbook/internal/tensor"
)

// Optimizer is the base interface for all optimization algorithms.
type Optimizer interface {
	// Step applies one update to every parameter that has a gradient in grads.
	// grads is the map returned by autodiff.Backward.
	Step(grads map[*tensor.RawTensor]*tensor.RawTensor)

	// ZeroGrad clears all parameter gradients.
	ZeroGrad()

	// GetLR returns the current learning rate.
	GetLR() float32
}

// gradientFor returns the gradient of param as float32 values, or nil if the
// parameter did not take part in the computation. The gradient is also stored
// on the parameter.
func gradientFor[B tensor.Backend](param *nn.Parameter[B], grads map[*tensor.RawTensor]*tensor.RawTensor) []float32 {
	if param == nil || !param.CollectGrad(grads) {
		return nil
	}
	g := param.Grad()
	if !g.Shape().Equal(param.Tensor().Shape()) {
		exceptions.Panicf("optim: gradient shape %v does not match parameter %q shape %v",
			g.Shape(), param.Name(), param.Tensor().Shape())
	}
	return g.Data()
}
