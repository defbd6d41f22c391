package nn

import (
	"github.com/born-ml/tensorbook/internal/tensor"
)

// Parameter is a trainable tensor owned by a module.
//
// Example:
//
//	a := nn.NewParameter("a", tensor.Randn[float32](tensor.Shape{1}, backend))
//	a.Tensor()        // current value
//	a.Grad()          // gradient after backward, nil before
type Parameter[B tensor.Backend] struct {
	name   string
	tensor *tensor.Tensor[float32, B]
	grad   *tensor.Tensor[float32, B]
}

// NewParameter creates a new trainable parameter and marks its tensor as
// requiring a gradient.
func NewParameter[B tensor.Backend](name string, t *tensor.Tensor[float32, B]) *Parameter[B] {
	return &Parameter[B]{
		name:   name,
		tensor: t.RequireGrad(),
	}
}

// Name returns the parameter name.
func (p *Parameter[B]) Name() string {
	return p.name
}

// Tensor returns the parameter tensor.
func (p *Parameter[B]) Tensor() *tensor.Tensor[float32, B] {
	return p.tensor
}

// Grad returns the gradient, or nil before the first backward pass.
func (p *Parameter[B]) Grad() *tensor.Tensor[float32, B] {
	return p.grad
}

// SetGrad sets the gradient tensor.
func (p *Parameter[B]) SetGrad(grad *tensor.Tensor[float32, B]) {
	p.grad = grad
	p.tensor.SetGrad(grad)
}

// CollectGrad looks the parameter up in a gradient map produced by
// autodiff.Backward and stores the result. It reports whether a gradient
// was found.
func (p *Parameter[B]) CollectGrad(grads map[*tensor.RawTensor]*tensor.RawTensor) bool {
	g, ok := grads[p.tensor.Raw()]
	if !ok {
		return false
	}
	p.SetGrad(tensor.New[float32, B](g, p.tensor.Backend()))
	return true
}

// ZeroGrad clears the gradient.
func (p *Parameter[B]) ZeroGrad() {
	p.grad = nil
	p.tensor.SetGrad(nil)
}
