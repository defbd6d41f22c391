// Package nn implements trainable modules for tensorbook.
//
// It provides:
//   - Module interface: Forward plus the list of trainable parameters
//   - Parameter: a named tensor with its gradient
//   - Polynomial: the learnable quadratic a*x² + b*x + c
//   - MSELoss: mean squared error built from differentiable tensor ops
//
// Design inspired by PyTorch's nn.Module but adapted for Go generics.
package nn

import (
	"github.com/born-ml/tensorbook/internal/tensor"
)

// Module is the base interface for trainable components.
//
//	model := nn.NewPolynomial(backend, rng)
//	y := model.Forward(x)
//	for _, p := range model.Parameters() { ... }
type Module[B tensor.Backend] interface {
	// Forward computes the module output for input.
	Forward(input *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B]

	// Parameters returns the trainable parameters in a stable order.
	Parameters() []*Parameter[B]
}

// ZeroGrad clears the gradients of every parameter of m.
func ZeroGrad[B tensor.Backend](m Module[B]) {
	for _, p := range m.Parameters() {
		p.ZeroGrad()
	}
}

// NumParameters returns the total number of scalar parameters in m.
func NumParameters[B tensor.Backend](m Module[B]) int {
	n := 0
	for _, p := range m.Parameters() {
		n += p.Tensor().NumElements()
	}
	return n
}
