// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand"

	"github.com/born-ml/tensorbook/internal/nn"
	"github.com/born-ml/tensorbook/internal/tensor"
)

// Module interface defines the common interface for all neural network modules.
type Module[B tensor.Backend] = nn.Module[B]

// Parameter represents a trainable parameter in a neural network.
type Parameter[B tensor.Backend] = nn.Parameter[B]

// NewParameter creates a new parameter with the given name and tensor.
func NewParameter[B tensor.Backend](name string, t *tensor.Tensor[float32, B]) *Parameter[B] {
	return nn.NewParameter(name, t)
}

// ZeroGrad clears the gradients of every parameter of m.
func ZeroGrad[B tensor.Backend](m Module[B]) {
	nn.ZeroGrad(m)
}

// NumParameters counts the scalar weights of m.
func NumParameters[B tensor.Backend](m Module[B]) int {
	return nn.NumParameters(m)
}

// Polynomial is the quadratic module y = a*x^2 + b*x + c.
type Polynomial[B tensor.Backend] = nn.Polynomial[B]

// NewPolynomial draws a, b and c from N(0, 1) using rng.
//
// Example:
//
//	backend := autodiff.New(cpu.New())
//	model := nn.NewPolynomial(backend, rand.New(rand.NewSource(42)))
//	fmt.Println(model) // y = ... x^2 + ... x + ...
func NewPolynomial[B tensor.Backend](backend B, rng *rand.Rand) *Polynomial[B] {
	return nn.NewPolynomial(backend, rng)
}

// NewPolynomialFrom creates a polynomial with fixed coefficients.
func NewPolynomialFrom[B tensor.Backend](a, b, c float32, backend B) *Polynomial[B] {
	return nn.NewPolynomialFrom(a, b, c, backend)
}

// MSELoss is the mean squared error.
type MSELoss[B tensor.Backend] = nn.MSELoss[B]

// NewMSELoss creates a mean squared error loss.
func NewMSELoss[B tensor.Backend](backend B) *MSELoss[B] {
	return nn.NewMSELoss(backend)
}

// Normal creates a tensor drawn from N(mean, std²). A nil rng uses the global source.
func Normal[B tensor.Backend](shape tensor.Shape, mean, std float32, rng *rand.Rand, backend B) *tensor.Tensor[float32, B] {
	return nn.Normal(shape, mean, std, rng, backend)
}

// Constant creates a tensor filled with value.
func Constant[B tensor.Backend](shape tensor.Shape, value float32, backend B) *tensor.Tensor[float32, B] {
	return nn.Constant(shape, value, backend)
}
