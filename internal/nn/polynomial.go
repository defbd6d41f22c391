package nn

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/tensorbook/internal/tensor"
)

// Polynomial is the learnable quadratic y = a*x² + b*x + c.
//
// a, b and c are scalar parameters broadcast over the input, so Forward
// accepts x of any shape, a 0-D scalar included, and returns a tensor of the
// same shape.
//
// Example:
//
//	backend := autodiff.New(cpu.New())
//	model := nn.NewPolynomial(backend, rand.New(rand.NewSource(0)))
//	x := tensor.Linspace[float32](-2, 2, 100, backend)
//	y := model.Forward(x)
type Polynomial[B tensor.Backend] struct {
	a, b, c *Parameter[B]
}

// NewPolynomial creates a Polynomial with coefficients drawn from N(0, 1).
func NewPolynomial[B tensor.Backend](backend B, rng *rand.Rand) *Polynomial[B] {
	return &Polynomial[B]{
		a: NewParameter("a", Normal(tensor.Shape{}, 0, 1, rng, backend)),
		b: NewParameter("b", Normal(tensor.Shape{}, 0, 1, rng, backend)),
		c: NewParameter("c", Normal(tensor.Shape{}, 0, 1, rng, backend)),
	}
}

// NewPolynomialFrom creates a Polynomial with fixed coefficients.
func NewPolynomialFrom[B tensor.Backend](a, b, c float32, backend B) *Polynomial[B] {
	return &Polynomial[B]{
		a: NewParameter("a", Constant(tensor.Shape{}, a, backend)),
		b: NewParameter("b", Constant(tensor.Shape{}, b, backend)),
		c: NewParameter("c", Constant(tensor.Shape{}, c, backend)),
	}
}

// Forward computes a*x² + b*x + c element-wise.
func (p *Polynomial[B]) Forward(x *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	quadratic := x.Pow(2).Mul(p.a.Tensor())
	linear := x.Mul(p.b.Tensor())
	return quadratic.Add(linear).Add(p.c.Tensor())
}

// Parameters returns a, b and c in that order.
func (p *Polynomial[B]) Parameters() []*Parameter[B] {
	return []*Parameter[B]{p.a, p.b, p.c}
}

// Coefficients returns the current values of a, b and c.
func (p *Polynomial[B]) Coefficients() (a, b, c float32) {
	return p.a.Tensor().Item(), p.b.Tensor().Item(), p.c.Tensor().Item()
}

// String renders the learned formula, e.g. "y = 2.0000 x^2 + -3.0000 x + 1.0000".
func (p *Polynomial[B]) String() string {
	a, b, c := p.Coefficients()
	return fmt.Sprintf("y = %.4f x^2 + %.4f x + %.4f", a, b, c)
}
