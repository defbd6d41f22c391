package ops

import "github.com/born-ml/tensorbook/internal/tensor"

// AddScalarOp is output = x + s. The gradient passes through unchanged.
type AddScalarOp struct {
	node
}

// NewAddScalarOp creates a new AddScalarOp.
func NewAddScalarOp(x, output *tensor.RawTensor) *AddScalarOp {
	return &AddScalarOp{newNode(output, x)}
}

// Backward returns a copy of the output gradient.
func (op *AddScalarOp) Backward(outputGrad *tensor.RawTensor, _ tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{outputGrad.Clone()}
}

// MulScalarOp is output = x * s, so grad_x = outputGrad * s.
type MulScalarOp struct {
	node
	scalar float64
}

// NewMulScalarOp creates a new MulScalarOp.
func NewMulScalarOp(x, output *tensor.RawTensor, scalar float64) *MulScalarOp {
	return &MulScalarOp{node: newNode(output, x), scalar: scalar}
}

// Backward scales the output gradient by the scalar.
func (op *MulScalarOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{backend.MulScalar(outputGrad, op.scalar)}
}

// PowOp is output = x^p, so grad_x = outputGrad * p * x^(p-1).
type PowOp struct {
	node
	exponent float64
}

// NewPowOp creates a new PowOp.
func NewPowOp(x, output *tensor.RawTensor, exponent float64) *PowOp {
	return &PowOp{node: newNode(output, x), exponent: exponent}
}

// Backward applies the power rule.
func (op *PowOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	x := op.inputs[0]
	var local *tensor.RawTensor
	switch op.exponent {
	case 0:
		return []*tensor.RawTensor{backend.MulScalar(outputGrad, 0)}
	case 1:
		return []*tensor.RawTensor{outputGrad.Clone()}
	case 2:
		local = backend.MulScalar(x, 2)
	default:
		local = backend.MulScalar(backend.Pow(x, op.exponent-1), op.exponent)
	}
	return []*tensor.RawTensor{backend.Mul(outputGrad, local)}
}
