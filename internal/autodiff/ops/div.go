package ops

import "github.com/born-ml/tensorbook/internal/tensor"

// DivOp is output = a / b, element-wise.
//
// Backward pass:
//   - grad_a = outputGrad / b
//   - grad_b = -outputGrad * a / b²
type DivOp struct {
	node
}

// NewDivOp creates a new DivOp.
func NewDivOp(a, b, output *tensor.RawTensor) *DivOp {
	return &DivOp{newNode(output, a, b)}
}

// Backward computes input gradients for division.
func (op *DivOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	a, b := op.inputs[0], op.inputs[1]

	gradA := backend.Div(outputGrad, b)

	numerator := backend.Mul(outputGrad, a)
	gradB := backend.MulScalar(backend.Div(numerator, backend.Mul(b, b)), -1)

	return []*tensor.RawTensor{
		reduceBroadcast(gradA, a.Shape(), backend),
		reduceBroadcast(gradB, b.Shape(), backend),
	}
}
