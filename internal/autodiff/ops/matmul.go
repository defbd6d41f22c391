package ops

import "github.com/born-ml/tensorbook/internal/tensor"

// MatMulOp is output = a @ b for 2-D operands.
//
// Backward pass:
//   - grad_a = outputGrad @ bᵀ
//   - grad_b = aᵀ @ outputGrad
type MatMulOp struct {
	node
}

// NewMatMulOp creates a new MatMulOp.
func NewMatMulOp(a, b, output *tensor.RawTensor) *MatMulOp {
	return &MatMulOp{newNode(output, a, b)}
}

// Backward computes input gradients for matrix multiplication.
func (op *MatMulOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	a, b := op.inputs[0], op.inputs[1]
	gradA := backend.MatMul(outputGrad, backend.Transpose(b, 1, 0))
	gradB := backend.MatMul(backend.Transpose(a, 1, 0), outputGrad)
	return []*tensor.RawTensor{gradA, gradB}
}
