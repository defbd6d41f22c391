package ops

import "github.com/born-ml/tensorbook/internal/tensor"

// SumOp reduces every element to a scalar. Each input element contributes
// once, so the scalar gradient is broadcast back to the input shape.
type SumOp struct {
	node
}

// NewSumOp creates a new SumOp.
func NewSumOp(x, output *tensor.RawTensor) *SumOp {
	return &SumOp{newNode(output, x)}
}

// Backward broadcasts the scalar gradient over the input.
func (op *SumOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{broadcastTo(outputGrad, op.inputs[0].Shape(), backend)}
}

// SumDimOp is output = sum(x, dim, keepDim).
//
// Backward:
//
//	grad_x = broadcast(unsqueeze(grad_y, dim), x.shape)
type SumDimOp struct {
	node
	dim     int
	keepDim bool
}

// NewSumDimOp creates a new SumDimOp.
func NewSumDimOp(x, output *tensor.RawTensor, dim int, keepDim bool) *SumDimOp {
	return &SumDimOp{
		node:    newNode(output, x),
		dim:     tensor.NormalizeDim(dim, len(x.Shape())),
		keepDim: keepDim,
	}
}

// Backward broadcasts the gradient back along the reduced dimension.
func (op *SumDimOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	x := op.inputs[0]
	grad := outputGrad
	if !op.keepDim {
		grad = unsqueeze(grad, op.dim, x.Shape(), backend)
	}
	return []*tensor.RawTensor{broadcastTo(grad, x.Shape(), backend)}
}
