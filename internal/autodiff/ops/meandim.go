package ops

import "github.com/born-ml/tensorbook/internal/tensor"

// MeanDimOp is output = mean(x, dim, keepDim).
//
// Backward:
//
//	grad_x = broadcast(unsqueeze(grad_y, dim), x.shape) / size[dim]
type MeanDimOp struct {
	node
	dim     int
	keepDim bool
	dimSize int
}

// NewMeanDimOp creates a new MeanDimOp.
func NewMeanDimOp(x, output *tensor.RawTensor, dim int, keepDim bool) *MeanDimOp {
	dim = tensor.NormalizeDim(dim, len(x.Shape()))
	return &MeanDimOp{
		node:    newNode(output, x),
		dim:     dim,
		keepDim: keepDim,
		dimSize: x.Shape()[dim],
	}
}

// Backward spreads the gradient evenly over the reduced dimension.
func (op *MeanDimOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	x := op.inputs[0]
	grad := outputGrad
	if !op.keepDim {
		grad = unsqueeze(grad, op.dim, x.Shape(), backend)
	}
	gradX := broadcastTo(grad, x.Shape(), backend)
	return []*tensor.RawTensor{backend.MulScalar(gradX, 1/float64(op.dimSize))}
}
