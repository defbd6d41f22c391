package ops

import "github.com/born-ml/tensorbook/internal/tensor"

// WhereOp records output = where(cond, x, y).
//
// Backward:
//
//	grad_x = where(cond, grad, 0)
//	grad_y = where(cond, 0, grad)
//
// Both are reduced back to their input shapes, so a scalar fill value (as in
// MaskedFill) receives the sum of the gradient over the filled positions.
// The condition is boolean and gets no gradient.
type WhereOp struct {
	node
	condition *tensor.RawTensor
}

// NewWhereOp creates a new WhereOp.
func NewWhereOp(condition, x, y, output *tensor.RawTensor) *WhereOp {
	return &WhereOp{node: newNode(output, x, y), condition: condition}
}

// Backward routes the gradient to whichever branch was selected.
func (op *WhereOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	zeros := tensor.MustNewRaw(outputGrad.Shape(), outputGrad.DType(), backend.Device())
	gradX := backend.Where(op.condition, outputGrad, zeros)
	gradY := backend.Where(op.condition, zeros, outputGrad)
	return []*tensor.RawTensor{
		reduceBroadcast(gradX, op.inputs[0].Shape(), backend),
		reduceBroadcast(gradY, op.inputs[1].Shape(), backend),
	}
}
