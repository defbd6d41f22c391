package ops

import "github.com/born-ml/tensorbook/internal/tensor"

// ReshapeOp records a reshape so the gradient can be reshaped back to the
// input's layout.
type ReshapeOp struct {
	node
	origShape tensor.Shape
}

// NewReshapeOp creates a new ReshapeOp.
func NewReshapeOp(input, output *tensor.RawTensor) *ReshapeOp {
	return &ReshapeOp{node: newNode(output, input), origShape: input.Shape().Clone()}
}

// Backward reshapes the output gradient to the input shape.
func (op *ReshapeOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{backend.Reshape(outputGrad, op.origShape)}
}
