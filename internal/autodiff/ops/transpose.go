package ops

import "github.com/born-ml/tensorbook/internal/tensor"

// TransposeOp records a permutation of axes. Its gradient is the output
// gradient permuted by the inverse axes.
type TransposeOp struct {
	node
	axes []int
}

// NewTransposeOp creates a new TransposeOp. axes must be the full,
// non-negative permutation used in the forward pass.
func NewTransposeOp(input, output *tensor.RawTensor, axes []int) *TransposeOp {
	return &TransposeOp{node: newNode(output, input), axes: axes}
}

// Backward transposes the output gradient with the inverse permutation.
func (op *TransposeOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	inverse := make([]int, len(op.axes))
	for i, ax := range op.axes {
		inverse[ax] = i
	}
	return []*tensor.RawTensor{backend.Transpose(outputGrad, inverse...)}
}
