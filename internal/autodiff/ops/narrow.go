package ops

import "github.com/born-ml/tensorbook/internal/tensor"

// NarrowOp records a slice of length entries along dim starting at start.
// Its gradient is the output gradient zero-padded back into the input shape.
type NarrowOp struct {
	node
	dim, start, length int
}

// NewNarrowOp creates a new NarrowOp. dim must already be normalized.
func NewNarrowOp(input, output *tensor.RawTensor, dim, start, length int) *NarrowOp {
	return &NarrowOp{node: newNode(output, input), dim: dim, start: start, length: length}
}

// Backward scatters the output gradient into a zero tensor shaped like the input.
func (op *NarrowOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	shape := op.inputs[0].Shape()
	grad := tensor.MustNewRaw(shape, outputGrad.DType(), backend.Device())

	outer, inner := 1, 1
	for _, d := range shape[:op.dim] {
		outer *= d
	}
	for _, d := range shape[op.dim+1:] {
		inner *= d
	}

	size := outputGrad.DType().Size()
	block := op.length * inner * size
	src, dst := outputGrad.Data(), grad.Data()
	for o := 0; o < outer; o++ {
		at := (o*shape[op.dim] + op.start) * inner * size
		copy(dst[at:at+block], src[o*block:(o+1)*block])
	}
	return []*tensor.RawTensor{grad}
}
