// Package ops holds the differentiable operations recorded by the autodiff tape.
//
// Each operation keeps its forward inputs and output and knows how to turn the
// gradient of its output into gradients for its inputs:
//   - AddOp, SubOp: gradient passes through (negated for the subtrahend)
//   - MulOp, DivOp: product and quotient rules
//   - MatMulOp: d(A@B)/dA = grad@Bᵀ, d(A@B)/dB = Aᵀ@grad
//   - AddScalarOp, MulScalarOp, PowOp: scalar maps
//   - ReshapeOp, TransposeOp: undo the layout change
//   - NarrowOp: zero-pad the gradient back into the input
//   - WhereOp: route the gradient to the selected branch
//   - SumOp, SumDimOp, MeanDimOp: broadcast the gradient back over the reduced axes
package ops

import "github.com/born-ml/tensorbook/internal/tensor"

// Operation is a node in the recorded computation graph.
type Operation interface {
	// Backward returns one gradient per input, in the order of Inputs.
	// A nil entry means no gradient flows to that input.
	Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor

	// Inputs returns the tensors the operation consumed.
	Inputs() []*tensor.RawTensor

	// Output returns the tensor the operation produced.
	Output() *tensor.RawTensor
}

// node carries the bookkeeping shared by every operation.
type node struct {
	inputs []*tensor.RawTensor
	output *tensor.RawTensor
}

func newNode(output *tensor.RawTensor, inputs ...*tensor.RawTensor) node {
	return node{inputs: inputs, output: output}
}

// Inputs returns the operation's inputs.
func (n node) Inputs() []*tensor.RawTensor {
	return n.inputs
}

// Output returns the operation's output.
func (n node) Output() *tensor.RawTensor {
	return n.output
}
