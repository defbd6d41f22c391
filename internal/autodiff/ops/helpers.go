package ops

import "github.com/born-ml/tensorbook/internal/tensor"

// reduceBroadcast sums grad back down to targetShape, undoing NumPy-style
// broadcasting from the forward pass.
//
// Example:
//
//	Forward: a[3,1] + b[3,4] -> c[3,4]  (a was broadcast along dim 1)
//	Backward: grad_c[3,4] -> grad_a[3,1] (sum along dim 1)
func reduceBroadcast(grad *tensor.RawTensor, targetShape tensor.Shape, backend tensor.Backend) *tensor.RawTensor {
	if grad.Shape().Equal(targetShape) {
		// Gradients may be accumulated in place later; never hand out an alias.
		return grad.Clone()
	}
	if len(targetShape) == 0 {
		return backend.Sum(grad)
	}

	result := grad
	for len(result.Shape()) > len(targetShape) {
		result = backend.SumDim(result, 0, false)
	}
	for i, dim := range targetShape {
		if dim == 1 && result.Shape()[i] != 1 {
			result = backend.SumDim(result, i, true)
		}
	}
	if !result.Shape().Equal(targetShape) {
		result = backend.Reshape(result, targetShape)
	}
	return result
}

// unsqueeze reinserts the reduced dimension dim as size 1, giving grad the
// rank of fullShape.
func unsqueeze(grad *tensor.RawTensor, dim int, fullShape tensor.Shape, backend tensor.Backend) *tensor.RawTensor {
	shape := fullShape.Clone()
	shape[dim] = 1
	return backend.Reshape(grad, shape)
}

// broadcastTo expands grad to targetShape by adding it to zeros.
func broadcastTo(grad *tensor.RawTensor, targetShape tensor.Shape, backend tensor.Backend) *tensor.RawTensor {
	if grad.Shape().Equal(targetShape) {
		return grad.Clone()
	}
	zeros := tensor.MustNewRaw(targetShape, grad.DType(), backend.Device())
	return backend.Add(zeros, grad)
}
