package nn

import (
	"github.com/gomlx/exceptions"

	"github.com/born-ml/tensorbook/internal/tensor"
)

// MSELoss computes Mean Squared Error loss.
//
// Loss = mean((predictions - targets)²)
//
// The loss is composed of differentiable tensor ops, so on an autodiff
// backend gradients flow back to whatever produced predictions.
//
// Example:
//
//	mse := nn.NewMSELoss(backend)
//	loss := mse.Forward(model.Forward(x), y)
type MSELoss[B tensor.Backend] struct {
	backend B
}

// NewMSELoss creates a new MSE loss function.
func NewMSELoss[B tensor.Backend](backend B) *MSELoss[B] {
	return &MSELoss[B]{backend: backend}
}

// Forward returns the scalar (shape []) mean squared error.
// predictions and targets must have the same shape.
func (m *MSELoss[B]) Forward(predictions, targets *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	if !predictions.Shape().Equal(targets.Shape()) {
		exceptions.Panicf("MSELoss: predictions %v and targets %v must have the same shape",
			predictions.Shape(), targets.Shape())
	}
	return predictions.Sub(targets).Pow(2).Mean()
}

// Parameters returns nil: the loss has no trainable parameters.
func (m *MSELoss[B]) Parameters() []*Parameter[B] {
	return nil
}
