package autodiff

import (
	"github.com/pkg/errors"

	"github.com/born-ml/tensorbook/internal/tensor"
)

// BackwardCapable is a backend that owns a gradient tape.
// AutodiffBackend implements this interface.
type BackwardCapable interface {
	tensor.Backend
	GetTape() *GradientTape
}

// GetTape returns the gradient tape (implements BackwardCapable).
func (b *AutodiffBackend[B]) GetTape() *GradientTape {
	return b.tape
}

// Backward computes d(sum(t))/dx for every tensor x recorded on the backend's
// tape. The seed gradient is ones shaped like t, so for a scalar loss this is
// the plain gradient.
//
// Returns a map from RawTensor to its gradient. It fails when nothing was
// recorded or when t is not a float tensor.
//
// Example:
//
//	backend := autodiff.New(cpu.New())
//	backend.Tape().StartRecording()
//	x := tensor.Ones[float32](tensor.Shape{2}, backend)
//	y := x.Mul(x).Sum()
//	grads, err := autodiff.Backward(y, backend)
//	dx := grads[x.Raw()] // 2x
func Backward[T tensor.DType, B BackwardCapable](t *tensor.Tensor[T, B], backend B) (map[*tensor.RawTensor]*tensor.RawTensor, error) {
	tape := backend.GetTape()
	if tape.NumOps() == 0 {
		return nil, errors.New("backward: no operations recorded (did you forget to call Tape().StartRecording()?)")
	}
	if !t.DType().IsFloat() {
		return nil, errors.Errorf("backward: unsupported dtype %s (only float32/float64 supported)", t.DType())
	}

	seed, err := tensor.NewRaw(t.Shape(), t.DType(), backend.Device())
	if err != nil {
		return nil, errors.Wrap(err, "backward: failed to create output gradient")
	}
	for i := 0; i < seed.NumElements(); i++ {
		seed.SetFloat64At(i, 1)
	}
	return tape.BackwardFrom(t.Raw(), seed, backend), nil
}

// BackwardInto runs Backward from t and stores the resulting gradient on each
// of the given tensors with SetGrad. A tensor that t does not depend on gets
// a zero gradient.
//
// Example:
//
//	y := x.Mul(x).Sum()
//	if err := autodiff.BackwardInto(y, backend, x); err != nil { ... }
//	fmt.Println(x.Grad().Format())
func BackwardInto[T tensor.DType, B BackwardCapable](t *tensor.Tensor[T, B], backend B, tensors ...*tensor.Tensor[T, B]) error {
	grads, err := Backward(t, backend)
	if err != nil {
		return err
	}
	for _, x := range tensors {
		grad, ok := grads[x.Raw()]
		if !ok {
			x.SetGrad(tensor.Zeros[T, B](x.Shape(), backend))
			continue
		}
		x.SetGrad(tensor.New[T, B](grad, backend))
	}
	return nil
}
