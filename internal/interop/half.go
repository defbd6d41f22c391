package interop

import (
	"github.com/pkg/errors"
	"github.com/x448/float16"

	"github.com/born-ml/tensorbook/internal/tensor"
)

// ToFloat16 rounds every element of t to IEEE 754 half precision.
// Values outside the half range become ±Inf.
func ToFloat16[T Float, B tensor.Backend](t *tensor.Tensor[T, B]) []float16.Float16 {
	data := t.Data()
	out := make([]float16.Float16, len(data))
	for i, v := range data {
		out[i] = float16.Fromfloat32(float32(v))
	}
	return out
}

// FromFloat16 widens half-precision values into a new tensor of the given shape.
func FromFloat16[T Float, B tensor.Backend](values []float16.Float16, shape tensor.Shape, backend B) (*tensor.Tensor[T, B], error) {
	widened := make([]T, len(values))
	for i, h := range values {
		widened[i] = T(h.Float32())
	}
	t, err := tensor.FromSlice(widened, shape, backend)
	return t, errors.Wrap(err, "FromFloat16")
}

// Half returns a copy of t whose values are rounded through half precision,
// the equivalent of casting to float16 and back.
//
// Example:
//
//	h := interop.Half(tensor.Full[float32](tensor.Shape{2}, 0.1, backend))
//	// h holds 0.099975586, the nearest half-precision value
func Half[T Float, B tensor.Backend](t *tensor.Tensor[T, B]) *tensor.Tensor[T, B] {
	out := t.Clone()
	data := out.Data()
	for i, v := range data {
		data[i] = T(float16.Fromfloat32(float32(v)).Float32())
	}
	return out
}
