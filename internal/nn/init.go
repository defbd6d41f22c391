package nn

import (
	"math/rand"

	"github.com/born-ml/tensorbook/internal/tensor"
)

// Normal creates a float32 tensor with values drawn from N(mean, std²) using rng.
// A nil rng draws from the global source.
func Normal[B tensor.Backend](shape tensor.Shape, mean, std float32, rng *rand.Rand, backend B) *tensor.Tensor[float32, B] {
	var t *tensor.Tensor[float32, B]
	if rng == nil {
		t = tensor.Randn[float32](shape, backend)
	} else {
		t = tensor.RandnSeeded[float32](shape, rng, backend)
	}
	if std == 1 && mean == 0 {
		return t
	}
	data := t.Data()
	for i := range data {
		data[i] = data[i]*std + mean
	}
	return t
}

// Constant creates a float32 tensor of the given shape filled with value.
func Constant[B tensor.Backend](shape tensor.Shape, value float32, backend B) *tensor.Tensor[float32, B] {
	return tensor.Full[float32](shape, value, backend)
}
