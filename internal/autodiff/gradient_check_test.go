package autodiff_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/tensorbook/internal/autodiff"
	"github.com/born-ml/tensorbook/internal/backend/cpu"
	"github.com/born-ml/tensorbook/internal/tensor"
)

type ad = autodiff.AutodiffBackend[*cpu.CPUBackend]

// checkGradient compares the analytic gradient of f at x against central
// finite differences. f must map an input tensor to a scalar.
func checkGradient(t *testing.T, values []float64, shape tensor.Shape, f func(x *tensor.Tensor[float64, *ad]) *tensor.Tensor[float64, *ad]) {
	t.Helper()
	const eps = 1e-6

	backend := autodiff.New(cpu.New())
	backend.Tape().StartRecording()
	x, err := tensor.FromSlice(values, shape, backend)
	require.NoError(t, err)
	grads, err := autodiff.Backward(f(x), backend)
	require.NoError(t, err)
	analytic := grads[x.Raw()]
	require.NotNil(t, analytic)
	require.Equal(t, shape, analytic.Shape())

	eval := autodiff.New(cpu.New())
	for i := range values {
		shifted := func(delta float64) float64 {
			v := append([]float64(nil), values...)
			v[i] += delta
			xi, err := tensor.FromSlice(v, shape, eval)
			require.NoError(t, err)
			return f(xi).Item()
		}
		numeric := (shifted(eps) - shifted(-eps)) / (2 * eps)
		assert.InDelta(t, numeric, analytic.AsFloat64()[i], 1e-4, "element %d", i)
	}
}

func TestGradientCheck(t *testing.T) {
	values := []float64{0.5, -1.2, 2.0, 0.7, 1.5, -0.3}
	shape := tensor.Shape{2, 3}
	other, _ := tensor.FromSlice([]float64{1.1, 0.4, -0.8, 2.2, 0.9, 1.3}, shape, cpu.New())

	tests := []struct {
		name string
		f    func(x *tensor.Tensor[float64, *ad]) *tensor.Tensor[float64, *ad]
	}{
		{"Polynomial", func(x *tensor.Tensor[float64, *ad]) *tensor.Tensor[float64, *ad] {
			return x.Pow(2).MulScalar(2).Sub(x.MulScalar(3)).AddScalar(1).Sum()
		}},
		{"Cube", func(x *tensor.Tensor[float64, *ad]) *tensor.Tensor[float64, *ad] {
			return x.Pow(3).Sum()
		}},
		{"Div", func(x *tensor.Tensor[float64, *ad]) *tensor.Tensor[float64, *ad] {
			y := tensor.As(other, x.Backend())
			return y.Div(x.AddScalar(3)).Sum()
		}},
		{"MatMulTranspose", func(x *tensor.Tensor[float64, *ad]) *tensor.Tensor[float64, *ad] {
			return x.MatMul(x.T()).Sum()
		}},
		{"MeanDimSquared", func(x *tensor.Tensor[float64, *ad]) *tensor.Tensor[float64, *ad] {
			return x.MeanDim(1, false).Pow(2).Sum()
		}},
		{"SumDimKeepDim", func(x *tensor.Tensor[float64, *ad]) *tensor.Tensor[float64, *ad] {
			s := x.SumDim(0, true)
			return x.Mul(s).Sum()
		}},
		{"MaskedFill", func(x *tensor.Tensor[float64, *ad]) *tensor.Tensor[float64, *ad] {
			return x.MaskedFill(x.GreaterScalar(1), 0).Pow(2).Sum()
		}},
		{"WhereBranches", func(x *tensor.Tensor[float64, *ad]) *tensor.Tensor[float64, *ad] {
			y := tensor.As(other, x.Backend())
			return tensor.Where(x.GreaterScalar(0), x.Mul(y), x.Pow(2)).Sum()
		}},
		{"SelectColumn", func(x *tensor.Tensor[float64, *ad]) *tensor.Tensor[float64, *ad] {
			return x.Select(1, -1).Pow(2).Sum()
		}},
		{"NarrowRows", func(x *tensor.Tensor[float64, *ad]) *tensor.Tensor[float64, *ad] {
			return x.Narrow(0, 1, 1).MulScalar(3).Sum()
		}},
		{"MSE", func(x *tensor.Tensor[float64, *ad]) *tensor.Tensor[float64, *ad] {
			y := tensor.As(other, x.Backend())
			return x.Sub(y).Pow(2).Mean()
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkGradient(t, values, shape, tt.f)
		})
	}
}
