package nn_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/tensorbook/internal/autodiff"
	"github.com/born-ml/tensorbook/internal/backend/cpu"
	"github.com/born-ml/tensorbook/internal/nn"
	"github.com/born-ml/tensorbook/internal/tensor"
)

func TestParameter(t *testing.T) {
	backend := autodiff.New(cpu.New())
	data, _ := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{3}, backend)
	param := nn.NewParameter("w", data)

	assert.Equal(t, "w", param.Name())
	assert.Same(t, data, param.Tensor())
	assert.True(t, data.RequiresGrad())
	assert.Nil(t, param.Grad())

	grad, _ := tensor.FromSlice([]float32{0.1, 0.2, 0.3}, tensor.Shape{3}, backend)
	param.SetGrad(grad)
	assert.Same(t, grad, param.Grad())
	assert.Same(t, grad, data.Grad())

	param.ZeroGrad()
	assert.Nil(t, param.Grad())
	assert.Nil(t, data.Grad())
}

func TestPolynomial_Forward(t *testing.T) {
	backend := cpu.New()
	model := nn.NewPolynomialFrom(2, -3, 1, backend)

	x, _ := tensor.FromSlice([]float32{-1, 0, 1, 2}, tensor.Shape{4}, backend)
	y := model.Forward(x)
	assert.Equal(t, tensor.Shape{4}, y.Shape())
	assert.Equal(t, []float32{6, 1, 0, 3}, y.Data())

	grid, _ := tensor.FromSlice([]float32{0, 1, 2, 3}, tensor.Shape{2, 2}, backend)
	assert.Equal(t, tensor.Shape{2, 2}, model.Forward(grid).Shape())

	scalar := model.Forward(tensor.Scalar[float32](2, backend))
	assert.Empty(t, scalar.Shape(), "a 0-D input stays 0-D")
	assert.Equal(t, float32(3), scalar.Item())
}

func TestPolynomial_Parameters(t *testing.T) {
	backend := cpu.New()
	model := nn.NewPolynomial(backend, rand.New(rand.NewSource(3)))

	params := model.Parameters()
	require.Len(t, params, 3)
	for i, name := range []string{"a", "b", "c"} {
		assert.Equal(t, name, params[i].Name())
		assert.Empty(t, params[i].Tensor().Shape())
	}
	assert.Equal(t, 3, nn.NumParameters[*cpu.CPUBackend](model))

	again := nn.NewPolynomial(backend, rand.New(rand.NewSource(3)))
	a1, b1, c1 := model.Coefficients()
	a2, b2, c2 := again.Coefficients()
	assert.Equal(t, []float32{a1, b1, c1}, []float32{a2, b2, c2}, "same seed, same initialisation")
}

func TestPolynomial_String(t *testing.T) {
	model := nn.NewPolynomialFrom(2, -3, 1, cpu.New())
	assert.Equal(t, "y = 2.0000 x^2 + -3.0000 x + 1.0000", model.String())
}

func TestPolynomial_Gradients(t *testing.T) {
	backend := autodiff.New(cpu.New())
	backend.Tape().StartRecording()

	model := nn.NewPolynomialFrom(1, 1, 1, backend)
	x, _ := tensor.FromSlice([]float32{1, 2}, tensor.Shape{2}, backend)
	target, _ := tensor.FromSlice([]float32{0, 0}, tensor.Shape{2}, backend)

	// predictions = [3, 7]; loss = (9 + 49) / 2
	loss := nn.NewMSELoss(backend).Forward(model.Forward(x), target)
	assert.InDelta(t, 29.0, float64(loss.Item()), 1e-5)

	grads, err := autodiff.Backward(loss, backend)
	require.NoError(t, err)
	for _, p := range model.Parameters() {
		require.True(t, p.CollectGrad(grads), p.Name())
		assert.Empty(t, p.Grad().Shape(), p.Name())
	}

	// dL/dp = mean(2 * residual * dpred/dp); residual = [3, 7]
	a, b, c := model.Parameters()[0], model.Parameters()[1], model.Parameters()[2]
	assert.InDelta(t, float64(3*1+7*4), float64(a.Grad().Item()), 1e-4)
	assert.InDelta(t, float64(3*1+7*2), float64(b.Grad().Item()), 1e-4)
	assert.InDelta(t, float64(3+7), float64(c.Grad().Item()), 1e-4)

	nn.ZeroGrad[*autodiff.AutodiffBackend[*cpu.CPUBackend]](model)
	assert.Nil(t, a.Grad())
}

func TestMSELoss(t *testing.T) {
	backend := cpu.New()
	pred, _ := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{3}, backend)
	target, _ := tensor.FromSlice([]float32{1, 4, 0}, tensor.Shape{3}, backend)

	loss := nn.NewMSELoss(backend).Forward(pred, target)
	assert.Empty(t, loss.Shape())
	assert.InDelta(t, 13.0/3, float64(loss.Item()), 1e-5)

	short, _ := tensor.FromSlice([]float32{1, 2}, tensor.Shape{2}, backend)
	assert.Panics(t, func() { nn.NewMSELoss(backend).Forward(pred, short) })
	assert.Nil(t, nn.NewMSELoss(backend).Parameters())
}

func TestNormal(t *testing.T) {
	backend := cpu.New()
	x := nn.Normal(tensor.Shape{2000}, 5, 0.5, rand.New(rand.NewSource(1)), backend)
	assert.InDelta(t, 5.0, float64(x.Mean().Item()), 0.05)
}
