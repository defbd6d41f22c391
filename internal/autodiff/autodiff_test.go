package autodiff_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/tensorbook/internal/autodiff"
	"github.com/born-ml/tensorbook/internal/backend/cpu"
	"github.com/born-ml/tensorbook/internal/tensor"
)

func newRecording(t *testing.T) *autodiff.AutodiffBackend[*cpu.CPUBackend] {
	t.Helper()
	backend := autodiff.New(cpu.New())
	backend.Tape().StartRecording()
	return backend
}

func TestAutodiffBackend_Identity(t *testing.T) {
	backend := autodiff.New(cpu.New())
	assert.Equal(t, "Autodiff(CPU)", backend.Name())
	assert.Equal(t, tensor.CPU, backend.Device())
	assert.Equal(t, "CPU", backend.Inner().Name())
}

func TestTape_Recording(t *testing.T) {
	backend := autodiff.New(cpu.New())
	tape := backend.Tape()
	assert.False(t, tape.IsRecording())

	a := tensor.Ones[float32](tensor.Shape{2}, backend)
	a.Add(a)
	assert.Equal(t, 0, tape.NumOps(), "nothing is recorded before StartRecording")

	tape.StartRecording()
	a.Add(a).MulScalar(2)
	assert.Equal(t, 2, tape.NumOps())

	a.GreaterScalar(0)
	a.Argmax(0)
	assert.Equal(t, 2, tape.NumOps(), "non-differentiable ops are not recorded")

	tape.Clear()
	assert.Equal(t, 0, tape.NumOps())
	assert.True(t, tape.IsRecording())

	tape.StopRecording()
	assert.False(t, tape.IsRecording())
}

func TestBackward_EmptyTape(t *testing.T) {
	backend := newRecording(t)
	x := tensor.Ones[float32](tensor.Shape{2}, backend)
	_, err := autodiff.Backward(x, backend)
	require.Error(t, err)
}

func TestBackward_NonFloat(t *testing.T) {
	backend := newRecording(t)
	x := tensor.Ones[int64](tensor.Shape{2}, backend)
	y := x.Add(x)
	_, err := autodiff.Backward(y, backend)
	require.Error(t, err)
}

// y = sum(x*x + 3x) has dy/dx = 2x + 3.
func TestBackwardInto_SquarePlusLinear(t *testing.T) {
	backend := newRecording(t)
	x, err := tensor.FromSlice([]float32{-1, 0, 2, 5}, tensor.Shape{4}, backend)
	require.NoError(t, err)
	x.RequireGrad()

	y := x.Mul(x).Add(x.MulScalar(3)).Sum()
	require.NoError(t, autodiff.BackwardInto(y, backend, x))

	require.NotNil(t, x.Grad())
	assert.Equal(t, []float32{1, 3, 7, 13}, x.Grad().Data())
}

func TestBackwardInto_UnusedTensorGetsZeros(t *testing.T) {
	backend := newRecording(t)
	x := tensor.Ones[float32](tensor.Shape{2}, backend)
	unused := tensor.Ones[float32](tensor.Shape{3}, backend)

	y := x.Mul(x).Sum()
	require.NoError(t, autodiff.BackwardInto(y, backend, x, unused))
	assert.Equal(t, []float32{0, 0, 0}, unused.Grad().Data())
}

func TestBackward_SeedsOnGivenTensor(t *testing.T) {
	backend := newRecording(t)
	x, _ := tensor.FromSlice([]float32{2}, tensor.Shape{1}, backend)

	y := x.Mul(x)
	// A later, unrelated op must not receive the seed.
	_ = x.MulScalar(100)

	grads, err := autodiff.Backward(y, backend)
	require.NoError(t, err)
	assert.Equal(t, []float32{4}, grads[x.Raw()].AsFloat32())
}

func TestBackward_Broadcast(t *testing.T) {
	backend := newRecording(t)
	a, _ := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{3, 1}, backend)
	b, _ := tensor.FromSlice([]float32{10, 20, 30, 40}, tensor.Shape{4}, backend)

	y := a.Mul(b).Sum()
	grads, err := autodiff.Backward(y, backend)
	require.NoError(t, err)

	gradA := grads[a.Raw()]
	require.Equal(t, tensor.Shape{3, 1}, gradA.Shape())
	assert.Equal(t, []float32{100, 100, 100}, gradA.AsFloat32())

	gradB := grads[b.Raw()]
	require.Equal(t, tensor.Shape{4}, gradB.Shape())
	assert.Equal(t, []float32{6, 6, 6, 6}, gradB.AsFloat32())
}

func TestBackward_ScalarParameterBroadcast(t *testing.T) {
	backend := newRecording(t)
	c, _ := tensor.FromSlice([]float32{0.5}, tensor.Shape{1}, backend)
	x := tensor.Arange[float32](0, 5, backend)

	y := x.Add(c).Mean()
	grads, err := autodiff.Backward(y, backend)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float32{1}, grads[c.Raw()].AsFloat32(), 1e-6)
}

func TestBackward_MatMul(t *testing.T) {
	backend := newRecording(t)
	a, _ := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{2, 2}, backend)
	b, _ := tensor.FromSlice([]float32{5, 6, 7, 8}, tensor.Shape{2, 2}, backend)

	y := a.MatMul(b).Sum()
	grads, err := autodiff.Backward(y, backend)
	require.NoError(t, err)

	// d/dA sum(A@B) = ones @ Bᵀ, d/dB = Aᵀ @ ones.
	assert.Equal(t, []float32{11, 15, 11, 15}, grads[a.Raw()].AsFloat32())
	assert.Equal(t, []float32{4, 4, 6, 6}, grads[b.Raw()].AsFloat32())
}

func TestBackward_ReuseAccumulates(t *testing.T) {
	backend := newRecording(t)
	x, _ := tensor.FromSlice([]float32{3}, tensor.Shape{1}, backend)

	// y = x + x + x
	y := x.Add(x).Add(x).Sum()
	grads, err := autodiff.Backward(y, backend)
	require.NoError(t, err)
	assert.Equal(t, []float32{3}, grads[x.Raw()].AsFloat32())
}

func TestBackward_ReshapeTranspose(t *testing.T) {
	backend := newRecording(t)
	x := tensor.Arange[float32](0, 6, backend)
	w, _ := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{3, 2}, backend)

	// sum(reshape(x, 2x3)ᵀ * w) = sum_ij x[j,i] * w[i,j]
	y := x.Reshape(2, 3).T().Mul(w).Sum()
	grads, err := autodiff.Backward(y, backend)
	require.NoError(t, err)

	gradX := grads[x.Raw()]
	require.Equal(t, tensor.Shape{6}, gradX.Shape())
	assert.Equal(t, []float32{1, 3, 5, 2, 4, 6}, gradX.AsFloat32())
}

func TestBackward_ThroughDetachedForward(t *testing.T) {
	backend := newRecording(t)
	x := tensor.Ones[float32](tensor.Shape{2}, backend)
	backend.Tape().StopRecording()
	frozen := x.MulScalar(5)
	backend.Tape().StartRecording()

	y := frozen.Mul(x).Sum()
	grads, err := autodiff.Backward(y, backend)
	require.NoError(t, err)
	assert.Equal(t, []float32{5, 5}, grads[x.Raw()].AsFloat32())
	_, reached := grads[frozen.Raw()]
	assert.True(t, reached)
}

func TestBackward_MaskedFill(t *testing.T) {
	backend := newRecording(t)
	x, err := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{3}, backend)
	require.NoError(t, err)

	y := x.MaskedFill(x.GreaterScalar(1.5), 0).Sum()
	require.NoError(t, autodiff.BackwardInto(y, backend, x))
	assert.Equal(t, []float32{1, 0, 0}, x.Grad().Data(), "filled positions get no gradient")
}

func TestBackward_WhereScalarBranch(t *testing.T) {
	backend := newRecording(t)
	x, err := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{3}, backend)
	require.NoError(t, err)
	fill := tensor.Scalar[float32](5, backend)

	y := tensor.Where(x.GreaterScalar(1.5), fill, x).Sum()
	grads, err := autodiff.Backward(y, backend)
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 0, 0}, grads[x.Raw()].AsFloat32())
	assert.Empty(t, grads[fill.Raw()].Shape())
	assert.Equal(t, []float32{2}, grads[fill.Raw()].AsFloat32(), "scalar branch sums its selected positions")
}

func TestBackward_Select(t *testing.T) {
	backend := newRecording(t)
	x, err := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{3}, backend)
	require.NoError(t, err)

	y := x.Select(0, 0).Pow(2).Sum()
	require.NoError(t, autodiff.BackwardInto(y, backend, x))
	assert.Equal(t, []float32{2, 0, 0}, x.Grad().Data())
}
