package notebook

import (
	"fmt"
	"math"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"gonum.org/v1/gonum/mat"
	"k8s.io/klog/v2"

	"github.com/born-ml/tensorbook/internal/autodiff"
	"github.com/born-ml/tensorbook/internal/backend/cpu"
	"github.com/born-ml/tensorbook/internal/device"
	"github.com/born-ml/tensorbook/internal/exercises"
	"github.com/born-ml/tensorbook/internal/interop"
	"github.com/born-ml/tensorbook/internal/nn"
	"github.com/born-ml/tensorbook/internal/optim"
	"github.com/born-ml/tensorbook/internal/tensor"
)

type (
	gradBackend = *autodiff.AutodiffBackend[tensor.Backend]
	polynomial  = nn.Polynomial[gradBackend]
)

func tensorsCell(s *Session) error {
	b := s.Backend
	s.show("zeros(2, 3)", tensor.Zeros[float32](tensor.Shape{2, 3}, b))
	s.show("ones(2, 3)", tensor.Ones[float32](tensor.Shape{2, 3}, b))
	s.show("full((2, 2), 7)", tensor.Full[float32](tensor.Shape{2, 2}, 7, b))
	s.show("arange(0, 5)", tensor.Arange[int64](0, 5, b))
	s.show("rand(2, 3)", tensor.RandSeeded[float32](tensor.Shape{2, 3}, s.Rand, b))
	s.show("eye(3)", tensor.Eye[float32](3, b))

	x, err := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, b)
	if err != nil {
		return errors.Wrap(err, "from slice")
	}
	s.show("x", x)
	s.printf("x.shape = %v, x.dtype = %s, x.device = %s\n", x.Shape(), x.DType(), x.Device())
	s.printf("x[1, 2] = %g\n", x.At(1, 2))
	return nil
}

func reductionsCell(s *Session) error {
	x, err := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, s.Backend)
	if err != nil {
		return err
	}
	s.show("x", x)
	s.show("x.sum()", x.Sum())
	s.show("x.mean()", x.Mean())
	s.show("x.sum(dim=0)", x.SumDim(0, false))
	s.show("x.sum(dim=1, keepdim=True)", x.SumDim(1, true))
	s.show("x.mean(dim=1)", x.MeanDim(1, false))
	s.show("x.max(dim=0)", x.MaxDim(0, false))
	s.show("x.argmax(dim=1)", x.Argmax(1))
	return nil
}

func reshapeCell(s *Session) error {
	x := tensor.Arange[float32](0, 12, s.Backend)
	s.show("x", x)
	m := x.Reshape(3, 4)
	s.show("x.view(3, 4)", m)
	s.show("x.view(-1, 6)", x.Reshape(-1, 6))
	s.show("x.view(3, 4).T", m.T())
	s.show("x.view(2, 2, 3).transpose(2, 0, 1)", x.Reshape(2, 2, 3).Transpose(2, 0, 1))
	s.printf("x.view(3, 4).flatten().shape = %v\n", m.Flatten().Shape())
	return nil
}

func matmulCell(s *Session) error {
	b := s.Backend
	a := tensor.RandSeeded[float32](tensor.Shape{3, 4}, s.Rand, b)
	w := tensor.RandSeeded[float32](tensor.Shape{4, 2}, s.Rand, b)
	s.show("A", a)
	s.show("B", w)
	s.show("A @ B", a.MatMul(w))

	identity := tensor.Eye[float32](4, b)
	diff := a.MatMul(identity).Sub(a).Pow(2).Sum().Item()
	s.printf("A @ I == A: %t\n", diff < 1e-10)
	if diff >= 1e-10 {
		return errors.Errorf("A @ I differs from A by %g", diff)
	}
	return nil
}

func autogradCell(s *Session) error {
	g := s.Grad
	tape := g.Tape()
	tape.Clear()
	tape.StartRecording()
	defer func() {
		tape.StopRecording()
		tape.Clear()
	}()

	x, err := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{4}, g)
	if err != nil {
		return err
	}
	x.RequireGrad()
	y := x.Mul(x).Add(x.MulScalar(3)).Sum()
	s.show("x", x)
	s.show("y = sum(x*x + 3x)", y)

	if err := autodiff.BackwardInto(y, g, x); err != nil {
		return errors.Wrap(err, "backward")
	}
	s.printf("recorded %d ops\n", tape.NumOps())
	s.show("x.grad", x.Grad())
	want := x.MulScalar(2).AddScalar(3)
	s.show("2x + 3", want)
	for i, v := range x.Grad().Data() {
		if math.Abs(float64(v-want.Data()[i])) > 1e-5 {
			return errors.Errorf("x.grad[%d] = %g, want %g", i, v, want.Data()[i])
		}
	}
	return nil
}

func moduleCell(s *Session) error {
	model := nn.NewPolynomialFrom(2, -3, 1, s.Backend)
	s.printf("model: %s\n", model)
	for _, p := range model.Parameters() {
		s.printf("  parameter %s: shape %v value %.4f\n", p.Name(), p.Tensor().Shape(), p.Tensor().Item())
	}
	s.printf("  %d parameters\n", nn.NumParameters[tensor.Backend](model))

	x := tensor.Linspace[float32](-1, 1, 5, s.Backend)
	s.show("x", x)
	s.show("model(x)", model.Forward(x))
	return nil
}

// target is the curve the training cell recovers.
func target[B tensor.Backend](x *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	return x.Pow(2).MulScalar(2).Sub(x.MulScalar(3)).AddScalar(1)
}

// train fits a fresh polynomial to target with SGD and reports the final loss.
func train(s *Session) (*polynomial, float32, error) {
	cfg := s.Config
	g := s.Grad
	x := tensor.Linspace[float32](-1, 1, cfg.Samples, g)
	y := target(x)

	model := nn.NewPolynomial(g, s.Rand)
	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: cfg.LearningRate, Momentum: cfg.Momentum}, g)
	mse := nn.NewMSELoss(g)

	bar := progressbar.NewOptions(cfg.Epochs,
		progressbar.OptionSetDescription("training"),
		progressbar.OptionSetWriter(s.Out),
		progressbar.OptionSetWidth(30),
		progressbar.OptionShowCount(),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)

	tape := g.Tape()
	tape.StartRecording()
	defer func() {
		tape.StopRecording()
		tape.Clear()
	}()

	var last float32
	for epoch := range cfg.Epochs {
		tape.Clear()
		loss := mse.Forward(model.Forward(x), y)
		grads, err := autodiff.Backward(loss, g)
		if err != nil {
			return nil, 0, errors.Wrapf(err, "epoch %d", epoch)
		}
		optimizer.Step(grads)
		optimizer.ZeroGrad()
		last = loss.Item()
		if math.IsNaN(float64(last)) || math.IsInf(float64(last), 0) {
			return nil, 0, errors.Errorf("training diverged at epoch %d (lr=%g)", epoch, cfg.LearningRate)
		}
		if epoch%100 == 0 {
			klog.V(2).Infof("notebook: epoch %d loss %g", epoch, last)
		}
		_ = bar.Add(1)
	}
	_ = bar.Finish()
	klog.V(1).Infof("notebook: trained %d epochs on %s, final loss %g", cfg.Epochs, g.Name(), last)
	return model, last, nil
}

func trainingCell(s *Session) error {
	model, loss, err := train(s)
	if err != nil {
		return err
	}
	s.printf("fit %d samples for %d epochs (lr=%g, momentum=%g)\n",
		s.Config.Samples, s.Config.Epochs, s.Config.LearningRate, s.Config.Momentum)
	s.printf("final loss: %.6f\n", loss)
	s.printf("learned:    %s\n", model)
	s.printf("target:     y = 2.0000 x^2 + -3.0000 x + 1.0000\n")
	return nil
}

func interopCell(s *Session) error {
	x := tensor.RandSeeded[float64](tensor.Shape{2, 3}, s.Rand, s.Backend)
	s.show("x", x)

	dense, err := interop.ToDense(x)
	if err != nil {
		return err
	}
	s.printf("as mat.Dense =\n%v\n", indent(fmtDense(dense), "  "))

	dense.Set(0, 0, 99)
	s.printf("after dense.Set(0, 0, 99): x[0, 0] = %.4f\n", x.At(0, 0))

	back, err := interop.FromDense[float64](dense.T(), s.Backend)
	if err != nil {
		return err
	}
	s.show("from dense.T()", back)

	h, err := tensor.FromSlice([]float32{0.1, 1.0 / 3, 70000, 1e-8}, tensor.Shape{4}, s.Backend)
	if err != nil {
		return err
	}
	s.show("h", h)
	s.show("h.half()", interop.Half(h))
	return nil
}

func fmtDense(m *mat.Dense) string {
	return fmt.Sprintf("%.4f", mat.Formatted(m, mat.Squeeze()))
}

func deviceCell(s *Session) error {
	host := cpu.New()
	x := tensor.Arange[float32](0, 6, host).Reshape(2, 3)
	s.printf("x lives on %s, %s\n", x.Device(), humanize.Bytes(uint64(x.Raw().ByteSize()))) //nolint:gosec // sizes are non-negative

	moved := tensor.To(x, s.Backend)
	again := tensor.To(moved, s.Backend)
	s.printf("x.to(%s) is on %s (%s)\n", s.Config.Device, moved.Device(), device.Describe(s.Backend))
	s.printf("moving again is a no-op: %t\n", moved.Raw() == again.Raw())

	back := tensor.To(moved, host)
	s.show("back on CPU", back)
	if back.Device() != tensor.CPU {
		return errors.Errorf("tensor moved back to %s, want CPU", back.Device())
	}
	return nil
}

func exercisesCell(s *Session) error {
	m := exercises.Matrix(s.Config.Seed, s.Backend)
	s.printf("M = rand(%d, %d) with seed %d, %s\n", exercises.Size, exercises.Size, s.Config.Seed,
		humanize.Bytes(uint64(m.Raw().ByteSize()))) //nolint:gosec // sizes are non-negative
	s.show("M", m)
	RenderExercises(s.Out, s.Config.Seed, s.Backend)
	return nil
}
