package notebook

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/gomlx/exceptions"
	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cpuConfig() Config {
	cfg := DefaultConfig()
	cfg.Device = "cpu"
	return cfg
}

func newSession(t *testing.T, cfg Config) (*Session, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	s := must.M1(NewSession(cfg, &out))
	t.Cleanup(s.Close)
	return s, &out
}

func TestDefaultConfig(t *testing.T) {
	t.Setenv(DeviceEnv, "")
	cfg := DefaultConfig()
	assert.Equal(t, "auto", cfg.Device)
	require.NoError(t, cfg.Validate())

	t.Setenv(DeviceEnv, "cpu")
	assert.Equal(t, "cpu", DefaultConfig().Device)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		errMsg string
	}{
		{"ZeroEpochs", func(c *Config) { c.Epochs = 0 }, "epochs"},
		{"OneSample", func(c *Config) { c.Samples = 1 }, "samples"},
		{"NegativeLR", func(c *Config) { c.LearningRate = -0.1 }, "learning rate"},
		{"ZeroLR", func(c *Config) { c.LearningRate = 0 }, "learning rate must be positive"},
		{"MomentumOne", func(c *Config) { c.Momentum = 1 }, "momentum"},
		{"UnknownDevice", func(c *Config) { c.Device = "tpu" }, "tpu"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := cpuConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}

	cfg := cpuConfig()
	cfg.Device = " CPU "
	require.NoError(t, cfg.Validate())

	cfg.Device = ""
	require.NoError(t, cfg.Validate(), "an empty device selects auto")
}

func TestNewSession_InvalidConfig(t *testing.T) {
	cfg := cpuConfig()
	cfg.Epochs = -1
	_, err := NewSession(cfg, &bytes.Buffer{})
	require.Error(t, err)
}

func TestCells(t *testing.T) {
	names := Names()
	assert.Equal(t, []string{
		"tensors", "reductions", "reshape", "matmul", "autograd",
		"module", "training", "interop", "device", "exercises",
	}, names)

	cells := must.M1(Lookup("matmul", "tensors"))
	require.Len(t, cells, 2)
	assert.Equal(t, "matmul", cells[0].Name)
	assert.Equal(t, "tensors", cells[1].Name)

	_, err := Lookup("nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope")
}

func TestRun_AllCells(t *testing.T) {
	s, out := newSession(t, cpuConfig())
	require.NoError(t, Run(context.Background(), s))

	text := out.String()
	for _, c := range Cells() {
		assert.Contains(t, text, c.Title)
	}
	assert.Contains(t, text, "A @ I == A: true")
	assert.Contains(t, text, "moving again is a no-op: true")
	assert.Contains(t, text, "after dense.Set(0, 0, 99)")
	assert.Contains(t, text, "argmax of row sums")
	assert.Contains(t, text, "y = 2.0000 x^2 + -3.0000 x + 1.0000")
}

func TestRun_Subset(t *testing.T) {
	s, out := newSession(t, cpuConfig())
	require.NoError(t, Run(context.Background(), s, "reshape"))

	text := out.String()
	assert.Contains(t, text, "Reshaping")
	assert.NotContains(t, text, "Creating tensors")
	assert.Contains(t, text, "[12]")
}

func TestRun_UnknownCell(t *testing.T) {
	s, out := newSession(t, cpuConfig())
	err := Run(context.Background(), s, "tensors", "bogus")
	require.Error(t, err)
	assert.Empty(t, out.String(), "nothing runs when a name is unknown")
}

func TestRun_CancelledContext(t *testing.T) {
	s, out := newSession(t, cpuConfig())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Run(ctx, s)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

func TestRunCell_PanicBecomesError(t *testing.T) {
	s, _ := newSession(t, cpuConfig())
	cell := Cell{Name: "boom", Title: "Boom", Run: func(*Session) error {
		exceptions.Panicf("shape mismatch %v vs %v", []int{2}, []int{3})
		return nil
	}}
	err := runCell(cell, s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "shape mismatch")
}

func TestAutogradCell(t *testing.T) {
	s, out := newSession(t, cpuConfig())
	require.NoError(t, autogradCell(s))
	assert.Contains(t, out.String(), "x.grad")
	assert.Zero(t, s.Grad.Tape().NumOps(), "the tape is cleared after the cell")
	assert.False(t, s.Grad.Tape().IsRecording())
}

func TestTrain_Converges(t *testing.T) {
	s, _ := newSession(t, cpuConfig())
	model, loss, err := train(s)
	require.NoError(t, err)
	assert.Less(t, loss, float32(1e-3))

	a, b, c := model.Coefficients()
	assert.InDelta(t, 2, float64(a), 0.05)
	assert.InDelta(t, -3, float64(b), 0.05)
	assert.InDelta(t, 1, float64(c), 0.05)
}

func TestTrain_Diverges(t *testing.T) {
	cfg := cpuConfig()
	cfg.LearningRate = 50
	cfg.Momentum = 0
	s, _ := newSession(t, cfg)
	_, _, err := train(s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "diverged")
}

func TestRenderExercises(t *testing.T) {
	s, _ := newSession(t, cpuConfig())
	var out bytes.Buffer
	RenderExercises(&out, 7, s.Backend)

	text := out.String()
	assert.Contains(t, text, "exercise")
	for _, want := range []string{"argmax of last column", "main diagonal", "sum(M * M^T)"} {
		assert.Contains(t, text, want)
	}
	assert.GreaterOrEqual(t, strings.Count(text, "\n"), 10)
}
