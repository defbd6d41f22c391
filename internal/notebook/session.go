package notebook

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/pkg/errors"

	"github.com/born-ml/tensorbook/internal/autodiff"
	"github.com/born-ml/tensorbook/internal/device"
	"github.com/born-ml/tensorbook/internal/tensor"
)

// Session is the state shared by the cells of one run.
type Session struct {
	Config Config

	// Backend runs plain tensor code; Grad wraps it with a gradient tape.
	Backend tensor.Backend
	Grad    *autodiff.AutodiffBackend[tensor.Backend]

	Rand *rand.Rand
	Out  io.Writer
}

// NewSession validates cfg, selects its device and seeds the random source.
// Call Close when done.
func NewSession(cfg Config, out io.Writer) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "notebook: invalid config")
	}
	backend, err := device.Select(cfg.Device)
	if err != nil {
		return nil, errors.Wrap(err, "notebook")
	}
	return &Session{
		Config:  cfg,
		Backend: backend,
		Grad:    autodiff.New(backend),
		Rand:    rand.New(rand.NewSource(cfg.Seed)), //nolint:gosec // reproducible notebook output
		Out:     out,
	}, nil
}

// Close releases device resources.
func (s *Session) Close() {
	device.Release(s.Backend)
}

func (s *Session) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.Out, format, args...)
}

// formatted is any tensor, whatever its dtype and backend.
type formatted interface {
	Format() string
}

// show prints a labeled tensor, indenting continuation lines under the label.
func (s *Session) show(label string, t formatted) {
	s.printf("%s =\n%s\n", label, indent(t.Format(), "  "))
}
