package notebook

import (
	"os"
	"slices"
	"strings"

	"github.com/pkg/errors"

	"github.com/born-ml/tensorbook/internal/device"
)

// DeviceEnv overrides the default device when set.
const DeviceEnv = "TENSORBOOK_DEVICE"

// Config holds the knobs of a notebook run.
type Config struct {
	// Seed feeds every random draw of the session.
	Seed int64

	// Device is one of device.Names. Empty means auto.
	Device string

	// Training cell.
	Epochs       int
	LearningRate float32
	Momentum     float32
	Samples      int
}

// DefaultConfig returns the configuration used when no flag is given.
// The device defaults to auto unless DeviceEnv is set.
func DefaultConfig() Config {
	cfg := Config{
		Seed:         42,
		Device:       device.Auto,
		Epochs:       300,
		LearningRate: 0.05,
		Momentum:     0.9,
		Samples:      100,
	}
	if name := strings.TrimSpace(os.Getenv(DeviceEnv)); name != "" {
		cfg.Device = name
	}
	return cfg
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch {
	case c.Epochs <= 0:
		return errors.Errorf("epochs must be positive, got %d", c.Epochs)
	case c.Samples < 2:
		return errors.Errorf("samples must be at least 2, got %d", c.Samples)
	case c.LearningRate <= 0:
		return errors.Errorf("learning rate must be positive, got %g", c.LearningRate)
	case c.Momentum < 0 || c.Momentum >= 1:
		return errors.Errorf("momentum must be in [0, 1), got %g", c.Momentum)
	case c.deviceName() != "" && !slices.Contains(device.Names, c.deviceName()):
		return errors.Errorf("unknown device %q, want one of %s", c.Device, strings.Join(device.Names, ", "))
	}
	return nil
}

func (c Config) deviceName() string {
	return strings.ToLower(strings.TrimSpace(c.Device))
}
