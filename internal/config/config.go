package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Validation errors.
var (
	ErrInvalidDriver  = errors.New("invalid driver")
	ErrInvalidTiming  = errors.New("invalid timing")
	ErrMissingKeymap  = errors.New("no keymap path configured")
	ErrMissingDevice  = errors.New("evdev driver needs an event device")
	ErrInvalidMapping = errors.New("event code mapping must list 16 codes")
)

// Driver names accepted in [device].
const (
	DriverMemory = "memory"
	DriverSim    = "sim"
	DriverEvdev  = "evdev"
)

// Config is the full runtime configuration.
type Config struct {
	Device DeviceConfig `toml:"device"`
	Keymap KeymapConfig `toml:"keymap"`
	Log    LogConfig    `toml:"log"`
}

// DeviceConfig selects and tunes the pad drivers.
type DeviceConfig struct {
	// Driver is memory, sim, or evdev.
	Driver string `toml:"driver"`

	// EventDevice is the /dev/input path for the evdev driver.
	EventDevice string `toml:"event_device"`

	// EventCodes optionally remaps which 16 event codes feed the pad;
	// empty uses the evdev driver's default QWERTY block.
	EventCodes []uint16 `toml:"event_codes"`

	// Name is the virtual keyboard's device name under evdev.
	Name string `toml:"name"`

	// HoldMS is the hold-edge threshold in milliseconds.
	HoldMS int `toml:"hold_ms"`

	// PollMS is the polling cycle period in milliseconds.
	PollMS int `toml:"poll_ms"`
}

// KeymapConfig points at the keymap definition.
type KeymapConfig struct {
	// Path is the keymap file; .toml and .lua are recognized by
	// extension.
	Path string `toml:"path"`
}

// LogConfig tunes logging.
type LogConfig struct {
	// Level is debug, info, warn, or error.
	Level string `toml:"level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Device: DeviceConfig{
			Driver: DriverSim,
			Name:   "keybow",
			HoldMS: 750,
			PollMS: 10,
		},
		Keymap: KeymapConfig{
			Path: "keymap.toml",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load builds the configuration: defaults, then the TOML file at path
// (a missing file is not an error when path is empty), then KEYBOW_*
// environment variables. The result is validated.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyEnv overlays KEYBOW_* environment variables.
func applyEnv(cfg *Config) {
	if v := os.Getenv("KEYBOW_DRIVER"); v != "" {
		cfg.Device.Driver = v
	}
	if v := os.Getenv("KEYBOW_EVENT_DEVICE"); v != "" {
		cfg.Device.EventDevice = v
	}
	if v := os.Getenv("KEYBOW_KEYMAP"); v != "" {
		cfg.Keymap.Path = v
	}
	if v := os.Getenv("KEYBOW_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("KEYBOW_HOLD_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil {
			cfg.Device.HoldMS = ms
		}
	}
	if v := os.Getenv("KEYBOW_POLL_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil {
			cfg.Device.PollMS = ms
		}
	}
}

// Validate checks the configuration for contradictions.
func (c *Config) Validate() error {
	switch c.Device.Driver {
	case DriverMemory, DriverSim, DriverEvdev:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidDriver, c.Device.Driver)
	}

	if c.Device.Driver == DriverEvdev && c.Device.EventDevice == "" {
		return ErrMissingDevice
	}
	if n := len(c.Device.EventCodes); n != 0 && n != 16 {
		return fmt.Errorf("%w: got %d", ErrInvalidMapping, n)
	}
	if c.Device.HoldMS <= 0 || c.Device.PollMS <= 0 {
		return fmt.Errorf("%w: hold_ms and poll_ms must be positive", ErrInvalidTiming)
	}
	if c.Keymap.Path == "" {
		return ErrMissingKeymap
	}
	return nil
}

// HoldAfter returns the hold threshold as a duration.
func (c *Config) HoldAfter() time.Duration {
	return time.Duration(c.Device.HoldMS) * time.Millisecond
}

// PollEvery returns the polling period as a duration.
func (c *Config) PollEvery() time.Duration {
	return time.Duration(c.Device.PollMS) * time.Millisecond
}
