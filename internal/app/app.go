// Package app wires the drivers, keymap, and layer together and runs
// the polling loop.
package app

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/keybowio/keybow/internal/config"
	"github.com/keybowio/keybow/internal/driver"
	"github.com/keybowio/keybow/internal/driver/evdev"
	"github.com/keybowio/keybow/internal/driver/memory"
	"github.com/keybowio/keybow/internal/driver/sim"
	uinputdrv "github.com/keybowio/keybow/internal/driver/uinput"
	"github.com/keybowio/keybow/internal/input/key"
	"github.com/keybowio/keybow/internal/keymap"
	keymaplua "github.com/keybowio/keybow/internal/keymap/lua"
	"github.com/keybowio/keybow/internal/layer"
)

// Options come from the command line and override the config file.
type Options struct {
	ConfigPath string
	KeymapPath string
	Driver     string
	LogLevel   string

	// CheckOnly builds the keymap against the memory driver and exits;
	// used to validate a configuration without hardware.
	CheckOnly bool
}

// App owns the wired device stack and the polling loop.
type App struct {
	cfg config.Config
	log *Logger

	layer      *layer.Layer
	matrix     driver.Matrix
	indicators driver.Indicators
	hidSink    driver.HIDSink

	closers  []io.Closer
	quit     <-chan struct{}
	stop     chan struct{}
	stopOnce sync.Once
	cancel   context.CancelFunc
}

// RequestQuit asks the loop to exit cleanly. Signal handlers use it;
// the simulator has its own quit path.
func (a *App) RequestQuit() {
	a.stopOnce.Do(func() { close(a.stop) })
}

// New loads configuration, builds the keymap, and opens the drivers.
// Every configuration problem surfaces here, before the loop starts.
func New(opts Options) (*App, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if opts.Driver != "" {
		cfg.Device.Driver = opts.Driver
	}
	if opts.KeymapPath != "" {
		cfg.Keymap.Path = opts.KeymapPath
	}
	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}
	if opts.CheckOnly {
		cfg.Device.Driver = config.DriverMemory
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log := NewLogger(ParseLogLevel(cfg.Log.Level), nil).
		WithField("session", uuid.New().String())

	def, err := loadKeymap(cfg.Keymap.Path)
	if err != nil {
		return nil, err
	}

	a := &App{cfg: cfg, log: log, stop: make(chan struct{})}
	if err := a.openDrivers(); err != nil {
		return nil, err
	}

	l, err := def.Build(keymap.Deps{
		Resolver: key.NewUSLayout(),
		Sink:     a.hidSink,
	})
	if err != nil {
		a.Shutdown()
		return nil, fmt.Errorf("building keymap %s: %w", cfg.Keymap.Path, err)
	}
	if err := l.Hook(&pad{matrix: a.matrix, indicators: a.indicators}); err != nil {
		a.Shutdown()
		return nil, err
	}
	a.layer = l

	log.Info("keymap ready driver=%s keymap=%s", cfg.Device.Driver, cfg.Keymap.Path)
	return a, nil
}

// loadKeymap dispatches on the keymap file extension.
func loadKeymap(path string) (*keymap.Definition, error) {
	switch filepath.Ext(path) {
	case ".toml":
		return keymap.LoadTOML(path)
	case ".lua":
		return keymaplua.Load(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownKeymapFormat, path)
	}
}

// openDrivers builds the matrix, sink, and indicator sources for the
// configured driver.
func (a *App) openDrivers() error {
	switch a.cfg.Device.Driver {
	case config.DriverMemory:
		dev := memory.NewDevice(a.cfg.HoldAfter())
		a.matrix = dev
		a.indicators = dev
		a.hidSink = dev

	case config.DriverSim:
		s, err := sim.New(a.cfg.HoldAfter())
		if err != nil {
			return fmt.Errorf("creating simulator: %w", err)
		}
		if err := s.Init(); err != nil {
			return fmt.Errorf("initializing simulator: %w", err)
		}
		a.matrix = s
		a.indicators = s
		a.hidSink = s
		a.quit = s.QuitRequested()
		a.closers = append(a.closers, s)

	case config.DriverEvdev:
		codes := evdev.DefaultCodes
		if len(a.cfg.Device.EventCodes) == 16 {
			copy(codes[:], a.cfg.Device.EventCodes)
		}
		m, err := evdev.Open(a.cfg.Device.EventDevice, codes, a.cfg.HoldAfter())
		if err != nil {
			return err
		}
		sink, err := uinputdrv.NewSink(a.cfg.Device.Name)
		if err != nil {
			m.Close()
			return err
		}
		a.matrix = m
		a.indicators = uinputdrv.NewLockLEDs()
		a.hidSink = sink
		a.closers = append(a.closers, m, sink)

		ctx, cancel := context.WithCancel(context.Background())
		a.cancel = cancel
		go func() {
			if err := m.Run(ctx); err != nil && ctx.Err() == nil {
				a.log.Error("input device reader stopped: %v", err)
			}
		}()
	}
	return nil
}

// Run executes the polling loop until a quit request or signal-driven
// shutdown. One cycle: scan the matrix, dispatch edges and updates
// through the layer, flush LEDs.
func (a *App) Run() error {
	ticker := time.NewTicker(a.cfg.PollEvery())
	defer ticker.Stop()

	quit := a.quitChan()
	for {
		select {
		case <-a.stop:
			return ErrQuit
		case <-quit:
			return ErrQuit
		case <-ticker.C:
			a.matrix.Scan()
			if err := a.layer.Update(); err != nil {
				return err
			}
			if err := a.matrix.Flush(); err != nil {
				a.log.Warn("led flush failed: %v", err)
			}
		}
	}
}

func (a *App) quitChan() <-chan struct{} {
	if a.quit != nil {
		return a.quit
	}
	// Block forever: firmware loops have no natural exit.
	return make(chan struct{})
}

// Shutdown releases the drivers. Safe to call more than once.
func (a *App) Shutdown() {
	if a.cancel != nil {
		a.cancel()
		a.cancel = nil
	}
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			a.log.Warn("closing driver: %v", err)
		}
	}
	a.closers = nil
}

// pad joins the matrix and indicator source into the layer's Pad.
type pad struct {
	matrix     driver.Matrix
	indicators driver.Indicators
}

func (p *pad) PressedEdge(i int) bool  { return p.matrix.PressedEdge(i) }
func (p *pad) ReleasedEdge(i int) bool { return p.matrix.ReleasedEdge(i) }
func (p *pad) HoldEdge(i int) bool     { return p.matrix.HoldEdge(i) }
func (p *pad) SetLED(i int, r, g, b uint8) {
	p.matrix.SetLED(i, r, g, b)
}
func (p *pad) Indicator(name string) bool {
	return p.indicators.Indicator(name)
}
