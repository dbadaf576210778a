// Package memory provides an in-process pad: matrix, HID sink, and
// indicators in one deterministic device. Tests drive it directly, and
// the real binary uses it for keymap dry runs.
package memory

import (
	"sync"
	"time"

	"github.com/keybowio/keybow/internal/driver"
	"github.com/keybowio/keybow/internal/input/key"
)

// Device implements driver.Matrix, driver.HIDSink, and
// driver.Indicators entirely in memory.
type Device struct {
	*driver.State

	mu         sync.Mutex
	chords     [][]key.Code
	indicators map[string]bool
}

// NewDevice creates a 16-key in-memory pad.
func NewDevice(holdAfter time.Duration) *Device {
	return &Device{
		State:      driver.NewState(16, holdAfter),
		indicators: make(map[string]bool),
	}
}

// Press feeds a press transition for a key.
func (d *Device) Press(index int) {
	d.Feed(index, true)
}

// Release feeds a release transition for a key.
func (d *Device) Release(index int) {
	d.Feed(index, false)
}

// Flush is a no-op; staged LED colors stay readable through LED.
func (d *Device) Flush() error {
	return nil
}

// SendChord records the transmitted group.
func (d *Device) SendChord(codes []key.Code) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	sent := make([]key.Code, len(codes))
	copy(sent, codes)
	d.chords = append(d.chords, sent)
	return nil
}

// Chords returns every group transmitted so far, in order.
func (d *Device) Chords() [][]key.Code {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([][]key.Code, len(d.chords))
	copy(out, d.chords)
	return out
}

// SetIndicator sets a named indicator state.
func (d *Device) SetIndicator(name string, on bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.indicators[name] = on
}

// Indicator implements driver.Indicators.
func (d *Device) Indicator(name string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.indicators[name]
}
