// Package uinput transmits chords through a Linux virtual keyboard and
// reads the host lock LEDs from sysfs. Together with the evdev matrix
// driver it turns any Linux box into a Keybow-shaped device.
package uinput

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bendahl/uinput"

	"github.com/keybowio/keybow/internal/input/key"
)

// Sink implements driver.HIDSink over a uinput virtual keyboard.
type Sink struct {
	kbd uinput.Keyboard
}

// NewSink creates the virtual keyboard device.
func NewSink(name string) (*Sink, error) {
	kbd, err := uinput.CreateKeyboard("/dev/uinput", []byte(name))
	if err != nil {
		return nil, fmt.Errorf("creating uinput keyboard: %w", err)
	}
	return &Sink{kbd: kbd}, nil
}

// SendChord presses every code together, then releases in reverse
// order, one atomic keystroke from the host's point of view.
func (s *Sink) SendChord(codes []key.Code) error {
	events := make([]int, 0, len(codes))
	for _, code := range codes {
		ev, ok := eventCode(code)
		if !ok {
			return fmt.Errorf("no uinput event code for usage %s", code)
		}
		events = append(events, ev)
	}

	for _, ev := range events {
		if err := s.kbd.KeyDown(ev); err != nil {
			return fmt.Errorf("pressing %d: %w", ev, err)
		}
	}
	for i := len(events) - 1; i >= 0; i-- {
		if err := s.kbd.KeyUp(events[i]); err != nil {
			return fmt.Errorf("releasing %d: %w", events[i], err)
		}
	}
	return nil
}

// Close destroys the virtual device.
func (s *Sink) Close() error {
	return s.kbd.Close()
}

// LockLEDs implements driver.Indicators by reading the kernel LED class
// devices under /sys/class/leds. Keyboard lock LEDs appear there as
// inputN::capslock and friends.
type LockLEDs struct {
	root string
}

// NewLockLEDs reads indicators from the standard sysfs location.
func NewLockLEDs() *LockLEDs {
	return &LockLEDs{root: "/sys/class/leds"}
}

// NewLockLEDsAt reads indicators from an alternate root, for tests.
func NewLockLEDsAt(root string) *LockLEDs {
	return &LockLEDs{root: root}
}

// ledSuffix maps indicator names to the sysfs LED function suffix.
var ledSuffix = map[string]string{
	"caps-lock":   "capslock",
	"num-lock":    "numlock",
	"scroll-lock": "scrolllock",
}

// Indicator reports whether any LED device for the named lock is lit.
func (l *LockLEDs) Indicator(name string) bool {
	suffix, ok := ledSuffix[name]
	if !ok {
		return false
	}
	matches, err := filepath.Glob(filepath.Join(l.root, "*::"+suffix, "brightness"))
	if err != nil {
		return false
	}
	for _, path := range matches {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if strings.TrimSpace(string(data)) != "0" {
			return true
		}
	}
	return false
}
