// Package evdev drives the key matrix from a Linux input device. A
// configurable set of 16 event codes maps onto pad indices, so any
// keypad or macro board that shows up under /dev/input can stand in for
// the Keybow grid.
package evdev

import (
	"context"
	"fmt"
	"time"

	evdev "github.com/gvalkov/golang-evdev"

	"github.com/keybowio/keybow/internal/driver"
)

// DefaultCodes maps the left-hand 4x4 block of a QWERTY keyboard
// (1234/qwer/asdf/zxcv) onto indices 0..15.
var DefaultCodes = [16]uint16{
	2, 3, 4, 5, // KEY_1..KEY_4
	16, 17, 18, 19, // KEY_Q..KEY_R
	30, 31, 32, 33, // KEY_A..KEY_F
	44, 45, 46, 47, // KEY_Z..KEY_V
}

// Matrix implements driver.Matrix over an evdev input device. It has no
// LEDs; staged colors stay in the buffer and Flush is a no-op.
type Matrix struct {
	*driver.State

	dev     *evdev.InputDevice
	mapping map[uint16]int
}

// Open opens the input device and builds the code-to-index mapping.
// codes must assign exactly one event code per pad index.
func Open(path string, codes [16]uint16, holdAfter time.Duration) (*Matrix, error) {
	mapping, err := buildMapping(codes)
	if err != nil {
		return nil, err
	}

	dev, err := evdev.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input device %s: %w", path, err)
	}

	return &Matrix{
		State:   driver.NewState(16, holdAfter),
		dev:     dev,
		mapping: mapping,
	}, nil
}

// buildMapping inverts the code list into a code-to-index lookup,
// rejecting duplicates.
func buildMapping(codes [16]uint16) (map[uint16]int, error) {
	mapping := make(map[uint16]int, len(codes))
	for index, code := range codes {
		if _, dup := mapping[code]; dup {
			return nil, fmt.Errorf("event code %d mapped to more than one key", code)
		}
		mapping[code] = index
	}
	return mapping, nil
}

// Run reads events until the context is cancelled or the device fails.
// Call it on its own goroutine; transitions land in the shared State for
// the polling loop to Scan.
func (m *Matrix) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		event, err := m.dev.ReadOne()
		if err != nil {
			return fmt.Errorf("reading input device: %w", err)
		}
		if event.Type != evdev.EV_KEY {
			continue
		}
		index, ok := m.mapping[event.Code]
		if !ok {
			continue
		}
		switch event.Value {
		case 0:
			m.Feed(index, false)
		case 1:
			m.Feed(index, true)
		}
		// Value 2 is autorepeat; the matrix tracks levels, so repeats
		// carry no information.
	}
}

// Flush implements driver.Matrix. The device has no addressable LEDs.
func (m *Matrix) Flush() error {
	return nil
}

// Close releases the input device.
func (m *Matrix) Close() error {
	return m.dev.File.Close()
}
