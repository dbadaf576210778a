package driver

import "github.com/keybowio/keybow/internal/input/key"

// Matrix is the physical key grid: edge state refreshed once per polling
// cycle and the per-key RGB LED output.
type Matrix interface {
	// NumKeys returns the number of physical keys.
	NumKeys() int

	// Scan snapshots pressed/edge/hold state for the coming cycle.
	// Called exactly once per cycle, before dispatch.
	Scan()

	// Pressed reports the level state of a key as of the last Scan.
	Pressed(index int) bool

	// PressedEdge reports a press transition captured by the last Scan.
	PressedEdge(index int) bool

	// ReleasedEdge reports a release transition captured by the last Scan.
	ReleasedEdge(index int) bool

	// HoldEdge fires once per press when the key has been held past the
	// hold threshold.
	HoldEdge(index int) bool

	// SetLED stages a key's LED color for the current cycle.
	SetLED(index int, r, g, b uint8)

	// Flush pushes staged LED colors to the hardware. Called once per
	// cycle, after dispatch.
	Flush() error
}

// HIDSink transmits chord groups. SendChord presses every code in the
// group simultaneously, then releases them, as one transaction. Errors
// are transport concerns; the action layer fires and forgets.
type HIDSink interface {
	SendChord(codes []key.Code) error
}

// Indicators exposes named host indicator states. Known names are
// "caps-lock", "num-lock", and "scroll-lock"; unknown names read false.
type Indicators interface {
	Indicator(name string) bool
}
