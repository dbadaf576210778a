package action

import "github.com/keybowio/keybow/internal/input/key"

// Key is the context an Action receives with every reaction. It exposes
// exactly what an action may touch: its own key's LED and read-only
// access to host indicator state.
type Key interface {
	// Index is the physical key index (0..15).
	Index() int

	// SetLED stages this key's LED color for the current cycle.
	// Writes are idempotent and last-write-wins; no blending.
	SetLED(c Color)

	// Indicator reports a named host indicator state such as
	// "caps-lock". Actions can mirror indicators but never set them.
	Indicator(name string) bool
}

// Sink accepts one chord group at a time for HID transmission. The
// transport presses all codes together, then releases them, as one
// atomic transaction from the action's point of view. Delivery is
// fire-and-forget: retry and flow control belong to the sink.
type Sink interface {
	SendChord(codes []key.Code) error
}

// Action is a polymorphic behavioral unit bound to one key. Every
// reaction receives the key context, used or not.
type Action interface {
	OnPress(k Key)
	OnRelease(k Key)
	OnHold(k Key)
	OnUpdate(k Key)
}

// base provides no-op defaults for variants that only care about a
// subset of the reactions.
type base struct{}

func (base) OnPress(Key)   {}
func (base) OnRelease(Key) {}
func (base) OnHold(Key)    {}
func (base) OnUpdate(Key)  {}
