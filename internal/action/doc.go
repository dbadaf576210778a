// Package action implements the per-key behavior model.
//
// An Action is a stateful unit of behavior bound to one physical key. It
// reacts to four events, each receiving the key context:
//
//   - OnPress: the key transitioned to pressed this cycle
//   - OnRelease: the key transitioned to released this cycle
//   - OnHold: the key has been held past the hold threshold (fires once)
//   - OnUpdate: every polling cycle, after any edge events
//
// Variants: Press transmits a chord, AlwaysOn / SwitchWhenPressed /
// ToggleWhenPressed / Mirror drive the key's LED, and Combined stacks
// two actions on one key, forwarding every event to both.
//
// Reactions must not block. The polling loop shares its cycle budget
// across matrix scanning, dispatch, and HID transmission, so an action
// that sleeps or spin-waits stalls the entire pad. Side effects are
// limited to writing this key's LED and emitting chords through the
// sink; all chord parsing happens at construction, never at press time.
//
// Action state is private to the instance. The keymap builder creates a
// fresh Action per grid cell, so a toggle latch on one key never bleeds
// into another unless a caller aliases an instance deliberately.
package action
