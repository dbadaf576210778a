package app

import "errors"

// Application errors.
var (
	// ErrQuit signals a clean, user-requested exit from the loop. The
	// firmware loop has no exit condition of its own; only a simulator
	// quit or a signal ends it.
	ErrQuit = errors.New("quit requested")

	// ErrUnknownKeymapFormat indicates a keymap file extension the
	// loader does not recognize.
	ErrUnknownKeymapFormat = errors.New("unknown keymap format")
)
