// Package key provides USB HID keyboard usage codes and name resolution.
//
// This package defines the fundamental types for describing keys on the
// wire:
//
//   - Code: a single usage ID from the HID keyboard/keypad usage page
//   - Resolver: turns a human-readable key name into usage codes
//   - USLayout: a Resolver for the US keyboard layout, where characters
//     that require Shift expand to a two-code sequence
//
// # Key names
//
// Names accepted by USLayout are either a single printable ASCII
// character ("a", "C", "%") or a named key ("enter", "escape", "f4").
// Letters name the key rather than the glyph, so "C" and "c" both
// resolve to the bare C usage. Characters that only exist shifted on the
// US layout ("%", "{") expand to Shift followed by the base usage.
package key
