// Package driver defines the hardware-facing interfaces the keymap core
// consumes, and the edge-tracking state machine the matrix drivers
// share.
//
// Three roles, usually filled by one or two devices:
//
//   - Matrix: per-cycle pressed/edge state for the 16 keys plus the RGB
//     LED output
//   - HIDSink: transmits one chord group as an atomic press-then-release
//     HID transaction
//   - Indicators: read-only host indicator state (lock LEDs)
//
// Concrete implementations live in the subpackages: memory (tests and
// dry runs), sim (tcell terminal simulator), evdev (Linux input device),
// and uinput (Linux virtual keyboard sink + sysfs lock LEDs).
//
// The polling loop is single-threaded; State is the only cross-thread
// touchpoint. Event-driven drivers feed transitions from their reader
// goroutine through Feed, and the loop snapshots them with Scan.
package driver
