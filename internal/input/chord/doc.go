// Package chord parses the chord mini-language used by keymap bindings.
//
// A chord specification is one or more groups separated by spaces, each
// group one or more tokens joined by hyphens:
//
//	chord := group (' ' group)*
//	group := token ('-' token)*
//
// Every group transmits as one simultaneous press-then-release HID
// report; groups go left to right. "ctrl-alt-M ctrl-alt-N" is two
// chorded keystrokes from a single key press.
//
// Tokens resolve against the built-in modifier/special table first (alt,
// cmd, ctrl, option, shift, space, tab, left, right, up, down), then
// fall back to the layout resolver for literal characters and key names.
// Resolution happens entirely at parse time: a binding with an unknown
// token fails configuration instead of failing on press.
package chord
