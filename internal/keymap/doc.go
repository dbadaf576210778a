// Package keymap turns a declarative keymap definition into a ready
// Layer.
//
// A Definition names colors once and assigns each grid cell a list of
// actions; multiple actions on one cell stack through the Combined
// combinator, the usual pairing being a light plus a chord press. Cells
// the definition does not mention light with the neutral color and do
// nothing.
//
// Definitions load from TOML files or from the Lua DSL in the lua
// subpackage. Build validates everything — color references, chord
// grammar, indicator names, cell bounds, duplicate cells — and any
// failure halts startup: a keymap that cannot be built never reaches
// the polling loop.
package keymap
