// Package layer owns the 4x4 action grid and its dispatch.
//
// A Layer is built once at startup from four rows of four actions and is
// immutable afterwards. Physical key indices 0..15 map to grid positions
// through a fixed bijection (row = index / 4, column = index % 4).
//
// Rows in a keymap source read top-to-bottom, but on the default board
// orientation the physical numbering runs the other way, so construction
// reverses row order unless WithReverse(false) is given. This is a
// board-calibration concern, not a general sequence utility.
//
// Per cycle, after the matrix has refreshed its edge state, Update
// delivers for each key: at most one OnPress or OnRelease for the edge,
// one OnHold if the hold threshold fired, then exactly one OnUpdate.
// Edges always precede the update within a key's cycle.
//
// Out-of-range indices passed to the direct dispatch paths (Press,
// Release, Hold) are integration bugs and return ErrIndexOutOfRange;
// Update only ever visits valid indices.
package layer
