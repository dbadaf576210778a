package action

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidColor indicates a color string that is not valid hex.
var ErrInvalidColor = errors.New("invalid color")

// Color is an RGB triple for a key's LED, 0-255 per channel.
type Color struct {
	R, G, B uint8
}

// Off is the neutral unlit color.
var Off = Color{}

// RGB creates a color from its components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// ParseHex parses "#RGB", "#RRGGBB", "RGB", or "RRGGBB".
func ParseHex(hex string) (Color, error) {
	s := strings.TrimPrefix(hex, "#")

	switch len(s) {
	case 3:
		// Short form: each digit doubles.
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	case 6:
	default:
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
	}
	return Color{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}

// Hex renders the color as "#RRGGBB".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.Hex()
}
