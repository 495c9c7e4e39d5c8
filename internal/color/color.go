// Package color implements the colour-theory engine: hex parsing and
// formatting, RGB/HSL conversion and palette derivation.
//
// Everything in this package is a pure function over immutable values and is
// safe for concurrent use.
package color

import (
	"fmt"
	"strconv"

	domainerrors "github.com/iroha-labs/palette-server/internal/errors"
)

// ErrInvalidFormat is returned by ParseHex for anything that is not #RRGGBB.
var ErrInvalidFormat = domainerrors.ErrInvalidFormat

// Color is an 8-bit RGB triple.
type Color struct {
	R, G, B uint8
}

// RGB builds a Color from its channels.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// ParseHex parses "#RRGGBB" or "RRGGBB", case-insensitive.
func ParseHex(s string) (Color, error) {
	digits := s
	if len(digits) > 0 && digits[0] == '#' {
		digits = digits[1:]
	}
	if len(digits) != 6 {
		return Color{}, domainerrors.InvalidFormatf("invalid hex color %q: expected #RRGGBB", s)
	}
	for i := 0; i < len(digits); i++ {
		if !isHexDigit(digits[i]) {
			return Color{}, domainerrors.InvalidFormatf("invalid hex color %q: expected #RRGGBB", s)
		}
	}

	var ch [3]uint8
	for i := range ch {
		v, err := strconv.ParseUint(digits[i*2:i*2+2], 16, 8)
		if err != nil {
			return Color{}, domainerrors.Wrapf(err, domainerrors.CodeInvalidFormat, "invalid hex color %q", s)
		}
		ch[i] = uint8(v)
	}

	return Color{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// MustParseHex is like ParseHex but panics on malformed input.
// Only use it with literals.
func MustParseHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex formats the colour as "#RRGGBB" with uppercase digits.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.Hex()
}

// MarshalText encodes the colour as its canonical hex form.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText decodes a hex colour.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseHex(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func isHexDigit(b byte) bool {
	return ('0' <= b && b <= '9') || ('a' <= b && b <= 'f') || ('A' <= b && b <= 'F')
}
