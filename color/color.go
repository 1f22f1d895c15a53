// Package color implements the hex colors used by map symbology.
package color

import (
	"fmt"
	"math"
	"strconv"

	"github.com/hsluv/hsluv-go"
	"github.com/rotisserie/eris"
)

// Color is an opaque 8-bit RGB color.
type Color struct {
	R, G, B uint8
}

// Parse parses #RRGGBB or #RGB.
func Parse(hex string) (Color, error) {
	if len(hex) == 0 || hex[0] != '#' {
		return Color{}, eris.Errorf("color: %q is not a hex color", hex)
	}
	digits := hex[1:]
	if len(digits) == 3 {
		digits = string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]})
	}
	if len(digits) != 6 {
		return Color{}, eris.Errorf("color: %q is not a hex color", hex)
	}
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return Color{}, eris.Wrapf(err, "color: parse %q", hex)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// MustParse is like Parse but panics on malformed input. It is meant for
// package level ramps.
func MustParse(hex string) Color {
	c, err := Parse(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex returns the color as #rrggbb with every channel zero padded.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c Color) String() string {
	return c.Hex()
}

// RGBA implements image/color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// Blend returns the channel-wise mean of a and b, rounding halves up.
func Blend(a, b Color) Color {
	return Color{
		R: mean(a.R, b.R),
		G: mean(a.G, b.G),
		B: mean(a.B, b.B),
	}
}

func mean(a, b uint8) uint8 {
	return uint8(math.Floor((float64(a)+float64(b))/2 + 0.5))
}

// BlendHex blends two hex strings. Both must be well formed.
func BlendHex(a, b string) (string, error) {
	ca, err := Parse(a)
	if err != nil {
		return "", err
	}
	cb, err := Parse(b)
	if err != nil {
		return "", err
	}
	return Blend(ca, cb).Hex(), nil
}

// Lightness returns the HSLuv lightness of c in [0, 100].
func (c Color) Lightness() float64 {
	_, _, l := hsluv.HsluvFromHex(c.Hex())
	return l
}

var (
	Black = Color{}
	White = Color{R: 0xff, G: 0xff, B: 0xff}
)

// Contrast returns black for light colors and white for dark ones.
func (c Color) Contrast() Color {
	if c.Lightness() > 50 {
		return Black
	}
	return White
}
