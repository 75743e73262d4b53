// Package color converts OkLCh perceptual colors into 8-bit sRGB display colors.
//
// The pipeline is fixed: OkLCh -> OkLab -> linear sRGB -> gamut clamp -> sRGB
// transfer -> 8-bit quantization. Every path through Convert ends in the clamp,
// so any finite input yields a valid RGB value.
package color

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidHex is returned when a string is not a 6 digit hex color
var ErrInvalidHex = errors.New("invalid hex color")

// Perceptual is a color in the OkLCh cylindrical space.
// L is not limited to [0,1] and C may be negative; both are resolved by the gamut clamp.
// H is in degrees and is normalized modulo 360.
type Perceptual struct {
	L float64
	C float64
	H float64
}

// IsFinite reports whether all three components are finite numbers
func (p Perceptual) IsFinite() bool {
	return isFinite(p.L) && isFinite(p.C) && isFinite(p.H)
}

func (p Perceptual) String() string {
	return fmt.Sprintf("oklch(%.4g %.4g %.4g)", p.L, p.C, p.H)
}

// RGB is an 8-bit sRGB display color
type RGB struct {
	R, G, B uint8
}

// Hex returns the color as 6 uppercase hex digits without a prefix
func (c RGB) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

// String returns the color as #RRGGBB
func (c RGB) String() string {
	return "#" + c.Hex()
}

// Colorful returns the color as a go-colorful value
func (c RGB) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// ParseHex parses exactly 6 hex digits, with or without a leading '#', in either case
func ParseHex(s string) (RGB, error) {
	digits := strings.TrimPrefix(s, "#")
	if len(digits) != 6 {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	for _, r := range digits {
		if !isHexDigit(r) {
			return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
		}
	}

	col, err := colorful.Hex("#" + strings.ToLower(digits))
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q: %v", ErrInvalidHex, s, err)
	}
	r, g, b := col.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
