package color

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// GamutMode selects how out-of-gamut colors are brought back into sRGB
type GamutMode int

const (
	// GamutChroma holds lightness and hue and reduces chroma until the color fits
	GamutChroma GamutMode = iota
	// GamutClip clamps lightness to [0,1], chroma to >= 0, then clips each channel
	GamutClip
)

const (
	// gamutEpsilon absorbs float noise at the edges of the unit cube
	gamutEpsilon = 1e-9
	// chromaSearchSteps bounds the chroma bisection
	chromaSearchSteps = 32
)

func (m GamutMode) String() string {
	switch m {
	case GamutClip:
		return "clip"
	default:
		return "chroma"
	}
}

// ParseGamutMode converts "chroma" or "clip" to a GamutMode
func ParseGamutMode(s string) (GamutMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "chroma":
		return GamutChroma, nil
	case "clip":
		return GamutClip, nil
	default:
		return GamutChroma, fmt.Errorf("unknown gamut mode %q (want chroma or clip)", s)
	}
}

// Convert maps a perceptual color to sRGB using chroma reduction for out-of-gamut colors
func Convert(p Perceptual) RGB {
	return ConvertMode(p, GamutChroma)
}

// ConvertMode maps a perceptual color to sRGB with the given gamut strategy.
// Inputs already inside the gamut come back unchanged by either strategy.
func ConvertMode(p Perceptual, mode GamutMode) RGB {
	var r, g, b float64
	switch mode {
	case GamutClip:
		r, g, b = clipGamut(p)
	default:
		r, g, b = reduceChroma(p)
	}
	return encode(r, g, b)
}

// Linear returns the unclamped linear sRGB coordinates of p
func Linear(p Perceptual) (r, g, b float64) {
	l, a, bb := oklab(p)
	return oklabToLinear(l, a, bb)
}

// InGamut reports whether p is representable in sRGB without clamping
func InGamut(p Perceptual) bool {
	return inUnitCube(Linear(p))
}

// Unclamped encodes p without gamut mapping. Only meaningful when InGamut(p).
func Unclamped(p Perceptual) RGB {
	return encode(Linear(p))
}

func reduceChroma(p Perceptual) (float64, float64, float64) {
	if p.L <= 0 {
		return 0, 0, 0
	}
	if p.L >= 1 {
		return 1, 1, 1
	}

	c := math.Max(p.C, 0)
	r, g, b := Linear(Perceptual{L: p.L, C: c, H: p.H})
	if inUnitCube(r, g, b) {
		return r, g, b
	}

	lo, hi := 0.0, c
	for i := 0; i < chromaSearchSteps; i++ {
		mid := (lo + hi) / 2
		if inUnitCube(Linear(Perceptual{L: p.L, C: mid, H: p.H})) {
			lo = mid
		} else {
			hi = mid
		}
	}
	return Linear(Perceptual{L: p.L, C: lo, H: p.H})
}

func clipGamut(p Perceptual) (float64, float64, float64) {
	clamped := Perceptual{
		L: math.Max(0, math.Min(p.L, 1)),
		C: math.Max(p.C, 0),
		H: p.H,
	}
	return Linear(clamped)
}

// encode applies the sRGB transfer curve and quantizes to 8 bits.
// Clamped is the final per-channel guard against residual float noise.
func encode(r, g, b float64) RGB {
	col := colorful.LinearRgb(clamp01(r), clamp01(g), clamp01(b)).Clamped()
	r8, g8, b8 := col.RGB255()
	return RGB{R: r8, G: g8, B: b8}
}

func inUnitCube(r, g, b float64) bool {
	return r >= -gamutEpsilon && r <= 1+gamutEpsilon &&
		g >= -gamutEpsilon && g <= 1+gamutEpsilon &&
		b >= -gamutEpsilon && b <= 1+gamutEpsilon
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
