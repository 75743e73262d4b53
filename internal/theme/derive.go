// Package theme derives a complete terminal Color Set from a palette table.
package theme

import (
	"github.com/renato0307/okterm/internal/color"
	"github.com/renato0307/okterm/internal/palette"
)

const (
	// NormalLightnessScale dims the base lightness for the normal variant
	NormalLightnessScale = 0.65
	// BrightChromaOffset is subtracted from the base chroma for the bright variant
	BrightChromaOffset = 0.02
)

// Pair is the normal and bright display color of one accent slot
type Pair struct {
	Normal color.RGB
	Bright color.RGB
}

// Engine converts palette tables into Color Sets. The zero value uses chroma reduction.
type Engine struct {
	gamut color.GamutMode
}

// Option configures an Engine
type Option func(*Engine)

// WithGamut selects the gamut mapping strategy
func WithGamut(mode color.GamutMode) Option {
	return func(e *Engine) {
		e.gamut = mode
	}
}

// NewEngine creates an engine with the given options
func NewEngine(opts ...Option) *Engine {
	e := &Engine{gamut: color.GamutChroma}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Gamut returns the engine's gamut mode
func (e *Engine) Gamut() color.GamutMode {
	return e.gamut
}

// Convert maps one perceptual color through the engine's gamut strategy
func (e *Engine) Convert(p color.Perceptual) color.RGB {
	return color.ConvertMode(p, e.gamut)
}

// DerivePair applies the normal/bright rule:
//
//	normal = convert(lightness*0.65, chroma, hue)
//	bright = convert(lightness, chroma-0.02, hue)
//
// Chroma may go negative and lightness may exceed 1; the gamut clamp resolves both.
func (e *Engine) DerivePair(lightness, chroma, hue float64) Pair {
	return Pair{
		Normal: e.Convert(color.Perceptual{L: lightness * NormalLightnessScale, C: chroma, H: hue}),
		Bright: e.Convert(color.Perceptual{L: lightness, C: chroma - BrightChromaOffset, H: hue}),
	}
}

// DerivePair applies the normal/bright rule with the default gamut mode
func DerivePair(lightness, chroma, hue float64) Pair {
	return NewEngine().DerivePair(lightness, chroma, hue)
}

// Generate validates the table and derives every slot.
// Accents get a normal/bright pair; background, foreground and tint tiers get one color.
func (e *Engine) Generate(t palette.Table) (ColorSet, error) {
	if err := t.Validate(); err != nil {
		return ColorSet{}, err
	}

	set := ColorSet{
		palette:  t.Name,
		gamut:    e.gamut,
		swatches: make(map[palette.Slot]Swatch, len(t.Entries)),
	}
	for _, entry := range t.Entries {
		sw := Swatch{Slot: entry.Slot}
		if entry.Slot.IsAccent() {
			pair := e.DerivePair(entry.Lightness, entry.Chroma, entry.Hue)
			sw.Normal, sw.Bright, sw.HasBright = pair.Normal, pair.Bright, true
		} else {
			sw.Normal = e.Convert(entry.Perceptual())
		}
		set.swatches[entry.Slot] = sw
	}
	return set, nil
}

// Generate derives a Color Set with the default gamut mode
func Generate(t palette.Table) (ColorSet, error) {
	return NewEngine().Generate(t)
}
