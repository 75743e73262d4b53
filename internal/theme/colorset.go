package theme

import (
	"github.com/renato0307/okterm/internal/color"
	"github.com/renato0307/okterm/internal/palette"
)

// Swatch is the derived color(s) of one slot
type Swatch struct {
	Slot      palette.Slot
	Normal    color.RGB
	Bright    color.RGB
	HasBright bool
}

// CursorColors are the cursor roles of a terminal scheme
type CursorColors struct {
	Background color.RGB
	Border     color.RGB
	Foreground color.RGB
}

// SelectionColors are the selection roles of a terminal scheme
type SelectionColors struct {
	Background color.RGB
	Foreground color.RGB
}

// ColorSet is the complete, read-only output of one generation run.
// Only Generate builds a usable ColorSet; required slots are always present.
type ColorSet struct {
	palette  string
	gamut    color.GamutMode
	swatches map[palette.Slot]Swatch
}

// Palette returns the name of the table the set was derived from
func (s ColorSet) Palette() string {
	return s.palette
}

// Gamut returns the gamut mode used during derivation
func (s ColorSet) Gamut() color.GamutMode {
	return s.gamut
}

// Swatch returns the colors derived for a slot
func (s ColorSet) Swatch(slot palette.Slot) (Swatch, bool) {
	sw, ok := s.swatches[slot]
	return sw, ok
}

// Swatches returns every derived slot in canonical slot order
func (s ColorSet) Swatches() []Swatch {
	out := make([]Swatch, 0, len(s.swatches))
	for _, slot := range palette.AllSlots() {
		if sw, ok := s.swatches[slot]; ok {
			out = append(out, sw)
		}
	}
	return out
}

// ANSI returns the 8 normal colors in terminal order (black..white)
func (s ColorSet) ANSI() [8]color.RGB {
	var out [8]color.RGB
	for i, slot := range palette.Accents() {
		out[i] = s.swatches[slot].Normal
	}
	return out
}

// Brights returns the 8 bright colors in terminal order
func (s ColorSet) Brights() [8]color.RGB {
	var out [8]color.RGB
	for i, slot := range palette.Accents() {
		out[i] = s.swatches[slot].Bright
	}
	return out
}

// Background returns the terminal background
func (s ColorSet) Background() color.RGB {
	return s.swatches[palette.Background].Normal
}

// Foreground returns the terminal foreground
func (s ColorSet) Foreground() color.RGB {
	return s.swatches[palette.Foreground].Normal
}

// Cursor returns the cursor colors: white block with a black glyph
func (s ColorSet) Cursor() CursorColors {
	white := s.swatches[palette.White].Normal
	return CursorColors{
		Background: white,
		Border:     white,
		Foreground: s.swatches[palette.Black].Normal,
	}
}

// Selection returns the selection colors: black text on white
func (s ColorSet) Selection() SelectionColors {
	return SelectionColors{
		Background: s.swatches[palette.White].Normal,
		Foreground: s.swatches[palette.Black].Normal,
	}
}

// Tiers returns the background tint tiers the palette declares, darkest first
func (s ColorSet) Tiers() []Swatch {
	var out []Swatch
	for _, slot := range palette.Tiers() {
		if sw, ok := s.swatches[slot]; ok {
			out = append(out, sw)
		}
	}
	return out
}

// Tier returns one tint tier's color, falling back when the palette has no tiers
func (s ColorSet) Tier(slot palette.Slot, fallback color.RGB) color.RGB {
	if sw, ok := s.swatches[slot]; ok && slot.IsTier() {
		return sw.Normal
	}
	return fallback
}
