// Package palette declares the perceptual parameters each theme slot is derived from.
package palette

import (
	"errors"
	"fmt"
	"math"

	"github.com/renato0307/okterm/internal/color"
)

// Shared accent hues in OkLCh degrees. Tuning one moves every slot anchored to it.
const (
	RedHue     = 0.0
	GreenHue   = 145.0
	YellowHue  = 103.0
	BlueHue    = 256.0
	MagentaHue = 300.0
	CyanHue    = 210.0
)

// Shared chroma levels
const (
	ChromaMax = 0.37
	ChromaStd = 0.2
)

var (
	// ErrNonFinite is returned when an entry holds NaN or an infinity
	ErrNonFinite = errors.New("non-finite palette value")
	// ErrDuplicateSlot is returned when a slot is declared twice
	ErrDuplicateSlot = errors.New("duplicate palette slot")
	// ErrMissingSlot is returned when a required slot is not declared
	ErrMissingSlot = errors.New("missing palette slot")
	// ErrUnknownSlot is returned when an entry references an undefined slot
	ErrUnknownSlot = errors.New("unknown palette slot")
)

// Entry holds the base lightness, chroma and hue of one slot
type Entry struct {
	Slot      Slot
	Lightness float64
	Chroma    float64
	Hue       float64
}

// Perceptual returns the entry's base color
func (e Entry) Perceptual() color.Perceptual {
	return color.Perceptual{L: e.Lightness, C: e.Chroma, H: e.Hue}
}

// Table is an ordered list of slot definitions
type Table struct {
	Name    string
	Entries []Entry
}

// Validate checks that every value is finite, no slot repeats and all required slots exist
func (t Table) Validate() error {
	seen := make(map[Slot]bool, len(t.Entries))
	for _, e := range t.Entries {
		if !e.Slot.Valid() {
			return fmt.Errorf("%w: %d", ErrUnknownSlot, int(e.Slot))
		}
		if !e.Perceptual().IsFinite() {
			return fmt.Errorf("%w: slot %s has %s", ErrNonFinite, e.Slot, describe(e))
		}
		if seen[e.Slot] {
			return fmt.Errorf("%w: %s", ErrDuplicateSlot, e.Slot)
		}
		seen[e.Slot] = true
	}

	for _, s := range AllSlots() {
		if s.IsRequired() && !seen[s] {
			return fmt.Errorf("%w: %s", ErrMissingSlot, s)
		}
	}
	return nil
}

// Lookup returns the entry for a slot
func (t Table) Lookup(s Slot) (Entry, bool) {
	for _, e := range t.Entries {
		if e.Slot == s {
			return e, true
		}
	}
	return Entry{}, false
}

// Clone returns a deep copy of the table
func (t Table) Clone() Table {
	entries := make([]Entry, len(t.Entries))
	copy(entries, t.Entries)
	return Table{Name: t.Name, Entries: entries}
}

// With returns a copy where each override replaces the entry for its slot,
// or is appended when the slot was not declared
func (t Table) With(overrides ...Entry) Table {
	out := t.Clone()
	for _, o := range overrides {
		replaced := false
		for i := range out.Entries {
			if out.Entries[i].Slot == o.Slot {
				out.Entries[i] = o
				replaced = true
				break
			}
		}
		if !replaced {
			out.Entries = append(out.Entries, o)
		}
	}
	return out
}

func describe(e Entry) string {
	return fmt.Sprintf("l=%s c=%s h=%s", num(e.Lightness), num(e.Chroma), num(e.Hue))
}

func num(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "+Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	default:
		return fmt.Sprintf("%g", v)
	}
}
