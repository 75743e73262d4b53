package palette

import (
	"fmt"
	"strings"
)

// Slot is a named theme role that resolves to one or two display colors
type Slot int

const (
	Black Slot = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	Background
	Foreground
	BgVeryDark
	BgDark
	BgMedium
	BgLight
	BgVeryLight

	slotCount
)

var slotNames = [slotCount]string{
	Black:       "black",
	Red:         "red",
	Green:       "green",
	Yellow:      "yellow",
	Blue:        "blue",
	Magenta:     "magenta",
	Cyan:        "cyan",
	White:       "white",
	Background:  "background",
	Foreground:  "foreground",
	BgVeryDark:  "bg-very-dark",
	BgDark:      "bg-dark",
	BgMedium:    "bg-medium",
	BgLight:     "bg-light",
	BgVeryLight: "bg-very-light",
}

func (s Slot) String() string {
	if s < 0 || s >= slotCount {
		return fmt.Sprintf("slot(%d)", int(s))
	}
	return slotNames[s]
}

// IsAccent reports whether the slot is one of the 8 ANSI hues with a bright variant
func (s Slot) IsAccent() bool {
	return s >= Black && s <= White
}

// IsTier reports whether the slot is a background tint tier
func (s Slot) IsTier() bool {
	return s >= BgVeryDark && s <= BgVeryLight
}

// IsRequired reports whether every table must define the slot
func (s Slot) IsRequired() bool {
	return s.IsAccent() || s == Background || s == Foreground
}

// Valid reports whether s is a known slot
func (s Slot) Valid() bool {
	return s >= 0 && s < slotCount
}

// ParseSlot converts a slot name (case-insensitive, '_' or '-' separated) to a Slot
func ParseSlot(name string) (Slot, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for i, n := range slotNames {
		if n == normalized {
			return Slot(i), nil
		}
	}
	return 0, fmt.Errorf("unknown slot %q", name)
}

// Accents returns the 8 ANSI slots in terminal order
func Accents() []Slot {
	return []Slot{Black, Red, Green, Yellow, Blue, Magenta, Cyan, White}
}

// Tiers returns the background tint ladder from darkest to lightest
func Tiers() []Slot {
	return []Slot{BgVeryDark, BgDark, BgMedium, BgLight, BgVeryLight}
}

// AllSlots returns every slot in canonical order
func AllSlots() []Slot {
	slots := make([]Slot, 0, slotCount)
	for s := Slot(0); s < slotCount; s++ {
		slots = append(slots, s)
	}
	return slots
}
