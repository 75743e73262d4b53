package palette

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
)

// ErrUnknownPalette is returned by Get for names that are not built in
var ErrUnknownPalette = errors.New("unknown palette")

// DefaultName is the palette used when none is configured
const DefaultName = "default"

// Default returns the canonical palette: cyan-tinted neutrals and a full tint ladder
func Default() Table {
	return Table{
		Name: DefaultName,
		Entries: []Entry{
			{Slot: Black, Lightness: 0.40, Chroma: 0.02, Hue: CyanHue},
			{Slot: Red, Lightness: 0.80, Chroma: ChromaStd, Hue: RedHue},
			{Slot: Green, Lightness: 0.80, Chroma: ChromaStd, Hue: GreenHue},
			{Slot: Yellow, Lightness: 0.86, Chroma: ChromaStd, Hue: YellowHue},
			{Slot: Blue, Lightness: 0.78, Chroma: ChromaStd, Hue: BlueHue},
			{Slot: Magenta, Lightness: 0.80, Chroma: ChromaStd, Hue: MagentaHue},
			{Slot: Cyan, Lightness: 0.82, Chroma: ChromaStd, Hue: CyanHue},
			// Above 1.0 so the bright variant lands on the white point
			{Slot: White, Lightness: 1.05, Chroma: 0.01, Hue: CyanHue},
			{Slot: Background, Lightness: 0.18, Chroma: 0.02, Hue: CyanHue},
			{Slot: Foreground, Lightness: 0.92, Chroma: 0.01, Hue: CyanHue},
			{Slot: BgVeryDark, Lightness: 0.14, Chroma: 0.025, Hue: CyanHue},
			{Slot: BgDark, Lightness: 0.22, Chroma: 0.025, Hue: CyanHue},
			{Slot: BgMedium, Lightness: 0.32, Chroma: 0.025, Hue: CyanHue},
			{Slot: BgLight, Lightness: 0.45, Chroma: 0.025, Hue: CyanHue},
			{Slot: BgVeryLight, Lightness: 0.60, Chroma: 0.025, Hue: CyanHue},
		},
	}
}

// Warm returns a palette with yellow-tinted neutrals and softer accents
func Warm() Table {
	return Table{
		Name: "warm",
		Entries: []Entry{
			{Slot: Black, Lightness: 0.40, Chroma: 0.015, Hue: YellowHue},
			{Slot: Red, Lightness: 0.82, Chroma: 0.17, Hue: RedHue},
			{Slot: Green, Lightness: 0.82, Chroma: 0.17, Hue: GreenHue},
			{Slot: Yellow, Lightness: 0.88, Chroma: 0.17, Hue: YellowHue},
			{Slot: Blue, Lightness: 0.80, Chroma: 0.17, Hue: BlueHue},
			{Slot: Magenta, Lightness: 0.82, Chroma: 0.17, Hue: MagentaHue},
			{Slot: Cyan, Lightness: 0.84, Chroma: 0.17, Hue: CyanHue},
			{Slot: White, Lightness: 1.05, Chroma: 0.015, Hue: YellowHue},
			{Slot: Background, Lightness: 0.20, Chroma: 0.015, Hue: YellowHue},
			{Slot: Foreground, Lightness: 0.93, Chroma: 0.015, Hue: YellowHue},
			{Slot: BgVeryDark, Lightness: 0.15, Chroma: 0.02, Hue: YellowHue},
			{Slot: BgDark, Lightness: 0.24, Chroma: 0.02, Hue: YellowHue},
			{Slot: BgMedium, Lightness: 0.34, Chroma: 0.02, Hue: YellowHue},
			{Slot: BgLight, Lightness: 0.47, Chroma: 0.02, Hue: YellowHue},
			{Slot: BgVeryLight, Lightness: 0.62, Chroma: 0.02, Hue: YellowHue},
		},
	}
}

// Neutral returns a palette with untinted greys and no tint ladder
func Neutral() Table {
	return Table{
		Name: "neutral",
		Entries: []Entry{
			{Slot: Black, Lightness: 0.40, Chroma: 0, Hue: 0},
			{Slot: Red, Lightness: 0.78, Chroma: 0.22, Hue: RedHue},
			{Slot: Green, Lightness: 0.78, Chroma: 0.22, Hue: GreenHue},
			{Slot: Yellow, Lightness: 0.85, Chroma: 0.22, Hue: YellowHue},
			{Slot: Blue, Lightness: 0.76, Chroma: 0.22, Hue: BlueHue},
			{Slot: Magenta, Lightness: 0.78, Chroma: 0.22, Hue: MagentaHue},
			{Slot: Cyan, Lightness: 0.80, Chroma: 0.22, Hue: CyanHue},
			{Slot: White, Lightness: 1.05, Chroma: 0, Hue: 0},
			{Slot: Background, Lightness: 0.16, Chroma: 0, Hue: 0},
			{Slot: Foreground, Lightness: 0.90, Chroma: 0, Hue: 0},
		},
	}
}

var builtins = []func() Table{Default, Warm, Neutral}

// Available returns the names of the built-in palettes
func Available() []string {
	names := make([]string, 0, len(builtins))
	for _, fn := range builtins {
		names = append(names, fn().Name)
	}
	return names
}

// Get returns a fresh copy of a built-in palette by name
func Get(name string) (Table, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		key = DefaultName
	}
	for _, fn := range builtins {
		if t := fn(); t.Name == key {
			return t, nil
		}
	}

	if suggestions := Suggest(name); len(suggestions) > 0 {
		return Table{}, fmt.Errorf("%w %q (did you mean %s?)", ErrUnknownPalette, name, strings.Join(suggestions, ", "))
	}
	return Table{}, fmt.Errorf("%w %q (available: %s)", ErrUnknownPalette, name, strings.Join(Available(), ", "))
}

// Suggest returns built-in palette names that fuzzy-match the input, best first
func Suggest(name string) []string {
	matches := fuzzy.Find(strings.ToLower(name), Available())
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.Str)
	}
	return out
}
