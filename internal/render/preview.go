// Package render turns a Color Set into terminal previews and color-scheme files.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/renato0307/okterm/internal/color"
	"github.com/renato0307/okterm/internal/palette"
	"github.com/renato0307/okterm/internal/theme"
)

// nameWidth pads swatch labels so the hex codes line up. Longer names keep
// one space before the hex code.
const nameWidth = 10

// PreviewOptions controls how the preview is rendered
type PreviewOptions struct {
	// ForceColor renders true-color escapes even when w is not a terminal
	ForceColor bool
}

// Swatch is one labeled color in the preview
type Swatch struct {
	Name  string
	Color color.RGB
}

// PreviewSwatches lists the preview rows in display order:
// fg, bg, the 8 normal accents, the 8 brights (suffixed "b"), then any tint tiers.
func PreviewSwatches(set theme.ColorSet) []Swatch {
	out := []Swatch{
		{Name: "fg", Color: set.Foreground()},
		{Name: "bg", Color: set.Background()},
	}

	ansi, brights := set.ANSI(), set.Brights()
	for i, slot := range palette.Accents() {
		out = append(out, Swatch{Name: slot.String(), Color: ansi[i]})
	}
	for i, slot := range palette.Accents() {
		out = append(out, Swatch{Name: slot.String() + "b", Color: brights[i]})
	}
	for _, tier := range set.Tiers() {
		out = append(out, Swatch{Name: tier.Slot.String(), Color: tier.Normal})
	}
	return out
}

// NewRenderer returns a lipgloss renderer for w, optionally forced to true color
func NewRenderer(w io.Writer, opts PreviewOptions) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	if opts.ForceColor {
		r.SetColorProfile(termenv.TrueColor)
	}
	return r
}

// Preview writes two lines per swatch: the label and hex code rendered on the
// color as background, then in the color as foreground
func Preview(w io.Writer, set theme.ColorSet, opts PreviewOptions) error {
	r := NewRenderer(w, opts)

	var b strings.Builder
	for _, sw := range PreviewSwatches(set) {
		label := fmt.Sprintf("%-*s %s", nameWidth-1, sw.Name, sw.Color)

		b.WriteString(OnColor(r, sw.Color, label))
		b.WriteByte('\n')
		b.WriteString(InColor(r, sw.Color, label))
		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Strip renders the 8 normal and 8 bright colors as two rows of blocks
func Strip(r *lipgloss.Renderer, set theme.ColorSet, blockWidth int) string {
	block := strings.Repeat(" ", blockWidth)
	row := func(colors [8]color.RGB) string {
		var b strings.Builder
		for _, c := range colors {
			b.WriteString(OnColor(r, c, block))
		}
		return b.String()
	}
	return row(set.ANSI()) + "\n" + row(set.Brights())
}
