package render

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"github.com/renato0307/okterm/internal/color"
)

// OnColor renders text on c as background.
//
// True-color profiles get an SGR sequence built from the exact bytes of c.
// Lower profiles are degraded by lipgloss; plain writers get text unchanged.
func OnColor(r *lipgloss.Renderer, c color.RGB, text string) string {
	switch r.ColorProfile() {
	case termenv.TrueColor:
		return ansi.Style{}.BackgroundColor(sgrColor(c)).Styled(text)
	case termenv.Ascii:
		return text
	}
	return r.NewStyle().Background(lipgloss.Color(c.String())).Render(text)
}

// InColor renders text in c as foreground, with the same profile handling as
// OnColor
func InColor(r *lipgloss.Renderer, c color.RGB, text string) string {
	switch r.ColorProfile() {
	case termenv.TrueColor:
		return ansi.Style{}.ForegroundColor(sgrColor(c)).Styled(text)
	case termenv.Ascii:
		return text
	}
	return r.NewStyle().Foreground(lipgloss.Color(c.String())).Render(text)
}

func sgrColor(c color.RGB) ansi.RGBColor {
	return ansi.RGBColor{R: c.R, G: c.G, B: c.B}
}
