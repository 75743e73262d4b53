// Package ui holds the lipgloss styles of the interactive preview and the
// colored notices printed by the CLI.
package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/okterm/internal/color"
	"github.com/renato0307/okterm/internal/palette"
	"github.com/renato0307/okterm/internal/theme"
)

// Theme defines the colors and styles of the TUI. Unlike a fixed theme, it
// is derived from the Color Set being previewed, so the chrome changes with
// the palette.
type Theme struct {
	Name string

	// Core colors
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Accent     lipgloss.Color
	Foreground lipgloss.Color
	Background lipgloss.Color
	Muted      lipgloss.Color
	Error      lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color

	// UI element colors, taken from the tint tiers when the palette has them
	Border  lipgloss.Color // panel borders
	Dimmed  lipgloss.Color // key hints
	Subtle  lipgloss.Color // status bar background
	Surface lipgloss.Color // panel background

	// Message colors
	MessageSuccess lipgloss.Color
	MessageWarning lipgloss.Color
	MessageError   lipgloss.Color
	MessageInfo    lipgloss.Color

	// Component styles
	AppTitle  lipgloss.Style
	Header    lipgloss.Style
	Highlight lipgloss.Style
	Label     lipgloss.Style
	Panel     lipgloss.Style
	StatusBar lipgloss.Style
}

// NewTheme derives the TUI theme from a Color Set
func NewTheme(set theme.ColorSet) *Theme {
	ansi, brights := set.ANSI(), set.Brights()
	c := func(rgb color.RGB) lipgloss.Color { return lipgloss.Color(rgb.String()) }

	t := &Theme{Name: set.Palette()}

	t.Primary = c(brights[palette.Blue])
	t.Secondary = c(brights[palette.Cyan])
	t.Accent = c(brights[palette.Magenta])
	t.Foreground = c(set.Foreground())
	t.Background = c(set.Background())
	t.Error = c(brights[palette.Red])
	t.Success = c(brights[palette.Green])
	t.Warning = c(brights[palette.Yellow])
	t.Muted = c(set.Tier(palette.BgVeryLight, ansi[palette.White]))

	t.Border = c(set.Tier(palette.BgMedium, brights[palette.Black]))
	t.Dimmed = c(set.Tier(palette.BgLight, ansi[palette.White]))
	t.Subtle = c(set.Tier(palette.BgDark, ansi[palette.Black]))
	t.Surface = c(set.Tier(palette.BgVeryDark, set.Background()))

	t.MessageSuccess = t.Success
	t.MessageWarning = t.Warning
	t.MessageError = t.Error
	t.MessageInfo = t.Secondary

	t.AppTitle = lipgloss.NewStyle().
		Foreground(t.Background).
		Background(t.Primary).
		Bold(true).
		Padding(0, 1)

	t.Header = lipgloss.NewStyle().
		Foreground(t.Primary).
		Bold(true)

	t.Highlight = lipgloss.NewStyle().
		Foreground(t.Accent)

	t.Label = lipgloss.NewStyle().
		Foreground(t.Foreground).
		Width(15)

	t.Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Background(t.Surface).
		Padding(0, 1)

	t.StatusBar = lipgloss.NewStyle().
		Foreground(t.Muted).
		Background(t.Subtle).
		Padding(0, 1)

	return t
}
