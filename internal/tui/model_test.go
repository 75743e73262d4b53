package tui

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/okterm/internal/clipboard"
	"github.com/renato0307/okterm/internal/color"
	"github.com/renato0307/okterm/internal/config"
	"github.com/renato0307/okterm/internal/palette"
	"github.com/renato0307/okterm/internal/render"
	"github.com/renato0307/okterm/internal/ui"
)

type copyRecorder struct {
	what, text string
	err        error
}

func (r *copyRecorder) copy(what, text string) (string, error) {
	r.what, r.text = what, text
	if r.err != nil {
		return "", r.err
	}
	return what + " copied", nil
}

func newModel(t *testing.T, mutate func(*config.Config), opts ...Option) Model {
	t.Helper()
	cfg := config.Default()
	if mutate != nil {
		mutate(&cfg)
	}
	m, err := New(cfg, opts...)
	require.NoError(t, err)
	return m
}

func press(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	next, ok := updated.(Model)
	require.True(t, ok)
	return next, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNew(t *testing.T) {
	m := newModel(t, func(c *config.Config) { c.Palette = "Warm"; c.Gamut = "clip" })
	assert.Equal(t, "warm", m.PaletteName())
	assert.Equal(t, color.GamutClip, m.Gamut())
	assert.Equal(t, "warm", m.ColorSet().Palette())
	assert.Nil(t, m.Init())
}

func TestNew_NormalisesPaletteName(t *testing.T) {
	for _, name := range []string{" warm ", "WARM", "\twarm\n"} {
		m := newModel(t, func(c *config.Config) { c.Palette = name })
		assert.Equal(t, "warm", m.PaletteName(), "palette %q", name)
	}

	m := newModel(t, func(c *config.Config) { c.Palette = "  " })
	assert.Equal(t, palette.DefaultName, m.PaletteName())
}

func TestNew_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
		target error
	}{
		{name: "unknown palette", mutate: func(c *config.Config) { c.Palette = "solarized" }, target: palette.ErrUnknownPalette},
		{name: "unknown gamut", mutate: func(c *config.Config) { c.Gamut = "lab" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(&cfg)
			_, err := New(cfg)
			require.Error(t, err)
			if tt.target != nil {
				assert.True(t, errors.Is(err, tt.target))
			}
		})
	}
}

func TestUpdate_CyclesPalettes(t *testing.T) {
	m := newModel(t, nil)
	names := palette.Available()
	require.Equal(t, names[0], m.PaletteName())

	for i := 1; i <= len(names); i++ {
		m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
		assert.Equal(t, names[i%len(names)], m.PaletteName())
		assert.Equal(t, m.PaletteName(), m.ColorSet().Palette())
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, names[len(names)-1], m.PaletteName(), "shift+tab wraps backwards")
	assert.Equal(t, "palette "+names[len(names)-1], m.Message())
}

func TestUpdate_SwitchFailureKeepsPalette(t *testing.T) {
	// A partial tier override cannot apply to a palette without tiers
	m := newModel(t, func(c *config.Config) {
		l := 0.2
		c.Overrides = map[string]config.OverrideConfig{"bg-dark": {L: &l}}
	})

	before := m.ColorSet()
	for m.PaletteName() != "warm" {
		m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	}
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})

	assert.Equal(t, "warm", m.PaletteName())
	assert.Contains(t, m.Message(), "bg-dark")
	assert.NotEqual(t, before.Palette(), m.ColorSet().Palette())
}

func TestUpdate_ToggleGamut(t *testing.T) {
	m := newModel(t, nil)
	require.Equal(t, color.GamutChroma, m.Gamut())

	m, _ = press(t, m, runes("g"))
	assert.Equal(t, color.GamutClip, m.Gamut())
	assert.Equal(t, color.GamutClip, m.ColorSet().Gamut())
	assert.Equal(t, "gamut mode clip", m.Message())

	m, _ = press(t, m, runes("g"))
	assert.Equal(t, color.GamutChroma, m.Gamut())
}

func TestUpdate_Copy(t *testing.T) {
	rec := &copyRecorder{}
	m := newModel(t, nil, WithCopyFunc(rec.copy))

	m, _ = press(t, m, runes("c"))

	assert.Equal(t, "WezTerm scheme", rec.what)
	assert.Contains(t, rec.text, "[colors]")
	for _, c := range m.ColorSet().ANSI() {
		assert.Contains(t, rec.text, c.String())
	}
	assert.Equal(t, "WezTerm scheme copied", m.Message())
	assert.Contains(t, m.View(), "WezTerm scheme copied")
}

func TestUpdate_CopyError(t *testing.T) {
	rec := &copyRecorder{err: errors.New("no clipboard")}
	m := newModel(t, nil, WithCopyFunc(rec.copy))

	m, _ = press(t, m, runes("c"))
	assert.Equal(t, "no clipboard", m.Message())
	assert.Equal(t, ui.MessageTypeError, m.msgType)
}

func TestUpdate_CopyUnsupportedIsWarning(t *testing.T) {
	rec := &copyRecorder{err: clipboard.ErrUnsupported}
	m := newModel(t, nil, WithCopyFunc(rec.copy))

	m, _ = press(t, m, runes("c"))
	assert.Equal(t, clipboard.ErrUnsupported.Error(), m.Message())
	assert.Equal(t, ui.MessageTypeWarning, m.msgType)
}

func TestUpdate_HelpAndQuit(t *testing.T) {
	m := newModel(t, nil)

	short := m.View()
	assert.Contains(t, short, "next palette")
	assert.NotContains(t, short, "previous palette")

	m, _ = press(t, m, runes("?"))
	assert.Contains(t, m.View(), "previous palette")

	m, cmd := press(t, m, runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Empty(t, m.View())
}

func TestUpdate_WindowSize(t *testing.T) {
	m := newModel(t, nil)
	updated, cmd := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Nil(t, cmd)
	assert.Equal(t, 120, updated.(Model).width)
	assert.Equal(t, 40, updated.(Model).height)
}

func TestView_ListsSwatches(t *testing.T) {
	m := newModel(t, nil)
	view := m.View()

	assert.Contains(t, view, "okterm")
	assert.Contains(t, view, "gamut: chroma")
	for _, sw := range render.PreviewSwatches(m.ColorSet()) {
		assert.Contains(t, view, sw.Name)
		assert.Contains(t, view, sw.Color.String())
	}
	assert.True(t, strings.Contains(view, "(1/3)"))
}

func TestView_TrueColorSwatchesUseExactBytes(t *testing.T) {
	r := lipgloss.DefaultRenderer()
	prev := r.ColorProfile()
	r.SetColorProfile(termenv.TrueColor)
	t.Cleanup(func() { r.SetColorProfile(prev) })

	m := newModel(t, nil)
	view := m.View()
	for _, sw := range render.PreviewSwatches(m.ColorSet()) {
		c := sw.Color
		assert.Contains(t, view, fmt.Sprintf("48;2;%d;%d;%d", c.R, c.G, c.B), "block for %s", sw.Name)
		assert.Contains(t, view, fmt.Sprintf("38;2;%d;%d;%dm%s", c.R, c.G, c.B, c), "hex for %s", sw.Name)
	}
}

func TestKeyMap_Help(t *testing.T) {
	keys := DefaultKeyMap()
	assert.Len(t, keys.ShortHelp(), 5)

	full := keys.FullHelp()
	require.Len(t, full, 3)
	for i, group := range full {
		assert.NotEmpty(t, group, "group %d", i)
	}
}

func TestHeader_PushesRightSide(t *testing.T) {
	m := newModel(t, nil)
	h := header{palette: "default", gamut: color.GamutChroma, position: 1, total: 3, width: 60, theme: m.theme}

	view := h.View()
	assert.Equal(t, 60, lipgloss.Width(view))
	assert.True(t, strings.HasSuffix(strings.TrimRight(view, " "), "(1/3)"))

	// Narrow widths still keep one space between the sides
	h.width = 5
	assert.Contains(t, h.View(), "default  gamut: chroma")
}
