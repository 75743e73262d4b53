// Package tui is the interactive preview: it shows the generated Color Set
// and lets the user switch palettes and gamut modes and copy the result.
package tui

import (
	"bytes"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/okterm/internal/clipboard"
	"github.com/renato0307/okterm/internal/color"
	"github.com/renato0307/okterm/internal/config"
	"github.com/renato0307/okterm/internal/logging"
	"github.com/renato0307/okterm/internal/palette"
	"github.com/renato0307/okterm/internal/render"
	"github.com/renato0307/okterm/internal/theme"
	"github.com/renato0307/okterm/internal/ui"
)

// CopyFunc copies text to the clipboard and returns a confirmation message
type CopyFunc func(what, text string) (string, error)

// Option configures a Model
type Option func(*Model)

// WithCopyFunc replaces the clipboard writer
func WithCopyFunc(fn CopyFunc) Option {
	return func(m *Model) { m.copy = fn }
}

// Model is the bubbletea model of the interactive preview
type Model struct {
	cfg      config.Config
	palettes []string
	index    int
	gamut    color.GamutMode

	set   theme.ColorSet
	theme *ui.Theme

	keys     KeyMap
	help     help.Model
	copy     CopyFunc
	width    int
	height   int
	message  string
	msgType  ui.MessageType
	quitting bool
}

// New builds the model for the palette and gamut mode named in cfg
func New(cfg config.Config, opts ...Option) (Model, error) {
	gamut, err := cfg.GamutMode()
	if err != nil {
		return Model{}, err
	}

	m := Model{
		cfg:      cfg,
		palettes: palette.Available(),
		gamut:    gamut,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		copy:     clipboard.Copy,
		width:    80,
	}
	for _, opt := range opts {
		opt(&m)
	}

	// Normalised the same way palette.Get does
	name := strings.ToLower(strings.TrimSpace(cfg.Palette))
	if name == "" {
		name = palette.DefaultName
	}
	m.index = -1
	for i, p := range m.palettes {
		if p == name {
			m.index = i
		}
	}
	if m.index < 0 {
		// Let palette.Get produce the error with suggestions
		if _, err := palette.Get(name); err != nil {
			return Model{}, err
		}
		m.index = 0
	}

	if err := m.regenerate(); err != nil {
		return Model{}, err
	}
	return m, nil
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Next):
			m.switchPalette(1)
		case key.Matches(msg, m.keys.Prev):
			m.switchPalette(-1)
		case key.Matches(msg, m.keys.Gamut):
			m.toggleGamut()
		case key.Matches(msg, m.keys.Copy):
			m.copyScheme()
		}
	}
	return m, nil
}

// PaletteName returns the palette currently shown
func (m Model) PaletteName() string {
	return m.palettes[m.index]
}

// Gamut returns the gamut mode currently applied
func (m Model) Gamut() color.GamutMode {
	return m.gamut
}

// ColorSet returns the Color Set currently shown
func (m Model) ColorSet() theme.ColorSet {
	return m.set
}

// Message returns the status line text
func (m Model) Message() string {
	return m.message
}

func (m *Model) regenerate() error {
	name := m.palettes[m.index]
	table, err := m.cfg.TableFor(name)
	if err != nil {
		return err
	}

	var set theme.ColorSet
	engine := theme.NewEngine(theme.WithGamut(m.gamut))
	logging.Time("generate color set", func() {
		set, err = engine.Generate(table)
	})
	if err != nil {
		return err
	}

	m.set = set
	m.theme = ui.NewTheme(set)
	logging.Debug("tui palette shown", "palette", name, "gamut", m.gamut.String())
	return nil
}

func (m *Model) switchPalette(delta int) {
	prev := m.index
	n := len(m.palettes)
	m.index = ((m.index+delta)%n + n) % n

	if err := m.regenerate(); err != nil {
		m.index = prev
		m.setMessage(err.Error(), ui.MessageTypeError)
		return
	}
	m.setMessage("palette "+m.PaletteName(), ui.MessageTypeInfo)
}

func (m *Model) toggleGamut() {
	prev := m.gamut
	if m.gamut == color.GamutChroma {
		m.gamut = color.GamutClip
	} else {
		m.gamut = color.GamutChroma
	}

	if err := m.regenerate(); err != nil {
		m.gamut = prev
		m.setMessage(err.Error(), ui.MessageTypeError)
		return
	}
	m.setMessage("gamut mode "+m.gamut.String(), ui.MessageTypeInfo)
}

func (m *Model) copyScheme() {
	var buf bytes.Buffer
	if err := render.Wezterm(&buf, m.set, m.cfg.SchemeMetadata()); err != nil {
		m.setMessage(err.Error(), ui.MessageTypeError)
		return
	}

	msg, err := m.copy("WezTerm scheme", buf.String())
	if errors.Is(err, clipboard.ErrUnsupported) {
		logging.Warn("clipboard unavailable", "error", err)
		m.setMessage(err.Error(), ui.MessageTypeWarning)
		return
	}
	if err != nil {
		logging.Warn("clipboard copy failed", "error", err)
		m.setMessage(err.Error(), ui.MessageTypeError)
		return
	}
	m.setMessage(msg, ui.MessageTypeSuccess)
}

func (m *Model) setMessage(text string, t ui.MessageType) {
	m.message, m.msgType = text, t
}

// View implements tea.Model
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	t := m.theme
	title := header{
		palette:  m.PaletteName(),
		gamut:    m.gamut,
		position: m.index + 1,
		total:    len(m.palettes),
		width:    m.width,
		theme:    t,
	}.View()

	r := lipgloss.DefaultRenderer()
	var rows []string
	for _, sw := range render.PreviewSwatches(m.set) {
		block := render.OnColor(r, sw.Color, "    ")
		name := t.Label.Render(sw.Name)
		hex := render.InColor(r, sw.Color, sw.Color.String())
		rows = append(rows, block+" "+name+hex)
	}
	swatches := t.Panel.Render(strings.Join(rows, "\n"))

	strip := render.Strip(r, m.set, 4)

	sections := []string{title, "", swatches, "", strip, ""}
	if m.message != "" {
		sections = append(sections, ui.RenderMessage(m.message, m.msgType, t, m.width))
	}
	sections = append(sections, t.StatusBar.Render(m.help.View(m.keys)))

	return strings.Join(sections, "\n")
}
