package render

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"

	"github.com/renato0307/okterm/internal/color"
	"github.com/renato0307/okterm/internal/theme"
)

// Metadata is the static descriptive part of a scheme file
type Metadata struct {
	Name           string
	Author         string
	OriginURL      string
	WeztermVersion string
	Aliases        []string
}

// WeztermScheme mirrors the layout of a WezTerm color scheme TOML file
type WeztermScheme struct {
	Colors   WeztermColors   `toml:"colors"`
	Metadata WeztermMetadata `toml:"metadata"`
}

// WeztermColors is the [colors] table
type WeztermColors struct {
	Ansi         []string `toml:"ansi"`
	Brights      []string `toml:"brights"`
	Background   string   `toml:"background"`
	Foreground   string   `toml:"foreground"`
	CursorBG     string   `toml:"cursor_bg"`
	CursorBorder string   `toml:"cursor_border"`
	CursorFG     string   `toml:"cursor_fg"`
	SelectionBG  string   `toml:"selection_bg"`
	SelectionFG  string   `toml:"selection_fg"`
}

// WeztermMetadata is the [metadata] table
type WeztermMetadata struct {
	Aliases        []string `toml:"aliases"`
	Author         string   `toml:"author"`
	Name           string   `toml:"name"`
	OriginURL      string   `toml:"origin_url"`
	WeztermVersion string   `toml:"wezterm_version"`
}

// NewWeztermScheme maps a Color Set onto the WezTerm schema
func NewWeztermScheme(set theme.ColorSet, meta Metadata) WeztermScheme {
	cursor, selection := set.Cursor(), set.Selection()
	return WeztermScheme{
		Colors: WeztermColors{
			Ansi:         hexList(set.ANSI()),
			Brights:      hexList(set.Brights()),
			Background:   set.Background().String(),
			Foreground:   set.Foreground().String(),
			CursorBG:     cursor.Background.String(),
			CursorBorder: cursor.Border.String(),
			CursorFG:     cursor.Foreground.String(),
			SelectionBG:  selection.Background.String(),
			SelectionFG:  selection.Foreground.String(),
		},
		Metadata: WeztermMetadata{
			Aliases:        append([]string{}, meta.Aliases...),
			Author:         meta.Author,
			Name:           meta.Name,
			OriginURL:      meta.OriginURL,
			WeztermVersion: meta.WeztermVersion,
		},
	}
}

// Wezterm writes the Color Set as a WezTerm color scheme
func Wezterm(w io.Writer, set theme.ColorSet, meta Metadata) error {
	if err := toml.NewEncoder(w).Encode(NewWeztermScheme(set, meta)); err != nil {
		return fmt.Errorf("failed to encode wezterm scheme: %w", err)
	}
	return nil
}

func hexList(colors [8]color.RGB) []string {
	out := make([]string, len(colors))
	for i, c := range colors {
		out[i] = c.String()
	}
	return out
}
