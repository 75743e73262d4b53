package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"sigs.k8s.io/yaml"

	"github.com/renato0307/okterm/internal/theme"
)

// Format is an output format for a Color Set
type Format string

const (
	FormatWezterm Format = "wezterm"
	FormatJSON    Format = "json"
	FormatYAML    Format = "yaml"
)

// Formats lists the supported output formats
func Formats() []Format {
	return []Format{FormatWezterm, FormatJSON, FormatYAML}
}

// ParseFormat converts a format name to a Format
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "wezterm", "toml":
		return FormatWezterm, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown format %q (want wezterm, json or yaml)", s)
	}
}

// Document is the generic serialized form of a Color Set
type Document struct {
	Name       string            `json:"name"`
	Palette    string            `json:"palette"`
	Gamut      string            `json:"gamut"`
	Ansi       []string          `json:"ansi"`
	Brights    []string          `json:"brights"`
	Background string            `json:"background"`
	Foreground string            `json:"foreground"`
	Cursor     CursorDocument    `json:"cursor"`
	Selection  SelectionDocument `json:"selection"`
	Tiers      map[string]string `json:"tiers,omitempty"`
}

// CursorDocument holds the cursor roles
type CursorDocument struct {
	Background string `json:"background"`
	Border     string `json:"border"`
	Foreground string `json:"foreground"`
}

// SelectionDocument holds the selection roles
type SelectionDocument struct {
	Background string `json:"background"`
	Foreground string `json:"foreground"`
}

// NewDocument builds the generic document for a Color Set
func NewDocument(set theme.ColorSet, meta Metadata) Document {
	cursor, selection := set.Cursor(), set.Selection()
	doc := Document{
		Name:       meta.Name,
		Palette:    set.Palette(),
		Gamut:      set.Gamut().String(),
		Ansi:       hexList(set.ANSI()),
		Brights:    hexList(set.Brights()),
		Background: set.Background().String(),
		Foreground: set.Foreground().String(),
		Cursor: CursorDocument{
			Background: cursor.Background.String(),
			Border:     cursor.Border.String(),
			Foreground: cursor.Foreground.String(),
		},
		Selection: SelectionDocument{
			Background: selection.Background.String(),
			Foreground: selection.Foreground.String(),
		},
	}

	if tiers := set.Tiers(); len(tiers) > 0 {
		doc.Tiers = make(map[string]string, len(tiers))
		for _, t := range tiers {
			doc.Tiers[t.Slot.String()] = t.Normal.String()
		}
	}
	return doc
}

// Export writes the Color Set in the requested format
func Export(w io.Writer, set theme.ColorSet, format Format, meta Metadata) error {
	switch format {
	case FormatWezterm:
		return Wezterm(w, set, meta)
	case FormatJSON:
		data, err := json.MarshalIndent(NewDocument(set, meta), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		_, err = w.Write(append(data, '\n'))
		return err
	case FormatYAML:
		data, err := yaml.Marshal(NewDocument(set, meta))
		if err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		_, err = w.Write(data)
		return err
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}
