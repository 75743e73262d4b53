package config

import (
	"github.com/renato0307/okterm/internal/color"
	"github.com/renato0307/okterm/internal/palette"
)

const (
	defaultSchemeName     = "okterm"
	defaultAuthor         = "okterm"
	defaultOriginURL      = "https://github.com/renato0307/okterm"
	defaultWeztermVersion = "Always"
)

// Default returns the built-in configuration every other layer is merged onto.
func Default() Config {
	return Config{
		Palette: palette.DefaultName,
		Gamut:   color.GamutChroma.String(),
		Metadata: MetadataConfig{
			Name:           defaultSchemeName,
			Author:         defaultAuthor,
			OriginURL:      defaultOriginURL,
			WeztermVersion: defaultWeztermVersion,
			Aliases:        []string{},
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "text",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}
