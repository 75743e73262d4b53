package config

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/renato0307/okterm/internal/color"
	"github.com/renato0307/okterm/internal/logging"
	"github.com/renato0307/okterm/internal/palette"
	"github.com/renato0307/okterm/internal/render"
)

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid configuration")

// Validate checks values that can be verified without resolving the palette.
func (c Config) Validate() error {
	if _, err := color.ParseGamutMode(c.Gamut); err != nil {
		return fmt.Errorf("%w: gamut: %v", ErrInvalidConfig, err)
	}
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: logging.level: %v", ErrInvalidConfig, err)
	}
	if _, err := logging.ParseFormat(c.Logging.Format); err != nil {
		return fmt.Errorf("%w: logging.format: %v", ErrInvalidConfig, err)
	}
	if c.Logging.MaxSizeMB < 0 || c.Logging.MaxBackups < 0 {
		return fmt.Errorf("%w: logging sizes must not be negative", ErrInvalidConfig)
	}

	seen := make(map[palette.Slot]string, len(c.Overrides))
	for _, name := range c.overrideNames() {
		slot, err := palette.ParseSlot(name)
		if err != nil {
			return fmt.Errorf("%w: overrides: %w: %v", ErrInvalidConfig, palette.ErrUnknownSlot, err)
		}
		if prev, dup := seen[slot]; dup {
			return fmt.Errorf("%w: overrides: %q and %q both name %s", ErrInvalidConfig, prev, name, slot)
		}
		seen[slot] = name

		o := c.Overrides[name]
		for _, v := range []*float64{o.L, o.C, o.H} {
			if v != nil && (math.IsNaN(*v) || math.IsInf(*v, 0)) {
				return fmt.Errorf("%w: overrides.%s: %w", ErrInvalidConfig, name, palette.ErrNonFinite)
			}
		}
	}
	return nil
}

// GamutMode returns the configured gamut mapping mode
func (c Config) GamutMode() (color.GamutMode, error) {
	return color.ParseGamutMode(c.Gamut)
}

// Table resolves the configured palette and applies the overrides.
func (c Config) Table() (palette.Table, error) {
	return c.TableFor(c.Palette)
}

// TableFor resolves a named built-in palette and applies the configured
// overrides to it.
func (c Config) TableFor(name string) (palette.Table, error) {
	table, err := palette.Get(name)
	if err != nil {
		return palette.Table{}, err
	}

	entries := make([]palette.Entry, 0, len(c.Overrides))
	for _, key := range c.overrideNames() {
		slot, err := palette.ParseSlot(key)
		if err != nil {
			return palette.Table{}, fmt.Errorf("%w: %v", palette.ErrUnknownSlot, err)
		}
		o := c.Overrides[key]

		entry, ok := table.Lookup(slot)
		if !ok {
			if o.L == nil || o.C == nil || o.H == nil {
				return palette.Table{}, fmt.Errorf("%w: override for %s must set l, c and h because palette %s does not define it",
					ErrInvalidConfig, slot, table.Name)
			}
			entry = palette.Entry{Slot: slot}
		}
		if o.L != nil {
			entry.Lightness = *o.L
		}
		if o.C != nil {
			entry.Chroma = *o.C
		}
		if o.H != nil {
			entry.Hue = *o.H
		}
		entries = append(entries, entry)
		logging.Debug("palette override applied",
			"palette", table.Name, "slot", slot.String(),
			"l", entry.Lightness, "c", entry.Chroma, "h", entry.Hue)
	}

	if len(entries) == 0 {
		return table, nil
	}
	table = table.With(entries...)
	if err := table.Validate(); err != nil {
		return palette.Table{}, err
	}
	return table, nil
}

// LoggerConfig converts the logging section for logging.Init
func (c Config) LoggerConfig() (logging.Config, error) {
	level, err := logging.ParseLevel(c.Logging.Level)
	if err != nil {
		return logging.Config{}, err
	}
	format, err := logging.ParseFormat(c.Logging.Format)
	if err != nil {
		return logging.Config{}, err
	}
	return logging.Config{
		FilePath:   c.Logging.File,
		Level:      level,
		Format:     format,
		MaxSizeMB:  c.Logging.MaxSizeMB,
		MaxBackups: c.Logging.MaxBackups,
	}, nil
}

// overrideNames returns the override keys in a stable order
func (c Config) overrideNames() []string {
	names := make([]string, 0, len(c.Overrides))
	for name := range c.Overrides {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SchemeMetadata returns the static metadata written into generated schemes
func (c Config) SchemeMetadata() render.Metadata {
	return render.Metadata{
		Name:           c.Metadata.Name,
		Author:         c.Metadata.Author,
		OriginURL:      c.Metadata.OriginURL,
		WeztermVersion: c.Metadata.WeztermVersion,
		Aliases:        append([]string{}, c.Metadata.Aliases...),
	}
}
