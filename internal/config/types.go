package config

// Config is the top-level configuration structure for okterm.
type Config struct {
	Palette   string                    `yaml:"palette,omitempty"`
	Gamut     string                    `yaml:"gamut,omitempty"` // "chroma" or "clip"
	Metadata  MetadataConfig            `yaml:"metadata,omitempty"`
	Overrides map[string]OverrideConfig `yaml:"overrides,omitempty"` // keyed by slot name, e.g. "red", "bg-dark"
	Logging   LoggingConfig             `yaml:"logging,omitempty"`
}

// MetadataConfig is copied into the [metadata] table of generated schemes.
type MetadataConfig struct {
	Name           string   `yaml:"name,omitempty"`
	Author         string   `yaml:"author,omitempty"`
	OriginURL      string   `yaml:"origin_url,omitempty"`
	WeztermVersion string   `yaml:"wezterm_version,omitempty"`
	Aliases        []string `yaml:"aliases,omitempty"`
}

// OverrideConfig adjusts the OkLCh coordinates of one palette slot.
// Nil fields keep the palette's value.
type OverrideConfig struct {
	L *float64 `yaml:"l,omitempty"`
	C *float64 `yaml:"c,omitempty"`
	H *float64 `yaml:"h,omitempty"`
}

// LoggingConfig controls the optional log file.
type LoggingConfig struct {
	File       string `yaml:"file,omitempty"` // empty disables logging
	Level      string `yaml:"level,omitempty"`
	Format     string `yaml:"format,omitempty"`
	MaxSizeMB  int    `yaml:"maxSizeMB,omitempty"`
	MaxBackups int    `yaml:"maxBackups,omitempty"`
}
