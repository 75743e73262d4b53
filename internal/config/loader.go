package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd
var osLookupEnv = os.LookupEnv

const (
	userConfigDir    = ".config/okterm"
	projectConfigDir = ".okterm"
	configFileName   = "config.yaml"
	dotEnvFileName   = ".env"
)

// Environment variables read by Load
const (
	EnvPalette   = "OKTERM_PALETTE"
	EnvGamut     = "OKTERM_GAMUT"
	EnvLogFile   = "OKTERM_LOG_FILE"
	EnvLogLevel  = "OKTERM_LOG_LEVEL"
	EnvLogFormat = "OKTERM_LOG_FORMAT"
)

// LoadOptions controls Load
type LoadOptions struct {
	// ExplicitPath is a config file that must exist; it overrides the user and
	// project files
	ExplicitPath string
}

// Load builds the okterm configuration by layering defaults, the user file,
// the project file, an explicit file and the environment. The result is not
// validated: callers apply their own overrides (CLI flags) and then call
// Validate.
func Load(opts LoadOptions) (Config, error) {
	config := Default()

	if userConfigPath, err := getUserConfigPath(); err == nil {
		if config, err = mergeFileIfExists(config, userConfigPath); err != nil {
			return Config{}, err
		}
	}

	if projectConfigPath, err := getProjectConfigPath(); err == nil {
		if config, err = mergeFileIfExists(config, projectConfigPath); err != nil {
			return Config{}, err
		}
	}

	if opts.ExplicitPath != "" {
		explicit, err := loadConfigFromFile(opts.ExplicitPath)
		if err != nil {
			return Config{}, fmt.Errorf("error loading config from %s: %w", opts.ExplicitPath, err)
		}
		config = mergeConfigs(config, explicit)
	}

	dotenv, err := readDotEnv()
	if err != nil {
		return Config{}, err
	}
	config = applyEnv(config, func(key string) (string, bool) {
		// Set-but-empty variables fall through to .env
		if v, ok := osLookupEnv(key); ok && v != "" {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	})

	return config, nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// UserConfigPath returns the location of the user configuration file
func UserConfigPath() (string, error) {
	return getUserConfigPath()
}

func mergeFileIfExists(base Config, path string) (Config, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return base, nil
	}
	overlay, err := loadConfigFromFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("error loading config from %s: %w", path, err)
	}
	return mergeConfigs(base, overlay), nil
}

// loadConfigFromFile loads a Config from a YAML file.
func loadConfigFromFile(filePath string) (Config, error) {
	var config Config
	data, err := os.ReadFile(filePath)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, err
	}
	return config, nil
}

// readDotEnv reads ./.env without modifying the process environment
func readDotEnv() (map[string]string, error) {
	wd, err := osGetwd()
	if err != nil {
		return nil, nil
	}
	path := filepath.Join(wd, dotEnvFileName)
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	values, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}
	return values, nil
}

func applyEnv(config Config, lookup func(string) (string, bool)) Config {
	set := func(dst *string, key string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	set(&config.Palette, EnvPalette)
	set(&config.Gamut, EnvGamut)
	set(&config.Logging.File, EnvLogFile)
	set(&config.Logging.Level, EnvLogLevel)
	set(&config.Logging.Format, EnvLogFormat)
	return config
}

// mergeConfigs merges 'overlay' config into 'base' config.
func mergeConfigs(base, overlay Config) Config {
	merged := base

	if overlay.Palette != "" {
		merged.Palette = overlay.Palette
	}
	if overlay.Gamut != "" {
		merged.Gamut = overlay.Gamut
	}

	if overlay.Metadata.Name != "" {
		merged.Metadata.Name = overlay.Metadata.Name
	}
	if overlay.Metadata.Author != "" {
		merged.Metadata.Author = overlay.Metadata.Author
	}
	if overlay.Metadata.OriginURL != "" {
		merged.Metadata.OriginURL = overlay.Metadata.OriginURL
	}
	if overlay.Metadata.WeztermVersion != "" {
		merged.Metadata.WeztermVersion = overlay.Metadata.WeztermVersion
	}
	if overlay.Metadata.Aliases != nil {
		merged.Metadata.Aliases = append([]string{}, overlay.Metadata.Aliases...)
	}

	// Overrides merge per slot and per component
	if len(base.Overrides) > 0 || len(overlay.Overrides) > 0 {
		merged.Overrides = make(map[string]OverrideConfig, len(base.Overrides)+len(overlay.Overrides))
		for slot, o := range base.Overrides {
			merged.Overrides[slot] = o
		}
		for slot, o := range overlay.Overrides {
			cur := merged.Overrides[slot]
			if o.L != nil {
				cur.L = o.L
			}
			if o.C != nil {
				cur.C = o.C
			}
			if o.H != nil {
				cur.H = o.H
			}
			merged.Overrides[slot] = cur
		}
	}

	if overlay.Logging.File != "" {
		merged.Logging.File = overlay.Logging.File
	}
	if overlay.Logging.Level != "" {
		merged.Logging.Level = overlay.Logging.Level
	}
	if overlay.Logging.Format != "" {
		merged.Logging.Format = overlay.Logging.Format
	}
	if overlay.Logging.MaxSizeMB != 0 {
		merged.Logging.MaxSizeMB = overlay.Logging.MaxSizeMB
	}
	if overlay.Logging.MaxBackups != 0 {
		merged.Logging.MaxBackups = overlay.Logging.MaxBackups
	}

	return merged
}
