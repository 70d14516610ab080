package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cardsmith/deckboxdiff/deckfile"
	"github.com/pelletier/go-toml/v2"
)

// configFileName is searched in the working directory and then the home
// directory when no explicit path is given.
const configFileName = ".dbd.toml"

// Config represents the application configuration.
type Config struct {
	Display DisplayConfig `toml:"display"`
	Ingest  IngestConfig  `toml:"ingest"`
}

// DisplayConfig contains output settings.
type DisplayConfig struct {
	// NumberPad is the zero-pad width for numeric card numbers in listings.
	NumberPad int `toml:"number_pad"`
	// ShowPrice makes the diff command include pricing without -p.
	ShowPrice bool `toml:"show_price"`
}

// IngestConfig contains export-file reading settings.
type IngestConfig struct {
	// Cleanups are extra mojibake substitutions for the Name column of
	// XLSX exports, on top of the built-in ones.
	Cleanups []CleanupConfig `toml:"cleanups"`
}

// CleanupConfig is one text substitution.
type CleanupConfig struct {
	From string `toml:"from"`
	To   string `toml:"to"`
}

func (c IngestConfig) cleanups() []deckfile.Cleanup {
	out := make([]deckfile.Cleanup, 0, len(c.Cleanups))
	for _, s := range c.Cleanups {
		out = append(out, deckfile.Cleanup{From: s.From, To: s.To})
	}
	return out
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Display: DisplayConfig{NumberPad: 3},
	}
}

// LoadConfig reads the configuration from path, or from the default
// locations when path is empty. A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = findConfigFile()
		if path == "" {
			return DefaultConfig(), nil
		}
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read config file %q: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("cannot parse config file %q: %w", path, err)
	}
	if cfg.Display.NumberPad < 0 {
		return nil, fmt.Errorf("config file %q: number_pad must not be negative", path)
	}
	return cfg, nil
}

func findConfigFile() string {
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName
	}
	if home, err := os.UserHomeDir(); err == nil {
		path := filepath.Join(home, configFileName)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
