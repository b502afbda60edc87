// Package toml loads user configuration using the BurntSushi TOML
// decoder.
package toml

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/fwojciec/diffshot"
)

// Config holds the user-tunable render defaults. Zero values mean "not
// set" and fall back to the built-in defaults, so a partial file only
// overrides what it names.
type Config struct {
	FontSize        int   `toml:"font_size"`
	Width           int   `toml:"width"`
	DarkMode        *bool `toml:"dark_mode"`
	ShowLineNumbers *bool `toml:"line_numbers"`
}

// LoadConfig reads the config file at path. A missing file is not an
// error: it returns the zero Config and the built-in defaults apply.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("loading config %s: %w", path, err)
	}
	return cfg, nil
}

// Apply overlays the config onto opts and returns the result.
func (c Config) Apply(opts diffshot.RenderOptions) diffshot.RenderOptions {
	if c.FontSize > 0 {
		opts.FontSize = c.FontSize
	}
	if c.Width > 0 {
		opts.Width = c.Width
	}
	if c.DarkMode != nil {
		opts.DarkMode = *c.DarkMode
	}
	if c.ShowLineNumbers != nil {
		opts.ShowLineNumbers = *c.ShowLineNumbers
	}
	return opts
}
