// Package config loads and saves the example applications' settings.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/go-theft-auto/memedit"
)

// Editor holds the persisted editor options.
type Editor struct {
	RowLength     int                   `toml:"row_length"`
	PreviewFormat memedit.PreviewFormat `toml:"preview_format"`
	ShowASCII     bool                  `toml:"show_ascii"`
}

type Config struct {
	// Theme names a style preset: default, dark, light or gta.
	Theme   string `toml:"theme"`
	Verbose bool   `toml:"verbose"`
	Editor  Editor `toml:"editor"`
}

func DefaultConfig() *Config {
	cfg := &Config{Theme: "default"}
	cfg.SetOptions(memedit.DefaultOptions())
	return cfg
}

// Path returns ~/.config/memedit/memedit.toml, or memedit.toml in the
// working directory when there is no home directory.
func Path() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "memedit.toml"
	}
	return filepath.Join(home, ".config", "memedit", "memedit.toml")
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config to path, creating its directory.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return fmt.Errorf("encode config %s: %w", path, err)
	}
	return nil
}

// Options returns the editor options, normalized.
func (c *Config) Options() memedit.Options {
	return memedit.Options{
		RowLength:     c.Editor.RowLength,
		PreviewFormat: c.Editor.PreviewFormat,
		ShowASCII:     c.Editor.ShowASCII,
	}.Normalize()
}

// SetOptions stores opts in the editor section.
func (c *Config) SetOptions(opts memedit.Options) {
	c.Editor = Editor{
		RowLength:     opts.RowLength,
		PreviewFormat: opts.PreviewFormat,
		ShowASCII:     opts.ShowASCII,
	}
}

// Style returns the theme's style, falling back to the default preset
// for unknown names.
func (c *Config) Style() memedit.Style {
	if s, ok := memedit.StyleByName(c.Theme); ok {
		return s
	}
	return memedit.DefaultStyle()
}
