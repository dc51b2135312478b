// seehuhn.de/go/minicad - a minimal raster drawing tool
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.
package session

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"seehuhn.de/go/minicad"
	"seehuhn.de/go/minicad/export"
)

// ErrInvalidConfig is returned for configuration values outside their
// allowed range.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the startup state of a [Session].
type Config struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`

	Tool      minicad.Tool  `toml:"tool"`
	Color     minicad.Color `toml:"color"`
	Thickness int           `toml:"thickness"`

	Grid        bool `toml:"grid"`
	Axes        bool `toml:"axes"`
	GridSpacing int  `toml:"grid_spacing"`

	// Export is the file written by the export key and menu entry.  The
	// format is chosen by the extension.
	Export  string         `toml:"export"`
	Scale   int            `toml:"scale"`
	PDFMode export.PDFMode `toml:"pdf_mode"`
}

// DefaultConfig returns an 800×600 canvas with grid and axes shown, and a
// black one pixel line tool.  Exports go to "canvas.ppm".
func DefaultConfig() Config {
	return Config{
		Width:       800,
		Height:      600,
		Tool:        minicad.ToolLineDirect,
		Color:       minicad.Black,
		Thickness:   1,
		Grid:        true,
		Axes:        true,
		GridSpacing: 20,
		Export:      "canvas.ppm",
		Scale:       1,
		PDFMode:     export.PixelMode,
	}
}

// LoadConfig reads a TOML configuration file.  Keys missing from the file
// keep their values from [DefaultConfig].
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()

	cfg, err := DecodeConfig(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// DecodeConfig reads a TOML configuration.  Unknown keys are an error.
func DecodeConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return Config{}, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("unknown key %q: %w", undecoded[0].String(), ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that all values are in range.
func (c *Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("canvas size %dx%d: %w", c.Width, c.Height, ErrInvalidConfig)
	case c.Thickness < 1:
		return fmt.Errorf("thickness %d: %w", c.Thickness, ErrInvalidConfig)
	case c.GridSpacing < 1:
		return fmt.Errorf("grid spacing %d: %w", c.GridSpacing, ErrInvalidConfig)
	case c.Scale < 1:
		return fmt.Errorf("scale %d: %w", c.Scale, ErrInvalidConfig)
	}
	if _, err := export.FormatFromPath(c.Export); err != nil {
		return err
	}
	return nil
}
