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

package minicad

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// Color is an opaque RGB color.  Each channel is an intensity in the range
// [0, 1].
//
// Color implements [color.Color].
type Color struct {
	R, G, B float64
}

// The colors of the drawing palette, and the colors used for the
// background grid and the coordinate axes.
var (
	Black = Color{0, 0, 0}
	White = Color{1, 1, 1}
	Red   = Color{1, 0, 0}
	Green = Color{0, 1, 0}
	Blue  = Color{0, 0, 1}

	GridGray = Color{0.85, 0.85, 0.85}
	AxisGray = Color{0.6, 0.6, 0.6}
)

// ErrUnknownColor is returned by [ParseColor] for strings which are neither
// a palette name nor a hex color.
var ErrUnknownColor = errors.New("unknown color")

var paletteNames = []struct {
	name string
	c    Color
}{
	{"black", Black},
	{"white", White},
	{"red", Red},
	{"green", Green},
	{"blue", Blue},
}

// ParseColor converts a palette name ("black", "red", ...) or a hex string
// of the form "#rgb" or "#rrggbb" into a Color.
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, p := range paletteNames {
		if s == p.name {
			return p.c, nil
		}
	}

	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return Color{}, fmt.Errorf("%q: %w", s, ErrUnknownColor)
	}
	var digits [3]string
	switch len(hex) {
	case 3:
		for i := range 3 {
			digits[i] = strings.Repeat(hex[i:i+1], 2)
		}
	case 6:
		for i := range 3 {
			digits[i] = hex[2*i : 2*i+2]
		}
	default:
		return Color{}, fmt.Errorf("%q: %w", s, ErrUnknownColor)
	}

	var ch [3]float64
	for i, d := range digits {
		v, err := strconv.ParseUint(d, 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("%q: %w", s, ErrUnknownColor)
		}
		ch[i] = float64(v) / 255
	}
	return Color{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// String returns the palette name of c, or its "#rrggbb" form.
func (c Color) String() string {
	for _, p := range paletteNames {
		if c == p.c {
			return p.name
		}
	}
	n := c.NRGBA()
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}

// NRGBA converts c to 8-bit channels.  Out-of-range intensities are
// clamped.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: to8(c.R),
		G: to8(c.G),
		B: to8(c.B),
		A: 255,
	}
}

// RGBA implements the [color.Color] interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// MarshalText implements [encoding.TextMarshaler].
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler], using [ParseColor].
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func to8(v float64) uint8 {
	return uint8(math.Round(max(0, min(1, v)) * 255))
}
