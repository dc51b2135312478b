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
	"image"
	"math"
	"strings"
)

// Tool selects the kind of shape created by [Place].
type Tool int

const (
	ToolLineDirect Tool = iota
	ToolLineDDA
	ToolCircle
	ToolEllipse
)

// ErrUnknownTool is returned by [ParseTool] for unrecognised tool names.
var ErrUnknownTool = errors.New("unknown tool")

var toolNames = [...]string{
	ToolLineDirect: "line-direct",
	ToolLineDDA:    "line-dda",
	ToolCircle:     "circle",
	ToolEllipse:    "ellipse",
}

func (t Tool) String() string {
	if t >= 0 && int(t) < len(toolNames) {
		return toolNames[t]
	}
	return fmt.Sprintf("Tool(%d)", int(t))
}

// ParseTool converts a tool name, as returned by [Tool.String], back into a
// Tool.  Matching is case-insensitive.
func ParseTool(s string) (Tool, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range toolNames {
		if s == name {
			return Tool(i), nil
		}
	}
	return 0, fmt.Errorf("%q: %w", s, ErrUnknownTool)
}

// MarshalText implements [encoding.TextMarshaler].
func (t Tool) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (t *Tool) UnmarshalText(text []byte) error {
	parsed, err := ParseTool(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Config is the tool selection in effect when a shape is placed.
type Config struct {
	Tool      Tool
	Color     Color
	Thickness int
}

// DefaultConfig returns the initial tool selection: a black, one pixel
// wide line drawn with the [Direct] algorithm.
func DefaultConfig() Config {
	return Config{
		Tool:      ToolLineDirect,
		Color:     Black,
		Thickness: 1,
	}
}

// Place creates a shape from two points chosen by the user and the
// current configuration.
//
// For the line tools, a and b are the endpoints.  For the circle tool, a is
// the center and the radius is the distance from a to b, rounded to the
// nearest integer.  For the ellipse tool, a is the center and the
// semi-axes are the horizontal and vertical distances from a to b.
// A thickness below one is raised to one.
func Place(a, b image.Point, cfg Config) Shape {
	pen := Pen{
		Color:     cfg.Color,
		Thickness: max(cfg.Thickness, 1),
	}

	switch cfg.Tool {
	case ToolCircle:
		dx := int64(b.X - a.X)
		dy := int64(b.Y - a.Y)
		r := math.Round(math.Sqrt(float64(dx*dx + dy*dy)))
		return Circle{CX: a.X, CY: a.Y, Radius: int(r), Pen: pen}

	case ToolEllipse:
		return Ellipse{
			CX:  a.X,
			CY:  a.Y,
			RX:  absInt(b.X - a.X),
			RY:  absInt(b.Y - a.Y),
			Pen: pen,
		}

	case ToolLineDDA:
		return Line{X0: a.X, Y0: a.Y, X1: b.X, Y1: b.Y, Algorithm: DDA, Pen: pen}

	default:
		return Line{X0: a.X, Y0: a.Y, X1: b.X, Y1: b.Y, Algorithm: Direct, Pen: pen}
	}
}
