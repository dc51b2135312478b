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

// Package testcases holds named shapes used by the tests, the benchmarks
// and the reference tools of minicad.
package testcases

import (
	"image"

	"seehuhn.de/go/minicad"
)

// TestCase defines a single rasterization test.
type TestCase struct {
	Name   string        // lowercase a-z, 0-9 and _ only
	Shape  minicad.Shape // the shape to rasterize
	Width  int           // canvas width in pixels
	Height int           // canvas height in pixels

	// Pixels, if not nil, is the exact output expected from
	// minicad.Rasterize, in order.
	Pixels []image.Point
}

// pen returns a pen with the given thickness.
func pen(c minicad.Color, thickness int) minicad.Pen {
	return minicad.Pen{Color: c, Thickness: thickness}
}

// pts builds a point list from x, y pairs.
func pts(xy ...int) []image.Point {
	res := make([]image.Point, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		res = append(res, image.Point{X: xy[i], Y: xy[i+1]})
	}
	return res
}

// vertical returns the pixels of a vertical run from (x, y0) to (x, y1).
func vertical(x, y0, y1 int) []image.Point {
	step := 1
	if y1 < y0 {
		step = -1
	}
	var res []image.Point
	for y := y0; y != y1+step; y += step {
		res = append(res, image.Point{X: x, Y: y})
	}
	return res
}

// octants expands second-octant offsets into the eight mirrored points
// per step, in the order used by the midpoint circle algorithm.
func octants(cx, cy int, offsets ...image.Point) []image.Point {
	var res []image.Point
	for _, o := range offsets {
		x, y := o.X, o.Y
		res = append(res,
			image.Point{X: cx + x, Y: cy + y},
			image.Point{X: cx - x, Y: cy + y},
			image.Point{X: cx + x, Y: cy - y},
			image.Point{X: cx - x, Y: cy - y},
			image.Point{X: cx + y, Y: cy + x},
			image.Point{X: cx - y, Y: cy + x},
			image.Point{X: cx + y, Y: cy - x},
			image.Point{X: cx - y, Y: cy - x},
		)
	}
	return res
}

// quadrants expands first-quadrant offsets into the four mirrored points
// per step, in the order used by the midpoint ellipse algorithm.
func quadrants(cx, cy int, offsets ...image.Point) []image.Point {
	var res []image.Point
	for _, o := range offsets {
		x, y := o.X, o.Y
		res = append(res,
			image.Point{X: cx + x, Y: cy + y},
			image.Point{X: cx - x, Y: cy + y},
			image.Point{X: cx + x, Y: cy - y},
			image.Point{X: cx - x, Y: cy - y},
		)
	}
	return res
}
