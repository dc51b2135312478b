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
	"image"

	"seehuhn.de/go/minicad/raster"
)

// Rasterize returns the pixels of s, in the order produced by the scan
// conversion algorithm.  Thickness is not applied; the caller stamps a
// square of side s.Stroke().Thickness at every returned pixel.
//
// Every call converts the shape from scratch.
func Rasterize(s Shape) []image.Point {
	return AppendPixels(nil, s)
}

// AppendPixels appends the pixels of s to dst and returns the extended
// slice.  This allows a single buffer to be reused when many shapes are
// drawn.
func AppendPixels(dst []image.Point, s Shape) []image.Point {
	switch s := s.(type) {
	case Line:
		if s.Algorithm == DDA {
			return raster.LineDDA(dst, s.X0, s.Y0, s.X1, s.Y1)
		}
		return raster.LineDirect(dst, s.X0, s.Y0, s.X1, s.Y1)
	case Circle:
		return raster.Circle(dst, s.CX, s.CY, s.Radius)
	case Ellipse:
		return raster.Ellipse(dst, s.CX, s.CY, s.RX, s.RY)
	default:
		return dst
	}
}
