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

package raster

import "image"

// Circle appends the pixels of the circle with center (cx,cy) and radius r,
// computed with the midpoint circle algorithm.
//
// The algorithm walks the second octant, from (0,r) to the diagonal, and
// emits eight mirrored points per step.  Points on the axes and on the
// diagonal are emitted more than once.  A zero radius gives the single
// center point.  A negative radius is treated as its absolute value.
func Circle(dst []image.Point, cx, cy, r int) []image.Point {
	r = abs(r)
	if r == 0 {
		return append(dst, image.Point{X: cx, Y: cy})
	}

	x := 0
	y := r
	p := 1 - r

	dst = circle8(dst, cx, cy, x, y)
	for x < y {
		x++
		if p < 0 {
			p += 2*x + 1
		} else {
			y--
			p += 2*(x-y) + 1
		}
		dst = circle8(dst, cx, cy, x, y)
	}
	return dst
}

// circle8 appends the eight octant reflections of the offset (x,y).
func circle8(dst []image.Point, cx, cy, x, y int) []image.Point {
	return append(dst,
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
