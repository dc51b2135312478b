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

// Ellipse appends the pixels of the axis-aligned ellipse with center
// (cx,cy) and semi-axes rx (horizontal) and ry (vertical), computed with
// the two-region midpoint ellipse algorithm.
//
// Region 1 covers the part of the first quadrant where the slope has
// magnitude at most 1 and steps along x; region 2 continues from there and
// steps along y down to the x-axis.  Every step emits the four quadrant
// reflections.  If both semi-axes are zero, the single center point is
// returned.  Negative semi-axes are treated as their absolute values.
func Ellipse(dst []image.Point, cx, cy, rx, ry int) []image.Point {
	rx = abs(rx)
	ry = abs(ry)
	if rx == 0 && ry == 0 {
		// The region 1 condition would read 0 <= 0 for every step.
		return append(dst, image.Point{X: cx, Y: cy})
	}

	rx2 := int64(rx) * int64(rx)
	ry2 := int64(ry) * int64(ry)
	twoRx2 := 2 * rx2
	twoRy2 := 2 * ry2

	x := int64(0)
	y := int64(ry)

	// region 1
	p1 := float64(ry2) - float64(rx2*y) + float64(0.25*float64(rx2))
	for twoRy2*x <= twoRx2*y {
		dst = ellipse4(dst, cx, cy, int(x), int(y))
		x++
		if p1 < 0 {
			p1 += float64(twoRy2*x + ry2)
		} else {
			y--
			p1 += float64(twoRy2*x - twoRx2*y + ry2)
		}
	}

	// region 2
	xh := float64(x) + 0.5
	ym := float64(y - 1)
	p2 := float64(float64(ry2)*xh*xh) + float64(float64(rx2)*ym*ym) - float64(rx2*ry2)
	for y >= 0 {
		dst = ellipse4(dst, cx, cy, int(x), int(y))
		y--
		if p2 > 0 {
			p2 -= float64(twoRx2*y + rx2)
		} else {
			x++
			p2 += float64(twoRy2*x - twoRx2*y + rx2)
		}
	}
	return dst
}

// ellipse4 appends the four quadrant reflections of the offset (x,y).
func ellipse4(dst []image.Point, cx, cy, x, y int) []image.Point {
	return append(dst,
		image.Point{X: cx + x, Y: cy + y},
		image.Point{X: cx - x, Y: cy + y},
		image.Point{X: cx + x, Y: cy - y},
		image.Point{X: cx - x, Y: cy - y},
	)
}
