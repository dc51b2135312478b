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

// Package raster implements the scan conversion of lines, circles and
// ellipses into integer pixel coordinates.
//
// All functions append to a caller-supplied slice and return the extended
// slice, so that a single buffer can be reused for many primitives.  The
// output is an ordered sequence; duplicates produced by the algorithms are
// kept.  Coordinates are signed and unbounded, clipping is left to the
// caller.
package raster

import (
	"image"
	"math"
)

// Round rounds v to the nearest integer, with halves rounded up
// (floor(v+0.5)).
func Round(v float64) int {
	return int(math.Floor(v + 0.5))
}

// LineDirect appends the pixels of the segment from (x0,y0) to (x1,y1),
// computed by stepping along the dominant axis and evaluating the line
// equation for the other coordinate.
//
// Exactly one pixel is emitted per step along the dominant axis.  Along the
// minor axis the rounded values are used as they are, so the path is not
// guaranteed to be connected.
func LineDirect(dst []image.Point, x0, y0, x1, y1 int) []image.Point {
	dx := x1 - x0
	dy := y1 - y0

	switch {
	case dx == 0 && dy == 0:
		return append(dst, image.Point{X: x0, Y: y0})

	case dx == 0:
		sy := sign(dy)
		for y := y0; y != y1+sy; y += sy {
			dst = append(dst, image.Point{X: x0, Y: y})
		}
		return dst

	case dy == 0:
		sx := sign(dx)
		for x := x0; x != x1+sx; x += sx {
			dst = append(dst, image.Point{X: x, Y: y0})
		}
		return dst
	}

	m := float64(dy) / float64(dx)
	if math.Abs(m) <= 1 {
		sx := sign(dx)
		for x := x0; x != x1+sx; x += sx {
			// explicit conversion prevents a fused multiply-add
			v := float64(m*float64(x-x0)) + float64(y0)
			dst = append(dst, image.Point{X: x, Y: Round(v)})
		}
		return dst
	}

	invm := float64(dx) / float64(dy)
	sy := sign(dy)
	for y := y0; y != y1+sy; y += sy {
		v := float64(invm*float64(y-y0)) + float64(x0)
		dst = append(dst, image.Point{X: Round(v), Y: y})
	}
	return dst
}

// LineDDA appends the pixels of the segment from (x0,y0) to (x1,y1),
// computed with the digital differential analyzer: max(|dx|,|dy|)+1
// samples, equally spaced along the segment, each rounded to the nearest
// pixel.
func LineDDA(dst []image.Point, x0, y0, x1, y1 int) []image.Point {
	dx := x1 - x0
	dy := y1 - y0
	steps := max(abs(dx), abs(dy))
	if steps == 0 {
		return append(dst, image.Point{X: x0, Y: y0})
	}

	incX := float64(dx) / float64(steps)
	incY := float64(dy) / float64(steps)

	x := float64(x0)
	y := float64(y0)
	for range steps + 1 {
		dst = append(dst, image.Point{X: Round(x), Y: Round(y)})
		x += incX
		y += incY
	}
	return dst
}

func sign(n int) int {
	if n < 0 {
		return -1
	}
	return 1
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
