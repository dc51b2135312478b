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

// Package render turns a list of shapes into pixels.
//
// All coordinates used by this package are canvas coordinates: the origin
// is the bottom-left pixel and y grows upwards.  The [Framebuffer] maps
// them to image rows, which run from top to bottom.
package render

import (
	"image"
	"log/slog"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/minicad"
)

// Plotter receives the output of [Paint].
type Plotter interface {
	// Fill paints the pixels (x, y) with r.Min.X <= x < r.Max.X and
	// r.Min.Y <= y < r.Max.Y in canvas coordinates.  Pixels outside the
	// drawing area must be ignored.
	Fill(r image.Rectangle, c minicad.Color)
}

// Options control the parts of a frame which are not shapes.
type Options struct {
	Background minicad.Color

	ShowGrid    bool
	GridSpacing int // distance between grid lines, in pixels
	GridColor   minicad.Color

	ShowAxes  bool
	AxisColor minicad.Color
}

// DefaultOptions returns the look of a fresh canvas: white background,
// a light gray grid every 20 pixels and darker gray axes through the
// center.
func DefaultOptions() Options {
	return Options{
		Background:  minicad.White,
		ShowGrid:    true,
		GridSpacing: 20,
		GridColor:   minicad.GridGray,
		ShowAxes:    true,
		AxisColor:   minicad.AxisGray,
	}
}

// Paint draws a complete w×h frame onto p: the background, then the grid
// and the axes if enabled, then every shape in list order.
func Paint(p Plotter, w, h int, opt Options, shapes []minicad.Shape) {
	clip := rect.Rect{URx: float64(w), URy: float64(h)}
	paint(p, w, h, clip, &opt, shapes, nil)
}

type frameStats struct {
	drawn, culled, pixels int
}

// paint implements [Paint].  Shapes which lie completely outside clip are
// skipped.  The scratch buffer buf is reused for the pixels of every shape
// and returned for reuse by the caller.
func paint(p Plotter, w, h int, clip rect.Rect, opt *Options, shapes []minicad.Shape, buf []image.Point) []image.Point {
	p.Fill(image.Rect(0, 0, w, h), opt.Background)

	if opt.ShowGrid && opt.GridSpacing > 0 {
		s := opt.GridSpacing
		for x := 0; x <= w; x += s {
			p.Fill(image.Rect(x, 0, x+1, h), opt.GridColor)
		}
		for y := 0; y <= h; y += s {
			p.Fill(image.Rect(0, y, w, y+1), opt.GridColor)
		}
	}

	if opt.ShowAxes {
		p.Fill(image.Rect(0, h/2, w, h/2+1), opt.AxisColor)
		p.Fill(image.Rect(w/2, 0, w/2+1, h), opt.AxisColor)
	}

	var stats frameStats
	for _, s := range shapes {
		pen := s.Stroke()
		t := max(pen.Thickness, 1)
		if !overlaps(stampBounds(s.Bounds(), t), clip) {
			stats.culled++
			continue
		}

		buf = minicad.AppendPixels(buf[:0], s)
		for _, q := range buf {
			p.Fill(StampRect(q.X, q.Y, t), pen.Color)
		}
		stats.drawn++
		stats.pixels += len(buf)
	}

	minicad.Logger().Debug("paint frame",
		slog.Int("width", w),
		slog.Int("height", h),
		slog.Int("drawn", stats.drawn),
		slog.Int("culled", stats.culled),
		slog.Int("pixels", stats.pixels))
	return buf
}

// StampRect returns the t×t square painted for the rasterized pixel
// (x, y).  For even t the extra row and column lie on the positive side.
func StampRect(x, y, t int) image.Rectangle {
	t = max(t, 1)
	lo := (t - 1) / 2
	hi := t / 2
	return image.Rect(x-lo, y-lo, x+hi+1, y+hi+1)
}

// stampBounds grows the bounding box of a shape by the extent of the
// stamp used for thickness t.
func stampBounds(b rect.Rect, t int) rect.Rect {
	lo := float64((t - 1) / 2)
	hi := float64(t / 2)
	return rect.Rect{
		LLx: b.LLx - lo,
		LLy: b.LLy - lo,
		URx: b.URx + hi,
		URy: b.URy + hi,
	}
}

// overlaps reports whether a and b share a region of positive area.
func overlaps(a, b rect.Rect) bool {
	return a.LLx < b.URx && b.LLx < a.URx && a.LLy < b.URy && b.LLy < a.URy
}
