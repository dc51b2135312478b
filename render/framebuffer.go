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

package render

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/minicad"
)

// Framebuffer is an RGB raster image holding the rendered canvas.
//
// A Framebuffer is not safe for concurrent use.
type Framebuffer struct {
	// Clip restricts drawing to a region of the canvas, in canvas
	// coordinates.  New and Resize set it to the whole canvas.
	Clip rect.Rect

	Options

	img *image.RGBA
	buf []image.Point
}

var _ Plotter = (*Framebuffer)(nil)

// New allocates a framebuffer of the given size, using [DefaultOptions].
// The image is filled with the background color.
func New(w, h int) *Framebuffer {
	fb := &Framebuffer{Options: DefaultOptions()}
	fb.Resize(w, h)
	return fb
}

// Resize reallocates the image for a canvas of the new size and resets the
// clip rectangle to cover it.  The old content is discarded; call
// [Framebuffer.Redraw] to repaint the shapes.
func (fb *Framebuffer) Resize(w, h int) {
	w, h = max(w, 0), max(h, 0)
	fb.img = image.NewRGBA(image.Rect(0, 0, w, h))
	fb.Clip = rect.Rect{URx: float64(w), URy: float64(h)}
	fb.Fill(image.Rect(0, 0, w, h), fb.Background)
}

// Width returns the width of the canvas in pixels.
func (fb *Framebuffer) Width() int {
	return fb.img.Rect.Dx()
}

// Height returns the height of the canvas in pixels.
func (fb *Framebuffer) Height() int {
	return fb.img.Rect.Dy()
}

// Image returns the framebuffer image, with the top row first.
// The image is overwritten by the next call to Redraw or Resize.
func (fb *Framebuffer) Image() *image.RGBA {
	return fb.img
}

// Redraw paints a new frame showing the given shapes.  Every shape is
// converted to pixels again.
func (fb *Framebuffer) Redraw(shapes []minicad.Shape) {
	fb.buf = paint(fb, fb.Width(), fb.Height(), fb.Clip, &fb.Options, shapes, fb.buf)
}

// Fill implements the [Plotter] interface.
func (fb *Framebuffer) Fill(r image.Rectangle, c minicad.Color) {
	ir := fb.toImage(r).Intersect(fb.clipImage())
	if ir.Empty() {
		return
	}
	draw.Draw(fb.img, ir, image.NewUniform(c), image.Point{}, draw.Src)
}

// Plot sets the single pixel (x, y), given in canvas coordinates.
func (fb *Framebuffer) Plot(x, y int, c minicad.Color) {
	fb.Fill(image.Rect(x, y, x+1, y+1), c)
}

// At returns the color of the pixel (x, y), given in canvas coordinates.
func (fb *Framebuffer) At(x, y int) color.RGBA {
	return fb.img.RGBAAt(x, fb.Height()-1-y)
}

// toImage converts a rectangle from canvas coordinates to image
// coordinates.
func (fb *Framebuffer) toImage(r image.Rectangle) image.Rectangle {
	h := fb.Height()
	return image.Rect(r.Min.X, h-r.Max.Y, r.Max.X, h-r.Min.Y)
}

// clipImage returns the pixels inside fb.Clip, in image coordinates.
func (fb *Framebuffer) clipImage() image.Rectangle {
	c := image.Rect(
		int(math.Ceil(fb.Clip.LLx)),
		int(math.Ceil(fb.Clip.LLy)),
		int(math.Floor(fb.Clip.URx)),
		int(math.Floor(fb.Clip.URy)),
	)
	return fb.toImage(c).Intersect(fb.img.Rect)
}
