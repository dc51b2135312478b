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
	"fmt"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// kappa is the control point distance for approximating a quarter circle
// with a cubic Bézier curve.
const kappa = 0.5522847498

// Shape is one placed primitive: a [Line], [Circle] or [Ellipse].
// Shapes are values and are never modified after they have been added to
// a [Canvas].
type Shape interface {
	// Stroke returns the color and thickness the shape is drawn with.
	Stroke() Pen

	// Bounds returns the smallest rectangle containing all pixels of the
	// shape, before thickness is applied.  A pixel (x, y) occupies the
	// unit square [x, x+1] × [y, y+1].
	Bounds() rect.Rect

	// Outline returns the ideal continuous primitive, through the pixel
	// centers.
	Outline() path.Path

	isShape()
}

// Pen holds the drawing attributes shared by all shapes.
type Pen struct {
	Color Color

	// Thickness is the side length, in pixels, of the square stamped at
	// every rasterized pixel.
	Thickness int
}

// Stroke returns p.  It is promoted to the shapes which embed a Pen.
func (p Pen) Stroke() Pen {
	return p
}

// LineAlgorithm selects the scan conversion algorithm for a [Line].
type LineAlgorithm int

const (
	// Direct evaluates the line equation at every step along the dominant
	// axis.
	Direct LineAlgorithm = iota

	// DDA accumulates fixed increments (digital differential analyzer).
	DDA
)

func (a LineAlgorithm) String() string {
	switch a {
	case Direct:
		return "direct"
	case DDA:
		return "dda"
	default:
		return fmt.Sprintf("LineAlgorithm(%d)", int(a))
	}
}

// Line is the segment from (X0, Y0) to (X1, Y1), both endpoints included.
type Line struct {
	X0, Y0, X1, Y1 int
	Algorithm      LineAlgorithm
	Pen
}

// Circle is the circle with center (CX, CY) and the given radius.
type Circle struct {
	CX, CY int
	Radius int // must be non-negative
	Pen
}

// Ellipse is the axis-aligned ellipse with center (CX, CY), horizontal
// semi-axis RX and vertical semi-axis RY.
type Ellipse struct {
	CX, CY int
	RX, RY int // must be non-negative
	Pen
}

func (Line) isShape()    {}
func (Circle) isShape()  {}
func (Ellipse) isShape() {}

// Bounds implements the [Shape] interface.
func (l Line) Bounds() rect.Rect {
	return pixelBox(min(l.X0, l.X1), min(l.Y0, l.Y1), max(l.X0, l.X1), max(l.Y0, l.Y1))
}

// Bounds implements the [Shape] interface.
func (c Circle) Bounds() rect.Rect {
	r := absInt(c.Radius)
	return pixelBox(c.CX-r, c.CY-r, c.CX+r, c.CY+r)
}

// Bounds implements the [Shape] interface.
func (e Ellipse) Bounds() rect.Rect {
	rx, ry := absInt(e.RX), absInt(e.RY)
	if rx == 0 && ry > 0 {
		// the second region steps one column away from the axis
		rx = 1
	}
	return pixelBox(e.CX-rx, e.CY-ry, e.CX+rx, e.CY+ry)
}

// Outline implements the [Shape] interface.
func (l Line) Outline() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !yield(path.CmdMoveTo, []vec.Vec2{center(l.X0, l.Y0)}) {
			return
		}
		yield(path.CmdLineTo, []vec.Vec2{center(l.X1, l.Y1)})
	}
}

// Outline implements the [Shape] interface.
func (c Circle) Outline() path.Path {
	r := float64(absInt(c.Radius))
	return ellipsePath(center(c.CX, c.CY), r, r)
}

// Outline implements the [Shape] interface.
func (e Ellipse) Outline() path.Path {
	return ellipsePath(center(e.CX, e.CY), float64(absInt(e.RX)), float64(absInt(e.RY)))
}

func (l Line) String() string {
	return fmt.Sprintf("Line{%d,%d,%d,%d %s}", l.X0, l.Y0, l.X1, l.Y1, l.Algorithm)
}

func (c Circle) String() string {
	return fmt.Sprintf("Circle{%d,%d r=%d}", c.CX, c.CY, c.Radius)
}

func (e Ellipse) String() string {
	return fmt.Sprintf("Ellipse{%d,%d rx=%d ry=%d}", e.CX, e.CY, e.RX, e.RY)
}

// ellipsePath builds an approximate ellipse using four cubic Bézier curves,
// starting at the rightmost point and running counter-clockwise.
func ellipsePath(c vec.Vec2, rx, ry float64) path.Path {
	kx := rx * kappa
	ky := ry * kappa
	cx, cy := c.X, c.Y

	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !yield(path.CmdMoveTo, []vec.Vec2{pt(cx+rx, cy)}) {
			return
		}
		quadrants := [4][3]vec.Vec2{
			{pt(cx+rx, cy+ky), pt(cx+kx, cy+ry), pt(cx, cy+ry)},
			{pt(cx-kx, cy+ry), pt(cx-rx, cy+ky), pt(cx-rx, cy)},
			{pt(cx-rx, cy-ky), pt(cx-kx, cy-ry), pt(cx, cy-ry)},
			{pt(cx+kx, cy-ry), pt(cx+rx, cy-ky), pt(cx+rx, cy)},
		}
		for _, q := range quadrants {
			if !yield(path.CmdCubeTo, q[:]) {
				return
			}
		}
		yield(path.CmdClose, nil)
	}
}

// pixelBox returns the rectangle covering the pixels from (x0,y0) to
// (x1,y1) inclusive.
func pixelBox(x0, y0, x1, y1 int) rect.Rect {
	return rect.Rect{
		LLx: float64(x0),
		LLy: float64(y0),
		URx: float64(x1 + 1),
		URy: float64(y1 + 1),
	}
}

// center returns the center of the pixel (x, y).
func center(x, y int) vec.Vec2 {
	return pt(float64(x)+0.5, float64(y)+0.5)
}

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
