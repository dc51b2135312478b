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
package export

import (
	"fmt"
	"image"
	"strings"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/minicad"
	"seehuhn.de/go/minicad/render"
)

// PDFMode selects how shapes are drawn in PDF output.
type PDFMode int

const (
	// PixelMode draws every pixel of the raster image as a filled unit
	// square.  The result looks exactly like the framebuffer.
	PixelMode PDFMode = iota

	// OutlineMode strokes the ideal lines, circles and ellipses with the
	// pen thickness as line width.
	OutlineMode
)

func (m PDFMode) String() string {
	switch m {
	case PixelMode:
		return "pixel"
	case OutlineMode:
		return "outline"
	default:
		return fmt.Sprintf("PDFMode(%d)", int(m))
	}
}

// MarshalText implements [encoding.TextMarshaler].
func (m PDFMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (m *PDFMode) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "pixel":
		*m = PixelMode
	case "outline":
		*m = OutlineMode
	default:
		return fmt.Errorf("unknown PDF mode %q", text)
	}
	return nil
}

// WritePDF writes the canvas as a single page PDF file.  One pixel
// corresponds to scale PDF units; values below one are treated as one.
// The background, grid and axes are taken from the framebuffer options.
func WritePDF(fname string, fb *render.Framebuffer, shapes []minicad.Shape, mode PDFMode, scale int) error {
	w, h := fb.Width(), fb.Height()
	s := float64(max(scale, 1))

	paper := &pdf.Rectangle{
		URx: s * float64(w),
		URy: s * float64(h),
	}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// The canvas and PDF both have the origin at the bottom left,
	// so only the scale is needed.
	if s != 1 {
		page.Transform(matrix.Matrix{s, 0, 0, s, 0, 0})
	}

	switch mode {
	case OutlineMode:
		writeOutlines(page, w, h, &fb.Options, shapes)
	default:
		p := &pagePlotter{page: page}
		render.Paint(p, w, h, fb.Options, shapes)
		p.flush()
	}

	return page.Close()
}

// pagePlotter collects consecutive rectangles of the same color into a
// single fill operation.
type pagePlotter struct {
	page    *document.Page
	current minicad.Color
	pending bool
}

func (p *pagePlotter) Fill(r image.Rectangle, c minicad.Color) {
	if r.Empty() {
		return
	}
	if !p.pending || c != p.current {
		p.flush()
		setFill(p.page, c)
		p.current = c
	}
	p.page.Rectangle(float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()))
	p.pending = true
}

func (p *pagePlotter) flush() {
	if p.pending {
		p.page.Fill()
		p.pending = false
	}
}

func writeOutlines(page *document.Page, w, h int, opt *render.Options, shapes []minicad.Shape) {
	fw, fh := float64(w), float64(h)

	setFill(page, opt.Background)
	page.Rectangle(0, 0, fw, fh)
	page.Fill()

	page.SetLineWidth(1)
	page.SetLineCap(graphics.LineCapButt)
	if opt.ShowGrid && opt.GridSpacing > 0 {
		setStroke(page, opt.GridColor)
		for x := 0; x <= w; x += opt.GridSpacing {
			page.MoveTo(float64(x)+0.5, 0)
			page.LineTo(float64(x)+0.5, fh)
		}
		for y := 0; y <= h; y += opt.GridSpacing {
			page.MoveTo(0, float64(y)+0.5)
			page.LineTo(fw, float64(y)+0.5)
		}
		page.Stroke()
	}
	if opt.ShowAxes {
		setStroke(page, opt.AxisColor)
		page.MoveTo(0, float64(h/2)+0.5)
		page.LineTo(fw, float64(h/2)+0.5)
		page.MoveTo(float64(w/2)+0.5, 0)
		page.LineTo(float64(w/2)+0.5, fh)
		page.Stroke()
	}

	page.SetLineCap(graphics.LineCapRound)
	page.SetLineJoin(graphics.LineJoinRound)
	for _, s := range shapes {
		pen := s.Stroke()
		setStroke(page, pen.Color)
		page.SetLineWidth(float64(max(pen.Thickness, 1)))
		for cmd, pts := range s.Outline() {
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(pts[0].X, pts[0].Y)
			case path.CmdLineTo:
				page.LineTo(pts[0].X, pts[0].Y)
			case path.CmdCubeTo:
				page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
			case path.CmdClose:
				page.ClosePath()
			}
		}
		page.Stroke()
	}
}

// setFill selects the DeviceGray color space for grays and DeviceRGB
// otherwise.
func setFill(page *document.Page, c minicad.Color) {
	if isGray(c) {
		page.SetFillColor(color.DeviceGray(c.R))
	} else {
		page.SetFillColor(color.DeviceRGB{c.R, c.G, c.B})
	}
}

func setStroke(page *document.Page, c minicad.Color) {
	if isGray(c) {
		page.SetStrokeColor(color.DeviceGray(c.R))
	} else {
		page.SetStrokeColor(color.DeviceRGB{c.R, c.G, c.B})
	}
}

func isGray(c minicad.Color) bool {
	return c.R == c.G && c.G == c.B
}
