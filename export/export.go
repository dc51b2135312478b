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
// Package export writes a rendered canvas to image files.
//
// Raster formats (PPM, PNG, BMP and TIFF) store the framebuffer pixels.
// PDF output is drawn from the shapes, either as filled pixel squares which
// reproduce the raster image exactly, or as the ideal continuous outlines.
package export

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"

	"seehuhn.de/go/minicad"
	"seehuhn.de/go/minicad/render"
)

// Format identifies an output file format.
type Format int

const (
	PPM Format = iota
	PNG
	BMP
	TIFF
	PDF
)

// ErrUnknownFormat is returned when no output format can be chosen.
var ErrUnknownFormat = errors.New("unknown export format")

func (f Format) String() string {
	switch f {
	case PPM:
		return "ppm"
	case PNG:
		return "png"
	case BMP:
		return "bmp"
	case TIFF:
		return "tiff"
	case PDF:
		return "pdf"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatFromPath chooses the output format from the file name extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ppm":
		return PPM, nil
	case ".png":
		return PNG, nil
	case ".bmp":
		return BMP, nil
	case ".tif", ".tiff":
		return TIFF, nil
	case ".pdf":
		return PDF, nil
	default:
		return 0, fmt.Errorf("%q: %w", path, ErrUnknownFormat)
	}
}

// WritePPM writes img as a binary portable pixmap (P6).  Rows are written
// from top to bottom, with three bytes R, G, B per pixel.  Alpha is
// ignored.
func WritePPM(w io.Writer, img image.Image) error {
	b := img.Bounds()
	out := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(out, "P6\n%d %d\n255\n", b.Dx(), b.Dy()); err != nil {
		return err
	}

	row := make([]byte, 3*b.Dx())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		if rgba, ok := img.(*image.RGBA); ok {
			pix := rgba.Pix[rgba.PixOffset(b.Min.X, y):]
			for i := range b.Dx() {
				copy(row[3*i:3*i+3], pix[4*i:4*i+3])
			}
		} else {
			for i := range b.Dx() {
				r, g, bl, _ := img.At(b.Min.X+i, y).RGBA()
				row[3*i] = byte(r >> 8)
				row[3*i+1] = byte(g >> 8)
				row[3*i+2] = byte(bl >> 8)
			}
		}
		if _, err := out.Write(row); err != nil {
			return err
		}
	}
	return out.Flush()
}

// Encode writes img in one of the raster formats.  PDF output needs the
// shapes and is written by [WritePDF].
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case PPM:
		return WritePPM(w, img)
	case PNG:
		return png.Encode(w, img)
	case BMP:
		return bmp.Encode(w, img)
	case TIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("cannot encode raster image as %s: %w", f, ErrUnknownFormat)
	}
}

// Scale enlarges img by an integer factor, turning every pixel into a
// factor×factor block.  Factors below one are treated as one.
func Scale(img image.Image, factor int) *image.RGBA {
	factor = max(factor, 1)
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// Options control [Save].
type Options struct {
	// Scale is the integer enlargement factor.  Values below one mean no
	// enlargement.
	Scale int

	// Mode selects how PDF files are drawn.
	Mode PDFMode
}

// Save writes the canvas to a file, choosing the format from the file name
// extension.  Raster formats store the current framebuffer image, so
// [render.Framebuffer.Redraw] must have been called for shapes.
// A nil opt is equivalent to a zero Options value.
func Save(path string, fb *render.Framebuffer, shapes []minicad.Shape, opt *Options) error {
	if opt == nil {
		opt = &Options{}
	}

	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	if format == PDF {
		err = WritePDF(path, fb, shapes, opt.Mode, opt.Scale)
	} else {
		err = saveRaster(path, fb.Image(), format, opt.Scale)
	}
	if err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}

	minicad.Logger().Info("exported canvas",
		slog.String("path", path),
		slog.String("format", format.String()),
		slog.Int("width", fb.Width()),
		slog.Int("height", fb.Height()),
		slog.Int("shapes", len(shapes)))
	return nil
}

func saveRaster(path string, img image.Image, format Format, scale int) (err error) {
	if scale > 1 {
		img = Scale(img, scale)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return Encode(f, img, format)
}
