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

// Command genpdf writes every test case as a PDF file and as a PNG image.
// The PDF files are then rendered with Ghostscript, so that the pixel
// squares of the PDF output can be compared with the framebuffer.
package main

import (
	"fmt"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/minicad"
	"seehuhn.de/go/minicad/export"
	"seehuhn.de/go/minicad/render"
	"seehuhn.de/go/minicad/testcases"
)

const refDir = "testdata/reference"

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(refDir, name+".pdf")
			pngPath := filepath.Join(refDir, name+".png")
			gsPath := filepath.Join(refDir, name+"_gs.png")

			fb := render.New(tc.Width, tc.Height)
			fb.ShowGrid = false
			fb.ShowAxes = false
			shapes := []minicad.Shape{tc.Shape}
			fb.Redraw(shapes)

			if err := export.Save(pngPath, fb, shapes, nil); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if err := export.WritePDF(pdfPath, fb, shapes, export.PixelMode, 1); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if err := renderPNG(pdfPath, gsPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func renderPNG(pdfPath, pngPath string) error {
	// Render PDF to PNG using Ghostscript
	// -sDEVICE=png16m: 24-bit RGB, as the framebuffer
	// -r72: 72 DPI (1 point = 1 pixel)
	// no anti-aliasing, so that pixel squares stay sharp
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=png16m",
		"-r72",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
