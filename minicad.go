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

// Package minicad implements the shape model of a minimal raster drawing
// tool.
//
// Shapes (lines, circles and ellipses) are placed from two points and the
// current [Config], collected in a [Canvas] with linear undo/redo history,
// and converted to pixels by [Rasterize].  Pixel coordinates have their
// origin in the bottom-left corner, with y increasing upwards.
//
// The scan conversion algorithms live in the sub-package
// seehuhn.de/go/minicad/raster, framebuffer painting in
// seehuhn.de/go/minicad/render, file output in
// seehuhn.de/go/minicad/export and the interactive state machine in
// seehuhn.de/go/minicad/session.
package minicad

//go:generate go run ./testcases/export
