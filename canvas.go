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

import "log/slog"

// Canvas is an ordered list of shapes together with its undo/redo history.
// The list order is the drawing order: later shapes are painted over
// earlier ones.
//
// The zero value is an empty canvas with empty history.
// A Canvas is not safe for concurrent use.
type Canvas struct {
	// shapes is never modified in place.  Every mutation installs a new
	// slice, so that snapshots can share the old one.
	shapes []Shape
	hist   History
}

// History holds the snapshots of a [Canvas] for undo and redo.
type History struct {
	undo [][]Shape
	redo [][]Shape
}

// UndoLen returns the number of states which can be restored by undo.
func (h *History) UndoLen() int {
	return len(h.undo)
}

// RedoLen returns the number of states which can be restored by redo.
func (h *History) RedoLen() int {
	return len(h.redo)
}

// push records the pre-mutation state and discards the redo stack.
func (h *History) push(state []Shape) {
	h.undo = append(h.undo, state)
	clear(h.redo)
	h.redo = h.redo[:0]
}

// Shapes returns the current list of shapes.  The caller must not modify
// the returned slice.
func (c *Canvas) Shapes() []Shape {
	return c.shapes[:len(c.shapes):len(c.shapes)]
}

// Len returns the number of shapes on the canvas.
func (c *Canvas) Len() int {
	return len(c.shapes)
}

// History gives read access to the undo and redo stacks.
func (c *Canvas) History() *History {
	return &c.hist
}

// Append adds a shape on top of all existing shapes.
func (c *Canvas) Append(s Shape) {
	c.hist.push(c.shapes)

	next := make([]Shape, len(c.shapes)+1)
	copy(next, c.shapes)
	next[len(c.shapes)] = s
	c.shapes = next

	Logger().Debug("append shape", slog.Any("shape", s), slog.Int("shapes", len(c.shapes)))
}

// Clear removes all shapes.  The previous list can be restored by
// [Canvas.Undo].
func (c *Canvas) Clear() {
	c.hist.push(c.shapes)
	c.shapes = nil

	Logger().Debug("clear canvas")
}

// Undo restores the state before the most recent mutation.  If there is
// nothing to undo, the canvas is left unchanged and false is returned.
func (c *Canvas) Undo() bool {
	h := &c.hist
	n := len(h.undo)
	if n == 0 {
		return false
	}
	h.redo = append(h.redo, c.shapes)
	c.shapes = h.undo[n-1]
	h.undo[n-1] = nil
	h.undo = h.undo[:n-1]

	Logger().Debug("undo", slog.Int("shapes", len(c.shapes)))
	return true
}

// Redo re-applies the most recently undone mutation.  If there is nothing
// to redo, the canvas is left unchanged and false is returned.
func (c *Canvas) Redo() bool {
	h := &c.hist
	n := len(h.redo)
	if n == 0 {
		return false
	}
	h.undo = append(h.undo, c.shapes)
	c.shapes = h.redo[n-1]
	h.redo[n-1] = nil
	h.redo = h.redo[:n-1]

	Logger().Debug("redo", slog.Int("shapes", len(c.shapes)))
	return true
}
