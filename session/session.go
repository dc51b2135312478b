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
// Package session turns user input into canvas operations.
//
// A [Session] owns a canvas, the current tool selection and a framebuffer.
// Input arrives as mouse clicks in window coordinates, key presses and
// context menu selections, or as a script of such events.
package session

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"unicode"

	"github.com/google/uuid"
	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/minicad"
	"seehuhn.de/go/minicad/export"
	"seehuhn.de/go/minicad/render"
)

// ErrQuit is returned when the user asks to end the session.
var ErrQuit = errors.New("quit")

// ErrUnknownMenu is returned by [Session.Menu] for unused menu entries.
var ErrUnknownMenu = errors.New("unknown menu entry")

// Escape is the key code of the escape key.
const Escape rune = 27

// Session is an interactive drawing session.
//
// A Session is not safe for concurrent use.
type Session struct {
	// ID identifies the session in log messages.
	ID string

	cfg    Config
	tool   minicad.Config
	canvas minicad.Canvas
	fb     *render.Framebuffer

	// window maps window coordinates (origin top left) to canvas
	// coordinates (origin bottom left).
	window matrix.Matrix

	anchor  image.Point
	waiting bool

	log *slog.Logger
}

// New starts a session with an empty canvas.  The configuration should
// have been checked with [Config.Validate].
func New(cfg Config) *Session {
	s := &Session{
		ID:  uuid.NewString(),
		cfg: cfg,
		tool: minicad.Config{
			Tool:      cfg.Tool,
			Color:     cfg.Color,
			Thickness: cfg.Thickness,
		},
		fb: render.New(cfg.Width, cfg.Height),
	}
	s.log = minicad.Logger().With(slog.String("session", s.ID))

	s.fb.ShowGrid = cfg.Grid
	s.fb.ShowAxes = cfg.Axes
	s.fb.GridSpacing = cfg.GridSpacing
	s.window = flipY(s.fb.Height())
	s.redraw()

	s.log.Debug("new session",
		slog.Int("width", cfg.Width),
		slog.Int("height", cfg.Height),
		slog.String("tool", cfg.Tool.String()))
	return s
}

// Canvas returns the canvas of the session.
func (s *Session) Canvas() *minicad.Canvas {
	return &s.canvas
}

// Framebuffer returns the rendered canvas.  It is kept up to date after
// every operation.
func (s *Session) Framebuffer() *render.Framebuffer {
	return s.fb
}

// Tool returns the current tool selection.
func (s *Session) Tool() minicad.Config {
	return s.tool
}

// Pending returns the first point of a shape, if one has been chosen and
// the second point is still missing.
func (s *Session) Pending() (image.Point, bool) {
	return s.anchor, s.waiting
}

// Click handles a mouse click at (x, y) in window coordinates, with the
// origin at the top left.
func (s *Session) Click(x, y int) {
	m := s.window
	fx, fy := float64(x), float64(y)
	p := image.Point{
		X: int(m[0]*fx + m[2]*fy + m[4]),
		Y: int(m[1]*fx + m[3]*fy + m[5]),
	}
	s.Point(p.X, p.Y)
}

// Point handles a click at (x, y) in canvas coordinates.  The first point
// is remembered; the second point completes a shape using the current
// tool, adds it to the canvas and redraws.
func (s *Session) Point(x, y int) {
	p := image.Pt(x, y)
	if !s.waiting {
		s.anchor = p
		s.waiting = true
		return
	}
	s.waiting = false

	shape := minicad.Place(s.anchor, p, s.tool)
	s.canvas.Append(shape)
	s.log.Debug("place shape", slog.Any("shape", shape), slog.String("tool", s.tool.Tool.String()))
	s.redraw()
}

// SetTool selects the kind of shape created by the next two clicks.
func (s *Session) SetTool(t minicad.Tool) {
	s.tool.Tool = t
}

// SetColor selects the color of new shapes.
func (s *Session) SetColor(c minicad.Color) {
	s.tool.Color = c
}

// SetThickness selects the thickness of new shapes.  Values below one
// are raised to one.
func (s *Session) SetThickness(n int) {
	if n < 1 {
		s.log.Warn("thickness raised to 1", slog.Int("requested", n))
		n = 1
	}
	s.tool.Thickness = n
}

// ToggleGrid shows or hides the background grid.
func (s *Session) ToggleGrid() {
	s.fb.ShowGrid = !s.fb.ShowGrid
	s.redraw()
}

// ToggleAxes shows or hides the coordinate axes.
func (s *Session) ToggleAxes() {
	s.fb.ShowAxes = !s.fb.ShowAxes
	s.redraw()
}

// Resize changes the canvas size, as when the window is resized.
// The shapes are kept.
func (s *Session) Resize(w, h int) {
	w, h = max(w, 1), max(h, 1)
	s.fb.Resize(w, h)
	s.window = flipY(h)
	s.redraw()
}

// Clear removes all shapes.  This can be undone.
func (s *Session) Clear() {
	s.canvas.Clear()
	s.redraw()
}

// Undo reverts the last change to the canvas.
func (s *Session) Undo() {
	if s.canvas.Undo() {
		s.redraw()
	}
}

// Redo re-applies the last undone change.
func (s *Session) Redo() {
	if s.canvas.Redo() {
		s.redraw()
	}
}

// Export writes the canvas to a file.  If path is empty, the export file
// from the configuration is used.
func (s *Session) Export(path string) error {
	if path == "" {
		path = s.cfg.Export
	}
	opt := &export.Options{
		Scale: s.cfg.Scale,
		Mode:  s.cfg.PDFMode,
	}
	return export.Save(path, s.fb, s.canvas.Shapes(), opt)
}

// Key handles a key press.  The keys are: g (grid), e (axes), c (clear),
// z (undo), y (redo), p or s (export).  Case is ignored.  Escape returns
// [ErrQuit].  Other keys are ignored.
func (s *Session) Key(r rune) error {
	switch unicode.ToLower(r) {
	case 'g':
		s.ToggleGrid()
	case 'e':
		s.ToggleAxes()
	case 'c':
		s.Clear()
	case 'z':
		s.Undo()
	case 'y':
		s.Redo()
	case 'p', 's':
		return s.Export("")
	case Escape:
		return ErrQuit
	default:
		s.log.Debug("ignored key", slog.String("key", string(r)))
	}
	return nil
}

// Menu entries of the context menu.
const (
	MenuLineDirect = 1
	MenuLineDDA    = 2
	MenuCircle     = 3
	MenuEllipse    = 4

	MenuBlack = 10
	MenuRed   = 11
	MenuGreen = 12
	MenuBlue  = 13

	MenuThickness1 = 20
	MenuThickness2 = 21
	MenuThickness3 = 22
	MenuThickness5 = 23

	MenuToggleGrid = 30
	MenuToggleAxes = 31

	MenuClear  = 40
	MenuUndo   = 41
	MenuRedo   = 42
	MenuExport = 43
)

var menuTools = map[int]minicad.Tool{
	MenuLineDirect: minicad.ToolLineDirect,
	MenuLineDDA:    minicad.ToolLineDDA,
	MenuCircle:     minicad.ToolCircle,
	MenuEllipse:    minicad.ToolEllipse,
}

var menuColors = map[int]minicad.Color{
	MenuBlack: minicad.Black,
	MenuRed:   minicad.Red,
	MenuGreen: minicad.Green,
	MenuBlue:  minicad.Blue,
}

var menuThickness = map[int]int{
	MenuThickness1: 1,
	MenuThickness2: 2,
	MenuThickness3: 3,
	MenuThickness5: 5,
}

// Menu handles the selection of a context menu entry.
func (s *Session) Menu(id int) error {
	if t, ok := menuTools[id]; ok {
		s.SetTool(t)
		return nil
	}
	if c, ok := menuColors[id]; ok {
		s.SetColor(c)
		return nil
	}
	if n, ok := menuThickness[id]; ok {
		s.SetThickness(n)
		return nil
	}

	switch id {
	case MenuToggleGrid:
		s.ToggleGrid()
	case MenuToggleAxes:
		s.ToggleAxes()
	case MenuClear:
		s.Clear()
	case MenuUndo:
		s.Undo()
	case MenuRedo:
		s.Redo()
	case MenuExport:
		return s.Export("")
	default:
		return fmt.Errorf("menu %d: %w", id, ErrUnknownMenu)
	}
	return nil
}

// flipY returns the map from window coordinates to canvas coordinates
// for a window of height h.
func flipY(h int) matrix.Matrix {
	return matrix.Matrix{1, 0, 0, -1, 0, float64(h)}
}

func (s *Session) redraw() {
	s.fb.Redraw(s.canvas.Shapes())
}
