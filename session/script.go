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
package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/google/shlex"

	"seehuhn.de/go/minicad"
)

// ErrScript is returned for malformed script lines.
var ErrScript = errors.New("invalid script")

// Command is one line of an event script.
type Command struct {
	Line int // line number, starting at 1
	Name string
	Args []string
}

func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// commandArgs gives the minimum and maximum number of arguments of every
// script command.
var commandArgs = map[string][2]int{
	"click":     {2, 2},
	"point":     {2, 2},
	"key":       {1, 1},
	"menu":      {1, 1},
	"tool":      {1, 1},
	"color":     {1, 1},
	"thickness": {1, 1},
	"resize":    {2, 2},
	"grid":      {0, 0},
	"axes":      {0, 0},
	"undo":      {0, 0},
	"redo":      {0, 0},
	"clear":     {0, 0},
	"export":    {0, 1},
	"quit":      {0, 0},
}

// ParseScript reads an event script.  Every non-empty line holds one
// command followed by its arguments, separated by white space.  Arguments
// can be quoted as in a shell, and "#" starts a comment.  Hex colors must
// therefore be quoted, as in color "#ff8000".
//
// The commands are:
//
//	click X Y       mouse click in window coordinates
//	point X Y       mouse click in canvas coordinates
//	key K           key press; K is a single character or "esc"
//	menu N          context menu entry N
//	tool NAME       line-direct, line-dda, circle or ellipse
//	color C         palette name or #rrggbb
//	thickness N     pen thickness in pixels
//	resize W H      change the canvas size
//	grid, axes      toggle the grid or the axes
//	undo, redo, clear
//	export [FILE]   write the canvas, to the configured file by default
//	quit            stop processing the script
func ParseScript(r io.Reader) ([]Command, error) {
	var cmds []Command
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		words, err := shlex.Split(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("line %d: %w: %v", lineNo, ErrScript, err)
		}
		if len(words) == 0 {
			continue
		}

		cmd := Command{
			Line: lineNo,
			Name: strings.ToLower(words[0]),
			Args: words[1:],
		}
		n, ok := commandArgs[cmd.Name]
		if !ok {
			return nil, fmt.Errorf("line %d: %w: unknown command %q", lineNo, ErrScript, words[0])
		}
		if len(cmd.Args) < n[0] || len(cmd.Args) > n[1] {
			return nil, fmt.Errorf("line %d: %w: wrong number of arguments for %q", lineNo, ErrScript, cmd.Name)
		}
		cmds = append(cmds, cmd)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return cmds, nil
}

// Run executes the commands in order.  Processing stops at the first
// error, or without error when the script asks to quit.
func (s *Session) Run(cmds []Command) error {
	for _, cmd := range cmds {
		err := s.Exec(cmd)
		if errors.Is(err, ErrQuit) {
			s.log.Debug("quit", slog.Int("line", cmd.Line))
			return nil
		} else if err != nil {
			return fmt.Errorf("line %d: %w", cmd.Line, err)
		}
	}
	return nil
}

// Exec executes a single script command.
func (s *Session) Exec(cmd Command) error {
	switch cmd.Name {
	case "click", "point":
		xy, err := ints(cmd.Args)
		if err != nil {
			return err
		}
		if cmd.Name == "click" {
			s.Click(xy[0], xy[1])
		} else {
			s.Point(xy[0], xy[1])
		}
	case "key":
		r, err := parseKey(cmd.Args[0])
		if err != nil {
			return err
		}
		return s.Key(r)
	case "menu":
		id, err := strconv.Atoi(cmd.Args[0])
		if err != nil {
			return fmt.Errorf("%w: menu entry %q", ErrScript, cmd.Args[0])
		}
		return s.Menu(id)
	case "tool":
		t, err := minicad.ParseTool(cmd.Args[0])
		if err != nil {
			return err
		}
		s.SetTool(t)
	case "color":
		c, err := minicad.ParseColor(cmd.Args[0])
		if err != nil {
			return err
		}
		s.SetColor(c)
	case "thickness":
		n, err := strconv.Atoi(cmd.Args[0])
		if err != nil || n < 1 {
			return fmt.Errorf("%w: thickness %q", ErrScript, cmd.Args[0])
		}
		s.SetThickness(n)
	case "resize":
		wh, err := ints(cmd.Args)
		if err != nil {
			return err
		}
		if wh[0] < 1 || wh[1] < 1 {
			return fmt.Errorf("%w: canvas size %dx%d", ErrScript, wh[0], wh[1])
		}
		s.Resize(wh[0], wh[1])
	case "grid":
		s.ToggleGrid()
	case "axes":
		s.ToggleAxes()
	case "undo":
		s.Undo()
	case "redo":
		s.Redo()
	case "clear":
		s.Clear()
	case "export":
		var path string
		if len(cmd.Args) > 0 {
			path = cmd.Args[0]
		}
		return s.Export(path)
	case "quit":
		return ErrQuit
	default:
		return fmt.Errorf("%w: unknown command %q", ErrScript, cmd.Name)
	}
	return nil
}

func ints(args []string) ([]int, error) {
	res := make([]int, len(args))
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer", ErrScript, a)
		}
		res[i] = n
	}
	return res, nil
}

func parseKey(s string) (rune, error) {
	switch strings.ToLower(s) {
	case "esc", "escape":
		return Escape, nil
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || size != len(s) {
		return 0, fmt.Errorf("%w: key %q", ErrScript, s)
	}
	return r, nil
}
