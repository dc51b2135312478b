package session

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"seehuhn.de/go/minicad"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Width = 100
	cfg.Height = 80
	cfg.Export = filepath.Join(t.TempDir(), "canvas.ppm")
	return New(cfg)
}

func rgba(c color.Color) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}

func TestClickFlipsWindowCoordinates(t *testing.T) {
	s := newTestSession(t)

	s.Click(10, 70)
	p, ok := s.Pending()
	if !ok || p != image.Pt(10, 10) {
		t.Fatalf("expected pending point (10,10), got %v %t", p, ok)
	}
	if s.Canvas().Len() != 0 {
		t.Fatal("first click added a shape")
	}

	s.Click(10, 60)
	if _, ok := s.Pending(); ok {
		t.Error("second click left a pending point")
	}
	want := minicad.Line{
		X0: 10, Y0: 10, X1: 10, Y1: 20,
		Algorithm: minicad.Direct,
		Pen:       minicad.Pen{Color: minicad.Black, Thickness: 1},
	}
	shapes := s.Canvas().Shapes()
	if len(shapes) != 1 || shapes[0] != want {
		t.Fatalf("expected [%v], got %v", want, shapes)
	}
	if got := s.Framebuffer().At(10, 15); got != rgba(minicad.Black) {
		t.Errorf("line not drawn: got %v", got)
	}
}

func TestCircleTool(t *testing.T) {
	s := newTestSession(t)
	s.SetTool(minicad.ToolCircle)
	s.SetColor(minicad.Red)
	s.SetThickness(0)
	s.Point(50, 40)
	s.Point(53, 44)

	want := minicad.Circle{CX: 50, CY: 40, Radius: 5, Pen: minicad.Pen{Color: minicad.Red, Thickness: 1}}
	if got := s.Canvas().Shapes(); len(got) != 1 || got[0] != want {
		t.Errorf("expected [%v], got %v", want, got)
	}
	if got := s.Framebuffer().At(50, 45); got != rgba(minicad.Red) {
		t.Errorf("circle not drawn: got %v", got)
	}
}

func TestThicknessWarning(t *testing.T) {
	buf := &bytes.Buffer{}
	minicad.SetLogger(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelWarn})))
	t.Cleanup(func() { minicad.SetLogger(nil) })

	s := newTestSession(t)
	s.SetThickness(3)
	if buf.Len() != 0 {
		t.Errorf("unexpected log output: %q", buf.String())
	}

	s.SetThickness(-2)
	if s.Tool().Thickness != 1 {
		t.Errorf("expected thickness 1, got %d", s.Tool().Thickness)
	}
	out := buf.String()
	for _, want := range []string{"level=WARN", "thickness raised to 1", "requested=-2", "session=" + s.ID} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q does not contain %q", out, want)
		}
	}
}

func TestKeys(t *testing.T) {
	s := newTestSession(t)
	fb := s.Framebuffer()

	mustKey := func(r rune) {
		t.Helper()
		if err := s.Key(r); err != nil {
			t.Fatalf("key %q: %v", r, err)
		}
	}

	mustKey('g')
	if fb.ShowGrid {
		t.Error("g did not hide the grid")
	}
	mustKey('G')
	if !fb.ShowGrid {
		t.Error("G did not show the grid")
	}
	mustKey('e')
	if fb.ShowAxes {
		t.Error("e did not hide the axes")
	}

	s.Point(1, 1)
	s.Point(5, 5)
	mustKey('c')
	if s.Canvas().Len() != 0 {
		t.Error("c did not clear the canvas")
	}
	mustKey('Z')
	if s.Canvas().Len() != 1 {
		t.Error("z did not undo the clear")
	}
	mustKey('y')
	if s.Canvas().Len() != 0 {
		t.Error("y did not redo the clear")
	}

	mustKey('x')
	if err := s.Key(Escape); !errors.Is(err, ErrQuit) {
		t.Errorf("escape: expected ErrQuit, got %v", err)
	}
}

func TestKeyExport(t *testing.T) {
	for _, key := range []rune{'p', 'S'} {
		s := newTestSession(t)
		if err := s.Key(key); err != nil {
			t.Fatal(err)
		}
		data, err := os.ReadFile(s.cfg.Export)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.HasPrefix(data, []byte("P6\n100 80\n255\n")) {
			t.Errorf("key %q: unexpected file header %q", key, data[:min(len(data), 16)])
		}
	}
}

func TestMenu(t *testing.T) {
	s := newTestSession(t)
	for _, id := range []int{MenuEllipse, MenuGreen, MenuThickness5} {
		if err := s.Menu(id); err != nil {
			t.Fatal(err)
		}
	}
	want := minicad.Config{Tool: minicad.ToolEllipse, Color: minicad.Green, Thickness: 5}
	if got := s.Tool(); got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}

	s.Point(30, 30)
	s.Point(40, 35)
	if err := s.Menu(MenuClear); err != nil {
		t.Fatal(err)
	}
	if err := s.Menu(MenuUndo); err != nil {
		t.Fatal(err)
	}
	if s.Canvas().Len() != 1 {
		t.Errorf("expected 1 shape after undo, got %d", s.Canvas().Len())
	}
	if err := s.Menu(MenuRedo); err != nil {
		t.Fatal(err)
	}
	if s.Canvas().Len() != 0 {
		t.Errorf("expected 0 shapes after redo, got %d", s.Canvas().Len())
	}

	if err := s.Menu(MenuToggleAxes); err != nil {
		t.Fatal(err)
	}
	if s.Framebuffer().ShowAxes {
		t.Error("axes still shown")
	}

	if err := s.Menu(99); !errors.Is(err, ErrUnknownMenu) {
		t.Errorf("expected ErrUnknownMenu, got %v", err)
	}
}

func TestResizeKeepsShapes(t *testing.T) {
	s := newTestSession(t)
	s.Point(10, 10)
	s.Point(20, 10)

	s.Resize(200, 150)
	fb := s.Framebuffer()
	if fb.Width() != 200 || fb.Height() != 150 {
		t.Fatalf("expected 200x150, got %dx%d", fb.Width(), fb.Height())
	}
	if s.Canvas().Len() != 1 {
		t.Errorf("expected 1 shape, got %d", s.Canvas().Len())
	}
	if got := fb.At(15, 10); got != rgba(minicad.Black) {
		t.Errorf("shape not redrawn after resize: got %v", got)
	}

	s.Click(0, 140)
	if p, _ := s.Pending(); p != image.Pt(0, 10) {
		t.Errorf("expected (0,10) after resize, got %v", p)
	}
}

func TestSessionIDs(t *testing.T) {
	a := newTestSession(t)
	b := newTestSession(t)
	if a.ID == "" || a.ID == b.ID {
		t.Errorf("expected distinct session ids, got %q and %q", a.ID, b.ID)
	}
}
