package minicad

import (
	"slices"
	"testing"
)

func testLine(i int) Shape {
	return Line{X0: i, Y0: 0, X1: i, Y1: 10, Pen: Pen{Color: Black, Thickness: 1}}
}

func TestAppendUndoRedo(t *testing.T) {
	var c Canvas
	c.Append(testLine(1))
	c.Append(testLine(2))

	before := slices.Clone(c.Shapes())
	c.Append(testLine(3))
	after := slices.Clone(c.Shapes())

	if !c.Undo() {
		t.Fatal("undo failed")
	}
	if !slices.Equal(c.Shapes(), before) {
		t.Errorf("after undo: expected %v, got %v", before, c.Shapes())
	}
	if !c.Redo() {
		t.Fatal("redo failed")
	}
	if !slices.Equal(c.Shapes(), after) {
		t.Errorf("after redo: expected %v, got %v", after, c.Shapes())
	}
}

func TestUndoRedoEmpty(t *testing.T) {
	var c Canvas
	if c.Undo() {
		t.Error("undo on empty history reported success")
	}
	if c.Redo() {
		t.Error("redo on empty history reported success")
	}
	if c.Len() != 0 || c.History().UndoLen() != 0 || c.History().RedoLen() != 0 {
		t.Error("empty undo/redo changed the canvas")
	}

	c.Append(testLine(1))
	if c.Redo() {
		t.Error("redo without undo reported success")
	}
	if c.Len() != 1 {
		t.Errorf("expected 1 shape, got %d", c.Len())
	}
}

func TestHistoryStackSizes(t *testing.T) {
	var c Canvas
	h := c.History()

	for i := range 4 {
		c.Append(testLine(i))
		if h.RedoLen() != 0 {
			t.Errorf("after append %d: redo has %d entries", i, h.RedoLen())
		}
		if h.UndoLen() != i+1 {
			t.Errorf("after append %d: expected %d undo entries, got %d", i, i+1, h.UndoLen())
		}
	}

	for i := range 3 {
		undo, redo := h.UndoLen(), h.RedoLen()
		c.Undo()
		if h.RedoLen() != redo+1 {
			t.Errorf("undo %d: expected %d redo entries, got %d", i, redo+1, h.RedoLen())
		}
		if h.UndoLen() != undo-1 {
			t.Errorf("undo %d: expected %d undo entries, got %d", i, undo-1, h.UndoLen())
		}
	}

	c.Clear()
	if h.RedoLen() != 0 {
		t.Errorf("after clear: redo has %d entries", h.RedoLen())
	}
}

// TestThreeAppendsTwoUndosOneRedo leaves the first two shapes.
func TestThreeAppendsTwoUndosOneRedo(t *testing.T) {
	var c Canvas
	a, b, d := testLine(1), testLine(2), testLine(3)
	c.Append(a)
	c.Append(b)
	c.Append(d)
	c.Undo()
	c.Undo()
	c.Redo()

	want := []Shape{a, b}
	if !slices.Equal(c.Shapes(), want) {
		t.Errorf("expected %v, got %v", want, c.Shapes())
	}
}

func TestClearUndo(t *testing.T) {
	var c Canvas
	c.Append(testLine(1))
	c.Append(testLine(2))
	want := slices.Clone(c.Shapes())

	c.Clear()
	if c.Len() != 0 {
		t.Fatalf("expected empty canvas, got %d shapes", c.Len())
	}
	c.Undo()
	if !slices.Equal(c.Shapes(), want) {
		t.Errorf("expected %v, got %v", want, c.Shapes())
	}
	c.Redo()
	if c.Len() != 0 {
		t.Errorf("redo of clear: expected empty canvas, got %d shapes", c.Len())
	}
}

func TestClearEmptyCanvasIsUndoable(t *testing.T) {
	var c Canvas
	c.Clear()
	if c.History().UndoLen() != 1 {
		t.Errorf("expected 1 undo entry, got %d", c.History().UndoLen())
	}
}

func TestMutationDiscardsRedo(t *testing.T) {
	var c Canvas
	c.Append(testLine(1))
	c.Append(testLine(2))
	c.Undo()
	c.Undo()
	if c.History().RedoLen() != 2 {
		t.Fatalf("expected 2 redo entries, got %d", c.History().RedoLen())
	}

	c.Append(testLine(9))
	if c.History().RedoLen() != 0 {
		t.Errorf("expected empty redo stack, got %d entries", c.History().RedoLen())
	}
	if c.Redo() {
		t.Error("redo succeeded after a fresh mutation")
	}
	want := []Shape{testLine(9)}
	if !slices.Equal(c.Shapes(), want) {
		t.Errorf("expected %v, got %v", want, c.Shapes())
	}
}

// TestSnapshotsAreStable checks that a list returned by Shapes is not
// changed by later mutations.
func TestSnapshotsAreStable(t *testing.T) {
	var c Canvas
	c.Append(testLine(1))
	c.Append(testLine(2))
	c.Undo()
	old := c.Shapes()
	c.Append(testLine(3))
	c.Append(testLine(4))

	want := []Shape{testLine(1)}
	if !slices.Equal(old, want) {
		t.Errorf("old snapshot changed: expected %v, got %v", want, old)
	}

	shapes := c.Shapes()
	_ = append(shapes, testLine(5))
	if c.Len() != 3 {
		t.Errorf("appending to Shapes() changed the canvas")
	}
}
