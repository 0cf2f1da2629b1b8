package renderer

import (
	"testing"

	"github.com/dshills/tabletop/internal/renderer/core"
)

func TestFrameSetString(t *testing.T) {
	f := NewFrame(10, 2)

	end := f.SetString(1, 0, "hello world", core.DefaultStyle(), 8)
	if end != 8 {
		t.Errorf("end column = %d, want 8", end)
	}
	if got := f.Row(0); got != " hello w" {
		t.Errorf("Row(0) = %q", got)
	}
}

func TestFrameSetStringWide(t *testing.T) {
	f := NewFrame(5, 1)

	// Third wide rune would straddle the limit.
	end := f.SetString(0, 0, "世界人", core.DefaultStyle(), 5)
	if end != 4 {
		t.Errorf("end column = %d, want 4", end)
	}
	if !f.Cell(1, 0).IsContinuation() {
		t.Error("expected continuation after wide rune")
	}
	if got := f.Row(0); got != "世界" {
		t.Errorf("Row(0) = %q", got)
	}
}

func TestFrameBounds(t *testing.T) {
	f := NewFrame(3, 3)
	f.Set(-1, 0, core.NewStyledCell('x', core.DefaultStyle()))
	f.Set(3, 0, core.NewStyledCell('x', core.DefaultStyle()))
	if f.String() != "\n\n" {
		t.Errorf("out of bounds writes changed the frame: %q", f.String())
	}
	if !f.Cell(5, 5).Equals(core.EmptyCell()) {
		t.Error("out of bounds Cell should be empty")
	}

	f.Fill(core.RectFromSize(1, 1, 10, 10), core.NewStyledCell('#', core.DefaultStyle()))
	if got := f.String(); got != "\n ##\n ##" {
		t.Errorf("Fill = %q", got)
	}
}

func TestFrameResetAndEqual(t *testing.T) {
	a := NewFrame(4, 2)
	a.SetString(0, 0, "ab", core.DefaultStyle(), 4)
	a.SetCursor(2, 0)

	b := a.Clone()
	if !a.Equal(b) {
		t.Error("clone should be equal")
	}

	b.SetCursor(3, 0)
	if a.Equal(b) {
		t.Error("different cursor should not be equal")
	}

	a.Reset()
	if _, _, vis := a.Cursor(); vis {
		t.Error("Reset should hide the cursor")
	}
	if a.Row(0) != "" {
		t.Errorf("Row after Reset = %q", a.Row(0))
	}
	if a.Equal(NewFrame(5, 2)) {
		t.Error("frames of different size should not be equal")
	}
}
