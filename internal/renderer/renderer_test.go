package renderer

import (
	"testing"

	"github.com/dshills/tabletop/internal/renderer/backend"
	"github.com/dshills/tabletop/internal/renderer/core"
)

// countingBackend records SetCell calls.
type countingBackend struct {
	*backend.NullBackend
	sets   int
	clears int
}

func (b *countingBackend) SetCell(x, y int, c core.Cell) {
	b.sets++
	b.NullBackend.SetCell(x, y, c)
}

func (b *countingBackend) Clear() {
	b.clears++
	b.NullBackend.Clear()
}

func TestRendererFlushesOnlyChanges(t *testing.T) {
	be := &countingBackend{NullBackend: backend.NewNullBackend(10, 3)}
	r := New(be)

	text := "hi"
	draw := func(f *Frame) {
		f.SetString(0, 0, text, core.DefaultStyle(), 10)
	}

	r.Render(draw)
	if be.sets != 30 || be.clears != 1 {
		t.Errorf("first pass: sets=%d clears=%d, want 30/1", be.sets, be.clears)
	}
	if got := be.Row(0); got != "hi" {
		t.Errorf("backend row = %q", got)
	}

	be.sets = 0
	r.Render(draw)
	if be.sets != 0 {
		t.Errorf("identical pass wrote %d cells", be.sets)
	}

	text = "ho"
	r.Render(draw)
	if be.sets != 1 {
		t.Errorf("one-cell change wrote %d cells", be.sets)
	}
	if got := be.Row(0); got != "ho" {
		t.Errorf("backend row = %q", got)
	}
	if r.FrameCount() != 3 || be.Shows() != 3 {
		t.Errorf("FrameCount=%d Shows=%d", r.FrameCount(), be.Shows())
	}
}

func TestRendererResize(t *testing.T) {
	be := &countingBackend{NullBackend: backend.NewNullBackend(4, 1)}
	r := New(be)
	r.Render(func(*Frame) {})

	be.Resize(6, 2)
	be.sets = 0
	r.Render(func(*Frame) {})

	if w, h := r.Frame().Size(); w != 6 || h != 2 {
		t.Errorf("frame size = %dx%d", w, h)
	}
	if be.sets != 12 || be.clears != 2 {
		t.Errorf("resize pass: sets=%d clears=%d, want 12/2", be.sets, be.clears)
	}
}

func TestRendererCursor(t *testing.T) {
	be := backend.NewNullBackend(5, 1)
	r := New(be)

	r.Render(func(f *Frame) { f.SetCursor(2, 0) })
	if x, y, vis := be.CursorPosition(); !vis || x != 2 || y != 0 {
		t.Errorf("cursor = %d,%d,%v", x, y, vis)
	}

	r.Render(func(*Frame) {})
	if _, _, vis := be.CursorPosition(); vis {
		t.Error("cursor should be hidden")
	}
}

func TestRendererInvalidate(t *testing.T) {
	be := &countingBackend{NullBackend: backend.NewNullBackend(2, 2)}
	r := New(be)
	r.Render(func(*Frame) {})

	r.Invalidate()
	be.sets = 0
	r.Render(func(*Frame) {})
	if be.sets != 4 {
		t.Errorf("invalidated pass wrote %d cells, want 4", be.sets)
	}
}
