package renderer

import (
	"github.com/dshills/tabletop/internal/renderer/backend"
)

// Renderer owns the frame views draw into and flushes it to a backend.
type Renderer struct {
	backend backend.Backend

	frame *Frame
	// front is the last frame written to the backend; nil forces a full redraw.
	front *Frame

	frameCount uint64
}

// New creates a renderer for an initialized backend.
func New(be backend.Backend) *Renderer {
	w, h := be.Size()
	return &Renderer{
		backend: be,
		frame:   NewFrame(w, h),
	}
}

// Render runs one pass: reset the frame, draw, flush the difference.
func (r *Renderer) Render(draw func(*Frame)) {
	w, h := r.backend.Size()
	if fw, fh := r.frame.Size(); fw != w || fh != h {
		r.frame.Resize(w, h)
		r.front = nil
	}

	r.frame.Reset()
	draw(r.frame)
	r.flush()
	r.frameCount++
}

func (r *Renderer) flush() {
	if r.front == nil {
		r.backend.Clear()
	}

	w, h := r.frame.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cell := r.frame.Cell(x, y)
			if r.front != nil && cell.Equals(r.front.Cell(x, y)) {
				continue
			}
			r.backend.SetCell(x, y, cell)
		}
	}

	if x, y, visible := r.frame.Cursor(); visible {
		r.backend.ShowCursor(x, y)
	} else {
		r.backend.HideCursor()
	}

	r.backend.Show()
	r.front = r.frame.Clone()
}

// Invalidate forces the next pass to rewrite every cell.
func (r *Renderer) Invalidate() {
	r.front = nil
}

// Frame returns the frame of the most recent pass.
func (r *Renderer) Frame() *Frame {
	return r.frame
}

// FrameCount returns the number of completed passes.
func (r *Renderer) FrameCount() uint64 {
	return r.frameCount
}
