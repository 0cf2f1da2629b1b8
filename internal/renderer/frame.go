package renderer

import (
	"strings"

	"github.com/dshills/tabletop/internal/renderer/core"
)

// Frame is a grid of cells plus an optional cursor position.
type Frame struct {
	width, height int
	cells         []core.Cell

	cursorX, cursorY int
	cursorVisible    bool
}

// NewFrame creates a blank frame.
func NewFrame(width, height int) *Frame {
	f := &Frame{}
	f.Resize(width, height)
	return f
}

// Size returns the frame dimensions.
func (f *Frame) Size() (width, height int) {
	return f.width, f.height
}

// Area returns the whole frame as a rectangle.
func (f *Frame) Area() core.ScreenRect {
	return core.RectFromSize(0, 0, f.height, f.width)
}

// Resize changes the dimensions and blanks the frame.
func (f *Frame) Resize(width, height int) {
	f.width = max(0, width)
	f.height = max(0, height)
	f.cells = make([]core.Cell, f.width*f.height)
	f.Reset()
}

// Reset blanks every cell and hides the cursor.
func (f *Frame) Reset() {
	empty := core.EmptyCell()
	for i := range f.cells {
		f.cells[i] = empty
	}
	f.cursorVisible = false
}

func (f *Frame) inBounds(x, y int) bool {
	return x >= 0 && x < f.width && y >= 0 && y < f.height
}

// Set sets a cell. Positions outside the frame are ignored.
func (f *Frame) Set(x, y int, cell core.Cell) {
	if f.inBounds(x, y) {
		f.cells[y*f.width+x] = cell
	}
}

// Cell returns the cell at a position, or an empty cell outside the frame.
func (f *Frame) Cell(x, y int) core.Cell {
	if !f.inBounds(x, y) {
		return core.EmptyCell()
	}
	return f.cells[y*f.width+x]
}

// Fill sets every cell of rect.
func (f *Frame) Fill(rect core.ScreenRect, cell core.Cell) {
	rect = rect.Intersection(f.Area())
	for y := rect.Top; y < rect.Bottom; y++ {
		for x := rect.Left; x < rect.Right; x++ {
			f.cells[y*f.width+x] = cell
		}
	}
}

// SetString writes s at (x, y) without crossing column limit (exclusive).
// A wide rune that would straddle the limit is not drawn. Returns the column
// after the last cell written.
func (f *Frame) SetString(x, y int, s string, style core.Style, limit int) int {
	limit = min(limit, f.width)
	col := x
	for _, r := range s {
		w := core.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col+w > limit {
			break
		}
		f.Set(col, y, core.Cell{Rune: r, Width: w, Style: style})
		if w == 2 {
			f.Set(col+1, y, core.ContinuationCell())
		}
		col += w
	}
	return col
}

// SetCursor shows the terminal cursor at (x, y) after the flush.
func (f *Frame) SetCursor(x, y int) {
	f.cursorX, f.cursorY = x, y
	f.cursorVisible = true
}

// Cursor returns the cursor position and whether it is shown.
func (f *Frame) Cursor() (x, y int, visible bool) {
	return f.cursorX, f.cursorY, f.cursorVisible
}

// Row returns the text of row y with trailing blanks trimmed.
func (f *Frame) Row(y int) string {
	if y < 0 || y >= f.height {
		return ""
	}
	var sb strings.Builder
	for _, c := range f.cells[y*f.width : (y+1)*f.width] {
		if c.IsContinuation() {
			continue
		}
		sb.WriteRune(c.Rune)
	}
	return strings.TrimRight(sb.String(), " ")
}

// String returns all rows joined by newlines.
func (f *Frame) String() string {
	rows := make([]string, f.height)
	for y := range rows {
		rows[y] = f.Row(y)
	}
	return strings.Join(rows, "\n")
}

// Equal reports whether two frames have the same size, cells and cursor.
func (f *Frame) Equal(other *Frame) bool {
	if f.width != other.width || f.height != other.height {
		return false
	}
	if f.cursorVisible != other.cursorVisible {
		return false
	}
	if f.cursorVisible && (f.cursorX != other.cursorX || f.cursorY != other.cursorY) {
		return false
	}
	for i := range f.cells {
		if !f.cells[i].Equals(other.cells[i]) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy.
func (f *Frame) Clone() *Frame {
	c := *f
	c.cells = append([]core.Cell(nil), f.cells...)
	return &c
}
