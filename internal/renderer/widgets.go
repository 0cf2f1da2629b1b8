package renderer

import (
	"strings"

	"github.com/dshills/tabletop/internal/renderer/core"
)

// Box drawing runes.
const (
	boxHorizontal  = '─'
	boxVertical    = '│'
	boxTopLeft     = '┌'
	boxTopRight    = '┐'
	boxBottomLeft  = '└'
	boxBottomRight = '┘'
)

// Block is a bordered region with an optional title in the top border.
type Block struct {
	Title      string
	Border     core.Style
	TitleStyle core.Style
}

// Draw draws the border around area and returns the inner rectangle.
// Areas smaller than 2x2 get no border.
func (b Block) Draw(f *Frame, area core.ScreenRect) core.ScreenRect {
	if area.Width() < 2 || area.Height() < 2 {
		return area
	}

	top, bottom := area.Top, area.Bottom-1
	left, right := area.Left, area.Right-1

	for x := left + 1; x < right; x++ {
		f.Set(x, top, core.NewStyledCell(boxHorizontal, b.Border))
		f.Set(x, bottom, core.NewStyledCell(boxHorizontal, b.Border))
	}
	for y := top + 1; y < bottom; y++ {
		f.Set(left, y, core.NewStyledCell(boxVertical, b.Border))
		f.Set(right, y, core.NewStyledCell(boxVertical, b.Border))
	}
	f.Set(left, top, core.NewStyledCell(boxTopLeft, b.Border))
	f.Set(right, top, core.NewStyledCell(boxTopRight, b.Border))
	f.Set(left, bottom, core.NewStyledCell(boxBottomLeft, b.Border))
	f.Set(right, bottom, core.NewStyledCell(boxBottomRight, b.Border))

	if b.Title != "" {
		f.SetString(left+1, top, b.Title, b.TitleStyle, right)
	}

	return area.Inset(1, 1, 1, 1)
}

// List is a vertical list with one highlighted row.
type List struct {
	Items    []string
	Selected int

	Style     core.Style
	Highlight core.Style

	// Marker prefixes the selected row; other rows are padded to match.
	Marker string
}

// Draw draws as many items as fit, scrolled so the selection is visible.
func (l List) Draw(f *Frame, area core.ScreenRect) {
	if area.IsEmpty() {
		return
	}

	offset := 0
	if l.Selected >= area.Height() {
		offset = l.Selected - area.Height() + 1
	}

	pad := core.StringWidth(l.Marker)
	for row := 0; row < area.Height() && offset+row < len(l.Items); row++ {
		i := offset + row
		y := area.Top + row

		style := l.Style
		prefix := strings.Repeat(" ", pad)
		if i == l.Selected {
			style = l.Highlight
			prefix = l.Marker
			f.Fill(core.ScreenRect{Top: y, Left: area.Left, Bottom: y + 1, Right: area.Right},
				core.Cell{Rune: ' ', Width: 1, Style: style})
		}

		col := f.SetString(area.Left, y, prefix, style, area.Right)
		f.SetString(col, y, l.Items[i], style, area.Right)
	}
}

// Text is a single line of text, clipped to its area.
type Text struct {
	Content string
	Style   core.Style
}

// Draw writes the text on the first row of area and returns the column after it.
func (t Text) Draw(f *Frame, area core.ScreenRect) int {
	if area.IsEmpty() {
		return area.Left
	}
	return f.SetString(area.Left, area.Top, t.Content, t.Style, area.Right)
}
