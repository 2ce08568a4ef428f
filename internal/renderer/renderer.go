// Package renderer draws a buffer through a backend: line numbers in
// the gutter, the visible slice of each line, tilde filler past the
// end of the buffer, and a status line on the bottom row.
package renderer

import (
	"github.com/larkterm/lark/internal/buffer"
	"github.com/larkterm/lark/internal/renderer/backend"
	"github.com/larkterm/lark/internal/renderer/gutter"
	"github.com/larkterm/lark/internal/viewport"
)

// Renderer draws complete frames. Every frame is a full redraw; the
// backend's buffer diffing keeps the terminal writes small.
type Renderer struct {
	backend backend.Backend
}

// New creates a renderer that draws through the given backend.
func New(b backend.Backend) *Renderer {
	return &Renderer{backend: b}
}

// Render draws one complete frame for the buffer and viewport and
// flushes it to the display.
func (r *Renderer) Render(buf *buffer.Buffer, view *viewport.Viewport) error {
	r.backend.Clear()

	offset := view.ContentOffset()
	rows := view.ScreenRows()
	cols := view.ScreenColumns()
	lineCount := buf.LineCount()

	for row := 0; row < rows; row++ {
		lineIdx := buf.ScrollY + row

		if offset > 0 {
			x := 0
			for _, cell := range gutter.Cells(lineIdx+1, lineCount, view.GutterWidth()) {
				r.backend.SetCell(x, row, cell)
				x += max(cell.Width, 1)
			}
		} else if lineIdx >= lineCount {
			// No gutter, so the filler marker stands alone.
			r.backend.SetCell(0, row, backend.NewStyledCell('~', backend.DimStyle()))
		}

		if lineIdx >= lineCount {
			continue
		}
		r.drawLine(buf.Line(lineIdx), buf.ScrollX, cols, offset, row)
	}

	r.drawStatusLine(buf, view)

	r.backend.ShowCursor(
		buf.CursorX-buf.ScrollX+offset,
		buf.CursorY-buf.ScrollY,
	)
	return r.backend.Show()
}

// drawLine draws the visible slice of one buffer line starting at
// screen column x. scrollX and width are in rune columns.
func (r *Renderer) drawLine(line string, scrollX, width, x, y int) {
	runes := []rune(line)
	if scrollX >= len(runes) {
		return
	}
	visible := runes[scrollX:]
	if len(visible) > width {
		visible = visible[:width]
	}
	for _, ch := range visible {
		cell := backend.NewCell(ch)
		r.backend.SetCell(x, y, cell)
		x += max(cell.Width, 1)
	}
}

// drawStatusLine draws the reverse-video status row: file path on the
// left, cursor position and scroll percentage on the right.
func (r *Renderer) drawStatusLine(buf *buffer.Buffer, view *viewport.Viewport) {
	y := view.Rows() - 1
	width := view.Columns()
	text := statusText(buf, width)

	x := 0
	for _, ch := range text {
		cell := backend.NewStyledCell(ch, backend.ReverseStyle())
		r.backend.SetCell(x, y, cell)
		x += max(cell.Width, 1)
		if x >= width {
			break
		}
	}
	for ; x < width; x++ {
		r.backend.SetCell(x, y, backend.NewStyledCell(' ', backend.ReverseStyle()))
	}
}
