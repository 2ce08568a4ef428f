// Package navigator translates movement actions into cursor and scroll
// mutations on a line buffer, keeping the cursor inside the visible
// viewport at all times.
package navigator

import (
	"github.com/larkterm/lark/internal/buffer"
	"github.com/larkterm/lark/internal/viewport"
)

// Direction identifies a cursor movement.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Navigator owns cursor movement over a buffer. Left and Right treat
// line boundaries as permeable: moving left off column 0 lands at the
// end of the previous line, moving right past the end of a line lands
// at the start of the next one.
type Navigator struct {
	buf       *buffer.Buffer
	view      *viewport.Viewport
	lookahead int
}

// New creates a navigator over buf using view for screen geometry.
// lookahead is the number of lines kept visible beyond the cursor
// before the viewport scrolls; negative values are treated as 0.
func New(buf *buffer.Buffer, view *viewport.Viewport, lookahead int) *Navigator {
	if lookahead < 0 {
		lookahead = 0
	}
	return &Navigator{buf: buf, view: view, lookahead: lookahead}
}

// SetLookahead updates the scroll lookahead margin.
func (n *Navigator) SetLookahead(lookahead int) {
	if lookahead < 0 {
		lookahead = 0
	}
	n.lookahead = lookahead
}

// Lookahead returns the configured scroll lookahead margin.
func (n *Navigator) Lookahead() int {
	return n.lookahead
}

// Move applies a single movement and re-establishes the scroll
// invariants.
func (n *Navigator) Move(dir Direction) {
	switch dir {
	case Up:
		n.moveVertical(-1)
	case Down:
		n.moveVertical(1)
	case Left:
		n.moveLeft()
	case Right:
		n.moveRight()
	}
	n.maintainScroll()
}

// LineStart moves the cursor to column 0 of the current line.
func (n *Navigator) LineStart() {
	n.buf.CursorX = 0
	n.buf.DesiredX = 0
	n.maintainScroll()
}

// LineEnd moves the cursor past the last character of the current line.
func (n *Navigator) LineEnd() {
	w := n.buf.LineWidth(n.buf.CursorY)
	n.buf.CursorX = w
	n.buf.DesiredX = w
	n.maintainScroll()
}

// PageUp moves the cursor up by one screenful.
func (n *Navigator) PageUp() {
	n.moveVertical(-n.view.ScreenRows())
	n.maintainScroll()
}

// PageDown moves the cursor down by one screenful.
func (n *Navigator) PageDown() {
	n.moveVertical(n.view.ScreenRows())
	n.maintainScroll()
}

// FirstLine moves the cursor to the first line of the buffer.
func (n *Navigator) FirstLine() {
	n.moveVertical(-n.buf.CursorY)
	n.maintainScroll()
}

// LastLine moves the cursor to the last line of the buffer.
func (n *Navigator) LastLine() {
	n.moveVertical(n.buf.LastLine() - n.buf.CursorY)
	n.maintainScroll()
}

// moveVertical shifts the cursor line by delta, saturating at the
// buffer edges, then reprojects the column from the desired column:
// the remembered column is kept when it fits and clamped to the end of
// a shorter line. DesiredX itself is untouched, so a later move back
// to a long line restores the original column.
func (n *Navigator) moveVertical(delta int) {
	b := n.buf
	y := b.CursorY + delta
	if y < 0 {
		y = 0
	}
	if last := b.LastLine(); y > last {
		y = last
	}
	b.CursorY = y
	b.CursorX = min(b.DesiredX, b.LineWidth(y))
}

// moveLeft moves one column left, wrapping to the end of the previous
// line from column 0. At the top-left corner there is nothing to wrap
// to and the cursor stays put. Either way the move is an explicit
// horizontal one, so it resets the desired column.
func (n *Navigator) moveLeft() {
	b := n.buf
	switch {
	case b.CursorX > 0:
		b.CursorX--
	case b.CursorY > 0:
		n.moveVertical(-1)
		b.CursorX = b.LineWidth(b.CursorY)
	}
	b.DesiredX = b.CursorX
}

// moveRight moves one column right. At or past the end of the line the
// cursor wraps to column 0 of the next line; on the last line the
// vertical move saturates, leaving the cursor at the start of that
// line.
func (n *Navigator) moveRight() {
	b := n.buf
	if b.CursorX >= b.LineWidth(b.CursorY) {
		b.ScrollX = 0
		b.CursorX = 0
		b.DesiredX = 0
		n.moveVertical(1)
		return
	}
	b.CursorX++
	b.DesiredX = b.CursorX
}
