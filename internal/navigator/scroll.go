package navigator

// maintainScroll re-establishes the viewport containment invariants
// after a cursor mutation. Each axis is evaluated independently; on
// each axis the near-edge check runs before the far-edge check so a
// state satisfying neither is left untouched.
func (n *Navigator) maintainScroll() {
	b := n.buf
	rows := n.view.ScreenRows()
	cols := n.view.ScreenColumns()

	// On screens shorter than twice the margin the configured
	// lookahead would make the up and down rules fight each other,
	// so it is capped at half the usable height.
	la := n.lookahead
	if m := (rows - 1) / 2; la > m {
		la = m
	}

	cy := b.CursorY
	cx := b.CursorX

	// Scroll up.
	if cy-la < b.ScrollY {
		b.ScrollY = max(cy-la, 0)
	}
	// Scroll down.
	if cy+la >= b.ScrollY+rows {
		sy := min(cy+la, b.LastLine()) - rows
		// Keep the cursor on the last content row when the
		// lookahead window runs past the end of the buffer.
		if sy < cy-rows+1 {
			sy = cy - rows + 1
		}
		b.ScrollY = max(sy, 0)
	}
	// Scroll left.
	if cx < b.ScrollX {
		b.ScrollX = cx
	}
	// Scroll right.
	if cx >= b.ScrollX+cols {
		b.ScrollX = cx - cols + 1
	}
}

// Reclamp re-establishes the scroll invariants without moving the
// cursor, for when the screen geometry changes under the viewport
// (terminal resize).
func (n *Navigator) Reclamp() {
	n.maintainScroll()
}
