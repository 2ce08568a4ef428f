// Package viewport derives the visible screen geometry from the
// terminal size and the line-number gutter.
package viewport

// Viewport tracks the terminal dimensions and the gutter width reserved
// for line numbers. The usable screen area is always derived from these
// on demand, so a resize or a change in line count can never leave a
// stale copy behind.
type Viewport struct {
	columns     int
	rows        int
	gutterWidth int
	showGutter  bool
}

// New creates a viewport for the given terminal size.
// Dimensions are clamped to a minimum of 1 to prevent underflow.
func New(columns, rows int) *Viewport {
	v := &Viewport{gutterWidth: 1, showGutter: true}
	v.Resize(columns, rows)
	return v
}

// Resize updates the terminal dimensions.
// Dimensions are clamped to a minimum of 1 to prevent underflow.
func (v *Viewport) Resize(columns, rows int) {
	if columns < 1 {
		columns = 1
	}
	if rows < 1 {
		rows = 1
	}
	v.columns = columns
	v.rows = rows
}

// SetLineCount recomputes the gutter width for a buffer of count lines.
// The gutter is as wide as the digit count of the largest line number.
func (v *Viewport) SetLineCount(count int) {
	v.gutterWidth = countDigits(count)
}

// Columns returns the full terminal width.
func (v *Viewport) Columns() int {
	return v.columns
}

// Rows returns the full terminal height.
func (v *Viewport) Rows() int {
	return v.rows
}

// SetGutterVisible toggles the line-number gutter. With the gutter
// hidden, content gets the full terminal width.
func (v *Viewport) SetGutterVisible(visible bool) {
	v.showGutter = visible
}

// GutterWidth returns the width of the line-number gutter, 0 when the
// gutter is hidden.
func (v *Viewport) GutterWidth() int {
	if !v.showGutter {
		return 0
	}
	return v.gutterWidth
}

// ContentOffset returns the screen column where buffer content starts:
// the gutter plus its separator, or 0 when the gutter is hidden.
func (v *Viewport) ContentOffset() int {
	if !v.showGutter {
		return 0
	}
	return v.gutterWidth + 1
}

// ScreenColumns returns the number of columns available for buffer
// content: the terminal width minus the gutter and its separator.
// Never less than 1, even when the terminal is narrower than the gutter.
func (v *Viewport) ScreenColumns() int {
	cols := v.columns - v.ContentOffset()
	if cols < 1 {
		cols = 1
	}
	return cols
}

// ScreenRows returns the number of rows available for buffer content.
// One row is reserved for the status line. Never less than 1.
func (v *Viewport) ScreenRows() int {
	rows := v.rows - 1
	if rows < 1 {
		rows = 1
	}
	return rows
}

// countDigits returns the number of digits needed to display n.
func countDigits(n int) int {
	if n <= 0 {
		return 1
	}
	digits := 0
	for n > 0 {
		digits++
		n /= 10
	}
	return digits
}
