// Package gutter renders the line number column on the left edge of
// the screen. Its width tracks the digit count of the buffer's line
// count, so a 99-line file gets a 2-column gutter and a 100-line file
// gets 3.
package gutter

import (
	"fmt"
	"strings"

	"github.com/larkterm/lark/internal/renderer/backend"
)

// Width returns the gutter width for a buffer with the given line
// count. The width is the number of digits in the count, minimum 1.
func Width(lineCount int) int {
	if lineCount < 10 {
		return 1
	}
	digits := 0
	for lineCount > 0 {
		digits++
		lineCount /= 10
	}
	return digits
}

// FormatNumber formats a 1-indexed line number right-aligned in the
// given width. For rows past the end of the buffer it returns a tilde
// marker in the last column, the way vi fills its screen.
func FormatNumber(line, lineCount, width int) string {
	if line < 1 || line > lineCount {
		return strings.Repeat(" ", width-1) + "~"
	}
	return fmt.Sprintf("%*d", width, line)
}

// Cells renders the gutter text for one screen row as styled cells,
// including the single separator column after the number. line is
// 1-indexed; rows past lineCount render the tilde filler.
func Cells(line, lineCount, width int) []backend.Cell {
	text := FormatNumber(line, lineCount, width)
	cells := make([]backend.Cell, 0, width+1)
	for _, r := range text {
		cells = append(cells, backend.NewStyledCell(r, backend.DimStyle()))
	}
	cells = append(cells, backend.EmptyCell())
	return cells
}
