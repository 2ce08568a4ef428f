package renderer

import (
	"fmt"

	"github.com/larkterm/lark/internal/buffer"
)

// statusText formats the status line content for the given width:
// the file path on the left, then the 1-indexed cursor position and
// how far through the file the cursor is.
func statusText(buf *buffer.Buffer, width int) string {
	left := " " + buf.Path() + " [ro]"
	right := fmt.Sprintf("%d:%d  %s ", buf.CursorY+1, buf.CursorX+1, percentThrough(buf))

	gap := width - len([]rune(left)) - len([]rune(right))
	if gap < 1 {
		// Too narrow for both sides; the path wins.
		return left
	}
	return left + fmt.Sprintf("%*s", gap+len([]rune(right)), right)
}

// percentThrough reports the cursor's position in the file the way
// pagers do: Top on the first line, Bot on the last, a percentage in
// between.
func percentThrough(buf *buffer.Buffer) string {
	last := buf.LastLine()
	switch {
	case buf.CursorY == 0:
		return "Top"
	case buf.CursorY >= last:
		return "Bot"
	default:
		return fmt.Sprintf("%d%%", buf.CursorY*100/last)
	}
}
