package navigator

import (
	"testing"

	"github.com/larkterm/lark/internal/buffer"
	"github.com/larkterm/lark/internal/viewport"
)

// newTestNavigator builds a navigator over the given lines with an
// 80x24 terminal and the default lookahead.
func newTestNavigator(lines ...string) (*Navigator, *buffer.Buffer) {
	buf := buffer.New("test.txt", lines)
	view := viewport.New(80, 24)
	view.SetLineCount(buf.LineCount())
	return New(buf, view, 6), buf
}

func TestMoveDownClampsAtLastLine(t *testing.T) {
	n, buf := newTestNavigator("a", "b")

	n.Move(Down)
	if buf.CursorY != 1 {
		t.Errorf("CursorY = %d, want 1", buf.CursorY)
	}

	n.Move(Down)
	if buf.CursorY != 1 {
		t.Errorf("CursorY after saturating Down = %d, want 1", buf.CursorY)
	}
}

func TestMoveUpClampsAtFirstLine(t *testing.T) {
	n, buf := newTestNavigator("a", "b")

	n.Move(Up)
	if buf.CursorY != 0 {
		t.Errorf("CursorY = %d, want 0", buf.CursorY)
	}
}

func TestRightAdvancesToEndOfLine(t *testing.T) {
	n, buf := newTestNavigator("abc")

	for i := 0; i < 3; i++ {
		n.Move(Right)
	}
	// The cursor may sit after the last character.
	if buf.CursorX != 3 {
		t.Errorf("CursorX = %d, want 3", buf.CursorX)
	}
	if buf.CursorY != 0 {
		t.Errorf("CursorY = %d, want 0", buf.CursorY)
	}
}

func TestRightWrapsToNextLine(t *testing.T) {
	n, buf := newTestNavigator("abc", "xyz")
	buf.CursorX = 3
	buf.DesiredX = 3

	n.Move(Right)

	if buf.CursorY != 1 || buf.CursorX != 0 {
		t.Errorf("cursor = (%d,%d), want (1,0)", buf.CursorY, buf.CursorX)
	}
	if buf.DesiredX != 0 {
		t.Errorf("DesiredX = %d, want 0", buf.DesiredX)
	}
	if buf.ScrollX != 0 {
		t.Errorf("ScrollX = %d, want 0", buf.ScrollX)
	}
}

func TestRightOnLastLineSaturates(t *testing.T) {
	n, buf := newTestNavigator("abc")
	buf.CursorX = 3
	buf.DesiredX = 3

	n.Move(Right)

	// The wrap still resets the column, but Down saturates.
	if buf.CursorY != 0 {
		t.Errorf("CursorY = %d, want 0", buf.CursorY)
	}
	if buf.CursorX != 0 {
		t.Errorf("CursorX = %d, want 0", buf.CursorX)
	}
}

func TestLeftWrapsToPreviousLineEnd(t *testing.T) {
	n, buf := newTestNavigator("hello", "x")
	buf.CursorY = 1

	n.Move(Left)

	if buf.CursorY != 0 || buf.CursorX != 5 {
		t.Errorf("cursor = (%d,%d), want (0,5)", buf.CursorY, buf.CursorX)
	}
	if buf.DesiredX != 5 {
		t.Errorf("DesiredX = %d, want 5", buf.DesiredX)
	}
}

func TestLeftAtTopLeftCornerIsNoOp(t *testing.T) {
	n, buf := newTestNavigator("hello", "world")

	n.Move(Left)

	if buf.CursorY != 0 || buf.CursorX != 0 {
		t.Errorf("cursor = (%d,%d), want (0,0)", buf.CursorY, buf.CursorX)
	}
	if buf.ScrollY != 0 || buf.ScrollX != 0 {
		t.Errorf("scroll = (%d,%d), want (0,0)", buf.ScrollY, buf.ScrollX)
	}
}

func TestDesiredColumnRestoredAcrossShortLine(t *testing.T) {
	n, buf := newTestNavigator("long line here", "ab", "another long line")

	// Move to column 8 on the long first line.
	for i := 0; i < 8; i++ {
		n.Move(Right)
	}
	if buf.CursorX != 8 || buf.DesiredX != 8 {
		t.Fatalf("setup failed: CursorX=%d DesiredX=%d", buf.CursorX, buf.DesiredX)
	}

	// Down onto the short line clamps the visible column.
	n.Move(Down)
	if buf.CursorX != 2 {
		t.Errorf("CursorX on short line = %d, want 2", buf.CursorX)
	}
	if buf.DesiredX != 8 {
		t.Errorf("DesiredX = %d, want 8 (vertical moves keep it)", buf.DesiredX)
	}

	// Back up restores the original column.
	n.Move(Up)
	if buf.CursorX != 8 {
		t.Errorf("CursorX restored = %d, want 8", buf.CursorX)
	}

	// Down twice lands on the other long line at the desired column.
	n.Move(Down)
	n.Move(Down)
	if buf.CursorX != 8 {
		t.Errorf("CursorX on second long line = %d, want 8", buf.CursorX)
	}
}

func TestExplicitHorizontalMoveResetsDesired(t *testing.T) {
	n, buf := newTestNavigator("abcdefgh", "xy")
	buf.CursorX = 6
	buf.DesiredX = 6

	n.Move(Left)
	if buf.DesiredX != 5 {
		t.Errorf("DesiredX after Left = %d, want 5", buf.DesiredX)
	}

	n.Move(Down)
	if buf.CursorX != 2 {
		t.Errorf("CursorX = %d, want 2", buf.CursorX)
	}
}

// Walking right across a full line plus one lands exactly at the start
// of the next line.
func TestRoundTripAcrossLineBoundary(t *testing.T) {
	n, buf := newTestNavigator("0123456789", "", "abcde")

	for i := 0; i < 10; i++ {
		n.Move(Right)
	}
	if buf.CursorY != 0 || buf.CursorX != 10 {
		t.Fatalf("cursor = (%d,%d), want (0,10)", buf.CursorY, buf.CursorX)
	}

	n.Move(Right)
	if buf.CursorY != 1 || buf.CursorX != 0 {
		t.Errorf("cursor = (%d,%d), want (1,0)", buf.CursorY, buf.CursorX)
	}
	if buf.ScrollX != 0 {
		t.Errorf("ScrollX = %d, want 0", buf.ScrollX)
	}

	// Down from the empty line clamps against the 5-wide line.
	n.Move(Down)
	if buf.CursorY != 2 {
		t.Errorf("CursorY = %d, want 2", buf.CursorY)
	}
	if want := min(buf.DesiredX, 5); buf.CursorX != want {
		t.Errorf("CursorX = %d, want %d", buf.CursorX, want)
	}
}

func TestLineStartAndEnd(t *testing.T) {
	n, buf := newTestNavigator("hello world")
	buf.CursorX = 4
	buf.DesiredX = 4

	n.LineEnd()
	if buf.CursorX != 11 || buf.DesiredX != 11 {
		t.Errorf("after LineEnd: CursorX=%d DesiredX=%d, want 11/11", buf.CursorX, buf.DesiredX)
	}

	n.LineStart()
	if buf.CursorX != 0 || buf.DesiredX != 0 {
		t.Errorf("after LineStart: CursorX=%d DesiredX=%d, want 0/0", buf.CursorX, buf.DesiredX)
	}
}

func TestPageMovement(t *testing.T) {
	lines := make([]string, 100)
	for i := range lines {
		lines[i] = "line"
	}
	buf := buffer.New("test.txt", lines)
	view := viewport.New(80, 24)
	view.SetLineCount(buf.LineCount())
	n := New(buf, view, 6)

	n.PageDown()
	if buf.CursorY != view.ScreenRows() {
		t.Errorf("CursorY after PageDown = %d, want %d", buf.CursorY, view.ScreenRows())
	}

	n.PageUp()
	if buf.CursorY != 0 {
		t.Errorf("CursorY after PageUp = %d, want 0", buf.CursorY)
	}
}

func TestFirstAndLastLine(t *testing.T) {
	lines := make([]string, 50)
	for i := range lines {
		lines[i] = "text"
	}
	buf := buffer.New("test.txt", lines)
	view := viewport.New(80, 24)
	view.SetLineCount(buf.LineCount())
	n := New(buf, view, 6)

	n.LastLine()
	if buf.CursorY != 49 {
		t.Errorf("CursorY after LastLine = %d, want 49", buf.CursorY)
	}

	n.FirstLine()
	if buf.CursorY != 0 {
		t.Errorf("CursorY after FirstLine = %d, want 0", buf.CursorY)
	}
}

func TestDirectionString(t *testing.T) {
	tests := []struct {
		dir  Direction
		want string
	}{
		{Up, "up"},
		{Down, "down"},
		{Left, "left"},
		{Right, "right"},
		{Direction(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.dir.String(); got != tt.want {
			t.Errorf("Direction(%d).String() = %q, want %q", tt.dir, got, tt.want)
		}
	}
}
