// Package buffer owns the textual content of a viewing session together
// with the cursor and scroll state scoped to that content.
package buffer

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

// Buffer holds the lines of a single file plus the cursor and scroll
// offsets mutated while the user moves around.
//
// Content is immutable for the lifetime of the session; only the cursor
// and scroll fields change. The buffer is owned by the event loop and
// never accessed concurrently, so the fields are plain ints mutated in
// place by the navigator.
type Buffer struct {
	path  string
	lines []string

	// CursorY is the current line index, in [0, LineCount()).
	CursorY int

	// CursorX is the current column, in [0, LineWidth(CursorY)].
	// It may equal the line width (cursor "after last character").
	CursorX int

	// DesiredX is the column vertical moves try to restore. Only
	// explicit horizontal moves rewrite it, so travelling through a
	// short line and back to a long one lands on the original column.
	DesiredX int

	// ScrollY and ScrollX are the top-left visible offsets.
	ScrollY int
	ScrollX int
}

// New creates a buffer over pre-split lines. An empty slice is
// normalized to a single empty line so the cursor invariants hold for
// every reachable state.
func New(path string, lines []string) *Buffer {
	if len(lines) == 0 {
		lines = []string{""}
	}
	return &Buffer{path: path, lines: lines}
}

// Load reads the file at path and returns a buffer over its lines.
func Load(path string) (*Buffer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return New(path, SplitLines(string(data))), nil
}

// SplitLines splits file contents into lines, accepting both LF and
// CRLF endings. A trailing newline does not produce a final empty line.
func SplitLines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.TrimSuffix(s, "\n")
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// Path returns the file path the buffer was loaded from.
func (b *Buffer) Path() string {
	return b.path
}

// LineCount returns the number of lines. Never less than 1.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// Line returns the content of line idx, or "" when idx is out of range.
func (b *Buffer) Line(idx int) string {
	if idx < 0 || idx >= len(b.lines) {
		return ""
	}
	return b.lines[idx]
}

// LineWidth returns the width in runes of line idx. Out-of-range
// indexes behave as an empty trailing line and report width 0; no index
// is an error.
func (b *Buffer) LineWidth(idx int) int {
	if idx < 0 || idx >= len(b.lines) {
		return 0
	}
	return utf8.RuneCountInString(b.lines[idx])
}

// LastLine returns the index of the last line.
func (b *Buffer) LastLine() int {
	return len(b.lines) - 1
}
