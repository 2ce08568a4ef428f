// Package backend provides the terminal abstraction the renderer draws
// through. The real implementation sits on tcell; NullBackend is an
// in-memory stand-in for tests.
package backend

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Attr represents text attributes.
type Attr uint8

// Text attribute flags.
const (
	AttrNone Attr = 0
	AttrDim  Attr = 1 << iota
	AttrBold
	AttrReverse
)

// Has returns true if the attribute set contains attr.
func (a Attr) Has(attr Attr) bool {
	return a&attr != 0
}

// Style is the visual style of a cell.
type Style struct {
	Attrs Attr
}

// DefaultStyle returns the terminal's default style.
func DefaultStyle() Style {
	return Style{}
}

// DimStyle returns a dimmed style, used for the gutter and filler rows.
func DimStyle() Style {
	return Style{Attrs: AttrDim}
}

// ReverseStyle returns a reverse-video style, used for the status line.
func ReverseStyle() Style {
	return Style{Attrs: AttrReverse}
}

// Cell is a single terminal cell.
type Cell struct {
	Rune  rune
	Width int
	Style Style
}

// NewCell creates a cell with the default style.
func NewCell(r rune) Cell {
	return Cell{Rune: r, Width: runewidth.RuneWidth(r), Style: DefaultStyle()}
}

// NewStyledCell creates a cell with the given style.
func NewStyledCell(r rune, style Style) Cell {
	return Cell{Rune: r, Width: runewidth.RuneWidth(r), Style: style}
}

// EmptyCell returns a blank cell with the default style.
func EmptyCell() Cell {
	return Cell{Rune: ' ', Width: 1, Style: DefaultStyle()}
}

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventResize

	// EventInterrupt wakes a blocked PollEvent without carrying any
	// payload. Posted by background work that needs the main loop's
	// attention.
	EventInterrupt
)

// Event represents a terminal event. Only key presses are reported;
// tcell does not emit release events.
type Event struct {
	Type EventType

	// Key event fields.
	Key  Key
	Rune rune
	Mod  ModMask

	// Resize event fields.
	Width, Height int
}

// Key represents a keyboard key.
type Key int

// Key constants for the keys the viewer understands.
const (
	KeyNone Key = iota
	KeyRune     // Regular character (use Rune field)
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// ModMask represents modifier key state.
type ModMask int

const (
	ModNone  ModMask = 0
	ModShift ModMask = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

// Has returns true if the mask contains the given modifier.
func (m ModMask) Has(mod ModMask) bool {
	return m&mod != 0
}

// Backend defines the drawing and event surface the application runs
// against. Implementations own the terminal lifecycle: Init acquires
// raw mode and the alternate screen, Shutdown restores the user's
// terminal and must be safe to call on every exit path.
type Backend interface {
	// Init initializes the backend for use.
	// Must be called before any other method.
	Init() error

	// Shutdown releases backend resources and restores terminal state.
	Shutdown()

	// Size returns the current terminal dimensions.
	Size() (width, height int)

	// SetCell sets a single cell at the given position.
	// Positions outside the terminal are silently ignored.
	SetCell(x, y int, cell Cell)

	// Clear clears the entire screen with the default style.
	Clear()

	// Show flushes pending changes to the display.
	Show() error

	// ShowCursor positions and displays the cursor.
	ShowCursor(x, y int)

	// HideCursor hides the cursor.
	HideCursor()

	// PollEvent waits for and returns the next terminal event.
	// This is a blocking call.
	PollEvent() Event

	// PostEvent posts a synthetic event to the event queue.
	PostEvent(event Event)
}

// NullBackend is an in-memory backend for testing.
type NullBackend struct {
	width, height int
	cells         [][]Cell
	cursorX       int
	cursorY       int
	cursorVisible bool
	events        chan Event
}

// NewNullBackend creates a null backend with the given dimensions.
func NewNullBackend(width, height int) *NullBackend {
	return &NullBackend{
		width:  width,
		height: height,
		events: make(chan Event, 100),
	}
}

func (b *NullBackend) Init() error {
	b.allocate()
	return nil
}

func (b *NullBackend) Shutdown() {}

func (b *NullBackend) Size() (int, int) {
	return b.width, b.height
}

func (b *NullBackend) SetCell(x, y int, cell Cell) {
	if x >= 0 && x < b.width && y >= 0 && y < b.height {
		b.cells[y][x] = cell
	}
}

func (b *NullBackend) Clear() {
	for y := range b.cells {
		for x := range b.cells[y] {
			b.cells[y][x] = EmptyCell()
		}
	}
}

func (b *NullBackend) Show() error { return nil }

func (b *NullBackend) ShowCursor(x, y int) {
	b.cursorX = x
	b.cursorY = y
	b.cursorVisible = true
}

func (b *NullBackend) HideCursor() {
	b.cursorVisible = false
}

func (b *NullBackend) PollEvent() Event {
	return <-b.events
}

func (b *NullBackend) PostEvent(event Event) {
	select {
	case b.events <- event:
	default:
		// Queue full; drop so tests never block here.
	}
}

// CursorPosition returns the current cursor position for testing.
func (b *NullBackend) CursorPosition() (x, y int, visible bool) {
	return b.cursorX, b.cursorY, b.cursorVisible
}

// CellAt returns the cell at (x, y) for testing.
func (b *NullBackend) CellAt(x, y int) Cell {
	if x >= 0 && x < b.width && y >= 0 && y < b.height {
		return b.cells[y][x]
	}
	return EmptyCell()
}

// Row returns the text content of screen row y with trailing blanks
// trimmed, for testing.
func (b *NullBackend) Row(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	var sb strings.Builder
	for x := 0; x < b.width; x++ {
		sb.WriteRune(b.cells[y][x].Rune)
	}
	return strings.TrimRight(sb.String(), " ")
}

// Resize simulates a terminal resize for testing.
func (b *NullBackend) Resize(width, height int) {
	b.width = width
	b.height = height
	b.allocate()
	b.PostEvent(Event{Type: EventResize, Width: width, Height: height})
}

func (b *NullBackend) allocate() {
	b.cells = make([][]Cell, b.height)
	for i := range b.cells {
		b.cells[i] = make([]Cell, b.width)
		for j := range b.cells[i] {
			b.cells[i][j] = EmptyCell()
		}
	}
}
