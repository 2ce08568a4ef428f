package key

import (
	"strings"

	"github.com/larkterm/lark/internal/renderer/backend"
)

// Modifier is a bitmask of modifier keys held during a press.
type Modifier int

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << iota
	ModCtrl
	ModAlt
)

// Has returns true if the modifier set contains mod.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// Event is a single normalized key press.
type Event struct {
	Key  Key
	Rune rune
	Mods Modifier
}

// Equals reports whether two events describe the same press.
func (e Event) Equals(other Event) bool {
	return e.Key == other.Key && e.Rune == other.Rune && e.Mods == other.Mods
}

// String renders the event in spec form, e.g. "q", "C-c", "Left".
func (e Event) String() string {
	var sb strings.Builder
	if e.Mods.Has(ModCtrl) {
		sb.WriteString("C-")
	}
	if e.Mods.Has(ModAlt) {
		sb.WriteString("A-")
	}
	if e.Mods.Has(ModShift) && e.Key != KeyRune {
		sb.WriteString("S-")
	}
	if e.Key == KeyRune {
		sb.WriteRune(e.Rune)
	} else {
		sb.WriteString(e.Key.String())
	}
	return sb.String()
}

// backendKeys maps the backend's key codes to ours. The two sets are
// kept separate so the keymap never imports terminal details.
var backendKeys = map[backend.Key]Key{
	backend.KeyRune:      KeyRune,
	backend.KeyEscape:    KeyEscape,
	backend.KeyEnter:     KeyEnter,
	backend.KeyTab:       KeyTab,
	backend.KeyBackspace: KeyBackspace,
	backend.KeyDelete:    KeyDelete,
	backend.KeyHome:      KeyHome,
	backend.KeyEnd:       KeyEnd,
	backend.KeyPageUp:    KeyPageUp,
	backend.KeyPageDown:  KeyPageDown,
	backend.KeyUp:        KeyUp,
	backend.KeyDown:      KeyDown,
	backend.KeyLeft:      KeyLeft,
	backend.KeyRight:     KeyRight,
}

// FromBackend converts a backend key event to a normalized Event.
// Non-key events and unknown keys produce a KeyNone event the keymap
// will not match.
func FromBackend(ev backend.Event) Event {
	if ev.Type != backend.EventKey {
		return Event{}
	}

	var mods Modifier
	if ev.Mod.Has(backend.ModShift) {
		mods |= ModShift
	}
	if ev.Mod.Has(backend.ModCtrl) {
		mods |= ModCtrl
	}
	if ev.Mod.Has(backend.ModAlt) || ev.Mod.Has(backend.ModMeta) {
		mods |= ModAlt
	}

	k, ok := backendKeys[ev.Key]
	if !ok {
		return Event{}
	}

	e := Event{Key: k, Mods: mods}
	if k == KeyRune {
		e.Rune = ev.Rune
		// Shift is already baked into the rune for plain characters.
		e.Mods &^= ModShift
	}
	return e
}
