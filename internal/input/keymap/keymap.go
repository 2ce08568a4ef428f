// Package keymap maps key presses to named actions. Actions are plain
// strings like "cursor.moveLeft"; the application dispatches on them.
package keymap

import (
	"fmt"

	"github.com/larkterm/lark/internal/input/key"
)

// Binding pairs a key spec with an action name. This is the shape
// bindings take in config files.
type Binding struct {
	Keys   string `json:"keys"`
	Action string `json:"action"`
}

// Keymap resolves key events to action names. Later Add calls replace
// earlier bindings for the same key, so user bindings layered on top
// of the defaults win.
type Keymap struct {
	bindings map[key.Event]string
}

// New creates an empty keymap.
func New() *Keymap {
	return &Keymap{bindings: make(map[key.Event]string)}
}

// Add binds a parsed key spec to an action, replacing any existing
// binding for the same key.
func (k *Keymap) Add(b Binding) error {
	ev, err := key.Parse(b.Keys)
	if err != nil {
		return fmt.Errorf("binding %q: %w", b.Keys, err)
	}
	if b.Action == "" {
		return fmt.Errorf("binding %q: empty action", b.Keys)
	}
	k.bindings[ev] = b.Action
	return nil
}

// AddAll adds a list of bindings, stopping at the first invalid one.
func (k *Keymap) AddAll(bindings []Binding) error {
	for _, b := range bindings {
		if err := k.Add(b); err != nil {
			return err
		}
	}
	return nil
}

// Lookup returns the action bound to the event, or "" if the key is
// unbound.
func (k *Keymap) Lookup(ev key.Event) string {
	return k.bindings[ev]
}

// Len returns the number of bound keys.
func (k *Keymap) Len() int {
	return len(k.bindings)
}
