package key

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Parse parses a key spec into an Event. Specs are a single character
// ("q"), a named key ("Left", "PgDn"), or either with modifier
// prefixes ("C-c", "Ctrl+Left", "A-Enter"). Angle brackets around the
// whole spec are accepted ("<C-c>").
func Parse(spec string) (Event, error) {
	s := strings.TrimSpace(spec)
	if strings.HasPrefix(s, "<") && strings.HasSuffix(s, ">") {
		s = s[1 : len(s)-1]
	}
	if s == "" {
		return Event{}, fmt.Errorf("empty key spec")
	}

	var mods Modifier
	for {
		rest, mod, ok := stripModifier(s)
		if !ok {
			break
		}
		mods |= mod
		s = rest
		if s == "" {
			return Event{}, fmt.Errorf("key spec %q has modifiers but no key", spec)
		}
	}

	// Named keys first, then single characters.
	if k, ok := KeyFromName(s); ok {
		e := Event{Key: k, Mods: mods}
		if strings.EqualFold(s, "space") {
			e.Rune = ' '
		}
		return e, nil
	}
	if utf8.RuneCountInString(s) == 1 {
		r, _ := utf8.DecodeRuneInString(s)
		if mods.Has(ModCtrl) {
			r = unicode.ToLower(r)
		}
		return Event{Key: KeyRune, Rune: r, Mods: mods}, nil
	}

	return Event{}, fmt.Errorf("unknown key spec %q", spec)
}

// MustParse parses a key spec and panics on error. For use with the
// built-in bindings, which are known valid.
func MustParse(spec string) Event {
	e, err := Parse(spec)
	if err != nil {
		panic(err)
	}
	return e
}

// stripModifier removes one leading modifier prefix ("C-", "Ctrl+",
// etc.) from the spec, reporting whether one was found.
func stripModifier(s string) (string, Modifier, bool) {
	prefixes := []struct {
		name string
		mod  Modifier
	}{
		{"ctrl", ModCtrl},
		{"shift", ModShift},
		{"alt", ModAlt},
		{"meta", ModAlt},
		{"c", ModCtrl},
		{"s", ModShift},
		{"a", ModAlt},
		{"m", ModAlt},
	}
	for _, p := range prefixes {
		n := len(p.name)
		if len(s) <= n {
			continue
		}
		if !strings.EqualFold(s[:n], p.name) {
			continue
		}
		if sep := s[n]; sep == '-' || sep == '+' {
			return s[n+1:], p.mod, true
		}
	}
	return s, ModNone, false
}
