package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/larkterm/lark/internal/input/key"
)

func TestAddAndLookup(t *testing.T) {
	k := New()
	require.NoError(t, k.Add(Binding{Keys: "q", Action: "app.quit"}))
	require.NoError(t, k.Add(Binding{Keys: "C-c", Action: "app.quit"}))

	assert.Equal(t, "app.quit", k.Lookup(key.MustParse("q")))
	assert.Equal(t, "app.quit", k.Lookup(key.Event{Key: key.KeyRune, Rune: 'c', Mods: key.ModCtrl}))
	assert.Empty(t, k.Lookup(key.MustParse("x")))
}

func TestAddInvalidSpec(t *testing.T) {
	k := New()
	assert.Error(t, k.Add(Binding{Keys: "NotAKey", Action: "app.quit"}))
	assert.Error(t, k.Add(Binding{Keys: "q", Action: ""}))
}

func TestLaterBindingWins(t *testing.T) {
	k := New()
	require.NoError(t, k.Add(Binding{Keys: "q", Action: "app.quit"}))
	require.NoError(t, k.Add(Binding{Keys: "q", Action: "cursor.moveDown"}))

	assert.Equal(t, "cursor.moveDown", k.Lookup(key.MustParse("q")))
	assert.Equal(t, 1, k.Len())
}

func TestDefaultKeymap(t *testing.T) {
	k := Default()

	tests := []struct {
		spec string
		want string
	}{
		{"q", ActionQuit},
		{"C-c", ActionQuit},
		{"Up", ActionMoveUp},
		{"Down", ActionMoveDown},
		{"Left", ActionMoveLeft},
		{"Right", ActionMoveRight},
		{"h", ActionMoveLeft},
		{"j", ActionMoveDown},
		{"k", ActionMoveUp},
		{"l", ActionMoveRight},
		{"Home", ActionLineStart},
		{"End", ActionLineEnd},
		{"PgUp", ActionPageUp},
		{"PgDn", ActionPageDown},
		{"g", ActionFirstLine},
		{"G", ActionLastLine},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, k.Lookup(key.MustParse(tt.spec)), "spec %q", tt.spec)
	}
}

func TestUserBindingsOverrideDefaults(t *testing.T) {
	k := Default()
	require.NoError(t, k.AddAll([]Binding{
		{Keys: "q", Action: ActionMoveDown},
		{Keys: "Escape", Action: ActionQuit},
	}))

	assert.Equal(t, ActionMoveDown, k.Lookup(key.MustParse("q")))
	assert.Equal(t, ActionQuit, k.Lookup(key.MustParse("Escape")))
	// Untouched defaults survive.
	assert.Equal(t, ActionMoveUp, k.Lookup(key.MustParse("k")))
}
