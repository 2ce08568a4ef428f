package keymap

// Action names understood by the application's dispatcher.
const (
	ActionQuit      = "app.quit"
	ActionMoveUp    = "cursor.moveUp"
	ActionMoveDown  = "cursor.moveDown"
	ActionMoveLeft  = "cursor.moveLeft"
	ActionMoveRight = "cursor.moveRight"
	ActionLineStart = "cursor.lineStart"
	ActionLineEnd   = "cursor.lineEnd"
	ActionPageUp    = "cursor.pageUp"
	ActionPageDown  = "cursor.pageDown"
	ActionFirstLine = "cursor.firstLine"
	ActionLastLine  = "cursor.lastLine"
)

// Default returns the built-in keymap: arrows and vi movement keys,
// paging, and quit on q or Ctrl-C.
func Default() *Keymap {
	k := New()
	defaults := []Binding{
		{"q", ActionQuit},
		{"C-c", ActionQuit},

		{"Up", ActionMoveUp},
		{"Down", ActionMoveDown},
		{"Left", ActionMoveLeft},
		{"Right", ActionMoveRight},
		{"k", ActionMoveUp},
		{"j", ActionMoveDown},
		{"h", ActionMoveLeft},
		{"l", ActionMoveRight},

		{"Home", ActionLineStart},
		{"End", ActionLineEnd},
		{"0", ActionLineStart},
		{"$", ActionLineEnd},

		{"PgUp", ActionPageUp},
		{"PgDn", ActionPageDown},
		{"g", ActionFirstLine},
		{"G", ActionLastLine},
	}
	// The built-in specs are known valid.
	if err := k.AddAll(defaults); err != nil {
		panic(err)
	}
	return k
}
