package config

import (
	"fmt"
	"os"
	"path/filepath"

	lua "github.com/yuin/gopher-lua"

	"github.com/larkterm/lark/internal/input/keymap"
)

// DefaultScriptPath returns the standard init script location,
// ~/.config/lark/init.lua.
func DefaultScriptPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".config", "lark", "init.lua"), nil
}

// RunInitScript executes a Lua init script against the config. The
// script sees two functions:
//
//	set(name, value)     -- set "lookahead" or "line_numbers"
//	bind(keys, action)   -- add a key binding
//
// Settings made by the script apply on top of whatever cfg already
// holds. A missing script is not an error.
func RunInitScript(path string, cfg *Config) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	L := lua.NewState()
	defer L.Close()

	var scriptErr error

	L.SetGlobal("set", L.NewFunction(func(L *lua.LState) int {
		name := L.CheckString(1)
		switch name {
		case "lookahead":
			v := L.CheckInt(2)
			if v < 0 {
				v = 0
			}
			cfg.Lookahead = v
		case "line_numbers":
			cfg.LineNumbers = L.CheckBool(2)
		default:
			scriptErr = fmt.Errorf("unknown setting %q", name)
			L.RaiseError("unknown setting %q", name)
		}
		return 0
	}))

	L.SetGlobal("bind", L.NewFunction(func(L *lua.LState) int {
		cfg.Keys = append(cfg.Keys, keymap.Binding{
			Keys:   L.CheckString(1),
			Action: L.CheckString(2),
		})
		return 0
	}))

	if err := L.DoFile(path); err != nil {
		if scriptErr != nil {
			return fmt.Errorf("init script %s: %w", path, scriptErr)
		}
		return fmt.Errorf("init script %s: %w", path, err)
	}
	return nil
}
