// Package config loads viewer settings from the user's config file
// and init script, and watches them for changes.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/larkterm/lark/internal/input/keymap"
)

// DefaultLookahead is the scroll margin used when the config does not
// set one.
const DefaultLookahead = 6

// Config holds all user-tunable settings.
type Config struct {
	// Lookahead is the number of context lines kept visible around the
	// cursor while scrolling.
	Lookahead int

	// LineNumbers toggles the gutter.
	LineNumbers bool

	// Keys are user key bindings, layered over the defaults.
	Keys []keymap.Binding
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Lookahead:   DefaultLookahead,
		LineNumbers: true,
	}
}

// DefaultPath returns the standard config file location,
// ~/.config/lark/config.json.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".config", "lark", "config.json"), nil
}

// Load reads settings from a JSON config file, filling in defaults
// for absent fields. A missing file is not an error; the defaults are
// returned.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if !gjson.ValidBytes(data) {
		return cfg, fmt.Errorf("config %s: invalid JSON", path)
	}

	if v := gjson.GetBytes(data, "lookahead"); v.Exists() {
		cfg.Lookahead = int(v.Int())
		if cfg.Lookahead < 0 {
			cfg.Lookahead = 0
		}
	}
	if v := gjson.GetBytes(data, "line_numbers"); v.Exists() {
		cfg.LineNumbers = v.Bool()
	}
	gjson.GetBytes(data, "keys").ForEach(func(_, value gjson.Result) bool {
		cfg.Keys = append(cfg.Keys, keymap.Binding{
			Keys:   value.Get("keys").String(),
			Action: value.Get("action").String(),
		})
		return true
	})

	return cfg, nil
}

// WriteDefault writes a starter config file at path, creating parent
// directories as needed. It refuses to overwrite an existing file.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config %s already exists", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	out := "{}"
	out, _ = sjson.Set(out, "lookahead", DefaultLookahead)
	out, _ = sjson.Set(out, "line_numbers", true)
	out, _ = sjson.Set(out, "keys", []any{})

	if err := os.WriteFile(path, []byte(out+"\n"), 0o644); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}
