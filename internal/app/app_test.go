package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/larkterm/lark/internal/config"
	"github.com/larkterm/lark/internal/input/keymap"
	"github.com/larkterm/lark/internal/renderer/backend"
)

// newTestApp writes content to a temp file and builds an application
// over a null backend. Events posted to the backend before Run are
// processed in order.
func newTestApp(t *testing.T, content string, cfg config.Config) (*Application, *backend.NullBackend) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "view.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	b := backend.NewNullBackend(40, 10)
	a, err := New(Options{
		Path:    path,
		Config:  cfg,
		Backend: b,
	})
	require.NoError(t, err)
	return a, b
}

func postKey(b *backend.NullBackend, r rune) {
	b.PostEvent(backend.Event{Type: backend.EventKey, Key: backend.KeyRune, Rune: r})
}

func postSpecial(b *backend.NullBackend, k backend.Key) {
	b.PostEvent(backend.Event{Type: backend.EventKey, Key: k})
}

func TestRunQuitsOnQ(t *testing.T) {
	a, b := newTestApp(t, "hello\n", config.Default())
	postKey(b, 'q')

	require.NoError(t, a.Run())
}

func TestRunQuitsOnCtrlC(t *testing.T) {
	a, b := newTestApp(t, "hello\n", config.Default())
	b.PostEvent(backend.Event{Type: backend.EventKey, Key: backend.KeyRune, Rune: 'c', Mod: backend.ModCtrl})

	require.NoError(t, a.Run())
}

func TestMovementKeysUpdateCursor(t *testing.T) {
	a, b := newTestApp(t, "hello\nworld\nagain\n", config.Default())
	postSpecial(b, backend.KeyDown)
	postSpecial(b, backend.KeyRight)
	postSpecial(b, backend.KeyRight)
	postKey(b, 'q')

	require.NoError(t, a.Run())
	assert.Equal(t, 1, a.buf.CursorY)
	assert.Equal(t, 2, a.buf.CursorX)
}

func TestViMovementKeys(t *testing.T) {
	a, b := newTestApp(t, "hello\nworld\n", config.Default())
	postKey(b, 'j')
	postKey(b, 'l')
	postKey(b, 'q')

	require.NoError(t, a.Run())
	assert.Equal(t, 1, a.buf.CursorY)
	assert.Equal(t, 1, a.buf.CursorX)
}

func TestUnboundKeyIsIgnored(t *testing.T) {
	a, b := newTestApp(t, "hello\n", config.Default())
	postKey(b, 'z')
	postKey(b, 'q')

	require.NoError(t, a.Run())
	assert.Equal(t, 0, a.buf.CursorY)
	assert.Equal(t, 0, a.buf.CursorX)
}

func TestResizeReclampsViewport(t *testing.T) {
	content := ""
	for i := 0; i < 50; i++ {
		content += "line\n"
	}
	a, b := newTestApp(t, content, config.Default())

	// Walk deep into the file, then shrink the terminal.
	for i := 0; i < 30; i++ {
		postKey(b, 'j')
	}
	b.Resize(20, 5)
	postKey(b, 'q')

	require.NoError(t, a.Run())
	assert.Equal(t, 30, a.buf.CursorY)
	rows := a.view.ScreenRows()
	assert.GreaterOrEqual(t, a.buf.CursorY, a.buf.ScrollY)
	assert.Less(t, a.buf.CursorY, a.buf.ScrollY+rows)
}

func TestCustomBindingOverridesDefault(t *testing.T) {
	cfg := config.Default()
	cfg.Keys = []keymap.Binding{{Keys: "x", Action: keymap.ActionQuit}}
	a, b := newTestApp(t, "hello\n", cfg)

	postKey(b, 'x')
	require.NoError(t, a.Run())
}

func TestInvalidBindingFailsConstruction(t *testing.T) {
	path := filepath.Join(t.TempDir(), "view.txt")
	require.NoError(t, os.WriteFile(path, []byte("x\n"), 0o644))

	cfg := config.Default()
	cfg.Keys = []keymap.Binding{{Keys: "NotAKey", Action: keymap.ActionQuit}}

	_, err := New(Options{Path: path, Config: cfg, Backend: backend.NewNullBackend(40, 10)})
	assert.Error(t, err)
}

func TestMissingFileFailsConstruction(t *testing.T) {
	_, err := New(Options{
		Path:    filepath.Join(t.TempDir(), "absent.txt"),
		Config:  config.Default(),
		Backend: backend.NewNullBackend(40, 10),
	})
	assert.Error(t, err)
}

func TestRenderedFrameAfterMovement(t *testing.T) {
	a, b := newTestApp(t, "alpha\nbravo\ncharlie\n", config.Default())
	postSpecial(b, backend.KeyDown)
	postKey(b, 'q')

	require.NoError(t, a.Run())

	// The final frame before quitting shows the buffer with the gutter.
	assert.Equal(t, "1 alpha", b.Row(0))
	assert.Equal(t, "2 bravo", b.Row(1))
	x, y, visible := b.CursorPosition()
	assert.True(t, visible)
	assert.Equal(t, 2, x)
	assert.Equal(t, 1, y)
}

func TestPagingActions(t *testing.T) {
	content := ""
	for i := 0; i < 100; i++ {
		content += "line\n"
	}
	a, b := newTestApp(t, content, config.Default())
	postSpecial(b, backend.KeyPageDown)
	postKey(b, 'q')

	require.NoError(t, a.Run())
	assert.Equal(t, a.view.ScreenRows(), a.buf.CursorY)
}

func TestFirstAndLastLineActions(t *testing.T) {
	content := ""
	for i := 0; i < 100; i++ {
		content += "line\n"
	}
	a, b := newTestApp(t, content, config.Default())
	postKey(b, 'G')
	postKey(b, 'q')

	require.NoError(t, a.Run())
	assert.Equal(t, 99, a.buf.CursorY)
}

func TestInterruptAppliesPendingConfig(t *testing.T) {
	a, b := newTestApp(t, "hello\nworld\n", config.Default())

	newCfg := config.Default()
	newCfg.Lookahead = 2
	newCfg.Keys = []keymap.Binding{{Keys: "w", Action: keymap.ActionQuit}}
	a.mu.Lock()
	a.pendingConfig = &newCfg
	a.mu.Unlock()

	b.PostEvent(backend.Event{Type: backend.EventInterrupt})
	postKey(b, 'w')

	require.NoError(t, a.Run())
	assert.Equal(t, 2, a.nav.Lookahead())
}
