// Package app wires the viewer together and runs its event loop.
package app

import (
	"errors"
	"fmt"
	"sync"

	"github.com/larkterm/lark/internal/buffer"
	"github.com/larkterm/lark/internal/config"
	"github.com/larkterm/lark/internal/input/key"
	"github.com/larkterm/lark/internal/input/keymap"
	"github.com/larkterm/lark/internal/navigator"
	"github.com/larkterm/lark/internal/renderer"
	"github.com/larkterm/lark/internal/renderer/backend"
	"github.com/larkterm/lark/internal/viewport"
)

// Options configures a new Application.
type Options struct {
	// Path is the file to view.
	Path string

	// Config holds the loaded settings.
	Config config.Config

	// ConfigPath, when non-empty, is watched for changes and reloaded
	// live.
	ConfigPath string

	// Backend is the terminal to run against.
	Backend backend.Backend

	// Logger receives diagnostics. Nil means no logging.
	Logger *Logger
}

// Application owns the viewer's state and event loop. The loop is
// single-threaded: it blocks on the next event, updates state, and
// redraws. Only the config watcher runs concurrently, and it touches
// shared state through pendingConfig.
type Application struct {
	buf      *buffer.Buffer
	view     *viewport.Viewport
	nav      *navigator.Navigator
	renderer *renderer.Renderer
	backend  backend.Backend
	keymap   *keymap.Keymap
	logger   *Logger

	configPath string
	watcher    *config.Watcher

	mu            sync.Mutex
	pendingConfig *config.Config
}

// New creates an application viewing the file at opts.Path.
func New(opts Options) (*Application, error) {
	buf, err := buffer.Load(opts.Path)
	if err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = NullLogger()
	}

	km := keymap.Default()
	if err := km.AddAll(opts.Config.Keys); err != nil {
		return nil, fmt.Errorf("applying key bindings: %w", err)
	}

	a := &Application{
		buf:        buf,
		renderer:   renderer.New(opts.Backend),
		backend:    opts.Backend,
		keymap:     km,
		logger:     logger,
		configPath: opts.ConfigPath,
	}

	width, height := opts.Backend.Size()
	a.view = viewport.New(width, height)
	a.view.SetLineCount(buf.LineCount())
	a.view.SetGutterVisible(opts.Config.LineNumbers)
	a.nav = navigator.New(buf, a.view, opts.Config.Lookahead)

	return a, nil
}

// Run initializes the terminal, draws the first frame, and processes
// events until the user quits. The terminal is restored on every
// return path.
func (a *Application) Run() error {
	if err := a.backend.Init(); err != nil {
		return fmt.Errorf("initializing terminal: %w", err)
	}
	defer a.backend.Shutdown()

	// The real terminal size is only known after Init.
	width, height := a.backend.Size()
	a.view.Resize(width, height)
	a.nav.Reclamp()

	if a.configPath != "" {
		a.startConfigWatcher()
		defer a.stopConfigWatcher()
	}

	a.logger.WithField("file", a.buf.Path()).
		WithField("lines", a.buf.LineCount()).
		Info("viewer started")

	if err := a.renderer.Render(a.buf, a.view); err != nil {
		return err
	}

	for {
		ev := a.backend.PollEvent()
		if err := a.handleEvent(ev); err != nil {
			if errors.Is(err, ErrQuit) {
				a.logger.Info("viewer exiting")
				return nil
			}
			return err
		}
		if err := a.renderer.Render(a.buf, a.view); err != nil {
			return err
		}
	}
}

// handleEvent updates state for one event. It returns ErrQuit when
// the user asked to exit.
func (a *Application) handleEvent(ev backend.Event) error {
	switch ev.Type {
	case backend.EventKey:
		return a.handleKey(ev)
	case backend.EventResize:
		a.handleResize(ev.Width, ev.Height)
	case backend.EventInterrupt:
		a.applyPendingConfig()
	}
	return nil
}

func (a *Application) handleKey(ev backend.Event) error {
	pressed := key.FromBackend(ev)
	action := a.keymap.Lookup(pressed)
	if action == "" {
		a.logger.WithField("key", pressed.String()).Debug("unbound key")
		return nil
	}
	return a.dispatch(action)
}

// dispatch runs a named action against the navigator.
func (a *Application) dispatch(action string) error {
	switch action {
	case keymap.ActionQuit:
		return ErrQuit
	case keymap.ActionMoveUp:
		a.nav.Move(navigator.Up)
	case keymap.ActionMoveDown:
		a.nav.Move(navigator.Down)
	case keymap.ActionMoveLeft:
		a.nav.Move(navigator.Left)
	case keymap.ActionMoveRight:
		a.nav.Move(navigator.Right)
	case keymap.ActionLineStart:
		a.nav.LineStart()
	case keymap.ActionLineEnd:
		a.nav.LineEnd()
	case keymap.ActionPageUp:
		a.nav.PageUp()
	case keymap.ActionPageDown:
		a.nav.PageDown()
	case keymap.ActionFirstLine:
		a.nav.FirstLine()
	case keymap.ActionLastLine:
		a.nav.LastLine()
	default:
		a.logger.WithField("action", action).Warn("unknown action")
	}
	return nil
}

// handleResize recomputes the viewport geometry and pulls the scroll
// offsets back into range. The cursor does not move.
func (a *Application) handleResize(width, height int) {
	a.view.Resize(width, height)
	a.view.SetLineCount(a.buf.LineCount())
	a.nav.Reclamp()
	a.logger.WithField("size", fmt.Sprintf("%dx%d", width, height)).Debug("resized")
}

func (a *Application) startConfigWatcher() {
	w, err := config.NewWatcher(a.configPath, func(cfg config.Config) {
		a.mu.Lock()
		a.pendingConfig = &cfg
		a.mu.Unlock()
		a.backend.PostEvent(backend.Event{Type: backend.EventInterrupt})
	})
	if err != nil {
		a.logger.WithField("error", err).Warn("config watch unavailable")
		return
	}
	a.watcher = w
	w.Start()
}

func (a *Application) stopConfigWatcher() {
	if a.watcher != nil {
		a.watcher.Stop()
	}
}

// applyPendingConfig picks up a config written while the viewer was
// running. Runs on the event loop, so no other synchronization is
// needed beyond the handoff.
func (a *Application) applyPendingConfig() {
	a.mu.Lock()
	cfg := a.pendingConfig
	a.pendingConfig = nil
	a.mu.Unlock()
	if cfg == nil {
		return
	}

	a.nav.SetLookahead(cfg.Lookahead)
	a.view.SetGutterVisible(cfg.LineNumbers)
	a.nav.Reclamp()

	km := keymap.Default()
	if err := km.AddAll(cfg.Keys); err != nil {
		a.logger.WithField("error", err).Warn("ignoring invalid key bindings")
	} else {
		a.keymap = km
	}
	a.logger.Info("config reloaded")
}
