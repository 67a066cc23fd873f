// Package app wires the editor together and runs its event loop.
//
// One goroutine owns every document, the tab set, the completion state and
// the language server session. It selects over terminal input, the blink
// ticker, language server output and file change notifications, and redraws
// after each event. The only other goroutines are the terminal reader, the
// session's stdout reader and the file watcher, and they only deliver values
// through channels.
package app

import (
	"context"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dshills/tasci/internal/clip"
	"github.com/dshills/tasci/internal/completion"
	"github.com/dshills/tasci/internal/config"
	"github.com/dshills/tasci/internal/logging"
	"github.com/dshills/tasci/internal/lsp"
	"github.com/dshills/tasci/internal/plugin/lua"
	"github.com/dshills/tasci/internal/renderer"
	"github.com/dshills/tasci/internal/renderer/backend"
	"github.com/dshills/tasci/internal/state"
	"github.com/dshills/tasci/internal/syntax"
	"github.com/dshills/tasci/internal/tabs"
	"github.com/dshills/tasci/internal/watcher"
)

// inputBacklog is the number of terminal events buffered ahead of the loop.
const inputBacklog = 64

// Options configures the application.
type Options struct {
	// Config is the loaded configuration. Defaults are used when nil.
	Config *config.Config

	// Logger receives diagnostics. Logging is discarded when nil.
	Logger *logging.Logger

	// Backend is the terminal to draw on. Required by Run.
	Backend backend.Backend

	// Clipboard overrides the system clipboard.
	Clipboard clip.Backend

	// Files are opened on startup instead of restoring the last session.
	Files []string

	// NoLSP disables language servers regardless of configuration.
	NoLSP bool
}

// Application is the editor.
type Application struct {
	cfg     *config.Config
	log     *logging.Logger
	opts    Options
	metrics *Metrics

	be       backend.Backend
	render   *renderer.Renderer
	registry *syntax.Registry
	tabs     *tabs.Manager
	comp     *completion.Coordinator
	clip     *clip.Clipboard
	watch    *watcher.Watcher

	// session is the language server for sessionLang, or nil.
	session     *lsp.Session
	sessionLang string
	// failed remembers languages whose server could not be used.
	failed map[string]error

	input    chan backend.Event
	done     chan struct{}
	stopOnce sync.Once
	running  atomic.Bool

	cursorOn  bool
	message   string
	messageAt time.Time
	prompt    *renderer.Prompt
	lastDir   string
	lastFind  string
	startup   ErrorList

	// saveErr is the save failure reported during the last close prompt.
	saveErr error
}

// New creates the application, loads language plugins and opens the
// initial tabs. Problems that do not prevent editing are collected and
// shown once the editor starts.
func New(opts Options) (*Application, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	log := opts.Logger
	if log == nil {
		log = logging.Discard
	}

	app := &Application{
		cfg:      cfg,
		log:      log.WithComponent("app"),
		opts:     opts,
		metrics:  NewMetrics(),
		be:       opts.Backend,
		registry: syntax.Builtin(),
		failed:   make(map[string]error),
		input:    make(chan backend.Event, inputBacklog),
		done:     make(chan struct{}),
		cursorOn: true,
	}

	if cfg.Plugins.Enabled {
		names, errs := lua.LoadDir(cfg.PluginDir(), app.registry)
		for _, err := range errs {
			app.log.Warn("plugin: %v", err)
			app.startup.Add(err)
		}
		if len(names) > 0 {
			app.log.Info("loaded %d plugin language(s): %v", len(names), names)
		}
	}

	app.tabs = tabs.NewManager(app.registry, tabs.WithLogger(log))
	app.comp = completion.New(
		completion.WithMaxItems(cfg.Completion.MaxItems),
		completion.WithMaxLabel(cfg.Completion.MaxLabel),
	)

	cb := opts.Clipboard
	if cb == nil {
		cb = clip.System()
	}
	app.clip = clip.New(cb)

	if cfg.Watch.Enabled {
		w, err := watcher.New()
		if err != nil {
			app.log.Warn("file watcher unavailable: %v", err)
		} else {
			app.watch = w
		}
	}

	if app.be != nil {
		ropts := renderer.DefaultOptions()
		ropts.TabWidth = cfg.Editor.TabWidth
		ropts.ShowLineNumbers = cfg.Editor.LineNumbers
		ropts.ShowStatusBar = cfg.Editor.StatusBar
		app.render = renderer.New(app.be, ropts)
	}

	app.openInitial()
	app.tabs.SetListener(app.onActivate)
	return app, nil
}

// openInitial opens the command line files, or restores the last session
// when there are none.
func (app *Application) openInitial() {
	var snap *state.Snapshot
	if app.cfg.State.Enabled {
		s, err := state.Load(app.cfg.StatePath())
		if err != nil {
			app.log.Warn("snapshot: %v", err)
			app.startup.Add(err)
		} else {
			snap = s
		}
	}

	if snap != nil {
		app.lastDir = snap.LastDir
		if app.render != nil {
			app.render.SetShowLineNumbers(snap.ShowLineNumbers)
			app.render.SetShowStatusBar(snap.ShowStatusBar)
		}
	}

	if len(app.opts.Files) > 0 {
		for _, err := range app.tabs.Restore(app.opts.Files, -1) {
			app.startup.Add(NewOperationError("open", "", err))
		}
		return
	}
	if snap == nil {
		return
	}

	for _, err := range app.tabs.Restore(snap.OpenFiles, snap.ActiveTab) {
		app.startup.Add(NewOperationError("restore", "", err))
	}
	doc := app.tabs.ActiveDoc()
	if snap.LastFile != "" && doc.Path() == snap.LastFile {
		doc.SetCursor(snap.LastCursor.Row, snap.LastCursor.Col)
	}
}

// Tabs returns the tab manager.
func (app *Application) Tabs() *tabs.Manager { return app.tabs }

// Completion returns the completion coordinator.
func (app *Application) Completion() *completion.Coordinator { return app.comp }

// Session returns the active language server session, or nil.
func (app *Application) Session() *lsp.Session { return app.session }

// Metrics returns the event loop counters.
func (app *Application) Metrics() *Metrics { return app.metrics }

// Message returns the current status message.
func (app *Application) Message() string { return app.message }

// Run initializes the terminal and runs the event loop until the user
// quits, in which case it returns ErrQuit, or Shutdown is called.
func (app *Application) Run() (err error) {
	if app.be == nil {
		return ErrNoBackend
	}
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if err := app.be.Init(); err != nil {
		return &InitError{Component: "terminal", Err: err}
	}
	defer app.be.Shutdown()
	defer app.teardown()
	defer func() {
		if r := recover(); r != nil {
			err = NewRecoveredPanicError(r, string(debug.Stack()))
			app.log.Error("%v", err)
		}
	}()

	go app.readInput()

	if app.startup.Len() > 0 {
		app.setMessage("%v", &app.startup)
	}
	app.onActivate(app.tabs.Active())
	return app.loop()
}

// Shutdown stops the event loop. It is safe to call from any goroutine and
// more than once.
func (app *Application) Shutdown() {
	app.stopOnce.Do(func() { close(app.done) })
}

// IsRunning reports whether the event loop is running.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// teardown saves the session snapshot and releases the language server and
// file watcher.
func (app *Application) teardown() {
	app.Shutdown()
	app.saveSnapshot()
	app.stopSession()
	if app.watch != nil {
		if err := app.watch.Close(); err != nil {
			app.log.Warn("closing watcher: %v", err)
		}
	}
	app.log.Info("exit: %s", app.metrics.Snapshot())
}

// saveSnapshot records the open tabs, cursor and view toggles.
func (app *Application) saveSnapshot() {
	if !app.cfg.State.Enabled {
		return
	}
	snap := state.Default()
	active := -1
	for i, t := range app.tabs.Tabs() {
		if t.Doc.Path() == "" {
			continue
		}
		if i == app.tabs.ActiveIndex() {
			active = len(snap.OpenFiles)
		}
		snap.OpenFiles = append(snap.OpenFiles, t.Doc.Path())
	}
	if active >= 0 {
		snap.ActiveTab = active
	}

	doc := app.tabs.ActiveDoc()
	if doc.Path() != "" {
		cur := doc.Cursor()
		snap.LastFile = doc.Path()
		snap.LastCursor = state.Cursor{Row: cur.Row, Col: cur.Col}
	}
	snap.LastDir = app.defaultDir()
	if app.render != nil {
		opts := app.render.Options()
		snap.ShowLineNumbers = opts.ShowLineNumbers
		snap.ShowStatusBar = opts.ShowStatusBar
	}

	if err := state.Save(app.cfg.StatePath(), snap); err != nil {
		app.log.Warn("saving snapshot: %v", err)
	}
}

// stopSession shuts the language server down, waiting at most the
// configured shutdown timeout.
func (app *Application) stopSession() {
	if app.session == nil {
		return
	}
	s := app.session
	app.session, app.sessionLang = nil, ""
	app.comp.SetServerTriggers(nil)
	if app.comp.PendingID() != 0 {
		app.comp.Cancel()
	}

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.LSP.ShutdownTimeout.Duration)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		app.log.Warn("server shutdown: %v", err)
	}
}
