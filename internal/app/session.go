package app

import (
	"path/filepath"
	"strings"

	"github.com/dshills/tasci/internal/buffer"
	"github.com/dshills/tasci/internal/completion"
	"github.com/dshills/tasci/internal/lsp"
	"github.com/dshills/tasci/internal/syntax"
	"github.com/dshills/tasci/internal/tabs"
)

// onActivate runs whenever a tab becomes active.
func (app *Application) onActivate(tab *tabs.Tab) {
	if tab == nil {
		return
	}
	app.cancelCompletion()
	app.attach(tab.Doc)
	app.syncWatches()
}

// serverFor returns the session configuration for lang, merging the
// built-in server with any configured override. It reports false when the
// language has no usable server.
func (app *Application) serverFor(lang *syntax.Language, root string) (lsp.Config, bool) {
	if lang == nil || app.opts.NoLSP || !app.cfg.LSP.Enabled {
		return lsp.Config{}, false
	}
	var cfg lsp.Config
	if lang.Server != nil {
		cfg.Command = lang.Server.Command
		cfg.Args = append([]string(nil), lang.Server.Args...)
		cfg.LanguageID = lang.Server.LanguageID
	}
	if o, ok := app.cfg.Server(lang.Name); ok {
		if o.Disabled {
			return lsp.Config{}, false
		}
		if o.Command != "" {
			cfg.Command = o.Command
			cfg.Args = o.Args
		}
		if o.LanguageID != "" {
			cfg.LanguageID = o.LanguageID
		}
	}
	if cfg.Command == "" {
		return lsp.Config{}, false
	}
	if cfg.LanguageID == "" {
		cfg.LanguageID = strings.ToLower(lang.Name)
	}
	cfg.RootDir = root
	cfg.ShutdownTimeout = app.cfg.LSP.ShutdownTimeout.Duration
	cfg.Logger = app.opts.Logger
	return cfg, true
}

// attach makes sure the session matches the language of doc and announces
// the document to it. A session for another language is shut down first.
// Untitled documents never start a server.
func (app *Application) attach(doc *buffer.Document) {
	lang := doc.Language()
	if doc.Path() == "" || lang == nil {
		return
	}
	if app.session != nil && app.sessionLang == lang.Name {
		app.syncOpen(doc)
		return
	}
	if _, failed := app.failed[lang.Name]; failed {
		return
	}
	cfg, ok := app.serverFor(lang, filepath.Dir(doc.Path()))
	if !ok {
		return
	}

	app.stopSession()
	s := lsp.NewSession(cfg)
	if err := s.Start(); err != nil {
		app.failed[lang.Name] = err
		app.log.Warn("%s server: %v", lang.Name, err)
		app.setMessage("No language server for %s", lang.Name)
		return
	}
	app.session, app.sessionLang = s, lang.Name
	app.log.Info("started %s server %s", lang.Name, s.ID())
	app.syncOpen(doc)
}

func (app *Application) syncOpen(doc *buffer.Document) {
	if err := app.session.DidOpen(app.uri(doc), doc.Text()); err != nil {
		app.log.Warn("didOpen: %v", err)
	}
	app.reapSession()
}

// syncDocument sends the full text of doc to the server after an edit.
func (app *Application) syncDocument(doc *buffer.Document) {
	if app.session == nil || doc.Path() == "" {
		return
	}
	if lang := doc.Language(); lang == nil || lang.Name != app.sessionLang {
		return
	}
	if err := app.session.DidChange(app.uri(doc), doc.Text()); err != nil {
		app.log.Warn("didChange: %v", err)
	}
	app.reapSession()
}

// reapSession drops a session that closed itself, which happens when a
// write to the server fails. Its output channel is gone by then, so no
// close event will arrive.
func (app *Application) reapSession() {
	if app.session != nil && app.session.State() == lsp.StateClosed {
		app.sessionLost(app.session.Err())
	}
}

// handleChunk feeds one read of server output to the session and acts on
// the resulting events.
func (app *Application) handleChunk(c lsp.Chunk, ok bool) {
	if app.session == nil {
		return
	}
	for _, ev := range app.session.HandleChunk(c, ok) {
		switch ev.Kind {
		case lsp.EventReady:
			app.comp.SetServerTriggers(app.session.TriggerCharacters())
			app.log.Info("%s server ready", app.sessionLang)
		case lsp.EventCompletion:
			var applied bool
			if ev.Err != nil {
				applied = app.comp.ApplyFailure(ev.ID, app.tabs.ActiveDoc().Language())
			} else {
				applied = app.comp.ApplyResponse(ev.ID, ev.Labels)
			}
			app.metrics.RecordCompletion(applied)
		case lsp.EventClosed:
			app.sessionLost(ev.Err)
			return
		}
	}
	app.reapSession()
}

// sessionLost forgets a server that went away. Its language is not retried
// until the editor restarts.
func (app *Application) sessionLost(err error) {
	lang := app.sessionLang
	if err == nil {
		err = lsp.ErrServerExited
	}
	app.failed[lang] = err
	app.session.Close()
	app.session, app.sessionLang = nil, ""
	app.comp.SetServerTriggers(nil)
	if id := app.comp.PendingID(); id != 0 {
		app.comp.ApplyFailure(id, app.tabs.ActiveDoc().Language())
	}
	app.log.Warn("%s server lost: %v", lang, err)
	app.setMessage("%s language server stopped", lang)
}

// source returns the session as a completion source for doc. The result
// is a nil interface when no session serves doc.
func (app *Application) source(doc *buffer.Document) completion.Source {
	if app.session == nil || doc.Path() == "" {
		return nil
	}
	if lang := doc.Language(); lang == nil || lang.Name != app.sessionLang {
		return nil
	}
	return app.session
}

func (app *Application) uri(doc *buffer.Document) string {
	if doc.Path() == "" {
		return ""
	}
	return lsp.FileURI(doc.Path())
}
