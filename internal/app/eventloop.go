package app

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/dshills/tasci/internal/lsp"
	"github.com/dshills/tasci/internal/renderer"
	"github.com/dshills/tasci/internal/renderer/backend"
	"github.com/dshills/tasci/internal/watcher"
)

// readInput forwards terminal events to the loop until shutdown.
func (app *Application) readInput() {
	for {
		ev := app.be.PollEvent()
		if ev.Type == backend.EventNone {
			select {
			case <-app.done:
				return
			default:
				continue
			}
		}
		select {
		case app.input <- ev:
		case <-app.done:
			return
		}
	}
}

// loop is the main event loop.
func (app *Application) loop() error {
	blink := time.NewTicker(app.cfg.Editor.BlinkInterval.Duration)
	defer blink.Stop()

	app.draw()
	for {
		var chunks <-chan lsp.Chunk
		if app.session != nil {
			chunks = app.session.Incoming()
		}
		var fileEvents <-chan watcher.Event
		var watchErrors <-chan error
		if app.watch != nil {
			fileEvents = app.watch.Events()
			watchErrors = app.watch.Errors()
		}

		select {
		case <-app.done:
			return nil

		case ev := <-app.input:
			timer := StartTimer()
			err := app.handleEvent(ev)
			app.metrics.RecordInput(timer.Elapsed())
			if err != nil {
				return err
			}

		case <-blink.C:
			app.tick(time.Now())

		case c, ok := <-chunks:
			app.metrics.RecordServerChunk()
			app.handleChunk(c, ok)

		case fe := <-fileEvents:
			app.metrics.RecordFileEvent()
			app.handleFileEvent(fe)

		case err := <-watchErrors:
			app.log.Warn("watcher: %v", err)
		}
		app.draw()
	}
}

// handleEvent processes one terminal event. It returns ErrQuit when the
// editor should exit.
func (app *Application) handleEvent(ev backend.Event) error {
	switch ev.Type {
	case backend.EventKey:
		app.cursorOn = true
		err := app.handleKey(ev)
		app.reapSession()
		return err
	default:
		return nil
	}
}

// tick advances the cursor blink and expires the status message.
func (app *Application) tick(now time.Time) {
	app.cursorOn = !app.cursorOn
	if app.message != "" && now.Sub(app.messageAt) >= app.cfg.Editor.StatusTimeout.Duration {
		app.message = ""
	}
}

// setMessage shows a status message until the status timeout passes.
func (app *Application) setMessage(format string, args ...any) {
	app.message = fmt.Sprintf(format, args...)
	app.messageAt = time.Now()
}

// draw paints the current state.
func (app *Application) draw() {
	if app.render == nil {
		return
	}
	timer := StartTimer()
	app.render.Draw(app.frame())
	app.metrics.RecordFrame(timer.Elapsed())
}

func (app *Application) frame() *renderer.Frame {
	tab := app.tabs.Active()
	f := &renderer.Frame{
		Active:   app.tabs.ActiveIndex(),
		Doc:      tab.Doc,
		View:     &tab.View,
		Prompt:   app.prompt,
		CursorOn: app.cursorOn,
		Status: renderer.Status{
			Server:  app.serverStatus(),
			Message: app.message,
		},
	}
	for _, t := range app.tabs.Tabs() {
		f.Tabs = append(f.Tabs, renderer.TabLabel{Name: t.Doc.Name(), Dirty: t.Doc.Dirty()})
	}
	if lang := tab.Doc.Language(); lang != nil {
		f.Status.Language = lang.Name
	}
	if app.comp.Active() {
		f.Popup = &renderer.Popup{Items: app.comp.Items(), Selected: app.comp.Selected()}
	}
	return f
}

// serverStatus describes the language server for the status bar.
func (app *Application) serverStatus() string {
	if app.session != nil {
		return filepath.Base(app.session.Command()) + ": " + app.session.State().String()
	}
	if lang := app.tabs.ActiveDoc().Language(); lang != nil {
		if _, failed := app.failed[lang.Name]; failed {
			return "no server"
		}
	}
	return ""
}
