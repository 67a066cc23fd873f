package app

import (
	"errors"
	"strconv"
	"strings"

	"github.com/dshills/tasci/internal/buffer"
	"github.com/dshills/tasci/internal/renderer/backend"
	"github.com/dshills/tasci/internal/tabs"
)

// handleKey dispatches one key press.
//
//	Ctrl+S save         Ctrl+E save as      Ctrl+N new file
//	Ctrl+O open         Ctrl+W close tab    Ctrl+T/Ctrl+P next/previous tab
//	Ctrl+K cut line     Ctrl+U paste        Ctrl+F find
//	Ctrl+R replace      Ctrl+G go to line   Ctrl+A top of file
//	Ctrl+L line numbers Ctrl+B status bar   Ctrl+Space complete
//	Ctrl+Q or Ctrl+X quit
//
// While the completion list is open, Up and Down select, Tab or Enter
// accept and Escape dismisses it.
func (app *Application) handleKey(ev backend.Event) error {
	if app.comp.Active() {
		switch ev.Key {
		case backend.KeyUp:
			app.comp.Prev()
			return nil
		case backend.KeyDown:
			app.comp.Next()
			return nil
		case backend.KeyTab, backend.KeyEnter:
			app.acceptCompletion()
			return nil
		case backend.KeyEscape:
			app.cancelCompletion()
			return nil
		}
	}

	doc := app.tabs.ActiveDoc()
	switch ev.Key {
	case backend.KeyCtrlQ, backend.KeyCtrlX:
		return app.quit()
	case backend.KeyCtrlS:
		app.save()
	case backend.KeyCtrlE:
		app.saveAs()
	case backend.KeyCtrlN:
		app.newFile()
	case backend.KeyCtrlO:
		app.open()
	case backend.KeyCtrlW:
		app.closeTab()
	case backend.KeyCtrlT:
		app.tabs.Next()
	case backend.KeyCtrlP, backend.KeyBacktab:
		app.tabs.Prev()
	case backend.KeyCtrlK:
		app.cutLine()
	case backend.KeyCtrlU:
		app.paste()
	case backend.KeyCtrlF:
		app.find()
	case backend.KeyCtrlR:
		app.replace()
	case backend.KeyCtrlG:
		app.gotoLine()
	case backend.KeyCtrlA:
		app.move(doc.MoveTop)
	case backend.KeyCtrlL:
		if app.render != nil {
			on := !app.render.Options().ShowLineNumbers
			app.render.SetShowLineNumbers(on)
			app.setMessage("Line numbers %s", onOff(on))
		}
	case backend.KeyCtrlB:
		if app.render != nil {
			app.render.SetShowStatusBar(!app.render.Options().ShowStatusBar)
		}
	case backend.KeyCtrlSpace:
		app.complete()
	case backend.KeyEscape:
		app.cancelCompletion()

	case backend.KeyUp:
		app.move(func() { doc.MoveUp(1) })
	case backend.KeyDown:
		app.move(func() { doc.MoveDown(1) })
	case backend.KeyLeft:
		app.move(doc.MoveLeft)
	case backend.KeyRight:
		app.move(doc.MoveRight)
	case backend.KeyHome:
		app.move(doc.MoveHome)
	case backend.KeyEnd:
		app.move(doc.MoveEnd)
	case backend.KeyPageUp:
		app.move(func() { doc.MoveUp(app.pageSize()) })
	case backend.KeyPageDown:
		app.move(func() { doc.MoveDown(app.pageSize()) })

	case backend.KeyEnter:
		app.cancelCompletion()
		app.edit((*buffer.Document).InsertNewline)
	case backend.KeyBackspace:
		if app.edit((*buffer.Document).DeleteChar) && app.comp.Active() {
			app.comp.OnInsert(doc, app.source(doc), app.uri(doc))
		}
	case backend.KeyDelete:
		app.cancelCompletion()
		app.edit((*buffer.Document).DeleteForward)
	case backend.KeyTab:
		app.insertRune('\t')
	case backend.KeyRune:
		app.insertRune(ev.Rune)
	}
	return nil
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}

func (app *Application) pageSize() int {
	if app.render == nil {
		return 1
	}
	return app.render.PageSize()
}

// move runs a cursor motion, which always dismisses the completion list.
func (app *Application) move(motion func()) {
	app.cancelCompletion()
	motion()
}

// edit applies op to the active document and, when it changed anything,
// sends the new text to the language server. It reports whether the
// document changed.
func (app *Application) edit(op func(*buffer.Document) bool) bool {
	doc := app.tabs.ActiveDoc()
	if !op(doc) {
		return false
	}
	app.syncDocument(doc)
	return true
}

func (app *Application) insertRune(r rune) {
	doc := app.tabs.ActiveDoc()
	if !app.edit(func(d *buffer.Document) bool { return d.InsertChar(r) }) {
		return
	}
	if app.cfg.Completion.Enabled {
		app.comp.OnInsert(doc, app.source(doc), app.uri(doc))
	}
}

func (app *Application) complete() {
	if !app.cfg.Completion.Enabled {
		return
	}
	doc := app.tabs.ActiveDoc()
	app.comp.Trigger(doc, app.source(doc), app.uri(doc))
	if !app.comp.Active() && app.comp.PendingID() == 0 {
		app.setMessage("No completions")
	}
}

func (app *Application) acceptCompletion() {
	doc := app.tabs.ActiveDoc()
	if app.comp.Accept(doc) {
		app.syncDocument(doc)
	}
	if app.session != nil {
		app.session.CancelPending()
	}
}

// cancelCompletion closes the list and forgets any outstanding request.
func (app *Application) cancelCompletion() {
	app.comp.Cancel()
	if app.session != nil {
		app.session.CancelPending()
	}
}

func (app *Application) save() {
	doc := app.tabs.ActiveDoc()
	if doc.Path() == "" {
		app.saveAs()
		return
	}
	if err := doc.Save(); err != nil {
		app.fail(NewOperationError("save", doc.Name(), err))
		return
	}
	app.setMessage("Saved %s (%d lines)", doc.Name(), doc.LineCount())
}

func (app *Application) saveAs() {
	doc := app.tabs.ActiveDoc()
	path, ok := app.askPath("Save as: ")
	if !ok {
		app.setMessage("Save cancelled")
		return
	}
	if err := doc.SaveAs(path); err != nil {
		app.fail(NewOperationError("save", path, err))
		return
	}
	app.setMessage("Saved %s (%d lines)", doc.Name(), doc.LineCount())
	app.tabs.Redetect()
	app.attach(doc)
	app.syncWatches()
}

func (app *Application) newFile() {
	input, ok := app.readLine("New file (empty for untitled): ", "")
	if !ok {
		return
	}
	path := strings.TrimSpace(input)
	if _, err := app.tabs.Create(path); err != nil {
		app.fail(NewOperationError("new", path, err))
	}
}

func (app *Application) open() {
	path, ok := app.askPath("Open: ")
	if !ok {
		return
	}
	if _, err := app.tabs.OpenOrSwitch(path); err != nil {
		app.fail(NewOperationError("open", path, err))
	}
}

func (app *Application) closeTab() {
	app.saveErr = nil
	err := app.tabs.Close(app.tabs.ActiveIndex(), app)
	switch {
	case errors.Is(err, tabs.ErrCloseCancelled) && app.saveErr != nil:
	case errors.Is(err, tabs.ErrCloseCancelled):
		app.setMessage("Close cancelled")
	case err != nil:
		app.fail(NewOperationError("close", app.tabs.ActiveDoc().Name(), err))
	}
	app.syncWatches()
}

// quit resolves every unsaved document and returns ErrQuit, or nil when
// the user cancelled or a save failed.
func (app *Application) quit() error {
	app.saveErr = nil
	for _, t := range app.tabs.Tabs() {
		if !t.Doc.Dirty() {
			continue
		}
		switch app.ConfirmClose(t.Doc) {
		case tabs.ChoiceSave:
			if err := t.Doc.Save(); err != nil {
				app.fail(NewOperationError("save", t.Doc.Name(), err))
				return nil
			}
		case tabs.ChoiceDiscard:
		default:
			if app.saveErr == nil {
				app.setMessage("Quit cancelled")
			}
			return nil
		}
	}
	return ErrQuit
}

func (app *Application) cutLine() {
	app.cancelCompletion()
	doc := app.tabs.ActiveDoc()
	text := doc.CutLine()
	if err := app.clip.Copy(text); err != nil {
		app.log.Debug("system clipboard: %v", err)
	}
	app.syncDocument(doc)
}

func (app *Application) paste() {
	app.cancelCompletion()
	text := app.clip.Paste()
	if text == "" {
		app.setMessage("Clipboard is empty")
		return
	}
	app.edit(func(d *buffer.Document) bool { return d.InsertText(text) })
}

func (app *Application) find() {
	app.cancelCompletion()
	query, ok := app.readLine("Find: ", app.lastFind)
	if !ok || query == "" {
		return
	}
	app.lastFind = query
	if _, err := app.tabs.ActiveDoc().Find(query); err != nil {
		app.setMessage("Not found: %s", query)
	}
}

func (app *Application) replace() {
	app.cancelCompletion()
	find, ok := app.readLine("Replace: ", app.lastFind)
	if !ok || find == "" {
		return
	}
	repl, ok := app.readLine("Replace "+find+" with: ", "")
	if !ok {
		return
	}
	app.lastFind = find
	doc := app.tabs.ActiveDoc()
	n, err := doc.ReplaceAll(find, repl)
	if err != nil {
		app.fail(err)
		return
	}
	if n > 0 {
		app.syncDocument(doc)
	}
	app.setMessage("Replaced %d occurrence(s)", n)
}

func (app *Application) gotoLine() {
	app.cancelCompletion()
	input, ok := app.readLine("Go to line: ", "")
	if !ok {
		return
	}
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || n < 1 {
		app.setMessage("Invalid line number: %s", input)
		return
	}
	app.tabs.ActiveDoc().GotoLine(n)
}

// fail reports a command error in the status bar and the log.
func (app *Application) fail(err error) {
	app.log.Warn("%v", err)
	switch {
	case errors.Is(err, tabs.ErrTabLimit):
		app.setMessage("Too many tabs (limit %d)", tabs.MaxTabs)
	default:
		app.setMessage("%v", err)
	}
}
