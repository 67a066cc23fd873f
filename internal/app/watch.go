package app

import (
	"github.com/dshills/tasci/internal/buffer"
	"github.com/dshills/tasci/internal/watcher"
)

// syncWatches watches exactly the files open in tabs.
func (app *Application) syncWatches() {
	if app.watch == nil {
		return
	}
	var paths []string
	for _, t := range app.tabs.Tabs() {
		if p := t.Doc.Path(); p != "" {
			paths = append(paths, p)
		}
	}
	if err := app.watch.Sync(paths); err != nil {
		app.log.Debug("watch: %v", err)
	}
}

// handleFileEvent reacts to an open file changing on disk. Clean documents
// are reloaded; documents with unsaved edits are left alone and the user
// is told.
func (app *Application) handleFileEvent(fe watcher.Event) {
	i := app.tabs.FindByPath(fe.Path)
	if i < 0 {
		return
	}
	doc := app.tabs.Tab(i).Doc

	if fe.Op.Has(watcher.OpRemove) || fe.Op.Has(watcher.OpRename) {
		app.setMessage("%s was removed or renamed on disk", doc.Name())
		return
	}
	if doc.Dirty() {
		app.setMessage("%s changed on disk; unsaved edits kept", doc.Name())
		return
	}

	lines, err := buffer.Load(fe.Path)
	if err != nil {
		app.log.Debug("reload %s: %v", fe.Path, err)
		return
	}
	if doc.Equal(lines) {
		return
	}
	doc.Reload(lines)
	app.syncDocument(doc)
	app.log.Info("reloaded %s", fe.Path)
	app.setMessage("Reloaded %s", doc.Name())
}
