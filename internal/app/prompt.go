package app

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dshills/tasci/internal/buffer"
	"github.com/dshills/tasci/internal/config"
	"github.com/dshills/tasci/internal/renderer"
	"github.com/dshills/tasci/internal/renderer/backend"
	"github.com/dshills/tasci/internal/tabs"
)

// nextEvent blocks for the next terminal event. It reports false once the
// application is stopping.
func (app *Application) nextEvent() (backend.Event, bool) {
	select {
	case ev := <-app.input:
		return ev, true
	case <-app.done:
		return backend.Event{}, false
	}
}

// readLine edits one line of input on the bottom row until Enter, which
// returns the text, or Escape, which reports false. The rest of the editor
// is paused meanwhile.
func (app *Application) readLine(label, initial string) (string, bool) {
	p := &renderer.Prompt{Label: label, Input: []rune(initial), Cursor: utf8.RuneCountInString(initial)}
	app.prompt = p
	defer func() { app.prompt = nil }()

	for {
		app.draw()
		ev, ok := app.nextEvent()
		if !ok {
			return "", false
		}
		if ev.Type != backend.EventKey {
			continue
		}
		switch ev.Key {
		case backend.KeyEnter:
			return string(p.Input), true
		case backend.KeyEscape, backend.KeyCtrlC, backend.KeyCtrlQ:
			return "", false
		case backend.KeyBackspace:
			if p.Cursor > 0 {
				p.Input = append(p.Input[:p.Cursor-1], p.Input[p.Cursor:]...)
				p.Cursor--
			}
		case backend.KeyDelete:
			if p.Cursor < len(p.Input) {
				p.Input = append(p.Input[:p.Cursor], p.Input[p.Cursor+1:]...)
			}
		case backend.KeyLeft:
			if p.Cursor > 0 {
				p.Cursor--
			}
		case backend.KeyRight:
			if p.Cursor < len(p.Input) {
				p.Cursor++
			}
		case backend.KeyHome, backend.KeyCtrlA:
			p.Cursor = 0
		case backend.KeyEnd, backend.KeyCtrlE:
			p.Cursor = len(p.Input)
		case backend.KeyCtrlU:
			p.Input = p.Input[p.Cursor:]
			p.Cursor = 0
		case backend.KeyRune:
			p.Input = append(p.Input, 0)
			copy(p.Input[p.Cursor+1:], p.Input[p.Cursor:])
			p.Input[p.Cursor] = ev.Rune
			p.Cursor++
		}
	}
}

// choose asks a single-key question and returns the chosen key, one of
// keys. Escape returns the last key.
func (app *Application) choose(label, keys string) rune {
	fallback, _ := utf8.DecodeLastRuneInString(keys)
	app.prompt = &renderer.Prompt{Label: label}
	defer func() { app.prompt = nil }()

	for {
		app.draw()
		ev, ok := app.nextEvent()
		if !ok {
			return fallback
		}
		if ev.Type != backend.EventKey {
			continue
		}
		switch ev.Key {
		case backend.KeyEscape, backend.KeyCtrlC:
			return fallback
		case backend.KeyRune:
			if r := unicode.ToLower(ev.Rune); strings.ContainsRune(keys, r) {
				return r
			}
		}
	}
}

// ConfirmClose implements tabs.Prompter. An untitled document is written
// here under the name the user gives; it keeps no path if that write fails.
func (app *Application) ConfirmClose(doc *buffer.Document) tabs.Choice {
	label := fmt.Sprintf("Save changes to %s? (y)es (n)o (c)ancel ", doc.Name())
	switch app.choose(label, "ync") {
	case 'y':
		if doc.Path() != "" {
			return tabs.ChoiceSave
		}
		path, ok := app.askPath("Save as: ")
		if !ok {
			return tabs.ChoiceCancel
		}
		if err := doc.SaveAs(path); err != nil {
			app.saveErr = NewOperationError("save", path, err)
			app.fail(app.saveErr)
			return tabs.ChoiceCancel
		}
		if doc == app.tabs.ActiveDoc() {
			app.tabs.Redetect()
		}
		// Already written and clean.
		return tabs.ChoiceDiscard
	case 'n':
		return tabs.ChoiceDiscard
	default:
		return tabs.ChoiceCancel
	}
}

// askPath prompts for a file path starting in the last used directory and
// returns it made absolute.
func (app *Application) askPath(label string) (string, bool) {
	initial := app.defaultDir()
	if initial != "" {
		initial += string(filepath.Separator)
	}
	input, ok := app.readLine(label, initial)
	input = strings.TrimSpace(input)
	if !ok || input == "" || strings.HasSuffix(input, string(filepath.Separator)) {
		return "", false
	}
	path, err := filepath.Abs(config.ExpandHome(input))
	if err != nil {
		return "", false
	}
	app.lastDir = filepath.Dir(path)
	return path, true
}

// defaultDir is the directory offered by path prompts: the directory of
// the active file, the last used directory, or the working directory.
func (app *Application) defaultDir() string {
	if p := app.tabs.ActiveDoc().Path(); p != "" {
		return filepath.Dir(p)
	}
	if app.lastDir != "" {
		return app.lastDir
	}
	if wd, err := filepath.Abs("."); err == nil {
		return wd
	}
	return ""
}
