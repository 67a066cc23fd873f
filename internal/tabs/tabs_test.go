package tabs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/dshills/tasci/internal/buffer"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func choose(c Choice) Prompter {
	return PrompterFunc(func(*buffer.Document) Choice { return c })
}

func TestNewManagerHasOneTab(t *testing.T) {
	m := NewManager(nil)
	if m.Count() != 1 || m.ActiveIndex() != 0 {
		t.Fatalf("expected one active tab, got count=%d active=%d", m.Count(), m.ActiveIndex())
	}
	if m.ActiveDoc().Name() != buffer.UntitledName {
		t.Errorf("expected untitled document, got %s", m.ActiveDoc().Name())
	}
}

func TestCreateDetectsLanguage(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "main.go", "package main\n/* open\n")

	var activated []*Tab
	m := NewManager(nil, WithListener(func(tab *Tab) { activated = append(activated, tab) }))
	tab, err := m.Create(path)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if m.ActiveIndex() != 1 || m.Active() != tab {
		t.Errorf("expected new tab to be active")
	}
	if lang := tab.Doc.Language(); lang == nil || lang.Name != "Golang" {
		t.Errorf("expected Golang, got %v", lang)
	}
	if !tab.Doc.InComment(1) {
		t.Error("expected comment state to be computed on activation")
	}
	if len(activated) != 1 || activated[0] != tab {
		t.Errorf("expected listener to run once for the new tab, got %d calls", len(activated))
	}
}

func TestCreateMissingFileGivesEmptyDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.py")
	m := NewManager(nil)
	tab, err := m.Create(path)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if tab.Doc.Path() != path || tab.Doc.LineCount() != 1 {
		t.Errorf("expected empty document bound to %s", path)
	}
}

func TestCreateRefusedAtLimit(t *testing.T) {
	m := NewManager(nil)
	for m.Count() < MaxTabs {
		if _, err := m.Create(""); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}
	before := m.ActiveIndex()
	if _, err := m.Create(""); !errors.Is(err, ErrTabLimit) {
		t.Errorf("expected ErrTabLimit, got %v", err)
	}
	if m.Count() != MaxTabs || m.ActiveIndex() != before {
		t.Error("expected refused Create to leave tabs unchanged")
	}
}

func TestCloseDirtyCancelLeavesStateUnchanged(t *testing.T) {
	m := NewManager(nil)
	m.Create("")
	m.Create("")
	m.Switch(1)
	doc := m.ActiveDoc()
	doc.InsertChar('x')

	err := m.Close(1, choose(ChoiceCancel))
	if !errors.Is(err, ErrCloseCancelled) {
		t.Fatalf("expected ErrCloseCancelled, got %v", err)
	}
	if m.Count() != 3 || m.ActiveIndex() != 1 || !doc.Dirty() || m.Tab(1).Doc != doc {
		t.Error("expected cancelled close to leave tabs, active index and dirty flag unchanged")
	}

	if err := m.Close(1, nil); !errors.Is(err, ErrCloseCancelled) {
		t.Errorf("expected nil prompter to cancel, got %v", err)
	}
}

func TestCloseDirtyDiscard(t *testing.T) {
	m := NewManager(nil)
	m.ActiveDoc().InsertChar('x')
	if err := m.Close(0, choose(ChoiceDiscard)); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if m.Count() != 1 || m.ActiveDoc().Dirty() || m.ActiveDoc().Line(0) != "" {
		t.Error("expected a fresh empty tab after closing the last tab")
	}
}

func TestCloseDirtySave(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.txt", "a\n")

	m := NewManager(nil)
	tab, _ := m.Create(path)
	tab.Doc.MoveEnd()
	tab.Doc.InsertChar('b')

	if err := m.Close(1, choose(ChoiceSave)); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "ab\n" {
		t.Errorf("expected saved content ab, got %q", data)
	}
	if m.Count() != 1 {
		t.Errorf("expected 1 tab, got %d", m.Count())
	}
}

func TestCloseSaveFailureAborts(t *testing.T) {
	m := NewManager(nil)
	m.ActiveDoc().InsertChar('x')

	err := m.Close(0, choose(ChoiceSave))
	if !errors.Is(err, buffer.ErrNoPath) {
		t.Fatalf("expected ErrNoPath, got %v", err)
	}
	if m.Count() != 1 || !m.ActiveDoc().Dirty() || m.ActiveDoc().Line(0) != "x" {
		t.Error("expected failed save to abort the close")
	}
}

func TestCloseAdjustsActive(t *testing.T) {
	m := NewManager(nil)
	m.Create("")
	m.Create("")
	m.Create("")
	third := m.Tab(2)
	m.Switch(2)

	m.Close(0, nil)
	if m.ActiveIndex() != 1 || m.Active() != third {
		t.Errorf("expected active to shift down to 1, got %d", m.ActiveIndex())
	}

	m.Switch(2)
	m.Close(2, nil)
	if m.ActiveIndex() != 1 {
		t.Errorf("expected active clamped to 1, got %d", m.ActiveIndex())
	}
	if err := m.Close(9, nil); !errors.Is(err, ErrInvalidIndex) {
		t.Errorf("expected ErrInvalidIndex, got %v", err)
	}
}

func TestOpenOrSwitchNeverDuplicates(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "x.c", "int x;\n")
	other := writeFile(t, dir, "y.c", "int y;\n")

	m := NewManager(nil)
	first, err := m.OpenOrSwitch(path)
	if err != nil {
		t.Fatalf("OpenOrSwitch() error = %v", err)
	}
	m.OpenOrSwitch(other)
	count := m.Count()

	rel := filepath.Join(dir, ".", "x.c")
	second, err := m.OpenOrSwitch(rel)
	if err != nil {
		t.Fatalf("OpenOrSwitch() error = %v", err)
	}
	if second != first {
		t.Error("expected the existing tab to be returned")
	}
	if m.Count() != count {
		t.Errorf("expected %d tabs, got %d", count, m.Count())
	}
	if m.ActiveIndex() != m.FindByPath(path) {
		t.Error("expected the existing tab to become active")
	}
}

func TestNextPrevWrap(t *testing.T) {
	m := NewManager(nil)
	m.Create("")
	m.Switch(1)
	m.Next()
	if m.ActiveIndex() != 0 {
		t.Errorf("expected wrap to 0, got %d", m.ActiveIndex())
	}
	m.Prev()
	if m.ActiveIndex() != 1 {
		t.Errorf("expected wrap to 1, got %d", m.ActiveIndex())
	}
}

func TestRestore(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.go", "package a\n")
	b := writeFile(t, dir, "b.go", "package b\n")
	missingDir := filepath.Join(dir, "nope", "c.go")

	m := NewManager(nil)
	errs := m.Restore([]string{a, missingDir, b}, 0)
	if len(errs) != 0 {
		t.Errorf("expected missing file to open as an empty document, got %v", errs)
	}
	if m.Count() != 3 {
		t.Fatalf("expected startup tab to be replaced, got %d tabs", m.Count())
	}
	if m.ActiveDoc().Path() != a {
		t.Errorf("expected %s active, got %s", a, m.ActiveDoc().Path())
	}
}

func TestRestoreFillsAllTabs(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for i := 0; i < MaxTabs; i++ {
		paths = append(paths, writeFile(t, dir, fmt.Sprintf("f%02d.txt", i), "x\n"))
	}

	m := NewManager(nil)
	if errs := m.Restore(paths, -1); len(errs) != 0 {
		t.Fatalf("Restore() errors = %v", errs)
	}
	if m.Count() != MaxTabs {
		t.Fatalf("expected %d tabs, got %d", MaxTabs, m.Count())
	}
	if m.Tab(0).Doc.Path() != paths[0] {
		t.Errorf("expected startup tab dropped, first tab is %q", m.Tab(0).Doc.Path())
	}
	if m.ActiveDoc().Path() != paths[MaxTabs-1] {
		t.Errorf("expected last file active, got %q", m.ActiveDoc().Path())
	}

	extra := writeFile(t, dir, "extra.txt", "y\n")
	errs := m.Restore([]string{extra}, -1)
	if len(errs) != 1 || !errors.Is(errs[0], ErrTabLimit) {
		t.Errorf("expected ErrTabLimit, got %v", errs)
	}
}

func TestRestoreKeepsEditedStartupTab(t *testing.T) {
	a := writeFile(t, t.TempDir(), "a.txt", "a\n")
	m := NewManager(nil)
	m.ActiveDoc().InsertChar('x')

	m.Restore([]string{a}, 0)
	if m.Count() != 2 {
		t.Fatalf("expected edited startup tab kept, got %d tabs", m.Count())
	}
	if m.ActiveDoc().Path() != a {
		t.Errorf("expected %s active, got %s", a, m.ActiveDoc().Path())
	}
}
