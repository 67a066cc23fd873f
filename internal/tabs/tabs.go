// Package tabs manages the ordered set of open documents and which one is
// active.
package tabs

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/dshills/tasci/internal/buffer"
	"github.com/dshills/tasci/internal/logging"
	"github.com/dshills/tasci/internal/syntax"
)

// MaxTabs is the maximum number of open tabs.
const MaxTabs = 16

// headLines is how many leading lines language detection looks at.
const headLines = 20

// Tab errors.
var (
	// ErrTabLimit indicates MaxTabs tabs are already open.
	ErrTabLimit = errors.New("too many open tabs")

	// ErrCloseCancelled indicates the user cancelled closing a dirty tab.
	ErrCloseCancelled = errors.New("close cancelled")

	// ErrInvalidIndex indicates a tab index out of range.
	ErrInvalidIndex = errors.New("invalid tab index")
)

// View holds per-tab scroll state.
type View struct {
	TopRow  int
	LeftCol int
}

// Tab is one open document and its view state.
type Tab struct {
	Doc  *buffer.Document
	View View
}

// Choice is the answer to the close prompt for a dirty document.
type Choice int

const (
	ChoiceSave Choice = iota
	ChoiceDiscard
	ChoiceCancel
)

// String returns the choice label.
func (c Choice) String() string {
	switch c {
	case ChoiceSave:
		return "save"
	case ChoiceDiscard:
		return "discard"
	default:
		return "cancel"
	}
}

// Prompter asks what to do with unsaved changes before a close.
// It may set the document path before returning ChoiceSave.
type Prompter interface {
	ConfirmClose(doc *buffer.Document) Choice
}

// PrompterFunc adapts a function to Prompter.
type PrompterFunc func(doc *buffer.Document) Choice

// ConfirmClose calls f.
func (f PrompterFunc) ConfirmClose(doc *buffer.Document) Choice { return f(doc) }

// Listener is called after a tab becomes active.
type Listener func(tab *Tab)

// Manager owns the open tabs. There is always at least one tab and exactly
// one of them is active.
type Manager struct {
	tabs     []*Tab
	active   int
	registry *syntax.Registry
	listener Listener
	logger   *logging.Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithListener sets the activation listener.
func WithListener(l Listener) Option {
	return func(m *Manager) { m.listener = l }
}

// WithLogger sets the logger.
func WithLogger(l *logging.Logger) Option {
	return func(m *Manager) { m.logger = l.WithComponent("tabs") }
}

// NewManager creates a manager holding one empty tab.
func NewManager(registry *syntax.Registry, opts ...Option) *Manager {
	if registry == nil {
		registry = syntax.Builtin()
	}
	m := &Manager{
		registry: registry,
		logger:   logging.Discard,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.tabs = []*Tab{{Doc: buffer.New()}}
	return m
}

// SetListener replaces the activation listener.
func (m *Manager) SetListener(l Listener) { m.listener = l }

// Registry returns the language registry used for detection.
func (m *Manager) Registry() *syntax.Registry { return m.registry }

// Count returns the number of open tabs.
func (m *Manager) Count() int { return len(m.tabs) }

// ActiveIndex returns the index of the active tab.
func (m *Manager) ActiveIndex() int { return m.active }

// Active returns the active tab.
func (m *Manager) Active() *Tab { return m.tabs[m.active] }

// ActiveDoc returns the active tab's document.
func (m *Manager) ActiveDoc() *buffer.Document { return m.tabs[m.active].Doc }

// Tab returns the tab at i, or nil.
func (m *Manager) Tab(i int) *Tab {
	if i < 0 || i >= len(m.tabs) {
		return nil
	}
	return m.tabs[i]
}

// Tabs returns the tabs in order. The slice must not be modified.
func (m *Manager) Tabs() []*Tab { return m.tabs }

// DirtyCount returns the number of tabs with unsaved changes.
func (m *Manager) DirtyCount() int {
	n := 0
	for _, t := range m.tabs {
		if t.Doc.Dirty() {
			n++
		}
	}
	return n
}

// Create opens path in a new tab, or an empty document when path is "",
// and makes it active. A path that does not exist yet gives an empty
// document that will be written there on save. On error nothing changes.
func (m *Manager) Create(path string) (*Tab, error) {
	if len(m.tabs) >= MaxTabs {
		return nil, ErrTabLimit
	}

	doc := buffer.New()
	if path != "" {
		abs, err := absPath(path)
		if err != nil {
			return nil, err
		}
		opened, err := buffer.Open(abs)
		switch {
		case err == nil:
			doc = opened
		case errors.Is(err, fs.ErrNotExist):
			doc.SetPath(abs)
		default:
			return nil, err
		}
	}

	tab := &Tab{Doc: doc}
	m.tabs = append(m.tabs, tab)
	m.activate(len(m.tabs) - 1)
	m.logger.Debug("created tab %d for %q", m.active, doc.Name())
	return tab, nil
}

// Switch makes tab i active. The document language is detected again and
// its comment state recomputed before listeners run.
func (m *Manager) Switch(i int) error {
	if i < 0 || i >= len(m.tabs) {
		return fmt.Errorf("%w: %d", ErrInvalidIndex, i)
	}
	m.activate(i)
	return nil
}

// Next activates the following tab, wrapping around.
func (m *Manager) Next() {
	m.activate((m.active + 1) % len(m.tabs))
}

// Prev activates the preceding tab, wrapping around.
func (m *Manager) Prev() {
	m.activate((m.active - 1 + len(m.tabs)) % len(m.tabs))
}

// Close closes tab i. A dirty document is resolved through p: ChoiceSave
// saves and aborts the close if saving fails, ChoiceDiscard drops the
// changes and ChoiceCancel returns ErrCloseCancelled with nothing changed.
// A nil prompter cancels. Closing the last tab leaves one empty tab.
func (m *Manager) Close(i int, p Prompter) error {
	if i < 0 || i >= len(m.tabs) {
		return fmt.Errorf("%w: %d", ErrInvalidIndex, i)
	}
	doc := m.tabs[i].Doc

	if doc.Dirty() {
		choice := ChoiceCancel
		if p != nil {
			choice = p.ConfirmClose(doc)
		}
		switch choice {
		case ChoiceSave:
			if err := doc.Save(); err != nil {
				return fmt.Errorf("save before close: %w", err)
			}
		case ChoiceDiscard:
		default:
			return ErrCloseCancelled
		}
	}

	wasActive := i == m.active
	m.tabs = append(m.tabs[:i], m.tabs[i+1:]...)
	m.logger.Debug("closed tab %d (%s)", i, doc.Name())

	if len(m.tabs) == 0 {
		m.tabs = []*Tab{{Doc: buffer.New()}}
		m.activate(0)
		return nil
	}
	if i < m.active {
		m.active--
		return nil
	}
	if wasActive {
		if m.active >= len(m.tabs) {
			m.active = len(m.tabs) - 1
		}
		m.activate(m.active)
	}
	return nil
}

// FindByPath returns the index of the tab holding path, or -1.
func (m *Manager) FindByPath(path string) int {
	abs, err := absPath(path)
	if err != nil {
		return -1
	}
	for i, t := range m.tabs {
		if t.Doc.Path() == "" {
			continue
		}
		if other, err := absPath(t.Doc.Path()); err == nil && other == abs {
			return i
		}
	}
	return -1
}

// OpenOrSwitch activates the tab holding path, opening it in a new tab
// only if no tab holds it yet.
func (m *Manager) OpenOrSwitch(path string) (*Tab, error) {
	if i := m.FindByPath(path); i >= 0 {
		m.activate(i)
		return m.tabs[i], nil
	}
	return m.Create(path)
}

// Restore opens paths in order and activates the tab opened for
// paths[active], or the last one opened when active is out of range. Files
// that fail to open are skipped and their errors returned. An untouched
// empty startup tab is dropped as soon as the first file opens, so it never
// counts against MaxTabs.
func (m *Manager) Restore(paths []string, active int) []error {
	var placeholder *Tab
	if len(m.tabs) == 1 && isPristine(m.tabs[0].Doc) {
		placeholder = m.tabs[0]
	}

	var errs []error
	opened := make([]*Tab, 0, len(paths))
	for _, p := range paths {
		tab, err := m.OpenOrSwitch(p)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", p, err))
			continue
		}
		opened = append(opened, tab)
		if placeholder != nil {
			m.drop(placeholder)
			placeholder = nil
		}
	}
	if len(opened) == 0 {
		return errs
	}

	target := opened[len(opened)-1]
	if active >= 0 && active < len(opened) {
		target = opened[active]
	}
	for i, t := range m.tabs {
		if t == target {
			m.activate(i)
			break
		}
	}
	return errs
}

// drop removes tab without prompting. It must not be the only tab.
func (m *Manager) drop(tab *Tab) {
	for i, t := range m.tabs {
		if t != tab {
			continue
		}
		m.tabs = append(m.tabs[:i], m.tabs[i+1:]...)
		if m.active > i || m.active >= len(m.tabs) {
			m.active--
		}
		return
	}
}

func isPristine(doc *buffer.Document) bool {
	return doc.Path() == "" && !doc.Dirty() && doc.LineCount() == 1 && doc.Line(0) == ""
}

// Redetect runs language detection on the active document again, for
// example after Save As changed its extension.
func (m *Manager) Redetect() {
	m.detect(m.tabs[m.active].Doc)
}

func (m *Manager) activate(i int) {
	m.active = i
	tab := m.tabs[i]
	m.detect(tab.Doc)
	if m.listener != nil {
		m.listener(tab)
	}
}

func (m *Manager) detect(doc *buffer.Document) {
	doc.SetLanguage(m.registry.Detect(doc.Path(), doc.Head(headLines)))
}

func absPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.Clean(abs), nil
}
