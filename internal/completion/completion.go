// Package completion decides what to suggest at the cursor, merging
// language keywords with results from a language server.
package completion

import (
	"sort"
	"strings"

	"github.com/dshills/tasci/internal/buffer"
	"github.com/dshills/tasci/internal/lsp"
	"github.com/dshills/tasci/internal/syntax"
)

const (
	// DefaultMaxItems is the default cap on displayed candidates.
	DefaultMaxItems = 10

	// DefaultMaxLabel is the default cap on label length in runes.
	DefaultMaxLabel = 63
)

// State is the coordinator state.
type State int

const (
	StateIdle State = iota
	StateActive
)

// String returns the state name.
func (s State) String() string {
	if s == StateActive {
		return "active"
	}
	return "idle"
}

// Source issues completion requests to a language server.
type Source interface {
	Ready() bool
	Completion(uri string, pos lsp.Position, trigger string) (int64, error)
}

// Coordinator holds the suggestion list for the active document.
// It is not safe for concurrent use.
type Coordinator struct {
	state      State
	items      []string
	selected   int
	prefix     string
	pendingID  int64
	fromServer bool

	maxItems int
	maxLabel int
	triggers []string
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithMaxItems caps the number of candidates.
func WithMaxItems(n int) Option {
	return func(c *Coordinator) {
		if n > 0 {
			c.maxItems = n
		}
	}
}

// WithMaxLabel caps candidate label length in runes.
func WithMaxLabel(n int) Option {
	return func(c *Coordinator) {
		if n > 0 {
			c.maxLabel = n
		}
	}
}

// New creates an idle coordinator.
func New(opts ...Option) *Coordinator {
	c := &Coordinator{
		maxItems: DefaultMaxItems,
		maxLabel: DefaultMaxLabel,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the current state.
func (c *Coordinator) State() State { return c.state }

// Active reports whether candidates are being shown.
func (c *Coordinator) Active() bool { return c.state == StateActive }

// Items returns the candidates. The slice must not be modified.
func (c *Coordinator) Items() []string { return c.items }

// Selected returns the index of the highlighted candidate.
func (c *Coordinator) Selected() int { return c.selected }

// Prefix returns the identifier prefix the candidates were filtered by.
func (c *Coordinator) Prefix() string { return c.prefix }

// PendingID returns the id of the server request awaiting a response, or 0.
func (c *Coordinator) PendingID() int64 { return c.pendingID }

// FromServer reports whether the current candidates came from a server.
func (c *Coordinator) FromServer() bool { return c.fromServer }

// SetServerTriggers records extra trigger strings advertised by a server.
func (c *Coordinator) SetServerTriggers(triggers []string) {
	c.triggers = append(c.triggers[:0], triggers...)
}

// PrefixAt returns the start column and text of the identifier ending at
// col.
func PrefixAt(line []rune, col int) (int, string) {
	if col > len(line) {
		col = len(line)
	}
	start := col
	for start > 0 && syntax.IsWordRune(line[start-1]) {
		start--
	}
	return start, string(line[start:col])
}

// TriggerAt returns the trigger text ending at col, or "" when the rune
// before the cursor does not start completion. Identifier runes trigger
// with an empty string result and ok set.
func TriggerAt(line []rune, col int, extra []string) (trigger string, ok bool) {
	if col <= 0 || col > len(line) {
		return "", false
	}
	before := string(line[:col])
	for _, t := range []string{"->", "::", "."} {
		if strings.HasSuffix(before, t) {
			return t[len(t)-1:], true
		}
	}
	for _, t := range extra {
		if t != "" && strings.HasSuffix(before, t) {
			return t, true
		}
	}
	if syntax.IsWordRune(line[col-1]) {
		return "", true
	}
	return "", false
}

// OnInsert re-evaluates suggestions after a rune was typed.
func (c *Coordinator) OnInsert(doc *buffer.Document, src Source, uri string) {
	cur := doc.Cursor()
	trigger, ok := TriggerAt(doc.LineRunes(cur.Row), cur.Col, c.triggers)
	if !ok {
		c.Cancel()
		return
	}
	c.trigger(doc, src, uri, trigger, false)
}

// Trigger explicitly requests suggestions at the cursor.
func (c *Coordinator) Trigger(doc *buffer.Document, src Source, uri string) {
	c.trigger(doc, src, uri, "", true)
}

func (c *Coordinator) trigger(doc *buffer.Document, src Source, uri, trigger string, explicit bool) {
	cur := doc.Cursor()
	line := doc.LineRunes(cur.Row)
	_, prefix := PrefixAt(line, cur.Col)
	c.prefix = prefix

	if src != nil && src.Ready() {
		pos := lsp.Position{Line: cur.Row, Character: lsp.UTF16Column(line, cur.Col)}
		if id, err := src.Completion(uri, pos, trigger); err == nil {
			c.pendingID = id
			return
		}
	}

	c.pendingID = 0
	if prefix == "" && !explicit {
		c.Cancel()
		return
	}
	c.show(KeywordCandidates(doc.Language(), prefix), false)
}

// ApplyResponse installs server candidates for request id. A response for
// any other id leaves the state untouched and returns false.
func (c *Coordinator) ApplyResponse(id int64, labels []string) bool {
	if c.pendingID == 0 || id != c.pendingID {
		return false
	}
	c.pendingID = 0
	c.show(filterPrefix(labels, c.prefix, true), true)
	return true
}

// ApplyFailure falls back to keyword candidates when the pending request
// failed.
func (c *Coordinator) ApplyFailure(id int64, lang *syntax.Language) bool {
	if c.pendingID == 0 || id != c.pendingID {
		return false
	}
	c.pendingID = 0
	if c.prefix == "" {
		c.Cancel()
		return true
	}
	c.show(KeywordCandidates(lang, c.prefix), false)
	return true
}

func (c *Coordinator) show(candidates []string, fromServer bool) {
	items := make([]string, 0, min(len(candidates), c.maxItems))
	seen := make(map[string]struct{}, len(candidates))
	for _, cand := range candidates {
		if r := []rune(cand); len(r) > c.maxLabel {
			cand = string(r[:c.maxLabel])
		}
		if _, dup := seen[cand]; dup {
			continue
		}
		seen[cand] = struct{}{}
		items = append(items, cand)
		if len(items) == c.maxItems {
			break
		}
	}

	if len(items) == 0 {
		c.state = StateIdle
		c.items = nil
		c.selected = 0
		return
	}
	c.items = items
	c.selected = 0
	c.fromServer = fromServer
	c.state = StateActive
}

// Next highlights the following candidate, wrapping around.
func (c *Coordinator) Next() {
	if c.state == StateActive {
		c.selected = (c.selected + 1) % len(c.items)
	}
}

// Prev highlights the preceding candidate, wrapping around.
func (c *Coordinator) Prev() {
	if c.state == StateActive {
		c.selected = (c.selected - 1 + len(c.items)) % len(c.items)
	}
}

// Cancel returns to Idle and forgets any pending request.
func (c *Coordinator) Cancel() {
	c.state = StateIdle
	c.items = nil
	c.selected = 0
	c.pendingID = 0
	c.fromServer = false
}

// Accept replaces the identifier prefix at the cursor with the selected
// candidate and returns to Idle. It reports whether text was inserted.
func (c *Coordinator) Accept(doc *buffer.Document) bool {
	if c.state != StateActive {
		return false
	}
	label := c.items[c.selected]
	cur := doc.Cursor()
	start, _ := PrefixAt(doc.LineRunes(cur.Row), cur.Col)
	ok := doc.ReplaceSpan(cur.Row, start, cur.Col, label)
	c.Cancel()
	return ok
}

// KeywordCandidates returns the language keywords starting with prefix,
// sorted. Matching ignores case for case-insensitive languages. A keyword
// identical to the prefix is left out.
func KeywordCandidates(lang *syntax.Language, prefix string) []string {
	if lang == nil || prefix == "" {
		return nil
	}
	out := filterPrefix(lang.Keywords, prefix, lang.CaseInsensitive)
	sort.Strings(out)
	return out
}

func filterPrefix(labels []string, prefix string, foldCase bool) []string {
	if prefix == "" {
		return append([]string(nil), labels...)
	}
	lower := strings.ToLower(prefix)
	var out []string
	for _, l := range labels {
		if l == prefix && !foldCase {
			continue
		}
		var match bool
		if foldCase {
			match = strings.HasPrefix(strings.ToLower(l), lower)
		} else {
			match = strings.HasPrefix(l, prefix)
		}
		if match {
			out = append(out, l)
		}
	}
	return out
}
