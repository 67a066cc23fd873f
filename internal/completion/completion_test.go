package completion

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/dshills/tasci/internal/buffer"
	"github.com/dshills/tasci/internal/lsp"
	"github.com/dshills/tasci/internal/syntax"
)

type fakeSource struct {
	ready    bool
	err      error
	nextID   int64
	calls    int
	lastPos  lsp.Position
	lastTrig string
}

func (f *fakeSource) Ready() bool { return f.ready }

func (f *fakeSource) Completion(uri string, pos lsp.Position, trigger string) (int64, error) {
	f.calls++
	f.lastPos = pos
	f.lastTrig = trigger
	if f.err != nil {
		return 0, f.err
	}
	f.nextID++
	return f.nextID, nil
}

func goDoc(t *testing.T, line string) *buffer.Document {
	t.Helper()
	lang, ok := syntax.Builtin().Lookup("Golang")
	if !ok {
		t.Fatal("Golang not registered")
	}
	d := buffer.FromLines([]string{line})
	d.SetLanguage(lang)
	d.SetCursor(0, len([]rune(line)))
	return d
}

func TestPrefixAt(t *testing.T) {
	tests := []struct {
		line      string
		col       int
		wantStart int
		want      string
	}{
		{"foo.ba", 6, 4, "ba"},
		{"x := fmt", 8, 5, "fmt"},
		{"a + ", 4, 4, ""},
		{"héllo", 5, 0, "héllo"},
		{"abc", 10, 0, "abc"},
	}
	for _, tt := range tests {
		start, got := PrefixAt([]rune(tt.line), tt.col)
		if start != tt.wantStart || got != tt.want {
			t.Errorf("PrefixAt(%q, %d) = %d,%q, want %d,%q", tt.line, tt.col, start, got, tt.wantStart, tt.want)
		}
	}
}

func TestTriggerAt(t *testing.T) {
	tests := []struct {
		line  string
		extra []string
		want  string
		ok    bool
	}{
		{"fo", nil, "", true},
		{"x.", nil, ".", true},
		{"p->", nil, ">", true},
		{"std::", nil, ":", true},
		{"a ", nil, "", false},
		{"a:", nil, "", false},
		{"<", []string{"<"}, "<", true},
		{"", nil, "", false},
	}
	for _, tt := range tests {
		line := []rune(tt.line)
		got, ok := TriggerAt(line, len(line), tt.extra)
		if got != tt.want || ok != tt.ok {
			t.Errorf("TriggerAt(%q) = %q,%v, want %q,%v", tt.line, got, ok, tt.want, tt.ok)
		}
	}
}

func TestKeywordFallback(t *testing.T) {
	d := goDoc(t, "co")
	c := New()
	c.OnInsert(d, nil, "")

	if !c.Active() {
		t.Fatal("expected active state")
	}
	want := []string{"const", "continue"}
	if fmt.Sprint(c.Items()) != fmt.Sprint(want) {
		t.Errorf("Items() = %v, want %v", c.Items(), want)
	}
	if c.FromServer() {
		t.Error("keyword candidates reported as server candidates")
	}
}

func TestKeywordFallbackExcludesExactMatch(t *testing.T) {
	d := goDoc(t, "go")
	c := New()
	c.OnInsert(d, nil, "")

	for _, it := range c.Items() {
		if it == "go" {
			t.Error("exact match offered as a candidate")
		}
	}
	if !c.Active() || c.Items()[0] != "goto" {
		t.Errorf("expected goto, got %v", c.Items())
	}
}

func TestKeywordFallbackCaseInsensitive(t *testing.T) {
	lang, _ := syntax.Builtin().Lookup("SQL")
	d := buffer.FromLines([]string{"sel"})
	d.SetLanguage(lang)
	d.SetCursor(0, 3)

	c := New()
	c.OnInsert(d, nil, "")
	if !c.Active() || c.Items()[0] != "SELECT" {
		t.Fatalf("expected SELECT, got %v", c.Items())
	}
}

func TestNoCandidatesStaysIdle(t *testing.T) {
	d := goDoc(t, "zzz")
	c := New()
	c.OnInsert(d, nil, "")
	if c.Active() {
		t.Errorf("expected idle, got %v", c.Items())
	}

	d = goDoc(t, "a ")
	c.OnInsert(d, nil, "")
	if c.State() != StateIdle {
		t.Error("non-trigger rune should leave completion idle")
	}
}

func TestServerRequestAndResponse(t *testing.T) {
	d := goDoc(t, "fmt.Pr")
	src := &fakeSource{ready: true}
	c := New()

	c.OnInsert(d, src, "file:///a.go")
	if src.calls != 1 {
		t.Fatalf("expected one request, got %d", src.calls)
	}
	if src.lastPos != (lsp.Position{Line: 0, Character: 6}) {
		t.Errorf("position = %+v", src.lastPos)
	}
	if c.PendingID() != 1 || c.Active() {
		t.Fatalf("pending = %d active = %v", c.PendingID(), c.Active())
	}

	if !c.ApplyResponse(1, []string{"Println", "Printf", "Sprintf", "Println", "Print"}) {
		t.Fatal("response rejected")
	}
	want := []string{"Println", "Printf", "Print"}
	if fmt.Sprint(c.Items()) != fmt.Sprint(want) {
		t.Errorf("Items() = %v, want %v", c.Items(), want)
	}
	if !c.FromServer() || c.PendingID() != 0 {
		t.Error("expected server candidates and no pending request")
	}
}

func TestTriggerCharacterForwarded(t *testing.T) {
	d := goDoc(t, "fmt.")
	src := &fakeSource{ready: true}
	c := New()
	c.OnInsert(d, src, "file:///a.go")
	if src.lastTrig != "." {
		t.Errorf("trigger = %q, want %q", src.lastTrig, ".")
	}
	c.ApplyResponse(src.nextID, []string{"Println", "Errorf"})
	if len(c.Items()) != 2 {
		t.Errorf("empty prefix should keep all labels, got %v", c.Items())
	}
}

func TestStaleResponseIgnored(t *testing.T) {
	d := goDoc(t, "fo")
	src := &fakeSource{ready: true}
	c := New()

	c.OnInsert(d, src, "u")
	first := c.PendingID()
	d.InsertChar('o')
	c.OnInsert(d, src, "u")
	second := c.PendingID()
	if first == second {
		t.Fatal("expected a new request id")
	}

	if c.ApplyResponse(first, []string{"foo"}) {
		t.Error("stale response accepted")
	}
	if c.Active() || c.PendingID() != second {
		t.Error("stale response changed state")
	}

	if !c.ApplyResponse(second, []string{"foobar"}) || c.Items()[0] != "foobar" {
		t.Errorf("current response not applied: %v", c.Items())
	}
}

func TestResponseAfterCancelIgnored(t *testing.T) {
	d := goDoc(t, "fo")
	src := &fakeSource{ready: true}
	c := New()
	c.OnInsert(d, src, "u")
	id := c.PendingID()
	c.Cancel()
	if c.ApplyResponse(id, []string{"foo"}) || c.Active() {
		t.Error("response applied after cancel")
	}
}

func TestServerErrorFallsBackToKeywords(t *testing.T) {
	d := goDoc(t, "ret")
	src := &fakeSource{ready: true, err: errors.New("broken pipe")}
	c := New()
	c.OnInsert(d, src, "u")
	if !c.Active() || c.Items()[0] != "return" {
		t.Errorf("expected keyword fallback, got %v", c.Items())
	}
}

func TestApplyFailure(t *testing.T) {
	d := goDoc(t, "ret")
	src := &fakeSource{ready: true}
	c := New()
	c.OnInsert(d, src, "u")
	if c.ApplyFailure(99, d.Language()) {
		t.Error("failure for unknown id accepted")
	}
	if !c.ApplyFailure(c.PendingID(), d.Language()) {
		t.Fatal("failure not applied")
	}
	if !c.Active() || c.Items()[0] != "return" {
		t.Errorf("expected keyword fallback, got %v", c.Items())
	}
}

func TestLimits(t *testing.T) {
	d := goDoc(t, "x")
	src := &fakeSource{ready: true}
	c := New(WithMaxItems(3), WithMaxLabel(5))
	c.OnInsert(d, src, "u")

	labels := []string{"x1", "x2", "xxxxxxxxxx", "x3", "x4"}
	c.ApplyResponse(c.PendingID(), labels)
	want := []string{"x1", "x2", "xxxxx"}
	if fmt.Sprint(c.Items()) != fmt.Sprint(want) {
		t.Errorf("Items() = %v, want %v", c.Items(), want)
	}

	c = New()
	c.OnInsert(d, src, "u")
	var many []string
	for i := 0; i < 40; i++ {
		many = append(many, fmt.Sprintf("x%02d", i))
	}
	many = append(many, "x"+strings.Repeat("y", 200))
	c.ApplyResponse(c.PendingID(), many)
	if len(c.Items()) != DefaultMaxItems {
		t.Errorf("len(Items()) = %d, want %d", len(c.Items()), DefaultMaxItems)
	}
}

func TestNextPrevWrap(t *testing.T) {
	d := goDoc(t, "co")
	c := New()
	c.OnInsert(d, nil, "")
	c.Prev()
	if c.Selected() != 1 {
		t.Errorf("Prev from 0 = %d, want 1", c.Selected())
	}
	c.Next()
	if c.Selected() != 0 {
		t.Errorf("Next wrap = %d, want 0", c.Selected())
	}
}

func TestAcceptReplacesPrefix(t *testing.T) {
	d := goDoc(t, "x := co + 1")
	d.SetCursor(0, 7)
	c := New()
	c.OnInsert(d, nil, "")
	c.Next()

	if !c.Accept(d) {
		t.Fatal("Accept failed")
	}
	if got := d.Line(0); got != "x := continue + 1" {
		t.Errorf("line = %q", got)
	}
	if cur := d.Cursor(); cur.Col != 13 {
		t.Errorf("cursor col = %d, want 13", cur.Col)
	}
	if c.Active() {
		t.Error("expected idle after accept")
	}
	if !d.Dirty() {
		t.Error("expected dirty document")
	}
}

func TestAcceptWhenIdle(t *testing.T) {
	d := goDoc(t, "co")
	c := New()
	if c.Accept(d) {
		t.Error("Accept succeeded while idle")
	}
	if d.Line(0) != "co" {
		t.Error("document modified")
	}
}

func TestExplicitTriggerWithoutPrefix(t *testing.T) {
	d := goDoc(t, "")
	c := New()
	c.Trigger(d, nil, "")
	if c.Active() {
		t.Error("empty prefix should not list every keyword")
	}

	src := &fakeSource{ready: true}
	c.Trigger(d, src, "u")
	if src.lastTrig != "" || c.PendingID() == 0 {
		t.Error("explicit trigger should send an invoked request")
	}
}
