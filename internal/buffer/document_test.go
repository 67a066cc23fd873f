package buffer

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/dshills/tasci/internal/syntax"
)

func cLang(t *testing.T) *syntax.Language {
	t.Helper()
	lang, ok := syntax.Builtin().Lookup("C")
	if !ok {
		t.Fatal("C language not registered")
	}
	return lang
}

func checkInvariants(t *testing.T, d *Document) {
	t.Helper()
	if d.LineCount() < 1 {
		t.Fatalf("expected at least one line, got %d", d.LineCount())
	}
	cur := d.Cursor()
	if cur.Row < 0 || cur.Row >= d.LineCount() {
		t.Fatalf("cursor row %d out of range [0,%d)", cur.Row, d.LineCount())
	}
	if cur.Col < 0 || cur.Col > len(d.LineRunes(cur.Row)) {
		t.Fatalf("cursor col %d out of range [0,%d]", cur.Col, len(d.LineRunes(cur.Row)))
	}
	if n := len(d.CommentStates()); n != d.LineCount() {
		t.Fatalf("comment state length %d, line count %d", n, d.LineCount())
	}
}

func TestInsertNewlineSplitsLine(t *testing.T) {
	d := FromLines([]string{"hello"})
	d.SetCursor(0, 2)

	if !d.InsertNewline() {
		t.Fatal("expected InsertNewline to apply")
	}
	lines := d.Lines()
	if len(lines) != 2 || lines[0] != "he" || lines[1] != "llo" {
		t.Errorf("expected [he llo], got %q", lines)
	}
	if cur := d.Cursor(); cur != (Position{Row: 1, Col: 0}) {
		t.Errorf("expected cursor (1,0), got %+v", cur)
	}
	if !d.Dirty() {
		t.Error("expected document to be dirty")
	}
	checkInvariants(t, d)
}

func TestInsertCharAtCapacity(t *testing.T) {
	full := strings.Repeat("x", MaxLineLen)
	d := FromLines([]string{full})
	d.SetCursor(0, 5)

	if d.InsertChar('y') {
		t.Error("expected insert into a full line to be refused")
	}
	if d.Line(0) != full {
		t.Error("expected full line to be unchanged")
	}
	if d.Dirty() {
		t.Error("expected refused insert to leave document clean")
	}
	if d.Cursor().Col != 5 {
		t.Errorf("expected cursor col 5, got %d", d.Cursor().Col)
	}
}

func TestInsertTextClipsToCapacity(t *testing.T) {
	d := FromLines([]string{strings.Repeat("a", MaxLineLen-3)})
	d.MoveEnd()
	if !d.InsertText("bcdef") {
		t.Fatal("expected partial paste to apply")
	}
	if n := len(d.LineRunes(0)); n != MaxLineLen {
		t.Errorf("expected line length %d, got %d", MaxLineLen, n)
	}
	if !strings.HasSuffix(d.Line(0), "bcd") {
		t.Errorf("expected clipped paste to end with bcd, got %q", d.Line(0)[MaxLineLen-5:])
	}
	if d.InsertText("z") {
		t.Error("expected paste into a full line to be refused")
	}
}

func TestDeleteCharMerge(t *testing.T) {
	d := FromLines([]string{"abc", "def"})
	d.SetCursor(1, 0)

	if !d.DeleteChar() {
		t.Fatal("expected merge to apply")
	}
	if got := d.Lines(); len(got) != 1 || got[0] != "abcdef" {
		t.Errorf("expected [abcdef], got %q", got)
	}
	if cur := d.Cursor(); cur != (Position{Row: 0, Col: 3}) {
		t.Errorf("expected cursor (0,3), got %+v", cur)
	}
	checkInvariants(t, d)

	d.SetCursor(0, 0)
	if d.DeleteChar() {
		t.Error("expected backspace at document start to do nothing")
	}
}

func TestMergeRefusedOverCapacity(t *testing.T) {
	a := strings.Repeat("a", 600)
	b := strings.Repeat("b", 600)
	d := FromLines([]string{a, b})

	d.SetCursor(1, 0)
	if d.DeleteChar() {
		t.Error("expected backspace merge over capacity to be refused")
	}
	d.SetCursor(0, 600)
	if d.DeleteForward() {
		t.Error("expected forward merge over capacity to be refused")
	}
	if d.LineCount() != 2 || d.Dirty() {
		t.Error("expected refused merges to leave the document unchanged")
	}

	exact := FromLines([]string{strings.Repeat("a", 1000), strings.Repeat("b", MaxLineLen-1000)})
	exact.SetCursor(1, 0)
	if !exact.DeleteChar() {
		t.Error("expected merge to exactly MaxLineLen to apply")
	}
}

func TestDeleteForward(t *testing.T) {
	d := FromLines([]string{"ab", "cd"})
	d.SetCursor(0, 0)
	d.DeleteForward()
	if d.Line(0) != "b" {
		t.Errorf("expected b, got %q", d.Line(0))
	}
	d.MoveEnd()
	d.DeleteForward()
	if got := d.Lines(); len(got) != 1 || got[0] != "bcd" {
		t.Errorf("expected [bcd], got %q", got)
	}
	d.MoveEnd()
	if d.DeleteForward() {
		t.Error("expected delete at document end to do nothing")
	}
	checkInvariants(t, d)
}

func TestDeleteLine(t *testing.T) {
	d := FromLines([]string{"only"})
	d.SetCursor(0, 3)
	if !d.DeleteLine(0) {
		t.Fatal("expected DeleteLine to apply")
	}
	if d.LineCount() != 1 || d.Line(0) != "" {
		t.Errorf("expected a single empty line, got %q", d.Lines())
	}
	if d.Cursor() != (Position{}) {
		t.Errorf("expected cursor reset, got %+v", d.Cursor())
	}

	d = FromLines([]string{"a", "b", "c"})
	d.SetCursor(2, 1)
	d.DeleteLine(0)
	if got := d.Lines(); len(got) != 2 || got[0] != "b" || got[1] != "c" {
		t.Errorf("expected [b c], got %q", got)
	}
	if d.Cursor().Row != 1 {
		t.Errorf("expected cursor to follow its line to row 1, got %d", d.Cursor().Row)
	}
	if d.DeleteLine(5) {
		t.Error("expected out of range DeleteLine to be refused")
	}
	checkInvariants(t, d)
}

func TestCutLine(t *testing.T) {
	d := FromLines([]string{"one", "two"})
	d.SetCursor(1, 0)
	if got := d.CutLine(); got != "two" {
		t.Errorf("expected cut text two, got %q", got)
	}
	if d.LineCount() != 1 || d.Cursor().Row != 0 {
		t.Errorf("expected one line with cursor on row 0")
	}
}

func TestBlockCommentAcrossNewline(t *testing.T) {
	d := New()
	d.SetLanguage(cLang(t))

	for _, r := range "/*" {
		d.InsertChar(r)
	}
	d.InsertNewline()
	for _, r := range "text" {
		d.InsertChar(r)
	}
	d.InsertNewline()
	d.InsertNewline()

	for i := 0; i < d.LineCount(); i++ {
		if !d.InComment(i) {
			t.Errorf("expected line %d to be inside the comment", i)
		}
	}

	for _, r := range "*/" {
		d.InsertChar(r)
	}
	d.InsertNewline()
	d.InsertText("after")

	want := []bool{true, true, true, false, false}
	got := d.CommentStates()
	if len(got) != len(want) {
		t.Fatalf("expected %d states, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("state[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestReplaceSpan(t *testing.T) {
	d := FromLines([]string{"fmt.Pri(x)"})
	if !d.ReplaceSpan(0, 4, 7, "Println") {
		t.Fatal("expected ReplaceSpan to apply")
	}
	if d.Line(0) != "fmt.Println(x)" {
		t.Errorf("expected fmt.Println(x), got %q", d.Line(0))
	}
	if d.Cursor() != (Position{Row: 0, Col: 11}) {
		t.Errorf("expected cursor after insertion, got %+v", d.Cursor())
	}
	if d.ReplaceSpan(0, 3, 99, "x") {
		t.Error("expected out of range span to be refused")
	}
}

func TestFindWraps(t *testing.T) {
	d := FromLines([]string{"foo bar", "baz", "bar foo"})

	pos, err := d.Find("bar")
	if err != nil || pos != (Position{Row: 0, Col: 4}) {
		t.Errorf("expected (0,4), got %+v, %v", pos, err)
	}
	pos, _ = d.Find("bar")
	if pos != (Position{Row: 2, Col: 0}) {
		t.Errorf("expected (2,0), got %+v", pos)
	}
	pos, _ = d.Find("bar")
	if pos != (Position{Row: 0, Col: 4}) {
		t.Errorf("expected wrap to (0,4), got %+v", pos)
	}
	if _, err := d.Find("missing"); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := d.Find(""); err != ErrEmptyQuery {
		t.Errorf("expected ErrEmptyQuery, got %v", err)
	}
}

func TestReplaceAll(t *testing.T) {
	long := strings.Repeat("a", MaxLineLen-1) + "x"
	d := FromLines([]string{"x = x", "none", long})

	n, err := d.ReplaceAll("x", "yy")
	if err != nil {
		t.Fatalf("ReplaceAll() error = %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 replacements, got %d", n)
	}
	if d.Line(0) != "yy = yy" {
		t.Errorf("expected yy = yy, got %q", d.Line(0))
	}
	if d.Line(2) != long {
		t.Error("expected overlong result line to be left unchanged")
	}
	if !d.Dirty() {
		t.Error("expected document to be dirty")
	}
}

func TestMotion(t *testing.T) {
	d := FromLines([]string{"abc", "d"})
	d.SetCursor(0, 3)
	d.MoveRight()
	if d.Cursor() != (Position{Row: 1, Col: 0}) {
		t.Errorf("expected wrap to (1,0), got %+v", d.Cursor())
	}
	d.MoveLeft()
	if d.Cursor() != (Position{Row: 0, Col: 3}) {
		t.Errorf("expected wrap back to (0,3), got %+v", d.Cursor())
	}
	d.MoveDown(1)
	if d.Cursor() != (Position{Row: 1, Col: 1}) {
		t.Errorf("expected clamped column (1,1), got %+v", d.Cursor())
	}
	d.GotoLine(100)
	if d.Cursor().Row != 1 {
		t.Errorf("expected GotoLine to clamp to last line, got %d", d.Cursor().Row)
	}
	d.MoveTop()
	if d.Cursor() != (Position{}) {
		t.Errorf("expected top, got %+v", d.Cursor())
	}
}

// TestIncrementalMatchesFullRecalc drives random edits and compares the
// incrementally maintained comment state with a full rescan.
func TestIncrementalMatchesFullRecalc(t *testing.T) {
	lang := cLang(t)
	d := FromLines([]string{"int a;", "/* x", "y */", "z", "", "w"})
	d.SetLanguage(lang)
	rng := rand.New(rand.NewSource(42))
	runes := []rune("/**/ab\"'\\")

	for step := 0; step < 2000; step++ {
		switch rng.Intn(8) {
		case 0, 1, 2:
			d.InsertChar(runes[rng.Intn(len(runes))])
		case 3:
			d.InsertNewline()
		case 4:
			d.DeleteChar()
		case 5:
			d.DeleteForward()
		case 6:
			d.DeleteLine(rng.Intn(d.LineCount()))
		case 7:
			row := rng.Intn(d.LineCount())
			d.SetCursor(row, rng.Intn(len(d.LineRunes(row))+1))
		}
		checkInvariants(t, d)

		want := syntax.RecalcAll(lang, toRunes(d.Lines()))
		got := d.CommentStates()
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("step %d: state[%d] = %v, want %v (lines %q)", step, i, got[i], want[i], d.Lines())
			}
		}
	}
}

func toRunes(lines []string) [][]rune {
	out := make([][]rune, len(lines))
	for i, l := range lines {
		out[i] = []rune(l)
	}
	return out
}
