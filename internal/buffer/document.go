// Package buffer holds the text of one open document.
//
// A Document is a sequence of lines, each capped at MaxLineLen runes, with a
// cursor, a dirty flag and a parallel vector recording whether each line
// ends inside an unterminated block comment. Every mutation keeps that
// vector current by rescanning incrementally with the syntax package.
//
// Mutations that would break a capacity limit are refused silently: the
// method returns false and the document is left unchanged.
package buffer

import (
	"path/filepath"
	"strings"

	"github.com/dshills/tasci/internal/syntax"
)

const (
	// MaxLineLen is the maximum number of runes in one line.
	MaxLineLen = 1023

	// MaxLines is the maximum number of lines in one document.
	MaxLines = 1 << 20

	// UntitledName is displayed for documents without a path.
	UntitledName = "Untitled"
)

// Position is a cursor location. Col is a rune index into the line.
type Position struct {
	Row int
	Col int
}

// Document is a single editable text document.
// Document is not safe for concurrent use.
type Document struct {
	lines    [][]rune
	comments []bool
	cursor   Position
	dirty    bool
	path     string
	lang     *syntax.Language
}

// New creates an empty document with one empty line.
func New() *Document {
	return &Document{
		lines:    [][]rune{{}},
		comments: []bool{false},
	}
}

// FromLines creates a clean document holding lines. Overlong lines are
// truncated to MaxLineLen.
func FromLines(lines []string) *Document {
	d := New()
	d.setLines(lines)
	return d
}

// Open loads path into a new document.
func Open(path string) (*Document, error) {
	lines, err := Load(path)
	if err != nil {
		return nil, err
	}
	d := FromLines(lines)
	d.path = path
	return d, nil
}

func (d *Document) setLines(lines []string) {
	if len(lines) == 0 {
		lines = []string{""}
	}
	if len(lines) > MaxLines {
		lines = lines[:MaxLines]
	}
	d.lines = make([][]rune, len(lines))
	for i, l := range lines {
		r := []rune(l)
		if len(r) > MaxLineLen {
			r = r[:MaxLineLen]
		}
		d.lines[i] = r
	}
	d.comments = syntax.RecalcAll(d.lang, d.lines)
}

// Path returns the file path, or "" for an unsaved document.
func (d *Document) Path() string { return d.path }

// SetPath changes the file path.
func (d *Document) SetPath(path string) { d.path = path }

// Name returns the base name of the path, or UntitledName.
func (d *Document) Name() string {
	if d.path == "" {
		return UntitledName
	}
	return filepath.Base(d.path)
}

// Dirty reports whether the document has unsaved changes.
func (d *Document) Dirty() bool { return d.dirty }

// MarkClean clears the dirty flag.
func (d *Document) MarkClean() { d.dirty = false }

// Language returns the language used for comment tracking, or nil.
func (d *Document) Language() *syntax.Language { return d.lang }

// SetLanguage changes the language and recomputes all comment state.
func (d *Document) SetLanguage(lang *syntax.Language) {
	d.lang = lang
	d.comments = syntax.RecalcAll(d.lang, d.lines)
}

// Recalc recomputes all comment state from scratch.
func (d *Document) Recalc() {
	d.comments = syntax.RecalcAll(d.lang, d.lines)
}

// LineCount returns the number of lines. It is always at least one.
func (d *Document) LineCount() int { return len(d.lines) }

// Line returns line i as a string.
func (d *Document) Line(i int) string {
	if i < 0 || i >= len(d.lines) {
		return ""
	}
	return string(d.lines[i])
}

// LineRunes returns line i. The slice must not be modified.
func (d *Document) LineRunes(i int) []rune {
	if i < 0 || i >= len(d.lines) {
		return nil
	}
	return d.lines[i]
}

// Lines returns a copy of all lines.
func (d *Document) Lines() []string {
	out := make([]string, len(d.lines))
	for i, l := range d.lines {
		out[i] = string(l)
	}
	return out
}

// Head returns up to n leading lines, used for content based language
// detection.
func (d *Document) Head(n int) []string {
	if n > len(d.lines) {
		n = len(d.lines)
	}
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = string(d.lines[i])
	}
	return out
}

// Text returns the document as it would be saved: each line followed by a
// newline.
func (d *Document) Text() string {
	var sb strings.Builder
	for _, l := range d.lines {
		sb.WriteString(string(l))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// InComment reports whether line i ends inside a block comment.
func (d *Document) InComment(i int) bool {
	if i < 0 || i >= len(d.comments) {
		return false
	}
	return d.comments[i]
}

// CommentStates returns a copy of the per-line comment state.
func (d *Document) CommentStates() []bool {
	out := make([]bool, len(d.comments))
	copy(out, d.comments)
	return out
}

// Cursor returns the cursor position.
func (d *Document) Cursor() Position { return d.cursor }

// SetCursor moves the cursor, clamping it into the document.
func (d *Document) SetCursor(row, col int) {
	if row < 0 {
		row = 0
	}
	if row >= len(d.lines) {
		row = len(d.lines) - 1
	}
	if col < 0 {
		col = 0
	}
	if col > len(d.lines[row]) {
		col = len(d.lines[row])
	}
	d.cursor = Position{Row: row, Col: col}
}

// Save writes the document to its path and clears the dirty flag.
func (d *Document) Save() error {
	if d.path == "" {
		return ErrNoPath
	}
	if err := Save(d.Lines(), d.path); err != nil {
		return err
	}
	d.dirty = false
	return nil
}

// SaveAs writes the document to path and adopts it as the document path.
// The path is unchanged if the write fails.
func (d *Document) SaveAs(path string) error {
	if err := Save(d.Lines(), path); err != nil {
		return err
	}
	d.path = path
	d.dirty = false
	return nil
}

// Reload replaces the content with lines, clamps the cursor and clears the
// dirty flag.
func (d *Document) Reload(lines []string) {
	d.setLines(lines)
	d.dirty = false
	d.SetCursor(d.cursor.Row, d.cursor.Col)
}

// Equal reports whether the document content equals lines.
func (d *Document) Equal(lines []string) bool {
	if len(lines) != len(d.lines) {
		return false
	}
	for i, l := range lines {
		if l != string(d.lines[i]) {
			return false
		}
	}
	return true
}
