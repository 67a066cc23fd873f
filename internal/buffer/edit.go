package buffer

import (
	"strings"

	"github.com/dshills/tasci/internal/syntax"
)

// recalc rescans comment state from row. minLines is 1 for in-line edits
// and 2 when lines were inserted or removed.
func (d *Document) recalc(row, minLines int) {
	syntax.RecalcFrom(d.lang, d.lines, d.comments, row, minLines)
}

func (d *Document) touch(row, minLines int) {
	d.dirty = true
	d.recalc(row, minLines)
}

// InsertChar inserts r at the cursor and advances it. The rune is dropped
// when the line is full. A newline rune splits the line.
func (d *Document) InsertChar(r rune) bool {
	if r == '\n' {
		return d.InsertNewline()
	}
	row, col := d.cursor.Row, d.cursor.Col
	line := d.lines[row]
	if len(line) >= MaxLineLen {
		return false
	}
	line = append(line, 0)
	copy(line[col+1:], line[col:])
	line[col] = r
	d.lines[row] = line
	d.cursor.Col++
	d.touch(row, 1)
	return true
}

// InsertText inserts s at the cursor on the current line. Text past the
// remaining line capacity is dropped and newlines are ignored. It reports
// whether anything was inserted.
func (d *Document) InsertText(s string) bool {
	s = strings.NewReplacer("\r", "", "\n", "").Replace(s)
	ins := []rune(s)
	row, col := d.cursor.Row, d.cursor.Col
	line := d.lines[row]
	if room := MaxLineLen - len(line); len(ins) > room {
		ins = ins[:room]
	}
	if len(ins) == 0 {
		return false
	}
	out := make([]rune, 0, len(line)+len(ins))
	out = append(out, line[:col]...)
	out = append(out, ins...)
	out = append(out, line[col:]...)
	d.lines[row] = out
	d.cursor.Col += len(ins)
	d.touch(row, 1)
	return true
}

// DeleteChar deletes the rune before the cursor. At column 0 the line is
// joined onto the previous one unless the result would exceed MaxLineLen.
func (d *Document) DeleteChar() bool {
	row, col := d.cursor.Row, d.cursor.Col
	if col > 0 {
		line := d.lines[row]
		d.lines[row] = append(line[:col-1], line[col:]...)
		d.cursor.Col--
		d.touch(row, 1)
		return true
	}
	if row == 0 {
		return false
	}

	prev, cur := d.lines[row-1], d.lines[row]
	if len(prev)+len(cur) > MaxLineLen {
		return false
	}
	joined := make([]rune, 0, len(prev)+len(cur))
	joined = append(joined, prev...)
	joined = append(joined, cur...)
	d.lines[row-1] = joined
	d.lines = removeLine(d.lines, row)
	// The joined line inherits the old end state of row.
	d.comments = removeState(d.comments, row-1)
	d.cursor = Position{Row: row - 1, Col: len(prev)}
	d.touch(row-1, 2)
	return true
}

// DeleteForward deletes the rune under the cursor. At end of line the next
// line is joined on unless the result would exceed MaxLineLen.
func (d *Document) DeleteForward() bool {
	row, col := d.cursor.Row, d.cursor.Col
	line := d.lines[row]
	if col < len(line) {
		d.lines[row] = append(line[:col], line[col+1:]...)
		d.touch(row, 1)
		return true
	}
	if row >= len(d.lines)-1 {
		return false
	}

	next := d.lines[row+1]
	if len(line)+len(next) > MaxLineLen {
		return false
	}
	joined := make([]rune, 0, len(line)+len(next))
	joined = append(joined, line...)
	joined = append(joined, next...)
	d.lines[row] = joined
	d.lines = removeLine(d.lines, row+1)
	d.comments = removeState(d.comments, row)
	d.touch(row, 2)
	return true
}

// InsertNewline splits the current line at the cursor. The cursor moves to
// the start of the new line.
func (d *Document) InsertNewline() bool {
	if len(d.lines) >= MaxLines {
		return false
	}
	row, col := d.cursor.Row, d.cursor.Col
	line := d.lines[row]
	head := append([]rune(nil), line[:col]...)
	tail := append([]rune(nil), line[col:]...)

	d.lines[row] = head
	d.lines = insertLine(d.lines, row+1, tail)
	// The new line starts with the old end state of row, which is what the
	// following line was scanned against.
	d.comments = insertState(d.comments, row+1, d.comments[row])
	d.cursor = Position{Row: row + 1, Col: 0}
	d.touch(row, 2)
	return true
}

// DeleteLine removes row. The last remaining line is cleared instead.
func (d *Document) DeleteLine(row int) bool {
	if row < 0 || row >= len(d.lines) {
		return false
	}
	if len(d.lines) == 1 {
		d.lines[0] = d.lines[0][:0]
		d.cursor = Position{}
		d.touch(0, 1)
		return true
	}

	d.lines = removeLine(d.lines, row)
	d.comments = removeState(d.comments, row)
	cur := d.cursor
	if cur.Row > row {
		cur.Row--
	}
	d.SetCursor(cur.Row, cur.Col)
	d.touch(row, 2)
	return true
}

// CutLine removes the cursor line and returns its text.
func (d *Document) CutLine() string {
	text := string(d.lines[d.cursor.Row])
	d.DeleteLine(d.cursor.Row)
	return text
}

// ReplaceSpan replaces runes [start, end) of row with text and places the
// cursor after the inserted text. It is refused when the result would
// exceed MaxLineLen or the span is out of range.
func (d *Document) ReplaceSpan(row, start, end int, text string) bool {
	if row < 0 || row >= len(d.lines) {
		return false
	}
	line := d.lines[row]
	if start < 0 || end < start || end > len(line) {
		return false
	}
	ins := []rune(text)
	if len(line)-(end-start)+len(ins) > MaxLineLen {
		return false
	}
	out := make([]rune, 0, len(line)-(end-start)+len(ins))
	out = append(out, line[:start]...)
	out = append(out, ins...)
	out = append(out, line[end:]...)
	d.lines[row] = out
	d.cursor = Position{Row: row, Col: start + len(ins)}
	d.touch(row, 1)
	return true
}

func removeLine(lines [][]rune, i int) [][]rune {
	copy(lines[i:], lines[i+1:])
	lines[len(lines)-1] = nil
	return lines[:len(lines)-1]
}

func insertLine(lines [][]rune, i int, line []rune) [][]rune {
	lines = append(lines, nil)
	copy(lines[i+1:], lines[i:])
	lines[i] = line
	return lines
}

func removeState(state []bool, i int) []bool {
	copy(state[i:], state[i+1:])
	return state[:len(state)-1]
}

func insertState(state []bool, i int, v bool) []bool {
	state = append(state, false)
	copy(state[i+1:], state[i:])
	state[i] = v
	return state
}
