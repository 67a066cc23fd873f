package buffer

import "strings"

// MoveLeft moves the cursor one rune left, wrapping to the end of the
// previous line.
func (d *Document) MoveLeft() {
	if d.cursor.Col > 0 {
		d.cursor.Col--
		return
	}
	if d.cursor.Row > 0 {
		d.cursor.Row--
		d.cursor.Col = len(d.lines[d.cursor.Row])
	}
}

// MoveRight moves the cursor one rune right, wrapping to the start of the
// next line.
func (d *Document) MoveRight() {
	if d.cursor.Col < len(d.lines[d.cursor.Row]) {
		d.cursor.Col++
		return
	}
	if d.cursor.Row < len(d.lines)-1 {
		d.cursor.Row++
		d.cursor.Col = 0
	}
}

// MoveUp moves the cursor n lines up, clamping the column.
func (d *Document) MoveUp(n int) {
	d.SetCursor(d.cursor.Row-n, d.cursor.Col)
}

// MoveDown moves the cursor n lines down, clamping the column.
func (d *Document) MoveDown(n int) {
	d.SetCursor(d.cursor.Row+n, d.cursor.Col)
}

// MoveHome moves the cursor to the start of the line.
func (d *Document) MoveHome() { d.cursor.Col = 0 }

// MoveEnd moves the cursor to the end of the line.
func (d *Document) MoveEnd() { d.cursor.Col = len(d.lines[d.cursor.Row]) }

// MoveTop moves the cursor to the start of the document.
func (d *Document) MoveTop() { d.cursor = Position{} }

// GotoLine moves the cursor to the start of 1-based line n, clamped into
// the document.
func (d *Document) GotoLine(n int) {
	d.SetCursor(n-1, 0)
}

// Find moves the cursor to the next occurrence of query after the cursor,
// wrapping around to the top. The match under the cursor is found last.
func (d *Document) Find(query string) (Position, error) {
	if query == "" {
		return d.cursor, ErrEmptyQuery
	}
	needle := []rune(query)
	n := len(d.lines)
	start := d.cursor

	// Rest of the cursor line after the cursor, then following lines, then
	// the wrapped part ending with the cursor line prefix.
	if col := indexRunes(d.lines[start.Row], needle, start.Col+1); col >= 0 {
		d.cursor = Position{Row: start.Row, Col: col}
		return d.cursor, nil
	}
	for k := 1; k <= n; k++ {
		row := (start.Row + k) % n
		if col := indexRunes(d.lines[row], needle, 0); col >= 0 {
			d.cursor = Position{Row: row, Col: col}
			return d.cursor, nil
		}
	}
	return d.cursor, ErrNotFound
}

// ReplaceAll replaces every occurrence of find with repl. Lines whose
// result would exceed MaxLineLen are left unchanged. It returns the number
// of replacements made.
func (d *Document) ReplaceAll(find, repl string) (int, error) {
	if find == "" {
		return 0, ErrEmptyQuery
	}
	count := 0
	for i, line := range d.lines {
		s := string(line)
		n := strings.Count(s, find)
		if n == 0 {
			continue
		}
		replaced := []rune(strings.ReplaceAll(s, find, repl))
		if len(replaced) > MaxLineLen {
			continue
		}
		d.lines[i] = replaced
		count += n
	}
	if count > 0 {
		d.dirty = true
		d.Recalc()
		d.SetCursor(d.cursor.Row, d.cursor.Col)
	}
	return count, nil
}

func indexRunes(line, needle []rune, from int) int {
	for i := from; i+len(needle) <= len(line); i++ {
		if hasPrefix(line[i:], needle) {
			return i
		}
	}
	return -1
}

func hasPrefix(s, prefix []rune) bool {
	if len(prefix) > len(s) {
		return false
	}
	for i, r := range prefix {
		if s[i] != r {
			return false
		}
	}
	return true
}
