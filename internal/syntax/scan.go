package syntax

// ScanLine runs the comment automaton over one line and returns whether the
// line ends inside an unterminated block comment. inComment is the state
// carried over from the previous line.
//
// Outside a comment a string delimiter skips to its matching unescaped
// delimiter, a block start enters a comment and a line comment ends the
// scan. Block starts are tested before line comments so that tokens such as
// "--[[" win over "--". Strings never span lines.
func ScanLine(lang *Language, line []rune, inComment bool) bool {
	if lang == nil {
		return false
	}
	lineTok, startTok, endTok := lang.tokens()
	if len(startTok) == 0 {
		return false
	}

	i := 0
	for i < len(line) {
		if inComment {
			if hasTokenAt(line, i, endTok) {
				inComment = false
				i += len(endTok)
				continue
			}
			i++
			continue
		}

		if lang.isStringDelim(line[i]) {
			i = skipString(line, i)
			continue
		}
		if hasTokenAt(line, i, startTok) {
			inComment = true
			i += len(startTok)
			continue
		}
		if hasTokenAt(line, i, lineTok) {
			return false
		}
		i++
	}
	return inComment
}

// RecalcAll computes the carry-over state of every line from scratch.
func RecalcAll(lang *Language, lines [][]rune) []bool {
	state := make([]bool, len(lines))
	carry := false
	for i, line := range lines {
		carry = ScanLine(lang, line, carry)
		state[i] = carry
	}
	return state
}

// RecalcFrom rescans lines starting at start, writing each new carry-over
// state into state. The scan is seeded with state[start-1], or false for
// the first line. It stops once at least minLines lines have been rescanned
// and the newly computed state equals the one already stored, since no
// later line can change. It returns the number of lines rescanned.
//
// state must have the same length as lines. Callers pass minLines = 1 for
// edits within a line and minLines >= 2 when lines were inserted or removed.
func RecalcFrom(lang *Language, lines [][]rune, state []bool, start, minLines int) int {
	if len(state) != len(lines) {
		panic("syntax: comment state length does not match line count")
	}
	if start < 0 {
		start = 0
	}
	if start >= len(lines) {
		return 0
	}

	carry := false
	if start > 0 {
		carry = state[start-1]
	}

	processed := 0
	for row := start; row < len(lines); row++ {
		next := ScanLine(lang, lines[row], carry)
		prev := state[row]
		state[row] = next
		carry = next
		processed++
		if processed >= minLines && next == prev {
			break
		}
	}
	return processed
}

func hasTokenAt(line []rune, i int, tok []rune) bool {
	if len(tok) == 0 || i+len(tok) > len(line) {
		return false
	}
	for j, r := range tok {
		if line[i+j] != r {
			return false
		}
	}
	return true
}

// skipString returns the index just past the string literal opened at i.
// A backslash escapes the following character. An unterminated string runs
// to end of line.
func skipString(line []rune, i int) int {
	delim := line[i]
	j := i + 1
	for j < len(line) {
		switch line[j] {
		case '\\':
			j += 2
			continue
		case delim:
			return j + 1
		}
		j++
	}
	return len(line)
}
