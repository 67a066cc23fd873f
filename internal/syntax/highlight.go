package syntax

import "unicode"

// Kind classifies a highlighted span.
type Kind uint8

const (
	KindPlain Kind = iota
	KindKeyword
	KindComment
	KindString
	KindNumber
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindKeyword:
		return "keyword"
	case KindComment:
		return "comment"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	default:
		return "plain"
	}
}

// Span is a highlighted run [Start, End) of rune offsets within a line.
type Span struct {
	Start int
	End   int
	Kind  Kind
}

// IsWordRune reports whether r may appear in an identifier.
func IsWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// Highlight returns the non-plain spans of line in order. inComment is the
// carry-over state of the previous line. It follows the same automaton as
// ScanLine.
func Highlight(lang *Language, line []rune, inComment bool) []Span {
	if lang == nil || len(line) == 0 {
		return nil
	}
	lineTok, startTok, endTok := lang.tokens()

	var spans []Span
	i := 0
	if inComment && len(startTok) > 0 {
		end := findToken(line, 0, endTok)
		if end < 0 {
			return []Span{{Start: 0, End: len(line), Kind: KindComment}}
		}
		spans = append(spans, Span{Start: 0, End: end + len(endTok), Kind: KindComment})
		i = end + len(endTok)
	}

	for i < len(line) {
		r := line[i]
		switch {
		case lang.isStringDelim(r):
			end := skipString(line, i)
			spans = append(spans, Span{Start: i, End: end, Kind: KindString})
			i = end
		case hasTokenAt(line, i, startTok):
			end := findToken(line, i+len(startTok), endTok)
			if end < 0 {
				return append(spans, Span{Start: i, End: len(line), Kind: KindComment})
			}
			spans = append(spans, Span{Start: i, End: end + len(endTok), Kind: KindComment})
			i = end + len(endTok)
		case hasTokenAt(line, i, lineTok):
			return append(spans, Span{Start: i, End: len(line), Kind: KindComment})
		case IsWordRune(r):
			j := i
			for j < len(line) && IsWordRune(line[j]) {
				j++
			}
			switch {
			case unicode.IsDigit(r):
				spans = append(spans, Span{Start: i, End: j, Kind: KindNumber})
			case lang.IsKeyword(string(line[i:j])):
				spans = append(spans, Span{Start: i, End: j, Kind: KindKeyword})
			}
			i = j
		default:
			i++
		}
	}
	return spans
}

func findToken(line []rune, from int, tok []rune) int {
	for i := from; i+len(tok) <= len(line); i++ {
		if hasTokenAt(line, i, tok) {
			return i
		}
	}
	return -1
}
