package renderer

import (
	"github.com/dshills/tasci/internal/renderer/backend"
	"github.com/dshills/tasci/internal/syntax"
)

// Theme holds the styles for every screen element.
type Theme struct {
	Text    backend.Style
	Keyword backend.Style
	Comment backend.Style
	String  backend.Style
	Number  backend.Style

	LineNumber backend.Style
	TabBar     backend.Style
	TabActive  backend.Style
	StatusBar  backend.Style
	Prompt     backend.Style

	Popup         backend.Style
	PopupSelected backend.Style
}

// DefaultTheme returns the built-in dark theme.
func DefaultTheme() Theme {
	fg := func(c backend.Color) backend.Style {
		return backend.Style{Fg: c, Bg: backend.ColorDefault}
	}
	bar := func(fg, bg backend.Color) backend.Style {
		return backend.Style{Fg: fg, Bg: bg}
	}
	return Theme{
		Text:    backend.StyleDefault,
		Keyword: backend.Style{Fg: backend.ColorCyan, Bg: backend.ColorDefault, Attr: backend.AttrBold},
		Comment: backend.Style{Fg: backend.ColorGray, Bg: backend.ColorDefault, Attr: backend.AttrItalic},
		String:  fg(backend.ColorGreen),
		Number:  fg(backend.ColorMagenta),

		LineNumber: fg(backend.ColorGray),
		TabBar:     bar(backend.ColorBlack, backend.ColorWhite),
		TabActive:  backend.Style{Fg: backend.ColorWhite, Bg: backend.ColorBlue, Attr: backend.AttrBold},
		StatusBar:  bar(backend.ColorBlack, backend.ColorCyan),
		Prompt:     bar(backend.ColorBlack, backend.ColorYellow),

		Popup:         bar(backend.ColorBlack, backend.ColorWhite),
		PopupSelected: backend.Style{Fg: backend.ColorWhite, Bg: backend.ColorBlue, Attr: backend.AttrBold},
	}
}

// ForKind returns the style of a highlighted span.
func (t Theme) ForKind(k syntax.Kind) backend.Style {
	switch k {
	case syntax.KindKeyword:
		return t.Keyword
	case syntax.KindComment:
		return t.Comment
	case syntax.KindString:
		return t.String
	case syntax.KindNumber:
		return t.Number
	default:
		return t.Text
	}
}
