package renderer

import (
	"strconv"

	"github.com/dshills/tasci/internal/renderer/backend"
	"github.com/dshills/tasci/internal/tabs"
)

// minGutterDigits keeps the text column stable for short files.
const minGutterDigits = 3

// layout is the geometry of one frame.
type layout struct {
	width, height int

	textTop  int
	textRows int
	gutter   int
	textLeft int
	textCols int

	// bottom is the status or prompt row, -1 when neither is shown.
	bottom int
}

func (r *Renderer) layout(lineCount int, prompt bool) layout {
	w, h := r.be.Size()
	l := layout{width: w, height: h, textTop: 1, bottom: -1}
	if prompt || r.opts.ShowStatusBar {
		l.bottom = h - 1
	}
	l.textRows = h - 1
	if l.bottom >= 0 {
		l.textRows--
	}
	if l.textRows < 0 {
		l.textRows = 0
	}
	if r.opts.ShowLineNumbers {
		l.gutter = GutterWidth(lineCount)
		if l.gutter >= w {
			l.gutter = 0
		}
	}
	l.textLeft = l.gutter
	l.textCols = w - l.gutter
	if l.textCols < 0 {
		l.textCols = 0
	}
	return l
}

// GutterWidth returns the width of the line-number column for a document
// of n lines, including the separating space.
func GutterWidth(n int) int {
	digits := len(strconv.Itoa(n))
	if digits < minGutterDigits {
		digits = minGutterDigits
	}
	return digits + 1
}

// VisualCol returns the screen column of rune offset col within line, with
// tabs expanded to multiples of tabWidth.
func VisualCol(line []rune, col, tabWidth int) int {
	v := 0
	for i := 0; i < col && i < len(line); i++ {
		v += cellWidth(line[i], v, tabWidth)
	}
	return v
}

func cellWidth(r rune, vcol, tabWidth int) int {
	if r == '\t' {
		if tabWidth < 1 {
			tabWidth = 1
		}
		return tabWidth - vcol%tabWidth
	}
	if w := backend.RuneWidth(r); w > 0 {
		return w
	}
	return 1
}

// Scroll moves v the minimum distance needed to show the cell at
// (row, vcol) in a text area of rows by cols cells.
func Scroll(v *tabs.View, row, vcol, rows, cols int) {
	if rows > 0 {
		if row < v.TopRow {
			v.TopRow = row
		} else if row >= v.TopRow+rows {
			v.TopRow = row - rows + 1
		}
	}
	if cols > 0 {
		if vcol < v.LeftCol {
			v.LeftCol = vcol
		} else if vcol >= v.LeftCol+cols {
			v.LeftCol = vcol - cols + 1
		}
	}
	if v.TopRow < 0 {
		v.TopRow = 0
	}
	if v.LeftCol < 0 {
		v.LeftCol = 0
	}
}
