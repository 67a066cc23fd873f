package renderer

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"

	"github.com/dshills/tasci/internal/buffer"
	"github.com/dshills/tasci/internal/renderer/backend"
	"github.com/dshills/tasci/internal/syntax"
	"github.com/dshills/tasci/internal/tabs"
)

// Options configures the renderer.
type Options struct {
	ShowLineNumbers bool
	ShowStatusBar   bool
	TabWidth        int
	Theme           Theme
}

// DefaultOptions returns sensible default options.
func DefaultOptions() Options {
	return Options{
		ShowLineNumbers: true,
		ShowStatusBar:   true,
		TabWidth:        4,
		Theme:           DefaultTheme(),
	}
}

// TabLabel is one entry of the tab bar.
type TabLabel struct {
	Name  string
	Dirty bool
}

// Status is the right-hand side of the status bar plus a transient message.
type Status struct {
	Language string
	Server   string
	Message  string
}

// Popup is the completion list.
type Popup struct {
	Items    []string
	Selected int
}

// Prompt is a one-line input shown in place of the status bar.
type Prompt struct {
	Label  string
	Input  []rune
	Cursor int
}

// Frame is everything shown on one screen.
type Frame struct {
	Tabs   []TabLabel
	Active int

	Doc *buffer.Document
	// View is adjusted by Draw to keep the cursor visible.
	View *tabs.View

	Status Status
	Popup  *Popup
	Prompt *Prompt

	// CursorOn is the blink phase of the text cursor.
	CursorOn bool
}

// Renderer paints frames onto a backend.
type Renderer struct {
	be   backend.Backend
	opts Options
}

// New creates a renderer drawing on be.
func New(be backend.Backend, opts Options) *Renderer {
	if opts.TabWidth < 1 {
		opts.TabWidth = 4
	}
	return &Renderer{be: be, opts: opts}
}

// Options returns the current options.
func (r *Renderer) Options() Options { return r.opts }

// SetShowLineNumbers toggles the line-number gutter.
func (r *Renderer) SetShowLineNumbers(on bool) { r.opts.ShowLineNumbers = on }

// SetShowStatusBar toggles the status bar.
func (r *Renderer) SetShowStatusBar(on bool) { r.opts.ShowStatusBar = on }

// PageSize returns the number of text rows on screen.
func (r *Renderer) PageSize() int {
	l := r.layout(1, false)
	if l.textRows < 1 {
		return 1
	}
	return l.textRows
}

// Draw paints f and shows it.
func (r *Renderer) Draw(f *Frame) {
	lines := 1
	if f.Doc != nil {
		lines = f.Doc.LineCount()
	}
	l := r.layout(lines, f.Prompt != nil)

	r.be.Clear()
	r.drawTabs(f, l)

	cx, cy, cursorVisible := -1, -1, false
	if f.Doc != nil {
		if f.View == nil {
			f.View = &tabs.View{}
		}
		cx, cy = r.drawText(f, l)
		cursorVisible = cx >= l.textLeft && cx < l.textLeft+l.textCols &&
			cy >= l.textTop && cy < l.textTop+l.textRows
	}
	if f.Popup != nil && len(f.Popup.Items) > 0 && cursorVisible {
		r.drawPopup(f.Popup, cx, cy, l)
	}

	switch {
	case f.Prompt != nil && l.bottom >= 0:
		px := r.drawPrompt(f.Prompt, l)
		r.be.ShowCursor(px, l.bottom)
	default:
		if l.bottom >= 0 {
			r.drawStatus(f, l)
		}
		if cursorVisible && f.CursorOn {
			r.be.ShowCursor(cx, cy)
		} else {
			r.be.HideCursor()
		}
	}
	r.be.Show()
}

func (r *Renderer) drawTabs(f *Frame, l layout) {
	if l.height < 1 {
		return
	}
	th := r.opts.Theme
	x := 0
	for i, t := range f.Tabs {
		label := " " + t.Name
		if t.Dirty {
			label += "*"
		}
		label += " "
		st := th.TabBar
		if i == f.Active {
			st = th.TabActive
		}
		x = r.put(x, 0, l.width, label, st)
	}
	r.fill(x, 0, l.width, th.TabBar)
}

// drawText paints the visible lines and returns the cursor's screen cell.
func (r *Renderer) drawText(f *Frame, l layout) (int, int) {
	doc, v := f.Doc, f.View
	cur := doc.Cursor()
	vcol := VisualCol(doc.LineRunes(cur.Row), cur.Col, r.opts.TabWidth)
	Scroll(v, cur.Row, vcol, l.textRows, l.textCols)

	for y := 0; y < l.textRows; y++ {
		row := v.TopRow + y
		if row >= doc.LineCount() {
			break
		}
		sy := l.textTop + y
		if l.gutter > 0 {
			num := fmt.Sprintf("%*d ", l.gutter-1, row+1)
			r.put(0, sy, l.gutter, num, r.opts.Theme.LineNumber)
		}
		r.drawLine(doc, row, sy, v.LeftCol, l)
	}
	return l.textLeft + vcol - v.LeftCol, l.textTop + cur.Row - v.TopRow
}

func (r *Renderer) drawLine(doc *buffer.Document, row, sy, left int, l layout) {
	th := r.opts.Theme
	line := doc.LineRunes(row)
	spans := syntax.Highlight(doc.Language(), line, doc.InComment(row-1))
	maxX := l.textLeft + l.textCols

	si, v := 0, 0
	for i, ch := range line {
		for si < len(spans) && spans[si].End <= i {
			si++
		}
		st := th.Text
		if si < len(spans) && spans[si].Start <= i {
			st = th.ForKind(spans[si].Kind)
		}
		w := cellWidth(ch, v, r.opts.TabWidth)
		x := l.textLeft + v - left
		v += w
		if x >= maxX {
			break
		}
		if ch == '\t' {
			for k := 0; k < w; k++ {
				if x+k >= l.textLeft && x+k < maxX {
					r.be.SetCell(x+k, sy, backend.Cell{Rune: ' ', Style: st})
				}
			}
			continue
		}
		if x < l.textLeft || x+w > maxX {
			continue
		}
		if unicode.IsControl(ch) || backend.RuneWidth(ch) == 0 {
			ch = '?'
		}
		r.be.SetCell(x, sy, backend.Cell{Rune: ch, Style: st})
	}
}

func (r *Renderer) drawPopup(p *Popup, cx, cy int, l layout) {
	th := r.opts.Theme
	w := 0
	for _, item := range p.Items {
		w = max(w, runewidth.StringWidth(item))
	}
	w += 2
	h := len(p.Items)

	y := cy + 1
	if y+h > l.textTop+l.textRows {
		y = cy - h
	}
	if y < l.textTop {
		y = l.textTop
	}
	x := cx
	if x+w > l.width {
		x = l.width - w
	}
	if x < 0 {
		x = 0
	}
	for i, item := range p.Items {
		st := th.Popup
		if i == p.Selected {
			st = th.PopupSelected
		}
		end := r.put(x, y+i, x+w, " "+item, st)
		r.fill(end, y+i, x+w, st)
	}
}

func (r *Renderer) drawStatus(f *Frame, l layout) {
	st := r.opts.Theme.StatusBar
	y := l.bottom
	r.fill(0, y, l.width, st)

	left := " "
	var right []string
	if f.Doc != nil {
		left += f.Doc.Name()
		if f.Doc.Dirty() {
			left += " [+]"
		}
	}
	if f.Status.Message != "" {
		left += "  " + f.Status.Message
	}
	if f.Status.Language != "" {
		right = append(right, f.Status.Language)
	}
	if f.Status.Server != "" {
		right = append(right, f.Status.Server)
	}
	if f.Doc != nil {
		cur := f.Doc.Cursor()
		right = append(right, fmt.Sprintf("Ln %d, Col %d", cur.Row+1, cur.Col+1))
	}
	rs := strings.Join(right, " | ") + " "
	rx := l.width - runewidth.StringWidth(rs)
	if rx < 0 {
		rx = l.width
	}
	r.put(0, y, rx, left, st)
	r.put(rx, y, l.width, rs, st)
}

// drawPrompt paints the prompt and returns the input cursor column.
func (r *Renderer) drawPrompt(p *Prompt, l layout) int {
	st := r.opts.Theme.Prompt
	y := l.bottom
	r.fill(0, y, l.width, st)
	x := r.put(0, y, l.width, p.Label, st)
	cursor := min(max(p.Cursor, 0), len(p.Input))
	cx := x + runewidth.StringWidth(string(p.Input[:cursor]))
	r.put(x, y, l.width, string(p.Input), st)
	if cx >= l.width {
		cx = l.width - 1
	}
	return cx
}

// put draws s from column x, stopping before maxX, and returns the column
// after the last drawn rune.
func (r *Renderer) put(x, y, maxX int, s string, st backend.Style) int {
	for _, ch := range s {
		w := backend.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if x+w > maxX {
			break
		}
		r.be.SetCell(x, y, backend.Cell{Rune: ch, Style: st})
		x += w
	}
	return x
}

func (r *Renderer) fill(x, y, maxX int, st backend.Style) {
	for ; x < maxX; x++ {
		r.be.SetCell(x, y, backend.Cell{Rune: ' ', Style: st})
	}
}
