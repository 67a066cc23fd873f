// Package backend abstracts the terminal the editor draws on.
package backend

import "github.com/mattn/go-runewidth"

// Color is a terminal palette index. ColorDefault uses the terminal's own
// color.
type Color int16

// Palette colors used by the editor.
const (
	ColorDefault Color = -1
	ColorBlack   Color = 0
	ColorRed     Color = 1
	ColorGreen   Color = 2
	ColorYellow  Color = 3
	ColorBlue    Color = 4
	ColorMagenta Color = 5
	ColorCyan    Color = 6
	ColorWhite   Color = 7
	ColorGray    Color = 8
)

// Attr is a set of text attributes.
type Attr uint8

const (
	AttrNone Attr = 0
	AttrBold Attr = 1 << iota
	AttrDim
	AttrItalic
	AttrUnderline
	AttrReverse
)

// Has reports whether a contains attr.
func (a Attr) Has(attr Attr) bool { return a&attr != 0 }

// Style is a cell's colors and attributes.
type Style struct {
	Fg   Color
	Bg   Color
	Attr Attr
}

// StyleDefault uses the terminal colors with no attributes.
var StyleDefault = Style{Fg: ColorDefault, Bg: ColorDefault}

// Cell is one screen position.
type Cell struct {
	Rune  rune
	Style Style
}

// RuneWidth returns the number of columns r occupies.
func RuneWidth(r rune) int {
	if r == '\t' {
		return 1
	}
	return runewidth.RuneWidth(r)
}

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventResize
	EventPaste
	EventInterrupt
)

// Event is a terminal event.
type Event struct {
	Type EventType

	Key  Key
	Rune rune
	Mod  ModMask

	Width, Height int

	// PasteStart marks the beginning of a bracketed paste.
	PasteStart bool
}

// Key is a keyboard key.
type Key int

const (
	KeyNone Key = iota
	KeyRune
	KeyEscape
	KeyEnter
	KeyTab
	KeyBacktab
	KeyBackspace
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyCtrlSpace
	KeyCtrlA
	KeyCtrlB
	KeyCtrlC
	KeyCtrlD
	KeyCtrlE
	KeyCtrlF
	KeyCtrlG
	KeyCtrlK
	KeyCtrlL
	KeyCtrlN
	KeyCtrlO
	KeyCtrlP
	KeyCtrlQ
	KeyCtrlR
	KeyCtrlS
	KeyCtrlT
	KeyCtrlU
	KeyCtrlV
	KeyCtrlW
	KeyCtrlX
	KeyCtrlY
	KeyCtrlZ
)

// ModMask is a set of modifier keys.
type ModMask int

const (
	ModNone  ModMask = 0
	ModShift ModMask = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

// Has reports whether the mask contains mod.
func (m ModMask) Has(mod ModMask) bool { return m&mod != 0 }

// Backend is a drawing surface with an event source.
type Backend interface {
	Init() error
	Shutdown()
	Size() (width, height int)

	// SetCell ignores positions outside the screen.
	SetCell(x, y int, c Cell)
	Clear()
	Show()
	ShowCursor(x, y int)
	HideCursor()
	Beep()

	// PollEvent blocks for the next event. It returns EventNone after
	// Shutdown.
	PollEvent() Event
	// PostEvent queues a synthetic event; it never blocks.
	PostEvent(ev Event)
}

// NullBackend is an in-memory Backend for tests.
type NullBackend struct {
	width, height int
	cells         [][]Cell
	cursorX       int
	cursorY       int
	cursorVisible bool
	events        chan Event
	shown         int
}

// NewNullBackend creates a null backend with the given dimensions.
func NewNullBackend(width, height int) *NullBackend {
	b := &NullBackend{events: make(chan Event, 256)}
	b.Resize(width, height)
	return b
}

func (b *NullBackend) Init() error        { return nil }
func (b *NullBackend) Shutdown()          {}
func (b *NullBackend) Size() (int, int)   { return b.width, b.height }
func (b *NullBackend) Show()              { b.shown++ }
func (b *NullBackend) HideCursor()        { b.cursorVisible = false }
func (b *NullBackend) Beep()              {}
func (b *NullBackend) PollEvent() Event   { return <-b.events }
func (b *NullBackend) Shows() int         { return b.shown }
func (b *NullBackend) Cell(x, y int) Cell { return b.cells[y][x] }

func (b *NullBackend) SetCell(x, y int, c Cell) {
	if x >= 0 && x < b.width && y >= 0 && y < b.height {
		b.cells[y][x] = c
	}
}

func (b *NullBackend) Clear() {
	for y := range b.cells {
		for x := range b.cells[y] {
			b.cells[y][x] = Cell{Rune: ' ', Style: StyleDefault}
		}
	}
}

func (b *NullBackend) ShowCursor(x, y int) {
	b.cursorX, b.cursorY, b.cursorVisible = x, y, true
}

func (b *NullBackend) PostEvent(ev Event) {
	select {
	case b.events <- ev:
	default:
	}
}

// CursorPosition returns the cursor position and visibility.
func (b *NullBackend) CursorPosition() (x, y int, visible bool) {
	return b.cursorX, b.cursorY, b.cursorVisible
}

// Row returns screen row y as text with trailing blanks removed.
func (b *NullBackend) Row(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	rs := make([]rune, 0, b.width)
	for _, c := range b.cells[y] {
		if c.Rune == 0 {
			continue
		}
		rs = append(rs, c.Rune)
	}
	end := len(rs)
	for end > 0 && rs[end-1] == ' ' {
		end--
	}
	return string(rs[:end])
}

// Resize changes the screen size and clears it.
func (b *NullBackend) Resize(width, height int) {
	b.width, b.height = width, height
	b.cells = make([][]Cell, height)
	for i := range b.cells {
		b.cells[i] = make([]Cell, width)
	}
	b.Clear()
}
