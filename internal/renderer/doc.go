// Package renderer paints the editor screen.
//
// A screen is laid out top to bottom as:
//
//	┌─────────────────────────────────────────┐
//	│ tab bar                                 │
//	├─────┬───────────────────────────────────┤
//	│ 1   │ text area (syntax colored,        │
//	│ 2   │ horizontally scrolled)            │
//	├─────┴───────────────────────────────────┤
//	│ status bar, or the input prompt         │
//	└─────────────────────────────────────────┘
//
// The completion popup is drawn over the text area next to the cursor.
// The renderer holds no document state: each Draw call receives a Frame
// describing everything to show and adjusts the frame's scroll offsets so
// the cursor stays visible.
//
// Usage:
//
//	term, _ := backend.NewTerminal()
//	r := renderer.New(term, renderer.DefaultOptions())
//	r.Draw(&renderer.Frame{Doc: doc, View: &tab.View})
package renderer
