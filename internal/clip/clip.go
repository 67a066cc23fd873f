// Package clip holds the cut-line buffer, mirrored to the system clipboard
// when one is available.
package clip

import (
	"strings"
	"sync"

	"github.com/atotto/clipboard"
)

// Backend is a system clipboard.
type Backend interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

type systemBackend struct{}

func (systemBackend) ReadAll() (string, error)   { return clipboard.ReadAll() }
func (systemBackend) WriteAll(text string) error { return clipboard.WriteAll(text) }

// System returns the OS clipboard, or nil when the platform has none.
func System() Backend {
	if clipboard.Unsupported {
		return nil
	}
	return systemBackend{}
}

// Clipboard keeps the last copied text in process and forwards it to a
// Backend. Reads prefer the backend and fall back to the local copy.
type Clipboard struct {
	mu      sync.Mutex
	local   string
	backend Backend
	lastErr error
}

// New creates a clipboard over backend. A nil backend keeps text in
// process only.
func New(backend Backend) *Clipboard {
	return &Clipboard{backend: backend}
}

// Copy stores text. A backend failure is remembered but the local copy
// always succeeds.
func (c *Clipboard) Copy(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.local = text
	if c.backend == nil {
		return nil
	}
	c.lastErr = c.backend.WriteAll(text)
	return c.lastErr
}

// Paste returns the clipboard text with line endings normalized to \n.
func (c *Clipboard) Paste() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	text := c.local
	if c.backend != nil {
		if s, err := c.backend.ReadAll(); err == nil && s != "" {
			text = s
		} else {
			c.lastErr = err
		}
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

// Err returns the last backend error, if any.
func (c *Clipboard) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}
