package lsp

import (
	"bytes"
	"strconv"
	"strings"
)

const (
	// maxHeaderLen bounds the header block. Longer headers are treated as
	// garbage and dropped.
	maxHeaderLen = 4096

	// MaxMessageLen bounds a single payload.
	MaxMessageLen = 64 << 20
)

var headerSep = []byte("\r\n\r\n")

// Encode frames payload with a Content-Length header.
func Encode(payload []byte) []byte {
	header := "Content-Length: " + strconv.Itoa(len(payload)) + "\r\n\r\n"
	out := make([]byte, 0, len(header)+len(payload))
	out = append(out, header...)
	return append(out, payload...)
}

// Decoder reassembles Content-Length framed messages from arbitrary chunks.
// A malformed or oversized header drops everything buffered so far.
type Decoder struct {
	buf    []byte
	resets int
}

// Feed appends raw bytes read from the server.
func (d *Decoder) Feed(p []byte) {
	d.buf = append(d.buf, p...)
}

// Buffered returns the number of bytes waiting for a complete message.
func (d *Decoder) Buffered() int { return len(d.buf) }

// Resets returns how many times the buffer was dropped.
func (d *Decoder) Resets() int { return d.resets }

// Reset drops buffered bytes.
func (d *Decoder) Reset() {
	d.buf = d.buf[:0]
}

// Next returns the next complete payload. It returns false when more bytes
// are needed.
func (d *Decoder) Next() ([]byte, bool) {
	idx := bytes.Index(d.buf, headerSep)
	if idx < 0 {
		if len(d.buf) > maxHeaderLen {
			d.drop()
		}
		return nil, false
	}
	if idx > maxHeaderLen {
		d.drop()
		return nil, false
	}

	length, ok := parseHeader(d.buf[:idx])
	if !ok || length > MaxMessageLen {
		d.drop()
		return nil, false
	}

	start := idx + len(headerSep)
	end := start + length
	if len(d.buf) < end {
		return nil, false
	}

	msg := make([]byte, length)
	copy(msg, d.buf[start:end])
	n := copy(d.buf, d.buf[end:])
	d.buf = d.buf[:n]
	return msg, true
}

func (d *Decoder) drop() {
	d.buf = d.buf[:0]
	d.resets++
}

// parseHeader returns the Content-Length of a header block. Every line must
// be a "Name: value" pair and Content-Length must be present.
func parseHeader(block []byte) (int, bool) {
	length := -1
	for _, line := range strings.Split(string(block), "\r\n") {
		name, value, ok := strings.Cut(line, ":")
		if !ok {
			return 0, false
		}
		if !strings.EqualFold(strings.TrimSpace(name), "Content-Length") {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || n < 0 {
			return 0, false
		}
		length = n
	}
	return length, length >= 0
}
