package buffer

import (
	"bufio"
	"errors"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"
)

// Load reads a file and returns its lines without terminators. A trailing
// newline does not produce an extra empty line. Lines longer than
// MaxLineLen runes are wrapped into several lines. An empty file yields a
// single empty line.
func Load(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileError{Op: "load", Path: path, Err: err}
	}
	return SplitLines(string(data)), nil
}

// SplitLines splits text the way Load does.
func SplitLines(text string) []string {
	if text == "" {
		return []string{""}
	}
	text = strings.TrimSuffix(text, "\n")
	raw := strings.Split(text, "\n")

	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSuffix(line, "\r")
		if utf8.RuneCountInString(line) <= MaxLineLen {
			lines = append(lines, line)
			continue
		}
		runes := []rune(line)
		for len(runes) > MaxLineLen {
			lines = append(lines, string(runes[:MaxLineLen]))
			runes = runes[MaxLineLen:]
		}
		lines = append(lines, string(runes))
	}
	return lines
}

// Save writes lines to path, each followed by a newline. The existing file
// mode is kept.
func Save(lines []string, path string) error {
	mode := fs.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	} else if !errors.Is(err, fs.ErrNotExist) {
		return &FileError{Op: "save", Path: path, Err: err}
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return &FileError{Op: "save", Path: path, Err: err}
	}

	w := bufio.NewWriter(f)
	for _, line := range lines {
		if _, err := w.WriteString(line); err != nil {
			f.Close()
			return &FileError{Op: "save", Path: path, Err: err}
		}
		if err := w.WriteByte('\n'); err != nil {
			f.Close()
			return &FileError{Op: "save", Path: path, Err: err}
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return &FileError{Op: "save", Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &FileError{Op: "save", Path: path, Err: err}
	}
	return nil
}

// Touch creates path if it does not exist, leaving existing content alone.
func Touch(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return &FileError{Op: "create", Path: path, Err: err}
	}
	return f.Close()
}
