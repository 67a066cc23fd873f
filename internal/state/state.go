// Package state stores the session snapshot restored at startup: the last
// directory and file, the cursor, view toggles, and the open tabs.
package state

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Version is the snapshot format version written by Save.
const Version = 1

// ErrVersionMismatch is returned for snapshots written by a newer format.
var ErrVersionMismatch = errors.New("snapshot version mismatch")

// Cursor is a zero-based document position.
type Cursor struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// Snapshot is the persisted editor session.
type Snapshot struct {
	Version         int      `yaml:"version"`
	LastDir         string   `yaml:"last_dir,omitempty"`
	LastFile        string   `yaml:"last_file,omitempty"`
	LastCursor      Cursor   `yaml:"last_cursor"`
	ShowLineNumbers bool     `yaml:"show_line_numbers"`
	ShowStatusBar   bool     `yaml:"show_status_bar"`
	OpenFiles       []string `yaml:"open_files,omitempty"`
	ActiveTab       int      `yaml:"active_tab"`
}

// Default returns the snapshot used when none is stored.
func Default() *Snapshot {
	return &Snapshot{
		Version:         Version,
		ShowLineNumbers: true,
		ShowStatusBar:   true,
	}
}

// Load reads the snapshot at path. A missing file yields Default and no
// error.
func Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading snapshot %s: %w", path, err)
	}
	return Decode(data)
}

// Decode parses snapshot YAML. Keys absent from data keep their defaults.
func Decode(data []byte) (*Snapshot, error) {
	s := Default()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}
	if s.Version > Version {
		return nil, fmt.Errorf("%w: got %d, support %d", ErrVersionMismatch, s.Version, Version)
	}
	s.Version = Version
	s.normalize()
	return s, nil
}

func (s *Snapshot) normalize() {
	files := s.OpenFiles[:0]
	seen := make(map[string]bool, len(s.OpenFiles))
	for _, f := range s.OpenFiles {
		if f == "" || seen[f] {
			continue
		}
		seen[f] = true
		files = append(files, f)
	}
	s.OpenFiles = files
	if s.ActiveTab < 0 || s.ActiveTab >= len(s.OpenFiles) {
		s.ActiveTab = 0
	}
	if s.LastCursor.Row < 0 {
		s.LastCursor.Row = 0
	}
	if s.LastCursor.Col < 0 {
		s.LastCursor.Col = 0
	}
}

// Save writes the snapshot to path atomically, creating parent
// directories.
func Save(path string, s *Snapshot) error {
	out := *s
	out.Version = Version
	data, err := yaml.Marshal(&out)
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating snapshot dir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".state-*.yaml")
	if err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("writing snapshot: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}
