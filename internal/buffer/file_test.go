package buffer

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", []string{""}},
		{"single no newline", "abc", []string{"abc"}},
		{"trailing newline", "abc\n", []string{"abc"}},
		{"blank last line", "abc\n\n", []string{"abc", ""}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitLines(tt.text)
			if len(got) != len(tt.want) {
				t.Fatalf("SplitLines(%q) = %q, want %q", tt.text, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("SplitLines(%q)[%d] = %q, want %q", tt.text, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSplitLinesWrapsLongLines(t *testing.T) {
	long := strings.Repeat("x", MaxLineLen*2+5)
	got := SplitLines(long + "\nend\n")
	if len(got) != 4 {
		t.Fatalf("expected 4 lines, got %d", len(got))
	}
	if len(got[0]) != MaxLineLen || len(got[1]) != MaxLineLen || len(got[2]) != 5 {
		t.Errorf("unexpected chunk sizes %d %d %d", len(got[0]), len(got[1]), len(got[2]))
	}
	if got[3] != "end" {
		t.Errorf("expected end, got %q", got[3])
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "round.txt")
	original := "line one\n\tindented\n\nünïcode\n"
	if err := os.WriteFile(path, []byte(original), 0o600); err != nil {
		t.Fatal(err)
	}

	lines, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if err := Save(lines, path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != original {
		t.Errorf("expected %q after round trip, got %q", original, data)
	}

	again, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if strings.Join(again, "|") != strings.Join(lines, "|") {
		t.Errorf("expected %q, got %q", lines, again)
	}

	info, _ := os.Stat(path)
	if info.Mode().Perm() != 0o600 {
		t.Errorf("expected mode 0600 to be kept, got %v", info.Mode().Perm())
	}
}

func TestRoundTripWithoutTrailingNewline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonl.txt")
	os.WriteFile(path, []byte("a\nb"), 0o644)

	lines, _ := Load(path)
	Save(lines, path)
	data, _ := os.ReadFile(path)
	if string(data) != "a\nb\n" {
		t.Errorf("expected normalized trailing newline, got %q", data)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing"))
	var fe *FileError
	if !errors.As(err, &fe) {
		t.Fatalf("expected *FileError, got %T", err)
	}
	if fe.Op != "load" {
		t.Errorf("expected op load, got %s", fe.Op)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Error("expected error to wrap os.ErrNotExist")
	}
}

func TestDocumentSave(t *testing.T) {
	d := New()
	if err := d.Save(); !errors.Is(err, ErrNoPath) {
		t.Errorf("expected ErrNoPath, got %v", err)
	}

	d.InsertText("hello")
	path := filepath.Join(t.TempDir(), "doc.txt")
	if err := d.SaveAs(path); err != nil {
		t.Fatalf("SaveAs() error = %v", err)
	}
	if d.Dirty() || d.Path() != path || d.Name() != "doc.txt" {
		t.Errorf("expected clean document at %s", path)
	}

	bad := filepath.Join(t.TempDir(), "no", "such", "dir", "x")
	d.InsertChar('!')
	if err := d.SaveAs(bad); err == nil {
		t.Fatal("expected SaveAs into a missing directory to fail")
	}
	if d.Path() != path || !d.Dirty() {
		t.Error("expected failed SaveAs to leave path and dirty flag unchanged")
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if reopened.Line(0) != "hello" {
		t.Errorf("expected hello, got %q", reopened.Line(0))
	}
}

func TestReload(t *testing.T) {
	d := FromLines([]string{"a", "b", "c"})
	d.SetCursor(2, 1)
	d.InsertChar('x')
	d.Reload([]string{"new"})
	if d.Dirty() {
		t.Error("expected reload to clear dirty flag")
	}
	if d.Cursor() != (Position{Row: 0, Col: 1}) {
		t.Errorf("expected clamped cursor (0,1), got %+v", d.Cursor())
	}
	if !d.Equal([]string{"new"}) {
		t.Error("expected content to equal reloaded lines")
	}
}
