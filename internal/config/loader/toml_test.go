package loader

import (
	"errors"
	"io/fs"
	"testing"
	"time"
)

// MemFS is an in-memory file system for testing.
type MemFS struct {
	files map[string][]byte
}

func NewMemFS() *MemFS {
	return &MemFS{files: make(map[string][]byte)}
}

func (m *MemFS) AddFile(path string, content string) {
	m.files[path] = []byte(content)
}

func (m *MemFS) ReadFile(path string) ([]byte, error) {
	data, ok := m.files[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return data, nil
}

func (m *MemFS) Stat(path string) (fs.FileInfo, error) {
	if _, ok := m.files[path]; ok {
		return &memFileInfo{name: path}, nil
	}
	return nil, fs.ErrNotExist
}

type memFileInfo struct {
	name string
}

func (f *memFileInfo) Name() string       { return f.name }
func (f *memFileInfo) Size() int64        { return 0 }
func (f *memFileInfo) Mode() fs.FileMode  { return 0644 }
func (f *memFileInfo) ModTime() time.Time { return time.Now() }
func (f *memFileInfo) IsDir() bool        { return false }
func (f *memFileInfo) Sys() any           { return nil }

func TestTOMLLoader_Load(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/config.toml", `
[editor]
tabWidth = 8
lineNumbers = false

[lsp.servers.Golang]
command = "gopls"
args = ["-remote=auto"]
`)

	config, err := NewTOMLLoaderWithFS(memfs, "/config.toml").Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if v, ok := GetByPath(config, "editor.tabWidth"); !ok || v != int64(8) {
		t.Errorf("editor.tabWidth = %v (%T), want 8", v, v)
	}
	if v, ok := GetByPath(config, "editor.lineNumbers"); !ok || v != false {
		t.Errorf("editor.lineNumbers = %v, want false", v)
	}
	if v, ok := GetByPath(config, "lsp.servers.Golang.command"); !ok || v != "gopls" {
		t.Errorf("server command = %v, want gopls", v)
	}
}

func TestTOMLLoader_Missing(t *testing.T) {
	config, err := NewTOMLLoaderWithFS(NewMemFS(), "/nope.toml").Load()
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if config != nil {
		t.Errorf("expected nil config, got %v", config)
	}
}

func TestTOMLLoader_ParseError(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/bad.toml", "[editor\ntabWidth = 4\n")

	_, err := NewTOMLLoaderWithFS(memfs, "/bad.toml").Load()
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if perr.Path != "/bad.toml" {
		t.Errorf("Path = %q", perr.Path)
	}
	if perr.Line == 0 {
		t.Error("expected a line number")
	}
}

func TestTOMLLoader_Include(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/cfg/base.toml", `
[editor]
tabWidth = 2
statusBar = false
`)
	memfs.AddFile("/cfg/config.toml", `
include = "base.toml"

[editor]
tabWidth = 4
`)

	config, err := NewTOMLLoaderWithFS(memfs, "/cfg/config.toml").Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if _, ok := config["include"]; ok {
		t.Error("include key should be removed")
	}
	if v, _ := GetByPath(config, "editor.tabWidth"); v != int64(4) {
		t.Errorf("including file should win, got %v", v)
	}
	if v, _ := GetByPath(config, "editor.statusBar"); v != false {
		t.Errorf("included value lost, got %v", v)
	}
}

func TestTOMLLoader_IncludeCycle(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/a.toml", `include = ["b.toml"]`)
	memfs.AddFile("/b.toml", `include = ["a.toml"]`)

	_, err := NewTOMLLoaderWithFS(memfs, "/a.toml").Load()
	if !errors.Is(err, ErrIncludeDepth) {
		t.Errorf("expected ErrIncludeDepth, got %v", err)
	}
}

func TestTOMLLoader_IncludeBadType(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/a.toml", `include = 3`)

	if _, err := NewTOMLLoaderWithFS(memfs, "/a.toml").Load(); err == nil {
		t.Error("expected error for non-string include")
	}
}

func TestDeepMerge(t *testing.T) {
	dst := map[string]any{
		"editor": map[string]any{"tabWidth": int64(4), "statusBar": true},
		"keep":   "x",
	}
	src := map[string]any{
		"editor": map[string]any{"tabWidth": int64(8)},
		"new":    []any{"a"},
	}

	got := DeepMerge(dst, src)
	if v, _ := GetByPath(got, "editor.tabWidth"); v != int64(8) {
		t.Errorf("tabWidth = %v, want 8", v)
	}
	if v, _ := GetByPath(got, "editor.statusBar"); v != true {
		t.Errorf("statusBar lost")
	}
	if got["keep"] != "x" {
		t.Errorf("keep lost")
	}

	src["new"].([]any)[0] = "changed"
	if got["new"].([]any)[0] != "a" {
		t.Error("merged slice aliases the source")
	}

	if m := DeepMerge(nil, nil); m == nil {
		t.Error("DeepMerge(nil, nil) returned nil")
	}
}

func TestSetByPath(t *testing.T) {
	m := map[string]any{"a": "scalar"}
	SetByPath(m, "a.b.c", 1)
	if v, ok := GetByPath(m, "a.b.c"); !ok || v != 1 {
		t.Errorf("a.b.c = %v, %v", v, ok)
	}
	if _, ok := GetByPath(m, "a.x"); ok {
		t.Error("unexpected value at a.x")
	}
}
