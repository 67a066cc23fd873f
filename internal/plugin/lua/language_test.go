package lua

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	glua "github.com/yuin/gopher-lua"

	"github.com/dshills/tasci/internal/syntax"
)

const odin = `
language {
    name = "Odin",
    extensions = { "odin" },
    line_comment = "//",
    block_comment = { "/*", "*/" },
    strings = "\"'",
    keywords = { "package", "proc", "return" },
    server = { command = "ols", args = { "--stdio" } },
}
`

func TestLoadString(t *testing.T) {
	reg := syntax.NewRegistry()
	names, err := LoadString("odin.lua", odin, reg)
	if err != nil {
		t.Fatalf("LoadString() error = %v", err)
	}
	if len(names) != 1 || names[0] != "Odin" {
		t.Fatalf("names = %v", names)
	}

	lang := reg.Detect("/src/main.odin", nil)
	if lang == nil || lang.Name != "Odin" {
		t.Fatalf("Detect() = %v", lang)
	}
	if !lang.IsKeyword("proc") || !lang.HasBlockComments() {
		t.Error("keywords or block comments not loaded")
	}
	if lang.Server == nil || lang.Server.Command != "ols" || lang.Server.LanguageID != "odin" {
		t.Errorf("Server = %+v", lang.Server)
	}
	if len(lang.Server.Args) != 1 || lang.Server.Args[0] != "--stdio" {
		t.Errorf("Args = %v", lang.Server.Args)
	}
}

func TestLoadReplacesBuiltin(t *testing.T) {
	reg := syntax.Builtin()
	_, err := LoadString("go.lua", `
language { name = "Golang", extensions = "go", keywords = { "func" }, line_comment = "//" }
`, reg)
	if err != nil {
		t.Fatalf("LoadString() error = %v", err)
	}
	lang, _ := reg.ForExtension("go")
	if lang.IsKeyword("package") || !lang.IsKeyword("func") {
		t.Error("builtin Golang definition not replaced")
	}
	if lang.HasBlockComments() {
		t.Error("replacement should have no block comments")
	}
}

func TestLoadDefinitionErrors(t *testing.T) {
	tests := []struct {
		name string
		code string
	}{
		{"no name", `language { extensions = { "x" } }`},
		{"no extensions", `language { name = "X" }`},
		{"bad block", `language { name = "X", extensions = "x", block_comment = { "/*" } }`},
		{"bad keywords", `language { name = "X", extensions = "x", keywords = { 1, 2 } }`},
		{"server without command", `language { name = "X", extensions = "x", server = {} }`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := syntax.NewRegistry()
			_, err := LoadString("bad.lua", tt.code, reg)
			var derr *DefinitionError
			if !errors.As(err, &derr) {
				t.Fatalf("expected DefinitionError, got %v", err)
			}
			if derr.File != "bad.lua" {
				t.Errorf("File = %q", derr.File)
			}
			if len(reg.Names()) != 0 {
				t.Error("failed file registered languages")
			}
		})
	}
}

func TestLoadSyntaxError(t *testing.T) {
	if _, err := LoadString("x.lua", `language {`, syntax.NewRegistry()); err == nil {
		t.Error("expected syntax error")
	}
}

func TestSandbox(t *testing.T) {
	for _, code := range []string{
		`io.open("/etc/passwd")`,
		`os.execute("true")`,
		`dofile("/tmp/x.lua")`,
		`require("os")`,
	} {
		if _, err := LoadString("evil.lua", code, syntax.NewRegistry()); err == nil {
			t.Errorf("%s: expected error", code)
		}
	}
}

func TestExecutionTimeout(t *testing.T) {
	_, err := LoadString("loop.lua", `while true do end`, syntax.NewRegistry(),
		WithExecutionTimeout(50*time.Millisecond))
	if !errors.Is(err, ErrExecutionTimeout) {
		t.Errorf("expected ErrExecutionTimeout, got %v", err)
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	write := func(name, code string) {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(code), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	write("a_odin.lua", odin)
	write("b_bad.lua", `language {}`)
	write("c_two.lua", `
language { name = "Alpha", extensions = "alpha" }
language { name = "Beta", extensions = { "beta", "bt" } }
`)
	write("notes.txt", `language { name = "Ignored", extensions = "ign" }`)

	reg := syntax.NewRegistry()
	names, errs := LoadDir(dir, reg)
	if len(errs) != 1 {
		t.Errorf("errs = %v, want one", errs)
	}
	want := []string{"Odin", "Alpha", "Beta"}
	if len(names) != len(want) {
		t.Fatalf("names = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %q, want %q", i, names[i], want[i])
		}
	}
	if _, ok := reg.Lookup("Ignored"); ok {
		t.Error("non-lua file was loaded")
	}
}

func TestLoadDirMissing(t *testing.T) {
	names, errs := LoadDir(filepath.Join(t.TempDir(), "none"), syntax.NewRegistry())
	if names != nil || errs != nil {
		t.Errorf("got %v, %v", names, errs)
	}
}

func TestStateClosed(t *testing.T) {
	s := NewState()
	if err := s.DoString(`x = 1 + 1`); err != nil {
		t.Fatalf("DoString() error = %v", err)
	}
	if v, ok := s.GetGlobal("x").(glua.LNumber); !ok || v != 2 {
		t.Errorf("x = %v", s.GetGlobal("x"))
	}
	s.Close()
	s.Close()
	if err := s.DoString(`x = 2`); !errors.Is(err, ErrStateClosed) {
		t.Errorf("DoString after Close = %v", err)
	}
	if s.GetGlobal("x") != glua.LNil {
		t.Error("GetGlobal after Close should be nil")
	}
}
