package syntax

import (
	"errors"
	"testing"
)

func TestBuiltinDetect(t *testing.T) {
	reg := Builtin()

	tests := []struct {
		path string
		head []string
		want string
	}{
		{"main.go", nil, "Golang"},
		{"/src/lib/util.hpp", nil, "C++"},
		{"script.py", nil, "Python"},
		{"/jobs/Spark_etl.py", nil, "PySpark"},
		{"job.py", []string{"# etl", "from pyspark.sql import SparkSession"}, "PySpark"},
		{"job.py", []string{"import pandas"}, "Python"},
		{"analysis.R", nil, "R"},
		{"analysis.r", nil, "R"},
		{"index.tsx", nil, "TypeScript"},
		{"Makefile", nil, ""},
		{".bashrc", nil, ""},
		{"", nil, ""},
	}

	for _, tt := range tests {
		lang := reg.Detect(tt.path, tt.head)
		got := ""
		if lang != nil {
			got = lang.Name
		}
		if got != tt.want {
			t.Errorf("Detect(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestBuiltinTable(t *testing.T) {
	reg := Builtin()
	if n := len(reg.Names()); n != 63 {
		t.Errorf("expected 63 builtin languages, got %d", n)
	}
	for _, name := range reg.Names() {
		lang, _ := reg.Lookup(name)
		if len(lang.Keywords) == 0 {
			t.Errorf("language %s has no keywords", name)
		}
		if (lang.BlockStart == "") != (lang.BlockEnd == "") {
			t.Errorf("language %s has an unpaired block comment", name)
		}
	}

	py, _ := reg.ForExtension(".py")
	if py.Name != "Python" {
		t.Errorf("expected .py to map to Python, got %s", py.Name)
	}
}

func TestIsKeyword(t *testing.T) {
	reg := Builtin()
	goLang, _ := reg.Lookup("Golang")
	sql, _ := reg.Lookup("SQL")

	if !goLang.IsKeyword("func") {
		t.Error("expected func to be a Go keyword")
	}
	if goLang.IsKeyword("FUNC") {
		t.Error("expected Go keywords to be case sensitive")
	}
	if !sql.IsKeyword("select") || !sql.IsKeyword("SELECT") {
		t.Error("expected SQL keywords to be case insensitive")
	}
	var nilLang *Language
	if nilLang.IsKeyword("func") {
		t.Error("expected nil language to have no keywords")
	}
}

func TestRegistryRegister(t *testing.T) {
	reg := NewRegistry()
	lang := &Language{Name: "Toy", Extensions: []string{".toy"}, LineComment: ";"}
	if err := reg.Register(lang); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if err := reg.Register(&Language{Name: "Toy"}); !errors.Is(err, ErrLanguageExists) {
		t.Errorf("expected ErrLanguageExists, got %v", err)
	}
	if err := reg.Register(&Language{Name: "Half", BlockStart: "{"}); !errors.Is(err, ErrInvalidLanguage) {
		t.Errorf("expected ErrInvalidLanguage, got %v", err)
	}

	got, ok := reg.ForExtension("toy")
	if !ok || got != lang {
		t.Errorf("expected toy extension to resolve to Toy")
	}

	replacement := &Language{Name: "Toy", Extensions: []string{"toy"}, LineComment: "#"}
	if err := reg.Replace(replacement); err != nil {
		t.Fatalf("Replace() error = %v", err)
	}
	if got := reg.Detect("a.toy", nil); got != replacement {
		t.Errorf("expected replaced language after Replace")
	}
	if n := len(reg.Names()); n != 1 {
		t.Errorf("expected 1 name after replace, got %d", n)
	}
}

func TestHighlight(t *testing.T) {
	goLang := mustLang(t, "Golang")

	tests := []struct {
		line      string
		inComment bool
		want      []Span
	}{
		{"func main() // hi", false, []Span{{0, 4, KindKeyword}, {12, 17, KindComment}}},
		{`x := "go" 42`, false, []Span{{5, 9, KindString}, {10, 12, KindNumber}}},
		{"still */ return", true, []Span{{0, 8, KindComment}, {9, 15, KindKeyword}}},
		{"a /* b", false, []Span{{2, 6, KindComment}}},
		{"inside", true, []Span{{0, 6, KindComment}}},
		{"", false, nil},
	}

	for _, tt := range tests {
		got := Highlight(goLang, []rune(tt.line), tt.inComment)
		if len(got) != len(tt.want) {
			t.Errorf("Highlight(%q) returned %d spans, want %d: %v", tt.line, len(got), len(tt.want), got)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("Highlight(%q)[%d] = %+v, want %+v", tt.line, i, got[i], tt.want[i])
			}
		}
	}
}
