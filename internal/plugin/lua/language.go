package lua

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/tasci/internal/syntax"
)

// LoadDir runs every *.lua file in dir in name order and registers the
// languages they declare, replacing built-in languages of the same name.
// A missing directory is not an error. One failing file does not stop the
// others.
func LoadDir(dir string, reg *syntax.Registry, opts ...StateOption) ([]string, []error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, []error{err}
	}

	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".lua") {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)

	var names []string
	var errs []error
	for _, f := range files {
		n, err := LoadFile(f, reg, opts...)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		names = append(names, n...)
	}
	return names, errs
}

// LoadFile runs one plugin file. Nothing is registered if it fails.
func LoadFile(path string, reg *syntax.Registry, opts ...StateOption) ([]string, error) {
	return load(path, reg, opts, func(s *State) error { return s.DoFile(path) })
}

// LoadString runs plugin source; name labels errors.
func LoadString(name, code string, reg *syntax.Registry, opts ...StateOption) ([]string, error) {
	return load(name, reg, opts, func(s *State) error { return s.DoString(code) })
}

func load(file string, reg *syntax.Registry, opts []StateOption, run func(*State) error) ([]string, error) {
	s := NewState(opts...)
	defer s.Close()

	var langs []*syntax.Language
	var defErr *DefinitionError
	s.RegisterFunc("language", func(L *lua.LState) int {
		lang, err := toLanguage(L.CheckTable(1))
		if err != nil {
			err.File = file
			defErr = err
			L.RaiseError("%s", err.Message)
			return 0
		}
		langs = append(langs, lang)
		return 0
	})

	if err := run(s); err != nil {
		if defErr != nil {
			return nil, defErr
		}
		return nil, fmt.Errorf("%s: %w", file, err)
	}

	names := make([]string, 0, len(langs))
	for _, lang := range langs {
		if err := reg.Replace(lang); err != nil {
			return names, &DefinitionError{File: file, Name: lang.Name, Message: err.Error()}
		}
		names = append(names, lang.Name)
	}
	return names, nil
}

func toLanguage(t *lua.LTable) (*syntax.Language, *DefinitionError) {
	lang := &syntax.Language{
		Name:            lua.LVAsString(t.RawGetString("name")),
		LineComment:     lua.LVAsString(t.RawGetString("line_comment")),
		StringDelims:    lua.LVAsString(t.RawGetString("strings")),
		CaseInsensitive: lua.LVAsBool(t.RawGetString("case_insensitive")),
	}
	if lang.Name == "" {
		return nil, &DefinitionError{Message: "name is required"}
	}
	fail := func(msg string) (*syntax.Language, *DefinitionError) {
		return nil, &DefinitionError{Name: lang.Name, Message: msg}
	}

	var ok bool
	if lang.Extensions, ok = stringList(t.RawGetString("extensions")); !ok || len(lang.Extensions) == 0 {
		return fail("extensions must be a non-empty string list")
	}
	if lang.Keywords, ok = stringList(t.RawGetString("keywords")); !ok {
		return fail("keywords must be a string list")
	}

	if v := t.RawGetString("block_comment"); v != lua.LNil {
		pair, ok := stringList(v)
		if !ok || len(pair) != 2 || pair[0] == "" || pair[1] == "" {
			return fail("block_comment must be a pair of non-empty strings")
		}
		lang.BlockStart, lang.BlockEnd = pair[0], pair[1]
	}

	if v := t.RawGetString("server"); v != lua.LNil {
		st, ok := v.(*lua.LTable)
		if !ok {
			return fail("server must be a table")
		}
		spec := &syntax.ServerSpec{
			Command:    lua.LVAsString(st.RawGetString("command")),
			LanguageID: lua.LVAsString(st.RawGetString("language_id")),
		}
		if spec.Command == "" {
			return fail("server.command is required")
		}
		if spec.Args, ok = stringList(st.RawGetString("args")); !ok {
			return fail("server.args must be a string list")
		}
		if spec.LanguageID == "" {
			spec.LanguageID = strings.ToLower(lang.Name)
		}
		lang.Server = spec
	}
	return lang, nil
}

// stringList accepts nil, a single string, or an array of strings.
func stringList(v lua.LValue) ([]string, bool) {
	switch v := v.(type) {
	case *lua.LNilType:
		return nil, true
	case lua.LString:
		return []string{string(v)}, true
	case *lua.LTable:
		out := make([]string, 0, v.Len())
		for i := 1; i <= v.Len(); i++ {
			s, ok := v.RawGetInt(i).(lua.LString)
			if !ok {
				return nil, false
			}
			out = append(out, string(s))
		}
		return out, true
	default:
		return nil, false
	}
}
