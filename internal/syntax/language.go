package syntax

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// Registry errors.
var (
	ErrLanguageExists  = errors.New("language already registered")
	ErrInvalidLanguage = errors.New("invalid language descriptor")
)

// ServerSpec describes how to launch the language server for a language.
type ServerSpec struct {
	Command    string
	Args       []string
	LanguageID string
}

// Language describes the lexical tokens of one language.
type Language struct {
	Name       string
	Extensions []string
	Keywords   []string

	// LineComment starts a comment running to end of line. Empty if none.
	LineComment string
	// BlockStart and BlockEnd delimit multi-line comments. Both empty if none.
	BlockStart string
	BlockEnd   string
	// StringDelims lists the characters that open and close a string literal.
	StringDelims string

	CaseInsensitive bool
	Server          *ServerSpec

	once     sync.Once
	keywords map[string]struct{}
	lineTok  []rune
	startTok []rune
	endTok   []rune
}

// HasBlockComments reports whether the language defines a block comment pair.
func (l *Language) HasBlockComments() bool {
	return l != nil && l.BlockStart != "" && l.BlockEnd != ""
}

// IsKeyword reports whether word is one of the language keywords.
func (l *Language) IsKeyword(word string) bool {
	if l == nil || word == "" {
		return false
	}
	l.once.Do(l.prepare)
	if l.CaseInsensitive {
		word = strings.ToLower(word)
	}
	_, ok := l.keywords[word]
	return ok
}

func (l *Language) prepare() {
	l.lineTok = []rune(l.LineComment)
	if l.HasBlockComments() {
		l.startTok = []rune(l.BlockStart)
		l.endTok = []rune(l.BlockEnd)
	}
	l.keywords = make(map[string]struct{}, len(l.Keywords))
	for _, kw := range l.Keywords {
		if l.CaseInsensitive {
			kw = strings.ToLower(kw)
		}
		l.keywords[kw] = struct{}{}
	}
}

func (l *Language) tokens() (line, start, end []rune) {
	l.once.Do(l.prepare)
	return l.lineTok, l.startTok, l.endTok
}

// isStringDelim reports whether r opens a string literal.
func (l *Language) isStringDelim(r rune) bool {
	return l != nil && l.StringDelims != "" && strings.ContainsRune(l.StringDelims, r)
}

// Override selects a language for a file ahead of plain extension lookup.
// Match receives the path and the first lines of the file.
type Override struct {
	Language string
	Match    func(path string, head []string) bool
}

// Registry maps language names and file extensions to descriptors.
// Lookups are safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	byName    map[string]*Language
	byExt     map[string]*Language
	order     []string
	overrides []Override
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]*Language),
		byExt:  make(map[string]*Language),
	}
}

// Builtin returns a registry holding the built-in language table and the
// PySpark override.
func Builtin() *Registry {
	r := NewRegistry()
	for _, lang := range builtinLanguages {
		copied := &Language{
			Name:            lang.Name,
			Extensions:      lang.Extensions,
			Keywords:        lang.Keywords,
			LineComment:     lang.LineComment,
			BlockStart:      lang.BlockStart,
			BlockEnd:        lang.BlockEnd,
			StringDelims:    lang.StringDelims,
			CaseInsensitive: lang.CaseInsensitive,
			Server:          lang.Server,
		}
		// Extensions already taken (PySpark shares .py) stay with the first
		// language; only a malformed or duplicate entry is an error.
		if err := r.register(copied, false); err != nil {
			panic(fmt.Sprintf("syntax: builtin %q: %v", lang.Name, err))
		}
	}
	r.AddOverride(PySparkOverride)
	return r
}

// PySparkOverride routes .py files to PySpark when the path mentions spark
// or the file imports pyspark.
var PySparkOverride = Override{
	Language: "PySpark",
	Match: func(path string, head []string) bool {
		if !strings.EqualFold(filepath.Ext(path), ".py") {
			return false
		}
		if strings.Contains(strings.ToLower(path), "spark") {
			return true
		}
		for _, line := range head {
			trimmed := strings.TrimSpace(line)
			if strings.HasPrefix(trimmed, "import pyspark") || strings.HasPrefix(trimmed, "from pyspark") {
				return true
			}
		}
		return false
	},
}

// Register adds a language. It fails if the name is taken.
// Extensions already claimed by another language are left with that language.
func (r *Registry) Register(lang *Language) error {
	return r.register(lang, false)
}

// Replace adds a language, replacing any registered language of the same
// name and claiming all of its extensions.
func (r *Registry) Replace(lang *Language) error {
	return r.register(lang, true)
}

func (r *Registry) register(lang *Language, replace bool) error {
	if lang == nil || lang.Name == "" {
		return ErrInvalidLanguage
	}
	if (lang.BlockStart == "") != (lang.BlockEnd == "") {
		return ErrInvalidLanguage
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byName[lang.Name]; exists && !replace {
		return ErrLanguageExists
	}
	if _, exists := r.byName[lang.Name]; !exists {
		r.order = append(r.order, lang.Name)
	}
	r.byName[lang.Name] = lang
	for _, ext := range lang.Extensions {
		ext = normalizeExt(ext)
		if ext == "" {
			continue
		}
		if _, taken := r.byExt[ext]; taken && !replace {
			continue
		}
		r.byExt[ext] = lang
	}
	return nil
}

// AddOverride appends a content or path based override rule.
func (r *Registry) AddOverride(o Override) {
	r.mu.Lock()
	r.overrides = append(r.overrides, o)
	r.mu.Unlock()
}

// Lookup returns the language with the given name.
func (r *Registry) Lookup(name string) (*Language, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	lang, ok := r.byName[name]
	return lang, ok
}

// ForExtension returns the language registered for ext, with or without
// the leading dot.
func (r *Registry) ForExtension(ext string) (*Language, bool) {
	ext = normalizeExt(ext)
	r.mu.RLock()
	defer r.mu.RUnlock()
	if lang, ok := r.byExt[ext]; ok {
		return lang, true
	}
	// Extensions such as .R are registered in both cases.
	lang, ok := r.byExt[strings.ToLower(ext)]
	return lang, ok
}

// Detect picks the language for a file. Overrides are consulted first,
// then the file extension. Returns nil when nothing matches.
func (r *Registry) Detect(path string, head []string) *Language {
	if path == "" {
		return nil
	}

	r.mu.RLock()
	overrides := r.overrides
	r.mu.RUnlock()

	for _, o := range overrides {
		if o.Match != nil && o.Match(path, head) {
			if lang, ok := r.Lookup(o.Language); ok {
				return lang
			}
		}
	}

	ext := filepath.Ext(path)
	if ext == "" || ext == filepath.Base(path) {
		return nil
	}
	lang, _ := r.ForExtension(ext)
	return lang
}

// Names returns registered language names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Extensions returns every registered extension, sorted.
func (r *Registry) Extensions() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	exts := make([]string, 0, len(r.byExt))
	for ext := range r.byExt {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

func normalizeExt(ext string) string {
	return strings.TrimPrefix(strings.TrimSpace(ext), ".")
}
