package syntax

// builtinLanguages is the table loaded by Builtin. Keyword sets are matched
// against whole identifier words only.
var builtinLanguages = []*Language{
	{
		Name:         "C",
		Extensions:   []string{"c", "h"},
		LineComment:  "//",
		BlockStart:   "/*",
		BlockEnd:     "*/",
		StringDelims: `"'`,
		Server:       &ServerSpec{Command: "clangd", LanguageID: "c"},
		Keywords: []string{
			"auto", "break", "case", "char", "const", "continue", "default", "do", "double",
			"else", "enum", "extern", "float", "for", "goto", "if", "inline", "int", "long",
			"register", "restrict", "return", "short", "signed", "sizeof", "static", "struct",
			"switch", "typedef", "union", "unsigned", "void", "volatile", "while",
		},
	},
	{
		Name:         "C++",
		Extensions:   []string{"cpp", "cc", "cxx", "hpp", "hxx", "hh"},
		LineComment:  "//",
		BlockStart:   "/*",
		BlockEnd:     "*/",
		StringDelims: `"'`,
		Server:       &ServerSpec{Command: "clangd", LanguageID: "cpp"},
		Keywords: []string{
			"alignas", "alignof", "asm", "auto", "bool", "break", "case", "catch", "char",
			"class", "const", "constexpr", "continue", "decltype", "default", "delete", "do",
			"double", "else", "enum", "explicit", "export", "extern", "false", "float", "for",
			"friend", "goto", "if", "inline", "int", "long", "mutable", "namespace", "new",
			"noexcept", "nullptr", "operator", "private", "protected", "public", "register",
			"reinterpret_cast", "return", "short", "signed", "sizeof", "static", "struct",
			"switch", "template", "this", "throw", "true", "try", "typedef", "typeid", "typename",
			"union", "unsigned", "using", "virtual", "void", "volatile", "while",
		},
	},
	{
		Name:         "D",
		Extensions:   []string{"d"},
		LineComment:  "//",
		BlockStart:   "/*",
		BlockEnd:     "*/",
		StringDelims: `"'`,
		Server:       &ServerSpec{Command: "serve-d", LanguageID: "d"},
		Keywords: []string{
			"alias", "align", "asm", "assert", "auto", "body", "bool", "break", "byte", "case",
			"cast", "catch", "cdouble", "cent", "cfloat", "char", "class", "const", "continue",
			"creal", "dchar", "debug", "default", "delegate", "delete", "deprecated", "do",
			"double", "else", "enum", "export", "extern", "false", "final", "finally", "float",
			"for", "foreach", "foreach_reverse", "function", "goto", "if", "immutable", "import",
			"in", "inout", "interface", "invariant", "is", "lazy", "long", "macro", "mixin",
			"module", "new", "nothrow", "null", "out", "override", "package", "pragma", "private",
			"protected", "public", "pure", "real", "ref", "return", "scope", "shared", "short",
			"static", "struct", "super", "switch", "synchronized", "template", "this", "throw",
			"true", "try", "typedef", "typeid", "typeof", "ubyte", "ucent", "uint", "ulong",
			"union", "unittest", "ushort", "version", "void", "volatile", "wchar", "while",
			"with",
		},
	},
	{
		Name:         "Golang",
		Extensions:   []string{"go"},
		LineComment:  "//",
		BlockStart:   "/*",
		BlockEnd:     "*/",
		StringDelims: `"'`,
		Server:       &ServerSpec{Command: "gopls", LanguageID: "go"},
		Keywords: []string{
			"break", "case", "chan", "const", "continue", "default", "defer", "else",
			"fallthrough", "for", "func", "go", "goto", "if", "import", "interface", "map",
			"package", "range", "return", "select", "struct", "switch", "type", "var",
		},
	},
	{
		Name:         "Java",
		Extensions:   []string{"java"},
		LineComment:  "//",
		BlockStart:   "/*",
		BlockEnd:     "*/",
		StringDelims: `"'`,
		Server:       &ServerSpec{Command: "jdtls", LanguageID: "java"},
		Keywords: []string{
			"abstract", "assert", "boolean", "break", "byte", "case", "catch", "char", "class",
			"const", "continue", "default", "do", "double", "else", "enum", "extends", "final",
			"finally", "float", "for", "goto", "if", "implements", "import", "instanceof", "int",
			"interface", "long", "native", "new", "package", "private", "protected", "public",
			"return", "short", "static", "strictfp", "super", "switch", "synchronized", "this",
			"throw", "throws", "transient", "try", "void", "volatile", "while",
		},
	},
	{
		Name:         "JavaScript",
		Extensions:   []string{"js", "mjs", "cjs"},
		LineComment:  "//",
		BlockStart:   "/*",
		BlockEnd:     "*/",
		StringDelims: "\"'`",
		Server:       &ServerSpec{Command: "typescript-language-server", Args: []string{"--stdio"}, LanguageID: "javascript"},
		Keywords: []string{
			"await", "break", "case", "catch", "class", "const", "continue", "debugger",
			"default", "delete", "do", "else", "enum", "export", "extends", "false", "finally",
			"for", "function", "if", "import", "in", "instanceof", "let", "new", "null", "return",
			"super", "switch", "this", "throw", "true", "try", "typeof", "var", "void", "while",
			"with", "yield",
		},
	},
	{
		Name:         "TypeScript",
		Extensions:   []string{"ts", "tsx"},
		LineComment:  "//",
		BlockStart:   "/*",
		BlockEnd:     "*/",
		StringDelims: "\"'`",
		Server:       &ServerSpec{Command: "typescript-language-server", Args: []string{"--stdio"}, LanguageID: "typescript"},
		Keywords: []string{
			"abstract", "any", "as", "asserts", "await", "bigint", "boolean", "break", "case",
			"catch", "class", "const", "continue", "declare", "default", "delete", "do", "else",
			"enum", "export", "extends", "false", "finally", "for", "from", "function", "get",
			"if", "implements", "import", "in", "infer", "instanceof", "interface", "is", "keyof",
			"let", "module", "namespace", "never", "new", "null", "number", "object", "package",
			"private", "protected", "public", "readonly", "return", "set", "static", "string",
			"super", "switch", "symbol", "this", "throw", "true", "try", "type", "typeof",
			"undefined", "unique", "unknown", "var", "void", "while", "with", "yield",
		},
	},
	{
		Name:         "Python",
		Extensions:   []string{"py"},
		LineComment:  "#",
		StringDelims: `"'`,
		Server:       &ServerSpec{Command: "pyright-langserver", Args: []string{"--stdio"}, LanguageID: "python"},
		Keywords: []string{
			"and", "as", "assert", "async", "await", "break", "class", "continue", "def", "del",
			"elif", "else", "except", "False", "finally", "for", "from", "global", "if", "import",
			"in", "is", "lambda", "None", "nonlocal", "not", "or", "pass", "raise", "return",
			"True", "try", "while", "with", "yield",
		},
	},
	{
		Name:         "PySpark",
		Extensions:   []string{"py"},
		LineComment:  "#",
		StringDelims: `"'`,
		Server:       &ServerSpec{Command: "pyright-langserver", Args: []string{"--stdio"}, LanguageID: "python"},
		Keywords: []string{
			"SparkSession", "SparkContext", "DataFrame", "RDD", "udf", "col", "lit", "when",
			"select", "filter", "where", "groupBy", "agg", "join", "withColumn", "read", "write",
		},
	},
	{
		Name:         "R",
		Extensions:   []string{"r", "R"},
		LineComment:  "#",
		StringDelims: `"'`,
		Server:       &ServerSpec{Command: "R", Args: []string{"--slave", "-e", "languageserver::run()"}, LanguageID: "r"},
		Keywords: []string{
			"if", "else", "repeat", "while", "function", "for", "in", "next", "break", "TRUE",
			"FALSE", "NULL", "NA", "NaN", "Inf",
		},
	},
	{
		Name:         "Csharp",
		Extensions:   []string{"cs"},
		LineComment:  "//",
		BlockStart:   "/*",
		BlockEnd:     "*/",
		StringDelims: `"'`,
		Server:       &ServerSpec{Command: "csharp-ls", LanguageID: "csharp"},
		Keywords: []string{
			"abstract", "as", "base", "bool", "break", "byte", "case", "catch", "char", "checked",
			"class", "const", "continue", "decimal", "default", "delegate", "do", "double",
			"else", "enum", "event", "explicit", "extern", "false", "finally", "fixed", "float",
			"for", "foreach", "goto", "if", "implicit", "in", "int", "interface", "internal",
			"is", "lock", "long", "namespace", "new", "null", "object", "operator", "out",
			"override", "params", "private", "protected", "public", "readonly", "ref", "return",
			"sbyte", "sealed", "short", "sizeof", "stackalloc", "static", "string", "struct",
			"switch", "this", "throw", "true", "try", "typeof", "uint", "ulong", "unchecked",
			"unsafe", "ushort", "using", "virtual", "void", "volatile", "while",
		},
	},
	{
		Name:         "Julia",
		Extensions:   []string{"jl"},
		LineComment:  "#",
		BlockStart:   "#=",
		BlockEnd:     "=#",
		StringDelims: `"'`,
		Server:       &ServerSpec{Command: "julia", Args: []string{"--startup-file=no", "-e", "using LanguageServer; runserver()"}, LanguageID: "julia"},
		Keywords: []string{
			"abstract", "baremodule", "begin", "break", "catch", "const", "continue", "do",
			"else", "elseif", "end", "export", "false", "finally", "for", "function", "global",
			"if", "import", "let", "local", "macro", "module", "mutable", "primitive", "quote",
			"return", "struct", "true", "try", "using", "while",
		},
	},
	{
		Name:         "Perl",
		Extensions:   []string{"pl", "pm"},
		LineComment:  "#",
		StringDelims: `"'`,
		Server:       &ServerSpec{Command: "perlnavigator", Args: []string{"--stdio"}, LanguageID: "perl"},
		Keywords: []string{
			"my", "our", "local", "sub", "use", "package", "if", "elsif", "else", "unless",
			"while", "for", "foreach", "continue", "last", "next", "redo", "return", "undef",
			"defined", "eval", "require",
		},
	},
	{
		Name:         "Matlab",
		Extensions:   []string{"m"},
		LineComment:  "%",
		BlockStart:   "%{",
		BlockEnd:     "%}",
		StringDelims: `"'`,
		Keywords: []string{
			"break", "case", "catch", "classdef", "continue", "else", "elseif", "end", "for",
			"function", "global", "if", "otherwise", "parfor", "persistent", "return", "switch",
			"try", "while",
		},
	},
	{
		Name:         "Kotlin",
		Extensions:   []string{"kt", "kts"},
		LineComment:  "//",
		BlockStart:   "/*",
		BlockEnd:     "*/",
		StringDelims: `"'`,
		Server:       &ServerSpec{Command: "kotlin-language-server", LanguageID: "kotlin"},
		Keywords: []string{
			"as", "break", "class", "continue", "do", "else", "false", "for", "fun", "if", "in",
			"interface", "is", "null", "object", "package", "return", "super", "this", "throw",
			"true", "try", "typealias", "val", "var", "when", "while",
		},
	},
	{
		Name:         "PHP",
		Extensions:   []string{"php"},
		LineComment:  "//",
		BlockStart:   "/*",
		BlockEnd:     "*/",
		StringDelims: `"'`,
		Server:       &ServerSpec{Command: "intelephense", Args: []string{"--stdio"}, LanguageID: "php"},
		Keywords: []string{
			"abstract", "and", "array", "as", "break", "callable", "case", "catch", "class",
			"clone", "const", "continue", "declare", "default", "do", "echo", "else", "elseif",
			"enddeclare", "endfor", "endforeach", "endif", "endswitch", "endwhile", "extends",
			"final", "finally", "for", "foreach", "function", "global", "goto", "if",
			"implements", "include", "include_once", "instanceof", "interface", "isset", "list",
			"namespace", "new", "or", "private", "protected", "public", "require", "require_once",
			"return", "static", "switch", "throw", "trait", "try", "unset", "use", "var", "while",
			"xor", "yield",
		},
	},
	{
		Name:         "Ruby",
		Extensions:   []string{"rb"},
		LineComment:  "#",
		StringDelims: `"'`,
		Server:       &ServerSpec{Command: "solargraph", Args: []string{"stdio"}, LanguageID: "ruby"},
		Keywords: []string{
			"BEGIN", "END", "alias", "and", "begin", "break", "case", "class", "def", "defined?",
			"do", "else", "elsif", "end", "ensure", "false", "for", "if", "in", "module", "next",
			"nil", "not", "or", "redo", "rescue", "retry", "return", "self", "super", "then",
			"true", "undef", "unless", "until", "when", "while", "yield",
		},
	},
	{
		Name:         "Rust",
		Extensions:   []string{"rs"},
		LineComment:  "//",
		BlockStart:   "/*",
		BlockEnd:     "*/",
		StringDelims: `"'`,
		Server:       &ServerSpec{Command: "rust-analyzer", LanguageID: "rust"},
		Keywords: []string{
			"as", "async", "await", "break", "const", "continue", "crate", "dyn", "else", "enum",
			"extern", "false", "fn", "for", "if", "impl", "in", "let", "loop", "match", "mod",
			"move", "mut", "pub", "ref", "return", "self", "Self", "static", "struct", "super",
			"trait", "true", "type", "unsafe", "use", "where", "while", "yield",
		},
	},
	{
		Name:         "Lua",
		Extensions:   []string{"lua"},
		LineComment:  "--",
		BlockStart:   "--[[",
		BlockEnd:     "]]",
		StringDelims: `"'`,
		Server:       &ServerSpec{Command: "lua-language-server", LanguageID: "lua"},
		Keywords: []string{
			"and", "break", "do", "else", "elseif", "end", "false", "for", "function", "goto",
			"if", "in", "local", "nil", "not", "or", "repeat", "return", "then", "true", "until",
			"while",
		},
	},
	{
		Name:         "SAS",
		Extensions:   []string{"sas"},
		LineComment:  "",
		BlockStart:   "/*",
		BlockEnd:     "*/",
		StringDelims: `"'`,
		Keywords: []string{
			"data", "proc", "run", "quit", "set", "if", "then", "else", "do", "end", "where",
			"keep", "drop", "merge", "by", "input", "output", "format", "informat", "length",
			"label",
		},
	},
	{
		Name:            "Fortran",
		Extensions:      []string{"f", "for", "f90", "f95"},
		LineComment:     "!",
		StringDelims:    `"'`,
		CaseInsensitive: true,
		Server:          &ServerSpec{Command: "fortls", LanguageID: "fortran"},
		Keywords: []string{
			"program", "end", "integer", "real", "double", "precision", "logical", "character",
			"dimension", "if", "then", "else", "endif", "do", "enddo", "stop", "subroutine",
			"function", "return", "module", "use", "contains", "implicit", "none",
		},
	},
	{
		Name:         "Lisp",
		Extensions:   []string{"lisp", "lsp"},
		LineComment:  ";",
		BlockStart:   "#|",
		BlockEnd:     "|#",
		StringDelims: `"`,
		Keywords: []string{
			"defun", "defmacro", "lambda", "let", "let*", "if", "cond", "progn", "quote", "car",
			"cdr", "cons", "setq", "setf", "loop", "when", "unless", "and", "or", "not",
		},
	},
	{
		Name:         "Scala",
		Extensions:   []string{"scala"},
		LineComment:  "//",
		BlockStart:   "/*",
		BlockEnd:     "*/",
		StringDelims: `"'`,
		Server:       &ServerSpec{Command: "metals", LanguageID: "scala"},
		Keywords: []string{
			"abstract", "case", "catch", "class", "def", "do", "else", "extends", "false",
			"final", "finally", "for", "forSome", "if", "implicit", "import", "lazy", "match",
			"new", "null", "object", "override", "package", "private", "protected", "return",
			"sealed", "super", "this", "throw", "trait", "true", "try", "type", "val", "var",
			"while", "with", "yield",
		},
	},
	{
		Name:         "Assembly",
		Extensions:   []string{"asm", "s"},
		LineComment:  ";",
		BlockStart:   "/*",
		BlockEnd:     "*/",
		StringDelims: `"'`,
		Keywords: []string{
			"mov", "add", "sub", "mul", "div", "jmp", "je", "jne", "jg", "jge", "jl", "jle",
			"call", "ret", "push", "pop", "cmp", "and", "or", "xor", "shl", "shr", "nop",
		},
	},
	{
		Name:         "ActionScript",
		Extensions:   []string{"as"},
		LineComment:  "//",
		BlockStart:   "/*",
		BlockEnd:     "*/",
		StringDelims: `"'`,
		Keywords: []string{
			"break", "case", "catch", "class", "const", "continue", "default", "delete", "do",
			"else", "extends", "false", "finally", "for", "function", "if", "implements",
			"import", "in", "instanceof", "interface", "new", "null", "override", "private",
			"protected", "public", "return", "static", "super", "switch", "this", "throw", "true",
			"try", "typeof", "var", "while", "with",
		},
	},
	{
		Name:         "Clojure",
		Extensions:   []string{"clj", "cljs", "cljc"},
		LineComment:  ";",
		StringDelims: `"`,
		Server:       &ServerSpec{Command: "clojure-lsp", LanguageID: "clojure"},
		Keywords: []string{
			"def", "defn", "defmacro", "let", "if", "do", "fn", "loop", "recur", "when", "cond",
			"case", "->", "->>", "doseq", "for", "map", "reduce", "filter", "nil", "true",
			"false",
		},
	},
	{
		Name:         "CoffeeScript",
		Extensions:   []string{"coffee"},
		LineComment:  "#",
		BlockStart:   "###",
		BlockEnd:     "###",
		StringDelims: "\"'`",
		Keywords: []string{
			"and", "or", "is", "isnt", "not", "class", "extends", "if", "else", "then", "for",
			"while", "until", "loop", "break", "continue", "return", "try", "catch", "finally",
			"throw", "true", "false", "null", "undefined", "new", "super", "this",
		},
	},
	{
		Name:         "Dart",
		Extensions:   []string{"dart"},
		LineComment:  "//",
		BlockStart:   "/*",
		BlockEnd:     "*/",
		StringDelims: `"'`,
		Server:       &ServerSpec{Command: "dart", Args: []string{"language-server"}, LanguageID: "dart"},
		Keywords: []string{
			"abstract", "as", "assert", "async", "await", "break", "case", "catch", "class",
			"const", "continue", "covariant", "default", "deferred", "do", "dynamic", "else",
			"enum", "export", "extends", "extension", "external", "factory", "false", "final",
			"finally", "for", "Function", "get", "hide", "if", "implements", "import", "in",
			"interface", "late", "library", "mixin", "new", "null", "on", "operator", "part",
			"required", "rethrow", "return", "set", "show", "static", "super", "switch", "this",
			"throw", "true", "try", "typedef", "var", "void", "while", "with", "yield",
		},
	},
	{
		Name:            "COBOL",
		Extensions:      []string{"cob", "cbl"},
		LineComment:     "*>",
		StringDelims:    `"'`,
		CaseInsensitive: true,
		Keywords: []string{
			"IDENTIFICATION", "DIVISION", "PROGRAM-ID", "ENVIRONMENT", "DATA", "PROCEDURE",
			"SECTION", "END-IF", "IF", "ELSE", "PERFORM", "MOVE", "ADD", "SUBTRACT", "MULTIPLY",
			"DIVIDE", "STOP", "RUN",
		},
	},
	{
		Name:         "Elixir",
		Extensions:   []string{"ex", "exs"},
		LineComment:  "#",
		StringDelims: `"'`,
		Server:       &ServerSpec{Command: "elixir-ls", LanguageID: "elixir"},
		Keywords: []string{
			"def", "defp", "defmodule", "do", "end", "if", "else", "case", "cond", "with", "fn",
			"receive", "try", "catch", "rescue", "after", "alias", "import", "require", "use",
			"true", "false", "nil",
		},
	},
	{
		Name:         "Groovy",
		Extensions:   []string{"groovy", "gvy", "gy", "gsh"},
		LineComment:  "//",
		BlockStart:   "/*",
		BlockEnd:     "*/",
		StringDelims: `"'`,
		Server:       &ServerSpec{Command: "groovy-language-server", LanguageID: "groovy"},
		Keywords: []string{
			"as", "assert", "break", "case", "catch", "class", "const", "continue", "def",
			"default", "do", "else", "enum", "extends", "false", "finally", "for", "goto", "if",
			"implements", "import", "in", "instanceof", "interface", "new", "null", "package",
			"return", "super", "switch", "this", "throw", "trait", "true", "try", "while",
		},
	},
	{
		Name:         "Erlang",
		Extensions:   []string{"erl", "hrl"},
		LineComment:  "%",
		StringDelims: `"'`,
		Server:       &ServerSpec{Command: "erlang_ls", LanguageID: "erlang"},
		Keywords: []string{
			"after", "and", "andalso", "band", "begin", "bnot", "bor", "bsl", "bsr", "bxor",
			"case", "catch", "cond", "div", "end", "fun", "if", "let", "not", "of", "or",
			"orelse", "receive", "rem", "try", "when", "xor",
		},
	},
	{
		Name:         "Haskell",
		Extensions:   []string{"hs"},
		LineComment:  "--",
		BlockStart:   "{-",
		BlockEnd:     "-}",
		StringDelims: `"'`,
		Server:       &ServerSpec{Command: "haskell-language-server-wrapper", Args: []string{"--lsp"}, LanguageID: "haskell"},
		Keywords: []string{
			"case", "class", "data", "default", "deriving", "do", "else", "if", "import", "in",
			"infix", "infixl", "infixr", "instance", "let", "module", "newtype", "of", "then",
			"type", "where", "forall",
		},
	},
	{
		Name:            "Pascal",
		Extensions:      []string{"pas", "pp"},
		LineComment:     "//",
		BlockStart:      "{",
		BlockEnd:        "}",
		StringDelims:    `"'`,
		CaseInsensitive: true,
		Keywords: []string{
			"and", "array", "begin", "case", "const", "div", "do", "downto", "else", "end",
			"file", "for", "function", "goto", "if", "in", "label", "mod", "nil", "not", "of",
			"or", "packed", "procedure", "program", "record", "repeat", "set", "then", "to",
			"type", "until", "var", "while", "with",
		},
	},
	{
		Name:         "Swift",
		Extensions:   []string{"swift"},
		LineComment:  "//",
		BlockStart:   "/*",
		BlockEnd:     "*/",
		StringDelims: `"'`,
		Server:       &ServerSpec{Command: "sourcekit-lsp", LanguageID: "swift"},
		Keywords: []string{
			"associatedtype", "class", "deinit", "enum", "extension", "fileprivate", "func",
			"import", "init", "inout", "internal", "let", "open", "operator", "private",
			"protocol", "public", "static", "struct", "subscript", "typealias", "var", "break",
			"case", "continue", "default", "defer", "do", "else", "fallthrough", "for", "guard",
			"if", "in", "repeat", "return", "switch", "where", "while", "as", "is", "try",
			"catch", "throw", "nil", "true", "false",
		},
	},
	{
		Name:         "Scheme",
		Extensions:   []string{"scm", "ss"},
		LineComment:  ";",
		BlockStart:   "#|",
		BlockEnd:     "|#",
		StringDelims: `"`,
		Keywords: []string{
			"define", "lambda", "let", "let*", "letrec", "if", "cond", "case", "begin", "and",
			"or", "not", "quote", "quasiquote", "unquote", "set!",
		},
	},
	{
		Name:         "Racket",
		Extensions:   []string{"rkt"},
		LineComment:  ";",
		BlockStart:   "#|",
		BlockEnd:     "|#",
		StringDelims: `"`,
		Keywords: []string{
			"#lang", "define", "lambda", "let", "let*", "letrec", "if", "cond", "case", "begin",
			"and", "or", "not", "require", "provide", "struct", "module", "match",
		},
	},
	{
		Name:         "OCaml",
		Extensions:   []string{"ml", "mli"},
		LineComment:  "",
		BlockStart:   "(*",
		BlockEnd:     "*)",
		StringDelims: `"`,
		Server:       &ServerSpec{Command: "ocamllsp", LanguageID: "ocaml"},
		Keywords: []string{
			"and", "as", "assert", "begin", "class", "constraint", "do", "done", "downto", "else",
			"end", "exception", "external", "false", "for", "fun", "function", "functor", "if",
			"in", "include", "inherit", "initializer", "lazy", "let", "match", "method", "module",
			"mutable", "new", "object", "of", "open", "or", "private", "rec", "sig", "struct",
			"then", "to", "true", "try", "type", "val", "virtual", "when", "while", "with",
		},
	},
	{
		Name:         "Elm",
		Extensions:   []string{"elm"},
		LineComment:  "--",
		BlockStart:   "{-",
		BlockEnd:     "-}",
		StringDelims: `"'`,
		Server:       &ServerSpec{Command: "elm-language-server", LanguageID: "elm"},
		Keywords: []string{
			"if", "then", "else", "case", "of", "let", "in", "type", "module", "import",
			"exposing", "as", "port", "where",
		},
	},
	{
		Name:         "Haxe",
		Extensions:   []string{"hx"},
		LineComment:  "//",
		BlockStart:   "/*",
		BlockEnd:     "*/",
		StringDelims: `"'`,
		Keywords: []string{
			"abstract", "break", "case", "cast", "catch", "class", "const", "continue", "default",
			"do", "dynamic", "else", "enum", "extends", "extern", "false", "final", "for",
			"function", "if", "implements", "import", "in", "inline", "interface", "macro", "new",
			"null", "override", "package", "private", "public", "return", "static", "super",
			"switch", "this", "throw", "true", "try", "typedef", "var", "while",
		},
	},
	{
		Name:         "Crystal",
		Extensions:   []string{"cr"},
		LineComment:  "#",
		StringDelims: `"'`,
		Server:       &ServerSpec{Command: "crystalline", LanguageID: "crystal"},
		Keywords: []string{
			"abstract", "alias", "as", "asm", "begin", "break", "case", "class", "def", "do",
			"else", "elsif", "end", "ensure", "extend", "false", "for", "fun", "if", "in",
			"include", "instance_sizeof", "is_a?", "lib", "macro", "module", "new", "next", "nil",
			"not", "or", "out", "private", "protected", "require", "rescue", "responds_to?",
			"return", "self", "sizeof", "struct", "super", "then", "true", "type", "typeof",
			"union", "unless", "until", "when", "while", "with", "yield",
		},
	},
	{
		Name:         "Fsharp",
		Extensions:   []string{"fs", "fsi", "fsx"},
		LineComment:  "//",
		BlockStart:   "(*",
		BlockEnd:     "*)",
		StringDelims: `"'`,
		Server:       &ServerSpec{Command: "fsautocomplete", LanguageID: "fsharp"},
		Keywords: []string{
			"abstract", "and", "as", "assert", "base", "begin", "class", "default", "delegate",
			"do", "done", "downcast", "downto", "elif", "else", "end", "exception", "extern",
			"false", "finally", "for", "fun", "function", "global", "if", "in", "inherit",
			"inline", "interface", "internal", "lazy", "let", "match", "member", "module",
			"mutable", "namespace", "new", "null", "of", "open", "or", "override", "private",
			"public", "rec", "return", "sig", "static", "struct", "then", "to", "true", "try",
			"type", "upcast", "use", "val", "void", "when", "while", "with", "yield",
		},
	},
	{
		Name:         "Tcl",
		Extensions:   []string{"tcl"},
		LineComment:  "#",
		StringDelims: `"'`,
		Server:       &ServerSpec{Command: "tcl-lsp", LanguageID: "tcl"},
		Keywords: []string{
			"after", "append", "array", "break", "catch", "continue", "dict", "else", "elseif",
			"expr", "for", "foreach", "if", "incr", "join", "lappend", "lindex", "list", "proc",
			"return", "set", "switch", "then", "unset", "while",
		},
	},
	{
		Name:            "VB.NET",
		Extensions:      []string{"vb"},
		LineComment:     "'",
		StringDelims:    `"`,
		CaseInsensitive: true,
		Keywords: []string{
			"AddHandler", "AddressOf", "And", "AndAlso", "As", "Boolean", "ByRef", "Byte",
			"ByVal", "Call", "Case", "Catch", "Class", "Const", "Continue", "Date", "Decimal",
			"Declare", "Default", "Delegate", "Dim", "Do", "Double", "Each", "Else", "ElseIf",
			"End", "Enum", "Erase", "Error", "Event", "Exit", "False", "Finally", "For", "Friend",
			"Function", "Get", "GetType", "GoSub", "GoTo", "Handles", "If", "Implements",
			"Imports", "In", "Inherits", "Integer", "Interface", "Is", "Let", "Lib", "Like",
			"Long", "Loop", "Me", "Mod", "Module", "MustInherit", "MustOverride", "MyBase",
			"MyClass", "Namespace", "New", "Next", "Not", "Nothing", "NotInheritable",
			"NotOverridable", "Object", "Of", "On", "Operator", "Option", "Optional", "Or",
			"OrElse", "Overloads", "Overridable", "Overrides", "ParamArray", "Private",
			"Property", "Protected", "Public", "RaiseEvent", "ReadOnly", "ReDim", "REM",
			"RemoveHandler", "Resume", "Return", "Select", "Set", "Shadows", "Shared", "Short",
			"Single", "Static", "Step", "Stop", "String", "Structure", "Sub", "SyncLock", "Then",
			"Throw", "To", "True", "Try", "TypeOf", "UInteger", "ULong", "UShort", "Using",
			"When", "While", "With", "WithEvents", "WriteOnly",
		},
	},
	{
		Name:         "Objective_C",
		Extensions:   []string{"mm"},
		LineComment:  "//",
		BlockStart:   "/*",
		BlockEnd:     "*/",
		StringDelims: `"'`,
		Server:       &ServerSpec{Command: "clangd", LanguageID: "objective-cpp"},
		Keywords: []string{
			"@interface", "@implementation", "@end", "@class", "@protocol", "@selector",
			"@property", "@synthesize", "@dynamic", "@autoreleasepool", "@try", "@catch",
			"@finally", "@throw", "@encode", "@import", "@public", "@protected", "@private",
			"@optional", "@required", "nil", "YES", "NO",
		},
	},
	{
		Name:            "Ada",
		Extensions:      []string{"adb", "ads"},
		LineComment:     "--",
		StringDelims:    `"'`,
		CaseInsensitive: true,
		Server:          &ServerSpec{Command: "ada_language_server", LanguageID: "ada"},
		Keywords: []string{
			"abort", "abs", "abstract", "accept", "access", "aliased", "all", "and", "array",
			"at", "begin", "body", "case", "constant", "declare", "delay", "delta", "digits",
			"do", "else", "elsif", "end", "entry", "exception", "exit", "for", "function",
			"generic", "goto", "if", "in", "interface", "is", "limited", "loop", "mod", "new",
			"not", "null", "of", "or", "others", "out", "overriding", "package", "pragma",
			"private", "procedure", "protected", "raise", "range", "record", "rem", "renames",
			"requeue", "return", "reverse", "select", "separate", "subtype", "tagged", "task",
			"terminate", "then", "type", "until", "use", "when", "while", "with", "xor",
		},
	},
	{
		Name:         "Vala",
		Extensions:   []string{"vala", "vapi"},
		LineComment:  "//",
		BlockStart:   "/*",
		BlockEnd:     "*/",
		StringDelims: `"'`,
		Server:       &ServerSpec{Command: "vala-language-server", LanguageID: "vala"},
		Keywords: []string{
			"abstract", "as", "base", "bool", "break", "case", "catch", "char", "class", "const",
			"construct", "continue", "default", "delegate", "delete", "do", "double", "else",
			"enum", "errordomain", "extern", "false", "finally", "float", "for", "foreach", "if",
			"inline", "int", "interface", "is", "lock", "namespace", "new", "null", "out",
			"override", "private", "protected", "public", "ref", "return", "short", "signal",
			"sizeof", "static", "string", "struct", "super", "switch", "this", "throw", "true",
			"try", "typeof", "uint", "ulong", "unowned", "ushort", "using", "virtual", "void",
			"volatile", "weak", "while", "yield",
		},
	},
	{
		Name:            "SQL",
		Extensions:      []string{"sql"},
		LineComment:     "--",
		BlockStart:      "/*",
		BlockEnd:        "*/",
		StringDelims:    `"'`,
		CaseInsensitive: true,
		Server:          &ServerSpec{Command: "sqls", LanguageID: "sql"},
		Keywords: []string{
			"SELECT", "FROM", "WHERE", "JOIN", "LEFT", "RIGHT", "INNER", "OUTER", "FULL", "ON",
			"GROUP", "BY", "HAVING", "ORDER", "INSERT", "INTO", "VALUES", "UPDATE", "SET",
			"DELETE", "CREATE", "ALTER", "DROP", "TABLE", "VIEW", "INDEX", "PRIMARY", "KEY",
			"FOREIGN", "NOT", "NULL", "AS", "DISTINCT", "LIMIT", "OFFSET", "UNION", "ALL", "CASE",
			"WHEN", "THEN", "ELSE", "END",
		},
	},
	{
		Name:            "VB6",
		Extensions:      []string{"frm", "bas", "cls"},
		LineComment:     "'",
		StringDelims:    `"`,
		CaseInsensitive: true,
		Keywords: []string{
			"Dim", "As", "Integer", "String", "Long", "Boolean", "Sub", "Function", "End", "If",
			"Then", "Else", "For", "Next", "While", "Wend", "Do", "Loop", "Select", "Case",
			"Return", "Exit", "Public", "Private", "Set", "New",
		},
	},
	{
		Name:            "VBA",
		Extensions:      []string{"vba"},
		LineComment:     "'",
		StringDelims:    `"`,
		CaseInsensitive: true,
		Keywords: []string{
			"Dim", "As", "Integer", "String", "Long", "Boolean", "Sub", "Function", "End", "If",
			"Then", "Else", "For", "Next", "While", "Wend", "Do", "Loop", "Select", "Case",
			"Return", "Exit", "Public", "Private", "Set", "New", "Option", "Explicit", "ByRef",
			"ByVal",
		},
	},
	{
		Name:            "VBScript",
		Extensions:      []string{"vbs"},
		LineComment:     "'",
		StringDelims:    `"`,
		CaseInsensitive: true,
		Keywords: []string{
			"Dim", "Set", "If", "Then", "Else", "For", "Each", "Next", "While", "Wend", "Do",
			"Loop", "Select", "Case", "Function", "Sub", "End", "Class", "Option", "Explicit",
			"On", "Error", "Resume", "WScript",
		},
	},
	{
		Name:            "PowerShell",
		Extensions:      []string{"ps1", "psm1", "psd1"},
		LineComment:     "#",
		BlockStart:      "<#",
		BlockEnd:        "#>",
		StringDelims:    `"'`,
		CaseInsensitive: true,
		Server:          &ServerSpec{Command: "pwsh", Args: []string{"-NoLogo", "-NoProfile", "-Command", "Start-EditorServices -Stdio"}, LanguageID: "powershell"},
		Keywords: []string{
			"function", "param", "begin", "process", "end", "if", "elseif", "else", "switch",
			"foreach", "for", "while", "do", "until", "break", "continue", "return", "throw",
			"try", "catch", "finally", "class", "enum", "using", "import", "module", "where",
			"filter",
		},
	},
	{
		Name:         "Bash",
		Extensions:   []string{"sh", "bash"},
		LineComment:  "#",
		StringDelims: `"'`,
		Server:       &ServerSpec{Command: "bash-language-server", Args: []string{"start"}, LanguageID: "shellscript"},
		Keywords: []string{
			"if", "then", "else", "elif", "fi", "for", "while", "do", "done", "case", "esac",
			"function", "select", "in", "time", "coproc", "return", "break", "continue", "local",
			"export", "readonly",
		},
	},
	{
		Name:            "Delphi",
		Extensions:      []string{"dpr", "dpk"},
		LineComment:     "//",
		BlockStart:      "{",
		BlockEnd:        "}",
		StringDelims:    `"'`,
		CaseInsensitive: true,
		Keywords: []string{
			"and", "array", "begin", "case", "class", "const", "constructor", "destructor", "div",
			"do", "downto", "else", "end", "except", "exports", "file", "finalization", "finally",
			"for", "function", "goto", "if", "implementation", "in", "inherited",
			"initialization", "inline", "interface", "label", "library", "mod", "nil", "not",
			"object", "of", "or", "packed", "procedure", "program", "record", "repeat", "set",
			"shl", "shr", "then", "to", "try", "type", "unit", "until", "uses", "var", "while",
			"with", "xor",
		},
	},
	{
		Name:         "Zig",
		Extensions:   []string{"zig"},
		LineComment:  "//",
		BlockStart:   "/*",
		BlockEnd:     "*/",
		StringDelims: `"'`,
		Server:       &ServerSpec{Command: "zls", LanguageID: "zig"},
		Keywords: []string{
			"addrspace", "align", "allowzero", "and", "anyframe", "anytype", "asm", "async",
			"await", "break", "catch", "comptime", "const", "continue", "defer", "else", "enum",
			"errdefer", "error", "export", "extern", "false", "fn", "for", "if", "inline",
			"linksection", "noalias", "noinline", "nosuspend", "null", "or", "orelse", "packed",
			"pub", "resume", "return", "struct", "suspend", "switch", "test", "threadlocal",
			"true", "try", "union", "unreachable", "usingnamespace", "var", "volatile", "while",
		},
	},
	{
		Name:         "Carbon",
		Extensions:   []string{"carbon"},
		LineComment:  "//",
		BlockStart:   "/*",
		BlockEnd:     "*/",
		StringDelims: `"'`,
		Keywords: []string{
			"package", "import", "fn", "var", "let", "if", "else", "while", "for", "return",
			"struct", "class", "interface", "impl", "match", "as", "type", "choice", "constraint",
			"where", "true", "false",
		},
	},
	{
		Name:         "Nim",
		Extensions:   []string{"nim"},
		LineComment:  "#",
		BlockStart:   "#[",
		BlockEnd:     "]#",
		StringDelims: `"'`,
		Server:       &ServerSpec{Command: "nimlangserver", LanguageID: "nim"},
		Keywords: []string{
			"addr", "and", "as", "asm", "bind", "block", "break", "case", "cast", "concept",
			"const", "continue", "converter", "defer", "discard", "distinct", "div", "do", "elif",
			"else", "end", "enum", "except", "export", "finally", "for", "from", "func", "if",
			"import", "in", "include", "interface", "is", "isnot", "iterator", "let", "macro",
			"method", "mixin", "mod", "nil", "not", "notin", "object", "of", "or", "out", "proc",
			"ptr", "raise", "ref", "return", "shl", "shr", "static", "template", "try", "tuple",
			"type", "using", "var", "when", "while", "with", "without", "xor", "yield",
		},
	},
	{
		Name:         "Grain",
		Extensions:   []string{"gr"},
		LineComment:  "//",
		BlockStart:   "/*",
		BlockEnd:     "*/",
		StringDelims: `"'`,
		Keywords: []string{
			"let", "var", "fun", "if", "else", "match", "module", "import", "export", "type",
			"struct", "enum", "pub", "mut", "true", "false", "switch", "when", "while", "for",
			"return",
		},
	},
	{
		Name:         "Gleam",
		Extensions:   []string{"gleam"},
		LineComment:  "//",
		BlockStart:   "/*",
		BlockEnd:     "*/",
		StringDelims: `"'`,
		Server:       &ServerSpec{Command: "gleam", Args: []string{"lsp"}, LanguageID: "gleam"},
		Keywords: []string{
			"const", "fn", "import", "let", "pub", "type", "case", "assert", "todo", "panic",
			"if", "else", "true", "false",
		},
	},
	{
		Name:         "Wren",
		Extensions:   []string{"wren"},
		LineComment:  "//",
		BlockStart:   "/*",
		BlockEnd:     "*/",
		StringDelims: `"'`,
		Keywords: []string{
			"break", "class", "construct", "continue", "else", "false", "for", "foreign", "if",
			"import", "in", "is", "null", "return", "static", "super", "this", "true", "var",
			"while",
		},
	},
	{
		Name:         "Janet",
		Extensions:   []string{"janet", "jdn"},
		LineComment:  "#",
		StringDelims: `"'`,
		Keywords: []string{
			"def", "defn", "defmacro", "fn", "let", "if", "do", "while", "for", "break",
			"continue", "return", "nil", "true", "false", "and", "or",
		},
	},
	{
		Name:            "Oberon+",
		Extensions:      []string{"obn", "obp", "mod"},
		LineComment:     "",
		BlockStart:      "(*",
		BlockEnd:        "*)",
		StringDelims:    `"`,
		CaseInsensitive: true,
		Keywords: []string{
			"MODULE", "IMPORT", "CONST", "TYPE", "VAR", "PROCEDURE", "BEGIN", "END", "IF", "THEN",
			"ELSE", "ELSIF", "WHILE", "DO", "REPEAT", "UNTIL", "FOR", "TO", "BY", "RETURN",
		},
	},
	{
		Name:         "Raku",
		Extensions:   []string{"raku", "rakumod", "pm6", "p6"},
		LineComment:  "#",
		StringDelims: `"'`,
		Server:       &ServerSpec{Command: "raku-navigator", Args: []string{"--stdio"}, LanguageID: "raku"},
		Keywords: []string{
			"class", "role", "grammar", "module", "sub", "method", "multi", "my", "our", "state",
			"has", "if", "else", "elsif", "for", "given", "when", "while", "loop", "return",
			"next", "last", "redo", "use", "require", "constant", "enum", "subset", "token",
			"rule", "regex", "say", "print", "true", "false",
		},
	},
}
