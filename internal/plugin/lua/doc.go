// Package lua loads user language definitions written in Lua.
//
// Each *.lua file in the plugin directory runs in a sandboxed gopher-lua
// state with one extra global, language, which declares a language:
//
//	language {
//	    name = "Odin",
//	    extensions = { "odin" },
//	    line_comment = "//",
//	    block_comment = { "/*", "*/" },
//	    strings = "\"'`",
//	    keywords = { "package", "import", "proc", "struct", "return" },
//	    server = { command = "ols", language_id = "odin" },
//	}
//
// Declared languages replace built-in languages of the same name.
// Scripts cannot read files or load modules, and each run is cut off
// after the execution timeout.
package lua
