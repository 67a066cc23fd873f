package lsp

import (
	"net/url"
	"path/filepath"
	"strings"
	"unicode/utf16"
)

// request is an outgoing JSON-RPC request.
type request struct {
	JSONRPC string `json:"jsonrpc"`
	ID      int64  `json:"id"`
	Method  string `json:"method"`
	Params  any    `json:"params,omitempty"`
}

// notification is an outgoing JSON-RPC notification.
type notification struct {
	JSONRPC string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  any    `json:"params,omitempty"`
}

// Position is a zero-based line and UTF-16 character offset.
type Position struct {
	Line      int `json:"line"`
	Character int `json:"character"`
}

// TextDocumentIdentifier names a document.
type TextDocumentIdentifier struct {
	URI string `json:"uri"`
}

// VersionedTextDocumentIdentifier names a document at a version.
type VersionedTextDocumentIdentifier struct {
	URI     string `json:"uri"`
	Version int    `json:"version"`
}

// TextDocumentItem carries a full document on open.
type TextDocumentItem struct {
	URI        string `json:"uri"`
	LanguageID string `json:"languageId"`
	Version    int    `json:"version"`
	Text       string `json:"text"`
}

// DidOpenTextDocumentParams is sent with textDocument/didOpen.
type DidOpenTextDocumentParams struct {
	TextDocument TextDocumentItem `json:"textDocument"`
}

// TextDocumentContentChangeEvent without a range replaces the whole text.
type TextDocumentContentChangeEvent struct {
	Text string `json:"text"`
}

// DidChangeTextDocumentParams is sent with textDocument/didChange.
type DidChangeTextDocumentParams struct {
	TextDocument   VersionedTextDocumentIdentifier  `json:"textDocument"`
	ContentChanges []TextDocumentContentChangeEvent `json:"contentChanges"`
}

// CompletionContext describes how completion was triggered.
type CompletionContext struct {
	TriggerKind      int    `json:"triggerKind"`
	TriggerCharacter string `json:"triggerCharacter,omitempty"`
}

// Completion trigger kinds.
const (
	TriggerInvoked   = 1
	TriggerCharacter = 2
)

// CompletionParams is sent with textDocument/completion.
type CompletionParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	Position     Position               `json:"position"`
	Context      *CompletionContext     `json:"context,omitempty"`
}

// ClientInfo identifies the editor to the server.
type ClientInfo struct {
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`
}

// WorkspaceFolder is a root folder of the workspace.
type WorkspaceFolder struct {
	URI  string `json:"uri"`
	Name string `json:"name"`
}

// InitializeParams is sent with initialize.
type InitializeParams struct {
	ProcessID        int                `json:"processId"`
	ClientInfo       ClientInfo         `json:"clientInfo"`
	RootURI          string             `json:"rootUri,omitempty"`
	Capabilities     ClientCapabilities `json:"capabilities"`
	WorkspaceFolders []WorkspaceFolder  `json:"workspaceFolders,omitempty"`
}

// ClientCapabilities advertises the features this client handles.
type ClientCapabilities struct {
	TextDocument TextDocumentClientCapabilities `json:"textDocument"`
}

// TextDocumentClientCapabilities lists document features.
type TextDocumentClientCapabilities struct {
	Synchronization SynchronizationCapabilities `json:"synchronization"`
	Completion      CompletionCapabilities      `json:"completion"`
}

// SynchronizationCapabilities describes document sync support.
type SynchronizationCapabilities struct {
	DidSave bool `json:"didSave"`
}

// CompletionCapabilities describes completion support.
type CompletionCapabilities struct {
	CompletionItem CompletionItemCapabilities `json:"completionItem"`
	ContextSupport bool                       `json:"contextSupport"`
}

// CompletionItemCapabilities describes completion item support.
type CompletionItemCapabilities struct {
	SnippetSupport bool `json:"snippetSupport"`
}

// FileURI converts a path to a file URI. Only space, '#' and '%' are
// percent-encoded; every other byte is passed through.
func FileURI(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	path = filepath.ToSlash(path)

	var sb strings.Builder
	sb.Grow(len("file://") + len(path))
	sb.WriteString("file://")
	for i := 0; i < len(path); i++ {
		switch c := path[i]; c {
		case ' ':
			sb.WriteString("%20")
		case '#':
			sb.WriteString("%23")
		case '%':
			sb.WriteString("%25")
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

// URIToPath converts a file URI back to a path.
func URIToPath(uri string) string {
	rest, ok := strings.CutPrefix(uri, "file://")
	if !ok {
		return uri
	}
	if p, err := url.PathUnescape(rest); err == nil {
		rest = p
	}
	return filepath.FromSlash(rest)
}

// UTF16Column converts a rune column within line to the UTF-16 code unit
// offset used by Position.Character.
func UTF16Column(line []rune, col int) int {
	if col > len(line) {
		col = len(line)
	}
	n := 0
	for _, r := range line[:col] {
		if w := utf16.RuneLen(r); w > 0 {
			n += w
		} else {
			n++
		}
	}
	return n
}
