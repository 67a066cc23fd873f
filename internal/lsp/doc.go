// Package lsp is the language server client used for completion.
//
// A Session owns one server process and walks it through
// Unstarted → Spawned → Initializing → Ready → Closed. Messages use the
// JSON-RPC 2.0 base protocol with Content-Length framing.
//
// # Threading
//
// A Session is driven by the editor loop. A reader goroutine copies raw
// server output into the channel returned by Incoming; the loop either
// selects on that channel and passes each value to HandleChunk, or calls
// Poll once per iteration for a non-blocking read. Framing, JSON decoding
// and id correlation all happen on the loop goroutine.
//
// # Quick Start
//
//	s := lsp.NewSession(lsp.Config{Command: "gopls", LanguageID: "go"})
//	if err := s.Start(); err != nil {
//	    // fall back to local completion
//	}
//	defer s.Shutdown(ctx)
//
//	s.DidOpen(lsp.FileURI(path), text)
//	id, _ := s.Completion(uri, lsp.Position{Line: 3, Character: 7}, ".")
//
// Only the response to the most recent completion request is delivered;
// earlier ones are dropped when they arrive.
package lsp
