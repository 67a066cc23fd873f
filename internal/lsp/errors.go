package lsp

import (
	"errors"
	"fmt"
)

// Errors returned by a Session.
var (
	// ErrNotStarted indicates the session has no running server.
	ErrNotStarted = errors.New("lsp session not started")

	// ErrAlreadyStarted indicates Start was called twice.
	ErrAlreadyStarted = errors.New("lsp session already started")

	// ErrNoServer indicates the language has no server command.
	ErrNoServer = errors.New("no server configured for language")

	// ErrServerNotReady indicates the handshake has not completed.
	ErrServerNotReady = errors.New("server not ready")

	// ErrServerExited indicates the server closed its output stream.
	ErrServerExited = errors.New("server exited")

	// ErrInitializeFailed indicates the server rejected the handshake.
	ErrInitializeFailed = errors.New("server rejected initialize")
)

// RPCError is a JSON-RPC error object returned by the server.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *RPCError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

// JSON-RPC and LSP error codes.
const (
	CodeParseError           = -32700
	CodeInvalidRequest       = -32600
	CodeMethodNotFound       = -32601
	CodeInvalidParams        = -32602
	CodeInternalError        = -32603
	CodeServerNotInitialized = -32002
	CodeRequestCancelled     = -32800
	CodeContentModified      = -32801
)

// ServerError wraps a lifecycle failure with the server command.
type ServerError struct {
	Command string
	Err     error
}

// Error implements the error interface.
func (e *ServerError) Error() string {
	return fmt.Sprintf("server %s: %v", e.Command, e.Err)
}

// Unwrap returns the underlying error.
func (e *ServerError) Unwrap() error {
	return e.Err
}
