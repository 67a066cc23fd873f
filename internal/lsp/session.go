package lsp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"

	"github.com/dshills/tasci/internal/logging"
)

// State is the lifecycle state of a Session.
type State int

const (
	StateUnstarted State = iota
	StateSpawned
	StateInitializing
	StateReady
	StateClosed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateUnstarted:
		return "unstarted"
	case StateSpawned:
		return "spawned"
	case StateInitializing:
		return "initializing"
	case StateReady:
		return "ready"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Chunk is one read from the server's output. Err is set on the final
// chunk of the stream.
type Chunk struct {
	Data []byte
	Err  error
}

// EventKind classifies an Event.
type EventKind int

const (
	// EventReady reports a completed handshake.
	EventReady EventKind = iota
	// EventCompletion carries the response to the pending completion request.
	EventCompletion
	// EventClosed reports that the server went away.
	EventClosed
)

// Event is produced by HandleChunk for the editor loop.
type Event struct {
	Kind   EventKind
	ID     int64
	Labels []string
	Err    error
}

// Config describes the server process.
type Config struct {
	Command    string
	Args       []string
	Env        []string // appended to the current environment
	LanguageID string
	RootDir    string

	// ShutdownTimeout bounds the wait for the shutdown reply.
	ShutdownTimeout time.Duration
	// ExitGrace is how long to wait for the process to exit before killing it.
	ExitGrace time.Duration

	Logger *logging.Logger
}

const (
	defaultShutdownTimeout = 2 * time.Second
	defaultExitGrace       = 500 * time.Millisecond
	chunkBacklog           = 64
	readSize               = 32 * 1024
)

// pendingOpen is a didOpen held back until the handshake completes.
type pendingOpen struct {
	uri  string
	text string
}

// Session is a client connection to one language server process.
//
// A Session is driven from a single goroutine. Only the internal reader
// goroutine runs concurrently, and it only moves bytes into the channel
// returned by Incoming.
type Session struct {
	id     string
	cfg    Config
	log    *logging.Logger
	state  State
	closed error

	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stdout io.ReadCloser
	chunks chan Chunk
	done   chan struct{}
	reader chan struct{}

	dec        Decoder
	nextID     int64
	initID     int64
	shutdownID int64
	pendingID  int64
	docVersion int

	pending  []pendingOpen
	opened   map[string]bool
	triggers []string
}

// NewSession creates an unstarted session.
func NewSession(cfg Config) *Session {
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}
	if cfg.ExitGrace <= 0 {
		cfg.ExitGrace = defaultExitGrace
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Discard
	}
	id := uuid.New().String()
	return &Session{
		id:  id,
		cfg: cfg,
		log: logger.WithComponent("lsp").WithFields(map[string]any{
			"session": id[:8],
			"server":  cfg.Command,
		}),
		opened: make(map[string]bool),
	}
}

// ID returns the session identifier used in logs.
func (s *Session) ID() string { return s.id }

// State returns the lifecycle state.
func (s *Session) State() State { return s.state }

// Ready reports whether completion requests can be sent.
func (s *Session) Ready() bool { return s.state == StateReady }

// LanguageID returns the protocol language identifier.
func (s *Session) LanguageID() string { return s.cfg.LanguageID }

// Command returns the server command.
func (s *Session) Command() string { return s.cfg.Command }

// PendingID returns the id of the outstanding completion request, or 0.
func (s *Session) PendingID() int64 { return s.pendingID }

// DocVersion returns the version sent with the last document sync.
func (s *Session) DocVersion() int { return s.docVersion }

// TriggerCharacters returns the completion trigger characters advertised
// by the server.
func (s *Session) TriggerCharacters() []string { return s.triggers }

// Err returns the reason the session closed, if any.
func (s *Session) Err() error { return s.closed }

// Incoming returns the channel carrying raw server output. It is nil when
// no server is attached.
func (s *Session) Incoming() <-chan Chunk { return s.chunks }

// Start launches the server process and sends the initialize request. On
// failure the session is Closed and the error is returned.
func (s *Session) Start() error {
	if s.state != StateUnstarted {
		return ErrAlreadyStarted
	}
	if s.cfg.Command == "" {
		s.state = StateClosed
		s.closed = ErrNoServer
		return ErrNoServer
	}

	cmd := exec.Command(s.cfg.Command, s.cfg.Args...)
	cmd.Dir = s.cfg.RootDir
	if len(s.cfg.Env) > 0 {
		cmd.Env = append(os.Environ(), s.cfg.Env...)
	}
	cmd.WaitDelay = s.cfg.ExitGrace

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return s.fail(fmt.Errorf("stdin pipe: %w", err))
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		stdin.Close()
		return s.fail(fmt.Errorf("stdout pipe: %w", err))
	}
	if err := cmd.Start(); err != nil {
		stdin.Close()
		stdout.Close()
		return s.fail(fmt.Errorf("spawn: %w", err))
	}

	s.cmd = cmd
	s.log.Info("spawned pid %d", cmd.Process.Pid)
	s.attach(stdout, stdin)
	return s.initialize()
}

func (s *Session) fail(err error) error {
	err = &ServerError{Command: s.cfg.Command, Err: err}
	s.log.Warn("start failed: %v", err)
	s.state = StateClosed
	s.closed = err
	return err
}

// attach connects the session to the server's output and input streams
// and starts the reader goroutine.
func (s *Session) attach(r io.ReadCloser, w io.WriteCloser) {
	s.stdin = w
	s.stdout = r
	s.chunks = make(chan Chunk, chunkBacklog)
	s.done = make(chan struct{})
	s.reader = make(chan struct{})
	s.state = StateSpawned
	go readLoop(r, s.chunks, s.done, s.reader)
}

// readLoop forwards everything read from r until r fails or done closes.
func readLoop(r io.Reader, out chan<- Chunk, done <-chan struct{}, finished chan<- struct{}) {
	defer close(finished)
	buf := make([]byte, readSize)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			data := make([]byte, n)
			copy(data, buf[:n])
			select {
			case out <- Chunk{Data: data}:
			case <-done:
				return
			}
		}
		if err != nil {
			select {
			case out <- Chunk{Err: err}:
			case <-done:
			}
			return
		}
	}
}

func (s *Session) initialize() error {
	root := s.cfg.RootDir
	if root == "" {
		root, _ = os.Getwd()
	}
	params := InitializeParams{
		ProcessID:  os.Getpid(),
		ClientInfo: ClientInfo{Name: "tasci"},
		RootURI:    FileURI(root),
		Capabilities: ClientCapabilities{
			TextDocument: TextDocumentClientCapabilities{
				Completion: CompletionCapabilities{ContextSupport: true},
			},
		},
		WorkspaceFolders: []WorkspaceFolder{{URI: FileURI(root), Name: filepath.Base(root)}},
	}

	id := s.allocID()
	if err := s.call(id, "initialize", params); err != nil {
		return err
	}
	s.initID = id
	s.state = StateInitializing
	return nil
}

func (s *Session) allocID() int64 {
	s.nextID++
	return s.nextID
}

func (s *Session) write(v any) error {
	if s.stdin == nil {
		return ErrNotStarted
	}
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	return s.writeRaw(payload)
}

func (s *Session) writeRaw(payload []byte) error {
	if s.stdin == nil {
		return ErrNotStarted
	}
	if _, err := s.stdin.Write(Encode(payload)); err != nil {
		s.log.Warn("write failed: %v", err)
		s.Close()
		s.closed = fmt.Errorf("%w: %v", ErrServerExited, err)
		return s.closed
	}
	return nil
}

func (s *Session) call(id int64, method string, params any) error {
	return s.write(request{JSONRPC: "2.0", ID: id, Method: method, Params: params})
}

func (s *Session) notify(method string, params any) error {
	return s.write(notification{JSONRPC: "2.0", Method: method, Params: params})
}

// Poll makes one non-blocking attempt to read server output and returns
// the resulting events.
func (s *Session) Poll() []Event {
	if s.chunks == nil {
		return nil
	}
	select {
	case c, ok := <-s.chunks:
		return s.HandleChunk(c, ok)
	default:
		return nil
	}
}

// HandleChunk consumes one value received from Incoming. ok is false when
// the channel was closed.
func (s *Session) HandleChunk(c Chunk, ok bool) []Event {
	if s.state == StateClosed || s.state == StateUnstarted {
		return nil
	}
	if !ok || c.Err != nil {
		err := c.Err
		if err == nil || errors.Is(err, io.EOF) {
			err = ErrServerExited
		}
		s.log.Warn("server output ended: %v", err)
		s.Close()
		s.closed = err
		return []Event{{Kind: EventClosed, Err: err}}
	}

	s.dec.Feed(c.Data)
	before := s.dec.Resets()
	var events []Event
	for s.state != StateClosed {
		msg, more := s.dec.Next()
		if !more {
			break
		}
		if ev, ok := s.handleMessage(msg); ok {
			events = append(events, ev)
		}
	}
	if n := s.dec.Resets() - before; n > 0 {
		s.log.Debug("dropped malformed input %d time(s)", n)
	}
	if s.state == StateClosed {
		events = append(events, Event{Kind: EventClosed, Err: s.closed})
	}
	return events
}

func (s *Session) handleMessage(msg []byte) (Event, bool) {
	if !gjson.ValidBytes(msg) {
		s.log.Debug("dropping invalid JSON message")
		return Event{}, false
	}
	res := gjson.ParseBytes(msg)
	id := res.Get("id")
	method := res.Get("method")

	switch {
	case method.Exists() && id.Exists():
		s.log.Debug("answering server request %s", method.String())
		reply, err := ServerReply(id, method.String(), res.Get("params"))
		if err != nil {
			s.log.Debug("building reply: %v", err)
			return Event{}, false
		}
		_ = s.writeRaw(reply)
		return Event{}, false
	case method.Exists():
		s.log.Debug("ignoring notification %s", method.String())
		return Event{}, false
	case !id.Exists() || id.Type != gjson.Number:
		return Event{}, false
	}

	respID := id.Int()
	switch {
	case s.state == StateInitializing && respID == s.initID:
		return s.handleInitialize(res)
	case s.pendingID != 0 && respID == s.pendingID:
		s.pendingID = 0
		if rpcErr := parseRPCError(res); rpcErr != nil {
			return Event{Kind: EventCompletion, ID: respID, Err: rpcErr}, true
		}
		return Event{Kind: EventCompletion, ID: respID, Labels: CompletionLabels(res.Get("result"))}, true
	case respID == s.shutdownID:
		return Event{}, false
	default:
		s.log.Debug("dropping stale response %d", respID)
		return Event{}, false
	}
}

func (s *Session) handleInitialize(res gjson.Result) (Event, bool) {
	if rpcErr := parseRPCError(res); rpcErr != nil {
		err := fmt.Errorf("%w: %v", ErrInitializeFailed, rpcErr)
		s.log.Warn("%v", err)
		s.Close()
		s.closed = err
		return Event{}, false
	}

	s.triggers = s.triggers[:0]
	for _, tc := range res.Get("result.capabilities.completionProvider.triggerCharacters").Array() {
		s.triggers = append(s.triggers, tc.String())
	}

	s.state = StateReady
	s.log.Info("handshake complete")
	if err := s.notify("initialized", struct{}{}); err != nil {
		return Event{}, false
	}

	pending := s.pending
	s.pending = nil
	for _, p := range pending {
		if err := s.sendOpen(p.uri, p.text); err != nil {
			return Event{}, false
		}
	}
	return Event{Kind: EventReady}, true
}

func parseRPCError(res gjson.Result) *RPCError {
	e := res.Get("error")
	if !e.Exists() || e.Type == gjson.Null {
		return nil
	}
	return &RPCError{Code: int(e.Get("code").Int()), Message: e.Get("message").String()}
}

// CompletionLabels extracts item labels from a completion result, which
// is either a CompletionList or a bare array of items.
func CompletionLabels(result gjson.Result) []string {
	items := result
	if result.IsObject() {
		items = result.Get("items")
	}
	if !items.IsArray() {
		return nil
	}
	var labels []string
	items.ForEach(func(_, item gjson.Result) bool {
		if label := item.Get("label").String(); label != "" {
			labels = append(labels, label)
		}
		return true
	})
	return labels
}

// DidOpen announces a document. Before the handshake completes the
// notification is held and sent once the session is Ready.
func (s *Session) DidOpen(uri, text string) error {
	switch s.state {
	case StateSpawned, StateInitializing:
		for i := range s.pending {
			if s.pending[i].uri == uri {
				s.pending[i].text = text
				return nil
			}
		}
		s.pending = append(s.pending, pendingOpen{uri: uri, text: text})
		return nil
	case StateReady:
		if s.opened[uri] {
			return s.DidChange(uri, text)
		}
		return s.sendOpen(uri, text)
	default:
		return ErrNotStarted
	}
}

func (s *Session) sendOpen(uri, text string) error {
	s.docVersion++
	s.opened[uri] = true
	return s.notify("textDocument/didOpen", DidOpenTextDocumentParams{
		TextDocument: TextDocumentItem{
			URI:        uri,
			LanguageID: s.cfg.LanguageID,
			Version:    s.docVersion,
			Text:       text,
		},
	})
}

// DidChange sends the full document text with the next version. A document
// that was never opened is opened instead.
func (s *Session) DidChange(uri, text string) error {
	switch s.state {
	case StateSpawned, StateInitializing:
		return s.DidOpen(uri, text)
	case StateReady:
	default:
		return ErrNotStarted
	}
	if !s.opened[uri] {
		return s.sendOpen(uri, text)
	}
	s.docVersion++
	return s.notify("textDocument/didChange", DidChangeTextDocumentParams{
		TextDocument:   VersionedTextDocumentIdentifier{URI: uri, Version: s.docVersion},
		ContentChanges: []TextDocumentContentChangeEvent{{Text: text}},
	})
}

// Completion requests completions at pos. The returned id replaces any
// earlier pending request, whose response will be dropped.
func (s *Session) Completion(uri string, pos Position, trigger string) (int64, error) {
	if s.state != StateReady {
		return 0, ErrServerNotReady
	}
	ctx := &CompletionContext{TriggerKind: TriggerInvoked}
	if trigger != "" {
		ctx = &CompletionContext{TriggerKind: TriggerCharacter, TriggerCharacter: trigger}
	}
	id := s.allocID()
	s.pendingID = id
	err := s.call(id, "textDocument/completion", CompletionParams{
		TextDocument: TextDocumentIdentifier{URI: uri},
		Position:     pos,
		Context:      ctx,
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// CancelPending forgets the outstanding completion request so that its
// response is dropped.
func (s *Session) CancelPending() { s.pendingID = 0 }

// Shutdown performs the graceful shutdown sequence: the shutdown request,
// a bounded wait for its reply, the exit notification and process
// termination. It always leaves the session Closed.
func (s *Session) Shutdown(ctx context.Context) error {
	if s.state == StateClosed || s.state == StateUnstarted {
		s.Close()
		return nil
	}

	var err error
	if s.state == StateInitializing || s.state == StateReady {
		id := s.allocID()
		s.shutdownID = id
		if err = s.call(id, "shutdown", nil); err == nil {
			err = s.awaitResponse(ctx, id)
			if s.state != StateClosed {
				if exitErr := s.notify("exit", nil); err == nil {
					err = exitErr
				}
			}
		}
	}
	if s.state != StateClosed {
		s.Close()
	}
	s.closed = nil
	return err
}

// awaitResponse blocks until the response with the given id arrives, the
// stream ends, the shutdown timeout passes or ctx is done.
func (s *Session) awaitResponse(ctx context.Context, id int64) error {
	timer := time.NewTimer(s.cfg.ShutdownTimeout)
	defer timer.Stop()

	for {
		select {
		case c, ok := <-s.chunks:
			if !ok || c.Err != nil {
				return ErrServerExited
			}
			s.dec.Feed(c.Data)
			for {
				msg, more := s.dec.Next()
				if !more {
					break
				}
				if gjson.GetBytes(msg, "id").Int() == id && !gjson.GetBytes(msg, "method").Exists() {
					return nil
				}
			}
		case <-timer.C:
			s.log.Warn("no reply to shutdown after %v", s.cfg.ShutdownTimeout)
			return context.DeadlineExceeded
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Close releases the process and pipes and resets the session. It is safe
// to call more than once.
func (s *Session) Close() {
	if s.state == StateClosed && s.stdin == nil {
		return
	}
	if s.done != nil {
		close(s.done)
	}
	if s.stdin != nil {
		s.stdin.Close()
	}

	if s.cmd != nil && s.cmd.Process != nil {
		select {
		case <-s.reader:
		case <-time.After(s.cfg.ExitGrace):
			s.log.Debug("killing server")
			_ = s.cmd.Process.Kill()
		}
		if err := s.cmd.Wait(); err != nil {
			s.log.Debug("server exit: %v", err)
		}
	} else if s.stdout != nil {
		s.stdout.Close()
	}

	s.cmd = nil
	s.stdin = nil
	s.stdout = nil
	s.chunks = nil
	s.done = nil
	s.reader = nil
	s.dec.Reset()
	s.initID = 0
	s.shutdownID = 0
	s.pendingID = 0
	s.docVersion = 0
	s.pending = nil
	s.opened = make(map[string]bool)
	s.triggers = nil
	s.state = StateClosed
	s.log.Info("session closed")
}
