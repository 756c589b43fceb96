package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"

	"github.com/jedit-io/jedit/debug"
	"github.com/jedit-io/jedit/edit"
	"github.com/jedit-io/jedit/encode"
	"github.com/jedit-io/jedit/eval"
	"github.com/jedit-io/jedit/format"
	"github.com/jedit-io/jedit/ir"
	"github.com/jedit-io/jedit/libdiff"
	"github.com/jedit-io/jedit/parse"
)

// Session is one client's editing session: a document, its history,
// and the JSON-RPC connection driving it.
type Session struct {
	ID   string
	rwc  io.ReadWriteCloser
	conn jsonrpc2.Conn
	log  *slog.Logger

	// mu guards editor and fmt across concurrently dispatched requests.
	mu     sync.Mutex
	editor *edit.Editor
	fmt    format.Format

	closeOnce sync.Once
}

// SessionConfig contains configuration for creating a session.
type SessionConfig struct {
	Log *slog.Logger

	// Format is the document format used until document/open says
	// otherwise.
	Format format.Format
}

// NewSession creates a new session for the given connection.
func NewSession(id string, rwc io.ReadWriteCloser, cfg *SessionConfig) *Session {
	log := cfg.Log
	if log == nil {
		log = slog.Default()
	}
	return &Session{
		ID:     id,
		rwc:    rwc,
		log:    log.With("session", id),
		editor: edit.New(),
		fmt:    cfg.Format,
	}
}

// Run serves the connection and blocks until the client disconnects or
// ctx is cancelled.
func (s *Session) Run(ctx context.Context) error {
	stream := jsonrpc2.NewStream(s.rwc)
	conn := jsonrpc2.NewConn(stream)
	s.conn = conn
	conn.Go(ctx, s.handle)
	select {
	case <-conn.Done():
	case <-ctx.Done():
		conn.Close()
		<-conn.Done()
	}
	if err := conn.Err(); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Close shuts the connection down.
func (s *Session) Close() error {
	var err error
	s.closeOnce.Do(func() {
		if s.conn != nil {
			err = s.conn.Close()
		} else {
			err = s.rwc.Close()
		}
	})
	return err
}

func (s *Session) handle(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	if debug.Server() {
		debug.Logf("session %s: %s %s", s.ID, req.Method(), req.Params())
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	switch req.Method() {
	case MethodDocumentOpen:
		return s.documentOpen(ctx, reply, req)
	case MethodDocumentText:
		return reply(ctx, s.docState(nil), nil)
	case MethodDocumentUpdate:
		return s.documentUpdate(ctx, reply, req)
	case MethodEditSet:
		var params SetParams
		return s.applyEdit(ctx, reply, req, &params, func() error {
			return s.editor.SetValue(params.Path, params.Value)
		})
	case MethodEditRename:
		var params RenameParams
		return s.applyEdit(ctx, reply, req, &params, func() error {
			return s.editor.Rename(params.Path, params.Key)
		})
	case MethodEditAdd:
		var params AddParams
		return s.applyEdit(ctx, reply, req, &params, func() error {
			return s.editor.AddChild(params.Path, params.Key)
		})
	case MethodEditDelete:
		var params DeleteParams
		return s.applyEdit(ctx, reply, req, &params, func() error {
			return s.editor.Delete(params.Path)
		})
	case MethodEditHoist:
		var params HoistParams
		return s.applyEdit(ctx, reply, req, &params, func() error {
			return s.editor.Hoist(params.Path)
		})
	case MethodEditMove:
		var params MoveParams
		return s.applyEdit(ctx, reply, req, &params, func() error {
			mode, err := edit.ParseMode(params.Mode)
			if err != nil {
				return err
			}
			return s.editor.Move(params.Source, params.Target, mode)
		})
	case MethodEditGroup:
		var params GroupParams
		return s.applyEdit(ctx, reply, req, &params, func() error {
			return s.editor.Group(params.Paths, params.Name)
		})
	case MethodEditPatch:
		var params PatchParams
		return s.applyEdit(ctx, reply, req, &params, func() error {
			return s.editor.ApplyJSONPatch(params.Patch)
		})
	case MethodEditSelect:
		return s.editSelect(ctx, reply, req)
	case MethodHistoryUndo:
		return s.historyStep(ctx, reply, s.editor.Undo)
	case MethodHistoryRedo:
		return s.historyStep(ctx, reply, s.editor.Redo)
	default:
		return jsonrpc2.MethodNotFoundHandler(ctx, reply, req)
	}
}

func (s *Session) documentOpen(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	var params OpenParams
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return reply(ctx, nil, fmt.Errorf("%w: %s", jsonrpc2.ErrParse, err))
	}
	f := s.fmt
	if params.Format != "" {
		pf, err := format.ParseFormat(params.Format)
		if err != nil {
			return reply(ctx, nil, rpcError(err))
		}
		f = pf
	}
	node, err := parse.Parse([]byte(params.Text), parse.ParseFormat(f))
	if err != nil {
		return reply(ctx, nil, rpcError(err))
	}
	s.fmt = f
	s.editor = edit.NewFromNode(node)
	return reply(ctx, s.docState(nil), nil)
}

// documentUpdate replaces the document from client-edited text.  A
// parse failure leaves the document alone and reports diagnostics so
// the client can mark up its text view.
func (s *Session) documentUpdate(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	var params UpdateParams
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return reply(ctx, nil, fmt.Errorf("%w: %s", jsonrpc2.ErrParse, err))
	}
	node, err := parse.Parse([]byte(params.Text), parse.ParseFormat(s.fmt))
	if err != nil {
		return reply(ctx, &UpdateResult{Diagnostics: diagnostics(err)}, nil)
	}
	before := s.editor.Root()
	s.editor.Replace(node)
	return reply(ctx, &UpdateResult{Doc: s.docState(before)}, nil)
}

func (s *Session) editSelect(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	var params SelectParams
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return reply(ctx, nil, fmt.Errorf("%w: %s", jsonrpc2.ErrParse, err))
	}
	paths, err := eval.Select(s.editor.Root(), params.Expr)
	if err != nil {
		return reply(ctx, nil, rpcError(err))
	}
	return reply(ctx, &SelectResult{Paths: paths}, nil)
}

func (s *Session) applyEdit(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request, params any, op func() error) error {
	if err := json.Unmarshal(req.Params(), params); err != nil {
		return reply(ctx, nil, fmt.Errorf("%w: %s", jsonrpc2.ErrParse, err))
	}
	before := s.editor.Root()
	if err := op(); err != nil {
		return reply(ctx, nil, rpcError(err))
	}
	return reply(ctx, s.docState(before), nil)
}

func (s *Session) historyStep(ctx context.Context, reply jsonrpc2.Replier, step func() bool) error {
	before := s.editor.Root()
	ok := step()
	res := &HistoryResult{Ok: ok}
	if ok {
		res.Doc = s.docState(before)
	} else {
		res.Doc = s.docState(nil)
	}
	return reply(ctx, res, nil)
}

// docState encodes the current document.  When before is non-nil the
// changed paths relative to it are included.
func (s *Session) docState(before *ir.Node) *DocState {
	root := s.editor.Root()
	table := s.editor.PathTable()
	paths := make([]string, 0, len(table))
	for i := range table {
		paths = append(paths, table[i].Path)
	}
	st := &DocState{
		Text:  encode.MustString(root, encode.EncodeFormat(s.fmt)),
		Paths: paths,
	}
	if before != nil {
		st.Changed = libdiff.Paths(before, root)
	}
	return st
}

// rpcError maps domain sentinel errors onto protocol error codes.
func rpcError(err error) error {
	switch {
	case errors.Is(err, ir.ErrPath):
		return jsonrpc2.NewError(CodePathError, err.Error())
	case errors.Is(err, edit.ErrKeyConflict):
		return jsonrpc2.NewError(CodeKeyConflict, err.Error())
	case errors.Is(err, edit.ErrInvalidTarget):
		return jsonrpc2.NewError(CodeInvalidTarget, err.Error())
	case errors.Is(err, format.ErrBadFormat):
		return jsonrpc2.NewError(CodeBadFormat, err.Error())
	default:
		return err
	}
}

// diagnostics converts a parse failure into client diagnostics, using
// zero-based positions.
func diagnostics(err error) []protocol.Diagnostic {
	var pos protocol.Position
	var synErr *parse.SyntaxError
	if errors.As(err, &synErr) {
		if synErr.Line > 0 {
			pos.Line = uint32(synErr.Line - 1)
		}
		if synErr.Col > 0 {
			pos.Character = uint32(synErr.Col - 1)
		}
	}
	return []protocol.Diagnostic{
		{
			Range:    protocol.Range{Start: pos, End: pos},
			Severity: protocol.DiagnosticSeverityError,
			Source:   "jedit",
			Message:  err.Error(),
		},
	}
}
