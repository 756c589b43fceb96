package server

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"go.lsp.dev/jsonrpc2"

	"github.com/jedit-io/jedit/format"
)

func startSession(t *testing.T) jsonrpc2.Conn {
	t.Helper()
	clientEnd, serverEnd := net.Pipe()
	ctx, cancel := context.WithCancel(context.Background())

	session := NewSession("test", serverEnd, &SessionConfig{
		Format: format.JSONFormat,
	})
	done := make(chan struct{})
	go func() {
		defer close(done)
		session.Run(ctx)
	}()

	conn := jsonrpc2.NewConn(jsonrpc2.NewStream(clientEnd))
	conn.Go(ctx, jsonrpc2.MethodNotFoundHandler)

	t.Cleanup(func() {
		conn.Close()
		cancel()
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Errorf("session did not shut down")
		}
	})
	return conn
}

func call(t *testing.T, conn jsonrpc2.Conn, method string, params, result any) error {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err := conn.Call(ctx, method, params, result)
	return err
}

func asError(err error, target **jsonrpc2.Error) bool {
	return errors.As(err, target)
}

func TestSessionOpenAndEdit(t *testing.T) {
	conn := startSession(t)

	var doc DocState
	err := call(t, conn, MethodDocumentOpen,
		&OpenParams{Text: `{"a": 1, "b": [2, 3]}`}, &doc)
	if err != nil {
		t.Fatal(err)
	}
	wantPaths := []string{"", "a", "b", "b[0]", "b[1]"}
	if len(doc.Paths) != len(wantPaths) {
		t.Fatalf("paths = %v", doc.Paths)
	}
	for i := range wantPaths {
		if doc.Paths[i] != wantPaths[i] {
			t.Errorf("paths[%d] = %q, want %q", i, doc.Paths[i], wantPaths[i])
		}
	}

	err = call(t, conn, MethodEditSet, &SetParams{Path: "a", Value: "9"}, &doc)
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Changed) != 1 || doc.Changed[0] != "a" {
		t.Errorf("changed = %v, want [a]", doc.Changed)
	}

	var hist HistoryResult
	if err := call(t, conn, MethodHistoryUndo, nil, &hist); err != nil {
		t.Fatal(err)
	}
	if !hist.Ok {
		t.Fatal("undo reported nothing to undo")
	}
	if len(hist.Doc.Changed) != 1 || hist.Doc.Changed[0] != "a" {
		t.Errorf("undo changed = %v", hist.Doc.Changed)
	}
	if err := call(t, conn, MethodHistoryUndo, nil, &hist); err != nil {
		t.Fatal(err)
	}
	if hist.Ok {
		t.Errorf("undo past the beginning reported ok")
	}
}

func TestSessionErrorCodes(t *testing.T) {
	conn := startSession(t)

	var doc DocState
	if err := call(t, conn, MethodDocumentOpen,
		&OpenParams{Text: `{"a": 1, "b": 2}`}, &doc); err != nil {
		t.Fatal(err)
	}

	err := call(t, conn, MethodEditRename, &RenameParams{Path: "a", Key: "b"}, &doc)
	if err == nil {
		t.Fatal("expected conflict error")
	}
	var rpcErr *jsonrpc2.Error
	if !asError(err, &rpcErr) || rpcErr.Code != CodeKeyConflict {
		t.Errorf("rename conflict error = %v, want code %d", err, CodeKeyConflict)
	}

	err = call(t, conn, MethodEditDelete, &DeleteParams{Path: "zz"}, &doc)
	if err == nil {
		t.Fatal("expected path error")
	}
	if !asError(err, &rpcErr) || rpcErr.Code != CodePathError {
		t.Errorf("delete path error = %v, want code %d", err, CodePathError)
	}
}

func TestSessionUpdateDiagnostics(t *testing.T) {
	conn := startSession(t)

	var doc DocState
	if err := call(t, conn, MethodDocumentOpen,
		&OpenParams{Text: `{"a": 1}`}, &doc); err != nil {
		t.Fatal(err)
	}

	var upd UpdateResult
	err := call(t, conn, MethodDocumentUpdate, &UpdateParams{Text: "{\n  \"a\" 1\n}"}, &upd)
	if err != nil {
		t.Fatal(err)
	}
	if upd.Doc != nil {
		t.Errorf("bad text replaced the document")
	}
	if len(upd.Diagnostics) == 0 {
		t.Fatal("no diagnostics for bad text")
	}

	// document untouched
	if err := call(t, conn, MethodDocumentText, nil, &doc); err != nil {
		t.Fatal(err)
	}
	if len(doc.Paths) != 2 {
		t.Errorf("paths after failed update = %v", doc.Paths)
	}

	var upd2 UpdateResult
	err = call(t, conn, MethodDocumentUpdate, &UpdateParams{Text: `{"a": 1, "b": 2}`}, &upd2)
	if err != nil {
		t.Fatal(err)
	}
	if upd2.Doc == nil || len(upd2.Diagnostics) != 0 {
		t.Fatalf("good update result = %+v", upd2)
	}
	if len(upd2.Doc.Changed) != 1 || upd2.Doc.Changed[0] != "b" {
		t.Errorf("update changed = %v, want [b]", upd2.Doc.Changed)
	}
}

func TestSessionSelect(t *testing.T) {
	conn := startSession(t)

	var doc DocState
	if err := call(t, conn, MethodDocumentOpen,
		&OpenParams{Text: `{"a": 1, "b": "s", "c": 2}`}, &doc); err != nil {
		t.Fatal(err)
	}
	var res SelectResult
	if err := call(t, conn, MethodEditSelect,
		&SelectParams{Expr: `type == "Number"`}, &res); err != nil {
		t.Fatal(err)
	}
	if len(res.Paths) != 2 || res.Paths[0] != "a" || res.Paths[1] != "c" {
		t.Errorf("select = %v", res.Paths)
	}
}
