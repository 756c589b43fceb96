package parse

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/jedit-io/jedit/format"
)

// SyntaxError is a position-carrying exchange text error. It wraps
// format.ErrBadFormat; Line and Col are one-based.
type SyntaxError struct {
	Line, Col int
	Msg       string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%v: %d:%d: %s", format.ErrBadFormat, e.Line, e.Col, e.Msg)
}

func (e *SyntaxError) Unwrap() error {
	return format.ErrBadFormat
}

// checkJSON validates that d is a single well-formed JSON value. The
// YAML-superset parser downstream is forgiving; JSON input must not
// be.
func checkJSON(d []byte) error {
	dec := json.NewDecoder(bytes.NewReader(d))
	var v any
	if err := dec.Decode(&v); err != nil {
		return jsonError(d, err)
	}
	if dec.More() {
		line, col := lineCol(d, dec.InputOffset())
		return &SyntaxError{Line: line, Col: col, Msg: "trailing content after document"}
	}
	return nil
}

func jsonError(d []byte, err error) error {
	var syn *json.SyntaxError
	if errors.As(err, &syn) {
		line, col := lineCol(d, syn.Offset)
		return &SyntaxError{Line: line, Col: col, Msg: syn.Error()}
	}
	if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
		line, col := lineCol(d, int64(len(d)))
		return &SyntaxError{Line: line, Col: col, Msg: "unexpected end of document"}
	}
	return fmt.Errorf("%w: %v", format.ErrBadFormat, err)
}
