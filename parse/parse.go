// Package parse turns exchange text into IR trees.
package parse

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"

	"github.com/jedit-io/jedit/format"
	"github.com/jedit-io/jedit/ir"
)

// Parse parses exchange text into an IR tree. Object key order in the
// source text becomes the object's insertion order.
//
// The default format is JSON; YAML input is accepted with
// ParseFormat(format.YAMLFormat). Errors wrap format.ErrBadFormat and,
// where positions are known, are a *SyntaxError.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{format: format.JSONFormat}
	for _, f := range opts {
		f(pOpts)
	}
	if len(bytes.TrimSpace(d)) == 0 {
		return nil, fmt.Errorf("%w: empty document", format.ErrBadFormat)
	}
	if pOpts.format.IsJSON() {
		if err := checkJSON(d); err != nil {
			return nil, err
		}
	}
	// YAML is a superset of JSON, so one AST serves both formats.
	file, err := parser.ParseBytes(d, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", format.ErrBadFormat, err)
	}
	if len(file.Docs) != 1 {
		return nil, fmt.Errorf("%w: expected one document, got %d",
			format.ErrBadFormat, len(file.Docs))
	}
	body := file.Docs[0].Body
	if body == nil {
		return nil, fmt.Errorf("%w: empty document", format.ErrBadFormat)
	}
	return fromAST(body)
}

func fromAST(n ast.Node) (*ir.Node, error) {
	switch v := n.(type) {
	case *ast.MappingNode:
		return fromMapping(v.Values)
	case *ast.MappingValueNode:
		return fromMapping([]*ast.MappingValueNode{v})
	case *ast.SequenceNode:
		vals := make([]*ir.Node, 0, len(v.Values))
		for _, elt := range v.Values {
			y, err := fromAST(elt)
			if err != nil {
				return nil, err
			}
			vals = append(vals, y)
		}
		return ir.FromSlice(vals), nil
	case *ast.StringNode:
		return ir.FromString(v.Value), nil
	case *ast.LiteralNode:
		return ir.FromString(v.Value.Value), nil
	case *ast.IntegerNode:
		return fromInteger(v)
	case *ast.FloatNode:
		res := ir.FromFloat(v.Value)
		res.Number = v.GetToken().Value
		return res, nil
	case *ast.BoolNode:
		return ir.FromBool(v.Value), nil
	case *ast.NullNode:
		return ir.Null(), nil
	case *ast.InfinityNode:
		res := ir.FromFloat(v.Value)
		res.Number = v.GetToken().Value
		return res, nil
	case *ast.NanNode:
		res := ir.FromFloat(math.NaN())
		res.Number = v.GetToken().Value
		return res, nil
	default:
		return nil, fmt.Errorf("%w: unsupported %s node", format.ErrBadFormat, n.Type())
	}
}

func fromMapping(mvs []*ast.MappingValueNode) (*ir.Node, error) {
	kvs := make([]ir.KeyVal, 0, len(mvs))
	seen := map[string]bool{}
	for _, mv := range mvs {
		key, err := keyString(mv.Key)
		if err != nil {
			return nil, err
		}
		if seen[key] {
			return nil, fmt.Errorf("%w: duplicate key %q", format.ErrBadFormat, key)
		}
		seen[key] = true
		val, err := fromAST(mv.Value)
		if err != nil {
			return nil, err
		}
		kvs = append(kvs, ir.KeyVal{Key: key, Val: val})
	}
	return ir.FromPairs(kvs), nil
}

func keyString(k ast.MapKeyNode) (string, error) {
	switch v := k.(type) {
	case *ast.StringNode:
		return v.Value, nil
	case *ast.IntegerNode, *ast.FloatNode, *ast.BoolNode, *ast.NullNode:
		return k.GetToken().Value, nil
	default:
		return "", fmt.Errorf("%w: unsupported key %s node", format.ErrBadFormat, k.Type())
	}
}

func fromInteger(n *ast.IntegerNode) (*ir.Node, error) {
	lexeme := n.GetToken().Value
	switch v := n.Value.(type) {
	case int64:
		res := ir.FromInt(v)
		res.Number = lexeme
		return res, nil
	case uint64:
		if v <= math.MaxInt64 {
			res := ir.FromInt(int64(v))
			res.Number = lexeme
			return res, nil
		}
		// out of int64 range: keep the lexeme only
		return &ir.Node{Type: ir.NumberType, Number: lexeme}, nil
	case int:
		res := ir.FromInt(int64(v))
		res.Number = lexeme
		return res, nil
	default:
		return nil, fmt.Errorf("%w: unrepresentable number %q", format.ErrBadFormat, lexeme)
	}
}

// lineCol converts a byte offset to one-based line and column.
func lineCol(d []byte, off int64) (int, int) {
	if off > int64(len(d)) {
		off = int64(len(d))
	}
	head := d[:off]
	line := bytes.Count(head, []byte("\n")) + 1
	col := int(off)
	if i := bytes.LastIndexByte(head, '\n'); i != -1 {
		col = int(off) - i - 1
	}
	return line, col + 1
}

// MustParse is Parse, panicking on error. For tests and fixtures.
func MustParse(text string, opts ...ParseOption) *ir.Node {
	n, err := Parse([]byte(text), opts...)
	if err != nil {
		panic(err)
	}
	return n
}

// String parses a string fragment; a convenience for callers holding
// text rather than bytes.
func String(text string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(strings.TrimSpace(text)), opts...)
}
