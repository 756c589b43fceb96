// Package eval selects document nodes with compiled expressions.
//
// Expressions are expr-lang programs evaluated once per node against
// the variables key, path, value, type, and depth. Select returns the
// paths of matching nodes in document order; the result feeds
// multi-path operations such as grouping.
package eval

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/jedit-io/jedit/ir"
	"github.com/jedit-io/jedit/ir/dpath"
)

// Compile compiles src into a boolean selection program.
func Compile(src string) (*vm.Program, error) {
	prg, err := expr.Compile(src, expr.AsBool(), expr.AllowUndefinedVariables())
	if err != nil {
		return nil, fmt.Errorf("compiling selection %q: %w", src, err)
	}
	return prg, nil
}

// Select returns the paths of the nodes in doc matching src, in
// depth-first pre-order. The root is matchable under its empty path.
func Select(doc *ir.Node, src string) ([]string, error) {
	prg, err := Compile(src)
	if err != nil {
		return nil, err
	}
	return Run(doc, prg)
}

// Run evaluates a compiled selection over every node of doc.
func Run(doc *ir.Node, prg *vm.Program) ([]string, error) {
	var (
		res  []string
		walk func(n *ir.Node, path string, depth int) error
	)
	walk = func(n *ir.Node, path string, depth int) error {
		env := map[string]any{
			"key":   n.ParentField,
			"path":  path,
			"value": ir.ToAny(n),
			"type":  n.Type.String(),
			"depth": depth,
		}
		out, err := expr.Run(prg, env)
		if err != nil {
			return fmt.Errorf("selecting at %q: %w", path, err)
		}
		if ok, _ := out.(bool); ok {
			res = append(res, path)
		}
		for i, v := range n.Values {
			child := childPath(n, path, i)
			if err := walk(v, child, depth+1); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(doc, "", 0); err != nil {
		return nil, err
	}
	return res, nil
}

func childPath(n *ir.Node, path string, i int) string {
	if n.Type == ir.ObjectType {
		seg := dpath.NewField(n.Fields[i]).SegmentString()
		if path == "" {
			return seg
		}
		return path + "." + seg
	}
	return fmt.Sprintf("%s[%d]", path, i)
}
