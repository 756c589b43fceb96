package encode

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jedit-io/jedit/format"
	"github.com/jedit-io/jedit/ir"
)

type EncState struct {
	depth, indent int
	wire          bool

	format format.Format

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node as exchange text: JSON with 2-space indentation,
// objects in insertion order, arrays in index order. Output is
// deterministic; parse(Encode(d)) is structurally equal to d.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if es.format.IsYAML() {
		return encodeYAML(node, w)
	}
	if err := encode(node, w, es); err != nil {
		return err
	}
	if es.wire {
		return nil
	}
	return writeString(w, "\n")
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Type {
	case ir.ObjectType:
		return encodeObject(node, w, es)
	case ir.ArrayType:
		return encodeArray(node, w, es)
	case ir.StringType:
		return writeString(w, es.color(ir.StringType, ValueColor, jsonString(node.String)))
	case ir.NumberType:
		return writeString(w, es.color(ir.NumberType, ValueColor, jsonNumber(node)))
	case ir.BoolType:
		return writeString(w, es.color(ir.BoolType, ValueColor, strconv.FormatBool(node.Bool)))
	case ir.NullType:
		return writeString(w, es.color(ir.NullType, ValueColor, "null"))
	default:
		return fmt.Errorf("cannot encode %s node", node.Type)
	}
}

func encodeObject(node *ir.Node, w io.Writer, es *EncState) error {
	open := es.color(ir.ObjectType, SepColor, "{")
	clos := es.color(ir.ObjectType, SepColor, "}")
	if len(node.Fields) == 0 {
		return writeString(w, open+clos)
	}
	if err := writeString(w, open); err != nil {
		return err
	}
	es.depth++
	for i, field := range node.Fields {
		if i > 0 {
			if err := writeString(w, es.color(ir.ObjectType, SepColor, ",")); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		key := es.color(node.Values[i].Type, FieldColor, jsonString(field))
		sep := es.color(ir.ObjectType, SepColor, ":")
		if !es.wire {
			sep += " "
		}
		if err := writeString(w, key+sep); err != nil {
			return err
		}
		if err := encode(node.Values[i], w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeString(w, clos)
}

func encodeArray(node *ir.Node, w io.Writer, es *EncState) error {
	open := es.color(ir.ArrayType, SepColor, "[")
	clos := es.color(ir.ArrayType, SepColor, "]")
	if len(node.Values) == 0 {
		return writeString(w, open+clos)
	}
	if err := writeString(w, open); err != nil {
		return err
	}
	es.depth++
	for i, elt := range node.Values {
		if i > 0 {
			if err := writeString(w, es.color(ir.ArrayType, SepColor, ",")); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := encode(elt, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeString(w, clos)
}

func (es *EncState) color(t ir.Type, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, a, s)
}

func writeNL(w io.Writer, es *EncState) error {
	if es.wire {
		return nil
	}
	indentString := strings.Repeat(strings.Repeat(" ", es.indent), es.depth)
	return writeString(w, "\n"+indentString)
}

func writeString(w io.Writer, v string) error {
	_, err := w.Write([]byte(v))
	return err
}

// jsonString renders s as a JSON string literal. encoding/json gets
// the escaping right where strconv.Quote would emit Go-only escapes.
func jsonString(s string) string {
	d, err := json.Marshal(s)
	if err != nil {
		panic(err)
	}
	return string(d)
}

// jsonNumber prefers the source lexeme so numbers survive round trips
// byte for byte. Lexemes that are not valid JSON (YAML-imported hex,
// infinities) are re-rendered or nulled.
func jsonNumber(node *ir.Node) string {
	if node.Number != "" && json.Valid([]byte(node.Number)) {
		return node.Number
	}
	if node.Int64 != nil {
		return strconv.FormatInt(*node.Int64, 10)
	}
	if node.Float64 != nil {
		f := *node.Float64
		d, err := json.Marshal(f)
		if err != nil {
			// NaN or infinity
			return "null"
		}
		return string(d)
	}
	return "null"
}
