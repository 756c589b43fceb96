package encode

import (
	"io"

	"github.com/goccy/go-yaml"

	"github.com/jedit-io/jedit/ir"
)

// encodeYAML renders node as YAML. Object order is preserved via
// yaml.MapSlice.
func encodeYAML(node *ir.Node, w io.Writer) error {
	d, err := yaml.Marshal(toYAMLAny(node))
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

func toYAMLAny(node *ir.Node) any {
	switch node.Type {
	case ir.ObjectType:
		res := make(yaml.MapSlice, len(node.Fields))
		for i := range node.Fields {
			res[i] = yaml.MapItem{
				Key:   node.Fields[i],
				Value: toYAMLAny(node.Values[i]),
			}
		}
		return res
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			res[i] = toYAMLAny(elt)
		}
		return res
	default:
		return ir.ToAny(node)
	}
}
