package libdiff

import (
	"fmt"

	"github.com/jedit-io/jedit/ir"
	"github.com/jedit-io/jedit/ir/dpath"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Kind classifies a reported change.
type Kind int

const (
	Modified Kind = iota
	Added
	Removed
)

func (k Kind) String() string {
	switch k {
	case Modified:
		return "modified"
	case Added:
		return "added"
	case Removed:
		return "removed"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Change is one entry in a change set.  Path addresses the changed node
// in the new document, or in the old document for Removed entries.
type Change struct {
	Path string
	Kind Kind
}

// Paths returns the paths whose values differ between from and to, in
// document order.  The empty path denotes the document root.
func Paths(from, to *ir.Node) []string {
	changes := Changes(from, to)
	res := make([]string, 0, len(changes))
	for i := range changes {
		res = append(res, changes[i].Path)
	}
	return res
}

// Changes returns the change set between from and to.
func Changes(from, to *ir.Node) []Change {
	var res []Change
	diffNode(from, to, "", &res)
	return res
}

func diffNode(from, to *ir.Node, path string, res *[]Change) {
	if from == nil && to == nil {
		return
	}
	if from == nil {
		*res = append(*res, Change{Path: path, Kind: Added})
		return
	}
	if to == nil {
		*res = append(*res, Change{Path: path, Kind: Removed})
		return
	}
	if from.Type != to.Type {
		*res = append(*res, Change{Path: path, Kind: Modified})
		return
	}
	switch from.Type {
	case ir.ObjectType:
		diffObject(from, to, path, res)
	case ir.ArrayType:
		diffArray(from, to, path, res)
	default:
		if ir.Compare(from, to) != 0 {
			*res = append(*res, Change{Path: path, Kind: Modified})
		}
	}
}

func diffArray(from, to *ir.Node, path string, res *[]Change) {
	n := min(len(from.Values), len(to.Values))
	for i := 0; i < n; i++ {
		diffNode(from.Values[i], to.Values[i], elemPath(path, i), res)
	}
	for i := n; i < len(to.Values); i++ {
		*res = append(*res, Change{Path: elemPath(path, i), Kind: Added})
	}
	for i := n; i < len(from.Values); i++ {
		*res = append(*res, Change{Path: elemPath(path, i), Kind: Removed})
	}
}

// diffObject aligns the two field sequences with an edit-distance diff
// over rune-encoded field names, so a field keeps its identity across
// reorders of its siblings.
func diffObject(from, to *ir.Node, path string, res *[]Change) {
	fieldMap := map[string]rune{}
	runeMap := map[rune]string{}
	fromRunes := mapFieldsTo(fieldMap, runeMap, from)
	toRunes := mapFieldsTo(fieldMap, runeMap, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	fi, ti := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffDelete:
			for range diff.Text {
				*res = append(*res, Change{
					Path: fieldPath(path, from.Fields[fi]),
					Kind: Removed,
				})
				fi++
			}
		case diffpatch.DiffEqual:
			for range diff.Text {
				diffNode(from.Values[fi], to.Values[ti],
					fieldPath(path, to.Fields[ti]), res)
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for range diff.Text {
				*res = append(*res, Change{
					Path: fieldPath(path, to.Fields[ti]),
					Kind: Added,
				})
				ti++
			}
		}
	}
}

// mapFieldsTo assigns each distinct field name a rune and returns the
// node's field sequence in that encoding.  Runes skip the surrogate
// block so the encoding survives the diff library's string conversion.
func mapFieldsTo(m map[string]rune, im map[rune]string, node *ir.Node) []rune {
	rs := make([]rune, len(node.Fields))
	for i := range node.Fields {
		f := node.Fields[i]
		r, ok := m[f]
		if !ok {
			r = fieldRune(len(m))
			m[f] = r
			im[r] = f
		}
		rs[i] = r
	}
	return rs
}

func fieldRune(n int) rune {
	r := rune(n + 1)
	if r >= 0xd800 {
		r += 0x800
	}
	return r
}

func fieldPath(path, field string) string {
	seg := dpath.NewField(field).SegmentString()
	if path == "" {
		return seg
	}
	return path + "." + seg
}

func elemPath(path string, i int) string {
	return fmt.Sprintf("%s[%d]", path, i)
}
