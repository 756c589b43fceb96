package edit

import (
	"github.com/jedit-io/jedit/ir"
	"github.com/jedit-io/jedit/ir/dpath"
)

// PathEntry is one row of the path table views consume.
type PathEntry struct {
	Path string
	Node *ir.Node
}

// PathTable returns the full path → node projection of the current
// document in depth-first pre-order, the root first under the empty
// path. Paths are recomputed from the live tree, not diffed; views
// replace any cached table with this one after every mutation. The
// nodes are a private deep copy.
func (e *Editor) PathTable() []PathEntry {
	snap := e.root.Clone()
	var res []PathEntry
	var walk func(n *ir.Node, path string)
	walk = func(n *ir.Node, path string) {
		res = append(res, PathEntry{Path: path, Node: n})
		for i, v := range n.Values {
			var seg *dpath.Path
			if n.Type == ir.ObjectType {
				seg = dpath.NewField(n.Fields[i])
			} else {
				seg = dpath.NewIndex(i)
			}
			child := seg.String()
			if path != "" && seg.Field != nil {
				child = path + "." + child
			} else {
				child = path + child
			}
			walk(v, child)
		}
	}
	walk(snap, "")
	return res
}
