package edit

import (
	"fmt"
	"slices"

	"github.com/jedit-io/jedit/debug"
	"github.com/jedit-io/jedit/ir"
)

// Hoist deletes the container at path and transfers its contents into
// the parent container, which must be of the same kind.
//
// Object into object: every entry is merged at the removed key's
// former position; any key already present in the parent fails the
// whole operation with ErrKeyConflict (a deliberately stricter policy
// than move and group, which deconflict).
//
// Array into array: the elements are spliced into the parent at the
// removed index, in order, replacing the removed slot.
func (e *Editor) Hoist(path string) error {
	p, err := parsePath(path)
	if err != nil {
		return err
	}
	if p == nil {
		return fmt.Errorf("%w: cannot hoist root", ir.ErrPath)
	}
	node, err := e.root.Resolve(p)
	if err != nil {
		return err
	}
	parent, last, err := e.root.ResolveParent(p)
	if err != nil {
		return err
	}
	if !node.Type.IsContainer() || node.Type != parent.Type {
		return fmt.Errorf("%w: cannot transfer %s contents into %s parent at %q",
			ErrInvalidTarget, node.Type, parent.Type, path)
	}
	if debug.Edit() {
		debug.Logf("edit: hoist %q (%s)\n", path, node.Type)
	}

	if node.Type == ir.ObjectType {
		for _, k := range node.Fields {
			if ir.IndexOf(parent, k) != -1 {
				return fmt.Errorf("%w: key %q already exists in parent of %q",
					ErrKeyConflict, k, path)
			}
		}
		i := ir.IndexOf(parent, *last.Field)
		e.hist.save(e.root)
		parent.Fields = slices.Concat(parent.Fields[:i], node.Fields, parent.Fields[i+1:])
		parent.Values = slices.Concat(parent.Values[:i], node.Values, parent.Values[i+1:])
		parent.Renumber()
		return nil
	}

	idx := *last.Index
	e.hist.save(e.root)
	parent.Values = slices.Concat(parent.Values[:idx], node.Values, parent.Values[idx+1:])
	parent.Renumber()
	return nil
}
