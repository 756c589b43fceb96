package edit

import (
	"fmt"

	"github.com/jedit-io/jedit/debug"
	"github.com/jedit-io/jedit/ir"
	"github.com/jedit-io/jedit/ir/dpath"
	"github.com/jedit-io/jedit/parse"
)

// Editor owns a live document and is its sole mutator. Every public
// mutating operation checks its preconditions first, snapshots the
// document for undo only once those pass, and then applies the change;
// a failed operation leaves the document untouched and records no
// history entry.
//
// Editors are not safe for concurrent use; callers serialize
// operations (one user gesture, one call).
type Editor struct {
	root *ir.Node
	hist history
}

// New returns an editor on an empty object document.
func New() *Editor {
	return &Editor{root: ir.FromPairs(nil)}
}

// NewFromNode returns an editor owning root. The caller must not
// retain references into the tree.
func NewFromNode(root *ir.Node) *Editor {
	return &Editor{root: root}
}

// Root returns a deep copy of the current document for rendering.
func (e *Editor) Root() *ir.Node {
	return e.root.Clone()
}

// Get returns a deep copy of the node at path.
func (e *Editor) Get(path string) (*ir.Node, error) {
	p, err := parsePath(path)
	if err != nil {
		return nil, err
	}
	n, err := e.root.Resolve(p)
	if err != nil {
		return nil, err
	}
	return n.Clone(), nil
}

// Replace substitutes the whole document, as when a text view commits
// reparsed raw text. Undoable.
func (e *Editor) Replace(root *ir.Node) {
	e.hist.save(e.root)
	e.root = root.Clone()
	e.root.Parent = nil
	e.root.ParentIndex = 0
	e.root.ParentField = ""
}

// Rename changes the key of the object entry at path, preserving the
// parent's key order with the new key at the old key's position. It
// fails on the root, on array-parented nodes, and with ErrKeyConflict
// when newKey is already present.
func (e *Editor) Rename(path, newKey string) error {
	p, err := parsePath(path)
	if err != nil {
		return err
	}
	if p == nil {
		return fmt.Errorf("%w: cannot rename root", ir.ErrPath)
	}
	if newKey == "" {
		return fmt.Errorf("%w: empty key renaming %q", ErrKeyConflict, path)
	}
	parent, last, err := e.root.ResolveParent(p)
	if err != nil {
		return err
	}
	if last.Field == nil || parent.Type != ir.ObjectType {
		return fmt.Errorf("%w: array indices cannot be renamed at %q", ir.ErrPath, path)
	}
	i := ir.IndexOf(parent, *last.Field)
	if i == -1 {
		return fmt.Errorf("%w: no field %q at %q", ir.ErrPath, *last.Field, path)
	}
	if ir.IndexOf(parent, newKey) != -1 {
		return fmt.Errorf("%w: key %q already exists at %q", ErrKeyConflict, newKey, p.Parent())
	}
	if debug.Edit() {
		debug.Logf("edit: rename %q -> %q\n", path, newKey)
	}
	e.hist.save(e.root)
	parent.Fields[i] = newKey
	parent.Renumber()
	return nil
}

// SetValue replaces the node at path with the value raw denotes. raw
// is parsed as JSON; when that fails it is stored as a literal string
// scalar, so typed entry is best effort and never an error in itself.
func (e *Editor) SetValue(path, raw string) error {
	p, err := parsePath(path)
	if err != nil {
		return err
	}
	if p == nil {
		return fmt.Errorf("%w: cannot set root value, use Replace", ir.ErrPath)
	}
	if _, err := e.root.Resolve(p); err != nil {
		return err
	}
	v, err := parse.String(raw)
	if err != nil {
		v = ir.FromString(raw)
	}
	if debug.Edit() {
		debug.Logf("edit: set %q to %s\n", path, v.Type)
	}
	e.hist.save(e.root)
	if err := e.root.Set(p, v); err != nil {
		panic(err) // resolved above
	}
	return nil
}

// AddChild inserts an empty-string scalar under the container at
// parentPath. Object parents require a fresh key; array parents
// append and take no key.
func (e *Editor) AddChild(parentPath, key string) error {
	p, err := parsePath(parentPath)
	if err != nil {
		return err
	}
	parent, err := e.root.Resolve(p)
	if err != nil {
		return err
	}
	switch parent.Type {
	case ir.ObjectType:
		if key == "" {
			return fmt.Errorf("%w: object child requires a key at %q", ErrInvalidTarget, parentPath)
		}
		if ir.IndexOf(parent, key) != -1 {
			return fmt.Errorf("%w: key %q already exists at %q", ErrKeyConflict, key, parentPath)
		}
		if debug.Edit() {
			debug.Logf("edit: add %q under %q\n", key, parentPath)
		}
		e.hist.save(e.root)
		parent.InsertField(len(parent.Fields), key, ir.FromString(""))
		return nil
	case ir.ArrayType:
		if key != "" {
			return fmt.Errorf("%w: array children are not keyed at %q", ErrInvalidTarget, parentPath)
		}
		if debug.Edit() {
			debug.Logf("edit: append under %q\n", parentPath)
		}
		e.hist.save(e.root)
		parent.InsertValue(len(parent.Values), ir.FromString(""))
		return nil
	default:
		return fmt.Errorf("%w: cannot add a child to a %s at %q",
			ErrInvalidTarget, parent.Type, parentPath)
	}
}

// Delete removes the node at path and everything beneath it. Array
// indices above the removed slot shift down.
func (e *Editor) Delete(path string) error {
	p, err := parsePath(path)
	if err != nil {
		return err
	}
	if p == nil {
		return fmt.Errorf("%w: cannot delete root", ir.ErrPath)
	}
	parent, last, err := e.root.ResolveParent(p)
	if err != nil {
		return err
	}
	if debug.Edit() {
		debug.Logf("edit: delete %q\n", path)
	}
	if last.Field != nil {
		if parent.Type != ir.ObjectType {
			return fmt.Errorf("%w: %q is %s, not Object", ir.ErrPath, p.Parent(), parent.Type)
		}
		i := ir.IndexOf(parent, *last.Field)
		if i == -1 {
			return fmt.Errorf("%w: no field %q at %q", ir.ErrPath, *last.Field, path)
		}
		e.hist.save(e.root)
		parent.RemoveField(i)
		return nil
	}
	if parent.Type != ir.ArrayType {
		return fmt.Errorf("%w: %q is %s, not Array", ir.ErrPath, p.Parent(), parent.Type)
	}
	idx := *last.Index
	if idx < 0 || idx >= len(parent.Values) {
		return fmt.Errorf("%w: index %d out of bounds (len %d) at %q",
			ir.ErrPath, idx, len(parent.Values), p.Parent())
	}
	e.hist.save(e.root)
	parent.RemoveValue(idx)
	return nil
}

// Undo restores the document preceding the last recorded mutation.
// Returns false when there is nothing to undo.
func (e *Editor) Undo() bool {
	res := e.hist.stepBack(e.root)
	if res == nil {
		return false
	}
	e.root = res
	return true
}

// Redo reverses the last Undo. A new mutation clears the redo branch.
// Returns false when there is nothing to redo.
func (e *Editor) Redo() bool {
	res := e.hist.stepForward(e.root)
	if res == nil {
		return false
	}
	e.root = res
	return true
}

func (e *Editor) CanUndo() bool { return len(e.hist.undo) > 0 }
func (e *Editor) CanRedo() bool { return len(e.hist.redo) > 0 }

func parsePath(path string) (*dpath.Path, error) {
	p, err := dpath.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ir.ErrPath, err)
	}
	return p, nil
}
