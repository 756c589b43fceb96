package ir

import (
	"fmt"

	"github.com/jedit-io/jedit/ir/dpath"
)

// Path returns this node's position in the tree as a document path.
// The root yields nil.
func (node *Node) Path() *dpath.Path {
	if node.Parent == nil {
		return nil
	}
	var seg *dpath.Path
	switch node.Parent.Type {
	case ObjectType:
		seg = dpath.NewField(node.ParentField)
	case ArrayType:
		seg = dpath.NewIndex(node.ParentIndex)
	default:
		panic("parent but not in container")
	}
	return node.Parent.Path().Append(seg)
}

// PathString returns the canonical string form of Path.
func (node *Node) PathString() string {
	return node.Path().String()
}

// Resolve walks p from node and returns the addressed live node. It
// fails with an error wrapping ErrPath if any prefix is not a
// container of the matching kind or a key or index is absent.
func (node *Node) Resolve(p *dpath.Path) (*Node, error) {
	res := node
	walked := ""
	for x := p; x != nil; x = x.Next {
		if x.Field != nil {
			if res.Type != ObjectType {
				return nil, fmt.Errorf("%w: %q is %s, not Object, resolving %q",
					ErrPath, walked, res.Type, p)
			}
			v := Get(res, *x.Field)
			if v == nil {
				return nil, fmt.Errorf("%w: no field %q under %q resolving %q",
					ErrPath, *x.Field, walked, p)
			}
			res = v
		} else if x.Index != nil {
			if res.Type != ArrayType {
				return nil, fmt.Errorf("%w: %q is %s, not Array, resolving %q",
					ErrPath, walked, res.Type, p)
			}
			idx := *x.Index
			if idx < 0 || idx >= len(res.Values) {
				return nil, fmt.Errorf("%w: index %d out of bounds (len %d) under %q resolving %q",
					ErrPath, idx, len(res.Values), walked, p)
			}
			res = res.Values[idx]
		} else {
			return nil, fmt.Errorf("%w: empty segment in %q", ErrPath, p)
		}
		if walked == "" {
			walked = x.SegmentString()
		} else {
			walked = walked + "." + x.SegmentString()
		}
	}
	return res, nil
}

// ResolveParent resolves p minus its final segment, returning the
// containing node and that final segment. The root path fails with
// ErrPath: the root has no parent.
func (node *Node) ResolveParent(p *dpath.Path) (*Node, *dpath.Path, error) {
	if p == nil {
		return nil, nil, fmt.Errorf("%w: root has no parent", ErrPath)
	}
	parent, err := node.Resolve(p.Parent())
	if err != nil {
		return nil, nil, err
	}
	return parent, p.Last(), nil
}

// Set replaces the node at p with v. Replacing the root is expressed
// with a nil path and is the caller's concern; Set fails on it the
// same way ResolveParent does.
func (node *Node) Set(p *dpath.Path, v *Node) error {
	parent, last, err := node.ResolveParent(p)
	if err != nil {
		return err
	}
	if last.Field != nil {
		i := IndexOf(parent, *last.Field)
		if i == -1 {
			return fmt.Errorf("%w: no field %q at %q", ErrPath, *last.Field, p.Parent())
		}
		parent.Values[i] = v
		parent.Renumber()
		return nil
	}
	idx := *last.Index
	if parent.Type != ArrayType {
		return fmt.Errorf("%w: %q is %s, not Array", ErrPath, p.Parent(), parent.Type)
	}
	if idx < 0 || idx >= len(parent.Values) {
		return fmt.Errorf("%w: index %d out of bounds (len %d) at %q",
			ErrPath, idx, len(parent.Values), p.Parent())
	}
	parent.Values[idx] = v
	parent.Renumber()
	return nil
}
