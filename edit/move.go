package edit

import (
	"fmt"

	"github.com/jedit-io/jedit/debug"
	"github.com/jedit-io/jedit/ir"
)

// Mode selects where Move places the source relative to the target.
type Mode int

const (
	// InsertBefore places the source as a sibling before the target.
	InsertBefore Mode = iota
	// InsertAfter places the source as a sibling after the target.
	InsertAfter
	// Nest places the source as a child of the target.
	Nest
)

func (m Mode) String() string {
	switch m {
	case InsertBefore:
		return "before"
	case InsertAfter:
		return "after"
	case Nest:
		return "nest"
	default:
		return "<unknown mode>"
	}
}

func ParseMode(v string) (Mode, error) {
	m, ok := map[string]Mode{
		"before": InsertBefore,
		"after":  InsertAfter,
		"nest":   Nest,
	}[v]
	if !ok {
		return 0, fmt.Errorf("%w: unknown move mode %q", ErrInvalidTarget, v)
	}
	return m, nil
}

// Move relocates the node at source relative to the node at target.
// The source is removed before insertion, so a node never has two
// parent edges even transiently. All failure checks run before any
// mutation.
//
// The destination container is the target itself when mode is Nest and
// the target is a container; otherwise it is the target's parent, with
// the target's position as the insertion anchor.
//
// Ordering under an object destination: same-object before/after
// rebuilds the key order around the target key; a different object
// appends at the end under a deconflicted key, since object order is
// keyed adjacency, not a first-class index.
func (e *Editor) Move(source, target string, mode Mode) error {
	ps, err := parsePath(source)
	if err != nil {
		return err
	}
	if ps == nil {
		return fmt.Errorf("%w: cannot move root", ErrInvalidTarget)
	}
	pt, err := parsePath(target)
	if err != nil {
		return err
	}
	srcNode, err := e.root.Resolve(ps)
	if err != nil {
		return err
	}
	tgtNode, err := e.root.Resolve(pt)
	if err != nil {
		return fmt.Errorf("%w: target %q: %v", ErrInvalidTarget, target, err)
	}
	if srcNode == tgtNode {
		return nil
	}
	for x := tgtNode.Parent; x != nil; x = x.Parent {
		if x == srcNode {
			return fmt.Errorf("%w: target %q is inside the moved subtree %q",
				ErrInvalidTarget, target, source)
		}
	}

	srcParent := srcNode.Parent
	srcKey := srcNode.ParentField
	srcIdx := srcNode.ParentIndex

	// Destination container and anchor, captured before the removal
	// shifts anything.
	var dest *ir.Node
	nestInto := false
	anchorIdx := 0
	anchorKeyIdx := 0
	if mode == Nest && tgtNode.Type.IsContainer() {
		dest = tgtNode
		nestInto = true
	} else {
		dest = tgtNode.Parent
		if dest == nil {
			return fmt.Errorf("%w: cannot insert beside the root", ErrInvalidTarget)
		}
		anchorIdx = tgtNode.ParentIndex
		anchorKeyIdx = tgtNode.ParentIndex
	}

	if debug.Move() {
		debug.Logf("edit: move %q %s %q (dest %s)\n", source, mode, target, dest.Type)
	}
	e.hist.save(e.root)

	// Pop the source from its container.
	var moved *ir.Node
	if srcParent.Type == ir.ArrayType {
		moved = srcParent.RemoveValue(srcIdx)
	} else {
		_, moved = srcParent.RemoveField(srcIdx)
	}

	if dest.Type == ir.ArrayType {
		if nestInto {
			dest.InsertValue(len(dest.Values), moved)
			return nil
		}
		anchor := anchorIdx
		if dest == srcParent && srcIdx < anchor {
			anchor--
		}
		switch mode {
		case InsertBefore:
			dest.InsertValue(anchor, moved)
		case InsertAfter:
			dest.InsertValue(anchor+1, moved)
		default:
			// nest onto a scalar element: append
			dest.InsertValue(len(dest.Values), moved)
		}
		return nil
	}

	// Object destination. Array-sourced values have no key to carry.
	key := srcKey
	if srcParent.Type == ir.ArrayType {
		key = "item"
	}
	if nestInto || dest != srcParent {
		key = Deconflict(dest, key)
		dest.InsertField(len(dest.Fields), key, moved)
		return nil
	}
	// Reorder within the same object around the target key.
	j := anchorKeyIdx
	if srcIdx < j {
		j--
	}
	if mode == InsertBefore {
		dest.InsertField(j, key, moved)
	} else {
		dest.InsertField(j+1, key, moved)
	}
	return nil
}
