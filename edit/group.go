package edit

import (
	"fmt"
	"slices"

	"github.com/jedit-io/jedit/debug"
	"github.com/jedit-io/jedit/ir"
	"github.com/jedit-io/jedit/ir/dpath"
)

// Group collects the nodes at paths into new groups named name, one
// group per distinct parent container. Object parents lose the
// selected keys and gain, appended at the end, an object under a
// deconflicted group name holding the removed entries in their
// original relative order. Array parents lose the selected indices and
// gain, at the smallest removed index, an object mapping name to an
// array of the removed elements in original order.
//
// The operation is atomic across parents: it is computed on a working
// copy and committed only when every partition succeeds.
func (e *Editor) Group(paths []string, name string) error {
	if len(paths) < 2 {
		return fmt.Errorf("%w: grouping requires at least two nodes, got %d",
			ErrInvalidTarget, len(paths))
	}
	if name == "" {
		return fmt.Errorf("%w: group name required", ErrInvalidTarget)
	}

	type partition struct {
		parent *dpath.Path
		paths  []*dpath.Path
	}
	var parts []*partition
	byParent := map[string]*partition{}
	seen := map[string]bool{}
	for _, path := range paths {
		p, err := parsePath(path)
		if err != nil {
			return err
		}
		if p == nil {
			return fmt.Errorf("%w: cannot group root", ErrInvalidTarget)
		}
		canon := p.String()
		if seen[canon] {
			continue
		}
		seen[canon] = true
		parentKey := p.Parent().String()
		part := byParent[parentKey]
		if part == nil {
			part = &partition{parent: p.Parent()}
			byParent[parentKey] = part
			parts = append(parts, part)
		}
		part.paths = append(part.paths, p)
	}

	if debug.Group() {
		debug.Logf("edit: group %d nodes in %d partitions as %q\n", len(seen), len(parts), name)
	}

	// All removals and insertions happen on a working copy; the live
	// document is swapped in only on full success.
	work := e.root.Clone()
	for _, part := range parts {
		parent, err := work.Resolve(part.parent)
		if err != nil {
			return err
		}
		switch parent.Type {
		case ir.ObjectType:
			if err := groupObject(parent, part.paths, name); err != nil {
				return err
			}
		case ir.ArrayType:
			if err := groupArray(parent, part.paths, name); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: cannot group under %s parent %q",
				ErrInvalidTarget, parent.Type, part.parent)
		}
	}

	e.hist.save(e.root)
	e.root = work
	return nil
}

func groupObject(parent *ir.Node, paths []*dpath.Path, name string) error {
	// indices of the selected keys, in original relative order
	var idxs []int
	for _, p := range paths {
		last := p.Last()
		if last.Field == nil {
			return fmt.Errorf("%w: %q does not address an object entry", ir.ErrPath, p)
		}
		i := ir.IndexOf(parent, *last.Field)
		if i == -1 {
			return fmt.Errorf("%w: no field %q at %q", ir.ErrPath, *last.Field, p)
		}
		idxs = append(idxs, i)
	}
	slices.Sort(idxs)

	kvs := make([]ir.KeyVal, 0, len(idxs))
	for _, i := range idxs {
		kvs = append(kvs, ir.KeyVal{Key: parent.Fields[i], Val: parent.Values[i]})
	}
	for n := len(idxs) - 1; n >= 0; n-- {
		parent.RemoveField(idxs[n])
	}
	group := ir.FromPairs(kvs)
	parent.InsertField(len(parent.Fields), Deconflict(parent, name), group)
	return nil
}

func groupArray(parent *ir.Node, paths []*dpath.Path, name string) error {
	var idxs []int
	for _, p := range paths {
		last := p.Last()
		if last.Index == nil {
			return fmt.Errorf("%w: %q does not address an array element", ir.ErrPath, p)
		}
		i := *last.Index
		if i < 0 || i >= len(parent.Values) {
			return fmt.Errorf("%w: index %d out of bounds (len %d) at %q",
				ir.ErrPath, i, len(parent.Values), p)
		}
		idxs = append(idxs, i)
	}
	slices.Sort(idxs)

	elems := make([]*ir.Node, 0, len(idxs))
	for _, i := range idxs {
		elems = append(elems, parent.Values[i])
	}
	// remove highest first so lower indices stay valid
	for n := len(idxs) - 1; n >= 0; n-- {
		parent.RemoveValue(idxs[n])
	}
	group := ir.FromPairs([]ir.KeyVal{{Key: name, Val: ir.FromSlice(elems)}})
	parent.InsertValue(idxs[0], group)
	return nil
}
