package edit

import (
	"errors"
	"testing"

	"github.com/jedit-io/jedit/ir"
)

func TestGroupObject(t *testing.T) {
	ed := newEd(t, `{"x": 1, "y": 2, "z": 3}`)
	if err := ed.Group([]string{"x", "y"}, "g"); err != nil {
		t.Fatal(err)
	}
	if got := wire(ed); got != `{"z":3,"g":{"x":1,"y":2}}` {
		t.Errorf("group = %s", got)
	}
}

func TestGroupObjectKeepsRelativeOrder(t *testing.T) {
	// selection order does not matter, document order does
	ed := newEd(t, `{"a": 1, "b": 2, "c": 3, "d": 4}`)
	if err := ed.Group([]string{"d", "b"}, "g"); err != nil {
		t.Fatal(err)
	}
	if got := wire(ed); got != `{"a":1,"c":3,"g":{"b":2,"d":4}}` {
		t.Errorf("group order = %s", got)
	}
}

func TestGroupObjectDeconflicts(t *testing.T) {
	ed := newEd(t, `{"g": 0, "x": 1, "y": 2}`)
	if err := ed.Group([]string{"x", "y"}, "g"); err != nil {
		t.Fatal(err)
	}
	if got := wire(ed); got != `{"g":0,"g_1":{"x":1,"y":2}}` {
		t.Errorf("group deconflict = %s", got)
	}
}

func TestGroupArray(t *testing.T) {
	ed := newEd(t, `{"a": [10, 20, 30, 40]}`)
	if err := ed.Group([]string{"a[1]", "a[3]"}, "g"); err != nil {
		t.Fatal(err)
	}
	if got := wire(ed); got != `{"a":[10,{"g":[20,40]},30]}` {
		t.Errorf("group array = %s", got)
	}
}

func TestGroupAcrossParents(t *testing.T) {
	ed := newEd(t, `{"o": {"x": 1, "y": 2, "k": 0}, "a": [1, 2, 3]}`)
	if err := ed.Group([]string{"o.x", "o.y", "a[0]", "a[2]"}, "g"); err != nil {
		t.Fatal(err)
	}
	if got := wire(ed); got != `{"o":{"k":0,"g":{"x":1,"y":2}},"a":[{"g":[1,3]},2]}` {
		t.Errorf("multi-parent group = %s", got)
	}
}

func TestGroupDuplicatePathsCollapse(t *testing.T) {
	ed := newEd(t, `{"x": 1, "y": 2, "z": 3}`)
	if err := ed.Group([]string{"x", "x", "y"}, "g"); err != nil {
		t.Fatal(err)
	}
	if got := wire(ed); got != `{"z":3,"g":{"x":1,"y":2}}` {
		t.Errorf("dedupe group = %s", got)
	}
}

func TestGroupErrorsAtomic(t *testing.T) {
	ed := newEd(t, `{"o": {"x": 1, "y": 2}, "s": 0}`)
	before := wire(ed)
	for _, tc := range []struct {
		paths []string
		name  string
		want  error
	}{
		{[]string{"o.x"}, "g", ErrInvalidTarget},
		{[]string{"o.x", "o.y"}, "", ErrInvalidTarget},
		{[]string{"", "o.x"}, "g", ErrInvalidTarget},
		{[]string{"o.x", "o.zz"}, "g", ir.ErrPath},
		{[]string{"s[0]", "s[1]"}, "g", ErrInvalidTarget},
	} {
		err := ed.Group(tc.paths, tc.name)
		if !errors.Is(err, tc.want) {
			t.Errorf("Group(%v, %q) = %v, want %v", tc.paths, tc.name, err, tc.want)
		}
	}
	// a failing partition must not commit the partitions before it
	err := ed.Group([]string{"o.x", "o.y", "o.zz", "o.x"}, "g")
	if err == nil {
		t.Fatal("expected error")
	}
	if wire(ed) != before {
		t.Errorf("failed group changed the document: %s", wire(ed))
	}
	if ed.CanUndo() {
		t.Errorf("failed group recorded history")
	}
}

func TestGroupUndo(t *testing.T) {
	ed := newEd(t, `{"x": 1, "y": 2, "z": 3}`)
	if err := ed.Group([]string{"x", "z"}, "g"); err != nil {
		t.Fatal(err)
	}
	if !ed.Undo() || wire(ed) != `{"x":1,"y":2,"z":3}` {
		t.Errorf("undo of group = %s", wire(ed))
	}
}
