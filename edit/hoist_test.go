package edit

import (
	"errors"
	"testing"

	"github.com/jedit-io/jedit/ir"
)

func TestHoistObject(t *testing.T) {
	ed := newEd(t, `{"a": 1, "o": {"x": 2, "y": 3}, "z": 4}`)
	if err := ed.Hoist("o"); err != nil {
		t.Fatal(err)
	}
	// contents land at the removed key's position
	if got := wire(ed); got != `{"a":1,"x":2,"y":3,"z":4}` {
		t.Errorf("hoist = %s", got)
	}
}

func TestHoistArray(t *testing.T) {
	ed := newEd(t, `[1, [2, 3], 4]`)
	if err := ed.Hoist("[1]"); err != nil {
		t.Fatal(err)
	}
	if got := wire(ed); got != `[1,2,3,4]` {
		t.Errorf("hoist array = %s", got)
	}
}

func TestHoistEmptyContainer(t *testing.T) {
	ed := newEd(t, `{"a": 1, "o": {}}`)
	if err := ed.Hoist("o"); err != nil {
		t.Fatal(err)
	}
	if got := wire(ed); got != `{"a":1}` {
		t.Errorf("hoist empty = %s", got)
	}
}

func TestHoistKeyConflict(t *testing.T) {
	ed := newEd(t, `{"x": 1, "o": {"x": 2}}`)
	before := wire(ed)
	err := ed.Hoist("o")
	if !errors.Is(err, ErrKeyConflict) {
		t.Fatalf("hoist conflict = %v, want ErrKeyConflict", err)
	}
	if wire(ed) != before {
		t.Errorf("failed hoist changed the document")
	}
	if ed.CanUndo() {
		t.Errorf("failed hoist recorded history")
	}
}

func TestHoistKindMismatch(t *testing.T) {
	ed := newEd(t, `{"a": [1], "o": {"x": [2]}, "s": 1}`)
	for _, path := range []string{"a", "s", "o.x"} {
		if err := ed.Hoist(path); !errors.Is(err, ErrInvalidTarget) {
			t.Errorf("Hoist(%q) = %v, want ErrInvalidTarget", path, err)
		}
	}
}

func TestHoistRootAndMissing(t *testing.T) {
	ed := newEd(t, `{"o": {}}`)
	if err := ed.Hoist(""); !errors.Is(err, ir.ErrPath) {
		t.Errorf("hoist root = %v, want ErrPath", err)
	}
	if err := ed.Hoist("zz"); !errors.Is(err, ir.ErrPath) {
		t.Errorf("hoist missing = %v, want ErrPath", err)
	}
}

func TestHoistUndo(t *testing.T) {
	ed := newEd(t, `{"o": {"x": 1}}`)
	if err := ed.Hoist("o"); err != nil {
		t.Fatal(err)
	}
	if !ed.Undo() || wire(ed) != `{"o":{"x":1}}` {
		t.Errorf("undo of hoist = %s", wire(ed))
	}
}
