package ir

import (
	"errors"
	"testing"

	"github.com/jedit-io/jedit/ir/dpath"
)

func testDoc() *Node {
	return FromPairs([]KeyVal{
		{Key: "a", Val: FromPairs([]KeyVal{
			{Key: "b", Val: FromSlice([]*Node{
				FromInt(1),
				FromString("x"),
			})},
		})},
		{Key: "odd.key", Val: FromBool(true)},
	})
}

func TestResolve(t *testing.T) {
	doc := testDoc()
	for _, tc := range []struct {
		path string
		typ  Type
	}{
		{"", ObjectType},
		{"a", ObjectType},
		{"a.b", ArrayType},
		{"a.b[0]", NumberType},
		{"a.b[1]", StringType},
		{"'odd.key'", BoolType},
	} {
		n, err := doc.Resolve(dpath.MustParse(tc.path))
		if err != nil {
			t.Errorf("Resolve(%q): %v", tc.path, err)
			continue
		}
		if n.Type != tc.typ {
			t.Errorf("Resolve(%q).Type = %s, want %s", tc.path, n.Type, tc.typ)
		}
	}
}

func TestResolveErrors(t *testing.T) {
	doc := testDoc()
	for _, path := range []string{
		"zz",
		"a.zz",
		"a.b[2]",
		"a.b.c",
		"a[0]",
		"a.b[0].x",
	} {
		_, err := doc.Resolve(dpath.MustParse(path))
		if err == nil {
			t.Errorf("Resolve(%q): expected error", path)
			continue
		}
		if !errors.Is(err, ErrPath) {
			t.Errorf("Resolve(%q): error does not wrap ErrPath: %v", path, err)
		}
	}
}

func TestPathRoundTrip(t *testing.T) {
	doc := testDoc()
	err := doc.Visit(func(y *Node, isPost bool) (bool, error) {
		if isPost {
			return true, nil
		}
		got, err := doc.Resolve(y.Path())
		if err != nil {
			return false, err
		}
		if got != y {
			t.Errorf("Resolve(Path()) of %q is a different node", y.PathString())
		}
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestResolveParentRoot(t *testing.T) {
	doc := testDoc()
	_, _, err := doc.ResolveParent(nil)
	if err == nil || !errors.Is(err, ErrPath) {
		t.Errorf("ResolveParent(root) = %v, want ErrPath", err)
	}
}

func TestSet(t *testing.T) {
	doc := testDoc()
	if err := doc.Set(dpath.MustParse("a.b[1]"), FromInt(7)); err != nil {
		t.Fatal(err)
	}
	n, err := doc.Resolve(dpath.MustParse("a.b[1]"))
	if err != nil {
		t.Fatal(err)
	}
	if n.Int64 == nil || *n.Int64 != 7 {
		t.Errorf("Set did not take: %v", n)
	}
	if n.Parent == nil || n.ParentIndex != 1 {
		t.Errorf("Set left stale back-links")
	}
	if err := doc.Set(dpath.MustParse("zz.q"), Null()); !errors.Is(err, ErrPath) {
		t.Errorf("Set on missing path = %v, want ErrPath", err)
	}
}
