package ir

import (
	"testing"
)

func obj(kvs ...KeyVal) *Node { return FromPairs(kvs) }

func TestFromPairsOrder(t *testing.T) {
	n := obj(
		KeyVal{Key: "z", Val: FromInt(1)},
		KeyVal{Key: "a", Val: FromInt(2)},
		KeyVal{Key: "m", Val: FromInt(3)},
	)
	want := []string{"z", "a", "m"}
	for i, f := range n.Fields {
		if f != want[i] {
			t.Errorf("Fields[%d] = %q, want %q", i, f, want[i])
		}
	}
	for i, v := range n.Values {
		if v.Parent != n || v.ParentIndex != i || v.ParentField != want[i] {
			t.Errorf("back-link of value %d wrong", i)
		}
	}
}

func TestFromMapSorted(t *testing.T) {
	n := FromMap(map[string]*Node{
		"b": FromInt(2),
		"a": FromInt(1),
	})
	if n.Fields[0] != "a" || n.Fields[1] != "b" {
		t.Errorf("FromMap order = %v", n.Fields)
	}
}

func TestCloneIndependence(t *testing.T) {
	n := obj(
		KeyVal{Key: "a", Val: FromSlice([]*Node{FromInt(1), FromString("x")})},
		KeyVal{Key: "b", Val: FromBool(true)},
	)
	c := n.Clone()
	if Compare(n, c) != 0 {
		t.Fatalf("clone differs from original")
	}
	c.Values[0].Values[0] = FromInt(99)
	c.Values[0].Renumber()
	if Compare(n, c) == 0 {
		t.Errorf("mutating clone affected original")
	}
	if got := *n.Values[0].Values[0].Int64; got != 1 {
		t.Errorf("original changed: %d", got)
	}
	// back-links of the clone point into the clone
	if c.Values[1].Parent != c {
		t.Errorf("clone back-link escapes the clone")
	}
}

func TestInsertRemoveField(t *testing.T) {
	n := obj(
		KeyVal{Key: "a", Val: FromInt(1)},
		KeyVal{Key: "c", Val: FromInt(3)},
	)
	n.InsertField(1, "b", FromInt(2))
	if got := n.Fields; got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Fatalf("after insert: %v", got)
	}
	for i, v := range n.Values {
		if v.ParentIndex != i || v.ParentField != n.Fields[i] {
			t.Errorf("back-link %d stale after insert", i)
		}
	}
	key, v := n.RemoveField(0)
	if key != "a" || *v.Int64 != 1 {
		t.Errorf("RemoveField = %q, %v", key, v)
	}
	if v.Parent != nil {
		t.Errorf("removed node keeps parent")
	}
	if n.Fields[0] != "b" || n.Values[0].ParentIndex != 0 {
		t.Errorf("renumber after remove failed")
	}
}

func TestInsertValueClamped(t *testing.T) {
	n := FromSlice([]*Node{FromInt(1), FromInt(2)})
	n.InsertValue(99, FromInt(3))
	if len(n.Values) != 3 || *n.Values[2].Int64 != 3 {
		t.Errorf("insert past end not clamped")
	}
	n.InsertValue(-1, FromInt(0))
	if *n.Values[0].Int64 != 0 {
		t.Errorf("negative insert not clamped")
	}
	for i, v := range n.Values {
		if v.ParentIndex != i {
			t.Errorf("ParentIndex[%d] = %d", i, v.ParentIndex)
		}
	}
}

func TestVisitOrder(t *testing.T) {
	n := obj(
		KeyVal{Key: "a", Val: FromInt(1)},
		KeyVal{Key: "b", Val: FromSlice([]*Node{FromInt(2)})},
	)
	var pre []Type
	err := n.Visit(func(y *Node, isPost bool) (bool, error) {
		if !isPost {
			pre = append(pre, y.Type)
		}
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []Type{ObjectType, NumberType, ArrayType, NumberType}
	if len(pre) != len(want) {
		t.Fatalf("pre-order len = %d", len(pre))
	}
	for i := range want {
		if pre[i] != want[i] {
			t.Errorf("pre[%d] = %s, want %s", i, pre[i], want[i])
		}
	}
}

func TestRoot(t *testing.T) {
	n := obj(KeyVal{Key: "a", Val: FromSlice([]*Node{FromInt(1)})})
	leaf := n.Values[0].Values[0]
	if leaf.Root() != n {
		t.Errorf("Root() != top node")
	}
}
