package ir

import (
	"testing"
)

func TestCompareRanks(t *testing.T) {
	ordered := []*Node{
		Null(),
		FromBool(false),
		FromBool(true),
		FromInt(1),
		FromInt(2),
		FromString("a"),
		FromString("b"),
		FromSlice([]*Node{FromInt(1)}),
		FromPairs([]KeyVal{{Key: "a", Val: FromInt(1)}}),
	}
	for i := 0; i < len(ordered)-1; i++ {
		if c := Compare(ordered[i], ordered[i+1]); c != -1 {
			t.Errorf("Compare(%d, %d) = %d, want -1", i, i+1, c)
		}
		if c := Compare(ordered[i+1], ordered[i]); c != 1 {
			t.Errorf("Compare(%d, %d) = %d, want 1", i+1, i, c)
		}
	}
	for i := range ordered {
		if Compare(ordered[i], ordered[i]) != 0 {
			t.Errorf("Compare self %d != 0", i)
		}
	}
}

func TestCompareNil(t *testing.T) {
	if Compare(nil, nil) != 0 {
		t.Errorf("nil,nil")
	}
	if Compare(nil, Null()) != -1 {
		t.Errorf("nil < any")
	}
	if Compare(Null(), nil) != 1 {
		t.Errorf("any > nil")
	}
}

func TestCompareObjectsOrderSensitive(t *testing.T) {
	a := FromPairs([]KeyVal{
		{Key: "a", Val: FromInt(1)},
		{Key: "b", Val: FromInt(2)},
	})
	b := FromPairs([]KeyVal{
		{Key: "b", Val: FromInt(2)},
		{Key: "a", Val: FromInt(1)},
	})
	if Equal(a, b) {
		t.Errorf("objects with different key order compare equal")
	}
	if !Equal(a, a.Clone()) {
		t.Errorf("clone not equal")
	}
}

func TestCompareArrayPrefix(t *testing.T) {
	a := FromSlice([]*Node{FromInt(1)})
	b := FromSlice([]*Node{FromInt(1), FromInt(2)})
	if Compare(a, b) != -1 {
		t.Errorf("prefix array should compare less")
	}
}
