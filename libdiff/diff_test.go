package libdiff

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jedit-io/jedit/parse"
)

func TestChangesScalars(t *testing.T) {
	for _, tc := range []struct {
		from, to string
		want     []Change
	}{
		{`1`, `1`, nil},
		{`1`, `2`, []Change{{Path: "", Kind: Modified}}},
		{`1`, `"1"`, []Change{{Path: "", Kind: Modified}}},
		{`null`, `false`, []Change{{Path: "", Kind: Modified}}},
	} {
		got := Changes(parse.MustParse(tc.from), parse.MustParse(tc.to))
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("Changes(%s, %s) mismatch (-want +got):\n%s", tc.from, tc.to, diff)
		}
	}
}

func TestChangesObjects(t *testing.T) {
	for _, tc := range []struct {
		from, to string
		want     []Change
	}{
		{
			`{"a": 1, "b": 2}`,
			`{"a": 1, "b": 3}`,
			[]Change{{Path: "b", Kind: Modified}},
		},
		{
			`{"a": 1}`,
			`{"a": 1, "b": 2}`,
			[]Change{{Path: "b", Kind: Added}},
		},
		{
			`{"a": 1, "b": 2}`,
			`{"b": 2}`,
			[]Change{{Path: "a", Kind: Removed}},
		},
		{
			// renames count as remove plus add
			`{"a": 1}`,
			`{"z": 1}`,
			[]Change{{Path: "a", Kind: Removed}, {Path: "z", Kind: Added}},
		},
		{
			// untouched fields stay aligned around an insertion
			`{"a": 1, "b": {"x": 2}}`,
			`{"n": 0, "a": 1, "b": {"x": 3}}`,
			[]Change{{Path: "n", Kind: Added}, {Path: "b.x", Kind: Modified}},
		},
	} {
		got := Changes(parse.MustParse(tc.from), parse.MustParse(tc.to))
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("Changes(%s, %s) mismatch (-want +got):\n%s", tc.from, tc.to, diff)
		}
	}
}

func TestChangesArrays(t *testing.T) {
	for _, tc := range []struct {
		from, to string
		want     []Change
	}{
		{
			`[1, 2, 3]`,
			`[1, 9, 3]`,
			[]Change{{Path: "[1]", Kind: Modified}},
		},
		{
			`[1]`,
			`[1, 2]`,
			[]Change{{Path: "[1]", Kind: Added}},
		},
		{
			`[1, 2]`,
			`[1]`,
			[]Change{{Path: "[1]", Kind: Removed}},
		},
	} {
		got := Changes(parse.MustParse(tc.from), parse.MustParse(tc.to))
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("Changes(%s, %s) mismatch (-want +got):\n%s", tc.from, tc.to, diff)
		}
	}
}

func TestChangesNested(t *testing.T) {
	from := parse.MustParse(`{"svc": {"port": 80, "tags": ["a", "b"]}, "n": 1}`)
	to := parse.MustParse(`{"svc": {"port": 8080, "tags": ["a"]}, "n": 1}`)
	want := []string{"svc.port", "svc.tags[1]"}
	got := Paths(from, to)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Paths mismatch (-want +got):\n%s", diff)
	}
}

func TestChangesQuotedField(t *testing.T) {
	from := parse.MustParse(`{"odd.key": 1}`)
	to := parse.MustParse(`{"odd.key": 2}`)
	got := Paths(from, to)
	if len(got) != 1 || got[0] != "'odd.key'" {
		t.Errorf("quoted changed path = %v", got)
	}
}

func TestKindString(t *testing.T) {
	for k, want := range map[Kind]string{
		Modified: "modified",
		Added:    "added",
		Removed:  "removed",
	} {
		if k.String() != want {
			t.Errorf("Kind(%d).String() = %q", int(k), k.String())
		}
	}
}
