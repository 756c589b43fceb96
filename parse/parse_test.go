package parse

import (
	"errors"
	"testing"

	"github.com/jedit-io/jedit/format"
	"github.com/jedit-io/jedit/ir"
)

func TestParseOK(t *testing.T) {
	for _, in := range []string{
		`null`,
		`true`,
		`false`,
		`22`,
		`-7`,
		`1e14`,
		`3.14`,
		`"hello"`,
		`[]`,
		`{}`,
		`[1, 2, 3]`,
		`[[1], [2, [3]]]`,
		`{"a": 1}`,
		`{"a": {"b": [1, "two", null]}, "c": false}`,
		`{"": 0}`,
		`{"a.b": 1, "a[0]": 2}`,
	} {
		if _, err := Parse([]byte(in)); err != nil {
			t.Errorf("Parse(%q): %v", in, err)
		}
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{
		``,
		`   `,
		`{`,
		`[1, 2`,
		`{"a": }`,
		`{"a": 1,}`,
		`hello`,
		`{"a": 1} {"b": 2}`,
		`{"a": 1, "a": 2}`,
	} {
		_, err := Parse([]byte(in))
		if err == nil {
			t.Errorf("Parse(%q): expected error", in)
			continue
		}
		if !errors.Is(err, format.ErrBadFormat) {
			t.Errorf("Parse(%q): error does not wrap ErrBadFormat: %v", in, err)
		}
	}
}

func TestParseSyntaxErrorPosition(t *testing.T) {
	_, err := Parse([]byte("{\n  \"a\": 1,\n  \"b\" 2\n}"))
	if err == nil {
		t.Fatal("expected error")
	}
	var synErr *SyntaxError
	if !errors.As(err, &synErr) {
		t.Fatalf("error is not a SyntaxError: %v", err)
	}
	if synErr.Line < 2 {
		t.Errorf("Line = %d, want a position past line 1", synErr.Line)
	}
}

func TestParseKeyOrder(t *testing.T) {
	n := MustParse(`{"z": 1, "a": 2, "m": 3}`)
	want := []string{"z", "a", "m"}
	if len(n.Fields) != len(want) {
		t.Fatalf("fields = %v", n.Fields)
	}
	for i := range want {
		if n.Fields[i] != want[i] {
			t.Errorf("Fields[%d] = %q, want %q", i, n.Fields[i], want[i])
		}
	}
}

func TestParseNumberLexeme(t *testing.T) {
	for _, tc := range []struct {
		in     string
		lexeme string
		isInt  bool
	}{
		{`42`, "42", true},
		{`-3`, "-3", true},
		{`1e2`, "1e2", false},
		{`0.50`, "0.50", false},
	} {
		n := MustParse(tc.in)
		if n.Type != ir.NumberType {
			t.Errorf("Parse(%q).Type = %s", tc.in, n.Type)
			continue
		}
		if n.Number != tc.lexeme {
			t.Errorf("Parse(%q).Number = %q, want %q", tc.in, n.Number, tc.lexeme)
		}
		if tc.isInt && n.Int64 == nil {
			t.Errorf("Parse(%q): Int64 not set", tc.in)
		}
		if !tc.isInt && n.Float64 == nil {
			t.Errorf("Parse(%q): Float64 not set", tc.in)
		}
	}
}

func TestParseYAML(t *testing.T) {
	n, err := Parse([]byte("z: 1\na:\n  - x\n  - y\n"), ParseYAML())
	if err != nil {
		t.Fatal(err)
	}
	if n.Fields[0] != "z" || n.Fields[1] != "a" {
		t.Errorf("yaml key order = %v", n.Fields)
	}
	if n.Values[1].Type != ir.ArrayType || len(n.Values[1].Values) != 2 {
		t.Errorf("yaml sequence wrong: %v", n.Values[1])
	}
}

func TestParseYAMLNotJSON(t *testing.T) {
	if _, err := Parse([]byte("a: 1\n")); err == nil {
		t.Errorf("yaml text accepted as json")
	}
}

func TestString(t *testing.T) {
	n, err := String("  42 ")
	if err != nil {
		t.Fatal(err)
	}
	if n.Int64 == nil || *n.Int64 != 42 {
		t.Errorf("String trim parse failed: %v", n)
	}
}
