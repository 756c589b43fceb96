package dpath

import (
	"testing"
)

func TestParseRoundTrip(t *testing.T) {
	for _, in := range []string{
		"a",
		"a.b",
		"a.b.c",
		"a[0]",
		"a[0].b",
		"[0]",
		"[0][1]",
		"[2].a[0]",
		"'a.b'",
		"'a[0]'",
		"''",
		`'it\'s'`,
	} {
		p, err := Parse(in)
		if err != nil {
			t.Errorf("Parse(%q): %v", in, err)
			continue
		}
		if got := p.String(); got != in {
			t.Errorf("Parse(%q).String() = %q", in, got)
		}
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{
		".",
		"a.",
		".a",
		"a..b",
		"a[",
		"a[x]",
		"a[0",
		"'unterminated",
	} {
		if _, err := Parse(in); err == nil {
			t.Errorf("Parse(%q): expected error", in)
		}
	}
}

func TestParseQuoting(t *testing.T) {
	p, err := Parse("'a.b'.c")
	if err != nil {
		t.Fatal(err)
	}
	if p.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", p.Len())
	}
	if p.Field == nil || *p.Field != "a.b" {
		t.Errorf("first segment = %v, want a.b", p.Field)
	}
	if p.Next.Field == nil || *p.Next.Field != "c" {
		t.Errorf("second segment = %v, want c", p.Next.Field)
	}
}

func TestPathOps(t *testing.T) {
	p := MustParse("a.b[3]")
	if got := p.Last().String(); got != "[3]" {
		t.Errorf("Last() = %q", got)
	}
	if got := p.Parent().String(); got != "a.b" {
		t.Errorf("Parent() = %q", got)
	}
	q := p.Copy()
	if !Equal(p, q) {
		t.Errorf("Copy not Equal")
	}
	r := MustParse("a.b").Append(NewIndex(3))
	if !Equal(p, r) {
		t.Errorf("Append mismatch: %q vs %q", p, r)
	}
	if Equal(p, MustParse("a.b[4]")) {
		t.Errorf("Equal on different index")
	}
}
