package dpath

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Path represents a document path: a sequence of segments, each
// selecting an object field or an array index.
//   - "a.b" → field "a", then field "b"
//   - "a[0]" → field "a", then index 0
//   - "'odd.key'[2].b" → quoted field, index 2, field "b"
//   - "" → the root (represented as a nil *Path)
//
// A path is a forward linked list; exactly one of Field and Index is
// set per segment.
type Path struct {
	Field *string // object field name
	Index *int    // array index
	Next  *Path   // next segment (nil for leaf)
}

func NewField(f string) *Path {
	return &Path{Field: &f}
}

func NewIndex(i int) *Path {
	return &Path{Index: &i}
}

// String returns the canonical path string. Parse(p.String()) yields a
// path equal to p.
func (p *Path) String() string {
	if p == nil {
		return ""
	}
	buf := bytes.NewBuffer(nil)
	x := p
	for x != nil {
		if x.Field != nil {
			if buf.Len() > 0 {
				buf.WriteByte('.')
			}
			field := *x.Field
			if quoteField(field) {
				buf.WriteString(quote(field))
			} else {
				buf.WriteString(field)
			}
			x = x.Next
			continue
		}
		if x.Index != nil {
			fmt.Fprintf(buf, "[%d]", *x.Index)
			x = x.Next
			continue
		}
		x = x.Next
	}
	return buf.String()
}

// SegmentString returns the canonical string of this single segment,
// not the entire path.
func (p *Path) SegmentString() string {
	if p == nil {
		return ""
	}
	if p.Field != nil {
		field := *p.Field
		if quoteField(field) {
			return quote(field)
		}
		return field
	}
	if p.Index != nil {
		return fmt.Sprintf("[%d]", *p.Index)
	}
	return ""
}

// Len returns the number of segments.
func (p *Path) Len() int {
	n := 0
	for x := p; x != nil; x = x.Next {
		n++
	}
	return n
}

// Last returns the final segment, or nil for the root path.
func (p *Path) Last() *Path {
	if p == nil {
		return nil
	}
	x := p
	for x.Next != nil {
		x = x.Next
	}
	return x
}

// Parent returns a copy of p without its final segment. The root path
// and single-segment paths yield nil.
func (p *Path) Parent() *Path {
	if p == nil || p.Next == nil {
		return nil
	}
	var head, tail *Path
	for x := p; x.Next != nil; x = x.Next {
		seg := x.copySegment()
		seg.Next = nil
		if head == nil {
			head, tail = seg, seg
		} else {
			tail.Next = seg
			tail = seg
		}
	}
	return head
}

// Copy returns a deep copy of p.
func (p *Path) Copy() *Path {
	if p == nil {
		return nil
	}
	res := p.copySegment()
	res.Next = p.Next.Copy()
	return res
}

// Append returns a copy of p with seg's segments appended. p is not
// modified.
func (p *Path) Append(seg *Path) *Path {
	if p == nil {
		return seg.Copy()
	}
	res := p.Copy()
	res.Last().Next = seg.Copy()
	return res
}

func Equal(a, b *Path) bool {
	for a != nil && b != nil {
		if !segmentsEqual(a, b) {
			return false
		}
		a, b = a.Next, b.Next
	}
	return a == nil && b == nil
}

func segmentsEqual(a, b *Path) bool {
	if (a.Field == nil) != (b.Field == nil) {
		return false
	}
	if a.Field != nil {
		return *a.Field == *b.Field
	}
	if (a.Index == nil) != (b.Index == nil) {
		return false
	}
	if a.Index != nil {
		return *a.Index == *b.Index
	}
	return true
}

func (p *Path) copySegment() *Path {
	if p == nil {
		return nil
	}
	res := &Path{}
	*res = *p
	if p.Field != nil {
		tmp := *p.Field
		res.Field = &tmp
		return res
	}
	if p.Index != nil {
		tmp := *p.Index
		res.Index = &tmp
		return res
	}
	return res
}

// Parse parses a path string. The empty string yields the nil root
// path.
func Parse(path string) (*Path, error) {
	if path == "" {
		return nil, nil
	}
	var head, tail *Path
	add := func(seg *Path) {
		if head == nil {
			head, tail = seg, seg
			return
		}
		tail.Next = seg
		tail = seg
	}
	i := 0
	atStart := true
	for i < len(path) {
		switch {
		case path[i] == '[':
			j := strings.IndexByte(path[i:], ']')
			if j == -1 {
				return nil, fmt.Errorf("unterminated index at offset %d in %q", i, path)
			}
			idx, err := strconv.Atoi(path[i+1 : i+j])
			if err != nil {
				return nil, fmt.Errorf("bad index %q in %q", path[i+1:i+j], path)
			}
			if idx < 0 {
				return nil, fmt.Errorf("negative index %d in %q", idx, path)
			}
			add(NewIndex(idx))
			i += j + 1
			atStart = false
		case path[i] == '.':
			if atStart {
				return nil, fmt.Errorf("leading '.' in %q", path)
			}
			i++
			f, n, err := parseField(path[i:], path)
			if err != nil {
				return nil, err
			}
			add(NewField(f))
			i += n
		default:
			if !atStart {
				return nil, fmt.Errorf("expected '.' or '[' at offset %d in %q", i, path)
			}
			f, n, err := parseField(path[i:], path)
			if err != nil {
				return nil, err
			}
			add(NewField(f))
			i += n
			atStart = false
		}
	}
	return head, nil
}

// MustParse is Parse, panicking on error. For tests and literals.
func MustParse(path string) *Path {
	p, err := Parse(path)
	if err != nil {
		panic(err)
	}
	return p
}

func parseField(s, whole string) (string, int, error) {
	if s == "" {
		return "", 0, fmt.Errorf("empty field in %q", whole)
	}
	if s[0] == '\'' {
		buf := bytes.NewBuffer(nil)
		i := 1
		for i < len(s) {
			switch s[i] {
			case '\\':
				if i+1 >= len(s) {
					return "", 0, fmt.Errorf("dangling escape in %q", whole)
				}
				buf.WriteByte(s[i+1])
				i += 2
			case '\'':
				return buf.String(), i + 1, nil
			default:
				buf.WriteByte(s[i])
				i++
			}
		}
		return "", 0, fmt.Errorf("unterminated quote in %q", whole)
	}
	i := 0
	for i < len(s) && s[i] != '.' && s[i] != '[' {
		if s[i] == ']' || s[i] == '\'' {
			return "", 0, fmt.Errorf("unquoted %q in field at %q", s[i], whole)
		}
		i++
	}
	if i == 0 {
		return "", 0, fmt.Errorf("empty field in %q", whole)
	}
	return s[:i], i, nil
}

// quoteField reports whether field needs quoting in path syntax.
func quoteField(field string) bool {
	if field == "" {
		return true
	}
	return strings.ContainsAny(field, ".[]'\\")
}

func quote(field string) string {
	buf := bytes.NewBuffer(nil)
	buf.WriteByte('\'')
	for i := 0; i < len(field); i++ {
		if field[i] == '\'' || field[i] == '\\' {
			buf.WriteByte('\\')
		}
		buf.WriteByte(field[i])
	}
	buf.WriteByte('\'')
	return buf.String()
}
