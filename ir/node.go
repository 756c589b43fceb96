package ir

import (
	"maps"
	"slices"
	"strconv"
)

// Node is a single value in a document tree. It works as a recursive
// tagged union: the Type field selects which of the remaining fields
// carry the value.
//
// For ObjectType nodes, Fields[i] is the key for the value at
// Values[i]; the slice order is the object's insertion order and there
// are always as many fields as values. ArrayType nodes use Values
// only. Scalar nodes use String, Bool, or the number fields.
//
// Number values are placed under Int64 or Float64; Number retains the
// source lexeme when the node was parsed from text, so encoding can
// reproduce it exactly.
//
// Each node maintains parent back-links (Parent, ParentIndex,
// ParentField) allowing navigation up the tree. Mutators in this
// package keep the back-links consistent.
type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string
	Fields      []string
	Values      []*Node

	String  string
	Bool    bool
	Number  string
	Float64 *float64
	Int64   *int64
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Parent = y.Parent
	dst.ParentIndex = y.ParentIndex
	dst.ParentField = y.ParentField
	dst.Type = y.Type
	dst.Fields = slices.Clone(y.Fields)
	dst.Values = make([]*Node, len(y.Values))
	for i, yv := range y.Values {
		dstI := &Node{}
		yv.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		if y.Type == ObjectType {
			dstI.ParentField = y.Fields[i]
		}
		dst.Values[i] = dstI
	}
	dst.String = y.String
	dst.Number = y.Number
	if y.Float64 != nil {
		f := *y.Float64
		dst.Float64 = &f
	}
	if y.Int64 != nil {
		i := *y.Int64
		dst.Int64 = &i
	}
	dst.Bool = y.Bool
	return dst
}

func FromString(v string) *Node {
	return &Node{
		Type:   StringType,
		String: v,
	}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:   NumberType,
		Int64:  &v,
		Number: strconv.FormatInt(v, 10),
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: &f,
		Number:  strconv.FormatFloat(f, 'g', -1, 64),
	}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func Null() *Node {
	return &Node{Type: NullType}
}

func ToMap(node *Node) map[string]*Node {
	if node.Type != ObjectType {
		return nil
	}
	res := make(map[string]*Node, len(node.Fields))
	for i := range node.Fields {
		res[node.Fields[i]] = node.Values[i]
	}
	return res
}

// FromMap builds an object node with keys in sorted order. Use
// FromPairs when insertion order matters.
func FromMap(yMap map[string]*Node) *Node {
	keys := slices.Sorted(maps.Keys(yMap))
	kvs := make([]KeyVal, len(keys))
	for i, key := range keys {
		kvs[i] = KeyVal{Key: key, Val: yMap[key]}
	}
	return FromPairs(kvs)
}

type KeyVal struct {
	Key string
	Val *Node
}

// FromPairs builds an object node preserving the given key order.
func FromPairs(kvs []KeyVal) *Node {
	res := &Node{}
	return FromPairsAt(res, kvs)
}

func FromPairsAt(res *Node, kvs []KeyVal) *Node {
	res.Type = ObjectType
	res.Fields = make([]string, len(kvs))
	res.Values = make([]*Node, len(kvs))
	for i := range kvs {
		kv := &kvs[i]
		kv.Val.Parent = res
		kv.Val.ParentIndex = i
		kv.Val.ParentField = kv.Key
		res.Fields[i] = kv.Key
		res.Values[i] = kv.Val
	}
	return res
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{
		Type: ArrayType,
	}
	res.Values = make([]*Node, len(ySlice))
	for i, y := range ySlice {
		res.Values[i] = y
		y.Parent = res
		y.ParentIndex = i
		y.ParentField = ""
	}
	return res
}

func Get(y *Node, field string) *Node {
	i := IndexOf(y, field)
	if i == -1 {
		return nil
	}
	return y.Values[i]
}

func IndexOf(y *Node, field string) int {
	if y.Type != ObjectType {
		return -1
	}
	return slices.Index(y.Fields, field)
}

// Renumber rewrites the parent back-links of y's direct children.
// Callers that splice Fields/Values directly must renumber afterwards.
func (y *Node) Renumber() {
	for i, yv := range y.Values {
		yv.Parent = y
		yv.ParentIndex = i
		if y.Type == ObjectType {
			yv.ParentField = y.Fields[i]
		} else {
			yv.ParentField = ""
		}
	}
}

// InsertValue inserts v at index i of an array node, shifting later
// elements up. i is clamped to [0, len].
func (y *Node) InsertValue(i int, v *Node) {
	if i < 0 {
		i = 0
	}
	if i > len(y.Values) {
		i = len(y.Values)
	}
	y.Values = slices.Insert(y.Values, i, v)
	y.Renumber()
}

// RemoveValue removes and returns the element at index i of an array
// node, shifting later elements down.
func (y *Node) RemoveValue(i int) *Node {
	v := y.Values[i]
	y.Values = slices.Delete(y.Values, i, i+1)
	y.Renumber()
	v.Parent = nil
	v.ParentIndex = 0
	v.ParentField = ""
	return v
}

// InsertField inserts key:v at index i of an object node. i is clamped
// to [0, len]. The caller is responsible for key uniqueness.
func (y *Node) InsertField(i int, key string, v *Node) {
	if i < 0 {
		i = 0
	}
	if i > len(y.Values) {
		i = len(y.Values)
	}
	y.Fields = slices.Insert(y.Fields, i, key)
	y.Values = slices.Insert(y.Values, i, v)
	y.Renumber()
}

// RemoveField removes and returns the value at index i of an object
// node together with its key.
func (y *Node) RemoveField(i int) (string, *Node) {
	key := y.Fields[i]
	v := y.Values[i]
	y.Fields = slices.Delete(y.Fields, i, i+1)
	y.Values = slices.Delete(y.Values, i, i+1)
	y.Renumber()
	v.Parent = nil
	v.ParentIndex = 0
	v.ParentField = ""
	return key, v
}

func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

func (y *Node) Root() *Node {
	res := y
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}
