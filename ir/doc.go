// Package ir provides the in-memory representation of jedit documents.
//
// # Overview
//
// A document is a tree of ir.Node values. The IR is a simple recursive
// tagged union: null, bool, number, string, array, and object. Objects
// are ordered: Fields[i] names the value at Values[i], and that slice
// order is the insertion order preserved by every operation in the
// repository.
//
// Each node maintains parent back-links (Parent, ParentIndex,
// ParentField) so positions can be recomputed from any node. The
// mutating helpers on Node (InsertValue, RemoveField, ...) keep the
// back-links consistent; code that splices the slices directly must
// call Renumber.
//
// # Paths
//
// Nodes are addressed by document paths (see ir/dpath):
//
//	n, err := root.Resolve(dpath.MustParse("a.b[0]"))
//
// Resolve returns the live node; ResolveParent returns the containing
// node plus the final segment, which is what structural edits need.
// Path errors wrap ErrPath.
//
// # Comparison
//
// Compare orders nodes structurally and Equal(a, b) is order-sensitive
// structural equality, the equality the parse/encode round-trip law is
// stated in.
//
// # Ownership
//
// Node trees are not thread-safe and the editing engine (package edit)
// is the sole mutator of a live document. Views receive clones.
package ir
