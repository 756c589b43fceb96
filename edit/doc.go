// Package edit implements the structural transform engine and its
// undo/redo history.
//
// An Editor owns a single live document (an ir.Node tree) and is its
// sole mutator; views work from the clones handed out by Root, Get,
// and PathTable. Operations address nodes with document paths (see
// ir/dpath) and run synchronously on the caller's goroutine.
//
// Every operation follows the same discipline: validate first, then
// record exactly one whole-document snapshot, then mutate. A failed
// operation therefore leaves the document bit-for-bit unchanged and
// records no history entry. Undo and redo walk a linear history; any
// fresh edit clears the redo branch.
//
// Key collisions are handled two ways. Transforms that introduce keys
// as a side effect (Move into an object, Group) deconflict them with
// the smallest _N suffix; operations whose key is the caller's
// explicit intent (Rename, AddChild) and Hoist fail with
// ErrKeyConflict instead.
package edit
