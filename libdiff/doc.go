// Package libdiff computes structural change sets between two documents.
//
// # Usage
//
//	// Paths whose values differ between two documents
//	changed := libdiff.Paths(oldDoc, newDoc)
//
// Changed paths are reported in document order and identify the nodes a
// consumer needs to refresh after an edit, such as a tree view or an
// editing session client.
//
// # Related Packages
//
//   - github.com/jedit-io/jedit/ir - document representation
//   - github.com/jedit-io/jedit/edit - operations producing changes
package libdiff
