// Package server exposes an editing session service over JSON-RPC 2.0.
//
// Each client connection gets its own session holding a document and
// its undo history.  Clients open a document, apply structural edits by
// path, and receive the re-encoded text plus the set of changed paths
// after every operation.
//
// # Methods
//
//	document/open    load a document from text
//	document/text    current text and path table
//	document/update  replace the document from edited text
//	edit/set         replace the value at a path
//	edit/rename      rename an object key
//	edit/add         add a child to a container
//	edit/delete      remove the node at a path
//	edit/hoist       splice a container into its parent
//	edit/move        relocate a subtree
//	edit/group       gather siblings under a new key
//	edit/patch       apply an RFC 6902 patch
//	edit/select      evaluate a selection expression
//	history/undo     step back one edit
//	history/redo     reapply an undone edit
//
// Parse failures in document/update are reported as diagnostics with
// line and column positions; the session document is left untouched.
package server
