// Package dpath implements document paths: ordered key/index
// sequences addressing a node from the root of a document tree.
//
// Paths address positions in the live tree, not stable identities; a
// structural edit can change which node a path selects. The editing
// engine reissues full path tables after each mutation for exactly
// this reason.
package dpath
