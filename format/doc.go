// Package format names the exchange formats jedit reads and writes.
//
// JSON is the primary exchange format; YAML is accepted for import and
// offered for export as a convenience. ErrBadFormat is the sentinel
// wrapped by parse when exchange text does not parse.
package format
