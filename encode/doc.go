// Package encode renders IR trees as exchange text.
//
// The default output is JSON with 2-space indentation, objects in
// insertion order and arrays in index order. EncodeWire selects
// compact output, EncodeColors ANSI-colored output for terminal
// views, and EncodeFormat(format.YAMLFormat) YAML export.
package encode
