package ir

import "errors"

// ErrPath reports a path that does not resolve against the live tree,
// or one that addresses the wrong container kind.
var ErrPath = errors.New("path error")
