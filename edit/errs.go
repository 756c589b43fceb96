package edit

import "errors"

var (
	// ErrKeyConflict reports a destination key already occupied where
	// no deconfliction policy applies: rename, addChild, hoist.
	ErrKeyConflict = errors.New("key conflict")

	// ErrInvalidTarget reports an unusable move or group target: a
	// root source, a target path that does not resolve, or a container
	// of the wrong kind.
	ErrInvalidTarget = errors.New("invalid target")
)
