package edit

import (
	"fmt"

	"github.com/jedit-io/jedit/ir"
)

// Deconflict returns key if absent from obj, otherwise the first of
// key_1, key_2, ... absent from obj. Deterministic: the smallest
// unused suffix wins.
//
// The policy applies where a transform introduces a key into a
// destination object: cross-object moves, nesting, grouping. It never
// applies to array destinations, and operations with a strict conflict
// policy (rename, addChild, hoist) fail with ErrKeyConflict instead.
func Deconflict(obj *ir.Node, key string) string {
	if ir.IndexOf(obj, key) == -1 {
		return key
	}
	for i := 1; ; i++ {
		cand := fmt.Sprintf("%s_%d", key, i)
		if ir.IndexOf(obj, cand) == -1 {
			return cand
		}
	}
}
