package edit

import (
	"github.com/jedit-io/jedit/debug"
	"github.com/jedit-io/jedit/ir"
)

// history holds whole-document snapshots in two stacks. The policy is
// linear: a new edit invalidates any redo branch.
type history struct {
	undo []*ir.Node
	redo []*ir.Node
}

// save pushes a deep copy of cur onto the undo stack and clears the
// redo stack. Every mutating operation calls it exactly once, after
// its precondition checks have passed and before any change.
func (h *history) save(cur *ir.Node) {
	if debug.History() {
		debug.Logf("history: save (undo %d, redo %d dropped)\n", len(h.undo), len(h.redo))
	}
	h.undo = append(h.undo, cur.Clone())
	h.redo = nil
}

// stepBack exchanges cur for the top of the undo stack, parking cur on
// the redo stack. Returns nil when there is nothing to undo.
func (h *history) stepBack(cur *ir.Node) *ir.Node {
	n := len(h.undo)
	if n == 0 {
		return nil
	}
	h.redo = append(h.redo, cur)
	res := h.undo[n-1]
	h.undo = h.undo[:n-1]
	return res
}

// stepForward exchanges cur for the top of the redo stack, parking cur
// on the undo stack. Returns nil when there is nothing to redo.
func (h *history) stepForward(cur *ir.Node) *ir.Node {
	n := len(h.redo)
	if n == 0 {
		return nil
	}
	h.undo = append(h.undo, cur)
	res := h.redo[n-1]
	h.redo = h.redo[:n-1]
	return res
}
