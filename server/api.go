package server

import (
	"encoding/json"

	"go.lsp.dev/protocol"
)

// Method names for the session protocol.
const (
	MethodDocumentOpen   = "document/open"
	MethodDocumentText   = "document/text"
	MethodDocumentUpdate = "document/update"
	MethodEditSet        = "edit/set"
	MethodEditRename     = "edit/rename"
	MethodEditAdd        = "edit/add"
	MethodEditDelete     = "edit/delete"
	MethodEditHoist      = "edit/hoist"
	MethodEditMove       = "edit/move"
	MethodEditGroup      = "edit/group"
	MethodEditPatch      = "edit/patch"
	MethodEditSelect     = "edit/select"
	MethodHistoryUndo    = "history/undo"
	MethodHistoryRedo    = "history/redo"
)

// Error codes returned to clients, in the JSON-RPC server error range.
const (
	CodePathError     = -32010
	CodeKeyConflict   = -32011
	CodeInvalidTarget = -32012
	CodeBadFormat     = -32013
)

// DocState describes the session document after an operation.
type DocState struct {
	// Text is the document re-encoded in the session format.
	Text string `json:"text"`

	// Paths lists every node path in document order, root first.
	Paths []string `json:"paths"`

	// Changed lists the paths whose values differ from before the
	// operation.  Empty for read-only methods.
	Changed []string `json:"changed,omitempty"`
}

type OpenParams struct {
	Text   string `json:"text"`
	Format string `json:"format,omitempty"`
}

type UpdateParams struct {
	Text string `json:"text"`
}

// UpdateResult carries diagnostics when the new text does not parse.
// Doc is nil in that case and the session document is unchanged.
type UpdateResult struct {
	Doc         *DocState             `json:"doc,omitempty"`
	Diagnostics []protocol.Diagnostic `json:"diagnostics,omitempty"`
}

type SetParams struct {
	Path  string `json:"path"`
	Value string `json:"value"`
}

type RenameParams struct {
	Path string `json:"path"`
	Key  string `json:"key"`
}

type AddParams struct {
	Path string `json:"path"`
	Key  string `json:"key,omitempty"`
}

type DeleteParams struct {
	Path string `json:"path"`
}

type HoistParams struct {
	Path string `json:"path"`
}

type MoveParams struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Mode   string `json:"mode"`
}

type GroupParams struct {
	Paths []string `json:"paths"`
	Name  string   `json:"name"`
}

type PatchParams struct {
	Patch json.RawMessage `json:"patch"`
}

type SelectParams struct {
	Expr string `json:"expr"`
}

type SelectResult struct {
	Paths []string `json:"paths"`
}

// HistoryResult reports whether the history step happened.  Doc is the
// state after the step, unchanged when Ok is false.
type HistoryResult struct {
	Ok  bool      `json:"ok"`
	Doc *DocState `json:"doc"`
}
