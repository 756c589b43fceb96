package edit

import (
	"bytes"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch/v5"

	"github.com/jedit-io/jedit/debug"
	"github.com/jedit-io/jedit/encode"
	"github.com/jedit-io/jedit/parse"
)

// ApplyJSONPatch applies an RFC 6902 patch document to the current
// document as a single undoable edit. Decode or application failure
// leaves the document untouched.
func (e *Editor) ApplyJSONPatch(patch []byte) error {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return fmt.Errorf("decoding patch: %w", err)
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(e.root, buf, encode.EncodeWire(true)); err != nil {
		return err
	}
	out, err := ops.Apply(buf.Bytes())
	if err != nil {
		return fmt.Errorf("applying patch: %w", err)
	}
	res, err := parse.Parse(out)
	if err != nil {
		return fmt.Errorf("patch result: %w", err)
	}
	if debug.Edit() {
		debug.Logf("edit: json-patch with %d ops\n", len(ops))
	}
	e.hist.save(e.root)
	e.root = res
	return nil
}
