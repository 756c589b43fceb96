package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch argument", cli.ErrUsage)
	}
	doc, err := docArg(args, 1)
	if err != nil {
		return err
	}
	patchData := []byte(args[0])
	if cfg.File {
		patchData, err = os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("error reading patch %s: %w", args[0], err)
		}
	}
	ed, err := cfg.loadEditor(doc)
	if err != nil {
		return err
	}
	if err := ed.ApplyJSONPatch(patchData); err != nil {
		return err
	}
	return cfg.writeResult(ed, cc, doc)
}
