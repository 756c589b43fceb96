package main

import (
	"fmt"

	"github.com/jedit-io/jedit/encode"
	"github.com/jedit-io/jedit/eval"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires a document path", cli.ErrUsage)
	}
	doc, err := docArg(args, 1)
	if err != nil {
		return err
	}
	ed, err := cfg.loadEditor(doc)
	if err != nil {
		return err
	}
	node, err := ed.Get(args[0])
	if err != nil {
		return err
	}
	return encode.Encode(node, cc.Out, cfg.encOpts(cc.Out)...)
}

func paths(cfg *PathsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Paths.Parse(cc, args)
	if err != nil {
		return err
	}
	doc, err := docArg(args, 0)
	if err != nil {
		return err
	}
	ed, err := cfg.loadEditor(doc)
	if err != nil {
		return err
	}
	for _, entry := range ed.PathTable() {
		p := entry.Path
		if p == "" {
			p = "."
		}
		if _, err := fmt.Fprintf(cc.Out, "%s\t%s\n", p, entry.Node.Type); err != nil {
			return err
		}
	}
	return nil
}

func sel(cfg *SelectConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Select.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: select requires an expression", cli.ErrUsage)
	}
	doc, err := docArg(args, 1)
	if err != nil {
		return err
	}
	ed, err := cfg.loadEditor(doc)
	if err != nil {
		return err
	}
	matched, err := eval.Select(ed.Root(), args[0])
	if err != nil {
		return fmt.Errorf("error evaluating %q: %w", args[0], err)
	}
	for _, p := range matched {
		if p == "" {
			p = "."
		}
		if _, err := fmt.Fprintln(cc.Out, p); err != nil {
			return err
		}
	}
	return nil
}
