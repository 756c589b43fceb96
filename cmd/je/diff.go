package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jedit-io/jedit/ir"
	"github.com/jedit-io/jedit/libdiff"
	"github.com/jedit-io/jedit/parse"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two documents", cli.ErrUsage)
	}
	a, err := parseArg(cfg.MainConfig, args[0])
	if err != nil {
		return err
	}
	b, err := parseArg(cfg.MainConfig, args[1])
	if err != nil {
		return err
	}
	for _, ch := range libdiff.Changes(a, b) {
		p := ch.Path
		if p == "" {
			p = "."
		}
		if _, err := fmt.Fprintf(cc.Out, "%s\t%s\n", ch.Kind, p); err != nil {
			return err
		}
	}
	return nil
}

func parseArg(cfg *MainConfig, arg string) (*ir.Node, error) {
	var rdr io.Reader
	if arg == "-" {
		rdr = os.Stdin
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return nil, fmt.Errorf("error opening %s: %w", arg, err)
		}
		defer f.Close()
		rdr = f
	}
	d, err := io.ReadAll(rdr)
	if err != nil {
		return nil, err
	}
	node, err := parse.Parse(d, cfg.parseOpts()...)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", arg, err)
	}
	return node, nil
}
