package main

import (
	"fmt"

	"github.com/jedit-io/jedit/edit"

	"github.com/scott-cotton/cli"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: set requires a path and a value", cli.ErrUsage)
	}
	doc, err := docArg(args, 2)
	if err != nil {
		return err
	}
	ed, err := cfg.loadEditor(doc)
	if err != nil {
		return err
	}
	if err := ed.SetValue(args[0], args[1]); err != nil {
		return err
	}
	return cfg.writeResult(ed, cc, doc)
}

func rename(cfg *RenameConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Rename.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: rename requires a path and a key", cli.ErrUsage)
	}
	doc, err := docArg(args, 2)
	if err != nil {
		return err
	}
	ed, err := cfg.loadEditor(doc)
	if err != nil {
		return err
	}
	if err := ed.Rename(args[0], args[1]); err != nil {
		return err
	}
	return cfg.writeResult(ed, cc, doc)
}

func add(cfg *AddConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Add.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: add requires a container path", cli.ErrUsage)
	}
	doc, err := docArg(args, 1)
	if err != nil {
		return err
	}
	ed, err := cfg.loadEditor(doc)
	if err != nil {
		return err
	}
	if err := ed.AddChild(args[0], cfg.Key); err != nil {
		return err
	}
	return cfg.writeResult(ed, cc, doc)
}

func rm(cfg *RmConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Rm.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: rm requires a path", cli.ErrUsage)
	}
	doc, err := docArg(args, 1)
	if err != nil {
		return err
	}
	ed, err := cfg.loadEditor(doc)
	if err != nil {
		return err
	}
	if err := ed.Delete(args[0]); err != nil {
		return err
	}
	return cfg.writeResult(ed, cc, doc)
}

func hoist(cfg *HoistConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Hoist.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: hoist requires a path", cli.ErrUsage)
	}
	doc, err := docArg(args, 1)
	if err != nil {
		return err
	}
	ed, err := cfg.loadEditor(doc)
	if err != nil {
		return err
	}
	if err := ed.Hoist(args[0]); err != nil {
		return err
	}
	return cfg.writeResult(ed, cc, doc)
}

func move(cfg *MoveConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Move.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: move requires source and target paths", cli.ErrUsage)
	}
	doc, err := docArg(args, 2)
	if err != nil {
		return err
	}
	mode := edit.Nest
	if cfg.Mode != "" {
		mode, err = edit.ParseMode(cfg.Mode)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
	}
	ed, err := cfg.loadEditor(doc)
	if err != nil {
		return err
	}
	if err := ed.Move(args[0], args[1], mode); err != nil {
		return err
	}
	return cfg.writeResult(ed, cc, doc)
}

func group(cfg *GroupConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Group.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Name == "" {
		return fmt.Errorf("%w: group requires -name", cli.ErrUsage)
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: group requires at least two paths", cli.ErrUsage)
	}
	// the document argument is the trailing arg when it names a file
	// or is "-"; everything before it is a path to group
	doc := "-"
	paths := args
	if last := args[len(args)-1]; last == "-" || fileExists(last) {
		doc = last
		paths = args[:len(args)-1]
	}
	if len(paths) < 2 {
		return fmt.Errorf("%w: group requires at least two paths", cli.ErrUsage)
	}
	ed, err := cfg.loadEditor(doc)
	if err != nil {
		return err
	}
	if err := ed.Group(paths, cfg.Name); err != nil {
		return err
	}
	return cfg.writeResult(ed, cc, doc)
}
