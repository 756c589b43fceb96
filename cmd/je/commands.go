package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}, &cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "je").
		WithSynopsis("je [opts] command [opts]").
		WithDescription("je is a tool for structural editing of json and yaml documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return jeMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			GetCommand(cfg),
			PathsCommand(cfg),
			SetCommand(cfg),
			RenameCommand(cfg),
			AddCommand(cfg),
			RmCommand(cfg),
			HoistCommand(cfg),
			MoveCommand(cfg),
			GroupCommand(cfg),
			PatchCommand(cfg),
			SelectCommand(cfg),
			DiffCommand(cfg),
			ServeCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.View, "view").
		WithAliases("v").
		WithOpts(opts...).
		WithSynopsis("view [files]").
		WithDescription("view documents, in color on terminals").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Get, "get").
		WithAliases("g").
		WithSynopsis("get <path> [file]").
		WithDescription("get the value at a document path").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
}

func PathsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PathsConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Paths, "paths").
		WithAliases("ls").
		WithSynopsis("paths [file]").
		WithDescription("list every path in the document, in document order").
		WithRun(func(cc *cli.Context, args []string) error {
			return paths(cfg, cc, args)
		})
}

func SetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SetConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Set, "set").
		WithAliases("s").
		WithSynopsis("set <path> <value> [file]").
		WithDescription("replace the value at a path; value parses as a document or falls back to a string").
		WithRun(func(cc *cli.Context, args []string) error {
			return set(cfg, cc, args)
		})
}

func RenameCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RenameConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Rename, "rename").
		WithAliases("ren").
		WithSynopsis("rename <path> <key> [file]").
		WithDescription("rename an object key, keeping its position").
		WithRun(func(cc *cli.Context, args []string) error {
			return rename(cfg, cc, args)
		})
}

func AddCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &AddConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Add, "add").
		WithOpts(opts...).
		WithSynopsis("add [-k key] <path> [file]").
		WithDescription("add a child to the container at a path").
		WithRun(func(cc *cli.Context, args []string) error {
			return add(cfg, cc, args)
		})
}

func RmCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RmConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Rm, "rm").
		WithAliases("del").
		WithSynopsis("rm <path> [file]").
		WithDescription("remove the node at a path").
		WithRun(func(cc *cli.Context, args []string) error {
			return rm(cfg, cc, args)
		})
}

func HoistCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &HoistConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Hoist, "hoist").
		WithSynopsis("hoist <path> [file]").
		WithDescription("splice a container's children into its parent at its position").
		WithRun(func(cc *cli.Context, args []string) error {
			return hoist(cfg, cc, args)
		})
}

func MoveCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MoveConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Move, "move").
		WithAliases("mv").
		WithOpts(opts...).
		WithSynopsis("move [-mode before|after|nest] <source> <target> [file]").
		WithDescription("relocate a subtree relative to a target path").
		WithRun(func(cc *cli.Context, args []string) error {
			return move(cfg, cc, args)
		})
}

func GroupCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GroupConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Group, "group").
		WithOpts(opts...).
		WithSynopsis("group -name <key> <path> <path> [path ...] [file]").
		WithDescription("gather sibling nodes under a new container").
		WithRun(func(cc *cli.Context, args []string) error {
			return group(cfg, cc, args)
		})
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Patch, "patch").
		WithAliases("p").
		WithOpts(opts...).
		WithSynopsis("patch [-f] <patch> [file]").
		WithDescription("apply an RFC 6902 JSON patch").
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
}

func SelectCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SelectConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Select, "select").
		WithAliases("sel", "q").
		WithSynopsis("select <expr> [file]").
		WithDescription("print paths of nodes matching a boolean expression over key, path, value, type, depth").
		WithRun(func(cc *cli.Context, args []string) error {
			return sel(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d").
		WithSynopsis("diff <a> <b>").
		WithDescription("print paths whose values differ between two documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func ServeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ServeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Serve, "serve").
		WithOpts(opts...).
		WithSynopsis("serve [-addr host:port | -stdio] [-config file]").
		WithDescription("run the editing session server").
		WithRun(func(cc *cli.Context, args []string) error {
			return serve(cfg, cc, args)
		})
}
