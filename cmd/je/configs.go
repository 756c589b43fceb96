package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jedit-io/jedit/edit"
	"github.com/jedit-io/jedit/encode"
	"github.com/jedit-io/jedit/format"
	"github.com/jedit-io/jedit/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	WireOut bool `cli:"name=wire desc='output in compact format'"`
	Write   bool `cli:"name=w desc='write result back to the input file'"`

	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) inFormat() format.Format {
	var fmat format.Format
	switch {
	case cfg.Y:
		fmat = format.YAMLFormat
	case cfg.J:
		fmat = format.JSONFormat
	}
	if cfg.InFormat != nil {
		fmat = *cfg.InFormat
	}
	return fmat
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	return []parse.ParseOption{
		parse.ParseFormat(cfg.inFormat()),
	}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	var fmat format.Format
	switch {
	case cfg.Y:
		fmat = format.YAMLFormat
	case cfg.J:
		fmat = format.JSONFormat
	}
	if cfg.OutFormat != nil {
		fmat = *cfg.OutFormat
	}
	res := []encode.EncodeOption{
		encode.EncodeFormat(fmat),
		encode.EncodeWire(cfg.WireOut),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	return res
}

// loadEditor reads the document argument, "-" meaning stdin, into an
// editor.
func (cfg *MainConfig) loadEditor(arg string) (*edit.Editor, error) {
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
	return edit.NewFromNode(node), nil
}

// writeResult encodes the edited document, honoring -w by rewriting the
// input file when the input was a file.
func (cfg *MainConfig) writeResult(ed *edit.Editor, cc *cli.Context, arg string) error {
	if cfg.Write && arg != "-" {
		f, err := os.OpenFile(arg, os.O_TRUNC|os.O_RDWR, 0644)
		if err != nil {
			return err
		}
		defer f.Close()
		return encode.Encode(ed.Root(), f, cfg.encOpts(f)...)
	}
	return encode.Encode(ed.Root(), cc.Out, cfg.encOpts(cc.Out)...)
}

// docArg returns the trailing document argument, defaulting to stdin.
func docArg(args []string, n int) (string, error) {
	switch {
	case len(args) == n:
		return "-", nil
	case len(args) == n+1:
		return args[n], nil
	default:
		return "", fmt.Errorf("%w: at most one document argument", cli.ErrUsage)
	}
}

type ViewConfig struct {
	*MainConfig

	Depth int `cli:"name=depth desc='initial indent depth'"`
	View  *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type PathsConfig struct {
	*MainConfig

	Paths *cli.Command
}

type SetConfig struct {
	*MainConfig

	Set *cli.Command
}

type RenameConfig struct {
	*MainConfig

	Rename *cli.Command
}

type AddConfig struct {
	*MainConfig

	Key string `cli:"name=k desc='key for the new child (objects)'"`
	Add *cli.Command
}

type RmConfig struct {
	*MainConfig

	Rm *cli.Command
}

type HoistConfig struct {
	*MainConfig

	Hoist *cli.Command
}

type MoveConfig struct {
	*MainConfig

	Mode string `cli:"name=mode desc='before, after, or nest (default nest)'"`
	Move *cli.Command
}

type GroupConfig struct {
	*MainConfig

	Name  string `cli:"name=name desc='key for the new group'"`
	Group *cli.Command
}

type PatchConfig struct {
	*MainConfig

	File  bool `cli:"name=f desc='patch arg is a file path'"`
	Patch *cli.Command
}

type SelectConfig struct {
	*MainConfig

	Select *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type ServeConfig struct {
	*MainConfig

	Addr   string `cli:"name=addr desc='TCP address to listen on'"`
	Stdio  bool   `cli:"name=stdio desc='serve a single session on stdin/stdout'"`
	Config string `cli:"name=config desc='server configuration file'"`

	Serve *cli.Command
}
