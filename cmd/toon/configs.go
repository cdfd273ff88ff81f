package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/toon-format/go-toon/encode"
	"github.com/signadot/toon-format/go-toon/format"
	"github.com/signadot/toon-format/go-toon/ir"
	"github.com/signadot/toon-format/go-toon/naming"
	"github.com/signadot/toon-format/go-toon/parse"
	"github.com/signadot/toon-format/go-toon/toon"

	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Color  bool `cli:"name=color desc='encode with color'"`
	Pretty bool `cli:"name=p aliases=pretty desc='indented json output'"`

	Lenient    bool `cli:"name=l aliases=lenient desc='enable all parse leniencies'"`
	Comments   bool `cli:"name=c aliases=comments desc='allow comments in input'"`
	Trailing   bool `cli:"name=trailing desc='allow trailing commas in input'"`
	Unquoted   bool `cli:"name=unquoted desc='allow unquoted property names in input'"`
	StrictKeys bool `cli:"name=strict-keys desc='reject duplicate object keys'"`

	Indent  int    `cli:"name=indent desc='spaces per nesting level'"`
	Delim   string `cli:"name=d aliases=delim desc='toon inline delimiter'"`
	Fold    bool   `cli:"name=fold desc='toon safe key folding'"`
	Flatten int    `cli:"name=flatten desc='toon fold depth limit (0 unbounded)'"`
	Naming  string `cli:"name=naming desc='key naming policy for json output'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

type ConvertConfig struct {
	*MainConfig

	Convert *cli.Command
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type ValidateConfig struct {
	*MainConfig

	Schema string `cli:"name=s aliases=schema desc='schema file'"`
	Quiet  bool   `cli:"name=q desc='suppress violation output, exit status only'"`

	Validate *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig

	Merge bool `cli:"name=m aliases=merge desc='apply patch as rfc 7386 merge patch'"`

	Patch *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
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

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) inFormat() format.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	return format.JSONFormat
}

func (cfg *MainConfig) outFormat() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	return format.TOONFormat
}

func (cfg *MainConfig) parseOpts() []parse.Option {
	res := []parse.Option{
		parse.Comments(cfg.Comments),
		parse.TrailingCommas(cfg.Trailing),
		parse.UnquotedKeys(cfg.Unquoted),
		parse.RejectDuplicateKeys(cfg.StrictKeys),
	}
	if cfg.Lenient {
		res = append(res, parse.AllowAll())
	}
	return res
}

// load reads one document from r according to the input format.
func (cfg *MainConfig) load(r io.Reader) (*ir.Node, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	switch cfg.inFormat() {
	case format.YAMLFormat:
		var v any
		if err := yaml.Unmarshal(d, &v); err != nil {
			return nil, err
		}
		return ir.FromAny(v)
	case format.TOONFormat:
		return nil, fmt.Errorf("%w: toon is write-only", cli.ErrUsage)
	default:
		return parse.Parse(d, cfg.parseOpts()...)
	}
}

func (cfg *MainConfig) loadFile(file string) (*ir.Node, error) {
	if file == "-" {
		return cfg.load(os.Stdin)
	}
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return cfg.load(f)
}

// emit writes node to w according to the output format.
func (cfg *MainConfig) emit(node *ir.Node, w io.Writer) error {
	switch cfg.outFormat() {
	case format.TOONFormat:
		return toon.Encode(node, w, cfg.toonOpts()...)
	case format.YAMLFormat:
		v, err := node.ToAny()
		if err != nil {
			return err
		}
		d, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	default:
		opts, err := cfg.encOpts(w)
		if err != nil {
			return err
		}
		if err := encode.Encode(node, w, opts...); err != nil {
			return err
		}
		_, err = w.Write([]byte("\n"))
		return err
	}
}

func (cfg *MainConfig) toonOpts() []toon.Option {
	res := []toon.Option{}
	if cfg.Indent > 0 {
		res = append(res, toon.IndentSize(cfg.Indent))
	}
	if cfg.Delim != "" {
		res = append(res, toon.Delimiter(cfg.Delim[0]))
	}
	if cfg.Fold {
		res = append(res, toon.KeyFolding(toon.FoldSafe))
	}
	if cfg.Flatten > 0 {
		res = append(res, toon.FlattenDepth(cfg.Flatten))
	}
	return res
}

func (cfg *MainConfig) encOpts(w io.Writer) ([]encode.EncodeOption, error) {
	res := []encode.EncodeOption{}
	if cfg.Pretty {
		n := cfg.Indent
		if n == 0 {
			n = 2
		}
		res = append(res, encode.Indent(n))
	}
	if cfg.Naming != "" {
		p, err := naming.Parse(cfg.Naming)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		res = append(res, encode.NamingPolicy(p))
	}
	if cfg.useColor(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res, nil
}

func (cfg *MainConfig) useColor(w io.Writer) bool {
	if !cfg.Color {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
