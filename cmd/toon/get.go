package main

import (
	"fmt"
	"io"

	"github.com/signadot/toon-format/go-toon/ir"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires an expression", cli.ErrUsage)
	}
	prog, err := expr.Compile(args[0], expr.AllowUndefinedVariables())
	if err != nil {
		return fmt.Errorf("%w: bad expression: %w", cli.ErrUsage, err)
	}
	files := args[1:]
	if len(files) == 0 {
		files = []string{"-"}
	}
	for i, file := range files {
		if err := getFile(cfg, cc.Out, file, prog); err != nil {
			return err
		}
		if i < len(files)-1 {
			cc.Out.Write([]byte("\n"))
		}
	}
	return nil
}

// getFile runs prog with the document as the environment. Objects
// expose their members as variables; other documents are bound to $.
func getFile(cfg *GetConfig, w io.Writer, file string, prog *vm.Program) error {
	node, err := cfg.loadFile(file)
	if err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	v, err := node.ToAny()
	if err != nil {
		return err
	}
	env, ok := v.(map[string]any)
	if !ok {
		env = map[string]any{"$": v}
	}
	out, err := expr.Run(prog, env)
	if err != nil {
		return fmt.Errorf("error evaluating against %s: %w", file, err)
	}
	res, err := ir.FromAny(out)
	if err != nil {
		return err
	}
	return cfg.emit(res, w)
}
