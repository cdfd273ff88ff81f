package main

import (
	"fmt"

	"github.com/signadot/toon-format/go-toon/schema"

	"github.com/scott-cotton/cli"
)

func validate(cfg *ValidateConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Validate.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Schema == "" {
		return fmt.Errorf("%w: validate requires -s <schemafile>", cli.ErrUsage)
	}
	sch, err := cfg.loadFile(cfg.Schema)
	if err != nil {
		return fmt.Errorf("error loading schema %s: %w", cfg.Schema, err)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	bad := false
	for _, file := range args {
		node, err := cfg.loadFile(file)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		vs, err := schema.Validate(sch, node)
		if err != nil {
			return fmt.Errorf("schema error: %w", err)
		}
		if len(vs) == 0 {
			continue
		}
		bad = true
		if cfg.Quiet {
			continue
		}
		for _, v := range vs {
			fmt.Fprintf(cc.Out, "%s: %s: %s: %s\n", file, v.Path, v.Keyword, v.Message)
		}
	}
	if bad {
		return fmt.Errorf("validation failed")
	}
	return nil
}
