package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for i, file := range args {
		if err := convertFile(cfg, cc.Out, file); err != nil {
			return err
		}
		if i < len(args)-1 {
			cc.Out.Write([]byte("\n"))
		}
	}
	return nil
}

func convertFile(cfg *ConvertConfig, w io.Writer, file string) error {
	node, err := cfg.loadFile(file)
	if err != nil {
		if file == "-" {
			return err
		}
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	return cfg.emit(node, w)
}
