package main

import (
	"fmt"
	"io"

	"github.com/signadot/toon-format/go-toon/encode"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for i, file := range args {
		if err := viewFile(cfg, cc.Out, file); err != nil {
			return err
		}
		if i < len(args)-1 {
			cc.Out.Write([]byte("\n"))
		}
	}
	return nil
}

func viewFile(cfg *ViewConfig, w io.Writer, file string) error {
	node, err := cfg.loadFile(file)
	if err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	opts := []encode.EncodeOption{
		encode.Indent(2),
	}
	if cfg.Color || cfg.useColor(w) {
		opts = append(opts, encode.EncodeColors(encode.NewColors()))
	}
	if err := encode.Encode(node, w, opts...); err != nil {
		return err
	}
	_, err = w.Write([]byte("\n"))
	return err
}
