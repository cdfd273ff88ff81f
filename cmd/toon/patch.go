package main

import (
	"fmt"
	"io"

	"github.com/signadot/toon-format/go-toon/encode"
	"github.com/signadot/toon-format/go-toon/parse"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch file", cli.ErrUsage)
	}
	patchNode, err := cfg.loadFile(args[0])
	if err != nil {
		return fmt.Errorf("error loading patch %s: %w", args[0], err)
	}
	patchJSON, err := encode.String(patchNode)
	if err != nil {
		return err
	}
	files := args[1:]
	if len(files) == 0 {
		files = []string{"-"}
	}
	for i, file := range files {
		if err := patchFile(cfg, cc.Out, file, []byte(patchJSON)); err != nil {
			return err
		}
		if i < len(files)-1 {
			cc.Out.Write([]byte("\n"))
		}
	}
	return nil
}

// patchFile round-trips the document through compact json so that
// patches apply uniformly regardless of the input format.
func patchFile(cfg *PatchConfig, w io.Writer, file string, patchJSON []byte) error {
	node, err := cfg.loadFile(file)
	if err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	docJSON, err := encode.String(node)
	if err != nil {
		return err
	}
	var out []byte
	if cfg.Merge {
		out, err = jsonpatch.MergePatch([]byte(docJSON), patchJSON)
	} else {
		var p jsonpatch.Patch
		p, err = jsonpatch.DecodePatch(patchJSON)
		if err == nil {
			out, err = p.Apply([]byte(docJSON))
		}
	}
	if err != nil {
		return fmt.Errorf("error patching %s: %w", file, err)
	}
	res, err := parse.Parse(out)
	if err != nil {
		return err
	}
	return cfg.emit(res, w)
}
