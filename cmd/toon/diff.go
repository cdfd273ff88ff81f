package main

import (
	"fmt"
	"strings"

	"github.com/signadot/toon-format/go-toon/encode"
	"github.com/signadot/toon-format/go-toon/ir"

	"github.com/scott-cotton/cli"
	"github.com/sergi/go-diff/diffmatchpatch"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff takes exactly two files", cli.ErrUsage)
	}
	a, err := cfg.loadFile(args[0])
	if err != nil {
		return fmt.Errorf("error processing %s: %w", args[0], err)
	}
	b, err := cfg.loadFile(args[1])
	if err != nil {
		return fmt.Errorf("error processing %s: %w", args[1], err)
	}
	if ir.Equal(a, b) {
		return nil
	}
	aTxt, err := render(a)
	if err != nil {
		return err
	}
	bTxt, err := render(b)
	if err != nil {
		return err
	}
	dmp := diffmatchpatch.New()
	aRunes, bRunes, lines := dmp.DiffLinesToRunes(aTxt, bTxt)
	diffs := dmp.DiffCharsToLines(dmp.DiffMainRunes(aRunes, bRunes, false), lines)
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			printLines(cc, "-", d.Text)
		case diffmatchpatch.DiffInsert:
			printLines(cc, "+", d.Text)
		default:
			printLines(cc, " ", d.Text)
		}
	}
	return fmt.Errorf("documents differ")
}

func render(node *ir.Node) (string, error) {
	txt, err := encode.String(node, encode.Indent(2))
	if err != nil {
		return "", err
	}
	return txt + "\n", nil
}

func printLines(cc *cli.Context, prefix, text string) {
	for _, line := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
		fmt.Fprintf(cc.Out, "%s%s\n", prefix, line)
	}
}
