package vdcli

import (
	"context"
	"errors"

	"github.com/spf13/pflag"

	"github.com/vecdraw/vd/lib/log"
	"github.com/vecdraw/vd/vdcodegen"
)

func codegenCmd(ctx context.Context, args []string) error {
	fs := pflag.NewFlagSet("codegen", pflag.ContinueOnError)
	outFlag := fs.StringP("out", "o", "", "output path. Defaults to the input path with .py")
	err := parseFlags(fs, args, nil)
	if errors.Is(err, pflag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return UsageErrorf("codegen expects exactly one scene file")
	}
	inputPath := fs.Arg(0)
	outputPath := *outFlag
	if outputPath == "" {
		if inputPath == "-" {
			outputPath = "-"
		} else {
			outputPath = renameExt(inputPath, ".py")
		}
	}

	scene, err := loadScene(inputPath)
	if err != nil {
		return err
	}
	src, err := vdcodegen.Generate(scene)
	if err != nil {
		return err
	}
	if err := writeOutput(outputPath, src); err != nil {
		return err
	}
	log.Info(ctx, "generated", "input", humanPath(inputPath), "output", humanPath(outputPath))
	return nil
}
