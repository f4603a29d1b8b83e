package vdcli

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/vecdraw/vd/lib/log"
	"github.com/vecdraw/vd/vdrenderers/vdpdf"
	"github.com/vecdraw/vd/vdrenderers/vdsvg"
)

func renderCmd(ctx context.Context, args []string) error {
	fs := pflag.NewFlagSet("render", pflag.ContinueOnError)
	outFlag := fs.StringP("out", "o", "", "output path, format picked by the extension (.svg or .pdf). Defaults to the input path with .svg")
	padFlag := fs.Int64("pad", vdsvg.DEFAULT_PADDING, "pixels padded around the content when cropping")
	cropFlag := fs.Bool("crop", false, "fit the viewport to the drawn content instead of the canvas")
	scaleFlag := fs.Float64("scale", 1, "scale the output, e.g. 0.5 to halve the size")
	gridFlag := fs.Bool("grid", false, "draw the scene's snap grid under the shapes")
	noXMLTagFlag := fs.Bool("no-xml-tag", false, "omit the XML tag from SVG output for direct HTML embedding")
	err := parseFlags(fs, args, map[string]string{
		"VD_PAD":        "pad",
		"VD_CROP":       "crop",
		"VD_SCALE":      "scale",
		"VD_GRID":       "grid",
		"VD_NO_XML_TAG": "no-xml-tag",
	})
	if errors.Is(err, pflag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return UsageErrorf("render expects exactly one scene file")
	}
	inputPath := fs.Arg(0)
	outputPath := *outFlag
	if outputPath == "" {
		if inputPath == "-" {
			outputPath = "-"
		} else {
			outputPath = renameExt(inputPath, ".svg")
		}
	}

	scene, err := loadScene(inputPath)
	if err != nil {
		return err
	}

	format := filepath.Ext(outputPath)
	if outputPath == "-" {
		format = ".svg"
	}
	var out []byte
	switch format {
	case ".svg":
		out, err = vdsvg.Render(scene, &vdsvg.RenderOpts{
			Pad:      padFlag,
			Crop:     cropFlag,
			Scale:    scaleFlag,
			NoXMLTag: noXMLTagFlag,
			Grid:     gridFlag,
		})
		if err == nil && len(out) > 0 && out[len(out)-1] != '\n' {
			out = append(out, '\n')
		}
	case ".pdf":
		out, err = vdpdf.Render(scene)
	default:
		return UsageErrorf("unsupported output format %q, want .svg or .pdf", format)
	}
	if err != nil {
		return err
	}
	if err := writeOutput(outputPath, out); err != nil {
		return err
	}
	log.Info(ctx, "rendered", "input", humanPath(inputPath), "output", humanPath(outputPath))
	return nil
}
