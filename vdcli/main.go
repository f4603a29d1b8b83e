// vdcli is the command line surface: rendering scenes to SVG/PDF, emitting
// Tk canvas source, and a live-reloading watch server.
package vdcli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"

	"github.com/vecdraw/vd/lib/color"
	"github.com/vecdraw/vd/lib/log"
	"github.com/vecdraw/vd/lib/textmeasure"
	"github.com/vecdraw/vd/lib/version"
	"github.com/vecdraw/vd/vdtarget"
)

// UsageError marks errors the user can fix by invoking the CLI differently.
// main maps it to exit code 2.
type UsageError struct {
	Message string
}

func (e UsageError) Error() string {
	return e.Message
}

func UsageErrorf(format string, args ...any) error {
	return UsageError{Message: fmt.Sprintf(format, args...)}
}

// Run executes the CLI. args excludes the program name.
func Run(ctx context.Context, args []string) error {
	ctx = log.WithDefault(ctx)

	if len(args) == 0 {
		help(os.Stdout)
		return nil
	}
	cmd, rest := args[0], args[1:]
	switch cmd {
	case "render":
		return renderCmd(ctx, rest)
	case "codegen":
		return codegenCmd(ctx, rest)
	case "watch":
		return watchCmd(ctx, rest)
	case "version", "--version", "-v":
		fmt.Println(version.Version)
		return nil
	case "help", "--help", "-h":
		help(os.Stdout)
		return nil
	default:
		return UsageErrorf("unknown command %q, run \"vd help\" for usage", cmd)
	}
}

func help(out *os.File) {
	fmt.Fprintf(out, `vd %s
Usage:
  vd render [--crop] [--scale=2] file.json [-o file.svg | file.pdf]
  vd codegen file.json [-o file.py]
  vd watch [--host=localhost] [--port=0] file.json

vd render renders a scene file to SVG or PDF, picked by the output extension.
vd codegen emits Python source that redraws the scene on a Tk canvas.
vd watch serves a live preview that re-renders whenever the scene changes.

Use - to read the scene from stdin or write output to stdout.

Flags can also be set through VD_* environment variables, e.g. VD_PORT=8080.
Run a command with --help for its flags.
`, version.Version)
}

// parseFlags parses args and applies VD_* fallbacks for flags left unset.
// A help request prints the flag defaults and returns pflag.ErrHelp.
func parseFlags(fs *pflag.FlagSet, args []string, env map[string]string) error {
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of vd %s:\n%s", fs.Name(), fs.FlagUsages())
	}
	err := fs.Parse(args)
	if errors.Is(err, pflag.ErrHelp) {
		return err
	}
	if err != nil {
		return UsageErrorf("failed to parse flags: %v", err)
	}
	for envName, flagName := range env {
		if fs.Changed(flagName) {
			continue
		}
		v, ok := os.LookupEnv(envName)
		if !ok {
			continue
		}
		if err := fs.Set(flagName, v); err != nil {
			return UsageErrorf("invalid %s value %q: %v", envName, v, err)
		}
	}
	return nil
}

// loadScene reads and parses a scene, validating its colors up front so
// renderers can trust them. "-" reads stdin.
func loadScene(path string) (*vdtarget.Scene, error) {
	var (
		b   []byte
		err error
	)
	if path == "-" {
		b, err = io.ReadAll(os.Stdin)
	} else {
		b, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading scene: %w", err)
	}
	scene, err := vdtarget.Parse(b)
	if err != nil {
		return nil, fmt.Errorf("parsing scene %s: %w", humanPath(path), err)
	}
	if err := color.Validate(scene.Background); err != nil {
		return nil, fmt.Errorf("scene background %q: %w", scene.Background, err)
	}
	for _, s := range scene.Shapes {
		if err := color.Validate(s.Stroke); err != nil {
			return nil, fmt.Errorf("shape %q stroke %q: %w", s.Name, s.Stroke, err)
		}
		if err := color.Validate(s.Fill); err != nil {
			return nil, fmt.Errorf("shape %q fill %q: %w", s.Name, s.Fill, err)
		}
	}
	// Text extents are derived data; refresh them so bounding boxes and
	// selection overlays line up with what the renderers draw.
	var ruler *textmeasure.Ruler
	for _, s := range scene.Shapes {
		if s.Type != vdtarget.ShapeText || s.Label == "" {
			continue
		}
		if ruler == nil {
			ruler, err = textmeasure.NewRuler()
			if err != nil {
				return nil, fmt.Errorf("measuring text: %w", err)
			}
		}
		s.Remeasure(ruler)
	}
	return scene, nil
}

func writeOutput(path string, data []byte) error {
	if path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", humanPath(path), err)
	}
	return nil
}

// renameExt swaps the path's extension; newExt includes the leading dot.
func renameExt(fp string, newExt string) string {
	ext := filepath.Ext(fp)
	if ext == "" {
		return fp + newExt
	}
	return strings.TrimSuffix(fp, ext) + newExt
}

func humanPath(fp string) string {
	if home, err := os.UserHomeDir(); err == nil && strings.HasPrefix(fp, home) {
		return filepath.Join("~", strings.TrimPrefix(fp, home))
	}
	return fp
}
