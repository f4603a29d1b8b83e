package vdcli

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vecdraw/vd/lib/geo"
	"github.com/vecdraw/vd/lib/log"
	"github.com/vecdraw/vd/vdtarget"
)

func testCtx(t *testing.T) context.Context {
	return log.WithTB(context.Background(), t)
}

func writeTestScene(t *testing.T, path string) *vdtarget.Scene {
	t.Helper()
	scene := vdtarget.NewScene()
	s := vdtarget.BaseShape()
	s.Pos = geo.Point{X: 10, Y: 10}
	s.Width = 100
	s.Height = 50
	scene.AddShape(s)
	b, err := scene.Bytes()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0644))
	return scene
}

func TestRunNoArgsShowsHelp(t *testing.T) {
	assert.NoError(t, Run(testCtx(t), nil))
}

func TestRunUnknownCommand(t *testing.T) {
	err := Run(testCtx(t), []string{"explode"})
	require.Error(t, err)
	var uerr UsageError
	assert.True(t, errors.As(err, &uerr))
}

func TestRunVersion(t *testing.T) {
	assert.NoError(t, Run(testCtx(t), []string{"version"}))
}

func TestRenderCmdSVG(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "scene.json")
	writeTestScene(t, in)
	out := filepath.Join(dir, "out.svg")

	require.NoError(t, Run(testCtx(t), []string{"render", in, "-o", out}))

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(b), "<svg")
	assert.Contains(t, string(b), "<rect")
}

func TestRenderCmdDefaultOutput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "scene.json")
	writeTestScene(t, in)

	require.NoError(t, Run(testCtx(t), []string{"render", in}))

	_, err := os.Stat(filepath.Join(dir, "scene.svg"))
	assert.NoError(t, err)
}

func TestRenderCmdPDF(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "scene.json")
	writeTestScene(t, in)
	out := filepath.Join(dir, "out.pdf")

	require.NoError(t, Run(testCtx(t), []string{"render", in, "-o", out}))

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, len(b) > 0 && string(b[:5]) == "%PDF-")
}

func TestRenderCmdUnsupportedFormat(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "scene.json")
	writeTestScene(t, in)

	err := Run(testCtx(t), []string{"render", in, "-o", filepath.Join(dir, "out.gif")})
	require.Error(t, err)
	var uerr UsageError
	assert.True(t, errors.As(err, &uerr))
}

func TestRenderCmdMissingInput(t *testing.T) {
	err := Run(testCtx(t), []string{"render"})
	require.Error(t, err)
	var uerr UsageError
	assert.True(t, errors.As(err, &uerr))
}

func TestRenderCmdBadScene(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "scene.json")
	require.NoError(t, os.WriteFile(in, []byte("{not json"), 0644))

	err := Run(testCtx(t), []string{"render", in})
	assert.Error(t, err)
}

func TestRenderCmdInvalidColor(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "scene.json")
	scene := vdtarget.NewScene()
	s := vdtarget.BaseShape()
	s.Stroke = "notacolor"
	scene.AddShape(s)
	b, err := scene.Bytes()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(in, b, 0644))

	err = Run(testCtx(t), []string{"render", in})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "notacolor")
}

func TestRenderCmdEnvFallback(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "scene.json")
	writeTestScene(t, in)
	out := filepath.Join(dir, "out.svg")

	t.Setenv("VD_SCALE", "2")
	require.NoError(t, Run(testCtx(t), []string{"render", in, "-o", out}))

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(b), `width="1600"`)
}

func TestRenderCmdFlagBeatsEnv(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "scene.json")
	writeTestScene(t, in)
	out := filepath.Join(dir, "out.svg")

	t.Setenv("VD_SCALE", "2")
	require.NoError(t, Run(testCtx(t), []string{"render", in, "-o", out, "--scale", "1"}))

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(b), `width="800"`)
}

func TestCodegenCmd(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "scene.json")
	writeTestScene(t, in)

	require.NoError(t, Run(testCtx(t), []string{"codegen", in}))

	b, err := os.ReadFile(filepath.Join(dir, "scene.py"))
	require.NoError(t, err)
	assert.Contains(t, string(b), "import tkinter as tk")
	assert.Contains(t, string(b), "create_rectangle")
}

func TestRenameExt(t *testing.T) {
	assert.Equal(t, "scene.svg", renameExt("scene.json", ".svg"))
	assert.Equal(t, "scene.svg", renameExt("scene", ".svg"))
	assert.Equal(t, "a/b.c/scene.py", renameExt("a/b.c/scene.json", ".py"))
}
