package log

import (
	"context"
	"log/slog"
	"strings"
	"testing"
)

type tbWriter struct {
	tb testing.TB
}

func (w *tbWriter) Write(p []byte) (n int, err error) {
	w.tb.Helper()
	w.tb.Log(strings.TrimSuffix(string(p), "\n"))
	return len(p), nil
}

// WithTB routes the context logger through tb so test output stays attached
// to the test that produced it. Always debug-leveled.
func WithTB(ctx context.Context, tb testing.TB) context.Context {
	h := slog.NewTextHandler(&tbWriter{tb: tb}, &slog.HandlerOptions{Level: slog.LevelDebug})
	return With(ctx, slog.New(h))
}
