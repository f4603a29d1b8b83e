// Package log is a context wrapper around slog.Logger
package log

import (
	"context"
	"log/slog"
	"os"
)

type loggerKey struct{}

func envDebug() bool {
	return os.Getenv("DEBUG") == "1" || os.Getenv("VD_DEBUG") == "1"
}

// Default builds the process-wide logger: pretty leveled output on stderr,
// debug level when DEBUG=1 or VD_DEBUG=1.
func Default() *slog.Logger {
	level := slog.LevelInfo
	if envDebug() {
		level = slog.LevelDebug
	}
	base := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(NewLevelHandler(level, NewPrettyHandler(os.Stderr, base)))
}

func With(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// WithDefault attaches Default unless the context already carries a logger.
func WithDefault(ctx context.Context) context.Context {
	if _, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return ctx
	}
	return With(ctx, Default())
}

func from(ctx context.Context) *slog.Logger {
	l, ok := ctx.Value(loggerKey{}).(*slog.Logger)
	if !ok {
		return Default()
	}
	return l
}

func Debug(ctx context.Context, msg string, args ...any) {
	from(ctx).DebugContext(ctx, msg, args...)
}

func Info(ctx context.Context, msg string, args ...any) {
	from(ctx).InfoContext(ctx, msg, args...)
}

func Warn(ctx context.Context, msg string, args ...any) {
	from(ctx).WarnContext(ctx, msg, args...)
}

func Error(ctx context.Context, msg string, args ...any) {
	from(ctx).ErrorContext(ctx, msg, args...)
}

// Leveled rewraps the context logger to drop records below level.
func Leveled(ctx context.Context, level slog.Level) context.Context {
	return With(ctx, slog.New(NewLevelHandler(level, from(ctx).Handler())))
}

// Fork carries the logger of loggerCtx on ctx.
func Fork(ctx, loggerCtx context.Context) context.Context {
	return With(ctx, from(loggerCtx))
}
