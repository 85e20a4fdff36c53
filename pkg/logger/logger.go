// Package logger wraps log/slog behind a small structured interface with a
// process-wide instance, a runtime-adjustable level and context-carried fields.
package logger

import (
	"context"
	"log/slog"
	"os"
)

// Logger is the structured logging surface used across tradecalc.
type Logger interface {
	Info(ctx context.Context, msg string, fields ...Field)
	Error(ctx context.Context, msg string, fields ...Field)
	Debug(ctx context.Context, msg string, fields ...Field)
	Warn(ctx context.Context, msg string, fields ...Field)
	// Fatal logs at error level and exits the process.
	Fatal(ctx context.Context, msg string, fields ...Field)

	Named(name string) Logger
	With(fields ...Field) Logger
}

type slogLogger struct {
	base *slog.Logger
}

func (l *slogLogger) Named(name string) Logger {
	return &slogLogger{base: l.base.With(slog.String("logger", name))}
}

func (l *slogLogger) With(fields ...Field) Logger {
	if len(fields) == 0 {
		return l
	}
	args := make([]any, 0, len(fields))
	for _, a := range attrs(fields) {
		args = append(args, a)
	}
	return &slogLogger{base: l.base.With(args...)}
}

func (l *slogLogger) Info(ctx context.Context, msg string, fields ...Field) {
	l.log(ctx, slog.LevelInfo, msg, fields)
}

func (l *slogLogger) Error(ctx context.Context, msg string, fields ...Field) {
	l.log(ctx, slog.LevelError, msg, fields)
}

func (l *slogLogger) Debug(ctx context.Context, msg string, fields ...Field) {
	l.log(ctx, slog.LevelDebug, msg, fields)
}

func (l *slogLogger) Warn(ctx context.Context, msg string, fields ...Field) {
	l.log(ctx, slog.LevelWarn, msg, fields)
}

func (l *slogLogger) Fatal(ctx context.Context, msg string, fields ...Field) {
	l.log(ctx, slog.LevelError, msg, fields)
	os.Exit(1)
}

// log appends the context fields and the caller, in that order, after fields.
func (l *slogLogger) log(ctx context.Context, level slog.Level, msg string, fields []Field) {
	if ctx == nil {
		ctx = context.Background()
	}
	if !l.base.Enabled(ctx, level) {
		return
	}
	all := make([]Field, 0, len(fields)+4)
	all = append(all, fields...)
	all = append(all, FieldsFrom(ctx)...)
	all = append(all, String("source", caller()))
	l.base.LogAttrs(ctx, level, msg, attrs(all)...)
}

var global Logger

// Init builds the global logger. It may be called again to reconfigure, which
// cmd does once the config file has been read.
func Init(opts ...Option) error {
	s := defaults()
	for _, opt := range opts {
		opt(&s)
	}
	levelVar.Set(s.level)
	global = &slogLogger{base: slog.New(s.handler())}
	return nil
}

// Get returns the global logger. It panics before Init.
func Get() Logger {
	if global == nil {
		panic("logger not initialized. Call logger.Init() first")
	}
	return global
}

// Named returns the global logger tagged with logger=name.
func Named(name string) Logger {
	return Get().Named(name)
}

// Sync exists for call sites written against buffered loggers; slog does not buffer.
func Sync() error {
	return nil
}
