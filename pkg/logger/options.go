package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ErrUnknownLevel is returned by SetLevelString and ParseLevel.
var ErrUnknownLevel = errors.New("unknown log level")

var levelVar slog.LevelVar //nolint:gochecknoglobals // shared by every handler Init builds

type settings struct {
	out    io.Writer
	format string
	level  slog.Level
}

func defaults() settings {
	return settings{out: os.Stdout, format: FormatText, level: slog.LevelInfo}
}

func (s settings) handler() slog.Handler {
	ho := &slog.HandlerOptions{Level: &levelVar}
	if s.format == FormatJSON {
		return slog.NewJSONHandler(s.out, ho)
	}
	return slog.NewTextHandler(s.out, ho)
}

// Option configures Init.
type Option func(*settings)

// WithOutput sets where log lines go. Defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(s *settings) {
		if w != nil {
			s.out = w
		}
	}
}

// WithFormat selects text or json output. Unknown values keep text.
func WithFormat(format string) Option {
	return func(s *settings) {
		if f := strings.ToLower(strings.TrimSpace(format)); f == FormatJSON || f == FormatText {
			s.format = f
		}
	}
}

// WithLevel sets the starting level. Unknown names keep info.
func WithLevel(level string) Option {
	return func(s *settings) {
		if l, err := ParseLevel(level); err == nil {
			s.level = l
		}
	}
}

// ParseLevel accepts debug, info, warn or warning, and error in any case.
// An empty string is info.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("%w: %q", ErrUnknownLevel, level)
}

// SetLevel changes the level of the current global logger at runtime.
func SetLevel(level slog.Level) { levelVar.Set(level) }

// SetLevelString parses level and applies it.
func SetLevelString(level string) error {
	l, err := ParseLevel(level)
	if err != nil {
		return err
	}
	SetLevel(l)
	return nil
}
