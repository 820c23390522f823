package utils

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/jmylchreest/keylab/internal/config"
	"github.com/jmylchreest/keylab/internal/errors"
)

// ParseLevel maps a configured level name to a slog level. Names are
// case-insensitive, "warning" is read as warn and an empty name means info.
func ParseLevel(level string) (slog.Level, error) {
	name := strings.ToLower(strings.TrimSpace(level))
	switch name {
	case "":
		return slog.LevelInfo, nil
	case "warning":
		name = config.LogLevelWarn
	}

	var l slog.Level
	if err := l.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo, errors.Valuef("unknown log level %q", level)
	}
	return l, nil
}

func newHandler(w io.Writer, format string, opts *slog.HandlerOptions) (slog.Handler, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", config.LogFormatText:
		return slog.NewTextHandler(w, opts), nil
	case config.LogFormatJSON:
		return slog.NewJSONHandler(w, opts), nil
	default:
		return nil, errors.Valuef("unknown log format %q", format)
	}
}

// NewLogger creates a logger writing to w
func NewLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	l, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	handler, err := newHandler(w, format, &slog.HandlerOptions{Level: l})
	if err != nil {
		return nil, err
	}
	return slog.New(handler), nil
}

// SetupLogger creates the CLI logger, which writes to stderr
func SetupLogger(level, format string) (*slog.Logger, error) {
	return NewLogger(os.Stderr, level, format)
}

// SetupErrorLogger creates a simple text logger for reporting errors during startup
func SetupErrorLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}
