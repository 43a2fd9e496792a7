// Package logging sets up structured logging to a rotating file. The TUI owns
// the terminal, so nothing is ever written to stdout or stderr while it runs.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	lj "gopkg.in/natefinch/lumberjack.v2"
)

// Options controls logger initialization.
type Options struct {
	Level   string // debug, info, warn or error
	File    string
	Version string
}

// Setup builds a JSON logger writing to a rotating file and installs it as
// slog's default. The returned closer flushes and closes the file.
func Setup(opts Options) (*slog.Logger, io.Closer, error) {
	if strings.TrimSpace(opts.File) == "" {
		return nil, nil, fmt.Errorf("log file path is empty")
	}

	w := &lj.Logger{
		Filename:   opts.File,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     28,
	}
	logger := New(w, opts.Level).With(
		slog.String("app", "swipepager"),
		slog.String("ver", opts.Version),
	)
	slog.SetDefault(logger)
	return logger, w, nil
}

// New builds a JSON logger on w at the given level.
func New(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)}))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

// WithComponent returns a logger with the component attribute pre-set.
func WithComponent(l *slog.Logger, name string) *slog.Logger {
	if l == nil {
		l = Discard()
	}
	return l.With(slog.String("component", name))
}

// ParseLevel converts a configured level name; unknown names mean info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
