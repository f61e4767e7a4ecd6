// Package logging owns the two slog loggers used by swipeview: the application
// logger handed to consumers and the internal logger used for framework diagnostics
// (commits, settle caps, input device errors).
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// sink is the shared destination of both loggers: stdout, plus the log file
// when one was configured and could be opened.
type sink struct {
	once sync.Once
	path string
	file *os.File
	out  io.Writer
}

func (s *sink) writer() io.Writer {
	s.once.Do(func() {
		s.out = os.Stdout
		if s.path == "" {
			return
		}
		if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
			return
		}
		f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return
		}
		s.file = f
		s.out = io.MultiWriter(os.Stdout, f)
	})
	return s.out
}

// leveled is a lazily built logger with an adjustable level.
type leveled struct {
	once   sync.Once
	level  slog.LevelVar
	start  slog.Level
	attrs  []slog.Attr
	logger *slog.Logger
}

func (l *leveled) get() *slog.Logger {
	l.once.Do(func() {
		l.level.Set(l.start)
		var handler slog.Handler = slog.NewJSONHandler(shared.writer(), &slog.HandlerOptions{Level: &l.level})
		if len(l.attrs) > 0 {
			handler = handler.WithAttrs(l.attrs)
		}
		l.logger = slog.New(handler)
	})
	return l.logger
}

var (
	shared    sink
	app       = leveled{start: slog.LevelInfo}
	framework = leveled{start: slog.LevelError, attrs: []slog.Attr{slog.String("component", "swipeview")}}
)

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories. Must be called before the first
// logger is requested; an empty path logs to stdout only.
func SetLogPath(path string) {
	shared.path = path
}

// GetLogger returns the application logger.
func GetLogger() *slog.Logger {
	return app.get()
}

// GetInternalLogger returns the framework logger. It only emits errors unless
// raised with SetInternalLogLevel.
func GetInternalLogger() *slog.Logger {
	return framework.get()
}

// NewLogger builds a standalone JSON logger writing to w. Used by the CLI and
// by tests that want to capture output.
func NewLogger(level string, w io.Writer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)}))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

// ParseLevel maps "debug", "info", "warn"/"warning" and "error" to a slog level.
// Unknown values default to info.
func ParseLevel(rawLevel string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(rawLevel)) {
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

func SetLogLevel(level slog.Level) {
	app.get()
	app.level.Set(level)
}

func SetInternalLogLevel(level slog.Level) {
	framework.get()
	framework.level.Set(level)
}

func SetRawLogLevel(rawLevel string) {
	SetLogLevel(ParseLevel(rawLevel))
}

// CloseLogger closes the log file, if one was opened.
func CloseLogger() {
	if shared.file != nil {
		shared.file.Close()
	}
}
