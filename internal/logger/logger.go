package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	mu       sync.Mutex
	levelVar = new(slog.LevelVar)
	out      = io.Writer(os.Stderr)
	base     = newLogger(out)
)

func init() {
	levelVar.Set(slog.LevelWarn)
}

func newLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: levelVar}))
}

// ParseLevel maps a config level name to a slog level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelWarn, fmt.Errorf("unknown log level %q", name)
	}
}

// SetLevel sets the minimum level written.
func SetLevel(level slog.Level) {
	levelVar.Set(level)
}

// SetDebug enables debug output
func SetDebug(enabled bool) {
	if enabled {
		SetLevel(slog.LevelDebug)
	}
}

// SetOutput redirects log records, mostly for tests.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = w
	base = newLogger(w)
}

// With attaches attributes to every following record, e.g. the invocation ID.
// Attributes from an earlier call are replaced, not added to.
func With(args ...any) {
	mu.Lock()
	defer mu.Unlock()
	base = newLogger(out).With(args...)
}

func logf(level slog.Level, format string, args ...any) {
	mu.Lock()
	l := base
	mu.Unlock()

	if !l.Enabled(context.Background(), level) {
		return
	}
	l.Log(context.Background(), level, fmt.Sprintf(format, args...))
}

// Debug logs at debug level
func Debug(format string, args ...any) {
	logf(slog.LevelDebug, format, args...)
}

// Info logs at info level
func Info(format string, args ...any) {
	logf(slog.LevelInfo, format, args...)
}

// Warn logs at warn level
func Warn(format string, args ...any) {
	logf(slog.LevelWarn, format, args...)
}

// Error logs at error level
func Error(format string, args ...any) {
	logf(slog.LevelError, format, args...)
}
