// Package logger implements a logging adapter using log/slog.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/SummerStorm/jurigged/internal/core/ports"
)

// Logger implements ports.Logger using log/slog.
type Logger struct {
	mu     sync.RWMutex
	logger *slog.Logger
}

var _ ports.Logger = (*Logger)(nil)

// New creates a Logger writing text records to stderr at the given level.
func New(level string) *Logger {
	return &Logger{logger: newSlog(os.Stderr, ParseLevel(level))}
}

// ParseLevel maps a level name to its slog level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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

func newSlog(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// SetOutput redirects the logger's output. Used by tests.
func (l *Logger) SetOutput(w io.Writer, level slog.Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger = newSlog(w, level)
}

// Debug logs at debug level.
func (l *Logger) Debug(msg string, args ...any) {
	l.get().Debug(msg, args...)
}

// Info logs at info level.
func (l *Logger) Info(msg string, args ...any) {
	l.get().Info(msg, args...)
}

// Warn logs at warn level.
func (l *Logger) Warn(msg string, args ...any) {
	l.get().Warn(msg, args...)
}

// Error logs at error level.
func (l *Logger) Error(msg string, args ...any) {
	l.get().Error(msg, args...)
}

func (l *Logger) get() *slog.Logger {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.logger
}
