// Package debug provides category-based diagnostic logging on stderr.
package debug

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
)

// Categories for debug logging
const (
	CategoryParse  = "parse"
	CategoryConfig = "config"
	CategoryDialog = "dialog"
	CategoryAuth   = "auth"
	CategoryAgent  = "agent"
)

// Logger routes category messages to a slog.Logger.
type Logger struct {
	logger *slog.Logger
	mu     sync.RWMutex
}

// Global logger instance
var globalLogger = &Logger{}

// Init configures the global logger. level is one of debug, info, warn,
// error; format is text or json. Until Init runs, Log discards everything.
func Init(w io.Writer, level, format string) {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}
	var handler slog.Handler
	if strings.EqualFold(format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	globalLogger.mu.Lock()
	globalLogger.logger = slog.New(handler)
	globalLogger.mu.Unlock()
}

// Reset disables logging again.
func Reset() {
	globalLogger.mu.Lock()
	globalLogger.logger = nil
	globalLogger.mu.Unlock()
}

// ParseLevel maps a level name to a slog.Level, defaulting to warn.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

func current() *slog.Logger {
	globalLogger.mu.RLock()
	defer globalLogger.mu.RUnlock()
	return globalLogger.logger
}

// Log writes a debug-level message.
// category: one of the Category* constants
// message: short one-liner summary
// details: optional map with additional context (can be nil)
func Log(category, message string, details map[string]any) {
	logAt(slog.LevelDebug, category, message, details)
}

func logAt(level slog.Level, category, message string, details map[string]any) {
	logger := current()
	if logger == nil {
		return
	}
	attrs := make([]any, 0, 2+2*len(details))
	attrs = append(attrs, "category", category)
	for k, v := range details {
		attrs = append(attrs, k, v)
	}
	logger.Log(context.Background(), level, message, attrs...)
}

// Convenience functions for each category

// LogParse logs an argument-parsing debug message
func LogParse(message string, details map[string]any) {
	Log(CategoryParse, message, details)
}

// LogConfig logs a configuration debug message
func LogConfig(message string, details map[string]any) {
	Log(CategoryConfig, message, details)
}

// LogDialog logs a dialog-related debug message
func LogDialog(message string, details map[string]any) {
	Log(CategoryDialog, message, details)
}

// LogAuth logs an authentication-related debug message
func LogAuth(message string, details map[string]any) {
	Log(CategoryAuth, message, details)
}
