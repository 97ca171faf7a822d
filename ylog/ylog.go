// Package ylog is the logging sink for the toolchain's error paths.
//
// By default messages go to a log/slog text handler on stderr. Embedders
// (and tests) can install a Callback to capture messages instead; the
// callback receives the severity, the formatted message, and an optional
// path giving the input context the message relates to.
package ylog

import (
	"fmt"
	"log/slog"
	"os"
	"sync"
)

// Level is the severity of a logged message.
type Level int

const (
	LevelError Level = iota
	LevelWarning
	LevelVerbose
	LevelDebug
)

func (l Level) String() string {
	switch l {
	case LevelError:
		return "error"
	case LevelWarning:
		return "warning"
	case LevelVerbose:
		return "verbose"
	case LevelDebug:
		return "debug"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// Callback receives every message that passes the level threshold.
// It must not panic; it is invoked synchronously on the caller's goroutine.
type Callback func(level Level, msg, path string)

var (
	mu        sync.Mutex
	threshold = LevelWarning
	callback  Callback
	fallback  = slog.New(slog.NewTextHandler(os.Stderr, nil))
)

// SetLevel sets the maximum level that is emitted and returns the previous
// threshold. Messages above the threshold are dropped.
func SetLevel(l Level) Level {
	mu.Lock()
	defer mu.Unlock()
	prev := threshold
	threshold = l
	return prev
}

// SetCallback installs cb as the message sink and returns the previous one.
// A nil cb restores the default slog output.
func SetCallback(cb Callback) Callback {
	mu.Lock()
	defer mu.Unlock()
	prev := callback
	callback = cb
	return prev
}

func emit(level Level, path, format string, args ...any) {
	mu.Lock()
	if level > threshold {
		mu.Unlock()
		return
	}
	cb := callback
	mu.Unlock()

	msg := fmt.Sprintf(format, args...)
	if cb != nil {
		cb(level, msg, path)
		return
	}

	attrs := []any{}
	if path != "" {
		attrs = append(attrs, "path", path)
	}
	switch level {
	case LevelError:
		fallback.Error(msg, attrs...)
	case LevelWarning:
		fallback.Warn(msg, attrs...)
	case LevelVerbose:
		fallback.Info(msg, attrs...)
	default:
		fallback.Debug(msg, attrs...)
	}
}

// Logf logs a message at an explicit level, for callers (extension
// plugins) that carry the level as data.
func Logf(level Level, path, format string, args ...any) {
	emit(level, path, format, args...)
}

// Errorf logs an error-level message with an optional path context.
func Errorf(path, format string, args ...any) {
	emit(LevelError, path, format, args...)
}

// Warnf logs a warning-level message with an optional path context.
func Warnf(path, format string, args ...any) {
	emit(LevelWarning, path, format, args...)
}

// Verbosef logs a verbose-level message with an optional path context.
func Verbosef(path, format string, args ...any) {
	emit(LevelVerbose, path, format, args...)
}

// Debugf logs a debug-level message with an optional path context.
func Debugf(path, format string, args ...any) {
	emit(LevelDebug, path, format, args...)
}
