package kv

import (
	"context"

	"github.com/ardnew/tracekv/log"
)

// std returns an Emitter bound to the current default logger of package log.
func std() Emitter {
	return Emitter{backend: log.Default()}
}

// Emit forwards one event at level to the default logger.
func Emit(ctx context.Context, level Level, pairs ...Pair) {
	std().emit(ctx, level, pairs)
}

// TraceContext forwards one Trace event to the default logger.
func TraceContext(ctx context.Context, pairs ...Pair) {
	std().emit(ctx, LevelTrace, pairs)
}

// Trace forwards one Trace event to the default logger.
func Trace(pairs ...Pair) {
	std().emit(log.DefaultContextProvider(), LevelTrace, pairs)
}

// DebugContext forwards one Debug event to the default logger.
func DebugContext(ctx context.Context, pairs ...Pair) {
	std().emit(ctx, LevelDebug, pairs)
}

// Debug forwards one Debug event to the default logger.
func Debug(pairs ...Pair) {
	std().emit(log.DefaultContextProvider(), LevelDebug, pairs)
}

// InfoContext forwards one Info event to the default logger.
func InfoContext(ctx context.Context, pairs ...Pair) {
	std().emit(ctx, LevelInfo, pairs)
}

// Info forwards one Info event to the default logger.
func Info(pairs ...Pair) {
	std().emit(log.DefaultContextProvider(), LevelInfo, pairs)
}

// WarnContext forwards one Warn event to the default logger.
func WarnContext(ctx context.Context, pairs ...Pair) {
	std().emit(ctx, LevelWarn, pairs)
}

// Warn forwards one Warn event to the default logger.
func Warn(pairs ...Pair) {
	std().emit(log.DefaultContextProvider(), LevelWarn, pairs)
}

// ErrorContext forwards one Error event to the default logger.
func ErrorContext(ctx context.Context, pairs ...Pair) {
	std().emit(ctx, LevelError, pairs)
}

// Error forwards one Error event to the default logger.
func Error(pairs ...Pair) {
	std().emit(log.DefaultContextProvider(), LevelError, pairs)
}
