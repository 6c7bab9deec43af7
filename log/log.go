package log

import (
	"context"
	"io"
	"log/slog"
	"runtime"
	"time"
)

// Logger writes leveled structured events. It is an immutable value safe for
// concurrent use, and it satisfies the backend interface of package kv,
// including its level pre-check and caller attribution.
//
// The zero value discards every event.
type Logger struct {
	h   slog.Handler
	cfg config
}

// Make returns a [Logger] writing to w, configured by opts on top of
// [DefaultLevel], [DefaultFormat] and [DefaultTimeLayout] with pretty output
// enabled and caller information disabled.
func Make(w io.Writer, opts ...Option) Logger {
	cfg := apply(defaultConfig(w), opts...)

	return Logger{h: cfg.handler(), cfg: cfg}
}

// With returns a copy of l that adds attrs to every event.
func (l Logger) With(attrs ...slog.Attr) Logger {
	if l.h == nil || len(attrs) == 0 {
		return l
	}

	l.h = l.h.WithAttrs(attrs)

	return l
}

// Level returns the minimum level l writes.
func (l Logger) Level() Level {
	if l.h == nil {
		return DefaultLevel
	}

	return l.cfg.level
}

// Enabled reports whether an event at level would be written.
// It is false for every level of the zero value.
func (l Logger) Enabled(ctx context.Context, level slog.Level) bool {
	return l.h != nil && l.h.Enabled(ctx, level)
}

func (l Logger) TraceContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, 3, LevelTrace, msg, attrs)
}

func (l Logger) Trace(msg string, attrs ...slog.Attr) {
	l.log(DefaultContextProvider(), 3, LevelTrace, msg, attrs)
}

func (l Logger) DebugContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, 3, LevelDebug, msg, attrs)
}

func (l Logger) Debug(msg string, attrs ...slog.Attr) {
	l.log(DefaultContextProvider(), 3, LevelDebug, msg, attrs)
}

func (l Logger) InfoContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, 3, LevelInfo, msg, attrs)
}

func (l Logger) Info(msg string, attrs ...slog.Attr) {
	l.log(DefaultContextProvider(), 3, LevelInfo, msg, attrs)
}

func (l Logger) WarnContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, 3, LevelWarn, msg, attrs)
}

func (l Logger) Warn(msg string, attrs ...slog.Attr) {
	l.log(DefaultContextProvider(), 3, LevelWarn, msg, attrs)
}

func (l Logger) ErrorContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, 3, LevelError, msg, attrs)
}

func (l Logger) Error(msg string, attrs ...slog.Attr) {
	l.log(DefaultContextProvider(), 3, LevelError, msg, attrs)
}

// LogDepth writes an event at level. When caller information is enabled, the
// recorded source is depth frames above the caller of LogDepth, so a helper
// forwarding to LogDepth with depth 1 attributes the event to its own caller.
func (l Logger) LogDepth(
	ctx context.Context,
	depth int,
	level Level,
	msg string,
	attrs ...slog.Attr,
) {
	l.log(ctx, depth+3, level, msg, attrs)
}

// log builds and handles a record. skip counts frames for runtime.Callers:
// 0 is Callers, 1 is log, 2 is the exported method, 3 is its caller.
func (l Logger) log(
	ctx context.Context,
	skip int,
	level Level,
	msg string,
	attrs []slog.Attr,
) {
	if !l.Enabled(ctx, slog.Level(level)) {
		return
	}

	var pc uintptr

	if l.cfg.caller {
		var pcs [1]uintptr
		runtime.Callers(skip, pcs[:])
		pc = pcs[0]
	}

	r := slog.NewRecord(time.Now(), slog.Level(level), msg, pc)
	r.AddAttrs(attrs...)

	_ = l.h.Handle(ctx, r)
}
