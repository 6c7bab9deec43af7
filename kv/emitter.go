package kv

import (
	"context"
	"log/slog"

	"github.com/ardnew/tracekv/conv"
	"github.com/ardnew/tracekv/log"
)

// Emitter forwards key-value events to a [Backend].
// The zero value discards every event.
type Emitter struct {
	backend Backend
	msg     string
}

// New returns an Emitter forwarding to b.
func New(b Backend, opts ...Option) Emitter {
	return apply(Emitter{backend: b}, opts...)
}

// With returns a copy of e with opts applied.
func (e Emitter) With(opts ...Option) Emitter {
	return apply(e, opts...)
}

// Emit forwards one event at level with the given pairs.
func (e Emitter) Emit(ctx context.Context, level Level, pairs ...Pair) {
	e.emit(ctx, level, pairs)
}

// TraceContext forwards one Trace event with the given pairs.
func (e Emitter) TraceContext(ctx context.Context, pairs ...Pair) {
	e.emit(ctx, LevelTrace, pairs)
}

// Trace forwards one Trace event with the given pairs.
func (e Emitter) Trace(pairs ...Pair) {
	e.emit(log.DefaultContextProvider(), LevelTrace, pairs)
}

// DebugContext forwards one Debug event with the given pairs.
func (e Emitter) DebugContext(ctx context.Context, pairs ...Pair) {
	e.emit(ctx, LevelDebug, pairs)
}

// Debug forwards one Debug event with the given pairs.
func (e Emitter) Debug(pairs ...Pair) {
	e.emit(log.DefaultContextProvider(), LevelDebug, pairs)
}

// InfoContext forwards one Info event with the given pairs.
func (e Emitter) InfoContext(ctx context.Context, pairs ...Pair) {
	e.emit(ctx, LevelInfo, pairs)
}

// Info forwards one Info event with the given pairs.
func (e Emitter) Info(pairs ...Pair) {
	e.emit(log.DefaultContextProvider(), LevelInfo, pairs)
}

// WarnContext forwards one Warn event with the given pairs.
func (e Emitter) WarnContext(ctx context.Context, pairs ...Pair) {
	e.emit(ctx, LevelWarn, pairs)
}

// Warn forwards one Warn event with the given pairs.
func (e Emitter) Warn(pairs ...Pair) {
	e.emit(log.DefaultContextProvider(), LevelWarn, pairs)
}

// ErrorContext forwards one Error event with the given pairs.
func (e Emitter) ErrorContext(ctx context.Context, pairs ...Pair) {
	e.emit(ctx, LevelError, pairs)
}

// Error forwards one Error event with the given pairs.
func (e Emitter) Error(pairs ...Pair) {
	e.emit(log.DefaultContextProvider(), LevelError, pairs)
}

func (e Emitter) emit(ctx context.Context, level Level, pairs []Pair) {
	if e.backend == nil {
		return
	}

	if en, ok := e.backend.(enabler); ok && !en.Enabled(ctx, slog.Level(level)) {
		return
	}

	attrs := conv.Map(pairs, Pair.Attr)

	if dl, ok := e.backend.(depthLogger); ok {
		dl.LogDepth(ctx, callerDepth, level, e.msg, attrs...)

		return
	}

	switch {
	case level >= LevelError:
		e.backend.ErrorContext(ctx, e.msg, attrs...)
	case level >= LevelWarn:
		e.backend.WarnContext(ctx, e.msg, attrs...)
	case level >= LevelInfo:
		e.backend.InfoContext(ctx, e.msg, attrs...)
	case level >= LevelDebug:
		e.backend.DebugContext(ctx, e.msg, attrs...)
	default:
		e.backend.TraceContext(ctx, e.msg, attrs...)
	}
}
