package kv

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ardnew/tracekv/log"
)

// Level is the severity attached to an event.
type Level = log.Level

// The five supported levels.
const (
	LevelTrace = log.LevelTrace
	LevelDebug = log.LevelDebug
	LevelInfo  = log.LevelInfo
	LevelWarn  = log.LevelWarn
	LevelError = log.LevelError
)

// Pair is a key and the value captured for it.
type Pair struct {
	Key   string
	Value any
}

// Of returns the pair of key and value.
func Of(key string, value any) Pair {
	return Pair{Key: key, Value: value}
}

// Attr returns p as a [slog.Attr] holding the inspect form of its value.
func (p Pair) Attr() slog.Attr {
	if lv, ok := p.Value.(slog.LogValuer); ok {
		return slog.Any(p.Key, lv)
	}

	return slog.Any(p.Key, inspect{p.Value})
}

// String returns p as key=value using the inspect form of its value.
func (p Pair) String() string {
	return p.Key + "=" + fmt.Sprintf("%#v", p.Value)
}

// inspect defers formatting of a value until a handler resolves it.
type inspect struct{ v any }

func (i inspect) LogValue() slog.Value {
	return slog.StringValue(fmt.Sprintf("%#v", i.v))
}

// Backend is a leveled structured-logging backend. [log.Logger] implements it.
type Backend interface {
	TraceContext(ctx context.Context, msg string, attrs ...slog.Attr)
	DebugContext(ctx context.Context, msg string, attrs ...slog.Attr)
	InfoContext(ctx context.Context, msg string, attrs ...slog.Attr)
	WarnContext(ctx context.Context, msg string, attrs ...slog.Attr)
	ErrorContext(ctx context.Context, msg string, attrs ...slog.Attr)
}

// enabler is implemented by backends that can report whether a level is
// enabled before any attributes are built.
type enabler interface {
	Enabled(ctx context.Context, level slog.Level) bool
}

// depthLogger is implemented by backends that can attribute a record to a
// caller further up the stack, such as [log.Logger].
type depthLogger interface {
	LogDepth(
		ctx context.Context,
		depth int,
		level log.Level,
		msg string,
		attrs ...slog.Attr,
	)
}

// callerDepth is the number of frames between depthLogger.LogDepth's caller
// (Emitter.emit) and the call site: emit, then the exported entry point.
const callerDepth = 2
