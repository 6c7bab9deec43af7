package log

import (
	"fmt"
	"iter"
	"log/slog"
	"strings"
)

// Level is the severity of an event. It extends [slog.Level] with
// [LevelTrace] below Debug.
type Level slog.Level

const (
	LevelTrace Level = Level(slog.LevelDebug - 4)
	LevelDebug Level = Level(slog.LevelDebug)
	LevelInfo  Level = Level(slog.LevelInfo)
	LevelWarn  Level = Level(slog.LevelWarn)
	LevelError Level = Level(slog.LevelError)
)

// DefaultLevel is the minimum level of a logger built without [WithLevel].
const DefaultLevel = LevelInfo

// levels lists the named levels in ascending order.
//
//nolint:gochecknoglobals
var levels = [...]struct {
	Level

	name string
}{
	{LevelTrace, "trace"},
	{LevelDebug, "debug"},
	{LevelInfo, "info"},
	{LevelWarn, "warn"},
	{LevelError, "error"},
}

// String returns the lowercase name of l. A level between two named levels
// is written as an offset from the lower one, such as "info+2"; a level
// below trace as a negative offset from it, such as "trace-2".
func (l Level) String() string {
	base := levels[0]

	for _, lv := range levels {
		if lv.Level == l {
			return lv.name
		}

		if lv.Level < l {
			base = lv
		}
	}

	return fmt.Sprintf("%s%+d", base.name, int(l-base.Level))
}

// Levels returns the names of the named levels in ascending order.
func Levels() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, lv := range levels {
			if !yield(lv.name) {
				return
			}
		}
	}
}

// LookupLevel returns the named level matching s, ignoring case and
// surrounding space. Offsets are not accepted.
func LookupLevel(s string) (Level, bool) {
	s = strings.TrimSpace(s)

	for _, lv := range levels {
		if strings.EqualFold(lv.name, s) {
			return lv.Level, true
		}
	}

	return DefaultLevel, false
}

// ParseLevel is like [LookupLevel] but also accepts slog's offset syntax
// ("debug+2", "ERROR-1") and returns [DefaultLevel] for anything else.
func ParseLevel(s string) Level {
	if l, ok := LookupLevel(s); ok {
		return l
	}

	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return DefaultLevel
	}

	return Level(l)
}
