package log

import (
	"fmt"
	"iter"
	"strings"
	"time"
)

// Format selects how events are encoded.
type Format int

const (
	FormatText Format = iota
	FormatJSON
)

// DefaultFormat is the encoding of a logger built without [WithFormat].
const DefaultFormat = FormatJSON

//nolint:gochecknoglobals
var formatName = map[Format]string{
	FormatText: "text",
	FormatJSON: "json",
}

func (f Format) String() string {
	if name, ok := formatName[f]; ok {
		return name
	}

	return fmt.Sprintf("format(%d)", int(f))
}

// Formats returns the names of the supported formats, default first.
func Formats() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, f := range []Format{FormatJSON, FormatText} {
			if !yield(f.String()) {
				return
			}
		}
	}
}

// ParseFormat returns the format named s, ignoring case, or [DefaultFormat].
func ParseFormat(s string) Format {
	s = strings.TrimSpace(s)

	for f, name := range formatName {
		if strings.EqualFold(name, s) {
			return f
		}
	}

	return DefaultFormat
}

// DefaultTimeLayout is the timestamp layout of a logger built without
// [WithTimeLayout].
const DefaultTimeLayout = time.RFC3339

// namedLayouts resolves layout names, compared lowercase with punctuation
// removed, to [time] layouts. "none" disables timestamps.
//
//nolint:gochecknoglobals
var namedLayouts = map[string]string{
	"rfc3339":     time.RFC3339,
	"rfc3339nano": time.RFC3339Nano,
	"datetime":    time.DateTime,
	"dateonly":    time.DateOnly,
	"timeonly":    time.TimeOnly,
	"kitchen":     time.Kitchen,
	"stamp":       time.Stamp,
	"stampmilli":  time.StampMilli,
	"ms":          time.StampMilli,
	"stampmicro":  time.StampMicro,
	"us":          time.StampMicro,
	"stampnano":   time.StampNano,
	"ns":          time.StampNano,
	"none":        "",
}

// timeFormatter returns a function rendering timestamps with layout, which
// is either a name from namedLayouts or a literal [time.Time.Format] layout.
// The function returns "" when timestamps are disabled.
func timeFormatter(layout string) func(time.Time) string {
	key := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		default:
			return -1
		}
	}, strings.ToLower(layout))

	if named, ok := namedLayouts[key]; ok {
		layout = named
	}

	if key == "" || layout == "" {
		return func(time.Time) string { return "" }
	}

	return func(t time.Time) string { return t.Format(layout) }
}
