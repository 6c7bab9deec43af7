package log

import (
	"io"
	"log/slog"
	"strings"
)

// config is the immutable description from which a [Logger]'s handler is
// built. Options return modified copies.
type config struct {
	output io.Writer
	level  Level
	format Format
	layout string
	caller bool
	pretty bool
}

// Option modifies the configuration of a [Logger] under construction.
type Option func(config) config

func defaultConfig(w io.Writer) config {
	if w == nil {
		w = io.Discard
	}

	return config{
		output: w,
		level:  DefaultLevel,
		format: DefaultFormat,
		layout: DefaultTimeLayout,
		pretty: true,
	}
}

func apply(cfg config, opts ...Option) config {
	for _, opt := range opts {
		if opt != nil {
			cfg = opt(cfg)
		}
	}

	return cfg
}

// WithOutput redirects events to w. A nil w discards them.
func WithOutput(w io.Writer) Option {
	return func(c config) config {
		if w == nil {
			w = io.Discard
		}

		c.output = w

		return c
	}
}

// WithLevel sets the minimum level of events written.
func WithLevel(level Level) Option {
	return func(c config) config {
		c.level = level

		return c
	}
}

// WithFormat selects the event encoding.
func WithFormat(format Format) Option {
	return func(c config) config {
		c.format = format

		return c
	}
}

// WithTimeLayout sets the timestamp layout. It accepts the names of the
// [time] package layouts ("RFC3339Nano", "Kitchen", ...), the abbreviations
// "ms", "us" and "ns", or a literal layout. An empty layout or "none" omits
// timestamps.
func WithTimeLayout(layout string) Option {
	return func(c config) config {
		c.layout = layout

		return c
	}
}

// WithCaller records the source location of each event.
func WithCaller(enabled bool) Option {
	return func(c config) config {
		c.caller = enabled

		return c
	}
}

// WithPretty selects the colorized handlers. Color is only emitted when the
// output is a terminal.
func WithPretty(enabled bool) Option {
	return func(c config) config {
		c.pretty = enabled

		return c
	}
}

func (c config) handler() slog.Handler {
	stamp := timeFormatter(c.layout)

	opts := &slog.HandlerOptions{
		AddSource: c.caller,
		Level:     slog.Level(c.level),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) > 0 {
				return a
			}

			switch a.Key {
			case slog.TimeKey:
				if a.Value.Kind() != slog.KindTime {
					return a
				}

				s := stamp(a.Value.Time())
				if s == "" {
					return slog.Attr{}
				}

				return slog.String(slog.TimeKey, s)

			case slog.LevelKey:
				if l, ok := a.Value.Any().(slog.Level); ok {
					return slog.String(slog.LevelKey, strings.ToUpper(Level(l).String()))
				}
			}

			return a
		},
	}

	switch {
	case c.pretty && c.format == FormatText:
		return newPrettyTextHandler(c.output, opts)
	case c.pretty:
		return newPrettyJSONHandler(c.output, opts)
	case c.format == FormatText:
		return slog.NewTextHandler(c.output, opts)
	default:
		return slog.NewJSONHandler(c.output, opts)
	}
}
