package cli

import (
	"context"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/tracekv/log"
)

type logConfig struct {
	Level      string `default:"info"    enum:"${levels}"  help:"Set log level (${enum})."`
	Format     string `default:"json"    enum:"${formats}" help:"Set log format (${enum})."`
	TimeLayout string `default:"RFC3339"                   help:"Set timestamp format (a time package layout name, or none)."`
	Caller     bool   `default:"false"                     help:"Include caller information."       negatable:""`
	Pretty     bool   `default:"true"                      help:"Enable colorized pretty printing." negatable:""`
}

func (*logConfig) vars() kong.Vars {
	return kong.Vars{
		"formats": strings.Join(slices.Collect(log.Formats()), ","),
	}
}

func (*logConfig) group() kong.Group {
	var group kong.Group

	group.Key = "log"
	group.Title = "Logging options"

	return group
}

// options returns the logger options described by f.
func (f *logConfig) options() []log.Option {
	return []log.Option{
		log.WithLevel(log.ParseLevel(f.Level)),
		log.WithFormat(log.ParseFormat(f.Format)),
		log.WithTimeLayout(f.TimeLayout),
		log.WithCaller(f.Caller),
		log.WithPretty(f.Pretty),
	}
}

// start applies the parsed flags, which may also come from the environment
// or the configuration file, to the default logger.
func (f *logConfig) start(ctx context.Context) {
	log.Config(f.options()...)

	log.DebugContext(ctx, "logger initialized",
		slog.String("level", f.Level),
		slog.String("format", f.Format),
		slog.String("time", f.TimeLayout),
		slog.Bool("caller", f.Caller),
		slog.Bool("pretty", f.Pretty),
	)
}

// scan applies the logging flags found in args to the default logger before
// kong parses them, so that parse errors are already reported in the
// requested level and format. Only flags present in args are applied, and
// scanning stops at "--".
func (f *logConfig) scan(args []string) {
	var opts []log.Option

	for i := 0; i < len(args); i++ {
		if args[i] == "--" {
			break
		}

		flag, value, assigned := strings.Cut(args[i], "=")

		name, negated := strings.CutPrefix(flag, "--no-log-")
		if !negated {
			var ok bool
			if name, ok = strings.CutPrefix(flag, "--log-"); !ok {
				continue
			}
		}

		switch name {
		case "level", "format", "time-layout":
			if negated {
				continue
			}

			if !assigned {
				if i+1 == len(args) || strings.HasPrefix(args[i+1], "-") {
					continue
				}

				i++
				value = args[i]
			}

			opts = append(opts, f.setString(name, value))

		case "caller", "pretty":
			on := true

			if assigned {
				b, err := strconv.ParseBool(value)
				if err != nil {
					continue
				}

				on = b
			}

			opts = append(opts, f.setBool(name, on != negated))
		}
	}

	if len(opts) > 0 {
		log.Config(opts...)
	}
}

func (f *logConfig) setString(name, value string) log.Option {
	switch name {
	case "level":
		f.Level = value

		return log.WithLevel(log.ParseLevel(value))

	case "format":
		f.Format = value

		return log.WithFormat(log.ParseFormat(value))

	default:
		f.TimeLayout = value

		return log.WithTimeLayout(value)
	}
}

func (f *logConfig) setBool(name string, on bool) log.Option {
	if name == "caller" {
		f.Caller = on

		return log.WithCaller(on)
	}

	f.Pretty = on

	return log.WithPretty(on)
}
