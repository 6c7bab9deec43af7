// Package cli contains the command line interface for tracekv.
//
// # Commands
//
//   - fmt: render values with the optional-value formatters of package opt
//   - emit: evaluate KEY=EXPR pairs and log them as one event with package kv
//   - init: write the current flag values to the JSON configuration file
//   - version: print the program version
//
// # Configuration
//
// Flag values are resolved, in order of precedence, from the command line,
// from TRACEKV_* environment variables, and from the JSON configuration file
// at $XDG_CONFIG_HOME/tracekv/config.json. The file is an object keyed by
// flag name:
//
//	{
//	  "log-level": "debug",
//	  "log-format": "text"
//	}
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time-layout: Set timestamp format (RFC3339, RFC3339Nano, etc.)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Colorize output when writing to a terminal
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o tracekv .
//
//   - --pprof-mode: Enable profiling (see package profile)
//   - --pprof-dir: Set profile output directory (default
//     ~/.cache/tracekv/pprof)
//
// # Examples
//
//	tracekv fmt --kind date 2020-05-01 ""
//	tracekv --log-format=text emit --level warn user='"alice"' count=2+3
package cli
