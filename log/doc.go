// Package log writes leveled structured events through [log/slog] handlers.
//
// It is the backend that package kv forwards key-value events to, and the
// logger used by the tracekv command.
//
// # Basic Usage
//
//	logger := log.Make(os.Stderr)
//	logger.Info("application started", slog.String("version", "1.0.0"))
//	logger.Error("failed to connect", slog.Any("error", err))
//
// # Configuration
//
// Configure the logger using functional options:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithTimeLayout("RFC3339Nano"),
//		log.WithCaller(true))
//
// The package-level functions ([Info], [Error], ...) use a default logger
// writing to [os.Stderr]. [Config] rebuilds it with more options, [Default]
// returns it, and [SetDefault] swaps it.
//
// # Supported Levels
//
// Five levels are defined: [LevelTrace], [LevelDebug], [LevelInfo],
// [LevelWarn], and [LevelError]. Messages below the configured level are
// discarded. Trace sits below slog's Debug and is rendered as "TRACE".
//
// # Forwarding
//
// [Logger.LogDepth] logs at a level chosen at run time and lets wrappers
// attribute the record's source location to their own caller.
//
// # Output Formats
//
// Two output formats are supported: [FormatJSON] (default) and
// [FormatText]. With [WithPretty] (default on), output is colorized with
// lipgloss when the writer is a terminal and left plain otherwise.
package log
