// Package kv emits leveled key-value events to a structured logging backend.
//
// Each call forwards exactly one record carrying all of its pairs, so call
// sites need only this package:
//
//	kv.Info(
//		kv.Of("id", "data_id"),
//		kv.Of("symbol", "BTC"),
//		kv.Of("genesis_date", opt.Date(genesis)),
//	)
//
// Values are Go function arguments, so each is evaluated exactly once, left
// to right, before the call. A value is attached under its key in its
// Go-syntax form (fmt's %#v verb), which distinguishes "5" from 5. The
// rendering is deferred through [slog.LogValuer] until a handler resolves
// it. Values that implement [slog.LogValuer] themselves are attached as-is.
//
// The package-level functions forward to the default logger of package log.
// Use [New] to bind any other [Backend]. Nothing is buffered or retried;
// level filtering and delivery belong to the backend.
package kv
