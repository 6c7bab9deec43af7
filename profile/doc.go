// Package profile provides optional runtime profiling for the tracekv command.
//
// Profiling is backed by [github.com/pkg/profile] and only compiled in with
// the "pprof" build tag:
//
//	go build -tags pprof -o tracekv .
//
// Without the tag, [Modes] is empty and [Config.Start] returns a no-op.
//
// # Modes
//
//   - allocs:    memory allocation profiling (all allocations)
//   - block:     blocking profiling
//   - clock:     wall-clock profiling
//   - cpu:       CPU profiling
//   - goroutine: goroutine profiling
//   - heap:      heap profiling (live allocations)
//   - mem:       general memory profiling
//   - mutex:     mutex contention profiling
//   - thread:    thread creation profiling
//   - trace:     execution trace
//
// # Usage
//
// A [Config] is assembled from functional options and started once:
//
//	var cfg profile.Config = func() (string, string, bool) { return "", "", false }
//	cfg = profile.WithMode("cpu")(cfg)
//	cfg = profile.WithPath("/tmp/profiles")(cfg)
//
//	p := cfg.Start()
//	defer p.Stop()
//
// From the command line:
//
//	tracekv --pprof-mode=cpu emit n=1+1
//
// Profiles default to $XDG_CACHE_HOME/tracekv/pprof and are inspected with
// go tool pprof:
//
//	go tool pprof -http=: ~/.cache/tracekv/pprof/cpu.pprof
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
