package profile

// Config reports the profiler settings: the mode name, the directory profiles
// are written to, and whether pkg/profile should stay silent.
//
// A Config is built by applying options to a base value, for example
//
//	cfg := WithMode("cpu")(WithPath(dir)(base))
type Config func() (mode, path string, quiet bool)

// Start begins profiling and returns a handle whose Stop method writes the
// profile. An empty mode, an unknown mode, or a binary built without the pprof
// tag all yield a handle whose Stop does nothing.
func (c Config) Start() interface{ Stop() } {
	mode, path, quiet := c()

	if mode == "" {
		return ignore{}
	}

	return start(mode, path, quiet)
}

// WithMode returns a Config option that sets the profiling mode.
func WithMode(mode string) func(Config) Config {
	return func(c Config) Config {
		_, path, quiet := c()

		return func() (string, string, bool) { return mode, path, quiet }
	}
}

// WithPath returns a Config option that sets the output directory.
func WithPath(path string) func(Config) Config {
	return func(c Config) Config {
		mode, _, quiet := c()

		return func() (string, string, bool) { return mode, path, quiet }
	}
}

// WithQuiet returns a Config option that suppresses pkg/profile's own log
// output.
func WithQuiet(quiet bool) func(Config) Config {
	return func(c Config) Config {
		mode, path, _ := c()

		return func() (string, string, bool) { return mode, path, quiet }
	}
}

type ignore struct{}

func (ignore) Stop() {}
