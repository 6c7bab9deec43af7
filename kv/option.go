package kv

// Option applies a configuration option to an Emitter.
type Option func(Emitter) Emitter

// apply applies multiple options to an Emitter.
func apply(e Emitter, opts ...Option) Emitter {
	for _, opt := range opts {
		e = opt(e)
	}

	return e
}

// WithMessage sets the message of every record the Emitter forwards.
// The default message is empty.
func WithMessage(msg string) Option {
	return func(e Emitter) Emitter {
		e.msg = msg

		return e
	}
}

// WithBackend sets the Backend the Emitter forwards to.
func WithBackend(b Backend) Option {
	return func(e Emitter) Emitter {
		e.backend = b

		return e
	}
}
