package huffman

import (
	"github.com/rs/zerolog"
)

// Option configures a CodeBook or DecodeTree.
type Option func(*options)

type options struct {
	logger zerolog.Logger
}

// WithLogger makes the CodeBook or DecodeTree report silently-handled events
// (ignored duplicate entries, overwritten paths, decode failures) to logger at
// debug level.  The default is zerolog.Nop().
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func buildOptions(opts []Option) options {
	o := options{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
