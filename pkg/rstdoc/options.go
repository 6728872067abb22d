package rstdoc

import (
	"runtime"

	"github.com/sirupsen/logrus"
)

// options contains options for configuring [NewClassElement] and [Build].
type options struct {
	includeInherited bool
	logger           logrus.FieldLogger
	concurrency      int
}

type Option func(options options) options

// WithInheritedMembers documents members declared by ancestors on the subclass page as well.
func WithInheritedMembers() Option {
	return func(options options) options {
		options.includeInherited = true
		return options
	}
}

// WithLogger sets the logger used by [Build].
// It defaults to [logrus.StandardLogger].
func WithLogger(logger logrus.FieldLogger) Option {
	return func(options options) options {
		options.logger = logger
		return options
	}
}

// WithConcurrency limits the number of documents [Build] renders at the same time.
// Non-positive values fall back to [runtime.GOMAXPROCS].
func WithConcurrency(n int) Option {
	return func(options options) options {
		options.concurrency = n
		return options
	}
}

func newOptions(opts ...Option) options {
	o := options{}
	for _, opt := range opts {
		o = opt(o)
	}
	if o.logger == nil {
		o.logger = logrus.StandardLogger()
	}
	if o.concurrency <= 0 {
		o.concurrency = runtime.GOMAXPROCS(0)
	}
	return o
}
