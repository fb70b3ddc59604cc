// FILE: local/option.go
package local

import "github.com/lixenwraith/log"

// options holds the construction-time settings shared by the two
// in-process Bucket realizations: a mutex-guarded SynchronizedBucket and
// a lock-free, CAS-retry LockFreeBucket. Both share the data model in
// the parent bucket4j package and present the identical Bucket
// capability.
type options struct {
	logger *log.Logger
}

// Option configures a bucket constructed by NewSynchronizedBucket or
// NewLockFreeBucket.
type Option func(*options)

// WithLogger attaches a diagnostic logger, used only off the hot path: a
// constructor logs a configuration it rejects. Operations inside the
// refill-inspect-mutate atomic section never log.
func WithLogger(logger *log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func resolveOptions(opts []Option) *options {
	o := &options{logger: log.NewLogger()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
