package emergency

import (
	"errors"
	"time"
)

// ErrEmpty is returned by PopMax and Peek on an empty queue.
var ErrEmpty = errors.New("emergency: queue is empty")

// Case is a snapshot of one urgent request taken at enqueue time.
// It holds no reference to the request; consumers must re-validate
// the request before acting on a popped case.
type Case struct {
	RequestID  int
	Score      int
	EnqueuedAt time.Time
}

// Option configures a Queue.
type Option func(*Options)

// Options holds Queue configuration.
type Options struct {
	// Clock stamps cases enqueued without a timestamp.
	Clock func() time.Time
}

// DefaultOptions returns Options using time.Now.
func DefaultOptions() Options {
	return Options{Clock: time.Now}
}

// WithClock overrides the timestamp source. A nil clock is ignored.
func WithClock(clock func() time.Time) Option {
	return func(o *Options) {
		if clock != nil {
			o.Clock = clock
		}
	}
}
