package poller

import (
	"time"

	"go.uber.org/zap"
)

const (
	// DefaultInterval is the delay between two fetches of the same session.
	DefaultInterval = 500 * time.Millisecond
	// DefaultTimeout bounds how long a session keeps polling.
	DefaultTimeout = 5 * time.Minute
)

// Option configures a Poller.
type Option func(p *Poller)

// WithInterval sets the delay between fetches.
func WithInterval(interval time.Duration) Option {
	return func(p *Poller) {
		if interval > 0 {
			p.interval = interval
		}
	}
}

// WithTimeout sets the session timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(p *Poller) {
		if timeout > 0 {
			p.timeout = timeout
		}
	}
}

// WithClock replaces the wall clock.
func WithClock(clock Clock) Option {
	return func(p *Poller) {
		if clock != nil {
			p.clock = clock
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Poller) {
		if logger != nil {
			p.logger = logger
		}
	}
}
