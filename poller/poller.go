package poller

import (
	"context"
	"net/url"
	"time"

	"go.uber.org/zap"
)

// Publisher receives redeemed URIs. *emitter.Emitter[*url.URL] satisfies it.
type Publisher interface {
	Emit(value *url.URL)
}

// Poller starts redemption sessions.
type Poller struct {
	fetcher   Fetcher
	publisher Publisher
	interval  time.Duration
	timeout   time.Duration
	clock     Clock
	logger    *zap.Logger
}

// Interval returns the configured delay between fetches.
func (p *Poller) Interval() time.Duration { return p.interval }

// Timeout returns the configured session timeout.
func (p *Poller) Timeout() time.Duration { return p.timeout }

// Start begins polling for id in the background. Published URIs are
// delivered on the session goroutine.
func (p *Poller) Start(ctx context.Context, id string) *Session {
	ctx, cancel := context.WithCancel(ctx)
	session := &Session{
		id:        id,
		startTime: p.clock.Now(),
		poller:    p,
		cancel:    cancel,
		done:      make(chan struct{}),
	}
	go session.run(ctx)
	return session
}

// New creates a poller.
func New(fetcher Fetcher, publisher Publisher, options ...Option) *Poller {
	ret := &Poller{
		fetcher:   fetcher,
		publisher: publisher,
		interval:  DefaultInterval,
		timeout:   DefaultTimeout,
		clock:     wallClock{},
		logger:    zap.NewNop(),
	}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}
