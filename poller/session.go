package poller

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"time"

	"github.com/viant/callback/schema"
	"go.uber.org/zap"
)

// State is the lifecycle state of a Session.
type State int

const (
	// Polling means the session has not reached a terminal state yet.
	Polling State = iota
	// Delivered means a payload was fetched and its URIs were published.
	Delivered
	// TimedOut means the timeout elapsed with no payload.
	TimedOut
	// Malformed means a payload was fetched but could not be decoded.
	Malformed
	// Cancelled means the session was stopped by its caller.
	Cancelled
)

func (s State) String() string {
	switch s {
	case Polling:
		return "polling"
	case Delivered:
		return "delivered"
	case TimedOut:
		return "timedOut"
	case Malformed:
		return "malformed"
	case Cancelled:
		return "cancelled"
	}
	return "unknown"
}

// Outcome summarises a session.
type Outcome struct {
	State    State
	Attempts int
	Emitted  int
	// Err holds the decode error for Malformed, the last fetch error for
	// TimedOut (if any), or the context error for Cancelled.
	Err error
}

// Session is one bounded sequence of fetch attempts for an identifier.
type Session struct {
	id        string
	startTime time.Time
	poller    *Poller
	cancel    context.CancelFunc
	done      chan struct{}

	mux     sync.Mutex
	outcome Outcome
}

// ID returns the identifier being redeemed.
func (s *Session) ID() string { return s.id }

// StartTime returns the time the session began.
func (s *Session) StartTime() time.Time { return s.startTime }

// Done is closed once the session reaches a terminal state.
func (s *Session) Done() <-chan struct{} { return s.done }

// Cancel stops polling. It is a no-op once the session has ended.
func (s *Session) Cancel() { s.cancel() }

// Outcome returns a snapshot of the session state.
func (s *Session) Outcome() Outcome {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.outcome
}

// Wait blocks until the session ends or ctx is done.
func (s *Session) Wait(ctx context.Context) (Outcome, error) {
	select {
	case <-s.done:
		return s.Outcome(), nil
	case <-ctx.Done():
		return s.Outcome(), ctx.Err()
	}
}

func (s *Session) attempt() int {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.outcome.Attempts++
	return s.outcome.Attempts
}

func (s *Session) finish(state State, err error) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.outcome.State = state
	s.outcome.Err = err
}

func (s *Session) emitted() {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.outcome.Emitted++
}

func (s *Session) run(ctx context.Context) {
	defer close(s.done)
	defer s.cancel()
	p := s.poller
	logger := p.logger.With(zap.String("id", s.id))
	var lastErr error
	for {
		if err := ctx.Err(); err != nil {
			s.finish(Cancelled, err)
			return
		}
		attempt := s.attempt()
		body, err := p.fetcher.Fetch(ctx, s.id)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				s.finish(Cancelled, ctxErr)
				return
			}
			if errors.Is(err, ErrPayloadTooLarge) {
				logger.Error("failed to read callback result", zap.Int("attempt", attempt), zap.Error(err))
				s.finish(Malformed, err)
				return
			}
			lastErr = err
			logger.Warn("callback fetch failed", zap.Int("attempt", attempt), zap.Error(err))
		} else if len(bytes.TrimSpace(body)) > 0 {
			s.deliver(logger, body)
			return
		}

		if p.clock.Now().Sub(s.startTime) >= p.timeout {
			logger.Debug("callback polling timed out", zap.Int("attempts", attempt))
			s.finish(TimedOut, lastErr)
			return
		}
		select {
		case <-ctx.Done():
			s.finish(Cancelled, ctx.Err())
			return
		case <-p.clock.After(p.interval):
		}
	}
}

func (s *Session) deliver(logger *zap.Logger, body []byte) {
	items, err := schema.DecodeResult(body)
	if err != nil {
		logger.Error("failed to decode callback result", zap.Int("size", len(body)), zap.Error(err))
		s.finish(Malformed, err)
		return
	}
	for i := range items {
		s.poller.publisher.Emit(items[i].URL())
		s.emitted()
	}
	s.finish(Delivered, nil)
}
