package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sync"

	"github.com/viant/callback/emitter"
	"github.com/viant/callback/factory"
	"github.com/viant/callback/notify"
	"github.com/viant/callback/poller"
	"github.com/viant/callback/schema"
	"github.com/viant/jsonrpc/transport"
	"github.com/viant/mcp-protocol/syncmap"
	"go.uber.org/zap"
)

// ErrSessionActive is returned when an identifier is already being redeemed.
var ErrSessionActive = errors.New("callback: session already active")

// Service builds callback URIs for an origin, redeems them and publishes the
// received URIs to subscribers.
type Service struct {
	origin        string
	httpClient    *http.Client
	fetcher       poller.Fetcher
	logger        *zap.Logger
	pollerOptions []poller.Option
	notifiers     []boundNotifier

	received *emitter.Emitter[*url.URL]
	poller   *poller.Poller
	sessions *syncmap.Map[string, *poller.Session]
	mux      sync.Mutex
}

type boundNotifier struct {
	ctx      context.Context
	notifier transport.Notifier
}

// Origin returns the origin the callback endpoints are resolved against.
func (s *Service) Origin() string { return s.origin }

// URI builds the callback URI for request without starting a session.
func (s *Service) URI(request schema.Request) string {
	return factory.Build(s.origin, request)
}

// OnCallback subscribes listener to received URIs. Listeners run on the
// session goroutine and should not block.
func (s *Service) OnCallback(listener func(uri *url.URL)) func() {
	return s.received.Subscribe(listener)
}

// Redeem starts polling for id. Only one session per id may be active.
func (s *Service) Redeem(ctx context.Context, id string) (*poller.Session, error) {
	if id == "" {
		return nil, factory.ErrMissingID
	}
	s.mux.Lock()
	defer s.mux.Unlock()
	if _, ok := s.sessions.Get(id); ok {
		return nil, fmt.Errorf("%w: %v", ErrSessionActive, id)
	}
	session := s.poller.Start(ctx, id)
	s.sessions.Put(id, session)
	go s.release(session)
	return session, nil
}

func (s *Service) release(session *poller.Session) {
	<-session.Done()
	outcome := session.Outcome()
	s.logger.Debug("callback session ended",
		zap.String("id", session.ID()),
		zap.Stringer("state", outcome.State),
		zap.Int("attempts", outcome.Attempts))
	s.mux.Lock()
	defer s.mux.Unlock()
	if current, ok := s.sessions.Get(session.ID()); ok && current == session {
		s.sessions.Delete(session.ID())
	}
}

// CreateURI builds the callback URI for request and immediately starts
// redeeming it.
func (s *Service) CreateURI(ctx context.Context, request schema.Request) (string, *poller.Session, error) {
	session, err := s.Redeem(ctx, request.ID)
	if err != nil {
		return "", nil, err
	}
	return s.URI(request), session, nil
}

// Session returns the active session for id.
func (s *Service) Session(id string) (*poller.Session, bool) {
	return s.sessions.Get(id)
}

// Close cancels all active sessions.
func (s *Service) Close() {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.sessions.Range(func(_ string, session *poller.Session) bool {
		session.Cancel()
		return true
	})
}

// New creates a Service for origin.
func New(origin string, options ...Option) (*Service, error) {
	u, err := url.Parse(origin)
	if err != nil {
		return nil, fmt.Errorf("invalid origin %q: %w", origin, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid origin %q: expected absolute URL", origin)
	}
	ret := &Service{
		origin:   origin,
		logger:   zap.NewNop(),
		received: emitter.New[*url.URL](),
		sessions: syncmap.NewMap[string, *poller.Session](),
	}
	for _, opt := range options {
		opt(ret)
	}
	for _, bound := range ret.notifiers {
		ret.received.Subscribe(notify.New(bound.ctx, bound.notifier, ret.logger).OnCallback)
	}
	if ret.fetcher == nil {
		ret.fetcher = poller.NewHTTPFetcher(origin, ret.httpClient)
	}
	pollerOptions := append([]poller.Option{poller.WithLogger(ret.logger)}, ret.pollerOptions...)
	ret.poller = poller.New(ret.fetcher, ret.received, pollerOptions...)
	return ret, nil
}
