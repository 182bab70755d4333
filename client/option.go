package client

import (
	"context"
	"net/http"

	"github.com/viant/callback/poller"
	"github.com/viant/jsonrpc/transport"
	"go.uber.org/zap"
)

// Option configures a Service.
type Option func(s *Service)

// WithHTTPClient sets the client used by the default fetcher.
func WithHTTPClient(client *http.Client) Option {
	return func(s *Service) {
		s.httpClient = client
	}
}

// WithFetcher replaces the HTTP fetcher.
func WithFetcher(fetcher poller.Fetcher) Option {
	return func(s *Service) {
		s.fetcher = fetcher
	}
}

// WithLogger sets the logger shared with the poller.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithPollerOptions passes options through to the poller.
func WithPollerOptions(options ...poller.Option) Option {
	return func(s *Service) {
		s.pollerOptions = append(s.pollerOptions, options...)
	}
}

// WithNotifier forwards every received URI to notifier as a JSON-RPC
// notification for as long as ctx is alive.
func WithNotifier(ctx context.Context, notifier transport.Notifier) Option {
	return func(s *Service) {
		s.notifiers = append(s.notifiers, boundNotifier{ctx: ctx, notifier: notifier})
	}
}
