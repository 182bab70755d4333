package server

import (
	"github.com/viant/callback/server/pending"
	"go.uber.org/zap"
)

// Service serves the callback and fetch-callback endpoints.
type Service struct {
	manager   *pending.Manager
	scheme    string
	authority string
	cors      *Cors
	addr      string
	logger    *zap.Logger
}

// Manager returns the pending result manager.
func (s *Service) Manager() *pending.Manager { return s.manager }

// New creates a Service.
func New(manager *pending.Manager, options ...Option) *Service {
	ret := &Service{
		manager: manager,
		scheme:  DefaultScheme,
		cors:    defaultCors(),
		logger:  zap.NewNop(),
	}
	for _, opt := range options {
		opt(ret)
	}
	if ret.manager.Logger == nil {
		ret.manager.Logger = ret.logger
	}
	return ret
}
