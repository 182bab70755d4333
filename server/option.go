package server

import "go.uber.org/zap"

// DefaultScheme is used for recorded URIs when the callback carries no vscode-scheme.
const DefaultScheme = "vscode"

// Option configures a Service.
type Option func(s *Service)

// WithScheme sets the default scheme of recorded URIs.
func WithScheme(scheme string) Option {
	return func(s *Service) {
		s.scheme = scheme
	}
}

// WithAuthority sets the default authority of recorded URIs.
func WithAuthority(authority string) Option {
	return func(s *Service) {
		s.authority = authority
	}
}

// WithCORS replaces the CORS policy.
func WithCORS(cors *Cors) Option {
	return func(s *Service) {
		if cors != nil {
			s.cors = cors
		}
	}
}

// WithAddr sets the default listen address.
func WithAddr(addr string) Option {
	return func(s *Service) {
		s.addr = addr
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}
