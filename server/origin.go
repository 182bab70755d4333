package server

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/viant/callback/schema"
	"go.uber.org/zap"
)

// originGuard rejects fetch-callback requests from browser origins the policy
// does not list. Requests without an Origin header are not browser polls and
// pass through. Patterns follow go-chi/cors: "*" allows any origin and a single
// "*" inside a pattern matches a subdomain wildcard.
func (c *Cors) originGuard(logger *zap.Logger) Middleware {
	matchers := make([]originMatcher, 0, len(c.AllowOrigins))
	anyOrigin := false
	for _, pattern := range c.AllowOrigins {
		pattern = strings.ToLower(strings.TrimSpace(pattern))
		if pattern == "*" {
			anyOrigin = true
			continue
		}
		prefix, suffix, wildcard := strings.Cut(pattern, "*")
		matchers = append(matchers, originMatcher{prefix: prefix, suffix: suffix, wildcard: wildcard})
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" || anyOrigin {
				next.ServeHTTP(w, r)
				return
			}
			lowered := strings.ToLower(origin)
			for _, matcher := range matchers {
				if matcher.match(lowered) {
					next.ServeHTTP(w, r)
					return
				}
			}
			logger.Warn("rejected callback fetch origin",
				zap.String("origin", origin),
				zap.String("id", r.URL.Query().Get(schema.KeyID)),
				zap.String("requestID", middleware.GetReqID(r.Context())))
			http.Error(w, "origin not allowed", http.StatusForbidden)
		})
	}
}

type originMatcher struct {
	prefix   string
	suffix   string
	wildcard bool
}

func (m originMatcher) match(origin string) bool {
	if !m.wildcard {
		return origin == m.prefix
	}
	return len(origin) >= len(m.prefix)+len(m.suffix) && strings.HasPrefix(origin, m.prefix) && strings.HasSuffix(origin, m.suffix)
}
