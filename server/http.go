package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/viant/callback/schema"
)

// Handler returns the router serving both endpoints.
func (s *Service) Handler() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID, middleware.Recoverer, accessLog(s.logger))
	router.Get("/"+schema.CallbackPath, s.Callback)
	router.Group(func(r chi.Router) {
		r.Use(s.cors.Middleware(), s.cors.originGuard(s.logger))
		r.Get("/"+schema.FetchCallbackPath, s.FetchCallback)
		r.Options("/"+schema.FetchCallbackPath, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})
	})
	return router
}

// HTTP creates an http.Server for the service.
func (s *Service) HTTP(addr string) *http.Server {
	if addr == "" {
		addr = s.addr
	}
	if addr == "" {
		// Default bind only to localhost to reduce DNS rebinding risk
		addr = "127.0.0.1:8080"
	}
	return &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
}
