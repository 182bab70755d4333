package callback

import (
	"github.com/viant/callback/config"
	"github.com/viant/callback/server"
	"github.com/viant/callback/server/pending"
	"go.uber.org/zap"
)

// NewServer creates a callback server from cfg. Pending results are kept in
// memory unless cfg.StoreURL names an afs location.
func NewServer(cfg *config.Config, logger *zap.Logger) *server.Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	var store pending.Store = pending.NewMemoryStore()
	if cfg.StoreURL != "" {
		store = pending.NewFileStore(cfg.StoreURL)
	}
	manager := pending.NewManager(store, cfg.TTL, logger)
	return server.New(manager,
		server.WithAddr(cfg.Listen),
		server.WithScheme(cfg.Scheme),
		server.WithAuthority(cfg.Authority),
		server.WithCORS(&server.Cors{AllowOrigins: cfg.AllowedOrigins, MaxAge: 300}),
		server.WithLogger(logger),
	)
}
