package callback

import (
	"github.com/viant/callback/client"
	"github.com/viant/callback/config"
	"github.com/viant/callback/poller"
	"go.uber.org/zap"
)

// NewClient creates a callback client from cfg. Extra options are applied
// after the ones derived from cfg.
func NewClient(cfg *config.Config, logger *zap.Logger, options ...client.Option) (*client.Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	clientOptions := []client.Option{
		client.WithLogger(logger),
		client.WithPollerOptions(poller.WithInterval(cfg.Interval), poller.WithTimeout(cfg.Timeout)),
	}
	return client.New(cfg.Origin, append(clientOptions, options...)...)
}
