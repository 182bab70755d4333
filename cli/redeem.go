package cli

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"github.com/viant/callback"
	"github.com/viant/callback/config"
	"github.com/viant/callback/internal/logging"
	"github.com/viant/callback/poller"
	"github.com/viant/callback/schema"
)

func redeem(ctx context.Context, cfg *config.Config, request schema.Request, stdout io.Writer) error {
	logger := logging.New(cfg.Log)
	defer func() { _ = logger.Sync() }()

	service, err := callback.NewClient(cfg, logger)
	if err != nil {
		return err
	}
	defer service.Close()
	unsubscribe := service.OnCallback(func(uri *url.URL) {
		_, _ = fmt.Fprintln(stdout, uri.String())
	})
	defer unsubscribe()

	URI, session, err := service.CreateURI(ctx, request)
	if err != nil {
		return err
	}
	if _, err = fmt.Fprintln(stdout, URI); err != nil {
		return err
	}
	outcome, err := session.Wait(ctx)
	if err != nil {
		return err
	}
	if outcome.State != poller.Delivered {
		if outcome.Err != nil {
			return fmt.Errorf("callback %v %v after %d attempts: %w", request.ID, outcome.State, outcome.Attempts, outcome.Err)
		}
		return fmt.Errorf("callback %v %v after %d attempts", request.ID, outcome.State, outcome.Attempts)
	}
	return nil
}
