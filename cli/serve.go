package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/viant/callback"
	"github.com/viant/callback/config"
	"github.com/viant/callback/internal/logging"
	"github.com/viant/callback/server/pending"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

func serve(ctx context.Context, cfg *config.Config) error {
	logger := logging.New(cfg.Log)
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	service := callback.NewServer(cfg, logger)
	httpServer := service.HTTP(cfg.Listen)
	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		logger.Info("callback server listening", zap.String("addr", httpServer.Addr), zap.String("store", cfg.StoreURL))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		service.Manager().Janitor(ctx, janitorInterval(cfg.TTL))
		return nil
	})
	group.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})
	return group.Wait()
}

func janitorInterval(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		ttl = pending.DefaultTTL
	}
	if interval := ttl / 2; interval > time.Second {
		return interval
	}
	return time.Second
}
