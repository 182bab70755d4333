// Package notify forwards received callback URIs over a JSON-RPC connection.
package notify

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/viant/jsonrpc"
	"github.com/viant/jsonrpc/transport"
	"go.uber.org/zap"
)

// MethodCallbackReceived is the notification method sent for each URI.
const MethodCallbackReceived = "notifications/callback/received"

// CallbackReceivedParams are the notification params.
type CallbackReceivedParams struct {
	URI string `json:"uri"`
}

// Listener sends a notification for every URI it receives.
type Listener struct {
	notifier transport.Notifier
	ctx      context.Context
	logger   *zap.Logger
}

// Notify sends uri to the peer.
func (l *Listener) Notify(ctx context.Context, uri *url.URL) error {
	notification := &jsonrpc.Notification{Method: MethodCallbackReceived}
	var err error
	notification.Params, err = json.Marshal(CallbackReceivedParams{URI: uri.String()})
	if err != nil {
		return err
	}
	return l.notifier.Notify(ctx, notification)
}

// OnCallback matches the emitter listener signature; failures are logged.
func (l *Listener) OnCallback(uri *url.URL) {
	if err := l.Notify(l.ctx, uri); err != nil {
		l.logger.Warn("failed to forward callback", zap.String("uri", uri.String()), zap.Error(err))
	}
}

// New creates a listener bound to ctx for the lifetime of the connection.
func New(ctx context.Context, notifier transport.Notifier, logger *zap.Logger) *Listener {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Listener{notifier: notifier, ctx: ctx, logger: logger}
}
