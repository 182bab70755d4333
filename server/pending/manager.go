package pending

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/viant/callback/schema"
	"go.uber.org/zap"
)

// DefaultTTL bounds how long recorded results wait for a fetch.
const DefaultTTL = 10 * time.Minute

// ErrMisconfigured indicates a missing Store.
var ErrMisconfigured = errors.New("pending: misconfigured manager (missing Store)")

// Manager records and hands out callback results with expiry.
type Manager struct {
	Store  Store
	TTL    time.Duration
	Now    func() time.Time
	Logger *zap.Logger

	mux sync.Mutex
}

func (m *Manager) now() time.Time {
	if m.Now != nil {
		return m.Now()
	}
	return time.Now()
}

func (m *Manager) ttl() time.Duration {
	if m.TTL > 0 {
		return m.TTL
	}
	return DefaultTTL
}

func (m *Manager) logger() *zap.Logger {
	if m.Logger != nil {
		return m.Logger
	}
	return zap.NewNop()
}

// Record appends components to the entry for id, creating the entry (or
// replacing an expired one) as needed.
func (m *Manager) Record(ctx context.Context, id string, components schema.URIComponents) (*Pending, error) {
	if m.Store == nil {
		return nil, ErrMisconfigured
	}
	m.mux.Lock()
	defer m.mux.Unlock()
	now := m.now()
	p, ok, err := m.Store.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load pending: %w", err)
	}
	if !ok || p.Expired(now) {
		p = &Pending{ID: id, CreatedAt: now, ExpiresAt: now.Add(m.ttl())}
	}
	p.Components = append(p.Components, components)
	if err = m.Store.Put(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Take removes and returns the components recorded for id. Unknown and
// expired entries yield no components.
func (m *Manager) Take(ctx context.Context, id string) ([]schema.URIComponents, error) {
	if m.Store == nil {
		return nil, ErrMisconfigured
	}
	m.mux.Lock()
	defer m.mux.Unlock()
	p, ok, err := m.Store.Take(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok || p.Expired(m.now()) {
		return nil, nil
	}
	return p.Components, nil
}

// Purge removes expired entries and returns their identifiers.
func (m *Manager) Purge(ctx context.Context) ([]string, error) {
	if m.Store == nil {
		return nil, ErrMisconfigured
	}
	m.mux.Lock()
	defer m.mux.Unlock()
	entries, err := m.Store.List(ctx)
	if err != nil {
		return nil, err
	}
	now := m.now()
	var ids []string
	for _, p := range entries {
		if !p.Expired(now) {
			continue
		}
		if _, _, err = m.Store.Take(ctx, p.ID); err != nil {
			return ids, err
		}
		ids = append(ids, p.ID)
	}
	return ids, nil
}

// Janitor purges expired entries every interval until ctx is done.
func (m *Manager) Janitor(ctx context.Context, interval time.Duration) {
	tick := time.NewTicker(interval)
	defer tick.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-tick.C:
			ids, err := m.Purge(ctx)
			if err != nil {
				m.logger().Error("failed to purge pending callbacks", zap.Error(err))
				continue
			}
			if len(ids) > 0 {
				m.logger().Debug("purged pending callbacks", zap.Int("count", len(ids)))
			}
		}
	}
}

// NewManager creates a manager over store.
func NewManager(store Store, ttl time.Duration, logger *zap.Logger) *Manager {
	return &Manager{Store: store, TTL: ttl, Logger: logger}
}
