package pending

import "context"

// Store is the backing registry of pending entries keyed by identifier.
// Implementations may be in-memory or persistent.
type Store interface {
	Put(ctx context.Context, p *Pending) error
	Get(ctx context.Context, id string) (*Pending, bool, error)
	// Take removes and returns the entry for id.
	Take(ctx context.Context, id string) (*Pending, bool, error)
	List(ctx context.Context) ([]*Pending, error)
}
