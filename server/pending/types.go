package pending

import (
	"time"

	"github.com/viant/callback/schema"
)

// Pending holds the callback results recorded for one identifier.
type Pending struct {
	ID         string                 `json:"id"`
	Components []schema.URIComponents `json:"components"`
	CreatedAt  time.Time              `json:"createdAt"`
	ExpiresAt  time.Time              `json:"expiresAt"`
}

// Expired reports whether the entry is past its expiry. A zero ExpiresAt never expires.
func (p *Pending) Expired(now time.Time) bool {
	return !p.ExpiresAt.IsZero() && !now.Before(p.ExpiresAt)
}
