package pending

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory Store. It is concurrency-safe and intended
// for single-process deployments or testing.
type MemoryStore struct {
	mu   sync.RWMutex
	byID map[string]*Pending
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{byID: make(map[string]*Pending)}
}

func (s *MemoryStore) Put(_ context.Context, p *Pending) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID[p.ID] = clone(p)
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (*Pending, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.byID[id]
	if !ok {
		return nil, false, nil
	}
	return clone(p), true, nil
}

func (s *MemoryStore) Take(_ context.Context, id string) (*Pending, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.byID[id]
	if !ok {
		return nil, false, nil
	}
	delete(s.byID, id)
	return p, true, nil
}

func (s *MemoryStore) List(_ context.Context) ([]*Pending, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Pending, 0, len(s.byID))
	for _, p := range s.byID {
		out = append(out, clone(p))
	}
	return out, nil
}

func clone(p *Pending) *Pending {
	ret := *p
	ret.Components = append(ret.Components[:0:0], p.Components...)
	return &ret
}
