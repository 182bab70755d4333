package pending

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/callback/schema"
)

func TestManager(t *testing.T) {
	var testCases = []struct {
		description string
		store       func(t *testing.T) Store
	}{
		{
			description: "memory",
			store:       func(t *testing.T) Store { return NewMemoryStore() },
		},
		{
			description: "file",
			store: func(t *testing.T) Store {
				return NewFileStore(filepath.Join(t.TempDir(), "pending"))
			},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			ctx := context.Background()
			now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
			m := NewManager(testCase.store(t), time.Minute, nil)
			m.Now = func() time.Time { return now }

			done := schema.URIComponents{Scheme: "https", Authority: "example.com", Path: "/done"}
			again := schema.URIComponents{Scheme: "https", Authority: "example.com", Path: "/again", Query: "a=1"}

			p, err := m.Record(ctx, "id/1", done)
			require.NoError(t, err)
			assert.Equal(t, now.Add(time.Minute), p.ExpiresAt)
			_, err = m.Record(ctx, "id/1", again)
			require.NoError(t, err)

			items, err := m.Take(ctx, "id/1")
			require.NoError(t, err)
			assert.Equal(t, []schema.URIComponents{done, again}, items)

			items, err = m.Take(ctx, "id/1")
			require.NoError(t, err)
			assert.Empty(t, items)

			items, err = m.Take(ctx, "unknown")
			require.NoError(t, err)
			assert.Empty(t, items)

			// expired entries are neither returned nor extended
			_, err = m.Record(ctx, "old", done)
			require.NoError(t, err)
			_, err = m.Record(ctx, "fresh", done)
			require.NoError(t, err)
			now = now.Add(2 * time.Minute)
			_, err = m.Record(ctx, "fresh", again)
			require.NoError(t, err)

			ids, err := m.Purge(ctx)
			require.NoError(t, err)
			assert.Equal(t, []string{"old"}, ids)

			items, err = m.Take(ctx, "fresh")
			require.NoError(t, err)
			assert.Equal(t, []schema.URIComponents{again}, items)

			_, err = m.Record(ctx, "late", done)
			require.NoError(t, err)
			now = now.Add(time.Hour)
			items, err = m.Take(ctx, "late")
			require.NoError(t, err)
			assert.Empty(t, items)
		})
	}
}

func TestManager_Misconfigured(t *testing.T) {
	m := &Manager{}
	_, err := m.Record(context.Background(), "id", schema.URIComponents{Scheme: "https"})
	assert.ErrorIs(t, err, ErrMisconfigured)
	_, err = m.Take(context.Background(), "id")
	assert.ErrorIs(t, err, ErrMisconfigured)
}

func TestManager_Janitor(t *testing.T) {
	store := NewMemoryStore()
	m := NewManager(store, time.Millisecond, nil)
	_, err := m.Record(context.Background(), "id", schema.URIComponents{Scheme: "https"})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		m.Janitor(ctx, 5*time.Millisecond)
		close(stopped)
	}()
	require.Eventually(t, func() bool {
		entries, _ := store.List(context.Background())
		return len(entries) == 0
	}, time.Second, 5*time.Millisecond)
	cancel()
	<-stopped
}
