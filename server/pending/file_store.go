package pending

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/viant/afs"
	"github.com/viant/afs/url"
)

// FileStore persists each pending entry as a JSON document under a base URL.
// Any afs-supported location works (local path, file://, mem://, cloud
// storage), which lets several server processes share results.
type FileStore struct {
	mu      sync.Mutex
	fs      afs.Service
	baseURL string
}

func (s *FileStore) entryURL(id string) string {
	return url.Join(s.baseURL, base64.RawURLEncoding.EncodeToString([]byte(id))+".json")
}

func (s *FileStore) Put(ctx context.Context, p *Pending) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	if err = s.fs.Upload(ctx, s.entryURL(p.ID), 0o600, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to store pending %v: %w", p.ID, err)
	}
	return nil
}

func (s *FileStore) Get(ctx context.Context, id string) (*Pending, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx, s.entryURL(id))
}

func (s *FileStore) Take(ctx context.Context, id string) (*Pending, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	URL := s.entryURL(id)
	p, ok, err := s.load(ctx, URL)
	if err != nil || !ok {
		return p, ok, err
	}
	if err = s.fs.Delete(ctx, URL); err != nil {
		return nil, false, fmt.Errorf("failed to remove pending %v: %w", id, err)
	}
	return p, true, nil
}

func (s *FileStore) List(ctx context.Context) ([]*Pending, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	exists, err := s.fs.Exists(ctx, s.baseURL)
	if err != nil || !exists {
		return nil, err
	}
	objects, err := s.fs.List(ctx, s.baseURL)
	if err != nil {
		return nil, err
	}
	var out []*Pending
	for _, object := range objects {
		if object.IsDir() || !strings.HasSuffix(object.Name(), ".json") {
			continue
		}
		p, ok, err := s.load(ctx, object.URL())
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *FileStore) load(ctx context.Context, URL string) (*Pending, bool, error) {
	exists, err := s.fs.Exists(ctx, URL)
	if err != nil || !exists {
		return nil, false, err
	}
	data, err := s.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, false, err
	}
	p := &Pending{}
	if err = json.Unmarshal(data, p); err != nil {
		return nil, false, fmt.Errorf("failed to decode pending %v: %w", URL, err)
	}
	return p, true, nil
}

// NewFileStore creates a Store rooted at baseURL.
func NewFileStore(baseURL string) *FileStore {
	return &FileStore{fs: afs.New(), baseURL: strings.TrimRight(baseURL, "/")}
}
