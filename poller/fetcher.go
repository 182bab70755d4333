package poller

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/viant/callback/factory"
)

// MaxBodySize caps the fetch-callback response read into memory.
const MaxBodySize = 1 << 20

// ErrPayloadTooLarge is returned when a fetch-callback response exceeds MaxBodySize.
var ErrPayloadTooLarge = errors.New("callback payload too large")

// Fetcher retrieves the pending callback payload for an identifier. An empty
// result means nothing has arrived yet.
type Fetcher interface {
	Fetch(ctx context.Context, id string) ([]byte, error)
}

// FetcherFunc adapts a function to Fetcher.
type FetcherFunc func(ctx context.Context, id string) ([]byte, error)

func (f FetcherFunc) Fetch(ctx context.Context, id string) ([]byte, error) {
	return f(ctx, id)
}

// HTTPFetcher issues GET <origin>/fetch-callback?vscode-id=<id>.
type HTTPFetcher struct {
	Origin string
	Client *http.Client
}

func (f *HTTPFetcher) Fetch(ctx context.Context, id string) ([]byte, error) {
	URL := factory.FetchURL(f.Origin, id)
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, URL, nil)
	if err != nil {
		return nil, err
	}
	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	response, err := client.Do(request)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()
	if response.StatusCode < 200 || response.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(response.Body, MaxBodySize))
		return nil, fmt.Errorf("unexpected status %d from %s", response.StatusCode, URL)
	}
	data, err := io.ReadAll(io.LimitReader(response.Body, MaxBodySize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", URL, err)
	}
	if len(data) > MaxBodySize {
		return nil, fmt.Errorf("%w: %s exceeds %d bytes", ErrPayloadTooLarge, URL, MaxBodySize)
	}
	return data, nil
}

// NewHTTPFetcher creates a fetcher for origin. A nil client uses http.DefaultClient.
func NewHTTPFetcher(origin string, client *http.Client) *HTTPFetcher {
	return &HTTPFetcher{Origin: origin, Client: client}
}
