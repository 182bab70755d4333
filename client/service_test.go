package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/callback/notify"
	"github.com/viant/callback/poller"
	"github.com/viant/callback/schema"
	"github.com/viant/callback/server"
	"github.com/viant/callback/server/pending"
	"github.com/viant/jsonrpc"
	"github.com/viant/jsonrpc/transport"
)

func TestService_EndToEnd(t *testing.T) {
	srv := httptest.NewServer(server.New(pending.NewManager(pending.NewMemoryStore(), time.Minute, nil), server.WithAuthority("vscode.github-authentication")).Handler())
	defer srv.Close()

	service, err := New(srv.URL, WithHTTPClient(srv.Client()), WithPollerOptions(poller.WithInterval(5*time.Millisecond), poller.WithTimeout(5*time.Second)))
	require.NoError(t, err)

	var mux sync.Mutex
	var received []string
	unsubscribe := service.OnCallback(func(uri *url.URL) {
		mux.Lock()
		defer mux.Unlock()
		received = append(received, uri.String())
	})
	defer unsubscribe()

	request := schema.Request{ID: schema.NewID(), Path: "/did-authenticate", Query: "code=xyz&state=1"}
	URI, session, err := service.CreateURI(context.Background(), request)
	require.NoError(t, err)
	assert.Equal(t, service.URI(request), URI)

	active, ok := service.Session(request.ID)
	require.True(t, ok)
	assert.Equal(t, session, active)

	// the external party redirects the browser to the callback URI
	time.Sleep(20 * time.Millisecond)
	response, err := srv.Client().Get(URI)
	require.NoError(t, err)
	response.Body.Close()

	outcome, err := session.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, poller.Delivered, outcome.State)
	assert.Equal(t, 1, outcome.Emitted)
	assert.Greater(t, outcome.Attempts, 1)

	mux.Lock()
	assert.Equal(t, []string{"vscode://vscode.github-authentication/did-authenticate?code=xyz&state=1"}, received)
	mux.Unlock()

	require.Eventually(t, func() bool {
		_, ok := service.Session(request.ID)
		return !ok
	}, time.Second, time.Millisecond)
}

func TestService_Redeem(t *testing.T) {
	block := make(chan struct{})
	fetcher := poller.FetcherFunc(func(ctx context.Context, id string) ([]byte, error) {
		select {
		case <-block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		return nil, nil
	})
	service, err := New("http://127.0.0.1:8080", WithFetcher(fetcher))
	require.NoError(t, err)

	_, err = service.Redeem(context.Background(), "")
	assert.Error(t, err)

	session, err := service.Redeem(context.Background(), "abc123")
	require.NoError(t, err)
	_, err = service.Redeem(context.Background(), "abc123")
	assert.ErrorIs(t, err, ErrSessionActive)

	service.Close()
	outcome, err := session.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, poller.Cancelled, outcome.State)

	require.Eventually(t, func() bool {
		_, ok := service.Session("abc123")
		return !ok
	}, time.Second, time.Millisecond)
	session, err = service.Redeem(context.Background(), "abc123")
	require.NoError(t, err)
	session.Cancel()
	<-session.Done()
	close(block)
}

func TestNew_InvalidOrigin(t *testing.T) {
	for _, origin := range []string{"", "/relative", "://bad"} {
		_, err := New(origin)
		assert.Error(t, err, origin)
	}
}

func TestService_URIDoesNotPoll(t *testing.T) {
	var calls int
	fetcher := poller.FetcherFunc(func(ctx context.Context, id string) ([]byte, error) {
		calls++
		return nil, nil
	})
	service, err := New("https://editor.example.com", WithFetcher(fetcher))
	require.NoError(t, err)
	URI := service.URI(schema.Request{ID: "abc123"})
	assert.Equal(t, "https://editor.example.com/callback?vscode-id=abc123", URI)
	_, ok := service.Session("abc123")
	assert.False(t, ok)
	assert.Equal(t, 0, calls)
}

func TestService_CloseWhileSessionsEnd(t *testing.T) {
	fetcher := poller.FetcherFunc(func(ctx context.Context, id string) ([]byte, error) {
		return nil, nil
	})
	service, err := New("http://127.0.0.1:8080", WithFetcher(fetcher),
		WithPollerOptions(poller.WithInterval(time.Millisecond), poller.WithTimeout(time.Millisecond)))
	require.NoError(t, err)

	var sessions []*poller.Session
	for i := 0; i < 50; i++ {
		session, err := service.Redeem(context.Background(), fmt.Sprintf("id-%d", i))
		require.NoError(t, err)
		sessions = append(sessions, session)
	}
	for i := 0; i < 100; i++ {
		service.Close()
	}
	for _, session := range sessions {
		<-session.Done()
	}
	require.Eventually(t, func() bool {
		for _, session := range sessions {
			if _, ok := service.Session(session.ID()); ok {
				return false
			}
		}
		return true
	}, time.Second, time.Millisecond)
}

type recordingNotifier struct {
	mux           sync.Mutex
	notifications []*jsonrpc.Notification
}

func (r *recordingNotifier) Notify(ctx context.Context, n *jsonrpc.Notification) error {
	r.mux.Lock()
	defer r.mux.Unlock()
	r.notifications = append(r.notifications, n)
	return nil
}

var _ transport.Notifier = (*recordingNotifier)(nil)

func TestService_WithNotifier(t *testing.T) {
	var testCases = []struct {
		description string
		body        string
		expect      []string
	}{
		{
			description: "each delivered URI is forwarded",
			body:        `[{"scheme":"https","authority":"example.com","path":"/done"},{"scheme":"vscode","authority":"ext","path":"/p","query":"code=1"}]`,
			expect:      []string{"https://example.com/done", "vscode://ext/p?code=1"},
		},
		{
			description: "empty result forwards nothing",
			body:        `[]`,
		},
	}
	for _, testCase := range testCases {
		notifier := &recordingNotifier{}
		fetcher := poller.FetcherFunc(func(ctx context.Context, id string) ([]byte, error) {
			return []byte(testCase.body), nil
		})
		service, err := New("http://127.0.0.1:8080", WithFetcher(fetcher), WithNotifier(context.Background(), notifier))
		require.NoError(t, err, testCase.description)
		session, err := service.Redeem(context.Background(), "abc123")
		require.NoError(t, err, testCase.description)
		outcome, err := session.Wait(context.Background())
		require.NoError(t, err, testCase.description)
		assert.Equal(t, poller.Delivered, outcome.State, testCase.description)

		var actual []string
		for _, n := range notifier.notifications {
			assert.Equal(t, notify.MethodCallbackReceived, n.Method, testCase.description)
			var params notify.CallbackReceivedParams
			require.NoError(t, json.Unmarshal(n.Params, &params), testCase.description)
			actual = append(actual, params.URI)
		}
		assert.Equal(t, testCase.expect, actual, testCase.description)
	}
}
