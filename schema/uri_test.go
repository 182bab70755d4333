package schema

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURIComponents_String(t *testing.T) {
	var testCases = []struct {
		description string
		components  URIComponents
		expect      string
	}{
		{
			description: "scheme authority path",
			components:  URIComponents{Scheme: "https", Authority: "example.com", Path: "/done"},
			expect:      "https://example.com/done",
		},
		{
			description: "query and fragment",
			components:  URIComponents{Scheme: "vscode", Authority: "vscode.github-authentication", Path: "/did-authenticate", Query: "code=1&state=2", Fragment: "top"},
			expect:      "vscode://vscode.github-authentication/did-authenticate?code=1&state=2#top",
		},
		{
			description: "relative path gets rooted under authority",
			components:  URIComponents{Scheme: "https", Authority: "example.com", Path: "done"},
			expect:      "https://example.com/done",
		},
		{
			description: "hash in query does not start the fragment",
			components:  URIComponents{Scheme: "vscode", Authority: "ext", Path: "/p", Query: "a=1#x", Fragment: "f"},
			expect:      "vscode://ext/p?a=1%23x#f",
		},
		{
			description: "space in query is encoded",
			components:  URIComponents{Scheme: "vscode", Authority: "ext", Path: "/p", Query: "state=a b"},
			expect:      "vscode://ext/p?state=a%20b",
		},
		{
			description: "existing escapes and separators are kept",
			components:  URIComponents{Scheme: "vscode", Authority: "ext", Path: "/p", Query: "a=x%20y&b=c+d&redirect=/cb?z=1"},
			expect:      "vscode://ext/p?a=x%20y&b=c+d&redirect=/cb?z=1",
		},
		{
			description: "stray percent control and non-ascii bytes are encoded",
			components:  URIComponents{Scheme: "vscode", Authority: "ext", Path: "/p", Query: "a=100%&b=\tx&c=é"},
			expect:      "vscode://ext/p?a=100%25&b=%09x&c=%C3%A9",
		},
	}
	for _, testCase := range testCases {
		actual := testCase.components.String()
		assert.Equal(t, testCase.expect, actual, testCase.description)
		parsed, err := url.Parse(actual)
		require.NoError(t, err, testCase.description)
		assert.Equal(t, testCase.components.Fragment, parsed.Fragment, testCase.description)
	}
}

func TestComponents(t *testing.T) {
	u, err := url.Parse("https://example.com/a/b?x=1#frag")
	require.NoError(t, err)
	c := Components(u)
	assert.Equal(t, URIComponents{Scheme: "https", Authority: "example.com", Path: "/a/b", Query: "x=1", Fragment: "frag"}, c)
	assert.Equal(t, u.String(), c.String())
}

func TestDecodeResult(t *testing.T) {
	items, err := DecodeResult([]byte(`[{"scheme":"https","authority":"example.com","path":"/done"},{"scheme":"vscode","path":"/x"}]`))
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "https://example.com/done", items[0].String())
	assert.Equal(t, "vscode", items[1].Scheme)

	_, err = DecodeResult([]byte(`{not json`))
	assert.Error(t, err)

	_, err = DecodeResult([]byte(`[{"authority":"example.com"}]`))
	assert.Error(t, err)
}

func TestEncodeResult(t *testing.T) {
	data, err := EncodeResult(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestNewID(t *testing.T) {
	a, b := NewID(), NewID()
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}
