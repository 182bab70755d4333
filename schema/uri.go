package schema

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

// URIComponents is the wire form of a URI returned by the fetch-callback endpoint.
type URIComponents struct {
	Scheme    string `json:"scheme"`
	Authority string `json:"authority,omitempty"`
	Path      string `json:"path,omitempty"`
	Query     string `json:"query,omitempty"`
	Fragment  string `json:"fragment,omitempty"`
}

// URL reconstructs the URI. Existing escapes and the & = separators in Query
// are kept; bytes not allowed in a query are percent-encoded.
func (c *URIComponents) URL() *url.URL {
	ret := &url.URL{
		Scheme:   c.Scheme,
		Host:     c.Authority,
		Path:     c.Path,
		RawQuery: escapeQuery(c.Query),
		Fragment: c.Fragment,
	}
	if c.Path != "" && c.Authority != "" && !strings.HasPrefix(c.Path, "/") {
		ret.Path = "/" + c.Path
	}
	return ret
}

func escapeQuery(query string) string {
	const hex = "0123456789ABCDEF"
	var builder strings.Builder
	for i := 0; i < len(query); i++ {
		b := query[i]
		switch {
		case b == '%' && i+2 < len(query) && isHex(query[i+1]) && isHex(query[i+2]):
			builder.WriteByte(b)
		case b != '%' && isQueryByte(b):
			builder.WriteByte(b)
		default:
			builder.WriteByte('%')
			builder.WriteByte(hex[b>>4])
			builder.WriteByte(hex[b&0x0F])
		}
	}
	return builder.String()
}

// isQueryByte reports RFC 3986 query characters other than '%'.
func isQueryByte(b byte) bool {
	switch {
	case 'a' <= b && b <= 'z', 'A' <= b && b <= 'Z', '0' <= b && b <= '9':
		return true
	}
	return strings.IndexByte("-._~!$&'()*+,;=:@/?", b) >= 0
}

func isHex(b byte) bool {
	return '0' <= b && b <= '9' || 'a' <= b && b <= 'f' || 'A' <= b && b <= 'F'
}

// String returns the reconstructed URI.
func (c *URIComponents) String() string {
	return c.URL().String()
}

// Components splits u back into URIComponents.
func Components(u *url.URL) URIComponents {
	return URIComponents{
		Scheme:    u.Scheme,
		Authority: u.Host,
		Path:      u.Path,
		Query:     u.RawQuery,
		Fragment:  u.Fragment,
	}
}

// DecodeResult decodes a fetch-callback payload.
func DecodeResult(data []byte) ([]URIComponents, error) {
	var result []URIComponents
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to decode callback result: %w", err)
	}
	for i, item := range result {
		if item.Scheme == "" {
			return nil, fmt.Errorf("failed to decode callback result: entry %d has no scheme", i)
		}
	}
	return result, nil
}

// EncodeResult encodes a fetch-callback payload.
func EncodeResult(items []URIComponents) ([]byte, error) {
	if items == nil {
		items = []URIComponents{}
	}
	return json.Marshal(items)
}
