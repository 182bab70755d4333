// Package factory builds and parses callback URIs.
//
// A callback URI points at the callback endpoint of an origin and carries the
// redemption identifier plus the optional path, query and fragment the server
// should hand back once the URI is visited:
//
//	<origin>/callback?vscode-id=<id>[&vscode-path=..][&vscode-query=..][&vscode-fragment=..]
//
// Building a URI has no side effects; polling for the result is a separate
// step (see the poller package).
package factory

import (
	"errors"
	"net/url"
	"strings"

	aurl "github.com/viant/afs/url"
	"github.com/viant/callback/schema"
)

// ErrMissingID is returned when a callback query carries no identifier.
var ErrMissingID = errors.New("factory: missing " + schema.KeyID)

// Build returns the callback URI for request relative to origin.
func Build(origin string, request schema.Request) string {
	return Endpoint(origin, schema.CallbackPath) + "?" + Query(request)
}

// Endpoint joins origin with an endpoint path.
func Endpoint(origin, path string) string {
	return aurl.Join(strings.TrimRight(origin, "/"), path)
}

// Query encodes request as a query string. Keys are written in a fixed
// order and empty optional fields are omitted.
func Query(request schema.Request) string {
	var b strings.Builder
	appendParam(&b, schema.KeyID, request.ID)
	if request.Path != "" {
		appendParam(&b, schema.KeyPath, request.Path)
	}
	if request.Query != "" {
		appendParam(&b, schema.KeyQuery, request.Query)
	}
	if request.Fragment != "" {
		appendParam(&b, schema.KeyFragment, request.Fragment)
	}
	return b.String()
}

func appendParam(b *strings.Builder, key, value string) {
	if b.Len() > 0 {
		b.WriteByte('&')
	}
	b.WriteString(key)
	b.WriteByte('=')
	b.WriteString(url.QueryEscape(value))
}

// Parse decodes callback query values back into a Request.
func Parse(values url.Values) (schema.Request, error) {
	ret := schema.Request{
		ID:       values.Get(schema.KeyID),
		Path:     values.Get(schema.KeyPath),
		Query:    values.Get(schema.KeyQuery),
		Fragment: values.Get(schema.KeyFragment),
	}
	if ret.ID == "" {
		return ret, ErrMissingID
	}
	return ret, nil
}

// FetchURL returns the fetch-callback URL for id relative to origin.
func FetchURL(origin, id string) string {
	return Endpoint(origin, schema.FetchCallbackPath) + "?" + schema.KeyID + "=" + url.QueryEscape(id)
}
