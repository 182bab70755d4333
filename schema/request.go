package schema

import "github.com/google/uuid"

// Query keys used on the callback URI and the fetch-callback request.
const (
	KeyID        = "vscode-id"
	KeyScheme    = "vscode-scheme"
	KeyAuthority = "vscode-authority"
	KeyPath      = "vscode-path"
	KeyQuery     = "vscode-query"
	KeyFragment  = "vscode-fragment"
)

// Endpoint paths relative to the origin.
const (
	CallbackPath      = "callback"
	FetchCallbackPath = "fetch-callback"
)

// Request describes one callback redemption. It only ever exists as query
// parameters on the callback URI.
type Request struct {
	ID       string `json:"id" yaml:"id"`
	Path     string `json:"path,omitempty" yaml:"path,omitempty"`
	Query    string `json:"query,omitempty" yaml:"query,omitempty"`
	Fragment string `json:"fragment,omitempty" yaml:"fragment,omitempty"`
}

// NewID returns a random identifier suitable for a Request.
func NewID() string {
	return uuid.NewString()
}
