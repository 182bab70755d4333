package server

import (
	"net/http"

	chicors "github.com/go-chi/cors"
)

// Cors is the CORS policy for browser-hosted clients polling fetch-callback.
type Cors struct {
	AllowCredentials bool     `yaml:"allowCredentials,omitempty" json:"allowCredentials,omitempty"`
	AllowHeaders     []string `yaml:"allowHeaders,omitempty" json:"allowHeaders,omitempty"`
	AllowOrigins     []string `yaml:"allowOrigins,omitempty" json:"allowOrigins,omitempty"`
	MaxAge           int      `yaml:"maxAge,omitempty" json:"maxAge,omitempty"`
}

// Middleware returns the go-chi/cors handler for the policy.
func (c *Cors) Middleware() Middleware {
	headers := c.AllowHeaders
	if len(headers) == 0 {
		headers = []string{"Accept", "Content-Type"}
	}
	return chicors.Handler(chicors.Options{
		AllowedOrigins:   c.AllowOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders:   headers,
		AllowCredentials: c.AllowCredentials,
		MaxAge:           c.MaxAge,
	})
}

func defaultCors() *Cors {
	return &Cors{
		AllowOrigins: []string{"*"},
		MaxAge:       300,
	}
}
