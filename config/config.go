// Package config holds the settings shared by the callback server and client.
package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/viant/afs"
	"github.com/viant/callback/internal/logging"
	"github.com/viant/callback/poller"
	"github.com/viant/callback/server"
	"github.com/viant/callback/server/pending"
	"gopkg.in/yaml.v3"
)

// Config defines callback server and client settings. Fields carry both
// document tags (yaml/json) and CLI flag tags.
type Config struct {
	Origin         string         `yaml:"origin,omitempty" json:"origin,omitempty" short:"o" long:"origin" description:"origin serving the callback endpoints, e.g. https://editor.example.com"`
	Listen         string         `yaml:"listen,omitempty" json:"listen,omitempty" short:"l" long:"listen" description:"server listen address"`
	Interval       time.Duration  `yaml:"interval,omitempty" json:"interval,omitempty" long:"interval" description:"delay between fetch-callback requests"`
	Timeout        time.Duration  `yaml:"timeout,omitempty" json:"timeout,omitempty" long:"timeout" description:"how long a redemption keeps polling"`
	TTL            time.Duration  `yaml:"ttl,omitempty" json:"ttl,omitempty" long:"ttl" description:"how long recorded results wait for a fetch"`
	StoreURL       string         `yaml:"storeURL,omitempty" json:"storeURL,omitempty" long:"store" description:"afs URL for pending results; in-memory when empty"`
	Scheme         string         `yaml:"scheme,omitempty" json:"scheme,omitempty" long:"scheme" description:"default scheme of recorded URIs"`
	Authority      string         `yaml:"authority,omitempty" json:"authority,omitempty" long:"authority" description:"default authority of recorded URIs"`
	AllowedOrigins []string       `yaml:"allowedOrigins,omitempty" json:"allowedOrigins,omitempty" long:"allow-origin" description:"origin allowed to poll fetch-callback (repeatable)"`
	Log            logging.Config `yaml:"log,omitempty" json:"log,omitempty" group:"log"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Origin:         "http://127.0.0.1:8080",
		Listen:         "127.0.0.1:8080",
		Interval:       poller.DefaultInterval,
		Timeout:        poller.DefaultTimeout,
		TTL:            pending.DefaultTTL,
		Scheme:         server.DefaultScheme,
		AllowedOrigins: []string{"*"},
		Log:            logging.Config{Level: "info", Format: "console"},
	}
}

// Merge copies the non-zero fields of override onto c.
func (c *Config) Merge(override *Config) {
	if override == nil {
		return
	}
	if override.Origin != "" {
		c.Origin = override.Origin
	}
	if override.Listen != "" {
		c.Listen = override.Listen
	}
	if override.Interval > 0 {
		c.Interval = override.Interval
	}
	if override.Timeout > 0 {
		c.Timeout = override.Timeout
	}
	if override.TTL > 0 {
		c.TTL = override.TTL
	}
	if override.StoreURL != "" {
		c.StoreURL = override.StoreURL
	}
	if override.Scheme != "" {
		c.Scheme = override.Scheme
	}
	if override.Authority != "" {
		c.Authority = override.Authority
	}
	if len(override.AllowedOrigins) > 0 {
		c.AllowedOrigins = override.AllowedOrigins
	}
	if override.Log.Level != "" {
		c.Log.Level = override.Log.Level
	}
	if override.Log.Format != "" {
		c.Log.Format = override.Log.Format
	}
}

// Validate checks settings required by both sides.
func (c *Config) Validate() error {
	if c.Origin == "" {
		return fmt.Errorf("origin was empty")
	}
	if c.Interval <= 0 || c.Timeout <= 0 {
		return fmt.Errorf("invalid polling settings: interval %v, timeout %v", c.Interval, c.Timeout)
	}
	if c.Interval > c.Timeout {
		return fmt.Errorf("interval %v exceeds timeout %v", c.Interval, c.Timeout)
	}
	return nil
}

// Load reads a YAML or JSON document from URL on top of the defaults.
func Load(ctx context.Context, URL string) (*Config, error) {
	ret := Default()
	if strings.TrimSpace(URL) == "" {
		return ret, nil
	}
	data, err := afs.New().DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %v: %w", URL, err)
	}
	loaded := &Config{}
	if err = yaml.Unmarshal(data, loaded); err != nil {
		return nil, fmt.Errorf("failed to decode config %v: %w", URL, err)
	}
	ret.Merge(loaded)
	return ret, nil
}
