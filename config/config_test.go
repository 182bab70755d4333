package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	var testCases = []struct {
		description string
		name        string
		content     string
		expect      func(t *testing.T, c *Config)
	}{
		{
			description: "yaml",
			name:        "callback.yaml",
			content: `origin: https://editor.example.com
interval: 250ms
timeout: 2m
storeURL: /tmp/callbacks
allowedOrigins:
  - https://editor.example.com
log:
  level: debug
`,
			expect: func(t *testing.T, c *Config) {
				assert.Equal(t, "https://editor.example.com", c.Origin)
				assert.Equal(t, 250*time.Millisecond, c.Interval)
				assert.Equal(t, 2*time.Minute, c.Timeout)
				assert.Equal(t, "/tmp/callbacks", c.StoreURL)
				assert.Equal(t, []string{"https://editor.example.com"}, c.AllowedOrigins)
				assert.Equal(t, "debug", c.Log.Level)
				assert.Equal(t, "console", c.Log.Format)
				assert.Equal(t, "vscode", c.Scheme)
			},
		},
		{
			description: "json",
			name:        "callback.json",
			content:     `{"origin":"http://localhost:9000","timeout":"30s","authority":"ext.id"}`,
			expect: func(t *testing.T, c *Config) {
				assert.Equal(t, "http://localhost:9000", c.Origin)
				assert.Equal(t, 30*time.Second, c.Timeout)
				assert.Equal(t, 500*time.Millisecond, c.Interval)
				assert.Equal(t, "ext.id", c.Authority)
			},
		},
	}
	for _, testCase := range testCases {
		location := filepath.Join(dir, testCase.name)
		require.NoError(t, os.WriteFile(location, []byte(testCase.content), 0o600), testCase.description)
		c, err := Load(context.Background(), location)
		require.NoError(t, err, testCase.description)
		testCase.expect(t, c)
		assert.NoError(t, c.Validate(), testCase.description)
	}
}

func TestLoad_Errors(t *testing.T) {
	c, err := Load(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, Default(), c)

	_, err = Load(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	location := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(location, []byte("interval: soon"), 0o600))
	_, err = Load(context.Background(), location)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	c := Default()
	c.Interval = time.Hour
	assert.Error(t, c.Validate())
	c = Default()
	c.Origin = ""
	assert.Error(t, c.Validate())
}
