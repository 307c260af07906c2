package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points HOME at an empty dir so a developer's own config never leaks in
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("GEMINI_API_KEY", "")
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, ResponderNone, cfg.Responder.Kind)
	assert.Equal(t, 60*time.Second, cfg.Responder.Timeout)
	assert.Equal(t, 6, cfg.Responder.HistoryTurns)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Log.File)
	assert.Equal(t, "gemini-2.5-flash", cfg.Gemini.Model)
}

func TestLoad_File(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "craftchat.yaml")
	content := `
log:
  level: debug
  file: /tmp/craftchat.log
responder:
  kind: remote
  timeout: 15s
remote:
  url: ws://answers.local/ws
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(New(), path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/craftchat.log", cfg.Log.File)
	assert.Equal(t, ResponderRemote, cfg.Responder.Kind)
	assert.Equal(t, 15*time.Second, cfg.Responder.Timeout)
	assert.Equal(t, "ws://answers.local/ws", cfg.Remote.URL)
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("CRAFTCHAT_RESPONDER_KIND", "gemini")
	t.Setenv("GEMINI_API_KEY", "test-key")

	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, ResponderGemini, cfg.Responder.Kind)
	assert.Equal(t, "test-key", cfg.Gemini.APIKey)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	isolate(t)

	_, err := Load(New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := func() Config {
		return Config{Responder: ResponderConfig{Kind: ResponderNone, Timeout: time.Second}}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"none", func(c *Config) {}, false},
		{"empty kind becomes none", func(c *Config) { c.Responder.Kind = "" }, false},
		{"kind is case-insensitive", func(c *Config) { c.Responder.Kind = " NONE " }, false},
		{"unknown kind", func(c *Config) { c.Responder.Kind = "oracle" }, true},
		{"gemini without key", func(c *Config) { c.Responder.Kind = ResponderGemini; c.Gemini.Model = "m" }, true},
		{"gemini ok", func(c *Config) {
			c.Responder.Kind = ResponderGemini
			c.Gemini = GeminiConfig{APIKey: "k", Model: "m"}
		}, false},
		{"remote without url", func(c *Config) { c.Responder.Kind = ResponderRemote }, true},
		{"zero timeout", func(c *Config) { c.Responder.Timeout = 0 }, true},
		{"negative history", func(c *Config) { c.Responder.HistoryTurns = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
