package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "server.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewDefaults(t *testing.T) {
	cfg, err := New("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestNewFromFile(t *testing.T) {
	path := writeConfig(t, `
[Server]
host = "127.0.0.1"
port = 8080
debug_mode = true
cert_file = "cert.pem"
key_file = "key.pem"

[Storage]
sqlite_file = "test.sqlite"

[Match]
sets_to_win = 1
legs_to_win = 2
`)
	cfg, err := New(path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.True(t, cfg.Server.Debug)
	assert.True(t, cfg.Server.TLS())
	assert.Equal(t, "test.sqlite", cfg.Storage.SqliteFile)
	assert.Equal(t, Match{SetsToWin: 1, LegsToWin: 2}, cfg.Match)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestNewEnvOverrides(t *testing.T) {
	path := writeConfig(t, `
[Server]
port = 8080
`)
	t.Setenv("DARTS_PORT", "9090")
	t.Setenv("DARTS_SQLITE_FILE", "env.sqlite")
	t.Setenv("DARTS_LOG_LEVEL", "debug")

	cfg, err := New(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "env.sqlite", cfg.Storage.SqliteFile)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestNewErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		env     map[string]string
	}{
		{name: "broken toml", content: "[Server\nport = 1"},
		{name: "bad env", content: "", env: map[string]string{"DARTS_PORT": "not-a-port"}},
		{name: "zero legs", content: "[Match]\nsets_to_win = 1\nlegs_to_win = 0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := New(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}
