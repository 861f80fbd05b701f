package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"api": {
			"base_url": "http://localhost:8080",
			"timeout": "50s",
			"content_type": "application/json"
		},
		"session": { "file": "/tmp/session.json" },
		"dev_server": {
			"address": "0.0.0.0:5173",
			"static_dir": "dist",
			"proxy_prefix": "/api",
			"proxy_target": "http://localhost:8080",
			"preserve_host": true
		},
		"log": { "level": "debug" }
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "http://localhost:8080", cfg.API.BaseURL)
	assert.Equal(t, 50*time.Second, cfg.API.Timeout)
	assert.Equal(t, "application/json", cfg.API.ContentType)
	assert.Equal(t, "/tmp/session.json", cfg.Session.FilePath)
	assert.Equal(t, "0.0.0.0:5173", cfg.DevServer.Address)
	assert.Equal(t, "dist", cfg.DevServer.StaticDir)
	assert.Equal(t, "/api", cfg.DevServer.ProxyPrefix)
	assert.Equal(t, "http://localhost:8080", cfg.DevServer.ProxyTarget)
	assert.True(t, cfg.DevServer.PreserveHost)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"api":{"timeout":1000000000}}`), 0o600))

	cfg, err := parseJSON(p)

	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.API.Timeout)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"api":{"timeout":"soon"}}`), 0o600))

	_, err := parseJSON(p)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(50 * time.Second).MarshalJSON()

	require.NoError(t, err)
	assert.Equal(t, `"50s"`, string(b))
}
