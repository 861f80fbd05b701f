package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientConfig_Defaults(t *testing.T) {
	cfg := newClientConfig(&StructuredConfig{API: API{BaseURL: "http://localhost:8080"}})

	assert.Equal(t, "http://localhost:8080", cfg.API.BaseURL)
	assert.Equal(t, 50*time.Second, cfg.API.Timeout)
	assert.Equal(t, "application/json", cfg.API.ContentType)
	assert.NotEmpty(t, cfg.Session.FilePath)
	assert.NoError(t, cfg.validate())
}

func TestNewClientConfig_KeepsExplicitValues(t *testing.T) {
	cfg := newClientConfig(&StructuredConfig{
		API:     API{BaseURL: "http://x", Timeout: time.Second, ContentType: "text/plain"},
		Session: Session{FilePath: "/tmp/s.json"},
		Log:     Log{Level: "warn"},
	})

	assert.Equal(t, time.Second, cfg.API.Timeout)
	assert.Equal(t, "text/plain", cfg.API.ContentType)
	assert.Equal(t, "/tmp/s.json", cfg.Session.FilePath)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     ClientConfig
		wantErr error
	}{
		{
			name:    "missing base url",
			cfg:     ClientConfig{Session: ClientSession{FilePath: "s"}},
			wantErr: ErrInvalidAPIConfigs,
		},
		{
			name:    "relative base url",
			cfg:     ClientConfig{API: ClientAPI{BaseURL: "/api"}, Session: ClientSession{FilePath: "s"}},
			wantErr: ErrInvalidAPIConfigs,
		},
		{
			name:    "negative timeout",
			cfg:     ClientConfig{API: ClientAPI{BaseURL: "http://x", Timeout: -time.Second}, Session: ClientSession{FilePath: "s"}},
			wantErr: ErrInvalidAPIConfigs,
		},
		{
			name:    "missing session file",
			cfg:     ClientConfig{API: ClientAPI{BaseURL: "http://x"}},
			wantErr: ErrInvalidSessionConfigs,
		},
		{
			name: "valid",
			cfg:  ClientConfig{API: ClientAPI{BaseURL: "http://x"}, Session: ClientSession{FilePath: "s"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGetClientConfig_FromEnvAndArgs(t *testing.T) {
	t.Setenv("API_BASE_URL", "http://from-env:8080")

	cfg, err := GetClientConfig([]string{"-session-file", "/tmp/danmu.json", "request", "GET", "/api/rooms"})

	require.NoError(t, err)
	assert.Equal(t, "http://from-env:8080", cfg.API.BaseURL)
	assert.Equal(t, "/tmp/danmu.json", cfg.Session.FilePath)
	assert.Equal(t, []string{"request", "GET", "/api/rooms"}, cfg.Args)
}

func TestNewDevServerConfig_Defaults(t *testing.T) {
	cfg := newDevServerConfig(&StructuredConfig{})

	assert.Equal(t, "0.0.0.0:5173", cfg.Address)
	assert.Equal(t, "/api", cfg.ProxyPrefix)
	assert.Equal(t, "http://localhost:8080", cfg.ProxyTarget)
	assert.True(t, cfg.ChangeOrigin)
	assert.NoError(t, cfg.validate())
}

func TestNewDevServerConfig_PreserveHost(t *testing.T) {
	cfg := newDevServerConfig(&StructuredConfig{DevServer: DevServer{PreserveHost: true}})
	assert.False(t, cfg.ChangeOrigin)
}

func TestDevServerConfig_Validate(t *testing.T) {
	assert.ErrorIs(t, (&DevServerConfig{ProxyPrefix: "/api", ProxyTarget: "localhost:8080"}).validate(), ErrInvalidDevServerConfigs)
	assert.ErrorIs(t, (&DevServerConfig{ProxyPrefix: "api", ProxyTarget: "http://localhost:8080"}).validate(), ErrInvalidDevServerConfigs)
	assert.NoError(t, (&DevServerConfig{ProxyPrefix: "/api", ProxyTarget: "http://localhost:8080"}).validate())
}
