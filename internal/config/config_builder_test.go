package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
	assert.Empty(t, b.rest)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{API: API{BaseURL: "http://env"}},
		&StructuredConfig{Session: Session{FilePath: "/tmp/flags.json"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "http://env", cfg.API.BaseURL)
	assert.Equal(t, "/tmp/flags.json", cfg.Session.FilePath)
}

// TestBuild_LaterSourceWins verifies that a non-zero field from a later source
// overrides the same field from an earlier one.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{API: API{BaseURL: "http://env", Timeout: time.Second}},
		&StructuredConfig{API: API{BaseURL: "http://json"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "http://json", cfg.API.BaseURL)
	assert.Equal(t, time.Second, cfg.API.Timeout)
}

func TestBuild_InvalidLogLevel(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Log: Log{Level: "loud"}})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidLogConfigs)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("API_BASE_URL", "http://env-url")
	t.Setenv("DEV_SERVER_PROXY_PREFIX", "/env")

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "http://env-url", b.configs[0].API.BaseURL)
	assert.Equal(t, "/env", b.configs[0].DevServer.ProxyPrefix)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags(nil))
}

func TestWithFlags_KeepsPositionalArgs(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags([]string{"-base-url", "http://flag", "whoami"})

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "http://flag", b.configs[0].API.BaseURL)
	assert.Equal(t, []string{"whoami"}, b.rest)
}

func TestWithFlags_SetsErrorOnUnknownFlag(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags([]string{"-no-such-flag"})

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.API.BaseURL = "http://json"
	payload.DevServer.ProxyTarget = "http://json-backend"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "http://json", b.configs[1].API.BaseURL)
	assert.Equal(t, "http://json-backend", b.configs[1].DevServer.ProxyTarget)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: "/nonexistent/config.json",
	})
	b.withJSON()

	assert.Error(t, b.err)
}

func TestWithJSON_UsesLastPath(t *testing.T) {
	first := StructuredJSONConfig{}
	first.API.BaseURL = "http://first"
	last := StructuredJSONConfig{}
	last.API.BaseURL = "http://last"

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, first)},
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, last)},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "http://last", b.configs[2].API.BaseURL)
}
