package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	// DefaultRequestTimeout is the total time budget of a single pipeline
	// request when none is configured.
	DefaultRequestTimeout = 50000 * time.Millisecond

	// DefaultContentType is the Content-Type of outgoing requests when none
	// is configured.
	DefaultContentType = "application/json"
)

// ClientAPI holds the request pipeline's transport settings.
type ClientAPI struct {
	// BaseURL is the absolute backend URL.
	BaseURL string
	// Timeout is the total per-request time budget.
	Timeout time.Duration
	// ContentType is the default Content-Type header.
	ContentType string
}

// ClientSession holds session store settings.
type ClientSession struct {
	// FilePath is where the session JSON file is kept.
	FilePath string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// API contains the backend transport settings.
	API ClientAPI
	// Session contains the session store settings.
	Session ClientSession
	// LogLevel is the zerolog level name.
	LogLevel string
	// Args are the positional command-line arguments left after flags.
	Args []string
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config from env, args and the optional JSON file, maps
// only the fields relevant to the client runtime, fills defaults (50s
// timeout, JSON content type, session file under the user's home) and
// validates the resulting [ClientConfig].
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, rest, err := loadStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	clientCfg.Args = rest

	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	clientCfg := &ClientConfig{
		API: ClientAPI{
			BaseURL:     cfg.API.BaseURL,
			Timeout:     cfg.API.Timeout,
			ContentType: cfg.API.ContentType,
		},
		Session: ClientSession{
			FilePath: cfg.Session.FilePath,
		},
		LogLevel: cfg.Log.Level,
	}

	if clientCfg.API.Timeout == 0 {
		clientCfg.API.Timeout = DefaultRequestTimeout
	}
	if clientCfg.API.ContentType == "" {
		clientCfg.API.ContentType = DefaultContentType
	}
	if clientCfg.Session.FilePath == "" {
		clientCfg.Session.FilePath = defaultSessionFile()
	}

	return clientCfg
}

func defaultSessionFile() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(os.TempDir(), "danmu", "session.json")
	}
	return filepath.Join(home, ".danmu", "session.json")
}
