// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the danmu
// client binaries. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// API holds the settings of the backend the request pipeline talks to.
	API API `envPrefix:"API_"`

	// Session holds where the bearer credential is persisted.
	Session Session `envPrefix:"SESSION_"`

	// DevServer holds the development server's listen address, static
	// directory and backend proxy settings.
	DevServer DevServer `envPrefix:"DEV_SERVER_"`

	// Log holds logging settings shared by both binaries.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// API holds the request pipeline's transport settings. They are fixed once
// the pipeline is constructed.
type API struct {
	// BaseURL is the absolute URL every relative request path is resolved
	// against (e.g. "http://localhost:8080").
	// Env: API_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// Timeout is the total time budget of a single request.
	// Env: API_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`

	// ContentType is the default Content-Type header of outgoing requests.
	// Env: API_CONTENT_TYPE
	ContentType string `env:"CONTENT_TYPE"`
}

// Session holds settings of the local session store.
type Session struct {
	// FilePath is where the session JSON file is kept.
	// Env: SESSION_FILE
	FilePath string `env:"FILE"`
}

// DevServer holds settings of the development server.
type DevServer struct {
	// Address is the TCP address the server listens on, in "host:port"
	// format (e.g. "0.0.0.0:5173").
	// Env: DEV_SERVER_ADDRESS
	Address string `env:"ADDRESS"`

	// StaticDir is the directory holding the built single-page app.
	// Env: DEV_SERVER_STATIC_DIR
	StaticDir string `env:"STATIC_DIR"`

	// ProxyPrefix is the path prefix forwarded to the backend (e.g. "/api").
	// Env: DEV_SERVER_PROXY_PREFIX
	ProxyPrefix string `env:"PROXY_PREFIX"`

	// ProxyTarget is the backend origin proxied requests go to
	// (e.g. "http://localhost:8080").
	// Env: DEV_SERVER_PROXY_TARGET
	ProxyTarget string `env:"PROXY_TARGET"`

	// PreserveHost keeps the client's Host header on proxied requests. By
	// default the Host header is rewritten to the target's host.
	// Env: DEV_SERVER_PRESERVE_HOST
	PreserveHost bool `env:"PRESERVE_HOST"`
}

// Log holds logging settings.
type Log struct {
	// Level is a zerolog level name ("debug", "info", "warn", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources in the following priority order (last source wins
// for non-zero fields):
//  1. Environment variables
//  2. Command-line flags parsed from args
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	cfg, _, err := loadStructuredConfig(args)
	return cfg, err
}

// loadStructuredConfig is [GetStructuredConfig] that also returns the
// positional arguments left over after flag parsing.
func loadStructuredConfig(args []string) (*StructuredConfig, []string, error) {
	b := newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON()

	cfg, err := b.build()
	if err != nil {
		return nil, nil, err
	}

	return cfg, b.rest, nil
}
