// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
)

// validate checks the invariants shared by every binary: the log level, when
// set, must be a known zerolog level.
func (cfg *StructuredConfig) validate() error {
	if cfg.Log.Level != "" {
		if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidLogConfigs, err)
		}
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if !isAbsoluteURL(cfg.API.BaseURL) {
		return ErrInvalidAPIConfigs
	}

	if cfg.API.Timeout < 0 {
		return ErrInvalidAPIConfigs
	}

	if cfg.Session.FilePath == "" {
		return ErrInvalidSessionConfigs
	}

	return nil
}

func (cfg *DevServerConfig) validate() error {
	if !isAbsoluteURL(cfg.ProxyTarget) {
		return ErrInvalidDevServerConfigs
	}

	if !strings.HasPrefix(cfg.ProxyPrefix, "/") {
		return ErrInvalidDevServerConfigs
	}

	return nil
}

func isAbsoluteURL(raw string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false
	}

	u, err := url.Parse(raw)
	if err != nil {
		return false
	}

	return u.Scheme != "" && u.Host != ""
}
