// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package router tracks which screen the client is on.
//
// A console client has no browser location bar, so [Memory] keeps the
// current path and the navigation history in process. The request pipeline
// consults it to decide whether a 401 has to redirect to the login screen.
package router

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/MKhiriev/danmu-client/internal/logger"
)

// RootPath is where a fresh router starts.
const RootPath = "/"

// ErrEmptyPath is returned by [Memory.Navigate] for a blank target.
var ErrEmptyPath = errors.New("navigation path is empty")

// Memory is an in-process router. The zero value is not usable; build it
// with [NewMemory].
type Memory struct {
	mu      sync.RWMutex
	current string
	history []string

	logger *logger.Logger
}

// NewMemory returns a router positioned at [RootPath].
func NewMemory(log *logger.Logger) *Memory {
	if log == nil {
		log = logger.Nop()
	}

	return &Memory{
		current: RootPath,
		history: []string{RootPath},
		logger:  log,
	}
}

// CurrentPath returns the path currently shown.
func (m *Memory) CurrentPath() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.current
}

// History returns every path visited, oldest first.
func (m *Memory) History() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]string, len(m.history))
	copy(out, m.history)
	return out
}

// Navigate moves to path. Paths without a leading slash are treated as
// rooted.
func (m *Memory) Navigate(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path = strings.TrimSpace(path)
	if path == "" {
		return ErrEmptyPath
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	m.mu.Lock()
	from := m.current
	m.current = path
	m.history = append(m.history, path)
	m.mu.Unlock()

	m.logger.Info().Str("from", from).Str("to", path).Msg("navigated")
	return nil
}
