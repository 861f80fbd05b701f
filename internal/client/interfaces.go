// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/danmu-client/models"
	"github.com/go-resty/resty/v2"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes the command in args and returns when it is done.
	Run(ctx context.Context, args []string) error
}

// API is the request pipeline as seen by commands.
type API interface {
	R(ctx context.Context) *resty.Request
	Do(req *resty.Request, method, path string) (*resty.Response, error)
}

// Session is the credential store as seen by commands.
type Session interface {
	Token() string
	SetToken(token string) error
	Logout(ctx context.Context) error
	Claims() (models.Claims, error)
}

// Navigator is the router as seen by commands.
type Navigator interface {
	CurrentPath() string
	Navigate(ctx context.Context, path string) error
}
