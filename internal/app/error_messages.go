// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// danmu client, its request pipeline, and the development server.
//
// All Msg* constants are human-readable message strings shown to the user in
// error notifications or written into response bodies. Keeping them in one
// place ensures consistent wording throughout the client.
package app

const (
	// MsgOperationFailed is shown when the backend reports a business failure
	// without providing a message of its own.
	MsgOperationFailed = "operation failed"

	// MsgRequestTimedOut is shown when a request exceeds the pipeline timeout.
	MsgRequestTimedOut = "request timed out, please retry later"

	// MsgNetworkError is shown for transport failures whose error carries no
	// usable message.
	MsgNetworkError = "network error, please retry later"

	// MsgBadGateway is written by the development server when the proxied
	// backend cannot be reached.
	MsgBadGateway = "bad gateway"

	// MsgNotFound is written by the development server for unknown static
	// assets when no single-page app is configured.
	MsgNotFound = "not found"
)

// LoginPath is the navigation location of the login screen. Authentication
// failures redirect here.
const LoginPath = "/login"
