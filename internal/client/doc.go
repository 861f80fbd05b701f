// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the danmu command-line client.
//
// [App] dispatches one command per process run (login, logout, whoami,
// request, version) and sends every backend call through the request
// pipeline, so authentication failures, timeouts and business errors are
// reported the same way for every command.
package client
